package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"we2pos-backend"`
	Server      ServerConfig
	Auth        AuthConfig
	DB          DBConfig
	Metrics     MetricsConfig
	Jaeger      JaegerConfig
}

type ServerConfig struct {
	Mode        string        `env:"MODE"             envDefault:"dev"`
	Host        string        `env:"APP_HOST"         envDefault:"127.0.0.1"`
	Port        int           `env:"APP_PORT"         envDefault:"3400"`
	APIPrefix   string        `env:"API_PREFIX"       envDefault:"api"`
	CORSOrigins []string      `env:"CORS_ORIGINS"     envDefault:"http://localhost:3400" envSeparator:","`
	RateTTL     time.Duration `env:"RATE_LIMIT_TTL"   envDefault:"60s"`
	RateLimit   int           `env:"RATE_LIMIT_LIMIT" envDefault:"100"`
}

type AuthConfig struct {
	JWT  JWTConfig
	CSRF CSRFConfig
}

type JWTConfig struct {
	Secret    string        `env:"JWT_SECRET,required"`
	ExpiresIn time.Duration `env:"JWT_EXPIRES_IN" envDefault:"1h"`
	Issuer    string        `env:"JWT_ISSUER"     envDefault:"we2pos"`
}

type CSRFConfig struct {
	Enabled      bool   `env:"ENABLE_CSRF"      envDefault:"true"`
	CookieSecret string `env:"COOKIE_SECRET"`
	Secret       string `env:"CSRF_SECRET"`
	CookieName   string `env:"CSRF_COOKIE_NAME" envDefault:"csrf_token"`
}

type DBConfig struct {
	Host     string `env:"DB_HOST"     envDefault:"127.0.0.1"`
	Port     int    `env:"DB_PORT"     envDefault:"3306"`
	User     string `env:"DB_USERNAME" envDefault:"root"`
	Password string `env:"DB_PASSWORD" envDefault:""`
	Database string `env:"DB_DATABASE" envDefault:"we2pos"`
}

type MetricsConfig struct {
	Port int `env:"METRICS_PORT" envDefault:"0"`
}

type JaegerConfig struct {
	Sampler struct {
		Type  string `env:"JAEGER_SAMPLER_TYPE"  envDefault:"const"`
		Param int    `env:"JAEGER_SAMPLER_PARAM" envDefault:"1"`
	}
	Reporter struct {
		LogSpans           bool   `env:"JAEGER_REPORTER_LOG_SPANS" envDefault:"false"`
		LocalAgentHostPort string `env:"JAEGER_AGENT_HOST_PORT"    envDefault:"localhost:6831"`
	}
}

// SigningSecret returns the cookie signing secret, falling back to the
// CSRF secret when COOKIE_SECRET is not set.
func (c CSRFConfig) SigningSecret() string {
	if c.CookieSecret != "" {
		return c.CookieSecret
	}
	return c.Secret
}

// MustLoad reads the environment file for the current mode and parses
// the configuration, terminating the process when required values are
// missing.
func MustLoad() Config {
	envFile := ".env.dev"
	if os.Getenv("MODE") == "prod" {
		envFile = ".env.prod"
	}

	if err := godotenv.Load(envFile); err != nil {
		zap.L().Info("No env file found, relying on environment", zap.String("path", envFile))
	}

	conf := Config{}
	if err := env.Parse(&conf); err != nil {
		zap.L().Fatal("failed to parse configuration", zap.Error(err))
	}

	if conf.Metrics.Port == 0 {
		conf.Metrics.Port = conf.Server.Port + 5
	}

	return conf
}
