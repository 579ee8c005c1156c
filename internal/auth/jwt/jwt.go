package jwt

import (
	"context"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/opentracing/opentracing-go"
	"github.com/we2pos/backend/internal/config"
	"go.uber.org/zap"
)

type Port interface {
	NewToken(ctx context.Context, uid int64, email string) (string, error)
	ParseClaims(ctx context.Context, tokenStr string) (Claims, error)
}

type Core struct {
	secret    []byte
	issuer    string
	expiresIn time.Duration
}

// Claims carries the subject id (decimal string) and the account email.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UserID decodes the subject claim back into the numeric user id.
func (c Claims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

func New(conf config.Config) *Core {
	return &Core{
		secret:    []byte(conf.Auth.JWT.Secret),
		issuer:    conf.Auth.JWT.Issuer,
		expiresIn: conf.Auth.JWT.ExpiresIn,
	}
}

func (c *Core) NewToken(ctx context.Context, uid int64, email string) (string, error) {
	const op = "auth.NewToken.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	signed, err := jwt.NewWithClaims(
		jwt.SigningMethodHS256, &Claims{
			Email: email,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   strconv.FormatInt(uid, 10),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(c.expiresIn)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				Issuer:    c.issuer,
			},
		},
	).SignedString(c.secret)
	if err != nil {
		zap.L().Error(
			ErrWhileCreatingToken.Error(),
			zap.Int64("uid", uid),
			zap.Error(err),
		)

		return "", ErrWhileCreatingToken
	}

	return signed, nil
}

func (c *Core) ParseClaims(ctx context.Context, tokenStr string) (Claims, error) {
	const op = "auth.ParseClaims.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims := Claims{}
	token, err := jwt.ParseWithClaims(
		tokenStr, &claims, func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, ErrUnexpectedSignMethod
			}

			return c.secret, nil
		},
	)
	if err != nil {
		zap.L().Debug(
			"Failed to parse claims",
			zap.String("op", op),
			zap.Error(err),
		)

		return claims, ErrInvalidToken
	}

	if !token.Valid {
		return claims, ErrInvalidToken
	}

	return claims, nil
}
