package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/we2pos/backend/internal/auth/jwt"
	"github.com/we2pos/backend/internal/config"
	"github.com/we2pos/backend/internal/ctrl"
	hdl "github.com/we2pos/backend/internal/hdl/http"
	"github.com/we2pos/backend/internal/observability/metrics/prometheus"
	"github.com/we2pos/backend/internal/observability/tracing/jaeger"
	"github.com/we2pos/backend/internal/repo/db"
	"go.uber.org/zap"
)

func mustRegisterLogger(mode string) {
	switch mode {
	case "prod":
		zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
	default:
		zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))
	}
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			zap.L().Panic("panic occurred", zap.Any("error", err))
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf := config.MustLoad()
	mustRegisterLogger(conf.Server.Mode)

	go prometheus.New(conf.Metrics.Port).Start(ctx)
	go jaeger.Start(ctx, conf.ServiceName, conf.Jaeger)

	repo := db.New(conf)
	au := jwt.New(conf)
	svc := ctrl.New(repo, au)
	h := hdl.New(au, svc, conf)

	zap.L().Info(
		"Starting server",
		zap.String("host", conf.Server.Host),
		zap.Int("port", conf.Server.Port),
		zap.String("prefix", conf.Server.APIPrefix),
	)
	go h.Start()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-c

	zap.L().Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := h.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing handler", zap.Error(err))
	}

	if err := repo.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing repository", zap.Error(err))
	}
}
