package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eatery-blue/api-gateway/internal/gateway"
	"eatery-blue/config"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	cfg, logger := config.MustLoad("api-gateway")
	defer logger.Sync()

	gw := gateway.NewGateway(gateway.Config{
		EaterySvcURL: cfg.Gateway.EaterySvcURL,
		IngestSvcURL: cfg.Gateway.IngestSvcURL,
	}, &http.Client{Timeout: cfg.Gateway.Timeout}, logger)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	server := &http.Server{
		Addr:    cfg.Gateway.Addr,
		Handler: c.Handler(gw.SetupRoutes()),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	logger.Info("api gateway starting",
		zap.String("addr", server.Addr),
		zap.String("eatery_svc", cfg.Gateway.EaterySvcURL),
		zap.String("ingest_svc", cfg.Gateway.IngestSvcURL))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed", zap.Error(err))
	}
}
