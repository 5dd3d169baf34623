package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eatery-blue/config"
	httpapi "eatery-blue/eatery-svc/internal/api/http"
	"eatery-blue/eatery-svc/internal/service"
	"eatery-blue/internal/storage"

	"go.uber.org/zap"
)

func main() {
	cfg, logger := config.MustLoad("eatery-svc")
	defer logger.Sync()

	db := config.MustInitPostgres(cfg.Database, logger)
	defer db.Close()
	if cfg.Database.MigrateOnStart {
		if err := storage.RunMigrations(db, logger); err != nil {
			logger.Fatal("migrations failed", zap.Error(err))
		}
	}

	rdb := config.MustInitRedis(cfg.Redis, logger)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg.Kafka, cfg.Kafka.IngestionTopic, cfg.Kafka.GroupID)
	defer reader.Close()

	repo := storage.NewPostgresRepository(db)
	pages := storage.NewPageCache(rdb, cfg.Cache.TTL, cfg.Cache.Jitter)
	qr := service.DefaultQRGenerator{BaseURL: cfg.Feed.OrderQRBaseURL}
	eaterySvc := service.NewEateryService(repo, pages, qr, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(reader, pages, logger)
	go consumer.Start(ctx)

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: httpapi.NewRouter(httpapi.NewHandler(eaterySvc, logger), pages, logger),
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	logger.Info("eatery service starting", zap.String("addr", server.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed", zap.Error(err))
	}
}
