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
	httpapi "eatery-blue/ingest-svc/internal/api/http"
	"eatery-blue/ingest-svc/internal/feed"
	"eatery-blue/ingest-svc/internal/pipeline"
	"eatery-blue/ingest-svc/internal/service"
	"eatery-blue/internal/identity"
	"eatery-blue/internal/scheduler"
	"eatery-blue/internal/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:          "ingest-svc",
		Short:        "Ingest the dining feed into the eatery database",
		Version:      version,
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newRunCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	pipeline *pipeline.Pipeline
	close    func()
}

func newApp() *app {
	cfg, logger := config.MustLoad("ingest-svc")

	db := config.MustInitPostgres(cfg.Database, logger)
	if cfg.Database.MigrateOnStart {
		if err := storage.RunMigrations(db, logger); err != nil {
			logger.Fatal("migrations failed", zap.Error(err))
		}
	}
	repo := storage.NewPostgresRepository(db)

	writer := config.NewKafkaWriter(cfg.Kafka, cfg.Kafka.IngestionTopic)
	client := feed.NewClient(&http.Client{Timeout: cfg.Feed.Timeout}, cfg.Feed.URL, cfg.Feed.StaticPath, logger)

	p := pipeline.New(
		pipeline.PostgresBegin(repo),
		client,
		identity.NewResolver(logger),
		logger,
		pipeline.WithStatic(client),
		pipeline.WithPublisher(storage.NewKafkaPublisher(writer)),
	)

	return &app{
		cfg:      cfg,
		logger:   logger,
		pipeline: p,
		close: func() {
			writer.Close()
			db.Close()
			logger.Sync()
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run a single ingestion pass and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			defer a.close()

			res, err := a.pipeline.Run(cmd.Context())
			if err != nil {
				a.logger.Error("ingestion failed", zap.Error(err))
				return err
			}
			a.logger.Info("ingestion complete", zap.String("run_id", res.RunID))
			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run ingestion on a schedule and expose its status over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			defer a.close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc := service.NewIngestionService(a.pipeline, a.logger)

			cron := scheduler.New(ctx, a.logger)
			if _, err := cron.Add("ingestion", a.cfg.Feed.Schedule, svc.RunScheduled); err != nil {
				return err
			}
			cron.Start()
			defer cron.Stop()

			if a.cfg.Feed.RunOnStart {
				go svc.RunScheduled(ctx)
			}

			server := &http.Server{
				Addr:    a.cfg.Server.Addr,
				Handler: httpapi.NewRouter(httpapi.NewHandler(svc, a.logger)),
			}
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				server.Shutdown(shutdownCtx)
			}()

			a.logger.Info("ingest service starting", zap.String("addr", server.Addr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
}
