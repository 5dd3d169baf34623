package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"eatery-blue/config"
	"eatery-blue/internal/scheduler"
	"eatery-blue/internal/storage"
	"eatery-blue/notify-svc/internal/push"
	"eatery-blue/notify-svc/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:          "notify-svc",
		Short:        "Notify users when their favorite items are served",
		Version:      version,
		SilenceUsage: true,
	}

	var dryRun bool
	root.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "log notifications instead of sending them")
	root.AddCommand(newSendCmd(&dryRun), newServeCmd(&dryRun))

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newService(ctx context.Context, dryRun bool) (*service.FavoritesService, *config.Config, *zap.Logger, func(), error) {
	cfg, logger := config.MustLoad("notify-svc")
	db := config.MustInitPostgres(cfg.Database, logger)
	cleanup := func() {
		db.Close()
		logger.Sync()
	}

	sender, err := newSender(ctx, cfg.Push, dryRun, logger)
	if err != nil {
		cleanup()
		return nil, nil, nil, nil, err
	}
	svc := service.NewFavoritesService(storage.NewPostgresRepository(db), sender, logger)
	return svc, cfg, logger, cleanup, nil
}

func newSender(ctx context.Context, cfg config.PushConfig, dryRun bool, logger *zap.Logger) (push.Sender, error) {
	if dryRun || cfg.DryRun {
		return push.LogSender{Logger: logger}, nil
	}
	if cfg.CredentialsFile == "" {
		return nil, fmt.Errorf("FCM_CREDENTIALS_FILE is not set")
	}
	key, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read firebase credentials: %w", err)
	}
	return push.NewFCMSender(ctx, cfg.ProjectID, key)
}

func newSendCmd(dryRun *bool) *cobra.Command {
	var userID int64
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send today's favorites notifications once and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, _, logger, cleanup, err := newService(ctx, *dryRun)
			if err != nil {
				return err
			}
			defer cleanup()

			var report service.Report
			if userID > 0 {
				report, err = svc.RunForUser(ctx, userID)
			} else {
				report, err = svc.Run(ctx)
			}
			if err != nil {
				logger.Error("favorites run failed", zap.Error(err))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "scanned %d users, notified %d, failed %d\n",
				report.UsersScanned, report.Notified, report.Failed)
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user-id", 0, "only notify this user (test send)")
	return cmd
}

func newServeCmd(dryRun *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Send favorites notifications every day on a schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc, cfg, logger, cleanup, err := newService(ctx, *dryRun)
			if err != nil {
				return err
			}
			defer cleanup()

			cron := scheduler.New(ctx, logger)
			id, err := cron.Add("favorites", cfg.Push.Schedule, svc.RunScheduled)
			if err != nil {
				return err
			}
			cron.Start()
			defer cron.Stop()

			logger.Info("notify service started", zap.Time("next_run", cron.Next(id)))
			<-ctx.Done()
			return nil
		},
	}
}
