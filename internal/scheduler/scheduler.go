// Package scheduler runs periodic jobs on a cron schedule with a shared
// base context.
package scheduler

import (
	"context"
	"time"

	"eatery-blue/internal/domain"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Runner struct {
	cron    *cron.Cron
	logger  *zap.Logger
	baseCtx context.Context
}

// New builds a runner in eatery local time whose specs accept an optional seconds field and
// descriptors such as "@every 12h". Overlapping runs of a job are skipped.
func New(baseCtx context.Context, logger *zap.Logger) *Runner {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	parser := cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	return &Runner{
		cron: cron.New(
			cron.WithParser(parser),
			cron.WithLocation(domain.Location),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger:  logger,
		baseCtx: baseCtx,
	}
}

func (r *Runner) Add(name, spec string, job func(context.Context)) (cron.EntryID, error) {
	id, err := r.cron.AddFunc(spec, func() {
		job(r.baseCtx)
	})
	if err == nil {
		r.logger.Info("job scheduled", zap.String("job", name), zap.String("spec", spec))
	}
	return id, err
}

// Next reports the next activation of a job, zero when unknown.
func (r *Runner) Next(id cron.EntryID) time.Time {
	return r.cron.Entry(id).Next
}

func (r *Runner) Start() {
	r.logger.Info("cron started")
	r.cron.Start()
}

func (r *Runner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.logger.Info("cron stopped")
}
