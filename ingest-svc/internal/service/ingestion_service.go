package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"eatery-blue/ingest-svc/internal/pipeline"
	"eatery-blue/internal/domain"

	"go.uber.org/zap"
)

type Runner interface {
	Run(ctx context.Context) (*pipeline.RunResult, error)
}

type Status struct {
	Running   bool                `json:"running"`
	LastRun   *pipeline.RunResult `json:"last_run,omitempty"`
	LastError string              `json:"last_error,omitempty"`
	LastTried *time.Time          `json:"last_attempt,omitempty"`
}

type IngestionServiceInterface interface {
	Trigger(ctx context.Context) (*pipeline.RunResult, error)
	Status() Status
}

// IngestionService serializes passes inside one process and remembers the
// outcome of the last attempt. Cross-process exclusion is the store's
// advisory lock.
type IngestionService struct {
	runner Runner
	logger *zap.Logger
	now    func() time.Time

	mu     sync.Mutex
	status Status
}

func NewIngestionService(runner Runner, logger *zap.Logger) *IngestionService {
	return &IngestionService{runner: runner, logger: logger, now: time.Now}
}

func (s *IngestionService) Trigger(ctx context.Context) (*pipeline.RunResult, error) {
	s.mu.Lock()
	if s.status.Running {
		s.mu.Unlock()
		return nil, domain.ErrIngestionInProgress
	}
	s.status.Running = true
	tried := s.now()
	s.status.LastTried = &tried
	s.mu.Unlock()

	res, err := s.runner.Run(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.Running = false
	if err != nil {
		s.status.LastError = err.Error()
		if errors.Is(err, domain.ErrIngestionInProgress) {
			s.logger.Info("ingestion skipped, another pass is running")
		} else {
			s.logger.Error("ingestion failed", zap.Error(err))
		}
		return nil, err
	}
	s.status.LastError = ""
	s.status.LastRun = res
	return res, nil
}

// RunScheduled is the cron entry point. Failures are logged and retried at
// the next tick.
func (s *IngestionService) RunScheduled(ctx context.Context) {
	_, _ = s.Trigger(ctx)
}

func (s *IngestionService) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

var _ IngestionServiceInterface = (*IngestionService)(nil)
