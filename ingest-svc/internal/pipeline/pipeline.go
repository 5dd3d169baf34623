// Package pipeline maps the upstream dining feed onto the relational model.
// A pass runs Eatery, Event, Category and Item stages in that order inside a
// single transaction; each stage consumes the keys produced by the previous.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"eatery-blue/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RunResult struct {
	RunID       string        `json:"run_id"`
	StartedAt   time.Time     `json:"started_at"`
	Duration    time.Duration `json:"duration"`
	Eateries    int           `json:"eateries"`
	Skipped     int           `json:"skipped"`
	Events      int           `json:"events"`
	StaleEvents int64         `json:"stale_events"`
	Categories  int           `json:"categories"`
	Items       int           `json:"items"`
}

type Pipeline struct {
	begin     BeginFunc
	fetcher   Fetcher
	static    StaticLoader
	publisher Publisher
	resolver  Resolver
	logger    *zap.Logger
	now       func() time.Time
}

type Option func(*Pipeline)

func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

func WithStatic(static StaticLoader) Option {
	return func(p *Pipeline) { p.static = static }
}

func WithPublisher(publisher Publisher) Option {
	return func(p *Pipeline) { p.publisher = publisher }
}

func New(begin BeginFunc, fetcher Fetcher, resolver Resolver, logger *zap.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		begin:    begin,
		fetcher:  fetcher,
		resolver: resolver,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes one ingestion pass. A fetch or persistence failure aborts
// the pass and rolls back every write; single bad records are logged and
// skipped.
func (p *Pipeline) Run(ctx context.Context) (*RunResult, error) {
	res := &RunResult{RunID: uuid.NewString(), StartedAt: p.now()}
	logger := p.logger.With(zap.String("run_id", res.RunID))

	feed, err := p.fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	if p.static != nil {
		extra, err := p.static.LoadStatic()
		if err != nil {
			logger.Warn("failed to load static eateries", zap.Error(err))
		} else {
			feed = append(feed, extra...)
		}
	}
	logger.Info("ingestion started", zap.Int("feed_eateries", len(feed)))

	tx, err := p.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	eateries, skipped, err := p.upsertEateries(ctx, tx, feed)
	if err != nil {
		return nil, err
	}
	res.Eateries, res.Skipped = len(eateries), skipped

	events, stale, err := p.rebuildEvents(ctx, tx, eateries)
	if err != nil {
		return nil, err
	}
	rows := make(map[int64]struct{})
	for _, refs := range events {
		for _, ref := range refs {
			rows[ref.Event.ID] = struct{}{}
		}
	}
	res.Events = len(rows)
	res.StaleEvents = stale

	index, categories, err := p.buildCategories(ctx, tx, eateries, events)
	if err != nil {
		return nil, err
	}
	res.Categories = categories

	items, err := p.buildItems(ctx, tx, eateries, events, index)
	if err != nil {
		return nil, err
	}
	res.Items = items

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit ingestion: %w", err)
	}
	res.Duration = p.now().Sub(res.StartedAt)

	logger.Info("ingestion finished",
		zap.Int("eateries", res.Eateries),
		zap.Int("skipped", res.Skipped),
		zap.Int("events", res.Events),
		zap.Int64("stale_events", res.StaleEvents),
		zap.Int("categories", res.Categories),
		zap.Int("items", res.Items),
		zap.Duration("duration", res.Duration))

	if p.publisher != nil {
		err := p.publisher.PublishIngestion(ctx, domain.IngestionMessage{
			Type:       domain.MessageIngestionCompleted,
			RunID:      res.RunID,
			Eateries:   res.Eateries,
			Events:     res.Events,
			Categories: res.Categories,
			Items:      res.Items,
			Timestamp:  p.now(),
		})
		if err != nil {
			logger.Warn("failed to publish ingestion message", zap.Error(err))
		}
	}
	return res, nil
}
