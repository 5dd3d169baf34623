package service

import (
	"context"
	"encoding/json"

	"eatery-blue/internal/domain"
	"eatery-blue/internal/storage"
)

type EateryRepository interface {
	ListEateries(ctx context.Context) ([]domain.Eatery, error)
	GetEatery(ctx context.Context, id domain.EateryID) (*domain.Eatery, error)
	UpdateEatery(ctx context.Context, e *domain.Eatery) error
	ListEvents(ctx context.Context, window *domain.TimeWindow) ([]domain.Event, error)
	ListEateryEvents(ctx context.Context, id domain.EateryID) ([]domain.Event, error)
	GetEvent(ctx context.Context, id int64) (*domain.Event, error)
	VoteEvent(ctx context.Context, id int64, up bool) (*domain.Event, error)
	ListMenus(ctx context.Context, eventIDs []int64) (map[int64][]domain.Category, error)
}

type CacheInvalidator interface {
	InvalidateAll(ctx context.Context) (int, error)
}

type EateryServiceInterface interface {
	List(ctx context.Context) ([]domain.Eatery, error)
	ListSimple(ctx context.Context) ([]domain.Eatery, error)
	DayView(ctx context.Context, offset int) ([]domain.Eatery, error)
	Get(ctx context.Context, id domain.EateryID) (*domain.Eatery, error)
	Update(ctx context.Context, id domain.EateryID, fields map[string]json.RawMessage) (*domain.Eatery, error)
	OrderQRCode(ctx context.Context, id domain.EateryID) ([]byte, error)
	GetEvent(ctx context.Context, id int64) (*domain.Event, error)
	Vote(ctx context.Context, id int64, direction string) (*domain.Event, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessMessage(ctx context.Context, msg domain.IngestionMessage)
}

var (
	_ EateryRepository       = (*storage.PostgresRepository)(nil)
	_ CacheInvalidator       = (*storage.PageCache)(nil)
	_ EateryServiceInterface = (*EateryService)(nil)
	_ ConsumerInterface      = (*Consumer)(nil)
)
