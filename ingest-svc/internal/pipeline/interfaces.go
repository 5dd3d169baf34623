package pipeline

import (
	"context"

	"eatery-blue/internal/domain"
	"eatery-blue/internal/storage"
)

// Store is the write surface of one ingestion pass.
type Store interface {
	EateryExists(ctx context.Context, id domain.EateryID) (bool, error)
	InsertEatery(ctx context.Context, e *domain.Eatery) error
	UpdateEatery(ctx context.Context, e *domain.Eatery) error

	UpsertEvent(ctx context.Context, ev *domain.Event) error
	DeleteEventsExcept(ctx context.Context, keep []int64) (int64, error)

	UpsertCategory(ctx context.Context, eventID int64, name string) (int64, error)
	PruneCategories(ctx context.Context, eventIDs, keep []int64) error

	UpsertItem(ctx context.Context, categoryID int64, name string, basePrice float64) (int64, error)
	PruneItems(ctx context.Context, categoryIDs, keep []int64) error
	AddDietaryPreferences(ctx context.Context, itemID int64, names []string) error
	AddAllergens(ctx context.Context, itemID int64, names []string) error
}

type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// BeginFunc opens the transaction of one pass.
type BeginFunc func(ctx context.Context) (Tx, error)

// PostgresBegin adapts the repository to BeginFunc.
func PostgresBegin(repo *storage.PostgresRepository) BeginFunc {
	return func(ctx context.Context) (Tx, error) {
		tx, err := repo.BeginIngestion(ctx)
		if err != nil {
			return nil, err
		}
		return tx, nil
	}
}

type Fetcher interface {
	Fetch(ctx context.Context) ([]domain.FeedEatery, error)
}

type StaticLoader interface {
	LoadStatic() ([]domain.FeedEatery, error)
}

type Publisher interface {
	PublishIngestion(ctx context.Context, msg domain.IngestionMessage) error
}

type Resolver interface {
	Resolve(diningID int) (domain.EateryID, string, bool)
}

var (
	_ Tx        = (*storage.IngestTx)(nil)
	_ Publisher = (*storage.KafkaPublisher)(nil)
)
