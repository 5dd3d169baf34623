package storage

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"eatery-blue/internal/domain"

	"github.com/lib/pq"
)

// ingestionLockKey guards a whole ingestion pass across processes.
const ingestionLockKey int64 = 0x45_41_54_45_52_59

// IngestTx is one ingestion pass. Every write happens inside a single
// transaction that holds a transaction-scoped advisory lock.
type IngestTx struct {
	tx *sql.Tx
}

// BeginIngestion opens the pass transaction. It returns
// domain.ErrIngestionInProgress when another pass holds the lock.
func (r *PostgresRepository) BeginIngestion(ctx context.Context) (*IngestTx, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin ingestion: %w", err)
	}

	var locked bool
	if err := tx.QueryRowContext(ctx, `SELECT pg_try_advisory_xact_lock($1)`, ingestionLockKey).Scan(&locked); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("failed to take ingestion lock: %w", err)
	}
	if !locked {
		_ = tx.Rollback()
		return nil, domain.ErrIngestionInProgress
	}
	return &IngestTx{tx: tx}, nil
}

func (t *IngestTx) Commit() error {
	return t.tx.Commit()
}

func (t *IngestTx) Rollback() error {
	err := t.tx.Rollback()
	if err == sql.ErrTxDone {
		return nil
	}
	return err
}

func (t *IngestTx) EateryExists(ctx context.Context, id domain.EateryID) (bool, error) {
	var exists bool
	err := t.tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM eateries WHERE id = $1)`, int(id)).Scan(&exists)
	return exists, err
}

func (t *IngestTx) InsertEatery(ctx context.Context, e *domain.Eatery) error {
	return insertEatery(ctx, t.tx, e)
}

func (t *IngestTx) UpdateEatery(ctx context.Context, e *domain.Eatery) error {
	return updateEatery(ctx, t.tx, e)
}

// UpsertEvent keys events by (eatery, description, start) so that vote
// counters and IDs survive a rebuild.
func (t *IngestTx) UpsertEvent(ctx context.Context, ev *domain.Event) error {
	return t.tx.QueryRowContext(ctx, `
		INSERT INTO events (eatery_id, event_description, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (eatery_id, event_description, start_time)
		DO UPDATE SET end_time = EXCLUDED.end_time
		RETURNING id, upvotes, downvotes
	`, int(ev.EateryID), string(ev.Description), ev.Start, ev.End).
		Scan(&ev.ID, &ev.Upvotes, &ev.Downvotes)
}

// DeleteEventsExcept removes every event not produced by this pass.
func (t *IngestTx) DeleteEventsExcept(ctx context.Context, keep []int64) (int64, error) {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM events WHERE NOT (id = ANY($1))`, idArray(keep))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (t *IngestTx) UpsertCategory(ctx context.Context, eventID int64, name string) (int64, error) {
	var id int64
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO categories (event_id, category)
		VALUES ($1, $2)
		ON CONFLICT (event_id, category) DO UPDATE SET category = EXCLUDED.category
		RETURNING id
	`, eventID, name).Scan(&id)
	return id, err
}

// PruneCategories drops categories of the given events that were not seen.
func (t *IngestTx) PruneCategories(ctx context.Context, eventIDs, keep []int64) error {
	_, err := t.tx.ExecContext(ctx, `
		DELETE FROM categories
		WHERE event_id = ANY($1) AND NOT (id = ANY($2))
	`, idArray(eventIDs), idArray(keep))
	return err
}

func (t *IngestTx) UpsertItem(ctx context.Context, categoryID int64, name string, basePrice float64) (int64, error) {
	var id int64
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO items (category_id, name, base_price)
		VALUES ($1, $2, $3)
		ON CONFLICT (category_id, name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, categoryID, name, basePrice).Scan(&id)
	return id, err
}

// PruneItems drops items of the given categories that were not seen.
func (t *IngestTx) PruneItems(ctx context.Context, categoryIDs, keep []int64) error {
	_, err := t.tx.ExecContext(ctx, `
		DELETE FROM items
		WHERE category_id = ANY($1) AND NOT (id = ANY($2))
	`, idArray(categoryIDs), idArray(keep))
	return err
}

func (t *IngestTx) AddDietaryPreferences(ctx context.Context, itemID int64, names []string) error {
	return t.attachTags(ctx, itemID, names, attachDietaryPreference)
}

func (t *IngestTx) AddAllergens(ctx context.Context, itemID int64, names []string) error {
	return t.attachTags(ctx, itemID, names, attachAllergen)
}

const attachDietaryPreference = `
	WITH tag AS (
		INSERT INTO dietary_preferences (name) VALUES ($2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	)
	INSERT INTO item_dietary_preferences (item_id, dietary_preference_id)
	SELECT $1, id FROM tag
	ON CONFLICT DO NOTHING`

const attachAllergen = `
	WITH tag AS (
		INSERT INTO allergens (name) VALUES ($2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	)
	INSERT INTO item_allergens (item_id, allergen_id)
	SELECT $1, id FROM tag
	ON CONFLICT DO NOTHING`

// attachTags is get-or-create on the tag plus an idempotent link.
// Existing links are never removed.
func (t *IngestTx) attachTags(ctx context.Context, itemID int64, names []string, query string) error {
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, err := t.tx.ExecContext(ctx, query, itemID, name); err != nil {
			return fmt.Errorf("failed to attach tag %q: %w", name, err)
		}
	}
	return nil
}

// idArray binds ids as a Postgres array. A nil slice would bind NULL and
// make every NOT ANY predicate unknown.
func idArray(ids []int64) driver.Valuer {
	if ids == nil {
		ids = []int64{}
	}
	return pq.Int64Array(ids)
}
