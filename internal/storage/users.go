package storage

import (
	"context"
	"database/sql"
	"errors"

	"eatery-blue/internal/domain"

	"github.com/lib/pq"
)

const userSelect = `SELECT id, COALESCE(netid, ''), favorite_items, COALESCE(fcm_token, '') FROM users`

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u         domain.User
		favorites pq.StringArray
	)
	err := row.Scan(&u.ID, &u.NetID, &favorites, &u.FCMToken)
	u.FavoriteItems = []string(favorites)
	return u, err
}

// ListNotifiableUsers returns users with at least one favorite and a push token.
func (r *PostgresRepository) ListNotifiableUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.DB.QueryContext(ctx, userSelect+`
		WHERE cardinality(favorite_items) > 0
			AND fcm_token IS NOT NULL AND fcm_token <> ''
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PostgresRepository) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx, userSelect+` WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ServedItems maps eatery name to the distinct item names served by events
// overlapping the window.
func (r *PostgresRepository) ServedItems(ctx context.Context, window domain.TimeWindow) (map[string][]string, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT DISTINCT e.name, i.name
		FROM events ev
		JOIN eateries e ON e.id = ev.eatery_id
		JOIN categories c ON c.event_id = ev.id
		JOIN items i ON i.category_id = c.id
		WHERE ev.start_time < $2 AND ev.end_time > $1 AND e.name IS NOT NULL
		ORDER BY e.name, i.name
	`, window.Start, window.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	served := make(map[string][]string)
	for rows.Next() {
		var eatery, item string
		if err := rows.Scan(&eatery, &item); err != nil {
			return nil, err
		}
		served[eatery] = append(served[eatery], item)
	}
	return served, rows.Err()
}
