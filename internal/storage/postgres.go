package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"eatery-blue/internal/domain"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

// eateryColumns lists the writable eatery columns in a fixed order.
func eateryColumns(e *domain.Eatery) ([]string, []any) {
	var (
		cols []string
		args []any
	)
	add := func(col string, v any) {
		cols = append(cols, col)
		args = append(args, v)
	}
	if e.Name != nil {
		add("name", *e.Name)
	}
	if e.MenuSummary != nil {
		add("menu_summary", *e.MenuSummary)
	}
	if e.ImageURL != nil {
		add("image_url", *e.ImageURL)
	}
	if e.Location != nil {
		add("location", *e.Location)
	}
	if e.CampusArea != nil {
		add("campus_area", string(*e.CampusArea))
	}
	if e.OnlineOrderURL != nil {
		add("online_order_url", *e.OnlineOrderURL)
	}
	if e.Latitude != nil {
		add("latitude", *e.Latitude)
	}
	if e.Longitude != nil {
		add("longitude", *e.Longitude)
	}
	if e.PaymentAcceptsMealSwipes != nil {
		add("payment_accepts_meal_swipes", *e.PaymentAcceptsMealSwipes)
	}
	if e.PaymentAcceptsBRBs != nil {
		add("payment_accepts_brbs", *e.PaymentAcceptsBRBs)
	}
	if e.PaymentAcceptsCash != nil {
		add("payment_accepts_cash", *e.PaymentAcceptsCash)
	}
	return cols, args
}

func insertEatery(ctx context.Context, q DBTX, e *domain.Eatery) error {
	cols, args := eateryColumns(e)
	cols = append([]string{"id"}, cols...)
	args = append([]any{int(e.ID)}, args...)

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	_, err := q.ExecContext(ctx, fmt.Sprintf(
		"INSERT INTO eateries (%s) VALUES (%s)",
		strings.Join(cols, ", "), strings.Join(placeholders, ", "),
	), args...)
	return err
}

// updateEatery writes only the non-nil fields of e.
func updateEatery(ctx context.Context, q DBTX, e *domain.Eatery) error {
	cols, args := eateryColumns(e)
	if len(cols) == 0 {
		return nil
	}

	sets := make([]string, 0, len(cols)+1)
	for i, col := range cols {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+1))
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, int(e.ID))

	res, err := q.ExecContext(ctx, fmt.Sprintf(
		"UPDATE eateries SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args),
	), args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
