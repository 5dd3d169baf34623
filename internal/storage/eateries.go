package storage

import (
	"context"
	"database/sql"
	"errors"

	"eatery-blue/internal/domain"

	"github.com/lib/pq"
)

const eaterySelect = `
	SELECT id, name, menu_summary, image_url, location, campus_area, online_order_url,
		latitude, longitude, payment_accepts_meal_swipes, payment_accepts_brbs, payment_accepts_cash
	FROM eateries`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEatery(row rowScanner) (domain.Eatery, error) {
	var (
		e                                    domain.Eatery
		id                                   int
		name, summary, image, location, area sql.NullString
		orderURL                             sql.NullString
		lat, lng                             sql.NullFloat64
		swipes, brbs, cash                   sql.NullBool
	)
	if err := row.Scan(&id, &name, &summary, &image, &location, &area, &orderURL,
		&lat, &lng, &swipes, &brbs, &cash); err != nil {
		return e, err
	}

	e.ID = domain.EateryID(id)
	e.Name = nullString(name)
	e.MenuSummary = nullString(summary)
	e.ImageURL = nullString(image)
	e.Location = nullString(location)
	if area.Valid {
		ca := domain.ParseCampusArea(area.String)
		e.CampusArea = &ca
	}
	e.OnlineOrderURL = nullString(orderURL)
	e.Latitude = nullFloat(lat)
	e.Longitude = nullFloat(lng)
	e.PaymentAcceptsMealSwipes = nullBool(swipes)
	e.PaymentAcceptsBRBs = nullBool(brbs)
	e.PaymentAcceptsCash = nullBool(cash)
	return e, nil
}

func (r *PostgresRepository) ListEateries(ctx context.Context) ([]domain.Eatery, error) {
	rows, err := r.DB.QueryContext(ctx, eaterySelect+` ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	eateries := []domain.Eatery{}
	for rows.Next() {
		e, err := scanEatery(rows)
		if err != nil {
			return nil, err
		}
		eateries = append(eateries, e)
	}
	return eateries, rows.Err()
}

func (r *PostgresRepository) GetEatery(ctx context.Context, id domain.EateryID) (*domain.Eatery, error) {
	e, err := scanEatery(r.DB.QueryRowContext(ctx, eaterySelect+` WHERE id = $1`, int(id)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PostgresRepository) UpdateEatery(ctx context.Context, e *domain.Eatery) error {
	return updateEatery(ctx, r.DB, e)
}

const eventSelect = `
	SELECT id, eatery_id, event_description, start_time, end_time, upvotes, downvotes
	FROM events`

func scanEvent(row rowScanner) (domain.Event, error) {
	var (
		ev       domain.Event
		eateryID int
		descr    string
	)
	err := row.Scan(&ev.ID, &eateryID, &descr, &ev.Start, &ev.End, &ev.Upvotes, &ev.Downvotes)
	ev.EateryID = domain.EateryID(eateryID)
	ev.Description = domain.EventType(descr)
	return ev, err
}

// ListEvents returns every event, or with a window, the events starting
// inside it. "Open" blocks are excluded from windowed results.
func (r *PostgresRepository) ListEvents(ctx context.Context, window *domain.TimeWindow) ([]domain.Event, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if window == nil {
		rows, err = r.DB.QueryContext(ctx, eventSelect+` ORDER BY eatery_id, start_time`)
	} else {
		rows, err = r.DB.QueryContext(ctx, eventSelect+`
			WHERE start_time >= $1 AND start_time < $2 AND event_description <> $3
			ORDER BY eatery_id, start_time`, window.Start, window.End, string(domain.EventOpen))
	}
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

func (r *PostgresRepository) ListEateryEvents(ctx context.Context, id domain.EateryID) ([]domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, eventSelect+` WHERE eatery_id = $1 ORDER BY start_time`, int(id))
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

func collectEvents(rows *sql.Rows) ([]domain.Event, error) {
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (r *PostgresRepository) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	ev, err := scanEvent(r.DB.QueryRowContext(ctx, eventSelect+` WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *PostgresRepository) VoteEvent(ctx context.Context, id int64, up bool) (*domain.Event, error) {
	query := `UPDATE events SET upvotes = upvotes + 1 WHERE id = $1
		RETURNING id, eatery_id, event_description, start_time, end_time, upvotes, downvotes`
	if !up {
		query = `UPDATE events SET downvotes = downvotes + 1 WHERE id = $1
		RETURNING id, eatery_id, event_description, start_time, end_time, upvotes, downvotes`
	}
	ev, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// ListMenus loads the categories, items and tag names of the given events
// in one round trip, keyed by event ID.
func (r *PostgresRepository) ListMenus(ctx context.Context, eventIDs []int64) (map[int64][]domain.Category, error) {
	menus := make(map[int64][]domain.Category, len(eventIDs))
	if len(eventIDs) == 0 {
		return menus, nil
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT c.id, c.event_id, c.category, i.id, i.name, i.base_price,
			COALESCE((
				SELECT array_agg(dp.name ORDER BY dp.name)
				FROM item_dietary_preferences idp
				JOIN dietary_preferences dp ON dp.id = idp.dietary_preference_id
				WHERE idp.item_id = i.id
			), '{}'),
			COALESCE((
				SELECT array_agg(a.name ORDER BY a.name)
				FROM item_allergens ia
				JOIN allergens a ON a.id = ia.allergen_id
				WHERE ia.item_id = i.id
			), '{}')
		FROM categories c
		LEFT JOIN items i ON i.category_id = c.id
		WHERE c.event_id = ANY($1)
		ORDER BY c.event_id, c.id, i.id
	`, pq.Array(eventIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			catID, eventID int64
			catName        string
			itemID         sql.NullInt64
			itemName       sql.NullString
			price          sql.NullFloat64
			prefs, allergs pq.StringArray
		)
		if err := rows.Scan(&catID, &eventID, &catName, &itemID, &itemName, &price, &prefs, &allergs); err != nil {
			return nil, err
		}

		cats := menus[eventID]
		if n := len(cats); n == 0 || cats[n-1].ID != catID {
			cats = append(cats, domain.Category{ID: catID, EventID: eventID, Name: catName, Items: []domain.Item{}})
		}
		if itemID.Valid {
			last := &cats[len(cats)-1]
			last.Items = append(last.Items, domain.Item{
				ID:                 itemID.Int64,
				CategoryID:         catID,
				Name:               itemName.String,
				BasePrice:          nullFloat(price),
				DietaryPreferences: []string(prefs),
				Allergens:          []string(allergs),
			})
		}
		menus[eventID] = cats
	}
	return menus, rows.Err()
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func nullBool(v sql.NullBool) *bool {
	if !v.Valid {
		return nil
	}
	return &v.Bool
}
