package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"eatery-blue/internal/domain"

	"go.uber.org/zap"
)

var (
	ErrInvalidField = errors.New("invalid update field")
	ErrInvalidVote  = errors.New("vote direction must be up or down")
	ErrNoOrderURL   = errors.New("eatery has no online order url")
)

// FieldError names the rejected key of a partial update. Err carries the
// decoding detail for logs.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %v", ErrInvalidField, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", ErrInvalidField, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidField
}

type EateryService struct {
	repo   EateryRepository
	cache  CacheInvalidator
	qr     QRGenerator
	logger *zap.Logger
	now    func() time.Time
}

func NewEateryService(repo EateryRepository, cache CacheInvalidator, qr QRGenerator, logger *zap.Logger) *EateryService {
	return &EateryService{repo: repo, cache: cache, qr: qr, logger: logger, now: time.Now}
}

// WithClock replaces the clock used for day views.
func (s *EateryService) WithClock(now func() time.Time) *EateryService {
	s.now = now
	return s
}

// List returns every eatery with all of its events and their menus.
func (s *EateryService) List(ctx context.Context) ([]domain.Eatery, error) {
	return s.assemble(ctx, nil, true)
}

// ListSimple returns every eatery with its events but no menus.
func (s *EateryService) ListSimple(ctx context.Context) ([]domain.Eatery, error) {
	return s.assemble(ctx, nil, false)
}

// DayView returns every eatery with only the events that start on the local
// calendar day offset days from today. Eateries without such events are
// still listed.
func (s *EateryService) DayView(ctx context.Context, offset int) ([]domain.Eatery, error) {
	start, end := domain.DayBounds(s.now(), offset)
	return s.assemble(ctx, &domain.TimeWindow{Start: start, End: end}, true)
}

func (s *EateryService) assemble(ctx context.Context, window *domain.TimeWindow, withMenus bool) ([]domain.Eatery, error) {
	eateries, err := s.repo.ListEateries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list eateries: %w", err)
	}
	events, err := s.repo.ListEvents(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	if withMenus {
		if err := s.attachMenus(ctx, events); err != nil {
			return nil, err
		}
	}

	byEatery := make(map[domain.EateryID][]domain.Event, len(eateries))
	for _, ev := range events {
		byEatery[ev.EateryID] = append(byEatery[ev.EateryID], ev)
	}
	for i := range eateries {
		eateries[i].Events = byEatery[eateries[i].ID]
		if eateries[i].Events == nil {
			eateries[i].Events = []domain.Event{}
		}
		withDefaults(&eateries[i])
	}
	return eateries, nil
}

func (s *EateryService) attachMenus(ctx context.Context, events []domain.Event) error {
	ids := make([]int64, len(events))
	for i, ev := range events {
		ids[i] = ev.ID
	}
	menus, err := s.repo.ListMenus(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to load menus: %w", err)
	}
	for i := range events {
		events[i].Menu = menus[events[i].ID]
		if events[i].Menu == nil {
			events[i].Menu = []domain.Category{}
		}
	}
	return nil
}

func (s *EateryService) Get(ctx context.Context, id domain.EateryID) (*domain.Eatery, error) {
	e, err := s.repo.GetEatery(ctx, id)
	if err != nil {
		return nil, err
	}
	events, err := s.repo.ListEateryEvents(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list events of eatery %d: %w", id, err)
	}
	if err := s.attachMenus(ctx, events); err != nil {
		return nil, err
	}
	e.Events = events
	withDefaults(e)
	return e, nil
}

func withDefaults(e *domain.Eatery) {
	if e.MenuSummary == nil {
		summary := domain.DefaultMenuSummary
		e.MenuSummary = &summary
	}
}

// Update applies a partial update. Every key is validated before anything
// is written; a successful write drops all cached pages.
func (s *EateryService) Update(ctx context.Context, id domain.EateryID, fields map[string]json.RawMessage) (*domain.Eatery, error) {
	patch, err := ParsePatch(id, fields)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateEatery(ctx, patch); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.Get(ctx, id)
}

func (s *EateryService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.InvalidateAll(ctx); err != nil {
		s.logger.Warn("failed to invalidate page cache", zap.Error(err))
	}
}

// ParsePatch decodes a PATCH body into the columns it sets.
func ParsePatch(id domain.EateryID, fields map[string]json.RawMessage) (*domain.Eatery, error) {
	if len(fields) == 0 {
		return nil, &FieldError{Err: errors.New("no fields supplied")}
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	patch := &domain.Eatery{ID: id}
	for _, key := range keys {
		raw := fields[key]
		if string(raw) == "null" {
			return nil, &FieldError{Field: key, Err: errors.New("cannot be null")}
		}

		var err error
		switch key {
		case "name":
			patch.Name, err = decodeField[string](raw)
		case "menu_summary":
			patch.MenuSummary, err = decodeField[string](raw)
		case "location":
			patch.Location, err = decodeField[string](raw)
		case "online_order_url":
			patch.OnlineOrderURL, err = decodeField[string](raw)
		case "image_url":
			patch.ImageURL, err = decodeField[string](raw)
		case "latitude":
			patch.Latitude, err = decodeField[float64](raw)
		case "longitude":
			patch.Longitude, err = decodeField[float64](raw)
		case "payment_accepts_meal_swipes":
			patch.PaymentAcceptsMealSwipes, err = decodeField[bool](raw)
		case "payment_accepts_brbs":
			patch.PaymentAcceptsBRBs, err = decodeField[bool](raw)
		case "payment_accepts_cash":
			patch.PaymentAcceptsCash, err = decodeField[bool](raw)
		case "campus_area":
			var area *string
			area, err = decodeField[string](raw)
			if err == nil {
				parsed := domain.ParseCampusArea(*area)
				if parsed == domain.CampusAreaNone && *area != "" {
					err = fmt.Errorf("unknown campus area %q", *area)
				}
				patch.CampusArea = &parsed
			}
		default:
			return nil, &FieldError{Field: key, Err: errors.New("unknown field")}
		}
		if err != nil {
			return nil, &FieldError{Field: key, Err: err}
		}
	}
	return patch, nil
}

func decodeField[T any](raw json.RawMessage) (*T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// OrderQRCode renders the eatery's online-order link.
func (s *EateryService) OrderQRCode(ctx context.Context, id domain.EateryID) ([]byte, error) {
	e, err := s.repo.GetEatery(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.OnlineOrderURL == nil || *e.OnlineOrderURL == "" {
		return nil, ErrNoOrderURL
	}
	return s.qr.Generate(*e.OnlineOrderURL)
}

func (s *EateryService) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	ev, err := s.repo.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	menus, err := s.repo.ListMenus(ctx, []int64{id})
	if err != nil {
		return nil, fmt.Errorf("failed to load menu of event %d: %w", id, err)
	}
	ev.Menu = menus[id]
	if ev.Menu == nil {
		ev.Menu = []domain.Category{}
	}
	return ev, nil
}

func (s *EateryService) Vote(ctx context.Context, id int64, direction string) (*domain.Event, error) {
	var up bool
	switch direction {
	case "up":
		up = true
	case "down":
	default:
		return nil, ErrInvalidVote
	}
	ev, err := s.repo.VoteEvent(ctx, id, up)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return ev, nil
}
