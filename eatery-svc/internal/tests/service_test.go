package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"eatery-blue/eatery-svc/internal/mocks"
	"eatery-blue/eatery-svc/internal/service"
	"eatery-blue/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func ptr[T any](v T) *T { return &v }

var fixedNow = time.Date(2026, 10, 16, 12, 0, 0, 0, domain.Location)

func newService(t *testing.T) (*service.EateryService, *mocks.EateryRepository, *mocks.CacheInvalidator, *mocks.QRGenerator) {
	repo := mocks.NewEateryRepository(t)
	cache := mocks.NewCacheInvalidator(t)
	qr := mocks.NewQRGenerator(t)
	svc := service.NewEateryService(repo, cache, qr, zap.NewNop()).WithClock(func() time.Time { return fixedNow })
	return svc, repo, cache, qr
}

func sampleEateries() []domain.Eatery {
	return []domain.Eatery{
		{ID: 1, Name: ptr("104West!")},
		{ID: 2, Name: ptr("Libe Café"), MenuSummary: ptr("Coffee and pastries")},
	}
}

func sampleEvents() []domain.Event {
	return []domain.Event{
		{ID: 10, EateryID: 1, Description: domain.EventLunch, Start: 100, End: 200},
		{ID: 11, EateryID: 1, Description: domain.EventDinner, Start: 300, End: 400},
	}
}

func TestEateryService_List(t *testing.T) {
	svc, repo, _, _ := newService(t)
	ctx := context.Background()

	menu := []domain.Category{{ID: 7, EventID: 10, Name: "Entrees", Items: []domain.Item{{ID: 70, Name: "Pasta"}}}}
	repo.On("ListEateries", ctx).Return(sampleEateries(), nil).Once()
	repo.On("ListEvents", ctx, (*domain.TimeWindow)(nil)).Return(sampleEvents(), nil).Once()
	repo.On("ListMenus", ctx, []int64{10, 11}).Return(map[int64][]domain.Category{10: menu}, nil).Once()

	eateries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, eateries, 2)

	assert.Equal(t, domain.DefaultMenuSummary, *eateries[0].MenuSummary)
	assert.Equal(t, "Coffee and pastries", *eateries[1].MenuSummary)

	require.Len(t, eateries[0].Events, 2)
	assert.Equal(t, menu, eateries[0].Events[0].Menu)
	assert.NotNil(t, eateries[0].Events[1].Menu)
	assert.Empty(t, eateries[0].Events[1].Menu)
	assert.NotNil(t, eateries[1].Events)
	assert.Empty(t, eateries[1].Events)
}

func TestEateryService_ListSimple(t *testing.T) {
	svc, repo, _, _ := newService(t)
	ctx := context.Background()

	repo.On("ListEateries", ctx).Return(sampleEateries(), nil).Once()
	repo.On("ListEvents", ctx, (*domain.TimeWindow)(nil)).Return(sampleEvents(), nil).Once()

	eateries, err := svc.ListSimple(ctx)
	require.NoError(t, err)
	require.Len(t, eateries[0].Events, 2)
	assert.Nil(t, eateries[0].Events[0].Menu)
}

func TestEateryService_DayView(t *testing.T) {
	tests := []struct {
		name   string
		offset int
	}{
		{name: "today", offset: 0},
		{name: "tomorrow", offset: 1},
		{name: "yesterday", offset: -1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, repo, _, _ := newService(t)
			ctx := context.Background()

			start, end := domain.DayBounds(fixedNow, testCase.offset)
			window := &domain.TimeWindow{Start: start, End: end}
			inWindow := []domain.Event{{ID: 10, EateryID: 1, Description: domain.EventLunch, Start: start + 3600, End: start + 7200}}

			repo.On("ListEateries", ctx).Return(sampleEateries(), nil).Once()
			repo.On("ListEvents", ctx, window).Return(inWindow, nil).Once()
			repo.On("ListMenus", ctx, []int64{10}).Return(map[int64][]domain.Category{}, nil).Once()

			eateries, err := svc.DayView(ctx, testCase.offset)
			require.NoError(t, err)
			require.Len(t, eateries, 2, "eateries without events are still listed")
			assert.Len(t, eateries[0].Events, 1)
			assert.Empty(t, eateries[1].Events)
		})
	}
}

func TestEateryService_ListErrors(t *testing.T) {
	svc, repo, _, _ := newService(t)
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	repo.On("ListEateries", ctx).Return(nil, dbErr).Once()
	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, dbErr)

	repo.On("ListEateries", ctx).Return(sampleEateries(), nil).Once()
	repo.On("ListEvents", ctx, (*domain.TimeWindow)(nil)).Return(nil, dbErr).Once()
	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, dbErr)
}

func TestEateryService_Get(t *testing.T) {
	svc, repo, _, _ := newService(t)
	ctx := context.Background()

	repo.On("GetEatery", ctx, domain.EateryID(1)).Return(&domain.Eatery{ID: 1, Name: ptr("104West!")}, nil).Once()
	repo.On("ListEateryEvents", ctx, domain.EateryID(1)).Return(sampleEvents(), nil).Once()
	repo.On("ListMenus", ctx, []int64{10, 11}).Return(map[int64][]domain.Category{}, nil).Once()

	e, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, e.Events, 2)
	assert.Equal(t, domain.DefaultMenuSummary, *e.MenuSummary)

	repo.On("GetEatery", ctx, domain.EateryID(99)).Return(nil, domain.ErrNotFound).Once()
	_, err = svc.Get(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func rawFields(t *testing.T, body string) map[string]json.RawMessage {
	t.Helper()
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &fields))
	return fields
}

func TestEateryService_Update(t *testing.T) {
	svc, repo, cache, _ := newService(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		body          string
		prepareMocks  func()
		expectedError error
	}{
		{
			name: "success",
			body: `{"name":"104 West","latitude":42.1,"campus_area":"North","payment_accepts_brbs":true}`,
			prepareMocks: func() {
				repo.On("UpdateEatery", ctx, mock.MatchedBy(func(e *domain.Eatery) bool {
					return e.ID == 1 &&
						*e.Name == "104 West" &&
						*e.Latitude == 42.1 &&
						*e.CampusArea == domain.CampusAreaNorth &&
						*e.PaymentAcceptsBRBs &&
						e.Location == nil &&
						e.PaymentAcceptsCash == nil
				})).Return(nil).Once()
				cache.On("InvalidateAll", ctx).Return(4, nil).Once()
				repo.On("GetEatery", ctx, domain.EateryID(1)).Return(&domain.Eatery{ID: 1, Name: ptr("104 West")}, nil).Once()
				repo.On("ListEateryEvents", ctx, domain.EateryID(1)).Return([]domain.Event{}, nil).Once()
				repo.On("ListMenus", ctx, []int64{}).Return(map[int64][]domain.Category{}, nil).Once()
			},
		},
		{
			name: "cache_failure_is_not_fatal",
			body: `{"menu_summary":"Sandwiches"}`,
			prepareMocks: func() {
				repo.On("UpdateEatery", ctx, mock.Anything).Return(nil).Once()
				cache.On("InvalidateAll", ctx).Return(0, errors.New("redis down")).Once()
				repo.On("GetEatery", ctx, domain.EateryID(1)).Return(&domain.Eatery{ID: 1}, nil).Once()
				repo.On("ListEateryEvents", ctx, domain.EateryID(1)).Return([]domain.Event{}, nil).Once()
				repo.On("ListMenus", ctx, []int64{}).Return(map[int64][]domain.Category{}, nil).Once()
			},
		},
		{
			name:          "unknown_field",
			body:          `{"name":"x","rating":5}`,
			prepareMocks:  func() {},
			expectedError: service.ErrInvalidField,
		},
		{
			name:          "wrong_type",
			body:          `{"latitude":"north"}`,
			prepareMocks:  func() {},
			expectedError: service.ErrInvalidField,
		},
		{
			name:          "unknown_campus_area",
			body:          `{"campus_area":"Moon"}`,
			prepareMocks:  func() {},
			expectedError: service.ErrInvalidField,
		},
		{
			name:          "null_value",
			body:          `{"location":null}`,
			prepareMocks:  func() {},
			expectedError: service.ErrInvalidField,
		},
		{
			name:          "empty_body",
			body:          `{}`,
			prepareMocks:  func() {},
			expectedError: service.ErrInvalidField,
		},
		{
			name: "not_found",
			body: `{"name":"x"}`,
			prepareMocks: func() {
				repo.On("UpdateEatery", ctx, mock.Anything).Return(domain.ErrNotFound).Once()
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			e, err := svc.Update(ctx, 1, rawFields(t, testCase.body))
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				assert.Nil(t, e)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.EateryID(1), e.ID)
		})
	}
}

func TestParsePatch_AllAllowedFields(t *testing.T) {
	patch, err := service.ParsePatch(3, rawFields(t, `{
		"name": "Atrium",
		"menu_summary": "Soup",
		"location": "Sage Hall",
		"campus_area": "",
		"online_order_url": "https://order.example/atrium",
		"latitude": 42.44,
		"longitude": -76.48,
		"payment_accepts_meal_swipes": false,
		"payment_accepts_brbs": true,
		"payment_accepts_cash": true,
		"image_url": "https://img.example/atrium.jpg"
	}`))
	require.NoError(t, err)

	assert.Equal(t, domain.EateryID(3), patch.ID)
	assert.Equal(t, "Atrium", *patch.Name)
	assert.Equal(t, "Soup", *patch.MenuSummary)
	assert.Equal(t, "Sage Hall", *patch.Location)
	assert.Equal(t, domain.CampusAreaNone, *patch.CampusArea)
	assert.Equal(t, "https://order.example/atrium", *patch.OnlineOrderURL)
	assert.Equal(t, 42.44, *patch.Latitude)
	assert.Equal(t, -76.48, *patch.Longitude)
	assert.False(t, *patch.PaymentAcceptsMealSwipes)
	assert.True(t, *patch.PaymentAcceptsBRBs)
	assert.True(t, *patch.PaymentAcceptsCash)
	assert.Equal(t, "https://img.example/atrium.jpg", *patch.ImageURL)
}

func TestEateryService_Vote(t *testing.T) {
	svc, repo, cache, _ := newService(t)
	ctx := context.Background()

	repo.On("VoteEvent", ctx, int64(5), true).Return(&domain.Event{ID: 5, Upvotes: 1}, nil).Once()
	cache.On("InvalidateAll", ctx).Return(1, nil).Once()
	ev, err := svc.Vote(ctx, 5, "up")
	require.NoError(t, err)
	assert.Equal(t, 1, ev.Upvotes)

	repo.On("VoteEvent", ctx, int64(5), false).Return(nil, domain.ErrNotFound).Once()
	_, err = svc.Vote(ctx, 5, "down")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Vote(ctx, 5, "sideways")
	assert.ErrorIs(t, err, service.ErrInvalidVote)
}

func TestEateryService_GetEvent(t *testing.T) {
	svc, repo, _, _ := newService(t)
	ctx := context.Background()

	menu := []domain.Category{{ID: 1, EventID: 5, Name: "Grill"}}
	repo.On("GetEvent", ctx, int64(5)).Return(&domain.Event{ID: 5}, nil).Once()
	repo.On("ListMenus", ctx, []int64{5}).Return(map[int64][]domain.Category{5: menu}, nil).Once()

	ev, err := svc.GetEvent(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, menu, ev.Menu)
}

func TestEateryService_OrderQRCode(t *testing.T) {
	svc, repo, _, qr := newService(t)
	ctx := context.Background()

	repo.On("GetEatery", ctx, domain.EateryID(1)).Return(&domain.Eatery{ID: 1, OnlineOrderURL: ptr("https://order.example/1")}, nil).Once()
	qr.On("Generate", "https://order.example/1").Return([]byte("png"), nil).Once()
	png, err := svc.OrderQRCode(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	repo.On("GetEatery", ctx, domain.EateryID(2)).Return(&domain.Eatery{ID: 2}, nil).Once()
	_, err = svc.OrderQRCode(ctx, 2)
	assert.ErrorIs(t, err, service.ErrNoOrderURL)
}

func TestDefaultQRGenerator(t *testing.T) {
	tests := []struct {
		name      string
		generator service.DefaultQRGenerator
		target    string
	}{
		{name: "absolute", target: "https://order.example/1"},
		{name: "relative_with_base", generator: service.DefaultQRGenerator{BaseURL: "https://eatery.example/"}, target: "/order/1"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			png, err := testCase.generator.Generate(testCase.target)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
		})
	}
}

func TestParsePatch_FieldError(t *testing.T) {
	tests := []struct {
		name          string
		fields        map[string]json.RawMessage
		expectedField string
	}{
		{name: "wrong_type", fields: map[string]json.RawMessage{"latitude": json.RawMessage(`"north"`)}, expectedField: "latitude"},
		{name: "unknown", fields: map[string]json.RawMessage{"rating": json.RawMessage(`5`)}, expectedField: "rating"},
		{name: "null", fields: map[string]json.RawMessage{"location": json.RawMessage(`null`)}, expectedField: "location"},
		{name: "empty", fields: map[string]json.RawMessage{}, expectedField: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := service.ParsePatch(1, testCase.fields)
			var fieldErr *service.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.ErrorIs(t, err, service.ErrInvalidField)
			assert.Equal(t, testCase.expectedField, fieldErr.Field)
		})
	}
}
