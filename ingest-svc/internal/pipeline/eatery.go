package pipeline

import (
	"context"
	"fmt"
	"strings"

	"eatery-blue/internal/domain"

	"go.uber.org/zap"
)

const (
	payMethodBRBs       = "Meal Plan - Debit"
	payMethodMealSwipes = "Meal Plan - Swipe"
)

type resolvedEatery struct {
	ID   domain.EateryID
	Feed domain.FeedEatery
}

// NormalizeEatery builds the attribute set written for one feed entry.
// Blank text is left unset so that a partial update keeps the stored value.
// Cash is always accepted.
func NormalizeEatery(id domain.EateryID, imageURL string, raw domain.FeedEatery) *domain.Eatery {
	area := domain.ParseCampusArea(raw.CampusArea.DescrShort)
	cash := true
	brbs := hasPayMethod(raw.PayMethods, payMethodBRBs)
	swipes := hasPayMethod(raw.PayMethods, payMethodMealSwipes)

	e := &domain.Eatery{
		ID:                       id,
		Name:                     nonBlank(raw.Name),
		Location:                 nonBlank(raw.Location),
		CampusArea:               &area,
		Latitude:                 raw.Latitude,
		Longitude:                raw.Longitude,
		PaymentAcceptsMealSwipes: &swipes,
		PaymentAcceptsBRBs:       &brbs,
		PaymentAcceptsCash:       &cash,
	}
	if imageURL != "" {
		e.ImageURL = &imageURL
	}
	if raw.OnlineOrderURL != nil {
		e.OnlineOrderURL = nonBlank(*raw.OnlineOrderURL)
	}
	return e
}

func hasPayMethod(methods []domain.FeedDescr, want string) bool {
	for _, m := range methods {
		if m.DescrShort == want {
			return true
		}
	}
	return false
}

func nonBlank(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// upsertEateries writes every recognized eatery and returns them in feed
// order. Unrecognized entries are skipped.
func (p *Pipeline) upsertEateries(ctx context.Context, store Store, feed []domain.FeedEatery) ([]resolvedEatery, int, error) {
	resolved := make([]resolvedEatery, 0, len(feed))
	seen := make(map[domain.EateryID]struct{}, len(feed))
	skipped := 0

	for _, raw := range feed {
		id, image, ok := p.resolver.Resolve(raw.ID)
		if !ok {
			skipped++
			continue
		}
		if _, dup := seen[id]; dup {
			p.logger.Warn("duplicate eatery in feed", zap.Int("dining_id", raw.ID), zap.Int("eatery_id", int(id)))
			continue
		}
		seen[id] = struct{}{}

		e := NormalizeEatery(id, image, raw)
		exists, err := store.EateryExists(ctx, id)
		if err != nil {
			return nil, skipped, fmt.Errorf("failed to look up eatery %d: %w", id, err)
		}
		if exists {
			err = store.UpdateEatery(ctx, e)
		} else {
			err = store.InsertEatery(ctx, e)
		}
		if err != nil {
			return nil, skipped, fmt.Errorf("failed to upsert eatery %d: %w", id, err)
		}
		resolved = append(resolved, resolvedEatery{ID: id, Feed: raw})
	}
	return resolved, skipped, nil
}
