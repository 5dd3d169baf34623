package pipeline

import (
	"context"
	"fmt"
	"strings"

	"eatery-blue/internal/domain"

	"go.uber.org/zap"
)

type itemSource struct {
	category  string
	name      string
	prefs     []string
	allergens []string
}

func itemName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return domain.DefaultItemName
	}
	return name
}

func eventItems(raw domain.FeedEatery, fe domain.FeedEvent, cafe bool) []itemSource {
	var out []itemSource
	if cafe {
		for _, it := range raw.DiningItems {
			out = append(out, itemSource{category: it.Category, name: it.Item, prefs: it.DietaryPreferences, allergens: it.Allergens})
		}
		return out
	}
	for _, block := range fe.Menu {
		for _, it := range block.Items {
			out = append(out, itemSource{category: block.Category, name: it.Item, prefs: it.DietaryPreferences, allergens: it.Allergens})
		}
	}
	return out
}

// buildItems attaches items and their tags to the categories of index.
// Tags are additive: an item keeps every tag it was ever given.
func (p *Pipeline) buildItems(ctx context.Context, store Store, eateries []resolvedEatery, events map[domain.EateryID][]eventRef, index menuIndex) (int, error) {
	var categoryIDs, keep []int64
	for _, byEvent := range index {
		for _, byName := range byEvent {
			for _, id := range byName {
				categoryIDs = append(categoryIDs, id)
			}
		}
	}

	seen := make(map[int64]struct{})
	for _, re := range eateries {
		cafe := IsCafe(re.Feed)
		for _, ref := range events[re.ID] {
			byName := index[re.ID][ref.Event.ID]
			for _, src := range eventItems(re.Feed, ref.Feed, cafe) {
				catID, ok := byName[categoryName(src.category)]
				if !ok {
					p.logger.Debug("item category not found",
						zap.Int("eatery_id", int(re.ID)),
						zap.String("category", src.category))
					continue
				}

				id, err := store.UpsertItem(ctx, catID, itemName(src.name), 0)
				if err != nil {
					return 0, fmt.Errorf("failed to write item %q: %w", src.name, err)
				}
				if err := store.AddDietaryPreferences(ctx, id, src.prefs); err != nil {
					return 0, err
				}
				if err := store.AddAllergens(ctx, id, src.allergens); err != nil {
					return 0, err
				}
				if _, dup := seen[id]; !dup {
					seen[id] = struct{}{}
					keep = append(keep, id)
				}
			}
		}
	}

	if len(categoryIDs) > 0 {
		if err := store.PruneItems(ctx, categoryIDs, keep); err != nil {
			return 0, fmt.Errorf("failed to prune items: %w", err)
		}
	}
	return len(keep), nil
}
