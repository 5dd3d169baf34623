package pipeline

import (
	"context"
	"fmt"
	"strings"

	"eatery-blue/internal/domain"
)

// menuIndex maps eatery, then event, then trimmed category name to the
// category row.
type menuIndex map[domain.EateryID]map[int64]map[string]int64

func categoryName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return domain.DefaultCategoryName
	}
	return name
}

// IsCafe reports whether an eatery publishes one flat item list instead of
// per-event menus. Any "Dining Room" type makes it a dining hall.
func IsCafe(raw domain.FeedEatery) bool {
	if len(raw.EateryTypes) > 0 {
		for _, t := range raw.EateryTypes {
			if t.Descr == "Dining Room" {
				return false
			}
		}
		return true
	}
	if len(raw.DiningItems) == 0 {
		return false
	}
	for _, block := range raw.OperatingHours {
		for _, ev := range block.Events {
			if len(ev.Menu) > 0 {
				return false
			}
		}
	}
	return true
}

func menuCategoryNames(raw domain.FeedEatery, fe domain.FeedEvent, cafe bool) []string {
	var names []string
	if cafe {
		for _, item := range raw.DiningItems {
			names = append(names, categoryName(item.Category))
		}
		return names
	}
	for _, block := range fe.Menu {
		names = append(names, categoryName(block.Category))
	}
	return names
}

func (p *Pipeline) buildCategories(ctx context.Context, store Store, eateries []resolvedEatery, events map[domain.EateryID][]eventRef) (menuIndex, int, error) {
	index := make(menuIndex, len(events))
	var eventIDs, keep []int64

	for _, re := range eateries {
		cafe := IsCafe(re.Feed)
		byEvent := make(map[int64]map[string]int64)

		// Feed events that share a natural key land on one row; their menus
		// are merged into it.
		for _, ref := range events[re.ID] {
			byName, ok := byEvent[ref.Event.ID]
			if !ok {
				byName = make(map[string]int64)
				byEvent[ref.Event.ID] = byName
				eventIDs = append(eventIDs, ref.Event.ID)
			}
			for _, name := range menuCategoryNames(re.Feed, ref.Feed, cafe) {
				if _, ok := byName[name]; ok {
					continue
				}
				id, err := store.UpsertCategory(ctx, ref.Event.ID, name)
				if err != nil {
					return nil, 0, fmt.Errorf("failed to write category %q for event %d: %w", name, ref.Event.ID, err)
				}
				byName[name] = id
				keep = append(keep, id)
			}
		}
		index[re.ID] = byEvent
	}

	if len(eventIDs) > 0 {
		if err := store.PruneCategories(ctx, eventIDs, keep); err != nil {
			return nil, 0, fmt.Errorf("failed to prune categories: %w", err)
		}
	}
	return index, len(keep), nil
}
