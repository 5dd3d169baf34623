package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eatery-blue/internal/domain"

	"go.uber.org/zap"
)

var errBadSchedule = errors.New("unusable schedule block")

type eventRef struct {
	Event domain.Event
	Feed  domain.FeedEvent
}

// rebuildEvents regenerates the event table from the feed. Events are
// matched on (eatery, description, start) so surviving rows keep their IDs
// and votes; every event the feed no longer lists is deleted.
func (p *Pipeline) rebuildEvents(ctx context.Context, store Store, eateries []resolvedEatery) (map[domain.EateryID][]eventRef, int64, error) {
	now := p.now()
	refs := make(map[domain.EateryID][]eventRef, len(eateries))
	var keep []int64

	for _, re := range eateries {
		for _, block := range re.Feed.OperatingHours {
			for _, fe := range block.Events {
				start, end, err := EventInstants(now, block, fe)
				if err != nil {
					p.logger.Warn("skipping event",
						zap.Int("eatery_id", int(re.ID)),
						zap.String("descr", fe.Descr),
						zap.Error(err))
					continue
				}

				ev := domain.Event{
					EateryID:    re.ID,
					Description: domain.ClassifyEvent(fe.Descr),
					Start:       start,
					End:         end,
				}
				if err := store.UpsertEvent(ctx, &ev); err != nil {
					return nil, 0, fmt.Errorf("failed to write event for eatery %d: %w", re.ID, err)
				}
				keep = append(keep, ev.ID)
				refs[re.ID] = append(refs[re.ID], eventRef{Event: ev, Feed: fe})
			}
		}
	}

	removed, err := store.DeleteEventsExcept(ctx, keep)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to delete stale events: %w", err)
	}
	return refs, removed, nil
}

// EventInstants converts one feed event into Unix start and end seconds.
// Feed timestamps win; otherwise the block's date (or weekday, for the
// static dataset) is combined with local clock strings. An end at or before
// the start rolls over to the next day.
func EventInstants(now time.Time, block domain.FeedOperatingHours, fe domain.FeedEvent) (int64, int64, error) {
	if fe.StartTimestamp > 0 && fe.EndTimestamp > 0 {
		if fe.StartTimestamp >= fe.EndTimestamp {
			return 0, 0, fmt.Errorf("%w: start %d not before end %d", errBadSchedule, fe.StartTimestamp, fe.EndTimestamp)
		}
		return fe.StartTimestamp, fe.EndTimestamp, nil
	}

	day, err := blockDate(now, block)
	if err != nil {
		return 0, 0, err
	}
	sh, sm, err := parseClock(fe.Start)
	if err != nil {
		return 0, 0, err
	}
	eh, em, err := parseClock(fe.End)
	if err != nil {
		return 0, 0, err
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), sh, sm, 0, 0, domain.Location)
	end := time.Date(day.Year(), day.Month(), day.Day(), eh, em, 0, 0, domain.Location)
	if !end.After(start) {
		end = time.Date(day.Year(), day.Month(), day.Day()+1, eh, em, 0, 0, domain.Location)
	}
	return start.Unix(), end.Unix(), nil
}

func blockDate(now time.Time, block domain.FeedOperatingHours) (time.Time, error) {
	if block.Date != "" {
		d, err := time.ParseInLocation("2006-01-02", block.Date, domain.Location)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: bad date %q", errBadSchedule, block.Date)
		}
		return d, nil
	}
	if block.Weekday != "" {
		return nextWeekday(now, block.Weekday)
	}
	return time.Time{}, fmt.Errorf("%w: block has neither date nor weekday", errBadSchedule)
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// nextWeekday is the first local date on or after today that falls on name.
func nextWeekday(now time.Time, name string) (time.Time, error) {
	want, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: bad weekday %q", errBadSchedule, name)
	}
	local := now.In(domain.Location)
	ahead := (int(want) - int(local.Weekday()) + 7) % 7
	return time.Date(local.Year(), local.Month(), local.Day()+ahead, 0, 0, 0, 0, domain.Location), nil
}

var clockLayouts = []string{"3:04pm", "3pm", "15:04"}

// parseClock reads "7:00am", "11:30 PM", "5pm" or "19:00".
func parseClock(s string) (int, int, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, norm); err == nil {
			return t.Hour(), t.Minute(), nil
		}
	}
	return 0, 0, fmt.Errorf("%w: bad clock %q", errBadSchedule, s)
}
