package domain_test

import (
	"testing"
	"time"

	"eatery-blue/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestClassifyEvent(t *testing.T) {
	tests := []struct {
		in   string
		want domain.EventType
	}{
		{"Breakfast", domain.EventBreakfast},
		{"Brunch", domain.EventBrunch},
		{"Lunch", domain.EventLunch},
		{"Dinner", domain.EventDinner},
		{"General", domain.EventGeneral},
		{"Open", domain.EventOpen},
		{"", domain.EventGeneral},
		{"Late Night", domain.EventGeneral},
		{"lunch", domain.EventGeneral},
	}

	for _, testCase := range tests {
		t.Run(testCase.in, func(t *testing.T) {
			assert.Equal(t, testCase.want, domain.ClassifyEvent(testCase.in))
		})
	}
}

func TestParseCampusArea(t *testing.T) {
	assert.Equal(t, domain.CampusAreaWest, domain.ParseCampusArea("West"))
	assert.Equal(t, domain.CampusAreaCollegetown, domain.ParseCampusArea("Collegetown"))
	assert.Equal(t, domain.CampusAreaNone, domain.ParseCampusArea(""))
	assert.Equal(t, domain.CampusAreaNone, domain.ParseCampusArea("South"))
}

func TestDayBounds(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		offset    int
		wantStart time.Time
		wantHours float64
	}{
		{
			name:      "late evening local is still the same day",
			now:       time.Date(2026, 10, 16, 3, 30, 0, 0, time.UTC),
			offset:    0,
			wantStart: time.Date(2026, 10, 15, 0, 0, 0, 0, domain.Location),
			wantHours: 24,
		},
		{
			name:      "tomorrow",
			now:       time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC),
			offset:    1,
			wantStart: time.Date(2026, 10, 17, 0, 0, 0, 0, domain.Location),
			wantHours: 24,
		},
		{
			name:      "yesterday",
			now:       time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC),
			offset:    -1,
			wantStart: time.Date(2026, 10, 15, 0, 0, 0, 0, domain.Location),
			wantHours: 24,
		},
		{
			name:      "spring forward day is 23 hours",
			now:       time.Date(2026, 3, 8, 12, 0, 0, 0, domain.Location),
			offset:    0,
			wantStart: time.Date(2026, 3, 8, 0, 0, 0, 0, domain.Location),
			wantHours: 23,
		},
		{
			name:      "fall back day is 25 hours",
			now:       time.Date(2026, 10, 31, 12, 0, 0, 0, domain.Location),
			offset:    1,
			wantStart: time.Date(2026, 11, 1, 0, 0, 0, 0, domain.Location),
			wantHours: 25,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			start, end := domain.DayBounds(testCase.now, testCase.offset)
			assert.Equal(t, testCase.wantStart.Unix(), start)
			assert.Equal(t, testCase.wantHours, (time.Duration(end-start) * time.Second).Hours())
		})
	}
}
