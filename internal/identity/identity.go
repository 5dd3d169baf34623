// Package identity translates feed identifiers (numeric dining IDs and
// free-text vendor slugs) into internal eatery identities.
package identity

import (
	"fmt"
	"strings"
	"unicode"

	"eatery-blue/internal/domain"

	"go.uber.org/zap"
)

type index struct {
	byDining map[int]*Entry
	bySlug   map[string]*Entry
	byID     map[domain.EateryID]*Entry
}

var defaultIndex = mustBuildIndex(table)

func mustBuildIndex(entries []Entry) *index {
	idx, err := buildIndex(entries)
	if err != nil {
		panic(err)
	}
	return idx
}

// buildIndex derives the reverse lookups. Two entries claiming one dining ID,
// one slug or one internal ID is a data error.
func buildIndex(entries []Entry) (*index, error) {
	idx := &index{
		byDining: make(map[int]*Entry),
		bySlug:   make(map[string]*Entry),
		byID:     make(map[domain.EateryID]*Entry, len(entries)),
	}
	for i := range entries {
		e := &entries[i]
		if prev, ok := idx.byID[e.ID]; ok {
			return nil, fmt.Errorf("eatery id %d declared twice (%q, %q)", e.ID, prev.Name, e.Name)
		}
		idx.byID[e.ID] = e

		for _, diningID := range e.DiningIDs {
			if prev, ok := idx.byDining[diningID]; ok {
				return nil, fmt.Errorf("dining id %d maps to both %q and %q", diningID, prev.Name, e.Name)
			}
			idx.byDining[diningID] = e
		}
		for _, slug := range e.Slugs {
			key := NormalizeSlug(slug)
			if key == "" {
				return nil, fmt.Errorf("empty slug for %q", e.Name)
			}
			if prev, ok := idx.bySlug[key]; ok && prev.ID != e.ID {
				return nil, fmt.Errorf("slug %q maps to both %q and %q", key, prev.Name, e.Name)
			}
			idx.bySlug[key] = e
		}
	}
	return idx, nil
}

// NormalizeSlug lowercases and drops every non-alphabetic rune.
func NormalizeSlug(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Resolver reports unrecognized identifiers to its logger. Lookups never fail.
type Resolver struct {
	idx    *index
	logger *zap.Logger
}

func NewResolver(logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{idx: defaultIndex, logger: logger}
}

// Resolve maps a numeric dining ID to its internal ID and image URL. Unknown
// IDs return ok=false and the default image.
func (r *Resolver) Resolve(diningID int) (domain.EateryID, string, bool) {
	e, ok := r.idx.byDining[diningID]
	if !ok {
		r.logger.Warn("unrecognized dining id", zap.Int("dining_id", diningID))
		return 0, DefaultImageURL, false
	}
	return e.ID, imageURL(e), true
}

func (r *Resolver) ResolveSlug(raw string) (domain.EateryID, bool) {
	key := NormalizeSlug(raw)
	e, ok := r.idx.bySlug[key]
	if !ok {
		r.logger.Warn("unrecognized vendor slug", zap.String("slug", raw), zap.String("normalized", key))
		return 0, false
	}
	return e.ID, true
}

func (r *Resolver) ImageURL(id domain.EateryID) string {
	e, ok := r.idx.byID[id]
	if !ok {
		r.logger.Warn("missing image url", zap.Int("eatery_id", int(id)))
		return DefaultImageURL
	}
	return imageURL(e)
}

func (r *Resolver) Known(id domain.EateryID) bool {
	_, ok := r.idx.byID[id]
	return ok
}

func imageURL(e *Entry) string {
	if e.ImageURL == "" {
		return DefaultImageURL
	}
	return e.ImageURL
}

// Entries returns a copy of the identity table.
func Entries() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}
