package tests

import (
	"context"
	"fmt"
	"sort"

	"eatery-blue/ingest-svc/internal/pipeline"
	"eatery-blue/internal/domain"
)

type eventKey struct {
	eatery domain.EateryID
	descr  domain.EventType
	start  int64
}

type childKey struct {
	parent int64
	name   string
}

// memStore is an in-memory pipeline.Tx that keeps the unique keys of the
// Postgres schema. It survives across passes so that re-runs can be compared.
type memStore struct {
	eateries map[domain.EateryID]domain.Eatery

	events    map[int64]domain.Event
	eventKeys map[eventKey]int64

	categories   map[int64]childKey
	categoryKeys map[childKey]int64

	items    map[int64]childKey
	itemKeys map[childKey]int64

	prefs     map[int64]map[string]struct{}
	allergens map[int64]map[string]struct{}

	nextID    int64
	inserts   int
	updates   int
	commits   int
	rollbacks int
	failOn    string
}

func newMemStore() *memStore {
	return &memStore{
		eateries:     map[domain.EateryID]domain.Eatery{},
		events:       map[int64]domain.Event{},
		eventKeys:    map[eventKey]int64{},
		categories:   map[int64]childKey{},
		categoryKeys: map[childKey]int64{},
		items:        map[int64]childKey{},
		itemKeys:     map[childKey]int64{},
		prefs:        map[int64]map[string]struct{}{},
		allergens:    map[int64]map[string]struct{}{},
	}
}

func (m *memStore) begin(ctx context.Context) (pipeline.Tx, error) {
	return m, nil
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) fail(op string) error {
	if m.failOn == op {
		return fmt.Errorf("%s: connection reset", op)
	}
	return nil
}

func (m *memStore) EateryExists(ctx context.Context, id domain.EateryID) (bool, error) {
	_, ok := m.eateries[id]
	return ok, nil
}

func (m *memStore) InsertEatery(ctx context.Context, e *domain.Eatery) error {
	if err := m.fail("InsertEatery"); err != nil {
		return err
	}
	m.inserts++
	m.eateries[e.ID] = *e
	return nil
}

func (m *memStore) UpdateEatery(ctx context.Context, e *domain.Eatery) error {
	m.updates++
	cur := m.eateries[e.ID]
	if e.Name != nil {
		cur.Name = e.Name
	}
	if e.Location != nil {
		cur.Location = e.Location
	}
	if e.ImageURL != nil {
		cur.ImageURL = e.ImageURL
	}
	if e.CampusArea != nil {
		cur.CampusArea = e.CampusArea
	}
	if e.PaymentAcceptsBRBs != nil {
		cur.PaymentAcceptsBRBs = e.PaymentAcceptsBRBs
	}
	if e.PaymentAcceptsMealSwipes != nil {
		cur.PaymentAcceptsMealSwipes = e.PaymentAcceptsMealSwipes
	}
	if e.PaymentAcceptsCash != nil {
		cur.PaymentAcceptsCash = e.PaymentAcceptsCash
	}
	m.eateries[e.ID] = cur
	return nil
}

func (m *memStore) UpsertEvent(ctx context.Context, ev *domain.Event) error {
	key := eventKey{ev.EateryID, ev.Description, ev.Start}
	if id, ok := m.eventKeys[key]; ok {
		cur := m.events[id]
		cur.End = ev.End
		m.events[id] = cur
		ev.ID, ev.Upvotes, ev.Downvotes = id, cur.Upvotes, cur.Downvotes
		return nil
	}
	ev.ID = m.id()
	m.eventKeys[key] = ev.ID
	m.events[ev.ID] = *ev
	return nil
}

func (m *memStore) DeleteEventsExcept(ctx context.Context, keep []int64) (int64, error) {
	kept := idSet(keep)
	var removed int64
	for id, ev := range m.events {
		if _, ok := kept[id]; ok {
			continue
		}
		delete(m.events, id)
		delete(m.eventKeys, eventKey{ev.EateryID, ev.Description, ev.Start})
		for catID, ck := range m.categories {
			if ck.parent == id {
				m.deleteCategory(catID)
			}
		}
		removed++
	}
	return removed, nil
}

func (m *memStore) UpsertCategory(ctx context.Context, eventID int64, name string) (int64, error) {
	key := childKey{eventID, name}
	if id, ok := m.categoryKeys[key]; ok {
		return id, nil
	}
	id := m.id()
	m.categoryKeys[key] = id
	m.categories[id] = key
	return id, nil
}

func (m *memStore) PruneCategories(ctx context.Context, eventIDs, keep []int64) error {
	scope, kept := idSet(eventIDs), idSet(keep)
	for id, ck := range m.categories {
		_, inScope := scope[ck.parent]
		_, isKept := kept[id]
		if inScope && !isKept {
			m.deleteCategory(id)
		}
	}
	return nil
}

func (m *memStore) deleteCategory(id int64) {
	delete(m.categoryKeys, m.categories[id])
	delete(m.categories, id)
	for itemID, ik := range m.items {
		if ik.parent == id {
			m.deleteItem(itemID)
		}
	}
}

func (m *memStore) UpsertItem(ctx context.Context, categoryID int64, name string, basePrice float64) (int64, error) {
	if err := m.fail("UpsertItem"); err != nil {
		return 0, err
	}
	key := childKey{categoryID, name}
	if id, ok := m.itemKeys[key]; ok {
		return id, nil
	}
	id := m.id()
	m.itemKeys[key] = id
	m.items[id] = key
	return id, nil
}

func (m *memStore) PruneItems(ctx context.Context, categoryIDs, keep []int64) error {
	scope, kept := idSet(categoryIDs), idSet(keep)
	for id, ik := range m.items {
		_, inScope := scope[ik.parent]
		_, isKept := kept[id]
		if inScope && !isKept {
			m.deleteItem(id)
		}
	}
	return nil
}

func (m *memStore) deleteItem(id int64) {
	delete(m.itemKeys, m.items[id])
	delete(m.items, id)
	delete(m.prefs, id)
	delete(m.allergens, id)
}

func (m *memStore) AddDietaryPreferences(ctx context.Context, itemID int64, names []string) error {
	addTags(m.prefs, itemID, names)
	return nil
}

func (m *memStore) AddAllergens(ctx context.Context, itemID int64, names []string) error {
	addTags(m.allergens, itemID, names)
	return nil
}

func (m *memStore) Commit() error {
	m.commits++
	return nil
}

func (m *memStore) Rollback() error {
	if m.commits == 0 {
		m.rollbacks++
	}
	return nil
}

func addTags(into map[int64]map[string]struct{}, itemID int64, names []string) {
	for _, n := range names {
		if n == "" {
			continue
		}
		if into[itemID] == nil {
			into[itemID] = map[string]struct{}{}
		}
		into[itemID][n] = struct{}{}
	}
}

func idSet(ids []int64) map[int64]struct{} {
	out := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

// snapshot renders the stored content without surrogate keys of menus so
// that two passes can be compared row for row.
func (m *memStore) snapshot() []string {
	var rows []string
	for id, e := range m.eateries {
		rows = append(rows, fmt.Sprintf("eatery %d %s", id, deref(e.Name)))
	}
	for id, ev := range m.events {
		rows = append(rows, fmt.Sprintf("event %d %d %s %d-%d", id, ev.EateryID, ev.Description, ev.Start, ev.End))
	}
	for _, ck := range m.categories {
		rows = append(rows, fmt.Sprintf("category %d %s", ck.parent, ck.name))
	}
	for id, ik := range m.items {
		cat := m.categories[ik.parent]
		rows = append(rows, fmt.Sprintf("item %d/%s/%s prefs=%v allergens=%v",
			cat.parent, cat.name, ik.name, tagList(m.prefs[id]), tagList(m.allergens[id])))
	}
	sort.Strings(rows)
	return rows
}

func (m *memStore) itemTags(eventID int64, category, name string) ([]string, []string) {
	catID := m.categoryKeys[childKey{eventID, category}]
	itemID := m.itemKeys[childKey{catID, name}]
	return tagList(m.prefs[itemID]), tagList(m.allergens[itemID])
}

func (m *memStore) eventID(eatery domain.EateryID, descr domain.EventType) int64 {
	for id, ev := range m.events {
		if ev.EateryID == eatery && ev.Description == descr {
			return id
		}
	}
	return 0
}

func tagList(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
