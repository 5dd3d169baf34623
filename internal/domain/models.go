package domain

import "errors"

var (
	ErrNotFound            = errors.New("record not found")
	ErrIngestionInProgress = errors.New("another ingestion pass holds the lock")
)

// EateryID is the stable internal identity of an eatery. Feed identifiers
// are translated to it by the identity package and never stored as keys.
type EateryID int

type CampusArea string

const (
	CampusAreaNone        CampusArea = ""
	CampusAreaWest        CampusArea = "West"
	CampusAreaNorth       CampusArea = "North"
	CampusAreaCentral     CampusArea = "Central"
	CampusAreaCollegetown CampusArea = "Collegetown"
)

// ParseCampusArea maps a feed descrshort onto the closed set of areas.
// Anything unrecognized is CampusAreaNone.
func ParseCampusArea(s string) CampusArea {
	switch CampusArea(s) {
	case CampusAreaWest, CampusAreaNorth, CampusAreaCentral, CampusAreaCollegetown:
		return CampusArea(s)
	}
	return CampusAreaNone
}

type Eatery struct {
	ID                       EateryID    `json:"id"`
	Name                     *string     `json:"name"`
	MenuSummary              *string     `json:"menu_summary"`
	ImageURL                 *string     `json:"image_url"`
	Location                 *string     `json:"location"`
	CampusArea               *CampusArea `json:"campus_area"`
	OnlineOrderURL           *string     `json:"online_order_url"`
	Latitude                 *float64    `json:"latitude"`
	Longitude                *float64    `json:"longitude"`
	PaymentAcceptsMealSwipes *bool       `json:"payment_accepts_meal_swipes"`
	PaymentAcceptsBRBs       *bool       `json:"payment_accepts_brbs"`
	PaymentAcceptsCash       *bool       `json:"payment_accepts_cash"`
	Events                   []Event     `json:"events"`
}

type EventType string

const (
	EventBreakfast EventType = "Breakfast"
	EventBrunch    EventType = "Brunch"
	EventLunch     EventType = "Lunch"
	EventDinner    EventType = "Dinner"
	EventGeneral   EventType = "General"
	// EventOpen marks an "open hours" block that carries no meal and is
	// hidden from day views.
	EventOpen EventType = "Open"
)

// ClassifyEvent coerces a feed meal-period label onto the closed enumeration.
func ClassifyEvent(descr string) EventType {
	switch t := EventType(descr); t {
	case EventBreakfast, EventBrunch, EventLunch, EventDinner, EventGeneral, EventOpen:
		return t
	}
	return EventGeneral
}

type Event struct {
	ID          int64      `json:"id"`
	EateryID    EateryID   `json:"eatery_id"`
	Description EventType  `json:"event_description"`
	Start       int64      `json:"start"`
	End         int64      `json:"end"`
	Upvotes     int        `json:"upvotes"`
	Downvotes   int        `json:"downvotes"`
	Menu        []Category `json:"menu"`
}

type Category struct {
	ID      int64  `json:"id"`
	EventID int64  `json:"event"`
	Name    string `json:"category"`
	Items   []Item `json:"items"`
}

type Item struct {
	ID                 int64    `json:"id"`
	CategoryID         int64    `json:"category"`
	Name               string   `json:"name"`
	BasePrice          *float64 `json:"base_price"`
	DietaryPreferences []string `json:"dietary_preferences"`
	Allergens          []string `json:"allergens"`
}

type User struct {
	ID            int64    `json:"id"`
	NetID         string   `json:"netid"`
	FavoriteItems []string `json:"favorite_items"`
	FCMToken      string   `json:"-"`
}

const (
	DefaultCategoryName = "General"
	DefaultItemName     = "Item"
	DefaultMenuSummary  = "Cornell Eatery"
)
