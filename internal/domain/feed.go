package domain

// Payload shapes of the upstream dining feed. The static external-eatery
// dataset uses the same shape with weekday-based operating hours.

type FeedResponse struct {
	Status string `json:"status"`
	Data   *struct {
		Eateries []FeedEatery `json:"eateries"`
	} `json:"data"`
	Message *string `json:"message"`
}

type FeedStatic struct {
	Eateries []FeedEatery `json:"eateries"`
}

type FeedDescr struct {
	Descr      string `json:"descr"`
	DescrShort string `json:"descrshort"`
}

type FeedEatery struct {
	ID             int                  `json:"id"`
	Slug           string               `json:"slug"`
	Name           string               `json:"name"`
	NameShort      string               `json:"nameshort"`
	About          string               `json:"about"`
	CampusArea     FeedDescr            `json:"campusArea"`
	Latitude       *float64             `json:"latitude"`
	Longitude      *float64             `json:"longitude"`
	Location       string               `json:"location"`
	OnlineOrderURL *string              `json:"onlineOrderUrl"`
	PayMethods     []FeedDescr          `json:"payMethods"`
	EateryTypes    []FeedDescr          `json:"eateryTypes"`
	OperatingHours []FeedOperatingHours `json:"operatingHours"`
	DiningItems    []FeedDiningItem     `json:"diningItems"`
}

type FeedOperatingHours struct {
	Date    string      `json:"date"`
	Weekday string      `json:"weekday"`
	Status  string      `json:"status"`
	Events  []FeedEvent `json:"events"`
}

type FeedEvent struct {
	Descr          string             `json:"descr"`
	StartTimestamp int64              `json:"startTimestamp"`
	EndTimestamp   int64              `json:"endTimestamp"`
	Start          string             `json:"start"`
	End            string             `json:"end"`
	Menu           []FeedMenuCategory `json:"menu"`
}

type FeedMenuCategory struct {
	Category string     `json:"category"`
	Items    []FeedItem `json:"items"`
}

type FeedItem struct {
	Item               string   `json:"item"`
	Healthy            bool     `json:"healthy"`
	DietaryPreferences []string `json:"dietaryPreferences"`
	Allergens          []string `json:"allergens"`
}

type FeedDiningItem struct {
	Item               string   `json:"item"`
	Category           string   `json:"category"`
	Healthy            bool     `json:"healthy"`
	DietaryPreferences []string `json:"dietaryPreferences"`
	Allergens          []string `json:"allergens"`
}
