package models

import (
	"encoding/json"
	"strconv"
	"strings"

	"tripplanner/internal/utils"
)

// FlexID tolerates identifiers arriving as either JSON strings or numbers.
type FlexID string

func (f *FlexID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	if s[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*f = FlexID(v)
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexID(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

// Price accepts either a raw number (formatted later with a currency code)
// or an already-formatted string, which passes through unchanged.
type Price struct {
	set    bool
	isText bool
	text   string
	amount float64
}

func PriceAmount(v float64) Price { return Price{set: true, amount: v} }
func PriceText(s string) Price    { return Price{set: true, isText: true, text: s} }

func (p *Price) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	if s[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		p.set, p.isText, p.text = true, true, v
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	p.set, p.amount = true, n
	return nil
}

func (p Price) IsSet() bool { return p.set }

// Display renders the price for the document. Pre-formatted strings win.
func (p Price) Display(currency string) string {
	if !p.set {
		return ""
	}
	if p.isText {
		return p.text
	}
	return utils.FormatPrice(p.amount, currency)
}

// TripPayload is the loosely-typed inbound shape from the trip-detail endpoint.
// Every field may be absent; nil pointers mean "not supplied".
type TripPayload struct {
	ID          FlexID  `json:"id"`
	Title       *string `json:"title"`
	Name        *string `json:"name"`
	Subtitle    *string `json:"subtitle"`
	Dates       *string `json:"dates"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Travelers   *int    `json:"travelers"`
	Description *string `json:"description"`
	Currency    *string `json:"currency"`

	Stats          *StatsPayload          `json:"stats"`
	CityStops      []CityStopPayload      `json:"cityStops"`
	Transports     []TransportPayload     `json:"transports"`
	Accommodations []AccommodationPayload `json:"accommodations"`
	DayPlans       []DayPlanPayload       `json:"dayPlans"`
}

type StatsPayload struct {
	Days       *int `json:"days"`
	Cities     *int `json:"cities"`
	Activities *int `json:"activities"`
	Hotels     *int `json:"hotels"`
	Transports *int `json:"transports"`
}

type CityStopPayload struct {
	ID        FlexID  `json:"id"`
	Name      *string `json:"name"`
	Dates     *string `json:"dates"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Image     *string `json:"image"`
}

type TransportPayload struct {
	ID            FlexID  `json:"id"`
	Type          *string `json:"type"`
	Title         *string `json:"title"`
	From          *string `json:"from"`
	FromCode      *string `json:"fromCode"`
	To            *string `json:"to"`
	ToCode        *string `json:"toCode"`
	DepartureDate *string `json:"departureDate"`
	DepartureTime *string `json:"departureTime"`
	ArrivalDate   *string `json:"arrivalDate"`
	ArrivalTime   *string `json:"arrivalTime"`
	Duration      *string `json:"duration"`
	Stops         *string `json:"stops"`
	Price         Price   `json:"price"`
	Travelers     *int    `json:"travelers"`
}

type AccommodationPayload struct {
	ID          FlexID   `json:"id"`
	Name        *string  `json:"name"`
	Stars       *int     `json:"stars"`
	Rating      *float64 `json:"rating"`
	Reviews     *int     `json:"reviews"`
	Image       *string  `json:"image"`
	Dates       *string  `json:"dates"`
	StartDate   *string  `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	Price       Price    `json:"price"`
	Provider    *string  `json:"provider"`
	Description *string  `json:"description"`
}

type DayPlanPayload struct {
	Day         *int              `json:"day"`
	Date        *string           `json:"date"`
	DayOfWeek   *string           `json:"dayOfWeek"`
	Weather     *string           `json:"weather"`
	Temperature *int              `json:"temperature"`
	Title       *string           `json:"title"`
	Items       []ActivityPayload `json:"items"`
}

type ActivityPayload struct {
	ID       FlexID   `json:"id"`
	Type     *string  `json:"type"`
	Title    *string  `json:"title"`
	Location *string  `json:"location"`
	Image    *string  `json:"image"`
	Rating   *float64 `json:"rating"`
	Reviews  *int     `json:"reviews"`
	Duration *string  `json:"duration"`
	Price    Price    `json:"price"`
	Persons  *int     `json:"persons"`
}
