package models

// Transport types.
const (
	TransportFlight   = "flight"
	TransportTransfer = "transfer"
	TransportCar      = "car"
)

// Day-plan item types.
const (
	ItemActivity   = "activity"
	ItemRestaurant = "restaurant"
	ItemNote       = "note"
)

// TripStats caches counts derived from the document collections.
type TripStats struct {
	Days       int `json:"days"`
	Cities     int `json:"cities"`
	Activities int `json:"activities"`
	Hotels     int `json:"hotels"`
	Transports int `json:"transports"`
}

// CityStop is one itinerary stop, in chronological order.
type CityStop struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Dates string `json:"dates"`
	Image string `json:"image"`
}

type Transport struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Title         string `json:"title"`
	From          string `json:"from"`
	FromCode      string `json:"fromCode,omitempty"`
	To            string `json:"to"`
	ToCode        string `json:"toCode,omitempty"`
	DepartureDate string `json:"departureDate"`
	DepartureTime string `json:"departureTime"`
	ArrivalDate   string `json:"arrivalDate"`
	ArrivalTime   string `json:"arrivalTime"`
	Duration      string `json:"duration"`
	Stops         string `json:"stops,omitempty"`
	Price         string `json:"price"`
	Travelers     int    `json:"travelers"`
}

type Accommodation struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Stars       int     `json:"stars"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Image       string  `json:"image"`
	Dates       string  `json:"dates"`
	Price       string  `json:"price"`
	Provider    string  `json:"provider"`
	Description string  `json:"description"`
}

// Activity is a day-plan item discriminated by Type (activity/restaurant/note).
type Activity struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Title    string  `json:"title"`
	Location string  `json:"location,omitempty"`
	Image    string  `json:"image,omitempty"`
	Rating   float64 `json:"rating,omitempty"`
	Reviews  int     `json:"reviews,omitempty"`
	Duration string  `json:"duration,omitempty"`
	Price    string  `json:"price,omitempty"`
	Persons  int     `json:"persons,omitempty"`
}

type DayPlan struct {
	Day         int        `json:"day"`
	Date        string     `json:"date"`
	DayOfWeek   string     `json:"dayOfWeek"`
	Weather     string     `json:"weather"`
	Temperature int        `json:"temperature"`
	Title       string     `json:"title"`
	Items       []Activity `json:"items"`
}

// TripDocument is the canonical in-memory representation of one itinerary.
// All mutation goes through the engine; readers get value copies.
type TripDocument struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Subtitle       string          `json:"subtitle"`
	Dates          string          `json:"dates"`
	Travelers      int             `json:"travelers"`
	Description    string          `json:"description"`
	Stats          TripStats       `json:"stats"`
	CityStops      []CityStop      `json:"cityStops"`
	Transports     []Transport     `json:"transports"`
	Accommodations []Accommodation `json:"accommodations"`
	DayPlans       []DayPlan       `json:"dayPlans"`
}
