package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"
)

// locationBlueprint is the hand-authored seed for one supported location.
type locationBlueprint struct {
	name        string
	image       string
	planTitle   string
	weather     string
	temperature int
	items       []models.Activity
}

// Catalogue of locations the "add city" shortcut can fabricate. Keyed by
// lowercase name; anything else is rejected and the action does not mutate.
var locationCatalogue = map[string]locationBlueprint{
	"jerash": {
		name:        "Jerash",
		image:       "https://images.tripplanner.dev/cities/jerash.jpg",
		planTitle:   "Roman ruins of Jerash",
		weather:     "☀️",
		temperature: 25,
		items: []models.Activity{
			{Type: models.ItemActivity, Title: "Jerash Archaeological Site", Location: "Jerash", Rating: 4.8, Reviews: 9120, Duration: "3h", Price: "$14", Persons: 2},
			{Type: models.ItemActivity, Title: "Hadrian's Arch and Hippodrome", Location: "Jerash", Rating: 4.6, Reviews: 3480, Duration: "1h 30m", Price: "$8", Persons: 2},
		},
	},
	"madaba": {
		name:        "Madaba",
		image:       "https://images.tripplanner.dev/cities/madaba.jpg",
		planTitle:   "Mosaics of Madaba",
		weather:     "☀️",
		temperature: 23,
		items: []models.Activity{
			{Type: models.ItemActivity, Title: "St. George's Church mosaic map", Location: "Madaba", Rating: 4.7, Reviews: 5230, Duration: "1h", Price: "$3", Persons: 2},
		},
	},
	"aqaba": {
		name:        "Aqaba",
		image:       "https://images.tripplanner.dev/cities/aqaba.jpg",
		planTitle:   "Red Sea day in Aqaba",
		weather:     "☀️",
		temperature: 30,
		items: []models.Activity{
			{Type: models.ItemActivity, Title: "Snorkeling at the Japanese Garden reef", Location: "Aqaba Marine Park", Rating: 4.8, Reviews: 6710, Duration: "4h", Price: "$45", Persons: 2},
			{Type: models.ItemRestaurant, Title: "Seafood dinner at the marina", Location: "Aqaba Marina", Rating: 4.5, Reviews: 2890, Price: "$35", Persons: 2},
		},
	},
}

// SupportedLocations lists the names the synthesizer accepts, for the API surface.
func SupportedLocations() []string {
	out := make([]string, 0, len(locationCatalogue))
	for _, bp := range locationCatalogue {
		out = append(out, bp.name)
	}
	return out
}

// SynthesizeCityPlan fabricates a new city stop and its day plan for a
// supported location name. IDs carry a random suffix so repeated invocations
// never collide. False means the location is not supported.
func SynthesizeCityPlan(location string, doc models.TripDocument) (models.CityStop, models.DayPlan, bool) {
	bp, ok := locationCatalogue[strings.ToLower(strings.TrimSpace(location))]
	if !ok {
		return models.CityStop{}, models.DayPlan{}, false
	}

	image := bp.image
	if image == "" && len(doc.CityStops) > 0 {
		image = doc.CityStops[0].Image
	}

	date, dayOfWeek := nextTripDate(doc)
	suffix := uuid.NewString()[:8]

	city := models.CityStop{
		ID:    "city-" + suffix,
		Name:  bp.name,
		Dates: date,
		Image: image,
	}

	items := make([]models.Activity, 0, len(bp.items))
	for _, item := range bp.items {
		item.ID = "item-" + uuid.NewString()[:8]
		items = append(items, item)
	}

	plan := models.DayPlan{
		Day:         len(doc.DayPlans) + 1,
		Date:        date,
		DayOfWeek:   dayOfWeek,
		Weather:     bp.weather,
		Temperature: bp.temperature,
		Title:       bp.planTitle,
		Items:       items,
	}
	return city, plan, true
}

// nextTripDate extends the itinerary by one day past the last planned date.
// When the last date cannot be parsed the new stop stays unscheduled.
func nextTripDate(doc models.TripDocument) (string, string) {
	if len(doc.DayPlans) == 0 {
		return "To be scheduled", ""
	}
	last := doc.DayPlans[len(doc.DayPlans)-1].Date
	t, ok := utils.ParseFlexibleDate(last)
	if !ok {
		// display dates like "Mar 18" lack a year; assume the current one
		t2, err := time.Parse("Jan 2 2006", last+" "+time.Now().Format("2006"))
		if err != nil {
			return "To be scheduled", ""
		}
		t = t2
	}
	next := t.AddDate(0, 0, 1)
	return next.Format("Jan 2"), next.Weekday().String()
}
