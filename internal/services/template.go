package services

import "tripplanner/internal/domain/models"

// DefaultTripTemplate returns the canonical baseline document used to patch
// missing payload fields and to serve as the RESET target. The stats block
// must stay consistent with the collections below; the engine recomputes the
// same numbers after every mutation.
func DefaultTripTemplate() models.TripDocument {
	return models.TripDocument{
		ID:          "trip-jordan-classic",
		Title:       "Highlights of Jordan",
		Subtitle:    "Ancient cities, desert nights and the Dead Sea",
		Dates:       "Mar 15 - Mar 18",
		Travelers:   2,
		Description: "A four-stop loop through Jordan: Amman's hills, the rose-red city of Petra, the Wadi Rum desert and a closing float in the Dead Sea.",
		Stats: models.TripStats{
			Days:       4,
			Cities:     4,
			Activities: 5,
			Hotels:     2,
			Transports: 3,
		},
		CityStops: []models.CityStop{
			{ID: "city-amman", Name: "Amman", Dates: "Mar 15", Image: "https://images.tripplanner.dev/cities/amman.jpg"},
			{ID: "city-petra", Name: "Petra", Dates: "Mar 16", Image: "https://images.tripplanner.dev/cities/petra.jpg"},
			{ID: "city-wadi-rum", Name: "Wadi Rum", Dates: "Mar 17", Image: "https://images.tripplanner.dev/cities/wadi-rum.jpg"},
			{ID: "city-dead-sea", Name: "Dead Sea", Dates: "Mar 18", Image: "https://images.tripplanner.dev/cities/dead-sea.jpg"},
		},
		Transports: []models.Transport{
			{
				ID:            "tr-flight-amm",
				Type:          models.TransportFlight,
				Title:         "Flight to Amman",
				From:          "London", FromCode: "LHR",
				To: "Amman", ToCode: "AMM",
				DepartureDate: "Mar 15", DepartureTime: "08:40",
				ArrivalDate: "Mar 15", ArrivalTime: "15:25",
				Duration: "5h 45m", Stops: "Nonstop",
				Price: "$420", Travelers: 2,
			},
			{
				ID:            "tr-car-petra",
				Type:          models.TransportCar,
				Title:         "Rental car to Petra",
				From:          "Amman", To: "Petra",
				DepartureDate: "Mar 16", DepartureTime: "09:00",
				ArrivalDate: "Mar 16", ArrivalTime: "12:00",
				Duration: "3h", Price: "$65", Travelers: 2,
			},
			{
				ID:            "tr-transfer-dead-sea",
				Type:          models.TransportTransfer,
				Title:         "Private transfer to the Dead Sea",
				From:          "Wadi Rum", To: "Dead Sea",
				DepartureDate: "Mar 18", DepartureTime: "08:00",
				ArrivalDate: "Mar 18", ArrivalTime: "11:30",
				Duration: "3h 30m", Price: "$90", Travelers: 2,
			},
		},
		Accommodations: []models.Accommodation{
			{
				ID:    "hotel-amman-boutique",
				Name:  "Citadel View Boutique Hotel",
				Stars: 4, Rating: 8.7, Reviews: 1243,
				Image: "https://images.tripplanner.dev/hotels/citadel-view.jpg",
				Dates: "Mar 15 - Mar 16", Price: "$120",
				Provider:    "Booking.com",
				Description: "Rooftop terrace overlooking the Citadel, ten minutes from Rainbow Street.",
			},
			{
				ID:    "hotel-petra-guesthouse",
				Name:  "Petra Moon Guesthouse",
				Stars: 3, Rating: 8.9, Reviews: 861,
				Image: "https://images.tripplanner.dev/hotels/petra-moon.jpg",
				Dates: "Mar 16 - Mar 18", Price: "$95",
				Provider:    "Booking.com",
				Description: "Family-run guesthouse at the entrance of the Petra visitor centre.",
			},
		},
		DayPlans: []models.DayPlan{
			{
				Day: 1, Date: "Mar 15", DayOfWeek: "Sunday",
				Weather: "☀️", Temperature: 24, Title: "Arrival in Amman",
				Items: []models.Activity{
					{ID: "act-citadel", Type: models.ItemActivity, Title: "Amman Citadel", Location: "Jabal al-Qal'a", Rating: 4.6, Reviews: 5210, Duration: "2h", Price: "$5", Persons: 2},
					{ID: "rest-hashem", Type: models.ItemRestaurant, Title: "Dinner at Hashem", Location: "Downtown Amman", Rating: 4.5, Reviews: 10342, Price: "$12", Persons: 2},
				},
			},
			{
				Day: 2, Date: "Mar 16", DayOfWeek: "Monday",
				Weather: "☀️", Temperature: 26, Title: "Petra by day",
				Items: []models.Activity{
					{ID: "act-petra-trail", Type: models.ItemActivity, Title: "Petra Main Trail", Location: "Petra Archaeological Park", Rating: 4.9, Reviews: 18770, Duration: "5h", Price: "$70", Persons: 2},
					{ID: "act-treasury", Type: models.ItemActivity, Title: "Treasury Viewpoint hike", Location: "Al-Khazneh", Rating: 4.8, Reviews: 6431, Duration: "1h 30m", Price: "$15", Persons: 2},
				},
			},
			{
				Day: 3, Date: "Mar 17", DayOfWeek: "Tuesday",
				Weather: "☀️", Temperature: 29, Title: "Wadi Rum desert",
				Items: []models.Activity{
					{ID: "act-jeep-tour", Type: models.ItemActivity, Title: "Wadi Rum jeep tour", Location: "Wadi Rum Protected Area", Rating: 4.9, Reviews: 7922, Duration: "4h", Price: "$55", Persons: 2},
					{ID: "note-camp", Type: models.ItemNote, Title: "Overnight in a Bedouin camp, dinner included"},
				},
			},
			{
				Day: 4, Date: "Mar 18", DayOfWeek: "Wednesday",
				Weather: "⛅", Temperature: 27, Title: "Dead Sea and departure",
				Items: []models.Activity{
					{ID: "act-dead-sea", Type: models.ItemActivity, Title: "Dead Sea beach day", Location: "Sweimeh", Rating: 4.7, Reviews: 4310, Duration: "3h", Price: "$25", Persons: 2},
					{ID: "rest-panorama", Type: models.ItemRestaurant, Title: "Lunch at Panorama Dead Sea", Location: "Dead Sea Highway", Rating: 4.4, Reviews: 2105, Price: "$30", Persons: 2},
				},
			},
		},
	}
}
