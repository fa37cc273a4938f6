package services

import (
	"fmt"
	"strings"

	deep "github.com/brunoga/deep"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"
)

// Hardcoded last-resort defaults for nested entities whose template
// counterpart (same index) is also missing.
const (
	defaultActivityTitle = "Untitled Activity"
	defaultWeather       = "☀️"
	defaultTemperature   = 24
)

// NormalizeTrip reconciles a partially-populated wire payload against the
// baseline template and always returns a structurally complete document.
// A nil payload degrades to a full template clone; normalization never fails.
func NormalizeTrip(p *models.TripPayload, tpl models.TripDocument) models.TripDocument {
	doc := deep.MustCopy(tpl)
	if p == nil {
		return doc
	}

	currency := "USD"
	if p.Currency != nil && strings.TrimSpace(*p.Currency) != "" {
		currency = *p.Currency
	}

	if string(p.ID) != "" {
		doc.ID = string(p.ID)
	}
	doc.Title = utils.FirstNonEmpty(strDeref(p.Title), strDeref(p.Name), tpl.Title)
	doc.Subtitle = utils.FirstNonEmpty(strDeref(p.Subtitle), tpl.Subtitle)
	doc.Dates = utils.FirstNonEmpty(
		strDeref(p.Dates),
		utils.DateRangeLabel(strDeref(p.StartDate), strDeref(p.EndDate), ""),
		tpl.Dates,
	)
	if p.Travelers != nil {
		doc.Travelers = *p.Travelers
	}
	doc.Description = utils.FirstNonEmpty(strDeref(p.Description), tpl.Description)

	// Collections are replace-if-nonempty: a nonempty payload collection fully
	// replaces the template's, otherwise the template collection stays.
	if len(p.CityStops) > 0 {
		doc.CityStops = make([]models.CityStop, 0, len(p.CityStops))
		for i, cp := range p.CityStops {
			doc.CityStops = append(doc.CityStops, normalizeCityStop(cp, entityAt(tpl.CityStops, i), i))
		}
	}
	if len(p.Transports) > 0 {
		doc.Transports = make([]models.Transport, 0, len(p.Transports))
		for i, tp := range p.Transports {
			doc.Transports = append(doc.Transports, normalizeTransport(tp, entityAt(tpl.Transports, i), i, currency))
		}
	}
	if len(p.Accommodations) > 0 {
		doc.Accommodations = make([]models.Accommodation, 0, len(p.Accommodations))
		for i, ap := range p.Accommodations {
			doc.Accommodations = append(doc.Accommodations, normalizeAccommodation(ap, entityAt(tpl.Accommodations, i), i, currency))
		}
	}
	if len(p.DayPlans) > 0 {
		doc.DayPlans = make([]models.DayPlan, 0, len(p.DayPlans))
		for i, dp := range p.DayPlans {
			doc.DayPlans = append(doc.DayPlans, normalizeDayPlan(dp, entityAt(tpl.DayPlans, i), i, currency))
		}
	}

	doc.Stats = normalizeStats(p.Stats, tpl.Stats, doc)
	return doc
}

// entityAt returns a pointer to s[i] when in range, else nil. The pointer is
// only read, never written through.
func entityAt[T any](s []T, i int) *T {
	if i >= 0 && i < len(s) {
		return &s[i]
	}
	return nil
}

func strDeref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func normalizeCityStop(cp models.CityStopPayload, base *models.CityStop, idx int) models.CityStop {
	var b models.CityStop
	if base != nil {
		b = *base
	}
	return models.CityStop{
		ID:    utils.FirstNonEmpty(string(cp.ID), b.ID, fmt.Sprintf("city-%d", idx+1)),
		Name:  utils.FirstNonEmpty(strDeref(cp.Name), b.Name, "Unknown City"),
		Dates: utils.FirstNonEmpty(strDeref(cp.Dates), utils.DateRangeLabel(strDeref(cp.StartDate), strDeref(cp.EndDate), ""), b.Dates),
		Image: utils.FirstNonEmpty(strDeref(cp.Image), b.Image),
	}
}

func normalizeTransport(tp models.TransportPayload, base *models.Transport, idx int, currency string) models.Transport {
	var b models.Transport
	if base != nil {
		b = *base
	}
	out := models.Transport{
		ID:            utils.FirstNonEmpty(string(tp.ID), b.ID, fmt.Sprintf("transport-%d", idx+1)),
		Type:          normalizeTransportType(strDeref(tp.Type), b.Type),
		Title:         utils.FirstNonEmpty(strDeref(tp.Title), b.Title, "Transport"),
		From:          utils.FirstNonEmpty(strDeref(tp.From), b.From),
		FromCode:      utils.FirstNonEmpty(strDeref(tp.FromCode), b.FromCode),
		To:            utils.FirstNonEmpty(strDeref(tp.To), b.To),
		ToCode:        utils.FirstNonEmpty(strDeref(tp.ToCode), b.ToCode),
		DepartureDate: utils.FirstNonEmpty(utils.FormatDateShort(strDeref(tp.DepartureDate)), b.DepartureDate),
		DepartureTime: utils.FirstNonEmpty(strDeref(tp.DepartureTime), b.DepartureTime),
		ArrivalDate:   utils.FirstNonEmpty(utils.FormatDateShort(strDeref(tp.ArrivalDate)), b.ArrivalDate),
		ArrivalTime:   utils.FirstNonEmpty(strDeref(tp.ArrivalTime), b.ArrivalTime),
		Duration:      utils.FirstNonEmpty(strDeref(tp.Duration), b.Duration),
		Stops:         utils.FirstNonEmpty(strDeref(tp.Stops), b.Stops),
		Price:         utils.FirstNonEmpty(tp.Price.Display(currency), b.Price),
	}
	out.Travelers = b.Travelers
	if tp.Travelers != nil {
		out.Travelers = *tp.Travelers
	}
	return out
}

func normalizeTransportType(t, base string) string {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case models.TransportFlight:
		return models.TransportFlight
	case models.TransportTransfer:
		return models.TransportTransfer
	case models.TransportCar:
		return models.TransportCar
	}
	if base != "" {
		return base
	}
	return models.TransportTransfer
}

func normalizeAccommodation(ap models.AccommodationPayload, base *models.Accommodation, idx int, currency string) models.Accommodation {
	var b models.Accommodation
	if base != nil {
		b = *base
	}
	out := models.Accommodation{
		ID:          utils.FirstNonEmpty(string(ap.ID), b.ID, fmt.Sprintf("hotel-%d", idx+1)),
		Name:        utils.FirstNonEmpty(strDeref(ap.Name), b.Name, "Hotel"),
		Image:       utils.FirstNonEmpty(strDeref(ap.Image), b.Image),
		Dates:       utils.FirstNonEmpty(strDeref(ap.Dates), utils.DateRangeLabel(strDeref(ap.StartDate), strDeref(ap.EndDate), ""), b.Dates),
		Price:       utils.FirstNonEmpty(ap.Price.Display(currency), b.Price),
		Provider:    utils.FirstNonEmpty(strDeref(ap.Provider), b.Provider),
		Description: utils.FirstNonEmpty(strDeref(ap.Description), b.Description),
	}
	out.Stars = b.Stars
	if ap.Stars != nil {
		out.Stars = *ap.Stars
	}
	out.Rating = b.Rating
	if ap.Rating != nil {
		out.Rating = *ap.Rating
	}
	out.Reviews = b.Reviews
	if ap.Reviews != nil {
		out.Reviews = *ap.Reviews
	}
	return out
}

func normalizeDayPlan(dp models.DayPlanPayload, base *models.DayPlan, idx int, currency string) models.DayPlan {
	var b models.DayPlan
	if base != nil {
		b = *base
	}
	out := models.DayPlan{
		Day:       idx + 1,
		Date:      utils.FirstNonEmpty(utils.FormatDateShort(strDeref(dp.Date)), b.Date),
		Weather:   utils.FirstNonEmpty(strDeref(dp.Weather), b.Weather, defaultWeather),
		Title:     utils.FirstNonEmpty(strDeref(dp.Title), b.Title, fmt.Sprintf("Day %d", idx+1)),
		DayOfWeek: utils.FirstNonEmpty(strDeref(dp.DayOfWeek), utils.WeekdayName(strDeref(dp.Date)), b.DayOfWeek),
	}
	if dp.Day != nil && *dp.Day > 0 {
		out.Day = *dp.Day
	}
	out.Temperature = b.Temperature
	if dp.Temperature != nil {
		out.Temperature = *dp.Temperature
	}
	if out.Temperature == 0 {
		out.Temperature = defaultTemperature
	}

	if len(dp.Items) > 0 {
		out.Items = make([]models.Activity, 0, len(dp.Items))
		for i, ip := range dp.Items {
			out.Items = append(out.Items, normalizeActivity(ip, entityAt(b.Items, i), idx, i, currency))
		}
	} else {
		out.Items = append([]models.Activity{}, b.Items...)
	}
	return out
}

func normalizeActivity(ip models.ActivityPayload, base *models.Activity, dayIdx, itemIdx int, currency string) models.Activity {
	var b models.Activity
	if base != nil {
		b = *base
	}
	out := models.Activity{
		ID:       utils.FirstNonEmpty(string(ip.ID), b.ID, fmt.Sprintf("item-%d-%d", dayIdx+1, itemIdx+1)),
		Type:     normalizeItemType(strDeref(ip.Type), b.Type),
		Title:    utils.FirstNonEmpty(strDeref(ip.Title), b.Title, defaultActivityTitle),
		Location: utils.FirstNonEmpty(strDeref(ip.Location), b.Location),
		Image:    utils.FirstNonEmpty(strDeref(ip.Image), b.Image),
		Duration: utils.FirstNonEmpty(strDeref(ip.Duration), b.Duration),
		Price:    utils.FirstNonEmpty(ip.Price.Display(currency), b.Price),
	}
	out.Rating = b.Rating
	if ip.Rating != nil {
		out.Rating = *ip.Rating
	}
	out.Reviews = b.Reviews
	if ip.Reviews != nil {
		out.Reviews = *ip.Reviews
	}
	out.Persons = b.Persons
	if ip.Persons != nil {
		out.Persons = *ip.Persons
	}
	return out
}

func normalizeItemType(t, base string) string {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case models.ItemActivity:
		return models.ItemActivity
	case models.ItemRestaurant:
		return models.ItemRestaurant
	case models.ItemNote:
		return models.ItemNote
	}
	if base != "" {
		return base
	}
	return models.ItemActivity
}

// normalizeStats copies supplied counts and falls back to the template, with
// one exception: activities, when absent, is derived fresh by scanning the
// resulting day plans for activity-type items.
func normalizeStats(sp *models.StatsPayload, tplStats models.TripStats, doc models.TripDocument) models.TripStats {
	out := tplStats
	if sp != nil {
		if sp.Days != nil {
			out.Days = *sp.Days
		}
		if sp.Cities != nil {
			out.Cities = *sp.Cities
		}
		if sp.Hotels != nil {
			out.Hotels = *sp.Hotels
		}
		if sp.Transports != nil {
			out.Transports = *sp.Transports
		}
	}
	if sp != nil && sp.Activities != nil {
		out.Activities = *sp.Activities
	} else {
		out.Activities = countActivityItems(doc.DayPlans)
	}
	clampNonNegative(&out.Days, &out.Cities, &out.Activities, &out.Hotels, &out.Transports)
	return out
}

func clampNonNegative(counts ...*int) {
	for _, c := range counts {
		if *c < 0 {
			*c = 0
		}
	}
}

func countActivityItems(plans []models.DayPlan) int {
	n := 0
	for _, plan := range plans {
		for _, item := range plan.Items {
			if item.Type == models.ItemActivity {
				n++
			}
		}
	}
	return n
}
