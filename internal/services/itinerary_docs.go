package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"
)

// ItineraryDocsService renders the current trip document as a printable PDF.
type ItineraryDocsService struct {
	Trips     *TripService
	RequestID string
	Loader    func(tripID string) (models.TripDocument, error)
}

func (s ItineraryDocsService) GenerateItinerary(tripID string) ([]byte, string, error) {
	doc, err := s.loadDocument(tripID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_itinerary", "trip_id="+tripID)
	return buildItineraryPDF(doc)
}

func (s ItineraryDocsService) loadDocument(tripID string) (models.TripDocument, error) {
	if s.Loader != nil {
		return s.Loader(tripID)
	}
	if doc, ok := s.Trips.Current(tripID); ok {
		return doc, nil
	}
	return s.Trips.Load(context.Background(), tripID)
}

func buildItineraryPDF(d models.TripDocument) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Itinerary", false)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr(safe(d.Title, "Trip Itinerary")))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 11)
	pdf.Cell(0, 7, tr(safe(d.Subtitle, "")))
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Dates      : %s", safe(d.Dates, "-"))))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Travelers  : %d", d.Travelers)))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr(fmt.Sprintf("At a glance: %d days, %d cities, %d activities, %d hotels, %d transports",
		d.Stats.Days, d.Stats.Cities, d.Stats.Activities, d.Stats.Hotels, d.Stats.Transports)))
	pdf.Ln(10)

	if len(d.CityStops) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Cities")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, city := range d.CityStops {
			pdf.Cell(0, 6, tr(fmt.Sprintf("- %s (%s)", safe(city.Name, "-"), safe(city.Dates, "-"))))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	if len(d.DayPlans) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Day by day")
		pdf.Ln(8)
		for _, plan := range d.DayPlans {
			pdf.SetFont("Helvetica", "B", 11)
			header := fmt.Sprintf("Day %d - %s", plan.Day, safe(plan.Title, "-"))
			if plan.Date != "" {
				header += fmt.Sprintf(" (%s)", plan.Date)
			}
			pdf.Cell(0, 6, tr(header))
			pdf.Ln(6)
			pdf.SetFont("Helvetica", "", 11)
			for _, item := range plan.Items {
				line := "  - " + safe(item.Title, "-")
				var extras []string
				if item.Duration != "" {
					extras = append(extras, item.Duration)
				}
				if item.Price != "" {
					extras = append(extras, item.Price)
				}
				if len(extras) > 0 {
					line += " (" + strings.Join(extras, ", ") + ")"
				}
				pdf.Cell(0, 6, tr(line))
				pdf.Ln(6)
			}
			pdf.Ln(2)
		}
	}

	if len(d.Transports) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Transports")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, t := range d.Transports {
			pdf.Cell(0, 6, tr(fmt.Sprintf("- %s: %s -> %s, %s %s (%s)",
				safe(t.Title, t.Type), safe(t.From, "-"), safe(t.To, "-"),
				safe(t.DepartureDate, "-"), safe(t.DepartureTime, ""), safe(t.Price, "-"))))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	if len(d.Accommodations) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Hotels")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, a := range d.Accommodations {
			pdf.Cell(0, 6, tr(fmt.Sprintf("- %s (%d stars, %s) %s", safe(a.Name, "-"), a.Stars, safe(a.Price, "-"), safe(a.Dates, ""))))
			pdf.Ln(6)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ITINERARY_%s.pdf", safeFilenamePart(safe(d.ID, "trip")))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	var out strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out.WriteRune(r)
		default:
			out.WriteByte('_')
		}
	}
	return out.String()
}
