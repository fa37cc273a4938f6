package services

import (
	"bytes"
	"testing"

	"tripplanner/internal/domain/models"
)

func TestGenerateItinerary(t *testing.T) {
	loader := func(tripID string) (models.TripDocument, error) {
		return DefaultTripTemplate(), nil
	}

	svc := ItineraryDocsService{Loader: loader}

	pdf, filename, err := svc.GenerateItinerary("trip-1")
	if err != nil {
		t.Fatalf("GenerateItinerary returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateItinerary returned empty data")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF")
	}
}
