package services

import (
	"context"
	"errors"
	"testing"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
)

type fakeSource struct {
	payload *models.TripPayload
	err     error
}

func (f fakeSource) FetchTrip(ctx context.Context, tripID string) (*models.TripPayload, error) {
	return f.payload, f.err
}

type recordingStore struct {
	saves []string
}

func (r *recordingStore) SaveSnapshot(tripID string, doc models.TripDocument) error {
	r.saves = append(r.saves, tripID)
	return nil
}

func TestLoadFetchFailureDegradesToTemplate(t *testing.T) {
	svc := NewTripService(fakeSource{err: errors.New("network down")}, nil)

	doc, err := svc.Load(context.Background(), "trip-42")
	if err == nil {
		t.Fatalf("fetch failure must be surfaced to the caller")
	}
	if doc.Title != svc.Template.Title {
		t.Fatalf("failed load must still return a template-defaulted document, got title %q", doc.Title)
	}
	if doc.ID != "trip-42" {
		t.Fatalf("defaulted document should adopt the requested trip id, got %q", doc.ID)
	}
	if len(doc.CityStops) == 0 || len(doc.DayPlans) == 0 {
		t.Fatalf("defaulted document must be structurally complete")
	}
}

func TestLoadAppliesPayload(t *testing.T) {
	name := "Two Weeks in Jordan"
	svc := NewTripService(fakeSource{payload: &models.TripPayload{Name: &name}}, nil)

	doc, err := svc.Load(context.Background(), "trip-1")
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if doc.Title != name {
		t.Fatalf("payload name should become the title, got %q", doc.Title)
	}
}

func TestDispatchRequiresLoadedDocument(t *testing.T) {
	svc := NewTripService(nil, nil)

	_, err := svc.Dispatch("trip-1", RemoveFlights{})
	if !domain.IsNotFound(err) {
		t.Fatalf("dispatch before load should report not found, got %v", err)
	}

	if _, err := svc.Load(context.Background(), "trip-1"); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if _, err := svc.Dispatch("trip-1", RemoveFlights{}); err != nil {
		t.Fatalf("dispatch after load failed: %v", err)
	}
}

func TestAddCityByNameValidation(t *testing.T) {
	svc := NewTripService(nil, nil)
	if _, err := svc.Load(context.Background(), "trip-1"); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if _, err := svc.AddCityByName("trip-1", "Atlantis"); !domain.IsValidation(err) {
		t.Fatalf("unsupported location should be a validation error, got %v", err)
	}

	doc, err := svc.AddCityByName("trip-1", "Jerash")
	if err != nil {
		t.Fatalf("supported location failed: %v", err)
	}
	if doc.CityStops[len(doc.CityStops)-1].Name != "Jerash" {
		t.Fatalf("Jerash stop not appended")
	}
}

func TestSnapshotsPersistedOnReplacement(t *testing.T) {
	store := &recordingStore{}
	svc := NewTripService(nil, store)

	if _, err := svc.Load(context.Background(), "trip-7"); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if _, err := svc.Dispatch("trip-7", RemoveFlights{}); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	// one save for the load install, one for the mutation
	if len(store.saves) != 2 {
		t.Fatalf("expected 2 snapshot saves, got %d", len(store.saves))
	}
	for _, id := range store.saves {
		if id != "trip-7" {
			t.Fatalf("snapshot saved under wrong trip id %q", id)
		}
	}
}
