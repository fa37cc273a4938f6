package services

import (
	"context"
	"sync"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"
)

// PayloadSource fetches the raw trip-detail payload for one trip.
type PayloadSource interface {
	FetchTrip(ctx context.Context, tripID string) (*models.TripPayload, error)
}

// SnapshotStore persists the latest document version. Persistence is an
// external collaborator concern; saves are best-effort and never block a
// mutation from completing.
type SnapshotStore interface {
	SaveSnapshot(tripID string, doc models.TripDocument) error
}

// TripService owns one engine per trip session and orchestrates loads.
type TripService struct {
	Source   PayloadSource
	Store    SnapshotStore
	Template models.TripDocument

	mu       sync.Mutex
	sessions map[string]*Engine
}

func NewTripService(source PayloadSource, store SnapshotStore) *TripService {
	return &TripService{
		Source:   source,
		Store:    store,
		Template: DefaultTripTemplate(),
		sessions: make(map[string]*Engine),
	}
}

func (s *TripService) session(tripID string) *Engine {
	s.mu.Lock()
	defer s.mu.Unlock()
	if eng, ok := s.sessions[tripID]; ok {
		return eng
	}
	eng := NewEngine(s.Template)
	if s.Store != nil {
		store, id := s.Store, tripID
		eng.Subscribe(func(doc models.TripDocument) {
			if err := store.SaveSnapshot(id, doc); err != nil {
				utils.LogEvent("", "trip", "snapshot_save_failed", "trip_id="+id+" err="+err.Error())
			}
		})
	}
	s.sessions[tripID] = eng
	return eng
}

// Load fetches, normalizes and installs the trip document. A fetch failure
// still installs a usable template-defaulted document and returns it together
// with the error, so the caller can show both. Loads superseded by a newer
// load for the same trip are discarded on arrival.
func (s *TripService) Load(ctx context.Context, tripID string) (models.TripDocument, error) {
	eng := s.session(tripID)
	gen := eng.BeginLoad()

	var payload *models.TripPayload
	var fetchErr error
	if s.Source != nil {
		payload, fetchErr = s.Source.FetchTrip(ctx, tripID)
		if fetchErr != nil {
			utils.LogEvent("", "trip", "load_fetch_failed", "trip_id="+tripID+" err="+fetchErr.Error())
			payload = nil
		}
	}

	doc := NormalizeTrip(payload, s.Template)
	if payload == nil || string(payload.ID) == "" {
		doc.ID = utils.FirstNonEmpty(tripID, doc.ID)
	}

	if !eng.CompleteLoad(gen, doc) {
		// a newer load won the race; hand back whatever it installed
		if current, ok := eng.Document(); ok {
			return current, nil
		}
		return doc, fetchErr
	}
	utils.LogEvent("", "trip", "loaded", "trip_id="+tripID)
	return doc, fetchErr
}

// Current returns the session's document without triggering a load.
func (s *TripService) Current(tripID string) (models.TripDocument, bool) {
	return s.session(tripID).Document()
}

// Dispatch applies one action to the session's document.
func (s *TripService) Dispatch(tripID string, action Action) (models.TripDocument, error) {
	doc, ok := s.session(tripID).Dispatch(action)
	if !ok {
		return models.TripDocument{}, domain.NotFoundError{Resource: "trip document"}
	}
	return doc, nil
}

// AddCityByName routes the "add city" shortcut through the synthesizer for a
// supported location; unsupported names are rejected without mutation.
func (s *TripService) AddCityByName(tripID, location string) (models.TripDocument, error) {
	eng := s.session(tripID)
	current, ok := eng.Document()
	if !ok {
		return models.TripDocument{}, domain.NotFoundError{Resource: "trip document"}
	}
	city, plan, ok := SynthesizeCityPlan(location, current)
	if !ok {
		return models.TripDocument{}, domain.ValidationError{Field: "location", Msg: "unsupported location: " + location}
	}
	doc, ok := eng.Dispatch(AddCity{City: city, DayPlan: &plan})
	if !ok {
		return models.TripDocument{}, domain.NotFoundError{Resource: "trip document"}
	}
	return doc, nil
}
