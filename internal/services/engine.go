package services

import (
	"strings"
	"sync"

	deep "github.com/brunoga/deep"

	"tripplanner/internal/domain/models"
)

// Engine owns one trip document and is its only writer. Mutations are atomic
// with respect to the document reference: each dispatch either fully replaces
// the document or leaves it untouched. Callers across goroutines are
// serialized by the internal mutex (single-writer discipline).
type Engine struct {
	mu         sync.Mutex
	template   models.TripDocument
	doc        *models.TripDocument
	history    History
	subs       []func(models.TripDocument)
	generation uint64
}

func NewEngine(template models.TripDocument) *Engine {
	return &Engine{template: template}
}

// Document returns a copy of the current document; false when nothing loaded.
func (e *Engine) Document() (models.TripDocument, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.doc == nil {
		return models.TripDocument{}, false
	}
	return deep.MustCopy(*e.doc), true
}

// Subscribe registers a callback invoked with a copy of the document after
// every replacement. Readers observe immutable snapshots, never shared state.
func (e *Engine) Subscribe(fn func(models.TripDocument)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs = append(e.subs, fn)
}

// BeginLoad marks the start of a (re)load and returns its generation token.
// A load superseded by a newer one fails its CompleteLoad and is discarded.
func (e *Engine) BeginLoad() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.generation++
	return e.generation
}

// CompleteLoad installs a freshly normalized document unless the load is
// stale. Installing clears history: a new load starts a fresh session.
func (e *Engine) CompleteLoad(gen uint64, doc models.TripDocument) bool {
	e.mu.Lock()
	if gen != e.generation {
		e.mu.Unlock()
		return false
	}
	e.doc = &doc
	e.history.Clear()
	snapshot, subs := deep.MustCopy(doc), append([]func(models.TripDocument){}, e.subs...)
	e.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
	return true
}

// Dispatch applies one action. Every action except Undo pushes a deep copy of
// the prior state, transforms a working copy and replaces the document with
// it. The returned document is a copy; false means no document is loaded.
func (e *Engine) Dispatch(action Action) (models.TripDocument, bool) {
	doc, ok, replaced := e.apply(action)
	if replaced {
		e.mu.Lock()
		subs := append([]func(models.TripDocument){}, e.subs...)
		e.mu.Unlock()
		for _, fn := range subs {
			fn(deep.MustCopy(doc))
		}
	}
	return doc, ok
}

func (e *Engine) apply(action Action) (models.TripDocument, bool, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.doc == nil {
		return models.TripDocument{}, false, false
	}

	if _, isUndo := action.(Undo); isUndo {
		if snapshot, ok := e.history.Pop(); ok {
			e.doc = &snapshot
			return deep.MustCopy(snapshot), true, true
		}
		return deep.MustCopy(*e.doc), true, false
	}

	e.history.Push(*e.doc)
	working := deep.MustCopy(*e.doc)

	switch act := action.(type) {
	case RemoveFlights:
		applyRemoveFlights(&working)
	case AddCity:
		applyAddCity(&working, act)
	case ChangeHotel:
		applyChangeHotel(&working, act)
	case ApplyBudgetChanges:
		applyBudgetChanges(&working, act)
	case Reset:
		working = deep.MustCopy(e.template)
	}

	// Stats are a pure projection of the collections; recomputing after every
	// action keeps the cached counts from drifting from ground truth.
	recomputeStats(&working)
	e.doc = &working
	return deep.MustCopy(working), true, true
}

func applyRemoveFlights(doc *models.TripDocument) {
	kept := doc.Transports[:0]
	for _, t := range doc.Transports {
		if t.Type != models.TransportFlight {
			kept = append(kept, t)
		}
	}
	doc.Transports = kept
}

func applyAddCity(doc *models.TripDocument, act AddCity) {
	doc.CityStops = append(doc.CityStops, act.City)
	if act.DayPlan != nil {
		plan := *act.DayPlan
		if plan.Day == 0 {
			plan.Day = len(doc.DayPlans) + 1
		}
		doc.DayPlans = append(doc.DayPlans, plan)
	}
}

func applyChangeHotel(doc *models.TripDocument, act ChangeHotel) {
	if act.CityIndex < 0 || act.CityIndex >= len(doc.Accommodations) {
		return
	}
	hotel := act.NewHotel
	if hotel.ID == "" {
		hotel.ID = doc.Accommodations[act.CityIndex].ID
	}
	doc.Accommodations[act.CityIndex] = hotel
}

func applyBudgetChanges(doc *models.TripDocument, act ApplyBudgetChanges) {
	if act.Hotel != nil && len(doc.Accommodations) > 0 {
		first := &doc.Accommodations[0]
		first.Name = act.Hotel.Name
		first.Stars = act.Hotel.Stars
		first.Price = act.Hotel.Price
		first.Description = act.Hotel.Description
	}
	for _, rule := range act.Items {
		if rule.MatchPriceSubstring == "" {
			continue
		}
		for di := range doc.DayPlans {
			for ii := range doc.DayPlans[di].Items {
				item := &doc.DayPlans[di].Items[ii]
				if !strings.Contains(item.Price, rule.MatchPriceSubstring) {
					continue
				}
				if rule.NewTitle != "" {
					item.Title = rule.NewTitle
				}
				item.Price = rule.NewPrice
			}
		}
	}
}

func recomputeStats(doc *models.TripDocument) {
	doc.Stats = models.TripStats{
		Days:       len(doc.DayPlans),
		Cities:     len(doc.CityStops),
		Activities: countActivityItems(doc.DayPlans),
		Hotels:     len(doc.Accommodations),
		Transports: len(doc.Transports),
	}
}

// HistoryLen reports the number of undo steps available, for diagnostics.
func (e *Engine) HistoryLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Len()
}
