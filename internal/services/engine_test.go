package services

import (
	"fmt"
	"reflect"
	"testing"

	"tripplanner/internal/domain/models"
)

func newLoadedEngine(t *testing.T) *Engine {
	t.Helper()
	tpl := DefaultTripTemplate()
	eng := NewEngine(tpl)
	gen := eng.BeginLoad()
	if !eng.CompleteLoad(gen, NormalizeTrip(nil, tpl)) {
		t.Fatalf("initial load failed to install")
	}
	return eng
}

func TestDispatchWithoutDocumentIsNoop(t *testing.T) {
	eng := NewEngine(DefaultTripTemplate())
	if _, ok := eng.Dispatch(RemoveFlights{}); ok {
		t.Fatalf("dispatch with no document loaded must be a no-op")
	}
}

func TestRemoveFlightsKeepsStatsConsistent(t *testing.T) {
	eng := newLoadedEngine(t)

	doc, ok := eng.Dispatch(RemoveFlights{})
	if !ok {
		t.Fatalf("dispatch failed")
	}
	for _, tr := range doc.Transports {
		if tr.Type == models.TransportFlight {
			t.Fatalf("flight survived removal: %+v", tr)
		}
	}
	if doc.Stats.Transports != len(doc.Transports) {
		t.Fatalf("stats.transports=%d but %d transports remain", doc.Stats.Transports, len(doc.Transports))
	}
}

func TestUndoIsExactInverseOfOneStep(t *testing.T) {
	eng := newLoadedEngine(t)

	afterFirst, ok := eng.Dispatch(RemoveFlights{})
	if !ok {
		t.Fatalf("first mutation failed")
	}
	if _, ok := eng.Dispatch(AddCity{City: models.CityStop{ID: "city-x", Name: "Aqaba"}}); !ok {
		t.Fatalf("second mutation failed")
	}

	afterUndo, ok := eng.Dispatch(Undo{})
	if !ok {
		t.Fatalf("undo failed")
	}
	if !reflect.DeepEqual(afterUndo, afterFirst) {
		t.Fatalf("undo did not restore the state after the first mutation")
	}
}

func TestHistoryBoundTenUndos(t *testing.T) {
	eng := newLoadedEngine(t)
	base, _ := eng.Document()

	for i := 0; i < 15; i++ {
		city := models.CityStop{ID: fmt.Sprintf("city-extra-%d", i), Name: fmt.Sprintf("Stop %d", i)}
		if _, ok := eng.Dispatch(AddCity{City: city}); !ok {
			t.Fatalf("mutation %d failed", i)
		}
	}

	wantStops := len(base.CityStops) + 15
	doc, _ := eng.Document()
	if len(doc.CityStops) != wantStops {
		t.Fatalf("expected %d stops after 15 adds, got %d", wantStops, len(doc.CityStops))
	}

	for i := 0; i < 10; i++ {
		if doc, _ = eng.Dispatch(Undo{}); len(doc.CityStops) != wantStops-i-1 {
			t.Fatalf("undo %d restored wrong state: %d stops", i+1, len(doc.CityStops))
		}
	}

	// the 11th undo is a no-op: history is bounded at 10
	afterTen := doc
	doc, ok := eng.Dispatch(Undo{})
	if !ok {
		t.Fatalf("undo on empty history must not fail")
	}
	if !reflect.DeepEqual(doc, afterTen) {
		t.Fatalf("11th undo should leave the document unchanged")
	}
}

func TestResetIsIdempotent(t *testing.T) {
	eng := newLoadedEngine(t)
	tpl := DefaultTripTemplate()

	if _, ok := eng.Dispatch(RemoveFlights{}); !ok {
		t.Fatalf("setup mutation failed")
	}

	first, _ := eng.Dispatch(Reset{})
	second, _ := eng.Dispatch(Reset{})

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("consecutive resets must yield identical documents")
	}
	if !reflect.DeepEqual(first, tpl) {
		t.Fatalf("reset must restore the template document")
	}
}

func TestAddCityJerashScenario(t *testing.T) {
	eng := newLoadedEngine(t)
	before, _ := eng.Document()

	if len(before.CityStops) != 4 || before.Stats.Cities != 4 {
		t.Fatalf("unexpected starting document: %d stops, stats.cities=%d", len(before.CityStops), before.Stats.Cities)
	}

	city, plan, ok := SynthesizeCityPlan("Jerash", before)
	if !ok {
		t.Fatalf("Jerash must be a supported location")
	}
	if got := len(plan.Items); got != 2 {
		t.Fatalf("Jerash plan should carry 2 items, got %d", got)
	}

	doc, ok := eng.Dispatch(AddCity{City: city, DayPlan: &plan})
	if !ok {
		t.Fatalf("add city failed")
	}
	if len(doc.CityStops) != 5 || doc.Stats.Cities != 5 {
		t.Fatalf("expected 5 stops and stats.cities=5, got %d and %d", len(doc.CityStops), doc.Stats.Cities)
	}
	if doc.Stats.Days != before.Stats.Days+1 {
		t.Fatalf("stats.days should grow by 1, got %d", doc.Stats.Days)
	}
	if doc.Stats.Activities != before.Stats.Activities+2 {
		t.Fatalf("stats.activities should grow by 2, got %d (was %d)", doc.Stats.Activities, before.Stats.Activities)
	}

	afterUndo, _ := eng.Dispatch(Undo{})
	if !reflect.DeepEqual(afterUndo, before) {
		t.Fatalf("undo must restore the pre-mutation document")
	}
}

func TestChangeHotelOutOfRange(t *testing.T) {
	eng := newLoadedEngine(t)
	before, _ := eng.Document()

	idx := len(before.Accommodations)
	doc, ok := eng.Dispatch(ChangeHotel{CityIndex: idx, NewHotel: models.Accommodation{Name: "Nope"}})
	if !ok {
		t.Fatalf("dispatch failed")
	}
	if !reflect.DeepEqual(doc, before) {
		t.Fatalf("out-of-range change must leave the document unchanged")
	}
	// the envelope still ran: exactly one history entry was pushed
	if eng.HistoryLen() != 1 {
		t.Fatalf("expected 1 history entry, got %d", eng.HistoryLen())
	}

	afterUndo, _ := eng.Dispatch(Undo{})
	if !reflect.DeepEqual(afterUndo, before) {
		t.Fatalf("undo after the no-op change must return the same state")
	}
}

func TestChangeHotelInRange(t *testing.T) {
	eng := newLoadedEngine(t)

	newHotel := models.Accommodation{Name: "Dead Sea Resort", Stars: 5, Price: "$210"}
	doc, ok := eng.Dispatch(ChangeHotel{CityIndex: 1, NewHotel: newHotel})
	if !ok {
		t.Fatalf("dispatch failed")
	}
	if doc.Accommodations[1].Name != "Dead Sea Resort" {
		t.Fatalf("hotel at index 1 not replaced: %+v", doc.Accommodations[1])
	}
	// identity is preserved when the replacement carries no id
	if doc.Accommodations[1].ID == "" {
		t.Fatalf("replacement hotel should inherit the prior id")
	}
}

func TestApplyBudgetChanges(t *testing.T) {
	eng := newLoadedEngine(t)

	doc, ok := eng.Dispatch(ApplyBudgetChanges{
		Hotel: &HotelSwap{Name: "Budget Inn Amman", Stars: 2, Price: "$45", Description: "Simple rooms near downtown."},
		Items: []BudgetItemRule{
			{MatchPriceSubstring: "$70", NewTitle: "Petra Main Trail (self-guided)", NewPrice: "$50"},
		},
	})
	if !ok {
		t.Fatalf("dispatch failed")
	}

	first := doc.Accommodations[0]
	if first.Name != "Budget Inn Amman" || first.Stars != 2 || first.Price != "$45" {
		t.Fatalf("first accommodation not swapped: %+v", first)
	}

	var rewritten bool
	for _, plan := range doc.DayPlans {
		for _, item := range plan.Items {
			if item.Title == "Petra Main Trail (self-guided)" && item.Price == "$50" {
				rewritten = true
			}
			if item.Price == "$70" {
				t.Fatalf("matched item price not rewritten: %+v", item)
			}
		}
	}
	if !rewritten {
		t.Fatalf("no day-plan item was rewritten by the budget rule")
	}
}

func TestSubscribersSeeReplacementSnapshots(t *testing.T) {
	eng := newLoadedEngine(t)

	var got []models.TripDocument
	eng.Subscribe(func(doc models.TripDocument) { got = append(got, doc) })

	if _, ok := eng.Dispatch(RemoveFlights{}); !ok {
		t.Fatalf("dispatch failed")
	}
	if len(got) != 1 {
		t.Fatalf("expected one notification, got %d", len(got))
	}

	// undo on empty history replaces nothing and must not notify
	eng2 := newLoadedEngine(t)
	calls := 0
	eng2.Subscribe(func(models.TripDocument) { calls++ })
	if _, ok := eng2.Dispatch(Undo{}); !ok {
		t.Fatalf("undo dispatch failed")
	}
	if calls != 0 {
		t.Fatalf("no-op undo must not notify subscribers, got %d calls", calls)
	}
}

func TestStaleLoadIsDiscarded(t *testing.T) {
	tpl := DefaultTripTemplate()
	eng := NewEngine(tpl)

	slow := eng.BeginLoad()
	fast := eng.BeginLoad()

	fresh := NormalizeTrip(nil, tpl)
	fresh.Title = "fresh"
	if !eng.CompleteLoad(fast, fresh) {
		t.Fatalf("newest load must install")
	}

	stale := NormalizeTrip(nil, tpl)
	stale.Title = "stale"
	if eng.CompleteLoad(slow, stale) {
		t.Fatalf("superseded load must be discarded")
	}

	doc, ok := eng.Document()
	if !ok || doc.Title != "fresh" {
		t.Fatalf("expected the fresh document to win, got %q", doc.Title)
	}
}
