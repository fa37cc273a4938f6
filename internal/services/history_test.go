package services

import (
	"testing"
)

func TestHistoryLIFOOrder(t *testing.T) {
	var h History

	first := DefaultTripTemplate()
	first.Title = "first"
	second := DefaultTripTemplate()
	second.Title = "second"

	h.Push(first)
	h.Push(second)

	popped, ok := h.Pop()
	if !ok || popped.Title != "second" {
		t.Fatalf("expected most recent snapshot first, got %q ok=%v", popped.Title, ok)
	}
	popped, ok = h.Pop()
	if !ok || popped.Title != "first" {
		t.Fatalf("expected older snapshot second, got %q ok=%v", popped.Title, ok)
	}
	if _, ok := h.Pop(); ok {
		t.Fatalf("pop on empty history must report nothing to undo")
	}
}

func TestHistoryEvictsOldestBeyondCapacity(t *testing.T) {
	var h History

	for i := 0; i < 15; i++ {
		doc := DefaultTripTemplate()
		doc.Travelers = i
		h.Push(doc)
	}

	if h.Len() != 10 {
		t.Fatalf("history should cap at 10 entries, got %d", h.Len())
	}

	// oldest surviving snapshot is the 6th push (travelers=5)
	lastTravelers := -1
	for i := 0; i < 10; i++ {
		doc, ok := h.Pop()
		if !ok {
			t.Fatalf("pop %d failed unexpectedly", i)
		}
		lastTravelers = doc.Travelers
	}
	if lastTravelers != 5 {
		t.Fatalf("expected oldest surviving snapshot to have travelers=5, got %d", lastTravelers)
	}
}

func TestHistorySnapshotsAreIndependent(t *testing.T) {
	var h History

	doc := DefaultTripTemplate()
	h.Push(doc)

	doc.CityStops[0].Name = "mutated"
	doc.DayPlans[0].Items[0].Title = "mutated"

	snap, ok := h.Pop()
	if !ok {
		t.Fatalf("pop failed")
	}
	if snap.CityStops[0].Name == "mutated" || snap.DayPlans[0].Items[0].Title == "mutated" {
		t.Fatalf("stored snapshot must be a deep copy, got %+v", snap.CityStops[0])
	}
}
