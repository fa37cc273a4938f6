package services

import "testing"

func TestSynthesizeSupportedLocation(t *testing.T) {
	doc := DefaultTripTemplate()

	city, plan, ok := SynthesizeCityPlan("jerash", doc)
	if !ok {
		t.Fatalf("jerash should be supported (case-insensitive)")
	}
	if city.Name != "Jerash" {
		t.Fatalf("unexpected city name %q", city.Name)
	}
	if city.ID == "" || city.Image == "" {
		t.Fatalf("synthesized city missing id or image: %+v", city)
	}
	if plan.Day != len(doc.DayPlans)+1 {
		t.Fatalf("plan ordinal should extend the itinerary, got %d", plan.Day)
	}
	if len(plan.Items) == 0 {
		t.Fatalf("plan should carry hand-authored items")
	}
	for _, item := range plan.Items {
		if item.ID == "" {
			t.Fatalf("every synthesized item needs an id: %+v", item)
		}
	}
}

func TestSynthesizeUniqueIDsAcrossInvocations(t *testing.T) {
	doc := DefaultTripTemplate()

	a, planA, _ := SynthesizeCityPlan("Madaba", doc)
	b, planB, _ := SynthesizeCityPlan("Madaba", doc)

	if a.ID == b.ID {
		t.Fatalf("repeated invocations must not collide on city id: %q", a.ID)
	}
	if planA.Items[0].ID == planB.Items[0].ID {
		t.Fatalf("repeated invocations must not collide on item ids")
	}
}

func TestSynthesizeUnsupportedLocationRejected(t *testing.T) {
	doc := DefaultTripTemplate()

	if _, _, ok := SynthesizeCityPlan("Atlantis", doc); ok {
		t.Fatalf("unsupported locations must be rejected")
	}
	if _, _, ok := SynthesizeCityPlan("", doc); ok {
		t.Fatalf("empty location must be rejected")
	}
}

func TestSynthesizeAlwaysCarriesImage(t *testing.T) {
	doc := DefaultTripTemplate()

	city, _, ok := SynthesizeCityPlan("Aqaba", doc)
	if !ok {
		t.Fatalf("aqaba should be supported")
	}
	if city.Image == "" {
		t.Fatalf("synthesized city must always carry an image")
	}
}
