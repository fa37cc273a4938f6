package services

import "tripplanner/internal/domain/models"

// Action is the closed set of document mutations. The unexported marker keeps
// the set sealed: only the variants below can reach the dispatcher, so there
// is no "unknown action" category at runtime.
type Action interface {
	isAction()
}

// RemoveFlights drops every transport of type flight.
type RemoveFlights struct{}

// AddCity appends a city stop and, optionally, its day plan.
type AddCity struct {
	City    models.CityStop
	DayPlan *models.DayPlan
}

// ChangeHotel replaces the accommodation at CityIndex when in range.
// Out-of-range indices leave the document unchanged but still run the full
// dispatch envelope, so undo behaves uniformly across the catalogue.
type ChangeHotel struct {
	CityIndex int
	NewHotel  models.Accommodation
}

// HotelSwap overwrites the headline fields of the first accommodation.
type HotelSwap struct {
	Name        string `json:"name"`
	Stars       int    `json:"stars"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// BudgetItemRule rewrites any day-plan item whose price contains the matched
// substring. Matching is caller-supplied rather than hardcoded.
type BudgetItemRule struct {
	MatchPriceSubstring string `json:"matchPriceSubstring"`
	NewTitle            string `json:"newTitle"`
	NewPrice            string `json:"newPrice"`
}

// ApplyBudgetChanges applies a cheaper-alternative policy: an optional hotel
// swap plus zero or more item rewrite rules.
type ApplyBudgetChanges struct {
	Hotel *HotelSwap
	Items []BudgetItemRule
}

// Reset replaces the whole document with a fresh copy of the template.
type Reset struct{}

// Undo pops the most recent history snapshot; a no-op on empty history.
type Undo struct{}

func (RemoveFlights) isAction()      {}
func (AddCity) isAction()            {}
func (ChangeHotel) isAction()        {}
func (ApplyBudgetChanges) isAction() {}
func (Reset) isAction()              {}
func (Undo) isAction()               {}
