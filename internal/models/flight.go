package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Endpoint is one side of a flown segment: where and when, as the
// provider reports it (local time, ISO 8601 without offset).
type Endpoint struct {
	IATACode string `json:"iataCode"`
	At       string `json:"at"`
}

func (e Endpoint) Time() (time.Time, error) {
	return time.Parse("2006-01-02T15:04:05", e.At)
}

type Segment struct {
	CarrierCode string   `json:"carrierCode"`
	Number      string   `json:"number"`
	Departure   Endpoint `json:"departure"`
	Arrival     Endpoint `json:"arrival"`
}

// Itinerary is one direction of travel: an ordered, non-empty sequence
// of segments plus the provider's total duration (e.g. "PT2H30M").
type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

func (i Itinerary) Stops() int {
	return len(i.Segments) - 1
}

// CarrierCode is the displayed carrier: the first segment's.
func (i Itinerary) CarrierCode() string {
	if len(i.Segments) == 0 {
		return ""
	}
	return i.Segments[0].CarrierCode
}

func (i Itinerary) DepartureAt() string {
	if len(i.Segments) == 0 {
		return ""
	}
	return i.Segments[0].Departure.At
}

func (i Itinerary) ArrivalAt() string {
	if len(i.Segments) == 0 {
		return ""
	}
	return i.Segments[len(i.Segments)-1].Arrival.At
}

type Price struct {
	Total     string `json:"total"`
	Currency  string `json:"currency"`
	Formatted string `json:"formatted,omitempty"`
}

// Amount parses the provider's decimal string. Malformed totals come
// back as zero with ok=false so callers can rank them last.
func (p Price) Amount() (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(p.Total))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Offer is one purchasable search result: a single direction's
// itinerary at a price. A round trip is two offers from two searches.
type Offer struct {
	ID        string    `json:"id"`
	Itinerary Itinerary `json:"itinerary"`
	Price     Price     `json:"price"`
}

func (o Offer) Stops() int {
	return o.Itinerary.Stops()
}
