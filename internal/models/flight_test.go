package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItineraryHelpers(t *testing.T) {
	itinerary := Itinerary{
		Duration: "PT5H10M",
		Segments: []Segment{
			{
				CarrierCode: "GA",
				Number:      "320",
				Departure:   Endpoint{IATACode: "CGK", At: "2026-09-10T06:00:00"},
				Arrival:     Endpoint{IATACode: "SUB", At: "2026-09-10T07:25:00"},
			},
			{
				CarrierCode: "JT",
				Number:      "571",
				Departure:   Endpoint{IATACode: "SUB", At: "2026-09-10T09:00:00"},
				Arrival:     Endpoint{IATACode: "DPS", At: "2026-09-10T11:10:00"},
			},
		},
	}

	assert.Equal(t, 1, itinerary.Stops())
	assert.Equal(t, "GA", itinerary.CarrierCode(), "displayed carrier is the first segment's")
	assert.Equal(t, "2026-09-10T06:00:00", itinerary.DepartureAt())
	assert.Equal(t, "2026-09-10T11:10:00", itinerary.ArrivalAt())
}

func TestItineraryEmpty(t *testing.T) {
	var itinerary Itinerary
	assert.Equal(t, "", itinerary.CarrierCode())
	assert.Equal(t, "", itinerary.DepartureAt())
	assert.Equal(t, "", itinerary.ArrivalAt())
}

func TestEndpointTime(t *testing.T) {
	e := Endpoint{IATACode: "CGK", At: "2026-09-10T06:15:00"}

	parsed, err := e.Time()
	require.NoError(t, err)
	assert.Equal(t, 6, parsed.Hour())
	assert.Equal(t, 15, parsed.Minute())

	_, err = Endpoint{At: "tomorrow"}.Time()
	assert.Error(t, err)
}

func TestPriceAmount(t *testing.T) {
	amount, ok := Price{Total: "1250000.00", Currency: "IDR"}.Amount()
	require.True(t, ok)
	assert.Equal(t, "1250000", amount.String())

	amount, ok = Price{Total: " 99.50 "}.Amount()
	require.True(t, ok, "surrounding whitespace is tolerated")
	assert.Equal(t, "99.5", amount.String())

	_, ok = Price{Total: "free"}.Amount()
	assert.False(t, ok)

	_, ok = Price{}.Amount()
	assert.False(t, ok)
}

func TestEmptyPassengers(t *testing.T) {
	passengers := EmptyPassengers(2)
	require.Len(t, passengers, 2)
	for _, p := range passengers {
		assert.Empty(t, p.FirstName)
		assert.Equal(t, GenderMale, p.Gender)
	}
}
