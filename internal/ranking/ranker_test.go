package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/flightbooking/internal/models"
)

func offer(id, total, duration, departAt string, stops int) models.Offer {
	segments := make([]models.Segment, stops+1)
	for i := range segments {
		segments[i] = models.Segment{
			CarrierCode: "GA",
			Number:      "410",
			Departure:   models.Endpoint{IATACode: "CGK", At: departAt},
			Arrival:     models.Endpoint{IATACode: "DPS", At: departAt},
		}
	}
	return models.Offer{
		ID:        id,
		Itinerary: models.Itinerary{Duration: duration, Segments: segments},
		Price:     models.Price{Total: total, Currency: "IDR"},
	}
}

func TestRankStopFilter(t *testing.T) {
	offers := []models.Offer{
		offer("a", "100.00", "PT2H", "2026-09-01T06:00:00", 0),
		offer("b", "90.00", "PT4H", "2026-09-01T07:00:00", 1),
		offer("c", "80.00", "PT6H", "2026-09-01T08:00:00", 2),
	}

	direct := Rank(offers, SortPrice, StopsDirect)
	require.Len(t, direct, 1)
	assert.Equal(t, "a", direct[0].ID)
	for _, o := range direct {
		assert.Equal(t, 0, o.Stops())
	}

	oneStop := Rank(offers, SortPrice, StopsOneStop)
	require.Len(t, oneStop, 1)
	assert.Equal(t, "b", oneStop[0].ID)
	for _, o := range oneStop {
		assert.Equal(t, 1, o.Stops())
	}

	all := Rank(offers, SortPrice, StopsAll)
	assert.Len(t, all, 3)
}

func TestRankByPriceIsMonotonic(t *testing.T) {
	offers := []models.Offer{
		offer("a", "1500000.00", "PT2H", "2026-09-01T06:00:00", 0),
		offer("b", "850000.00", "PT2H", "2026-09-01T07:00:00", 0),
		offer("c", "1200000.00", "PT2H", "2026-09-01T08:00:00", 0),
	}

	ranked := Rank(offers, SortPrice, StopsAll)
	require.Len(t, ranked, 3)

	for i := 1; i < len(ranked); i++ {
		prev, ok := ranked[i-1].Price.Amount()
		require.True(t, ok)
		cur, ok := ranked[i].Price.Amount()
		require.True(t, ok)
		assert.True(t, prev.LessThanOrEqual(cur), "prices must be non-decreasing")
	}
	assert.Equal(t, []string{"b", "c", "a"}, []string{ranked[0].ID, ranked[1].ID, ranked[2].ID})
}

func TestRankByDurationUsesMinutesNotStrings(t *testing.T) {
	// Lexicographically "PT10H" < "PT9H30M", but 10h is longer.
	offers := []models.Offer{
		offer("long", "100.00", "PT10H", "2026-09-01T06:00:00", 0),
		offer("short", "100.00", "PT9H30M", "2026-09-01T07:00:00", 0),
	}

	ranked := Rank(offers, SortDuration, StopsAll)
	require.Len(t, ranked, 2)
	assert.Equal(t, "short", ranked[0].ID)
}

func TestRankByDeparture(t *testing.T) {
	offers := []models.Offer{
		offer("late", "100.00", "PT2H", "2026-09-01T18:00:00", 0),
		offer("early", "100.00", "PT2H", "2026-09-01T06:00:00", 0),
	}

	ranked := Rank(offers, SortDeparture, StopsAll)
	assert.Equal(t, "early", ranked[0].ID)
}

func TestRankIsStable(t *testing.T) {
	offers := []models.Offer{
		offer("first", "100.00", "PT2H", "2026-09-01T06:00:00", 0),
		offer("second", "100.00", "PT2H", "2026-09-01T07:00:00", 0),
		offer("third", "100.00", "PT2H", "2026-09-01T08:00:00", 0),
	}

	ranked := Rank(offers, SortPrice, StopsAll)
	assert.Equal(t, []string{"first", "second", "third"},
		[]string{ranked[0].ID, ranked[1].ID, ranked[2].ID})
}

func TestRankIsIdempotent(t *testing.T) {
	offers := []models.Offer{
		offer("a", "1500000.00", "PT2H", "2026-09-01T06:00:00", 1),
		offer("b", "850000.00", "PT3H", "2026-09-01T07:00:00", 0),
		offer("c", "1200000.00", "PT1H30M", "2026-09-01T08:00:00", 0),
	}

	once := Rank(offers, SortDuration, StopsAll)
	twice := Rank(once, SortDuration, StopsAll)
	assert.Equal(t, once, twice)
}

func TestRankDoesNotMutateInput(t *testing.T) {
	offers := []models.Offer{
		offer("a", "200.00", "PT2H", "2026-09-01T06:00:00", 0),
		offer("b", "100.00", "PT2H", "2026-09-01T07:00:00", 0),
	}

	Rank(offers, SortPrice, StopsAll)
	assert.Equal(t, "a", offers[0].ID)
	assert.Equal(t, "b", offers[1].ID)
}

func TestRankEmptyInput(t *testing.T) {
	assert.Empty(t, Rank(nil, SortPrice, StopsAll))
	assert.Empty(t, Rank([]models.Offer{}, SortDuration, StopsDirect))
}

func TestRankMalformedPriceSortsLast(t *testing.T) {
	offers := []models.Offer{
		offer("bad", "not-a-price", "PT2H", "2026-09-01T06:00:00", 0),
		offer("good", "900000.00", "PT2H", "2026-09-01T07:00:00", 0),
	}

	ranked := Rank(offers, SortPrice, StopsAll)
	assert.Equal(t, "good", ranked[0].ID)
	assert.Equal(t, "bad", ranked[1].ID)
}

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		input   string
		minutes int
		wantErr bool
	}{
		{"PT2H30M", 150, false},
		{"PT2H", 120, false},
		{"PT45M", 45, false},
		{"PT10H5M", 605, false},
		{"PT", 0, true},
		{"2H30M", 0, true},
		{"", 0, true},
		{"PT2H30", 0, true},
	}

	for _, tt := range tests {
		minutes, err := ParseISODuration(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.minutes, minutes, tt.input)
	}
}
