package provider

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/flightbooking/internal/models"
)

func sandboxCriteria() models.SearchCriteria {
	return models.SearchCriteria{
		Origin:        "CGK",
		Destination:   "DPS",
		DepartureDate: "2026-09-10",
		Adults:        1,
		TripType:      models.TripOneWay,
	}
}

func TestSandboxSearchIsDeterministic(t *testing.T) {
	sandbox := NewSandbox()
	ctx := context.Background()

	first, err := sandbox.SearchFlights(ctx, sandboxCriteria())
	require.NoError(t, err)
	second, err := sandbox.SearchFlights(ctx, sandboxCriteria())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSandboxSearchShape(t *testing.T) {
	sandbox := NewSandbox()

	result, err := sandbox.SearchFlights(context.Background(), sandboxCriteria())
	require.NoError(t, err)
	require.Len(t, result.Offers, 5)

	for _, offer := range result.Offers {
		assert.True(t, strings.HasPrefix(offer.ID, "SBX-"))
		require.NotEmpty(t, offer.Itinerary.Segments)

		first := offer.Itinerary.Segments[0]
		last := offer.Itinerary.Segments[len(offer.Itinerary.Segments)-1]
		assert.Equal(t, "CGK", first.Departure.IATACode)
		assert.Equal(t, "DPS", last.Arrival.IATACode)
		assert.Equal(t, "IDR", offer.Price.Currency)
		assert.NotEmpty(t, offer.Price.Formatted)

		_, ok := offer.Price.Amount()
		assert.True(t, ok)

		_, found := result.Carriers[first.CarrierCode]
		assert.True(t, found, "every carrier code resolves in the dictionary")

		date, err := first.Departure.Time()
		require.NoError(t, err)
		assert.Equal(t, "2026-09-10", date.Format("2006-01-02"))
	}
}

func TestSandboxSearchScalesPriceByAdults(t *testing.T) {
	sandbox := NewSandbox()
	ctx := context.Background()

	single, err := sandbox.SearchFlights(ctx, sandboxCriteria())
	require.NoError(t, err)

	criteria := sandboxCriteria()
	criteria.Adults = 2
	double, err := sandbox.SearchFlights(ctx, criteria)
	require.NoError(t, err)

	one, ok := single.Offers[0].Price.Amount()
	require.True(t, ok)
	two, ok := double.Offers[0].Price.Amount()
	require.True(t, ok)
	assert.True(t, one.Mul(decimal.NewFromInt(2)).Equal(two))
}

func TestSandboxSearchRejectsBadDate(t *testing.T) {
	sandbox := NewSandbox()
	criteria := sandboxCriteria()
	criteria.DepartureDate = "next tuesday"

	_, err := sandbox.SearchFlights(context.Background(), criteria)
	require.Error(t, err)

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, OpSearchFlights, provErr.Op)
}

func TestSandboxSearchCancelledContext(t *testing.T) {
	sandbox := NewSandbox()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sandbox.SearchFlights(ctx, sandboxCriteria())
	assert.Error(t, err)
}

func TestSandboxConfirmPriceIsPassthrough(t *testing.T) {
	sandbox := NewSandbox()

	result, err := sandbox.SearchFlights(context.Background(), sandboxCriteria())
	require.NoError(t, err)

	confirmed, err := sandbox.ConfirmPrice(context.Background(), result.Offers[0])
	require.NoError(t, err)
	assert.Equal(t, result.Offers[0], confirmed)
}

func TestSandboxBookingReferenceIsMarkedMock(t *testing.T) {
	sandbox := NewSandbox()

	order, err := sandbox.CreateBooking(context.Background(), OrderRequest{
		Offers:    []models.Offer{{ID: "SBX-CGKDPS-1"}},
		Travelers: []Traveler{{ID: "1", FirstName: "Budi"}},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.ID, "MOCK-"))
	assert.Len(t, order.ID, len("MOCK-")+6)
	assert.Equal(t, strings.ToUpper(order.ID), order.ID)
}

func TestSandboxBookingRequiresOffersAndTravelers(t *testing.T) {
	sandbox := NewSandbox()

	_, err := sandbox.CreateBooking(context.Background(), OrderRequest{})
	assert.Error(t, err)

	_, err = sandbox.CreateBooking(context.Background(), OrderRequest{
		Offers: []models.Offer{{ID: "SBX-CGKDPS-1"}},
	})
	assert.Error(t, err)
}
