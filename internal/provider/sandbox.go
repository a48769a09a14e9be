package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v3"

	"github.com/dharmasatrya/flightbooking/internal/models"
	"github.com/dharmasatrya/flightbooking/pkg/currency"
)

// Sandbox is a local stand-in used when no provider credentials are
// configured, and in tests. Offers are deterministic per route and
// date; booking references are clearly-labeled mocks, never real
// provider ids.
type Sandbox struct{}

func NewSandbox() *Sandbox {
	return &Sandbox{}
}

var sandboxCarriers = map[string]string{
	"GA": "GARUDA INDONESIA",
	"JT": "LION AIR",
	"ID": "BATIK AIR",
	"QZ": "INDONESIA AIRASIA",
	"QG": "CITILINK",
}

type sandboxRoute struct {
	basePrice float64 // IDR
	duration  int     // minutes
}

var sandboxRoutes = map[string]sandboxRoute{
	"CGK-DPS": {850000, 110}, "DPS-CGK": {850000, 115},
	"CGK-SUB": {650000, 85}, "SUB-CGK": {650000, 90},
	"CGK-KNO": {1100000, 140}, "KNO-CGK": {1100000, 135},
	"CGK-UPG": {1250000, 155}, "UPG-CGK": {1250000, 160},
	"CGK-JOG": {550000, 70}, "JOG-CGK": {550000, 70},
	"CGK-SIN": {1400000, 105}, "SIN-CGK": {1400000, 110},
	"DPS-SIN": {1600000, 165}, "SIN-DPS": {1600000, 160},
	"CGK-KUL": {1150000, 120}, "KUL-CGK": {1150000, 125},
}

type sandboxOption struct {
	carrier  string
	number   string
	priceMul float64
	stops    int
	depHour  int
}

var sandboxOptions = []sandboxOption{
	{"GA", "410", 1.00, 0, 6},
	{"ID", "6502", 0.90, 0, 9},
	{"JT", "030", 0.70, 0, 12},
	{"QZ", "7510", 0.60, 1, 14},
	{"QG", "680", 0.75, 1, 17},
}

func formatISODuration(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if m == 0 {
		return fmt.Sprintf("PT%dH", h)
	}
	return fmt.Sprintf("PT%dH%dM", h, m)
}

func (s *Sandbox) SearchFlights(ctx context.Context, criteria models.SearchCriteria) (*SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewProviderError(OpSearchFlights, err)
	}

	route, ok := sandboxRoutes[criteria.Origin+"-"+criteria.Destination]
	if !ok {
		route = sandboxRoute{1200000, 120}
	}

	date, err := time.Parse("2006-01-02", criteria.DepartureDate)
	if err != nil {
		return nil, NewProviderError(OpSearchFlights, err)
	}

	transit := "SUB"
	if criteria.Origin == "SUB" || criteria.Destination == "SUB" {
		transit = "UPG"
	}

	offers := make([]models.Offer, 0, len(sandboxOptions))
	for i, opt := range sandboxOptions {
		minutes := route.duration
		if opt.stops > 0 {
			minutes += 75
		}

		dep := time.Date(date.Year(), date.Month(), date.Day(), opt.depHour, 0, 0, 0, time.UTC)
		arr := dep.Add(time.Duration(minutes) * time.Minute)

		var segments []models.Segment
		if opt.stops == 0 {
			segments = []models.Segment{{
				CarrierCode: opt.carrier,
				Number:      opt.number,
				Departure:   models.Endpoint{IATACode: criteria.Origin, At: dep.Format("2006-01-02T15:04:05")},
				Arrival:     models.Endpoint{IATACode: criteria.Destination, At: arr.Format("2006-01-02T15:04:05")},
			}}
		} else {
			mid := dep.Add(time.Duration(route.duration/2) * time.Minute)
			midOut := mid.Add(45 * time.Minute)
			segments = []models.Segment{
				{
					CarrierCode: opt.carrier,
					Number:      opt.number,
					Departure:   models.Endpoint{IATACode: criteria.Origin, At: dep.Format("2006-01-02T15:04:05")},
					Arrival:     models.Endpoint{IATACode: transit, At: mid.Format("2006-01-02T15:04:05")},
				},
				{
					CarrierCode: opt.carrier,
					Number:      opt.number + "1",
					Departure:   models.Endpoint{IATACode: transit, At: midOut.Format("2006-01-02T15:04:05")},
					Arrival:     models.Endpoint{IATACode: criteria.Destination, At: arr.Format("2006-01-02T15:04:05")},
				},
			}
		}

		price := route.basePrice * opt.priceMul * float64(criteria.Adults)

		offers = append(offers, models.Offer{
			ID: fmt.Sprintf("SBX-%s%s-%d", criteria.Origin, criteria.Destination, i+1),
			Itinerary: models.Itinerary{
				Duration: formatISODuration(minutes),
				Segments: segments,
			},
			Price: models.Price{
				Total:     fmt.Sprintf("%.2f", price),
				Currency:  "IDR",
				Formatted: currency.FormatTotal(fmt.Sprintf("%.2f", price)),
			},
		})
	}

	return &SearchResult{Offers: offers, Carriers: sandboxCarriers}, nil
}

// SearchLocations reports no remote suggestions; the local reference
// catalog carries autocomplete in sandbox mode.
func (s *Sandbox) SearchLocations(ctx context.Context, keyword string) ([]models.Location, error) {
	return nil, nil
}

func (s *Sandbox) ConfirmPrice(ctx context.Context, offer models.Offer) (models.Offer, error) {
	return offer, nil
}

func (s *Sandbox) CreateBooking(ctx context.Context, req OrderRequest) (Order, error) {
	if len(req.Offers) == 0 || len(req.Travelers) == 0 {
		return Order{}, NewProviderError(OpCreateBooking,
			fmt.Errorf("order request missing offers or travelers"))
	}

	ref := "MOCK-" + strings.ToUpper(shortuuid.New()[:6])
	return Order{ID: ref}, nil
}
