package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/dharmasatrya/flightbooking/internal/models"
)

// Operation names used for rate limiting and error reporting.
const (
	OpSearchFlights   = "search_flights"
	OpSearchLocations = "search_locations"
	OpConfirmPrice    = "confirm_price"
	OpCreateBooking   = "create_booking"
)

// SearchResult is one direction's offer list plus the carrier-code
// dictionary the provider returned alongside it.
type SearchResult struct {
	Offers   []models.Offer
	Carriers map[string]string
}

// Traveler is one passenger in the shape the booking endpoint expects.
type Traveler struct {
	ID          string   `json:"id"`
	DateOfBirth string   `json:"dateOfBirth"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Gender      string   `json:"gender"`
	Email       string   `json:"emailAddress"`
	Phone       string   `json:"phone"`
	Document    Document `json:"document"`
}

type Document struct {
	Number          string `json:"number"`
	Nationality     string `json:"nationality"`
	IssuanceCountry string `json:"issuanceCountry"`
}

// OrderRequest is a booking submission: one or two offers plus one
// traveler per passenger.
type OrderRequest struct {
	Offers    []models.Offer `json:"offers"`
	Travelers []Traveler     `json:"travelers"`
}

type Order struct {
	ID string `json:"id"`
}

// Provider is the upstream flight-data and booking collaborator.
type Provider interface {
	SearchFlights(ctx context.Context, criteria models.SearchCriteria) (*SearchResult, error)
	SearchLocations(ctx context.Context, keyword string) ([]models.Location, error)
	ConfirmPrice(ctx context.Context, offer models.Offer) (models.Offer, error)
	CreateBooking(ctx context.Context, req OrderRequest) (Order, error)
}

// APIError is a non-success answer from the provider, carrying the
// detail message from its error body when one was present.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("provider returned %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("provider returned %d", e.Status)
}

// ProviderError tags any provider failure with the operation it broke.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func NewProviderError(op string, err error) *ProviderError {
	return &ProviderError{
		Op:  op,
		Err: err,
	}
}

// ErrMalformedOffer marks a provider payload that is missing required
// fields (itinerary, segments, or price total).
var ErrMalformedOffer = errors.New("malformed offer in provider response")

// Detail extracts the provider's detail message from an error chain,
// or "" when the failure had no usable message.
func Detail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}
