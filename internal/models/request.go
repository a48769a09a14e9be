package models

import (
	"regexp"
	"time"
)

type TripType string

const (
	TripOneWay    TripType = "oneWay"
	TripRoundTrip TripType = "roundTrip"
)

type SearchCriteria struct {
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	DepartureDate string   `json:"departure_date"`
	ReturnDate    string   `json:"return_date,omitempty"`
	Adults        int      `json:"adults"`
	TripType      TripType `json:"trip_type"`
}

var iataCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

func (c *SearchCriteria) Validate() error {
	if c.Origin == "" {
		return ErrMissingOrigin
	}
	if c.Destination == "" {
		return ErrMissingDestination
	}
	if !iataCodeRe.MatchString(c.Origin) {
		return ErrInvalidOrigin
	}
	if !iataCodeRe.MatchString(c.Destination) {
		return ErrInvalidDestination
	}
	if c.Origin == c.Destination {
		return ErrSameOriginDestination
	}
	if c.DepartureDate == "" {
		return ErrMissingDepartureDate
	}
	depDate, err := time.Parse("2006-01-02", c.DepartureDate)
	if err != nil {
		return ErrInvalidDepartureDate
	}
	if c.Adults <= 0 {
		c.Adults = 1
	}
	if c.TripType == "" {
		if c.ReturnDate != "" {
			c.TripType = TripRoundTrip
		} else {
			c.TripType = TripOneWay
		}
	}

	switch c.TripType {
	case TripOneWay:
		if c.ReturnDate != "" {
			return ErrUnexpectedReturnDate
		}
	case TripRoundTrip:
		if c.ReturnDate == "" {
			return ErrMissingReturnDate
		}
		retDate, err := time.Parse("2006-01-02", c.ReturnDate)
		if err != nil {
			return ErrInvalidReturnDate
		}
		if retDate.Before(depDate) {
			return ErrReturnBeforeDeparture
		}
	default:
		return ErrInvalidTripType
	}

	return nil
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingOrigin         ValidationError = "origin is required"
	ErrMissingDestination    ValidationError = "destination is required"
	ErrInvalidOrigin         ValidationError = "origin must be a 3-letter IATA code"
	ErrInvalidDestination    ValidationError = "destination must be a 3-letter IATA code"
	ErrSameOriginDestination ValidationError = "origin and destination must differ"
	ErrMissingDepartureDate  ValidationError = "departure_date is required"
	ErrInvalidDepartureDate  ValidationError = "departure_date must be YYYY-MM-DD"
	ErrMissingReturnDate     ValidationError = "return_date is required for round trips"
	ErrInvalidReturnDate     ValidationError = "return_date must be YYYY-MM-DD"
	ErrUnexpectedReturnDate  ValidationError = "return_date is not allowed for one-way trips"
	ErrReturnBeforeDeparture ValidationError = "return_date must not be before departure_date"
	ErrInvalidTripType       ValidationError = "trip_type must be oneWay or roundTrip"
)

// Swapped gives the criteria for the return leg of a round trip.
func (c SearchCriteria) Swapped() SearchCriteria {
	return SearchCriteria{
		Origin:        c.Destination,
		Destination:   c.Origin,
		DepartureDate: c.ReturnDate,
		Adults:        c.Adults,
		TripType:      TripOneWay,
	}
}
