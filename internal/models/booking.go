package models

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// PassengerRecord is one traveler's form data, filled in field by field.
type PassengerRecord struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	PassportNumber string `json:"passport_number"`
	DateOfBirth    string `json:"date_of_birth"`
	Gender         Gender `json:"gender"`
}

// EmptyPassengers creates one blank record per passenger slot.
func EmptyPassengers(count int) []PassengerRecord {
	passengers := make([]PassengerRecord, count)
	for i := range passengers {
		passengers[i].Gender = GenderMale
	}
	return passengers
}

// ContactInfo is the booking's single contact channel, not per passenger.
type ContactInfo struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookingSelection is what gets submitted: the chosen offers plus the
// collected passenger and contact data. Return is non-nil iff the
// originating search was a round trip.
type BookingSelection struct {
	Outbound   Offer             `json:"outbound"`
	Return     *Offer            `json:"return,omitempty"`
	Passengers []PassengerRecord `json:"passengers"`
	Contact    ContactInfo       `json:"contact"`
}
