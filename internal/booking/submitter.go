package booking

import (
	"context"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dharmasatrya/flightbooking/internal/models"
	"github.com/dharmasatrya/flightbooking/internal/provider"
)

// Passport nationality and issuance country are required by the
// booking endpoint but not collected by the form; the product serves
// the Indonesian market.
const defaultCountry = "ID"

type Confirmation struct {
	Reference string `json:"reference"`
}

type Failure struct {
	Message string `json:"message"`
}

const genericFailureMessage = "Gagal membuat booking penerbangan"

// Submitter turns a validated BookingSelection into one provider
// booking request and translates the result into exactly one of a
// confirmation or a failure.
type Submitter struct {
	provider provider.Provider
	log      *logrus.Entry
}

func NewSubmitter(p provider.Provider, log *logrus.Logger) *Submitter {
	return &Submitter{
		provider: p,
		log:      log.WithField("component", "submitter"),
	}
}

// Submit assumes Validate already accepted the selection's contact and
// passengers; it does not re-run validation. It issues a single
// booking request, with no retry and no mutation of the selection.
func (s *Submitter) Submit(ctx context.Context, selection models.BookingSelection) (*Confirmation, *Failure) {
	order := buildOrder(selection)

	result, err := s.provider.CreateBooking(ctx, order)
	if err != nil {
		s.log.WithError(err).Warn("booking submission failed")

		message := provider.Detail(err)
		if message == "" {
			message = genericFailureMessage
		}
		return nil, &Failure{Message: message}
	}

	s.log.WithField("reference", result.ID).Info("booking confirmed")
	return &Confirmation{Reference: result.ID}, nil
}

func buildOrder(selection models.BookingSelection) provider.OrderRequest {
	offers := []models.Offer{selection.Outbound}
	if selection.Return != nil {
		offers = append(offers, *selection.Return)
	}

	travelers := make([]provider.Traveler, len(selection.Passengers))
	for i, p := range selection.Passengers {
		travelers[i] = provider.Traveler{
			ID:          strconv.Itoa(i + 1),
			DateOfBirth: strings.TrimSpace(p.DateOfBirth),
			FirstName:   strings.TrimSpace(p.FirstName),
			LastName:    strings.TrimSpace(p.LastName),
			Gender:      string(p.Gender),
			Email:       selection.Contact.Email,
			Phone:       NormalizePhone(selection.Contact.Phone),
			Document: provider.Document{
				Number:          NormalizePassport(p.PassportNumber),
				Nationality:     defaultCountry,
				IssuanceCountry: defaultCountry,
			},
		}
	}

	return provider.OrderRequest{
		Offers:    offers,
		Travelers: travelers,
	}
}
