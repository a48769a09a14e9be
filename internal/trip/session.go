package trip

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dharmasatrya/flightbooking/internal/booking"
	"github.com/dharmasatrya/flightbooking/internal/models"
	"github.com/dharmasatrya/flightbooking/internal/provider"
)

var (
	ErrNoActiveSearch     = errors.New("no active search")
	ErrSubmissionInFlight = errors.New("a submission is already outstanding")
	ErrSessionAbandoned   = errors.New("session abandoned")
	ErrPassengerIndex     = errors.New("passenger index out of range")
)

// RejectedError carries a form validation rejection through the
// session's submit path; the user corrects the form and resubmits.
type RejectedError struct {
	Result booking.ValidationResult
}

func (e *RejectedError) Error() string {
	return e.Result.Message
}

const lookupDebounce = 300 * time.Millisecond

// Session is one user's search-and-booking workflow: the selection
// state machine, the booking form data, debounced location lookups,
// and the single-submission guard. All operations run on one logical
// control flow; the mutex-free design relies on that, with the lookup
// debouncer's own synchronization covering its background arrival.
type Session struct {
	provider  provider.Provider
	submitter *booking.Submitter
	log       *logrus.Entry

	machine    *StateMachine
	passengers []models.PassengerRecord
	contact    models.ContactInfo
	carriers   map[string]string

	lookups     *Debouncer
	suggestions []models.Location

	submitting bool
	abandoned  bool
}

func NewSession(prov provider.Provider, log *logrus.Logger) *Session {
	s := &Session{
		provider:  prov,
		submitter: booking.NewSubmitter(prov, log),
		log:       log.WithField("component", "session"),
	}
	s.lookups = NewDebouncer(lookupDebounce, prov.SearchLocations, s.applySuggestions)
	return s
}

func (s *Session) applySuggestions(query string, suggestions []models.Location) {
	s.suggestions = suggestions
}

// Keystroke feeds one autocomplete keystroke; only the latest query's
// results will ever land in Suggestions.
func (s *Session) Keystroke(query string) {
	if s.abandoned {
		return
	}
	s.lookups.Keystroke(query)
}

func (s *Session) Suggestions() []models.Location {
	return s.suggestions
}

// StartSearch validates the criteria, loads the outbound offer list
// and resets the selection flow. Passenger slots are sized to the
// criteria's adult count.
func (s *Session) StartSearch(ctx context.Context, criteria models.SearchCriteria) error {
	if s.abandoned {
		return ErrSessionAbandoned
	}
	if err := criteria.Validate(); err != nil {
		return err
	}

	result, err := s.provider.SearchFlights(ctx, criteria)
	if err != nil {
		return err
	}

	if s.machine == nil {
		s.machine = New(criteria, result.Offers)
	} else {
		s.machine.Reset(criteria, result.Offers)
	}
	s.carriers = result.Carriers
	s.passengers = models.EmptyPassengers(criteria.Adults)
	s.contact = models.ContactInfo{}

	s.log.WithFields(logrus.Fields{
		"origin":      criteria.Origin,
		"destination": criteria.Destination,
		"offers":      len(result.Offers),
	}).Info("search started")

	return nil
}

func (s *Session) Machine() *StateMachine {
	return s.machine
}

func (s *Session) Carriers() map[string]string {
	return s.carriers
}

// SelectOffer applies a choice. When a round trip moves into return
// selection, the return-leg offer list is loaded with the route
// swapped; a load failure rolls the machine back so the user can
// retry without losing the outbound list.
func (s *Session) SelectOffer(ctx context.Context, offer models.Offer) error {
	if s.machine == nil {
		return ErrNoActiveSearch
	}

	prevPhase := s.machine.Phase()
	if err := s.machine.Select(offer); err != nil {
		return err
	}

	if prevPhase == SelectingOutbound && s.machine.Phase() == SelectingReturn {
		result, err := s.provider.SearchFlights(ctx, s.machine.Criteria().Swapped())
		if err != nil {
			_ = s.machine.Back()
			return err
		}
		s.machine.SetReturnOffers(result.Offers)
	}

	return nil
}

func (s *Session) Back() error {
	if s.machine == nil {
		return ErrNoActiveSearch
	}
	return s.machine.Back()
}

func (s *Session) SetPassenger(index int, record models.PassengerRecord) error {
	if index < 0 || index >= len(s.passengers) {
		return ErrPassengerIndex
	}
	s.passengers[index] = record
	return nil
}

func (s *Session) SetContact(contact models.ContactInfo) {
	s.contact = contact
}

// Submit validates the form and, on acceptance, submits the booking.
// At most one submission may be outstanding; callers disable the
// submit affordance while this runs.
func (s *Session) Submit(ctx context.Context) (*booking.Confirmation, *booking.Failure, error) {
	if s.abandoned {
		return nil, nil, ErrSessionAbandoned
	}
	if s.machine == nil {
		return nil, nil, ErrNoActiveSearch
	}
	if s.submitting {
		return nil, nil, ErrSubmissionInFlight
	}

	selection, err := s.machine.Selection()
	if err != nil {
		return nil, nil, err
	}

	if result := booking.Validate(s.contact, s.passengers); !result.OK {
		return nil, nil, &RejectedError{Result: result}
	}

	selection.Passengers = s.passengers
	selection.Contact = s.contact

	s.submitting = true
	defer func() { s.submitting = false }()

	confirmation, failure := s.submitter.Submit(ctx, selection)
	if confirmation != nil {
		// Booking done; the form data's lifetime ends here.
		s.passengers = nil
		s.contact = models.ContactInfo{}
	}
	return confirmation, failure, nil
}

// Abandon discards the workflow: outstanding lookup results are
// dropped when they arrive, and form data is destroyed.
func (s *Session) Abandon() {
	s.abandoned = true
	s.lookups.Stop()
	s.suggestions = nil
	s.passengers = nil
	s.contact = models.ContactInfo{}
	s.machine = nil
}
