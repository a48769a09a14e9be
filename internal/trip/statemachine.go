package trip

import (
	"errors"

	"github.com/dharmasatrya/flightbooking/internal/models"
	"github.com/dharmasatrya/flightbooking/internal/ranking"
)

type Phase string

const (
	SelectingOutbound Phase = "selecting_outbound"
	SelectingReturn   Phase = "selecting_return"
	Complete          Phase = "complete"
)

var (
	ErrSelectionComplete  = errors.New("selection already complete")
	ErrNotSelectingReturn = errors.New("not selecting a return flight")
	ErrNotComplete        = errors.New("selection not complete")
)

// StateMachine drives the outbound → (return) → complete selection
// flow for one search. It pins the chosen outbound offer while return
// offers are browsed, and owns the results view's sort and stop-filter
// criteria, which reset to defaults whenever the phase changes.
type StateMachine struct {
	criteria models.SearchCriteria
	phase    Phase

	outboundOffers []models.Offer
	returnOffers   []models.Offer
	pinned         *models.Offer
	selection      *models.BookingSelection

	sortKey    ranking.SortKey
	stopFilter ranking.StopFilter
}

func New(criteria models.SearchCriteria, outboundOffers []models.Offer) *StateMachine {
	m := &StateMachine{}
	m.Reset(criteria, outboundOffers)
	return m
}

// Reset restarts the machine for a new search.
func (m *StateMachine) Reset(criteria models.SearchCriteria, outboundOffers []models.Offer) {
	m.criteria = criteria
	m.phase = SelectingOutbound
	m.outboundOffers = outboundOffers
	m.returnOffers = nil
	m.pinned = nil
	m.selection = nil
	m.resetView()
}

func (m *StateMachine) resetView() {
	m.sortKey = ranking.DefaultSortKey
	m.stopFilter = ranking.DefaultStopFilter
}

func (m *StateMachine) Phase() Phase {
	return m.phase
}

func (m *StateMachine) Criteria() models.SearchCriteria {
	return m.criteria
}

// SetView changes the sort and stop-filter criteria for the current
// phase's offer list.
func (m *StateMachine) SetView(key ranking.SortKey, stops ranking.StopFilter) {
	m.sortKey = key
	m.stopFilter = stops
}

// Offers returns the current phase's offer list, ranked by the current
// view criteria.
func (m *StateMachine) Offers() []models.Offer {
	switch m.phase {
	case SelectingReturn:
		return ranking.Rank(m.returnOffers, m.sortKey, m.stopFilter)
	case SelectingOutbound:
		return ranking.Rank(m.outboundOffers, m.sortKey, m.stopFilter)
	default:
		return nil
	}
}

// SetReturnOffers installs the return-leg result set once it has been
// loaded. Only meaningful while selecting the return flight.
func (m *StateMachine) SetReturnOffers(offers []models.Offer) {
	m.returnOffers = offers
}

// Pinned reports the outbound offer held while return offers are
// browsed.
func (m *StateMachine) Pinned() (models.Offer, bool) {
	if m.pinned == nil {
		return models.Offer{}, false
	}
	return *m.pinned, true
}

// Select applies the user's choice of the given offer.
//
// One-way searches complete immediately. Round trips pin the outbound
// choice and move on to return selection; a second Select completes
// with both offers.
func (m *StateMachine) Select(offer models.Offer) error {
	switch m.phase {
	case SelectingOutbound:
		if m.criteria.TripType == models.TripRoundTrip {
			pinned := offer
			m.pinned = &pinned
			m.phase = SelectingReturn
			m.resetView()
			return nil
		}

		m.selection = &models.BookingSelection{Outbound: offer}
		m.phase = Complete
		return nil

	case SelectingReturn:
		ret := offer
		m.selection = &models.BookingSelection{Outbound: *m.pinned, Return: &ret}
		m.pinned = nil
		m.phase = Complete
		return nil

	default:
		return ErrSelectionComplete
	}
}

// Back abandons the pinned outbound choice and returns to outbound
// selection with the view criteria back at their defaults.
func (m *StateMachine) Back() error {
	if m.phase != SelectingReturn {
		return ErrNotSelectingReturn
	}

	m.pinned = nil
	m.returnOffers = nil
	m.phase = SelectingOutbound
	m.resetView()
	return nil
}

// Selection hands off the finalized offers once the machine is
// complete. Passenger and contact data are collected afterwards.
func (m *StateMachine) Selection() (models.BookingSelection, error) {
	if m.phase != Complete || m.selection == nil {
		return models.BookingSelection{}, ErrNotComplete
	}
	return *m.selection, nil
}
