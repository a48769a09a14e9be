package trip

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/romdo/go-debounce"

	"github.com/dharmasatrya/flightbooking/internal/locations"
	"github.com/dharmasatrya/flightbooking/internal/models"
)

// TokenSlot implements last-writer-wins for in-flight lookups: each
// new request supersedes the previous token, and a response is applied
// only if its token is still the current one. Superseded requests are
// not cancelled on the wire; their results are simply discarded.
type TokenSlot struct {
	mu      sync.Mutex
	current uuid.UUID
}

func NewTokenSlot() *TokenSlot {
	return &TokenSlot{}
}

// Begin issues a fresh token, superseding any outstanding one.
func (s *TokenSlot) Begin() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = uuid.New()
	return s.current
}

// Apply runs fn only if token is still current, reporting whether it
// ran. fn runs under the slot's lock so a concurrent Begin cannot
// interleave with a stale apply.
func (s *TokenSlot) Apply(token uuid.UUID, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token == uuid.Nil || token != s.current {
		return false
	}
	fn()
	return true
}

// Invalidate drops any outstanding token so late results are ignored,
// e.g. when the user navigates away.
func (s *TokenSlot) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = uuid.Nil
}

// LookupFunc is a remote location search; typically
// provider.SearchLocations.
type LookupFunc func(ctx context.Context, query string) ([]models.Location, error)

// ApplyFunc receives the merged suggestions for the query that is
// still current when the lookup lands.
type ApplyFunc func(query string, suggestions []models.Location)

// Debouncer coalesces a burst of keystrokes into one lookup for the
// latest query. A remote failure degrades to local-catalog-only
// suggestions rather than surfacing an error.
type Debouncer struct {
	mu      sync.Mutex
	query   string
	slot    *TokenSlot
	trigger func()
	cancel  func()
}

func NewDebouncer(wait time.Duration, lookup LookupFunc, apply ApplyFunc) *Debouncer {
	d := &Debouncer{slot: NewTokenSlot()}
	d.trigger, d.cancel = debounce.New(wait, func() {
		d.fire(lookup, apply)
	})
	return d
}

// Keystroke records the latest query and (re)arms the debounce timer.
func (d *Debouncer) Keystroke(query string) {
	d.mu.Lock()
	d.query = query
	d.mu.Unlock()
	d.trigger()
}

func (d *Debouncer) fire(lookup LookupFunc, apply ApplyFunc) {
	d.mu.Lock()
	query := d.query
	d.mu.Unlock()

	token := d.slot.Begin()

	go func() {
		remote, err := lookup(context.Background(), query)
		if err != nil {
			remote = nil
		}
		merged := locations.Resolve(query, remote)
		d.slot.Apply(token, func() {
			apply(query, merged)
		})
	}()
}

// Stop cancels any pending fire and invalidates outstanding lookups.
func (d *Debouncer) Stop() {
	d.cancel()
	d.slot.Invalidate()
}
