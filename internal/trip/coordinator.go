package trip

import (
	"sync"

	"github.com/kharisma-air/admin-gateway/internal/models"
)

// State identifies where a booking session is in the round-trip picking flow.
type State string

const (
	StateEmpty           State = "empty"
	StateDepartureChosen State = "departure_chosen"
	StatePairChosen      State = "pair_chosen"
	StateInvalid         State = "invalid"
)

// Validation messages shown inline next to the selection controls.
const (
	MsgSelectBoth     = "Please select both departure and return flights."
	MsgRouteMismatch  = "Return flight route does not match the departure flight."
	MsgReturnTooEarly = "Return flight must depart after the departure flight arrives."
)

// Selection holds the flights chosen so far plus any validation message.
type Selection struct {
	Departure *models.Flight `json:"departure,omitempty"`
	Return    *models.Flight `json:"return,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// RouteFilter restricts candidate return flights to the reverse of the
// departure route.
type RouteFilter struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// ProceedResult carries the flight pair handed to the booking-creation flow.
type ProceedResult struct {
	OutboundFlightID string `json:"outboundFlightId"`
	ReturnFlightID   string `json:"returnFlightId"`
}

// Coordinator is the round-trip selection state machine for one booking
// session. All methods are safe for concurrent use.
type Coordinator struct {
	mu  sync.Mutex
	sel Selection
}

// NewCoordinator returns a coordinator in the empty state.
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// SelectDeparture sets the departure flight. A previously chosen return
// flight is dropped: route and timing constraints are relative to the
// departure, so switching it invalidates the old choice.
func (c *Coordinator) SelectDeparture(f models.Flight) Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sel.Departure = &f
	c.sel.Return = nil
	c.sel.Error = ""
	return c.sel
}

// SelectReturn records a tentative return flight. Called before a departure
// exists it leaves the state untouched; the pair is only checked at
// ValidateAndProceed.
func (c *Coordinator) SelectReturn(f models.Flight) Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sel.Departure == nil {
		return c.sel
	}
	c.sel.Return = &f
	return c.sel
}

// Clear resets the session to its initial empty state. Dropping the route
// lock makes unrelated flights visible again to the caller's flight list.
func (c *Coordinator) Clear() Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sel = Selection{}
	return c.sel
}

// Selection returns a copy of the current selection state.
func (c *Coordinator) Selection() Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sel
}

// State classifies the current selection.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.sel.Error != "":
		return StateInvalid
	case c.sel.Departure == nil:
		return StateEmpty
	case c.sel.Return == nil:
		return StateDepartureChosen
	default:
		return StatePairChosen
	}
}

// ReturnFilter reports the origin/destination pair candidate return flights
// must match, or false when no departure has been chosen yet.
func (c *Coordinator) ReturnFilter() (RouteFilter, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sel.Departure == nil {
		return RouteFilter{}, false
	}
	return RouteFilter{
		Origin:      c.sel.Departure.Destination,
		Destination: c.sel.Departure.Origin,
	}, true
}

// ValidateAndProceed checks the chosen pair and yields the navigation payload
// for the booking-creation flow. Rules run in order and stop at the first
// failure, which is recorded on the selection for the UI to display. A return
// departing at exactly the outbound's arrival instant is accepted.
func (c *Coordinator) ValidateAndProceed() (ProceedResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	dep, ret := c.sel.Departure, c.sel.Return
	if dep == nil || ret == nil {
		c.sel.Error = MsgSelectBoth
		return ProceedResult{}, false
	}
	if ret.Origin != dep.Destination || ret.Destination != dep.Origin {
		c.sel.Error = MsgRouteMismatch
		return ProceedResult{}, false
	}
	if ret.DepartureTime.Before(dep.ArrivalTime) {
		c.sel.Error = MsgReturnTooEarly
		return ProceedResult{}, false
	}

	c.sel.Error = ""
	return ProceedResult{
		OutboundFlightID: dep.ID,
		ReturnFlightID:   ret.ID,
	}, true
}
