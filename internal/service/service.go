package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kharisma-air/admin-gateway/internal/bookings"
	"github.com/kharisma-air/admin-gateway/internal/models"
	"github.com/kharisma-air/admin-gateway/internal/ticket"
	"github.com/kharisma-air/admin-gateway/internal/trip"
)

// ErrSessionNotFound is returned for unknown or expired trip sessions.
var ErrSessionNotFound = errors.New("trip session not found")

// Upstream is the slice of the airline API client the service depends on.
type Upstream interface {
	ListFlights(ctx context.Context) ([]models.Flight, error)
	GetFlight(ctx context.Context, id string) (*models.Flight, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error)
	CancelBooking(ctx context.Context, id string) error
	ListAirplanes(ctx context.Context) ([]models.Airplane, error)
	CreateAirplane(ctx context.Context, a models.Airplane) (*models.Airplane, error)
	UpdateAirplane(ctx context.Context, a models.Airplane) (*models.Airplane, error)
	DeleteAirplane(ctx context.Context, id string) error
}

// FlightQuery narrows the flight list for the admin flight table.
type FlightQuery struct {
	Origin       string
	Destination  string
	BookableOnly bool
}

// TripState is the session view returned to the admin UI.
type TripState struct {
	SessionID string         `json:"sessionId"`
	State     trip.State     `json:"state"`
	Departure *models.Flight `json:"departure,omitempty"`
	Return    *models.Flight `json:"return,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// ProceedOutcome reports whether a trip selection validated, carrying either
// the flight pair or the validation message.
type ProceedOutcome struct {
	OK     bool                `json:"ok"`
	Result *trip.ProceedResult `json:"result,omitempty"`
	Error  string              `json:"error,omitempty"`
}

// AdminService defines the operations backing the admin UI.
type AdminService interface {
	GetFlights(ctx context.Context, q FlightQuery) ([]models.Flight, error)
	GetFlight(ctx context.Context, flightID string) (*models.Flight, error)

	GetBookings(ctx context.Context, criteria models.FilterCriteria) ([]models.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) error
	BookingTicket(ctx context.Context, bookingID string) ([]byte, string, error)

	GetAirplanes(ctx context.Context) ([]models.Airplane, error)
	CreateAirplane(ctx context.Context, a models.Airplane) (*models.Airplane, error)
	UpdateAirplane(ctx context.Context, a models.Airplane) (*models.Airplane, error)
	DeleteAirplane(ctx context.Context, airplaneID string) error

	StartTrip() TripState
	GetTrip(sessionID string) (*TripState, error)
	EndTrip(sessionID string) error
	SelectDeparture(ctx context.Context, sessionID, flightID string) (*TripState, error)
	SelectReturn(ctx context.Context, sessionID, flightID string) (*TripState, error)
	ClearTrip(sessionID string) (*TripState, error)
	ProceedTrip(sessionID string) (*ProceedOutcome, error)
	ReturnCandidates(ctx context.Context, sessionID string) ([]models.Flight, error)
}

// adminService implements AdminService over the upstream API and an in-memory
// trip session registry.
type adminService struct {
	api      Upstream
	sessions *trip.Sessions
}

// NewAdminService creates an AdminService.
func NewAdminService(api Upstream, sessions *trip.Sessions) AdminService {
	return &adminService{
		api:      api,
		sessions: sessions,
	}
}

// --- Flights ---

func (s *adminService) GetFlights(ctx context.Context, q FlightQuery) ([]models.Flight, error) {
	flights, err := s.api.ListFlights(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Flight, 0, len(flights))
	for _, f := range flights {
		if q.Origin != "" && f.Origin != q.Origin {
			continue
		}
		if q.Destination != "" && f.Destination != q.Destination {
			continue
		}
		if q.BookableOnly && !f.Bookable {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

func (s *adminService) GetFlight(ctx context.Context, flightID string) (*models.Flight, error) {
	return s.api.GetFlight(ctx, flightID)
}

// --- Bookings ---

func (s *adminService) GetBookings(ctx context.Context, criteria models.FilterCriteria) ([]models.Booking, error) {
	list, err := s.api.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	return bookings.Filter(list, criteria), nil
}

func (s *adminService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.api.GetBooking(ctx, bookingID)
}

func (s *adminService) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error) {
	return s.api.CreateBooking(ctx, req)
}

func (s *adminService) CancelBooking(ctx context.Context, bookingID string) error {
	return s.api.CancelBooking(ctx, bookingID)
}

func (s *adminService) BookingTicket(ctx context.Context, bookingID string) ([]byte, string, error) {
	b, err := s.api.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	return ticket.Build(*b)
}

// --- Airplanes ---

func (s *adminService) GetAirplanes(ctx context.Context) ([]models.Airplane, error) {
	return s.api.ListAirplanes(ctx)
}

func (s *adminService) CreateAirplane(ctx context.Context, a models.Airplane) (*models.Airplane, error) {
	return s.api.CreateAirplane(ctx, a)
}

func (s *adminService) UpdateAirplane(ctx context.Context, a models.Airplane) (*models.Airplane, error) {
	return s.api.UpdateAirplane(ctx, a)
}

func (s *adminService) DeleteAirplane(ctx context.Context, airplaneID string) error {
	return s.api.DeleteAirplane(ctx, airplaneID)
}

// --- Trip sessions ---

func (s *adminService) StartTrip() TripState {
	id, c := s.sessions.Create()
	return tripState(id.String(), c)
}

func (s *adminService) GetTrip(sessionID string) (*TripState, error) {
	c, err := s.coordinator(sessionID)
	if err != nil {
		return nil, err
	}
	st := tripState(sessionID, c)
	return &st, nil
}

func (s *adminService) EndTrip(sessionID string) error {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return ErrSessionNotFound
	}
	s.sessions.Delete(id)
	return nil
}

func (s *adminService) SelectDeparture(ctx context.Context, sessionID, flightID string) (*TripState, error) {
	c, err := s.coordinator(sessionID)
	if err != nil {
		return nil, err
	}
	flight, err := s.api.GetFlight(ctx, flightID)
	if err != nil {
		return nil, fmt.Errorf("select departure: %w", err)
	}
	c.SelectDeparture(*flight)
	st := tripState(sessionID, c)
	return &st, nil
}

func (s *adminService) SelectReturn(ctx context.Context, sessionID, flightID string) (*TripState, error) {
	c, err := s.coordinator(sessionID)
	if err != nil {
		return nil, err
	}
	flight, err := s.api.GetFlight(ctx, flightID)
	if err != nil {
		return nil, fmt.Errorf("select return: %w", err)
	}
	c.SelectReturn(*flight)
	st := tripState(sessionID, c)
	return &st, nil
}

func (s *adminService) ClearTrip(sessionID string) (*TripState, error) {
	c, err := s.coordinator(sessionID)
	if err != nil {
		return nil, err
	}
	c.Clear()
	st := tripState(sessionID, c)
	return &st, nil
}

func (s *adminService) ProceedTrip(sessionID string) (*ProceedOutcome, error) {
	c, err := s.coordinator(sessionID)
	if err != nil {
		return nil, err
	}
	result, ok := c.ValidateAndProceed()
	if !ok {
		return &ProceedOutcome{Error: c.Selection().Error}, nil
	}
	return &ProceedOutcome{OK: true, Result: &result}, nil
}

// ReturnCandidates lists flights a return leg may use. With a departure
// chosen, the list is locked to the reverse route; otherwise all bookable
// flights are visible.
func (s *adminService) ReturnCandidates(ctx context.Context, sessionID string) ([]models.Flight, error) {
	c, err := s.coordinator(sessionID)
	if err != nil {
		return nil, err
	}

	flights, err := s.api.ListFlights(ctx)
	if err != nil {
		return nil, err
	}

	lock, locked := c.ReturnFilter()
	out := make([]models.Flight, 0, len(flights))
	for _, f := range flights {
		if !f.Bookable {
			continue
		}
		if locked && (f.Origin != lock.Origin || f.Destination != lock.Destination) {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

func (s *adminService) coordinator(sessionID string) (*trip.Coordinator, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	c, ok := s.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return c, nil
}

func tripState(sessionID string, c *trip.Coordinator) TripState {
	sel := c.Selection()
	return TripState{
		SessionID: sessionID,
		State:     c.State(),
		Departure: sel.Departure,
		Return:    sel.Return,
		Error:     sel.Error,
	}
}
