package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kharisma-air/admin-gateway/internal/models"
	"github.com/kharisma-air/admin-gateway/internal/service"
)

// MockAdminService is a mock implementation of service.AdminService.
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) GetFlights(ctx context.Context, q service.FlightQuery) ([]models.Flight, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

func (m *MockAdminService) GetFlight(ctx context.Context, flightID string) (*models.Flight, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flight), args.Error(1)
}

func (m *MockAdminService) GetBookings(ctx context.Context, criteria models.FilterCriteria) ([]models.Booking, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockAdminService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockAdminService) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockAdminService) CancelBooking(ctx context.Context, bookingID string) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

func (m *MockAdminService) BookingTicket(ctx context.Context, bookingID string) ([]byte, string, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func (m *MockAdminService) GetAirplanes(ctx context.Context) ([]models.Airplane, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Airplane), args.Error(1)
}

func (m *MockAdminService) CreateAirplane(ctx context.Context, a models.Airplane) (*models.Airplane, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Airplane), args.Error(1)
}

func (m *MockAdminService) UpdateAirplane(ctx context.Context, a models.Airplane) (*models.Airplane, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Airplane), args.Error(1)
}

func (m *MockAdminService) DeleteAirplane(ctx context.Context, airplaneID string) error {
	args := m.Called(ctx, airplaneID)
	return args.Error(0)
}

func (m *MockAdminService) StartTrip() service.TripState {
	args := m.Called()
	return args.Get(0).(service.TripState)
}

func (m *MockAdminService) GetTrip(sessionID string) (*service.TripState, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TripState), args.Error(1)
}

func (m *MockAdminService) EndTrip(sessionID string) error {
	args := m.Called(sessionID)
	return args.Error(0)
}

func (m *MockAdminService) SelectDeparture(ctx context.Context, sessionID, flightID string) (*service.TripState, error) {
	args := m.Called(ctx, sessionID, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TripState), args.Error(1)
}

func (m *MockAdminService) SelectReturn(ctx context.Context, sessionID, flightID string) (*service.TripState, error) {
	args := m.Called(ctx, sessionID, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TripState), args.Error(1)
}

func (m *MockAdminService) ClearTrip(sessionID string) (*service.TripState, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TripState), args.Error(1)
}

func (m *MockAdminService) ProceedTrip(sessionID string) (*service.ProceedOutcome, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProceedOutcome), args.Error(1)
}

func (m *MockAdminService) ReturnCandidates(ctx context.Context, sessionID string) ([]models.Flight, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}
