package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kharisma-air/admin-gateway/internal/airline"
	"github.com/kharisma-air/admin-gateway/internal/models"
	"github.com/kharisma-air/admin-gateway/internal/service"
	"github.com/kharisma-air/admin-gateway/internal/service/mocks"
	"github.com/kharisma-air/admin-gateway/internal/trip"
)

func setupTestRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/flights", h.GetFlights).Methods(http.MethodGet)
	api.HandleFunc("/flights/{id}", h.GetFlight).Methods(http.MethodGet)
	api.HandleFunc("/airplanes", h.GetAirplanes).Methods(http.MethodGet)
	api.HandleFunc("/airplanes", h.CreateAirplane).Methods(http.MethodPost)
	api.HandleFunc("/airplanes/{id}", h.UpdateAirplane).Methods(http.MethodPut)
	api.HandleFunc("/airplanes/{id}", h.DeleteAirplane).Methods(http.MethodDelete)
	api.HandleFunc("/bookings", h.GetBookings).Methods(http.MethodGet)
	api.HandleFunc("/bookings", h.CreateBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}", h.GetBooking).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", h.CancelBooking).Methods(http.MethodDelete)
	api.HandleFunc("/bookings/{id}/ticket", h.GetBookingTicket).Methods(http.MethodGet)
	api.HandleFunc("/trips", h.StartTrip).Methods(http.MethodPost)
	api.HandleFunc("/trips/{id}", h.GetTrip).Methods(http.MethodGet)
	api.HandleFunc("/trips/{id}/departure", h.SelectDeparture).Methods(http.MethodPost)
	api.HandleFunc("/trips/{id}/return", h.SelectReturn).Methods(http.MethodPost)
	api.HandleFunc("/trips/{id}/return-candidates", h.ReturnCandidates).Methods(http.MethodGet)
	api.HandleFunc("/trips/{id}/selection", h.ClearTrip).Methods(http.MethodDelete)
	api.HandleFunc("/trips/{id}/proceed", h.ProceedTrip).Methods(http.MethodPost)
	return r
}

func TestHandler_GetFlights(t *testing.T) {
	mockService := new(mocks.MockAdminService)
	handler := NewHandler(mockService)
	router := setupTestRouter(handler)

	expected := []models.Flight{
		{ID: "F1", FlightNumber: "GA100", Origin: "CGK", Destination: "SIN",
			Status: models.FlightScheduled, Bookable: true},
	}
	mockService.On("GetFlights", mock.Anything,
		service.FlightQuery{Origin: "CGK", BookableOnly: true}).Return(expected, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/flights?origin=CGK&bookable=true", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response []models.Flight
	err := json.NewDecoder(rec.Body).Decode(&response)
	require.NoError(t, err)
	require.Len(t, response, 1)
	assert.Equal(t, "GA100", response[0].FlightNumber)

	mockService.AssertExpectations(t)
}

func TestHandler_GetFlight(t *testing.T) {
	tests := []struct {
		name           string
		flightID       string
		mockReturn     *models.Flight
		mockError      error
		expectedStatus int
	}{
		{
			name:           "flight found",
			flightID:       "F1",
			mockReturn:     &models.Flight{ID: "F1", FlightNumber: "GA100"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "flight not found",
			flightID:       "F404",
			mockError:      airline.ErrNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.MockAdminService)
			handler := NewHandler(mockService)
			router := setupTestRouter(handler)

			mockService.On("GetFlight", mock.Anything, tt.flightID).Return(tt.mockReturn, tt.mockError)

			req := httptest.NewRequest(http.MethodGet, "/api/flights/"+tt.flightID, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_GetBookings_CriteriaFromQuery(t *testing.T) {
	mockService := new(mocks.MockAdminService)
	handler := NewHandler(mockService)
	router := setupTestRouter(handler)

	expectedCriteria := models.FilterCriteria{
		Search:       "ani",
		FlightNumber: "GA1",
		Status:       "paid",
		ClassType:    "Economy",
		ShowInactive: true,
	}
	mockService.On("GetBookings", mock.Anything, expectedCriteria).
		Return([]models.Booking{{ID: "B1"}}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/bookings?search=ani&flightNumber=GA1&status=paid&classType=Economy&showInactive=true", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockService.AssertExpectations(t)
}

func TestHandler_GetBookings_DefaultCriteria(t *testing.T) {
	mockService := new(mocks.MockAdminService)
	handler := NewHandler(mockService)
	router := setupTestRouter(handler)

	mockService.On("GetBookings", mock.Anything, models.DefaultFilterCriteria()).
		Return([]models.Booking{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockService.AssertExpectations(t)
}

func TestHandler_CreateBooking(t *testing.T) {
	validReq := models.CreateBookingRequest{
		OutboundFlightID: "F1",
		ReturnFlightID:   "F2",
		ClassType:        "Economy",
		ContactEmail:     "ani@example.com",
		ContactPhone:     "+62811000111",
		PassengerCount:   2,
	}

	tests := []struct {
		name           string
		requestBody    models.CreateBookingRequest
		mockReturn     *models.Booking
		mockError      error
		expectedStatus int
		shouldCallMock bool
	}{
		{
			name:           "valid booking creation",
			requestBody:    validReq,
			mockReturn:     &models.Booking{ID: "B1", Status: models.BookingUnpaid},
			expectedStatus: http.StatusCreated,
			shouldCallMock: true,
		},
		{
			name: "missing outbound flight",
			requestBody: models.CreateBookingRequest{
				ClassType: "Economy", ContactEmail: "ani@example.com", PassengerCount: 1,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing contact email",
			requestBody: models.CreateBookingRequest{
				OutboundFlightID: "F1", ClassType: "Economy", PassengerCount: 1,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "zero passengers",
			requestBody: models.CreateBookingRequest{
				OutboundFlightID: "F1", ClassType: "Economy",
				ContactEmail: "ani@example.com",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.MockAdminService)
			handler := NewHandler(mockService)
			router := setupTestRouter(handler)

			if tt.shouldCallMock {
				mockService.On("CreateBooking", mock.Anything, tt.requestBody).
					Return(tt.mockReturn, tt.mockError)
			}

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_CancelBooking(t *testing.T) {
	tests := []struct {
		name           string
		bookingID      string
		mockError      error
		expectedStatus int
	}{
		{
			name:           "successful cancellation",
			bookingID:      "B1",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "booking not found",
			bookingID:      "B404",
			mockError:      airline.ErrNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.MockAdminService)
			handler := NewHandler(mockService)
			router := setupTestRouter(handler)

			mockService.On("CancelBooking", mock.Anything, tt.bookingID).Return(tt.mockError)

			req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+tt.bookingID, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_GetBookingTicket(t *testing.T) {
	mockService := new(mocks.MockAdminService)
	handler := NewHandler(mockService)
	router := setupTestRouter(handler)

	mockService.On("BookingTicket", mock.Anything, "B1").
		Return([]byte("%PDF-1.3 fake"), "eticket-B1.pdf", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/B1/ticket", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "eticket-B1.pdf")
	mockService.AssertExpectations(t)
}

func TestHandler_CreateAirplane_Validation(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    models.Airplane
		expectedStatus int
		shouldCallMock bool
	}{
		{
			name:           "valid airplane",
			requestBody:    models.Airplane{TailNumber: "PK-GIA", Model: "B737-800", SeatCapacity: 162},
			expectedStatus: http.StatusCreated,
			shouldCallMock: true,
		},
		{
			name:           "missing tail number",
			requestBody:    models.Airplane{Model: "B737-800", SeatCapacity: 162},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "zero capacity",
			requestBody:    models.Airplane{TailNumber: "PK-GIA", Model: "B737-800"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.MockAdminService)
			handler := NewHandler(mockService)
			router := setupTestRouter(handler)

			if tt.shouldCallMock {
				created := tt.requestBody
				created.ID = "AP1"
				mockService.On("CreateAirplane", mock.Anything, tt.requestBody).Return(&created, nil)
			}

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/airplanes", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_StartTrip(t *testing.T) {
	mockService := new(mocks.MockAdminService)
	handler := NewHandler(mockService)
	router := setupTestRouter(handler)

	mockService.On("StartTrip").Return(service.TripState{
		SessionID: "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		State:     trip.StateEmpty,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/trips", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var state service.TripState
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&state))
	assert.Equal(t, trip.StateEmpty, state.State)
	mockService.AssertExpectations(t)
}

func TestHandler_SelectDeparture(t *testing.T) {
	sessionID := "7c9e6679-7425-40de-944b-e07fc1f90ae7"

	tests := []struct {
		name           string
		body           string
		mockReturn     *service.TripState
		mockError      error
		expectedStatus int
		shouldCallMock bool
	}{
		{
			name: "valid selection",
			body: `{"flightId":"F1"}`,
			mockReturn: &service.TripState{
				SessionID: sessionID,
				State:     trip.StateDepartureChosen,
			},
			expectedStatus: http.StatusOK,
			shouldCallMock: true,
		},
		{
			name:           "missing flight id",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown session",
			body:           `{"flightId":"F1"}`,
			mockError:      service.ErrSessionNotFound,
			expectedStatus: http.StatusNotFound,
			shouldCallMock: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.MockAdminService)
			handler := NewHandler(mockService)
			router := setupTestRouter(handler)

			if tt.shouldCallMock {
				mockService.On("SelectDeparture", mock.Anything, sessionID, "F1").
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPost,
				"/api/trips/"+sessionID+"/departure", bytes.NewReader([]byte(tt.body)))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_ProceedTrip(t *testing.T) {
	sessionID := "7c9e6679-7425-40de-944b-e07fc1f90ae7"

	tests := []struct {
		name           string
		mockReturn     *service.ProceedOutcome
		expectedStatus int
	}{
		{
			name: "valid pair navigates",
			mockReturn: &service.ProceedOutcome{
				OK:     true,
				Result: &trip.ProceedResult{OutboundFlightID: "F1", ReturnFlightID: "F2"},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "validation failure surfaces message",
			mockReturn: &service.ProceedOutcome{
				Error: trip.MsgRouteMismatch,
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.MockAdminService)
			handler := NewHandler(mockService)
			router := setupTestRouter(handler)

			mockService.On("ProceedTrip", sessionID).Return(tt.mockReturn, nil)

			req := httptest.NewRequest(http.MethodPost, "/api/trips/"+sessionID+"/proceed", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.mockReturn.OK {
				var result trip.ProceedResult
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
				assert.Equal(t, "F1", result.OutboundFlightID)
				assert.Equal(t, "F2", result.ReturnFlightID)
			} else {
				var errResp map[string]string
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
				assert.Equal(t, trip.MsgRouteMismatch, errResp["error"])
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_ClearTrip(t *testing.T) {
	sessionID := "7c9e6679-7425-40de-944b-e07fc1f90ae7"

	mockService := new(mocks.MockAdminService)
	handler := NewHandler(mockService)
	router := setupTestRouter(handler)

	mockService.On("ClearTrip", sessionID).Return(&service.TripState{
		SessionID: sessionID,
		State:     trip.StateEmpty,
	}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/trips/"+sessionID+"/selection", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockService.AssertExpectations(t)
}

func TestHandler_ReturnCandidates(t *testing.T) {
	sessionID := "7c9e6679-7425-40de-944b-e07fc1f90ae7"

	mockService := new(mocks.MockAdminService)
	handler := NewHandler(mockService)
	router := setupTestRouter(handler)

	mockService.On("ReturnCandidates", mock.Anything, sessionID).Return([]models.Flight{
		{ID: "F2", Origin: "SIN", Destination: "CGK", Bookable: true},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/trips/"+sessionID+"/return-candidates", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var flights []models.Flight
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&flights))
	require.Len(t, flights, 1)
	assert.Equal(t, "F2", flights[0].ID)
	mockService.AssertExpectations(t)
}
