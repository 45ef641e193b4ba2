package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/kharisma-air/admin-gateway/internal/airline"
	"github.com/kharisma-air/admin-gateway/internal/models"
	"github.com/kharisma-air/admin-gateway/internal/service"
)

// Handler contains HTTP handlers for the admin API.
type Handler struct {
	admin service.AdminService
}

// NewHandler creates a new Handler instance.
func NewHandler(admin service.AdminService) *Handler {
	return &Handler{
		admin: admin,
	}
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps upstream and session lookup failures to statuses.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, airline.ErrNotFound):
		respondError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, service.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, "Trip session not found")
	default:
		respondError(w, http.StatusBadGateway, err.Error())
	}
}

// --- Flights ---

// GetFlights handles GET /api/flights
func (h *Handler) GetFlights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := service.FlightQuery{
		Origin:       q.Get("origin"),
		Destination:  q.Get("destination"),
		BookableOnly: q.Get("bookable") == "true",
	}

	flights, err := h.admin.GetFlights(r.Context(), query)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, flights)
}

// GetFlight handles GET /api/flights/{id}
func (h *Handler) GetFlight(w http.ResponseWriter, r *http.Request) {
	flightID := mux.Vars(r)["id"]
	flight, err := h.admin.GetFlight(r.Context(), flightID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, flight)
}

// --- Bookings ---

// GetBookings handles GET /api/bookings
func (h *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	criteria := criteriaFromQuery(r.URL.Query())
	list, err := h.admin.GetBookings(r.Context(), criteria)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

// GetBooking handles GET /api/bookings/{id}
func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["id"]
	booking, err := h.admin.GetBooking(r.Context(), bookingID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

// CreateBooking handles POST /api/bookings
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.OutboundFlightID == "" {
		respondError(w, http.StatusBadRequest, "Outbound flight ID is required")
		return
	}
	if req.ContactEmail == "" {
		respondError(w, http.StatusBadRequest, "Contact email is required")
		return
	}
	if req.ClassType == "" {
		respondError(w, http.StatusBadRequest, "Class is required")
		return
	}
	if req.PassengerCount < 1 {
		respondError(w, http.StatusBadRequest, "At least one passenger is required")
		return
	}

	booking, err := h.admin.CreateBooking(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, booking)
}

// CancelBooking handles DELETE /api/bookings/{id}
func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["id"]
	if err := h.admin.CancelBooking(r.Context(), bookingID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Booking cancelled"})
}

// GetBookingTicket handles GET /api/bookings/{id}/ticket
func (h *Handler) GetBookingTicket(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["id"]
	data, filename, err := h.admin.BookingTicket(r.Context(), bookingID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// --- Airplanes ---

// GetAirplanes handles GET /api/airplanes
func (h *Handler) GetAirplanes(w http.ResponseWriter, r *http.Request) {
	fleet, err := h.admin.GetAirplanes(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, fleet)
}

// CreateAirplane handles POST /api/airplanes
func (h *Handler) CreateAirplane(w http.ResponseWriter, r *http.Request) {
	a, ok := decodeAirplane(w, r)
	if !ok {
		return
	}

	created, err := h.admin.CreateAirplane(r.Context(), a)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateAirplane handles PUT /api/airplanes/{id}
func (h *Handler) UpdateAirplane(w http.ResponseWriter, r *http.Request) {
	a, ok := decodeAirplane(w, r)
	if !ok {
		return
	}
	a.ID = mux.Vars(r)["id"]

	updated, err := h.admin.UpdateAirplane(r.Context(), a)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteAirplane handles DELETE /api/airplanes/{id}
func (h *Handler) DeleteAirplane(w http.ResponseWriter, r *http.Request) {
	airplaneID := mux.Vars(r)["id"]
	if err := h.admin.DeleteAirplane(r.Context(), airplaneID); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Trip sessions ---

type selectFlightRequest struct {
	FlightID string `json:"flightId"`
}

// StartTrip handles POST /api/trips
func (h *Handler) StartTrip(w http.ResponseWriter, r *http.Request) {
	state := h.admin.StartTrip()
	respondJSON(w, http.StatusCreated, state)
}

// GetTrip handles GET /api/trips/{id}
func (h *Handler) GetTrip(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]
	state, err := h.admin.GetTrip(sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// EndTrip handles DELETE /api/trips/{id}
func (h *Handler) EndTrip(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]
	if err := h.admin.EndTrip(sessionID); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SelectDeparture handles POST /api/trips/{id}/departure
func (h *Handler) SelectDeparture(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req selectFlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FlightID == "" {
		respondError(w, http.StatusBadRequest, "Flight ID is required")
		return
	}

	state, err := h.admin.SelectDeparture(r.Context(), sessionID, req.FlightID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// SelectReturn handles POST /api/trips/{id}/return
func (h *Handler) SelectReturn(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req selectFlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FlightID == "" {
		respondError(w, http.StatusBadRequest, "Flight ID is required")
		return
	}

	state, err := h.admin.SelectReturn(r.Context(), sessionID, req.FlightID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// ClearTrip handles DELETE /api/trips/{id}/selection
func (h *Handler) ClearTrip(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]
	state, err := h.admin.ClearTrip(sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// ProceedTrip handles POST /api/trips/{id}/proceed
func (h *Handler) ProceedTrip(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]
	outcome, err := h.admin.ProceedTrip(sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if !outcome.OK {
		respondError(w, http.StatusUnprocessableEntity, outcome.Error)
		return
	}
	respondJSON(w, http.StatusOK, outcome.Result)
}

// ReturnCandidates handles GET /api/trips/{id}/return-candidates
func (h *Handler) ReturnCandidates(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]
	flights, err := h.admin.ReturnCandidates(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, flights)
}

func decodeAirplane(w http.ResponseWriter, r *http.Request) (models.Airplane, bool) {
	var a models.Airplane
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return a, false
	}
	if a.TailNumber == "" {
		respondError(w, http.StatusBadRequest, "Tail number is required")
		return a, false
	}
	if a.Model == "" {
		respondError(w, http.StatusBadRequest, "Model is required")
		return a, false
	}
	if a.SeatCapacity < 1 {
		respondError(w, http.StatusBadRequest, "Seat capacity must be positive")
		return a, false
	}
	return a, true
}

func criteriaFromQuery(q url.Values) models.FilterCriteria {
	criteria := models.DefaultFilterCriteria()
	criteria.Search = q.Get("search")
	criteria.FlightNumber = q.Get("flightNumber")
	if s := q.Get("status"); s != "" {
		criteria.Status = s
	}
	criteria.ClassType = q.Get("classType")
	criteria.ShowInactive = q.Get("showInactive") == "true"
	return criteria
}
