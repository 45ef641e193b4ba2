package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kharisma-air/admin-gateway/internal/handlers"
	"github.com/kharisma-air/admin-gateway/internal/websocket"
)

// SetupRouter creates and configures the HTTP router.
func SetupRouter(h *handlers.Handler, hub *websocket.Hub) *mux.Router {
	r := mux.NewRouter()

	// CORS middleware
	r.Use(corsMiddleware)

	// API routes
	api := r.PathPrefix("/api").Subrouter()

	// Flights
	api.HandleFunc("/flights", h.GetFlights).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/ws", websocket.ServeWS(hub))
	api.HandleFunc("/flights/{id}", h.GetFlight).Methods(http.MethodGet, http.MethodOptions)

	// Airplanes
	api.HandleFunc("/airplanes", h.GetAirplanes).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/airplanes", h.CreateAirplane).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/airplanes/{id}", h.UpdateAirplane).Methods(http.MethodPut, http.MethodOptions)
	api.HandleFunc("/airplanes/{id}", h.DeleteAirplane).Methods(http.MethodDelete, http.MethodOptions)

	// Bookings
	api.HandleFunc("/bookings", h.GetBookings).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/bookings", h.CreateBooking).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/bookings/{id}", h.GetBooking).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/bookings/{id}", h.CancelBooking).Methods(http.MethodDelete, http.MethodOptions)
	api.HandleFunc("/bookings/{id}/ticket", h.GetBookingTicket).Methods(http.MethodGet, http.MethodOptions)

	// Round-trip selection sessions
	api.HandleFunc("/trips", h.StartTrip).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/trips/{id}", h.GetTrip).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/trips/{id}", h.EndTrip).Methods(http.MethodDelete, http.MethodOptions)
	api.HandleFunc("/trips/{id}/departure", h.SelectDeparture).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/trips/{id}/return", h.SelectReturn).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/trips/{id}/return-candidates", h.ReturnCandidates).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/trips/{id}/selection", h.ClearTrip).Methods(http.MethodDelete, http.MethodOptions)
	api.HandleFunc("/trips/{id}/proceed", h.ProceedTrip).Methods(http.MethodPost, http.MethodOptions)

	// Health check
	r.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
