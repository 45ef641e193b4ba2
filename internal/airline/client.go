// Package airline is the typed client for the upstream airline API, which
// owns flights, bookings and the fleet. The gateway never caches or persists
// what it fetches; every call returns a fresh snapshot.
package airline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kharisma-air/admin-gateway/internal/models"
)

// ErrNotFound is returned when the upstream API answers 404.
var ErrNotFound = errors.New("not found")

// Client talks to the upstream airline API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// flightPayload is the upstream wire shape; status arrives as an integer code.
type flightPayload struct {
	ID            string    `json:"id"`
	FlightNumber  string    `json:"flightNumber"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departureTime"`
	ArrivalTime   time.Time `json:"arrivalTime"`
	StatusCode    int       `json:"statusCode"`
}

func (p flightPayload) toModel() models.Flight {
	status := models.FlightStatusFromCode(p.StatusCode)
	return models.Flight{
		ID:            p.ID,
		FlightNumber:  p.FlightNumber,
		Origin:        p.Origin,
		Destination:   p.Destination,
		DepartureTime: p.DepartureTime,
		ArrivalTime:   p.ArrivalTime,
		Status:        status,
		Bookable:      status.Bookable(),
	}
}

// bookingPayload is the upstream wire shape; status arrives as a lowercase key.
type bookingPayload struct {
	ID             string  `json:"id"`
	FlightNumber   string  `json:"flightNumber"`
	Route          string  `json:"route"`
	ClassType      string  `json:"classType"`
	ContactEmail   string  `json:"contactEmail"`
	ContactPhone   string  `json:"contactPhone"`
	PassengerCount int     `json:"passengerCount"`
	Status         string  `json:"status"`
	TotalPrice     float64 `json:"totalPrice"`
	IsDeleted      bool    `json:"isDeleted"`
}

func (p bookingPayload) toModel() models.Booking {
	return models.Booking{
		ID:             p.ID,
		FlightNumber:   p.FlightNumber,
		Route:          p.Route,
		ClassType:      p.ClassType,
		ContactEmail:   p.ContactEmail,
		ContactPhone:   p.ContactPhone,
		PassengerCount: p.PassengerCount,
		Status:         models.ParseBookingStatus(p.Status),
		TotalPrice:     p.TotalPrice,
		IsDeleted:      p.IsDeleted,
	}
}

// --- Flights ---

// ListFlights returns every flight offering known upstream.
func (c *Client) ListFlights(ctx context.Context) ([]models.Flight, error) {
	var payload []flightPayload
	if err := c.get(ctx, "/flights", &payload); err != nil {
		return nil, fmt.Errorf("list flights: %w", err)
	}
	flights := make([]models.Flight, len(payload))
	for i, p := range payload {
		flights[i] = p.toModel()
	}
	return flights, nil
}

// GetFlight returns a single flight by ID.
func (c *Client) GetFlight(ctx context.Context, id string) (*models.Flight, error) {
	var payload flightPayload
	if err := c.get(ctx, "/flights/"+id, &payload); err != nil {
		return nil, fmt.Errorf("get flight %s: %w", id, err)
	}
	f := payload.toModel()
	return &f, nil
}

// --- Bookings ---

// ListBookings returns every booking, including inactive ones. Visibility of
// inactive bookings is the caller's concern.
func (c *Client) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var payload []bookingPayload
	if err := c.get(ctx, "/bookings", &payload); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	list := make([]models.Booking, len(payload))
	for i, p := range payload {
		list[i] = p.toModel()
	}
	return list, nil
}

// GetBooking returns a single booking by ID.
func (c *Client) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	var payload bookingPayload
	if err := c.get(ctx, "/bookings/"+id, &payload); err != nil {
		return nil, fmt.Errorf("get booking %s: %w", id, err)
	}
	b := payload.toModel()
	return &b, nil
}

// CreateBooking submits the wizard's payload. Pricing and seat allocation
// happen upstream; the response is the booking as priced there.
func (c *Client) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error) {
	var payload bookingPayload
	if err := c.send(ctx, http.MethodPost, "/bookings", req, &payload); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	b := payload.toModel()
	return &b, nil
}

// CancelBooking asks the upstream API to cancel a booking. Cancellation
// policy is enforced there.
func (c *Client) CancelBooking(ctx context.Context, id string) error {
	if err := c.send(ctx, http.MethodDelete, "/bookings/"+id, nil, nil); err != nil {
		return fmt.Errorf("cancel booking %s: %w", id, err)
	}
	return nil
}

// --- Airplanes ---

// ListAirplanes returns the fleet.
func (c *Client) ListAirplanes(ctx context.Context) ([]models.Airplane, error) {
	var list []models.Airplane
	if err := c.get(ctx, "/airplanes", &list); err != nil {
		return nil, fmt.Errorf("list airplanes: %w", err)
	}
	return list, nil
}

// CreateAirplane registers a new aircraft.
func (c *Client) CreateAirplane(ctx context.Context, a models.Airplane) (*models.Airplane, error) {
	var created models.Airplane
	if err := c.send(ctx, http.MethodPost, "/airplanes", a, &created); err != nil {
		return nil, fmt.Errorf("create airplane: %w", err)
	}
	return &created, nil
}

// UpdateAirplane replaces an aircraft record.
func (c *Client) UpdateAirplane(ctx context.Context, a models.Airplane) (*models.Airplane, error) {
	var updated models.Airplane
	if err := c.send(ctx, http.MethodPut, "/airplanes/"+a.ID, a, &updated); err != nil {
		return nil, fmt.Errorf("update airplane %s: %w", a.ID, err)
	}
	return &updated, nil
}

// DeleteAirplane removes an aircraft from the fleet.
func (c *Client) DeleteAirplane(ctx context.Context, id string) error {
	if err := c.send(ctx, http.MethodDelete, "/airplanes/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete airplane %s: %w", id, err)
	}
	return nil
}

// --- Transport ---

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) send(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("upstream %d: %s", resp.StatusCode, e.Error)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
