package models

// BookingStatus is the payment/lifecycle status of a booking.
type BookingStatus string

const (
	BookingUnpaid      BookingStatus = "Unpaid"
	BookingPaid        BookingStatus = "Paid"
	BookingCancelled   BookingStatus = "Cancelled"
	BookingRescheduled BookingStatus = "Rescheduled"
	BookingUnknown     BookingStatus = "Unknown"
)

// ParseBookingStatus maps the upstream lowercase status key to a BookingStatus.
// Anything unrecognized maps to BookingUnknown.
func ParseBookingStatus(s string) BookingStatus {
	switch s {
	case "unpaid":
		return BookingUnpaid
	case "paid":
		return BookingPaid
	case "cancelled":
		return BookingCancelled
	case "rescheduled":
		return BookingRescheduled
	default:
		return BookingUnknown
	}
}

// Booking is an immutable booking snapshot from the upstream airline API.
type Booking struct {
	ID             string        `json:"id"`
	FlightNumber   string        `json:"flightNumber"`
	Route          string        `json:"route"`
	ClassType      string        `json:"classType"`
	ContactEmail   string        `json:"contactEmail"`
	ContactPhone   string        `json:"contactPhone"`
	PassengerCount int           `json:"passengerCount"`
	Status         BookingStatus `json:"status"`
	TotalPrice     float64       `json:"totalPrice"`
	IsDeleted      bool          `json:"isDeleted"`
}

// StatusFilterAll is the sentinel criteria value matching every booking status.
const StatusFilterAll = "all"

// FilterCriteria narrows a booking list. Zero values mean "no restriction",
// except Status which uses the "all" sentinel.
type FilterCriteria struct {
	Search       string `json:"search"`
	FlightNumber string `json:"flightNumber"`
	Status       string `json:"status"`
	ClassType    string `json:"classType"`
	ShowInactive bool   `json:"showInactive"`
}

// DefaultFilterCriteria returns criteria that match every active booking.
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{Status: StatusFilterAll}
}

// CreateBookingRequest is the payload the booking wizard submits once a trip
// selection has been validated.
type CreateBookingRequest struct {
	OutboundFlightID string `json:"outboundFlightId"`
	ReturnFlightID   string `json:"returnFlightId,omitempty"`
	ClassType        string `json:"classType"`
	ContactEmail     string `json:"contactEmail"`
	ContactPhone     string `json:"contactPhone"`
	PassengerCount   int    `json:"passengerCount"`
}
