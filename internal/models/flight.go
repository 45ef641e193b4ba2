package models

import "time"

// FlightStatus is the lifecycle status of a flight offering.
type FlightStatus string

const (
	FlightScheduled FlightStatus = "Scheduled"
	FlightInFlight  FlightStatus = "InFlight"
	FlightFinished  FlightStatus = "Finished"
	FlightDelayed   FlightStatus = "Delayed"
	FlightCancelled FlightStatus = "Cancelled"
	FlightUnknown   FlightStatus = "Unknown"
)

// FlightStatusFromCode maps the upstream integer status code to a FlightStatus.
// Codes outside 1..5 map to FlightUnknown.
func FlightStatusFromCode(code int) FlightStatus {
	switch code {
	case 1:
		return FlightScheduled
	case 2:
		return FlightInFlight
	case 3:
		return FlightFinished
	case 4:
		return FlightDelayed
	case 5:
		return FlightCancelled
	default:
		return FlightUnknown
	}
}

// Bookable reports whether seats on a flight with this status can still be sold.
func (s FlightStatus) Bookable() bool {
	return s == FlightScheduled || s == FlightDelayed
}

// Flight represents a flight offering as served by the upstream airline API.
// Instances are immutable snapshots, replaced wholesale on refresh.
type Flight struct {
	ID            string       `json:"id"`
	FlightNumber  string       `json:"flightNumber"`
	Origin        string       `json:"origin"`
	Destination   string       `json:"destination"`
	DepartureTime time.Time    `json:"departureTime"`
	ArrivalTime   time.Time    `json:"arrivalTime"`
	Status        FlightStatus `json:"status"`
	Bookable      bool         `json:"bookable"`
}
