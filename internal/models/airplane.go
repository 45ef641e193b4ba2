package models

// Airplane is a fleet aircraft managed through the admin screens.
type Airplane struct {
	ID           string `json:"id"`
	TailNumber   string `json:"tailNumber"`
	Model        string `json:"model"`
	SeatCapacity int    `json:"seatCapacity"`
	InService    bool   `json:"inService"`
}
