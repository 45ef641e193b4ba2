// Package bookings holds the query logic behind the admin booking list.
package bookings

import (
	"strings"

	"github.com/kharisma-air/admin-gateway/internal/models"
)

// Filter returns the bookings matching every active criterion, preserving the
// input order. It never mutates its inputs; an unmatched filter yields an
// empty slice, not an error.
func Filter(list []models.Booking, c models.FilterCriteria) []models.Booking {
	search := strings.ToLower(strings.TrimSpace(c.Search))
	flightNo := strings.ToLower(strings.TrimSpace(c.FlightNumber))

	out := make([]models.Booking, 0, len(list))
	for _, b := range list {
		if !matchesSearch(b, search) {
			continue
		}
		if flightNo != "" && !strings.Contains(strings.ToLower(b.FlightNumber), flightNo) {
			continue
		}
		if !matchesStatus(b, c.Status) {
			continue
		}
		if c.ClassType != "" && b.ClassType != c.ClassType {
			continue
		}
		if b.IsDeleted && !c.ShowInactive {
			continue
		}
		out = append(out, b)
	}
	return out
}

// matchesSearch checks the free-text term against every searchable field.
func matchesSearch(b models.Booking, term string) bool {
	if term == "" {
		return true
	}
	fields := []string{
		b.ID,
		b.FlightNumber,
		b.Route,
		b.ContactEmail,
		b.ContactPhone,
		b.ClassType,
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func matchesStatus(b models.Booking, selector string) bool {
	if selector == "" || selector == models.StatusFilterAll {
		return true
	}
	return b.Status == models.ParseBookingStatus(selector)
}
