// Package ticket renders booking e-tickets as PDF documents.
package ticket

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/kharisma-air/admin-gateway/internal/models"
)

// Build renders an A4 e-ticket for a booking and returns the document bytes
// plus a suggested filename.
func Build(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking ID     : %s", safe(b.ID, "-")),
		fmt.Sprintf("Flight         : %s", safe(b.FlightNumber, "-")),
		fmt.Sprintf("Route          : %s", safe(b.Route, "-")),
		fmt.Sprintf("Class          : %s", safe(b.ClassType, "-")),
		fmt.Sprintf("Passengers     : %d", b.PassengerCount),
		fmt.Sprintf("Contact Email  : %s", safe(b.ContactEmail, "-")),
		fmt.Sprintf("Contact Phone  : %s", safe(b.ContactPhone, "-")),
		fmt.Sprintf("Status         : %s", string(b.Status)),
		fmt.Sprintf("Total          : %.2f", b.TotalPrice),
	}
	for _, line := range lines {
		pdf.Cell(0, 8, line)
		pdf.Ln(8)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 8, "Please present this ticket together with a valid ID at check-in.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render e-ticket pdf: %w", err)
	}

	filename := fmt.Sprintf("eticket-%s.pdf", safe(b.ID, "booking"))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
