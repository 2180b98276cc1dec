package departures

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

var manifestColumns = []struct {
	title string
	width float64
}{
	{"#", 10},
	{"Booking", 34},
	{"Passenger", 56},
	{"Phone", 36},
	{"Pax", 14},
	{"Bags", 14},
	{"Pets", 14},
}

func renderManifest(d *domain.Departure, bookings []*domain.Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Passenger manifest", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PASSENGER MANIFEST")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	header := []string{
		fmt.Sprintf("Route      : %s -> %s", d.Origin, d.Destination),
		fmt.Sprintf("Departure  : %s %s", d.DepartureDate.Format(domain.DateFormat), d.DepartureTime.String()),
		fmt.Sprintf("Status     : %s", d.Status),
		fmt.Sprintf("Seats      : %d taken of %d", d.SeatsTaken, d.Capacity),
	}
	if d.VehicleID != nil {
		header = append(header, fmt.Sprintf("Vehicle    : #%d", *d.VehicleID))
	}
	for _, line := range header {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	for _, col := range manifestColumns {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	passengers := 0
	for i, b := range bookings {
		passengers += b.PassengerCount
		cells := []string{
			strconv.Itoa(i + 1),
			shortReference(b.Reference),
			passengerName(b),
			valueOr(b.GuestPhone, "-"),
			strconv.Itoa(b.PassengerCount),
			strconv.Itoa(b.ExtraLuggage),
			strconv.Itoa(b.Pets),
		}
		for j, col := range manifestColumns {
			align := "L"
			if j == 0 || j >= 4 {
				align = "C"
			}
			pdf.CellFormat(col.width, 7, cells[j], "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total passengers: %d", passengers))
	pdf.Ln(10)

	if d.DriverNotes != nil && *d.DriverNotes != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Driver notes: "+*d.DriverNotes, "", "", false)
	}

	pdf.SetFont("Helvetica", "", 8)
	pdf.Cell(0, 6, "Generated "+time.Now().UTC().Format("2006-01-02 15:04 MST"))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func passengerName(b *domain.Booking) string {
	if name := b.CustomerName(); name != "" {
		return name
	}
	if b.UserID != nil {
		return fmt.Sprintf("user #%d", *b.UserID)
	}
	return "-"
}

func shortReference(ref string) string {
	if len(ref) > 8 {
		return ref[:8]
	}
	return ref
}

func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
