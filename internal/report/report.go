// Package report exports reservations as a spreadsheet.
package report

import (
	"fmt"

	"hotel_reservation/internal/booking"
	"hotel_reservation/internal/domain"

	"github.com/xuri/excelize/v2"
)

const sheet = "Reservations"

var header = []any{"Reservation", "Customer", "Email", "Room", "Type", "Check-in", "Check-out", "Nights", "Total"}

// WriteReservations writes one row per reservation view to an xlsx file at path.
func WriteReservations(path string, views []booking.ReservationView) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, v := range views {
		row := []any{
			v.Reservation.ID,
			v.Customer.FullName(),
			v.Customer.Email,
			v.Room.Number,
			v.Room.Type,
			v.Reservation.CheckIn.Format(domain.DateLayout),
			v.Reservation.CheckOut.Format(domain.DateLayout),
			v.Reservation.Nights(),
			v.Reservation.TotalPrice,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	if len(views) > 0 {
		style, err := f.NewStyle(&excelize.Style{NumFmt: 2}) // 0.00
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "I2", fmt.Sprintf("I%d", len(views)+1), style); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
