package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const AppointmentsSheet = "Citas"

// AppointmentRow é uma linha já resolvida (nomes em vez de ids).
type AppointmentRow struct {
	ID          uint
	Date        string
	Time        string
	Client      string
	Services    string
	Barber      string
	DurationMin int
	TotalPrice  float64
	Status      string
	Notes       string
}

var appointmentHeader = []any{
	"ID", "Fecha", "Hora", "Cliente", "Servicios", "Barbero",
	"Duración (min)", "Total", "Estado", "Observaciones",
}

// AppointmentsXLSX gera a planilha do relatório de citas.
func AppointmentsXLSX(rows []AppointmentRow) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", AppointmentsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "1A1A1A"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D4AF37"}},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	if err := f.SetSheetRow(AppointmentsSheet, "A1", &appointmentHeader); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(AppointmentsSheet, "A1", "J1", header); err != nil {
		return nil, err
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []any{
			r.ID, r.Date, r.Time, r.Client, r.Services, r.Barber,
			r.DurationMin, r.TotalPrice, r.Status, r.Notes,
		}
		if err := f.SetSheetRow(AppointmentsSheet, cell, &values); err != nil {
			return nil, err
		}
	}

	_ = f.SetColWidth(AppointmentsSheet, "D", "F", 24)
	_ = f.SetColWidth(AppointmentsSheet, "J", "J", 36)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
