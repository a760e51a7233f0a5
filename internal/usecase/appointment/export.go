package appointment

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/barber-dashboard/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/export"
	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
)

type ExportAppointmentsInput struct {
	Actor      shop.Actor
	From       string
	To         string
	EmployeeID uint
}

// ExportAppointments gera o relatório XLSX respeitando o escopo do ator.
type ExportAppointments struct {
	deps Deps
}

func NewExportAppointments(deps Deps) *ExportAppointments {
	return &ExportAppointments{deps: deps.withDefaults()}
}

func (uc *ExportAppointments) Execute(
	ctx context.Context,
	in ExportAppointmentsInput,
) ([]byte, error) {

	for _, d := range []string{in.From, in.To} {
		if d != "" && !domain.ValidDate(d) {
			return nil, httperr.ErrBusiness("invalid_date")
		}
	}

	f := domain.ListFilter{From: in.From, To: in.To, EmployeeID: in.EmployeeID}
	f, err := scope(in.Actor, f)
	if err != nil {
		return nil, err
	}
	aps, err := uc.deps.Repo.ListAppointments(ctx, f)
	if err != nil {
		return nil, err
	}

	v, err := uc.deps.views(ctx)
	if err != nil {
		return nil, err
	}
	items, err := v.buildAll(ctx, aps)
	if err != nil {
		return nil, err
	}

	rows := make([]export.AppointmentRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, export.AppointmentRow{
			ID:          it.ID,
			Date:        it.Date,
			Time:        it.Time,
			Client:      it.ClientName,
			Services:    strings.Join(it.ServiceNames, ", "),
			Barber:      it.EmployeeName,
			DurationMin: it.DurationMin,
			TotalPrice:  it.TotalPrice,
			Status:      it.Status,
			Notes:       it.Notes,
		})
	}

	return export.AppointmentsXLSX(rows)
}
