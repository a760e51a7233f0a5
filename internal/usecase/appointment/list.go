package appointment

import (
	"context"
	"strconv"
	"strings"

	domain "github.com/BruksfildServices01/barber-dashboard/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/dto"
	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
)

type ListAppointmentsInput struct {
	Actor shop.Actor

	// Date tem prioridade sobre From/To
	Date string
	From string
	To   string

	EmployeeID uint
	Query      string
}

type ListAppointments struct {
	deps Deps
}

func NewListAppointments(deps Deps) *ListAppointments {
	return &ListAppointments{deps: deps.withDefaults()}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]dto.AppointmentListDTO, error) {

	f := domain.ListFilter{From: in.From, To: in.To, EmployeeID: in.EmployeeID}
	if in.Date != "" {
		f.From, f.To = in.Date, in.Date
	}
	for _, d := range []string{f.From, f.To} {
		if d != "" && !domain.ValidDate(d) {
			return nil, httperr.ErrBusiness("invalid_date")
		}
	}

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
	out, err := v.buildAll(ctx, aps)
	if err != nil {
		return nil, err
	}

	return filterQuery(out, in.Query), nil
}

// filterQuery é a busca livre da barra de pesquisa.
func filterQuery(items []dto.AppointmentListDTO, query string) []dto.AppointmentListDTO {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	out := make([]dto.AppointmentListDTO, 0, len(items))
	for _, it := range items {
		fields := []string{
			strconv.FormatUint(uint64(it.ID), 10),
			it.Date, it.Time, it.Status, it.Notes,
			it.ClientName, it.EmployeeName,
			strings.Join(it.ServiceNames, " "),
		}
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}
