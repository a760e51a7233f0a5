package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-dashboard/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/dto"
	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
)

type CalendarMonthInput struct {
	Actor      shop.Actor
	Year       int
	Month      int
	EmployeeID uint
}

// CalendarMonth conta agendamentos por dia do mês; dias vazios também
// aparecem.
type CalendarMonth struct {
	deps Deps
}

func NewCalendarMonth(deps Deps) *CalendarMonth {
	return &CalendarMonth{deps: deps.withDefaults()}
}

func (uc *CalendarMonth) Execute(
	ctx context.Context,
	in CalendarMonthInput,
) ([]dto.CalendarDayDTO, error) {

	if in.Month < 1 || in.Month > 12 || in.Year < 2000 || in.Year > 2999 {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	start := time.Date(in.Year, time.Month(in.Month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	f := domain.ListFilter{
		From:       start.Format(domain.DateLayout),
		To:         end.Format(domain.DateLayout),
		EmployeeID: in.EmployeeID,
	}

	f, err := scope(in.Actor, f)
	if err != nil {
		return nil, err
	}
	aps, err := uc.deps.Repo.ListAppointments(ctx, f)
	if err != nil {
		return nil, err
	}

	days := make([]dto.CalendarDayDTO, 0, end.Day())
	index := make(map[string]int, end.Day())
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(domain.DateLayout)
		index[key] = len(days)
		days = append(days, dto.CalendarDayDTO{Date: key, ByStatus: map[string]int{}})
	}

	for _, ap := range aps {
		i, ok := index[ap.Date]
		if !ok {
			continue
		}
		days[i].Total++
		days[i].ByStatus[ap.Status]++
	}

	return days, nil
}
