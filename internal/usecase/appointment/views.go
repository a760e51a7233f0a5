package appointment

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/barber-dashboard/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-dashboard/internal/dto"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

// views resolve nomes de cliente/barbeiro/serviço com cache por request.
type views struct {
	repo      domain.Repository
	checker   *domain.Checker
	services  map[uint]models.Service
	employees map[uint]string
	clients   map[uint]string
}

func (d Deps) views(ctx context.Context) (*views, error) {
	checker, services, err := d.checker(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}

	return &views{
		repo:      d.Repo,
		checker:   checker,
		services:  byID,
		employees: map[uint]string{},
		clients:   map[uint]string{},
	}, nil
}

func (v *views) build(ctx context.Context, ap models.Appointment) (dto.AppointmentListDTO, error) {
	duration := v.checker.Duration(ap)
	serviceIDs := domain.EffectiveServiceIDs(ap.ServiceIDs, ap.ServiceID)

	out := dto.AppointmentListDTO{
		ID:              ap.ID,
		Date:            ap.Date,
		Time:            ap.Time,
		DurationMin:     duration,
		Status:          ap.Status,
		Notes:           ap.Notes,
		ClientID:        ap.ClientID,
		TemporaryClient: ap.TemporaryClient,
		EmployeeID:      ap.EmployeeID,
		ServiceIDs:      serviceIDs,
		ServiceNames:    make([]string, 0, len(serviceIDs)),
		CreatedAt:       ap.CreatedAt,
	}
	if out.ServiceIDs == nil {
		out.ServiceIDs = []uint{}
	}

	if start, err := domain.ParseClock(ap.Time); err == nil {
		out.EndTime = domain.FormatClock(start + duration)
	}

	for _, id := range serviceIDs {
		if s, ok := v.services[id]; ok {
			out.ServiceNames = append(out.ServiceNames, s.Name)
			out.TotalPrice += s.Price
		}
	}

	var err error
	if out.EmployeeName, err = v.employee(ctx, models.UintValue(ap.EmployeeID)); err != nil {
		return out, err
	}

	switch {
	case ap.ClientID != nil:
		if out.ClientName, err = v.client(ctx, *ap.ClientID); err != nil {
			return out, err
		}
	case ap.TemporaryClient != nil:
		out.ClientName = ap.TemporaryClient.Name
	}

	return out, nil
}

func (v *views) buildAll(ctx context.Context, aps []models.Appointment) ([]dto.AppointmentListDTO, error) {
	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		view, err := v.build(ctx, ap)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}

func (v *views) employee(ctx context.Context, id uint) (string, error) {
	if id == 0 {
		return "", nil
	}
	if name, ok := v.employees[id]; ok {
		return name, nil
	}
	e, err := v.repo.GetEmployee(ctx, id)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return "", err
	}
	name := ""
	if e != nil {
		name = e.FullName()
	}
	v.employees[id] = name
	return name, nil
}

func (v *views) client(ctx context.Context, id uint) (string, error) {
	if name, ok := v.clients[id]; ok {
		return name, nil
	}
	c, err := v.repo.GetClient(ctx, id)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return "", err
	}
	name := ""
	if c != nil {
		name = c.FullName()
	}
	v.clients[id] = name
	return name, nil
}
