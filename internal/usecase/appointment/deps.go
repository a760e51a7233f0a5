package appointment

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/barber-dashboard/internal/audit"
	domain "github.com/BruksfildServices01/barber-dashboard/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
	"github.com/BruksfildServices01/barber-dashboard/internal/metrics"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
	"github.com/BruksfildServices01/barber-dashboard/internal/timezone"
)

// ======================================================
// DEPENDENCIES
// ======================================================

// Deps é compartilhado por todos os use cases de agendamento.
type Deps struct {
	Repo     domain.Repository
	Cache    domain.SlotCache
	Audit    *audit.Dispatcher
	Metrics  *metrics.Metrics
	Policy   domain.Policy
	Logger   *slog.Logger
	Timezone string
	Now      func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Cache == nil {
		d.Cache = domain.NopSlotCache{}
	}
	if d.Logger == nil {
		d.Logger = slog.New(slog.DiscardHandler)
	}
	if d.Timezone == "" {
		d.Timezone = timezone.DefaultTimezone
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

func (d Deps) now() time.Time {
	return d.Now().In(timezone.Location(d.Timezone))
}

func (d Deps) today() string {
	return timezone.Today(d.Now(), d.Timezone)
}

// checker monta o Checker com as durações atuais do catálogo, incluindo
// serviços inativos ainda referenciados por agendamentos antigos.
func (d Deps) checker(ctx context.Context) (*domain.Checker, []models.Service, error) {
	services, err := d.Repo.ListServices(ctx, false)
	if err != nil {
		return nil, nil, err
	}
	return domain.NewChecker(domain.DurationsFrom(services), d.Policy, d.Logger), services, nil
}

// ======================================================
// SHARED RULES
// ======================================================

func validateSlot(date, hm string) error {
	if !domain.ValidDate(date) {
		return httperr.ErrBusiness("invalid_date")
	}
	if !domain.IsGridSlot(hm) {
		return httperr.ErrBusiness("invalid_time")
	}
	return nil
}

func validateServices(ids []uint, services []models.Service, onlyActive bool) error {
	known := make(map[uint]bool, len(services))
	for _, s := range services {
		known[s.ID] = s.Active || !onlyActive
	}
	for _, id := range ids {
		if !known[id] {
			return httperr.ErrBusiness("service_not_found")
		}
	}
	return nil
}

func (d Deps) ensureEmployee(ctx context.Context, id uint) error {
	if id == 0 {
		return nil
	}
	if _, err := d.Repo.GetEmployee(ctx, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return httperr.ErrBusiness("employee_not_found")
		}
		return err
	}
	return nil
}

func (d Deps) ensureClient(ctx context.Context, id uint) error {
	if _, err := d.Repo.GetClient(ctx, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return httperr.ErrBusiness("client_not_found")
		}
		return err
	}
	return nil
}

// load busca o agendamento e aplica o escopo do ator.
func (d Deps) load(ctx context.Context, actor shop.Actor, id uint) (*models.Appointment, error) {
	ap, err := d.Repo.GetAppointment(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}
	if !canAccess(actor, ap) {
		return nil, httperr.ErrBusiness("forbidden")
	}
	return ap, nil
}

// canAccess: admin vê tudo, barbeiro vê a própria agenda e os agendamentos
// sem barbeiro, cliente vê apenas os seus.
func canAccess(actor shop.Actor, ap *models.Appointment) bool {
	switch actor.Role {
	case shop.RoleAdmin:
		return true
	case shop.RoleBarber:
		emp := models.UintValue(ap.EmployeeID)
		return emp == 0 || emp == actor.EmployeeID
	case shop.RoleClient:
		return actor.ClientID != 0 && models.UintValue(ap.ClientID) == actor.ClientID
	}
	return false
}

// scope força os filtros de listagem conforme o papel. Id zero significa
// "sem filtro", então barbeiro ou cliente sem vínculo é recusado.
func scope(actor shop.Actor, f domain.ListFilter) (domain.ListFilter, error) {
	switch actor.Role {
	case shop.RoleAdmin:
		return f, nil
	case shop.RoleBarber:
		if actor.EmployeeID == 0 {
			return f, httperr.ErrBusiness("forbidden")
		}
		f.EmployeeID = actor.EmployeeID
		return f, nil
	case shop.RoleClient:
		if actor.ClientID == 0 {
			return f, httperr.ErrBusiness("forbidden")
		}
		f.ClientID = actor.ClientID
		return f, nil
	}
	return f, httperr.ErrBusiness("forbidden")
}

// guard rejeita a gravação quando o candidato sobrepõe a agenda.
func (d Deps) guard(checker *domain.Checker, cand domain.Candidate) domain.Guard {
	return func(existing []models.Appointment) error {
		conflicts := checker.Conflicts(existing, cand)
		if len(conflicts) == 0 {
			return nil
		}
		ids := make([]uint, 0, len(conflicts))
		for _, c := range conflicts {
			ids = append(ids, c.ID)
		}
		return &conflictError{with: ids}
	}
}

type conflictError struct {
	with []uint
}

func (e *conflictError) Error() string { return "time_conflict" }

func (e *conflictError) Unwrap() error { return httperr.ErrBusiness("time_conflict") }

// rejected registra métrica/auditoria de um agendamento recusado.
func (d Deps) rejected(err error, source string, actor *uint, cand domain.Candidate) {
	var ce *conflictError
	if !errors.As(err, &ce) {
		return
	}

	d.Metrics.BookingConflict(source)
	d.Logger.Info("booking rejected by overlap",
		"source", source,
		"employee_id", cand.EmployeeID,
		"date", cand.Date,
		"time", cand.Time,
		"conflicts_with", ce.with,
	)
	d.Audit.Dispatch(audit.Event{
		UserID: actor,
		Action: "appointment_conflict",
		Entity: "appointment",
		Metadata: map[string]any{
			"source":         source,
			"employee_id":    cand.EmployeeID,
			"date":           cand.Date,
			"time":           cand.Time,
			"conflicts_with": ce.with,
		},
	})
}

// written invalida o cache dos dias tocados e registra a escrita.
func (d Deps) written(ctx context.Context, action string, actor *uint, ap *models.Appointment, touched ...*models.Appointment) {
	d.Cache.Invalidate(ctx, models.UintValue(ap.EmployeeID), ap.Date)
	for _, t := range touched {
		if t != nil {
			d.Cache.Invalidate(ctx, models.UintValue(t.EmployeeID), t.Date)
		}
	}

	d.Metrics.AppointmentWritten(action)

	id := ap.ID
	d.Audit.Dispatch(audit.Event{
		UserID:   actor,
		Action:   "appointment_" + action,
		Entity:   "appointment",
		EntityID: &id,
		Metadata: map[string]any{
			"employee_id": models.UintValue(ap.EmployeeID),
			"date":        ap.Date,
			"time":        ap.Time,
			"status":      ap.Status,
		},
	})
}
