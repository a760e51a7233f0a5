package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-dashboard/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

type UpdateAppointmentInput struct {
	Actor shop.Actor
	ID    uint

	ClientID   uint
	EmployeeID uint
	ServiceIDs []uint
	ServiceID  *uint

	Date   string
	Time   string
	Status string
	Notes  string
}

// UpdateAppointment edita/reagenda; a verificação ignora o próprio id.
type UpdateAppointment struct {
	deps Deps
}

func NewUpdateAppointment(deps Deps) *UpdateAppointment {
	return &UpdateAppointment{deps: deps.withDefaults()}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.deps.load(ctx, in.Actor, in.ID)
	if err != nil {
		return nil, err
	}
	before := *ap

	if in.ClientID == 0 {
		return nil, httperr.ErrBusiness("client_required")
	}
	if err := validateSlot(in.Date, in.Time); err != nil {
		return nil, err
	}

	// barbeiro só move agendamentos para a própria agenda
	if in.Actor.IsBarber() && in.EmployeeID != 0 && in.EmployeeID != in.Actor.EmployeeID {
		return nil, httperr.ErrBusiness("forbidden")
	}

	checker, services, err := uc.deps.checker(ctx)
	if err != nil {
		return nil, err
	}

	serviceIDs := domain.EffectiveServiceIDs(in.ServiceIDs, in.ServiceID)
	if err := validateServices(serviceIDs, services, false); err != nil {
		return nil, err
	}
	if err := uc.deps.ensureEmployee(ctx, in.EmployeeID); err != nil {
		return nil, err
	}
	if models.UintValue(ap.ClientID) != in.ClientID {
		if err := uc.deps.ensureClient(ctx, in.ClientID); err != nil {
			return nil, err
		}
	}

	ap.ClientID = models.UintPtr(in.ClientID)
	ap.EmployeeID = nil
	if in.EmployeeID != 0 {
		ap.EmployeeID = models.UintPtr(in.EmployeeID)
	}
	ap.ServiceIDs = serviceIDs
	ap.ServiceID = nil
	ap.Date = in.Date
	ap.Time = in.Time
	ap.Notes = in.Notes
	ap.TemporaryClient = nil

	if in.Status != "" && in.Status != ap.Status {
		status, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		domain.SetStatus(ap, status, uc.deps.now())
	}

	cand := domain.CandidateFor(ap)
	if err := uc.deps.Repo.SaveChecked(ctx, ap, uc.deps.guard(checker, cand)); err != nil {
		uc.deps.rejected(err, "internal", in.Actor.UserRef(), cand)
		return nil, err
	}

	uc.deps.written(ctx, "updated", in.Actor.UserRef(), ap, &before)

	return ap, nil
}
