package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-dashboard/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Actor shop.Actor

	ClientID   uint
	EmployeeID uint

	ServiceIDs []uint
	// id_servicio legado, usado só quando ServiceIDs vem vazio
	ServiceID *uint

	Date   string
	Time   string
	Status string
	Notes  string
}

// ======================================================
// USE CASE
// ======================================================

// CreateAppointment é o formulário interno do dashboard.
type CreateAppointment struct {
	deps Deps
}

func NewCreateAppointment(deps Deps) *CreateAppointment {
	return &CreateAppointment{deps: deps.withDefaults()}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Escopo do ator
	// --------------------------------------------------
	if in.Actor.IsClient() {
		if in.EmployeeID == 0 {
			return nil, httperr.ErrBusiness("employee_required")
		}
		in.ClientID = in.Actor.ClientID
	}
	if in.ClientID == 0 {
		return nil, httperr.ErrBusiness("client_required")
	}

	// --------------------------------------------------
	// 2️⃣ Data / hora na grade
	// --------------------------------------------------
	if err := validateSlot(in.Date, in.Time); err != nil {
		return nil, err
	}

	status := domain.InitialStatus()
	if in.Status != "" && !in.Actor.IsClient() {
		s, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		status = s
	}

	// --------------------------------------------------
	// 3️⃣ Serviços, barbeiro e cliente
	// --------------------------------------------------
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
	if err := uc.deps.ensureClient(ctx, in.ClientID); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ClientID:   models.UintPtr(in.ClientID),
		ServiceIDs: serviceIDs,
		Date:       in.Date,
		Time:       in.Time,
		Notes:      in.Notes,
	}
	if in.EmployeeID != 0 {
		ap.EmployeeID = models.UintPtr(in.EmployeeID)
	}
	domain.SetStatus(ap, status, uc.deps.now())

	// --------------------------------------------------
	// 4️⃣ Conflito + gravação (atômico no repositório)
	// --------------------------------------------------
	cand := domain.CandidateFor(ap)
	if err := uc.deps.Repo.SaveChecked(ctx, ap, uc.deps.guard(checker, cand)); err != nil {
		uc.deps.rejected(err, "internal", in.Actor.UserRef(), cand)
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Cache + auditoria
	// --------------------------------------------------
	uc.deps.written(ctx, "created", in.Actor.UserRef(), ap)

	return ap, nil
}
