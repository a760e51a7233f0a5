package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-dashboard/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

type ChangeStatusInput struct {
	Actor  shop.Actor
	ID     uint
	Status domain.Status
}

// ChangeStatus confirma, conclui ou cancela. Qualquer transição é aceita.
type ChangeStatus struct {
	deps Deps
}

func NewChangeStatus(deps Deps) *ChangeStatus {
	return &ChangeStatus{deps: deps.withDefaults()}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	in ChangeStatusInput,
) (*models.Appointment, error) {

	if !in.Status.Valid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	// cliente só pode cancelar
	if in.Actor.IsClient() && in.Status != domain.StatusCancelled {
		return nil, httperr.ErrBusiness("forbidden")
	}

	ap, err := uc.deps.load(ctx, in.Actor, in.ID)
	if err != nil {
		return nil, err
	}

	reviving := uc.deps.Policy.FreeCancelledSlots &&
		domain.Status(ap.Status) == domain.StatusCancelled &&
		in.Status != domain.StatusCancelled

	ap.TemporaryClient = nil
	domain.SetStatus(ap, in.Status, uc.deps.now())

	if reviving {
		// o horário pode ter sido ocupado enquanto estava cancelado
		checker, _, err := uc.deps.checker(ctx)
		if err != nil {
			return nil, err
		}
		cand := domain.CandidateFor(ap)
		if err := uc.deps.Repo.SaveChecked(ctx, ap, uc.deps.guard(checker, cand)); err != nil {
			uc.deps.rejected(err, "internal", in.Actor.UserRef(), cand)
			return nil, err
		}
	} else if err := uc.deps.Repo.Upsert(ctx, ap); err != nil {
		return nil, err
	}

	uc.deps.written(ctx, string(in.Status), in.Actor.UserRef(), ap)

	return ap, nil
}
