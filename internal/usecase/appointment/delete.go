package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
)

type DeleteAppointment struct {
	deps Deps
}

func NewDeleteAppointment(deps Deps) *DeleteAppointment {
	return &DeleteAppointment{deps: deps.withDefaults()}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	actor shop.Actor,
	id uint,
) error {

	ap, err := uc.deps.load(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := uc.deps.Repo.Remove(ctx, id); err != nil {
		return err
	}

	uc.deps.written(ctx, "deleted", actor.UserRef(), ap)
	return nil
}
