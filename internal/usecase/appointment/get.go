package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/dto"
)

type GetAppointment struct {
	deps Deps
}

func NewGetAppointment(deps Deps) *GetAppointment {
	return &GetAppointment{deps: deps.withDefaults()}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	actor shop.Actor,
	id uint,
) (*dto.AppointmentListDTO, error) {

	ap, err := uc.deps.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	v, err := uc.deps.views(ctx)
	if err != nil {
		return nil, err
	}
	out, err := v.build(ctx, *ap)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
