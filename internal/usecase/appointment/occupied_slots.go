package appointment

import (
	"context"
	"slices"

	domain "github.com/BruksfildServices01/barber-dashboard/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-dashboard/internal/dto"
	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
)

type OccupiedSlotsInput struct {
	EmployeeID  uint
	Date        string
	ServiceIDs  []uint
	ServiceID   *uint
	ExcludingID uint
}

// OccupiedSlots alimenta o seletor de horários e o calendário.
type OccupiedSlots struct {
	deps Deps
}

func NewOccupiedSlots(deps Deps) *OccupiedSlots {
	return &OccupiedSlots{deps: deps.withDefaults()}
}

func (uc *OccupiedSlots) Execute(
	ctx context.Context,
	in OccupiedSlotsInput,
) (*dto.OccupiedSlotsDTO, error) {

	if !domain.ValidDate(in.Date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	checker, _, err := uc.deps.checker(ctx)
	if err != nil {
		return nil, err
	}

	duration := checker.CandidateDuration(in.ServiceIDs, in.ServiceID)
	out := &dto.OccupiedSlotsDTO{
		Date:        in.Date,
		EmployeeID:  in.EmployeeID,
		DurationMin: duration,
		Slots:       slices.Clone(domain.SlotGrid),
		Occupied:    []string{},
	}

	// sem barbeiro não há conflito possível
	if in.EmployeeID == 0 {
		out.Available = slices.Clone(domain.SlotGrid)
		return out, nil
	}

	key := domain.SlotKey{
		EmployeeID:  in.EmployeeID,
		Date:        in.Date,
		Duration:    duration,
		ExcludingID: in.ExcludingID,
	}

	occupied, generation, hit := uc.deps.Cache.Get(ctx, key)
	uc.deps.Metrics.SlotCache(hit)

	if !hit {
		existing, err := uc.deps.Repo.ListForEmployeeOnDate(ctx, in.EmployeeID, in.Date)
		if err != nil {
			return nil, err
		}
		occupied = checker.OccupiedSlots(existing, domain.Candidate{
			EmployeeID:  in.EmployeeID,
			Date:        in.Date,
			ServiceIDs:  in.ServiceIDs,
			ServiceID:   in.ServiceID,
			ExcludingID: in.ExcludingID,
		})
		uc.deps.Cache.Set(ctx, key, generation, occupied)
	}

	out.Occupied = occupied
	out.Available = available(occupied)
	return out, nil
}

func available(occupied []string) []string {
	taken := make(map[string]bool, len(occupied))
	for _, s := range occupied {
		taken[s] = true
	}
	out := make([]string, 0, len(domain.SlotGrid))
	for _, s := range domain.SlotGrid {
		if !taken[s] {
			out = append(out, s)
		}
	}
	return out
}
