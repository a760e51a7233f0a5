package appointment

import "github.com/BruksfildServices01/barber-dashboard/internal/models"

// Durations mapeia service id -> duração em minutos.
type Durations map[uint]int

func DurationsFrom(services []models.Service) Durations {
	d := make(Durations, len(services))
	for _, s := range services {
		d[s.ID] = s.DurationMin
	}
	return d
}

// lookup devolve a duração do serviço, ou o padrão quando não resolvido.
func (d Durations) lookup(id uint) (int, bool) {
	m, ok := d[id]
	if !ok || m <= 0 {
		return DefaultDurationMinutes, false
	}
	return m, true
}

// EffectiveServiceIDs aplica a regra do formulário: a lista quando existe,
// senão o id legado, senão nada.
func EffectiveServiceIDs(ids []uint, legacy *uint) []uint {
	if len(ids) > 0 {
		return ids
	}
	if legacy != nil && *legacy != 0 {
		return []uint{*legacy}
	}
	return nil
}
