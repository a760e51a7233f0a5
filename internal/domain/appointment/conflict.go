package appointment

import (
	"log/slog"

	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

// Policy controla quais agendamentos existentes ocupam horário.
type Policy struct {
	// FreeCancelledSlots libera o horário de agendamentos cancelados.
	FreeCancelledSlots bool
}

// Candidate descreve o horário pedido. EmployeeID e ExcludingID zero
// significam ausentes.
type Candidate struct {
	EmployeeID  uint
	Date        string
	Time        string
	ServiceIDs  []uint
	ServiceID   *uint
	ExcludingID uint
}

type interval struct {
	start, end int
	ap         models.Appointment
}

// Overlaps é o teste semiaberto [aStart,aEnd) x [bStart,bEnd).
// Extremos encostados não conflitam.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// Checker concentra o cálculo de duração e a detecção de sobreposição
// usados pelo formulário interno, pelo agendamento público e pelo calendário.
type Checker struct {
	durations Durations
	policy    Policy
	logger    *slog.Logger
}

func NewChecker(durations Durations, policy Policy, logger *slog.Logger) *Checker {
	if durations == nil {
		durations = Durations{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Checker{durations: durations, policy: policy, logger: logger}
}

// Duration é a duração efetiva de um agendamento já gravado.
func (c *Checker) Duration(ap models.Appointment) int {
	return c.sum(EffectiveServiceIDs(ap.ServiceIDs, ap.ServiceID), "appointment_id", ap.ID)
}

// CandidateDuration é a duração de um pedido ainda não gravado.
func (c *Checker) CandidateDuration(serviceIDs []uint, legacy *uint) int {
	return c.sum(EffectiveServiceIDs(serviceIDs, legacy), "appointment_id", 0)
}

func (c *Checker) sum(ids []uint, key string, id uint) int {
	if len(ids) == 0 {
		c.logger.Warn("no services resolved, using default duration",
			key, id, "minutes", DefaultDurationMinutes)
		return DefaultDurationMinutes
	}

	total := 0
	for _, sid := range ids {
		m, ok := c.durations.lookup(sid)
		if !ok {
			c.logger.Warn("service duration unresolved, using default",
				key, id, "service_id", sid, "minutes", DefaultDurationMinutes)
		}
		total += m
	}
	return total
}

// HasConflict informa se o candidato sobrepõe algum agendamento do mesmo
// barbeiro na mesma data.
func (c *Checker) HasConflict(existing []models.Appointment, cand Candidate) bool {
	return len(c.Conflicts(existing, cand)) > 0
}

// Conflicts devolve os agendamentos sobrepostos pelo candidato.
func (c *Checker) Conflicts(existing []models.Appointment, cand Candidate) []models.Appointment {
	if cand.EmployeeID == 0 {
		return nil
	}

	start, err := ParseClock(cand.Time)
	if err != nil {
		return nil
	}
	end := start + c.CandidateDuration(cand.ServiceIDs, cand.ServiceID)

	var out []models.Appointment
	for _, iv := range c.intervals(existing, cand) {
		if Overlaps(start, end, iv.start, iv.end) {
			out = append(out, iv.ap)
		}
	}
	return out
}

// OccupiedSlots aplica o mesmo teste a cada horário da grade, usando a
// duração do candidato.
func (c *Checker) OccupiedSlots(existing []models.Appointment, cand Candidate) []string {
	occupied := []string{}
	if cand.EmployeeID == 0 {
		return occupied
	}

	duration := c.CandidateDuration(cand.ServiceIDs, cand.ServiceID)
	ivs := c.intervals(existing, cand)

	for _, slot := range SlotGrid {
		start, _ := ParseClock(slot)
		end := start + duration
		for _, iv := range ivs {
			if Overlaps(start, end, iv.start, iv.end) {
				occupied = append(occupied, slot)
				break
			}
		}
	}
	return occupied
}

func (c *Checker) intervals(existing []models.Appointment, cand Candidate) []interval {
	out := make([]interval, 0, len(existing))
	for _, ap := range existing {
		if !c.competes(ap, cand) {
			continue
		}

		start, err := ParseClock(ap.Time)
		if err != nil {
			c.logger.Warn("skipping appointment with unparseable time",
				"appointment_id", ap.ID, "time", ap.Time)
			continue
		}

		out = append(out, interval{
			start: start,
			end:   start + c.Duration(ap),
			ap:    ap,
		})
	}
	return out
}

func (c *Checker) competes(ap models.Appointment, cand Candidate) bool {
	if ap.EmployeeID == nil || *ap.EmployeeID != cand.EmployeeID {
		return false
	}
	if ap.Date != cand.Date {
		return false
	}
	if cand.ExcludingID != 0 && ap.ID == cand.ExcludingID {
		return false
	}
	if c.policy.FreeCancelledSlots && Status(ap.Status) == StatusCancelled {
		return false
	}
	return true
}
