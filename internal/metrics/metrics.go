package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "barber_dashboard"

// Metrics agrupa os contadores do agendamento. Um *Metrics nil é válido
// e não registra nada.
type Metrics struct {
	bookingConflicts *prometheus.CounterVec
	appointments     *prometheus.CounterVec
	slotCache        *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		bookingConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_conflicts_total",
			Help:      "Bookings rejected because the barber already has an overlapping appointment.",
		}, []string{"source"}),
		appointments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointments_written_total",
			Help:      "Appointment writes by action.",
		}, []string{"action"}),
		slotCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_cache_requests_total",
			Help:      "Occupied-slot cache lookups by result.",
		}, []string{"result"}),
	}

	if reg != nil {
		reg.MustRegister(m.bookingConflicts, m.appointments, m.slotCache)
	}
	return m
}

func (m *Metrics) BookingConflict(source string) {
	if m == nil {
		return
	}
	m.bookingConflicts.WithLabelValues(source).Inc()
}

func (m *Metrics) AppointmentWritten(action string) {
	if m == nil {
		return
	}
	m.appointments.WithLabelValues(action).Inc()
}

func (m *Metrics) SlotCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.slotCache.WithLabelValues(result).Inc()
}
