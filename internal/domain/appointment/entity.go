package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// SetStatus aceita qualquer transição; apenas carimba o horário do novo estado.
func SetStatus(ap *models.Appointment, status Status, now time.Time) {
	ap.Status = string(status)

	switch status {
	case StatusConfirmed:
		ap.ConfirmedAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	case StatusCancelled:
		ap.CancelledAt = &now
	}
}

// CandidateFor monta o candidato de um agendamento já existente (edição).
func CandidateFor(ap *models.Appointment) Candidate {
	return Candidate{
		EmployeeID:  models.UintValue(ap.EmployeeID),
		Date:        ap.Date,
		Time:        ap.Time,
		ServiceIDs:  ap.ServiceIDs,
		ServiceID:   ap.ServiceID,
		ExcludingID: ap.ID,
	}
}
