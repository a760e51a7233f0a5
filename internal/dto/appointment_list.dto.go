package dto

import (
	"time"

	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

// AppointmentListDTO é o agendamento com nomes resolvidos e horário final.
type AppointmentListDTO struct {
	ID          uint   `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	EndTime     string `json:"end_time"`
	DurationMin int    `json:"duration_min"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`

	ClientID        *uint                   `json:"client_id"`
	ClientName      string                  `json:"client_name"`
	TemporaryClient *models.TemporaryClient `json:"temporary_client,omitempty"`

	EmployeeID   *uint  `json:"employee_id"`
	EmployeeName string `json:"employee_name"`

	ServiceIDs   []uint   `json:"service_ids"`
	ServiceNames []string `json:"service_names"`
	TotalPrice   float64  `json:"total_price"`

	CreatedAt time.Time `json:"created_at"`
}

type OccupiedSlotsDTO struct {
	Date        string   `json:"date"`
	EmployeeID  uint     `json:"employee_id"`
	DurationMin int      `json:"duration_min"`
	Slots       []string `json:"slots"`
	Occupied    []string `json:"occupied"`
	Available   []string `json:"available"`
}

type CalendarDayDTO struct {
	Date     string         `json:"date"`
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}
