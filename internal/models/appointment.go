package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID          *uint            `gorm:"index" json:"client_id"`
	TemporaryClientID *uint            `json:"temporary_client_id"`
	TemporaryClient   *TemporaryClient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"temporary_client,omitempty"`

	EmployeeID *uint `gorm:"index:idx_appointments_employee_date" json:"employee_id"`

	// id_servicio legado; ServiceIDs é a lista ordenada
	ServiceID  *uint  `json:"service_id"`
	ServiceIDs []uint `gorm:"serializer:json;type:text" json:"service_ids"`

	Date string `gorm:"size:10;not null;index:idx_appointments_employee_date" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
