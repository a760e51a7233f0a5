package models

import "time"

const (
	TemporaryClientPending    = "pending"
	TemporaryClientRegistered = "registered"
)

// Cliente criado pelo agendamento público, sem login
type TemporaryClient struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;index" json:"email"`
	Phone        string `gorm:"size:20" json:"phone"`
	RegisteredOn string `gorm:"size:10" json:"registered_on"`
	Status       string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
