package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

// Guard recebe os agendamentos do barbeiro no dia e decide se a gravação
// pode prosseguir.
type Guard func(existing []models.Appointment) error

// ListFilter: datas inclusivas em YYYY-MM-DD; zero = sem filtro.
type ListFilter struct {
	From       string
	To         string
	EmployeeID uint
	ClientID   uint
}

type Repository interface {
	// -------- Catalog --------
	ListServices(
		ctx context.Context,
		onlyActive bool,
	) ([]models.Service, error)

	GetEmployee(
		ctx context.Context,
		id uint,
	) (*models.Employee, error)

	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	// -------- Appointment (read) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListForEmployeeOnDate(
		ctx context.Context,
		employeeID uint,
		date string,
	) ([]models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)

	// -------- Appointment (write) --------

	// SaveChecked carrega os agendamentos do barbeiro no dia, executa o
	// guard e grava, tudo sob o mesmo lock. TemporaryClient novo é criado
	// junto.
	SaveChecked(
		ctx context.Context,
		ap *models.Appointment,
		guard Guard,
	) error

	Upsert(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Remove(
		ctx context.Context,
		id uint,
	) error
}
