package shop

import (
	"context"

	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

type Repository interface {
	// -------- Services --------
	ListServices(ctx context.Context, onlyActive bool) ([]models.Service, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
	CreateService(ctx context.Context, s *models.Service) error
	UpdateService(ctx context.Context, s *models.Service) error
	DeleteService(ctx context.Context, id uint) error

	// -------- Employees --------
	ListEmployees(ctx context.Context, onlyActive bool) ([]models.Employee, error)
	GetEmployee(ctx context.Context, id uint) (*models.Employee, error)
	CreateEmployee(ctx context.Context, e *models.Employee) error

	// -------- Clients --------
	ListClients(ctx context.Context) ([]models.Client, error)
	GetClient(ctx context.Context, id uint) (*models.Client, error)
	ListTemporaryClients(ctx context.Context) ([]models.TemporaryClient, error)

	// -------- Users --------
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
	CountUsersByRole(ctx context.Context, role string) (int64, error)

	// RegisterClient cria Client + User de uma vez e marca como
	// "registered" o cliente temporário pendente com o mesmo email.
	RegisterClient(ctx context.Context, client *models.Client, user *models.User) error
}
