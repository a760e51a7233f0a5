package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

var _ shop.Repository = (*ShopGormRepository)(nil)

// ShopGormRepository reaproveita as consultas de catálogo do repositório
// de agendamentos.
type ShopGormRepository struct {
	*AppointmentGormRepository
	db *gorm.DB
}

func NewShopGormRepository(db *gorm.DB) *ShopGormRepository {
	return &ShopGormRepository{
		AppointmentGormRepository: NewAppointmentGormRepository(db),
		db:                        db,
	}
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *ShopGormRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *ShopGormRepository) CreateService(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ShopGormRepository) UpdateService(ctx context.Context, s *models.Service) error {
	res := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ?", s.ID).
		Select("name", "description", "price", "duration_min", "active").
		Updates(s)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *ShopGormRepository) DeleteService(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Service{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Employees
// --------------------------------------------------

func (r *ShopGormRepository) ListEmployees(ctx context.Context, onlyActive bool) ([]models.Employee, error) {
	q := r.db.WithContext(ctx).Order("id ASC")
	if onlyActive {
		q = q.Where("active = ?", true)
	}

	var employees []models.Employee
	if err := q.Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *ShopGormRepository) CreateEmployee(ctx context.Context, e *models.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// --------------------------------------------------
// Clients
// --------------------------------------------------

func (r *ShopGormRepository) ListClients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ShopGormRepository) ListTemporaryClients(ctx context.Context) ([]models.TemporaryClient, error) {
	var temps []models.TemporaryClient
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&temps).Error; err != nil {
		return nil, err
	}
	return temps, nil
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *ShopGormRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *ShopGormRepository) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *ShopGormRepository) CreateUser(ctx context.Context, u *models.User) error {
	return translate(r.db.WithContext(ctx).Create(u).Error)
}

func (r *ShopGormRepository) CountUsersByRole(ctx context.Context, role string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("role = ?", role).
		Count(&n).Error
	return n, err
}

func (r *ShopGormRepository) RegisterClient(ctx context.Context, client *models.Client, user *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("LOWER(email) = LOWER(?)", user.Email).First(&existing).Error
		if err == nil {
			return models.ErrDuplicate
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(client).Error; err != nil {
			return err
		}

		user.ClientID = models.UintPtr(client.ID)
		if err := tx.Create(user).Error; err != nil {
			return translate(err)
		}

		return tx.Model(&models.TemporaryClient{}).
			Where("status = ? AND LOWER(email) = LOWER(?)", models.TemporaryClientPending, client.Email).
			Update("status", models.TemporaryClientRegistered).Error
	})
}
