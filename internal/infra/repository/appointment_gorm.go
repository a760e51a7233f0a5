package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-dashboard/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

var _ domain.Repository = (*AppointmentGormRepository)(nil)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) ListServices(
	ctx context.Context,
	onlyActive bool,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).Order("id ASC")
	if onlyActive {
		q = q.Where("active = ?", true)
	}

	var services []models.Service
	if err := q.Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *AppointmentGormRepository) GetEmployee(
	ctx context.Context,
	id uint,
) (*models.Employee, error) {

	var e models.Employee
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("TemporaryClient").
		First(&ap, id).Error; err != nil {
		return nil, translate(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListForEmployeeOnDate(
	ctx context.Context,
	employeeID uint,
	date string,
) ([]models.Appointment, error) {
	return listForEmployeeOnDate(r.db.WithContext(ctx), employeeID, date)
}

func listForEmployeeOnDate(
	db *gorm.DB,
	employeeID uint,
	date string,
) ([]models.Appointment, error) {

	aps := []models.Appointment{}
	if employeeID == 0 {
		return aps, nil
	}

	if err := db.
		Where("employee_id = ? AND date = ?", employeeID, date).
		Order("time ASC, id ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Preload("TemporaryClient")

	if f.From != "" {
		q = q.Where("date >= ?", f.From)
	}
	if f.To != "" {
		q = q.Where("date <= ?", f.To)
	}
	if f.EmployeeID != 0 {
		q = q.Where("employee_id = ?", f.EmployeeID)
	}
	if f.ClientID != 0 {
		q = q.Where("client_id = ?", f.ClientID)
	}

	aps := []models.Appointment{}
	if err := q.
		Order("date ASC, time ASC, id ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

// SaveChecked serializa escritores do mesmo barbeiro/dia com um advisory
// lock de transação; o lock é liberado no commit/rollback.
func (r *AppointmentGormRepository) SaveChecked(
	ctx context.Context,
	ap *models.Appointment,
	guard domain.Guard,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		employeeID := models.UintValue(ap.EmployeeID)

		if employeeID != 0 {
			day, err := dayKey(ap.Date)
			if err != nil {
				return err
			}
			if err := tx.Exec(
				"SELECT pg_advisory_xact_lock(?, ?)",
				int32(employeeID), day,
			).Error; err != nil {
				return fmt.Errorf("advisory lock: %w", err)
			}
		}

		if ap.ID != 0 {
			var count int64
			if err := tx.Model(&models.Appointment{}).
				Where("id = ?", ap.ID).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return models.ErrNotFound
			}
		}

		if guard != nil {
			existing, err := listForEmployeeOnDate(tx, employeeID, ap.Date)
			if err != nil {
				return err
			}
			if err := guard(existing); err != nil {
				return err
			}
		}

		if ap.ID == 0 {
			// cria também o TemporaryClient (belongs-to)
			return tx.Create(ap).Error
		}
		return tx.Omit("TemporaryClient").Save(ap).Error
	})
}

func (r *AppointmentGormRepository) Upsert(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if ap.ID == 0 {
		return r.db.WithContext(ctx).Create(ap).Error
	}

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Select("*").
		Omit("ID", "TemporaryClient", "CreatedAt").
		Updates(ap)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *AppointmentGormRepository) Remove(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// dayKey: "2025-11-10" -> 20251110, segunda chave do advisory lock.
func dayKey(date string) (int32, error) {
	n, err := strconv.ParseInt(strings.ReplaceAll(date, "-", ""), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return int32(n), nil
}
