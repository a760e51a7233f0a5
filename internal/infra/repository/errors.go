package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

// translate converte erros do gorm nos erros de domínio.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.ErrDuplicate
	default:
		return err
	}
}
