package audit

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

// Filter da listagem de logs; campos zero são ignorados.
type Filter struct {
	Action string
	Entity string
	From   time.Time
	To     time.Time

	Limit  int
	Offset int
}

// Store persiste e lista logs de auditoria. Implementado pelo gorm e
// pelo store em memória.
type Store interface {
	Append(ctx context.Context, entry *models.AuditLog) error
	List(ctx context.Context, filter Filter) ([]models.AuditLog, int64, error)
}
