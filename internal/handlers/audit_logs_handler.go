package handlers

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-dashboard/internal/audit"
	"github.com/BruksfildServices01/barber-dashboard/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	store audit.Store
	log   *slog.Logger
}

func NewAuditLogsHandler(store audit.Store, log *slog.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{store: store, log: log}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "50")

	page, _ := strconv.Atoi(pageStr)
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	filter := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	// --------------------------------------------------
	// Período (datas inválidas são ignoradas)
	// --------------------------------------------------

	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := time.Parse(appointment.DateLayout, fromStr); err == nil {
			filter.From = from
		}
	}

	if toStr := c.Query("to"); toStr != "" {
		if to, err := time.Parse(appointment.DateLayout, toStr); err == nil {
			filter.To = to.Add(24 * time.Hour)
		}
	}

	logs, total, err := h.store.List(c.Request.Context(), filter)
	if err != nil {
		h.log.Error("audit list failed", "error", err)
		httperr.Internal(c, "audit_list_failed", "Error al listar los registros")
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
