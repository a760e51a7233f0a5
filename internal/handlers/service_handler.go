package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-dashboard/internal/audit"
	domain "github.com/BruksfildServices01/barber-dashboard/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
	"github.com/BruksfildServices01/barber-dashboard/internal/httpresp"
	"github.com/BruksfildServices01/barber-dashboard/internal/middleware"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

type ServiceHandler struct {
	repo  shop.Repository
	cache domain.SlotCache
	audit *audit.Dispatcher
	log   *slog.Logger
}

func NewServiceHandler(repo shop.Repository, cache domain.SlotCache, dispatcher *audit.Dispatcher, log *slog.Logger) *ServiceHandler {
	if cache == nil {
		cache = domain.NopSlotCache{}
	}
	return &ServiceHandler{repo: repo, cache: cache, audit: dispatcher, log: log}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"gte=0"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty" binding:"omitempty,min=1"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	Active      *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	onlyActive := strings.TrimSpace(c.Query("active")) == "true"
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	services, err := h.repo.ListServices(c.Request.Context(), onlyActive)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	if query != "" {
		filtered := services[:0]
		for _, s := range services {
			if strings.Contains(strings.ToLower(s.Name), query) ||
				strings.Contains(strings.ToLower(s.Description), query) {
				filtered = append(filtered, s)
			}
		}
		services = filtered
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos")
		return
	}

	svc := models.Service{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Active:      true,
	}

	if err := h.repo.CreateService(c.Request.Context(), &svc); err != nil {
		fail(c, h.log, err)
		return
	}

	h.record(c, "service_created", svc.ID, map[string]any{"name": svc.Name})
	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	svc, err := h.repo.GetService(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, notFoundAs(err, "service_not_found"))
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos")
		return
	}

	durationChanged := false
	if req.Name != nil {
		svc.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		svc.Description = strings.TrimSpace(*req.Description)
	}
	if req.DurationMin != nil && *req.DurationMin != svc.DurationMin {
		svc.DurationMin = *req.DurationMin
		durationChanged = true
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.repo.UpdateService(c.Request.Context(), svc); err != nil {
		fail(c, h.log, notFoundAs(err, "service_not_found"))
		return
	}

	// a duração alimenta todos os horários ocupados já calculados
	if durationChanged {
		h.cache.InvalidateAll(c.Request.Context())
	}

	h.record(c, "service_updated", svc.ID, req)
	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteService(c.Request.Context(), id); err != nil {
		fail(c, h.log, notFoundAs(err, "service_not_found"))
		return
	}

	h.cache.InvalidateAll(c.Request.Context())
	h.record(c, "service_deleted", id, nil)
	c.Status(http.StatusNoContent)
}

func (h *ServiceHandler) record(c *gin.Context, action string, id uint, meta any) {
	h.audit.Dispatch(audit.Event{
		UserID:   middleware.ActorFrom(c).UserRef(),
		Action:   action,
		Entity:   "service",
		EntityID: models.UintPtr(id),
		Metadata: meta,
	})
}
