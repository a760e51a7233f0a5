package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-dashboard/internal/audit"
	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
	"github.com/BruksfildServices01/barber-dashboard/internal/httpresp"
	"github.com/BruksfildServices01/barber-dashboard/internal/middleware"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
	"github.com/BruksfildServices01/barber-dashboard/internal/validators"
)

type EmployeeHandler struct {
	repo  shop.Repository
	audit *audit.Dispatcher
	log   *slog.Logger
}

func NewEmployeeHandler(repo shop.Repository, dispatcher *audit.Dispatcher, log *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{repo: repo, audit: dispatcher, log: log}
}

type CreateEmployeeRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	HiredOn   string `json:"hired_on"`
}

func (h *EmployeeHandler) List(c *gin.Context) {
	onlyActive := strings.TrimSpace(c.Query("active")) == "true"

	employees, err := h.repo.ListEmployees(c.Request.Context(), onlyActive)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	httpresp.List(c, employees)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos")
		return
	}

	email := validators.NormalizeEmail(req.Email)
	if email != "" && !validators.IsEmail(email) {
		fail(c, h.log, httperr.ErrBusiness("invalid_email"))
		return
	}
	phone := strings.TrimSpace(req.Phone)
	if phone != "" && !validators.IsPhone(phone) {
		fail(c, h.log, httperr.ErrBusiness("invalid_phone"))
		return
	}

	emp := models.Employee{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Position:  strings.TrimSpace(req.Position),
		Phone:     phone,
		Email:     email,
		HiredOn:   strings.TrimSpace(req.HiredOn),
		Active:    true,
	}

	if err := h.repo.CreateEmployee(c.Request.Context(), &emp); err != nil {
		fail(c, h.log, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.ActorFrom(c).UserRef(),
		Action:   "employee_created",
		Entity:   "employee",
		EntityID: models.UintPtr(emp.ID),
		Metadata: map[string]any{"name": emp.FullName()},
	})

	c.JSON(http.StatusCreated, emp)
}
