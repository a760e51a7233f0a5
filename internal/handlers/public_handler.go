package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
	"github.com/BruksfildServices01/barber-dashboard/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/barber-dashboard/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	repo  shop.Repository
	book  *ucAppointment.BookPublic
	slots *ucAppointment.OccupiedSlots
	log   *slog.Logger
}

func NewPublicHandler(repo shop.Repository, deps ucAppointment.Deps, log *slog.Logger) *PublicHandler {
	return &PublicHandler{
		repo:  repo,
		book:  ucAppointment.NewBookPublic(deps),
		slots: ucAppointment.NewOccupiedSlots(deps),
		log:   log,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	EmployeeID uint   `json:"employee_id"`
	ServiceIDs []uint `json:"service_ids"`
	Date       string `json:"date" binding:"required"` // YYYY-MM-DD
	Time       string `json:"time" binding:"required"` // HH:mm
	Notes      string `json:"notes" binding:"max=255"`
}

type PublicBarber struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

////////////////////////////////////////////////////////
// CATALOG
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.repo.ListServices(c.Request.Context(), true)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	employees, err := h.repo.ListEmployees(c.Request.Context(), true)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	barbers := make([]PublicBarber, 0, len(employees))
	for _, e := range employees {
		barbers = append(barbers, PublicBarber{
			ID:       e.ID,
			Name:     e.FullName(),
			Position: e.Position,
		})
	}

	httpresp.List(c, barbers)
}

////////////////////////////////////////////////////////
// OCCUPIED SLOTS
////////////////////////////////////////////////////////

func (h *PublicHandler) OccupiedSlots(c *gin.Context) {
	serveOccupiedSlots(c, h.slots, h.log, false)
}

////////////////////////////////////////////////////////
// BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookPublicInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		EmployeeID: req.EmployeeID,
		ServiceIDs: req.ServiceIDs,
		Date:       req.Date,
		Time:       req.Time,
		Notes:      req.Notes,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}
