package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-dashboard/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
	"github.com/BruksfildServices01/barber-dashboard/internal/httpresp"
	"github.com/BruksfildServices01/barber-dashboard/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-dashboard/internal/usecase/appointment"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create   *ucAppointment.CreateAppointment
	update   *ucAppointment.UpdateAppointment
	status   *ucAppointment.ChangeStatus
	remove   *ucAppointment.DeleteAppointment
	get      *ucAppointment.GetAppointment
	list     *ucAppointment.ListAppointments
	slots    *ucAppointment.OccupiedSlots
	calendar *ucAppointment.CalendarMonth
	export   *ucAppointment.ExportAppointments
	log      *slog.Logger
}

func NewAppointmentHandler(deps ucAppointment.Deps, log *slog.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		create:   ucAppointment.NewCreateAppointment(deps),
		update:   ucAppointment.NewUpdateAppointment(deps),
		status:   ucAppointment.NewChangeStatus(deps),
		remove:   ucAppointment.NewDeleteAppointment(deps),
		get:      ucAppointment.NewGetAppointment(deps),
		list:     ucAppointment.NewListAppointments(deps),
		slots:    ucAppointment.NewOccupiedSlots(deps),
		calendar: ucAppointment.NewCalendarMonth(deps),
		export:   ucAppointment.NewExportAppointments(deps),
		log:      log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	ClientID   uint   `json:"client_id"`
	EmployeeID uint   `json:"employee_id"`
	ServiceIDs []uint `json:"service_ids"`
	// id_servicio legado
	ServiceID *uint `json:"service_id"`

	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Status string `json:"status"`
	Notes  string `json:"notes" binding:"max=255"`
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		Actor:      middleware.ActorFrom(c),
		ClientID:   req.ClientID,
		EmployeeID: req.EmployeeID,
		ServiceIDs: req.ServiceIDs,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		Time:       req.Time,
		Status:     req.Status,
		Notes:      req.Notes,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		Actor:      middleware.ActorFrom(c),
		ID:         id,
		ClientID:   req.ClientID,
		EmployeeID: req.EmployeeID,
		ServiceIDs: req.ServiceIDs,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		Time:       req.Time,
		Status:     req.Status,
		Notes:      req.Notes,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.changeStatus(c, domain.StatusConfirmed)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.changeStatus(c, domain.StatusCompleted)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.changeStatus(c, domain.StatusCancelled)
}

func (h *AppointmentHandler) changeStatus(c *gin.Context, status domain.Status) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.status.Execute(c.Request.Context(), ucAppointment.ChangeStatusInput{
		Actor:  middleware.ActorFrom(c),
		ID:     id,
		Status: status,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		fail(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.get.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	httpresp.OK(c, view)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	employeeID, ok := queryUint(c, "employee_id")
	if !ok {
		return
	}

	items, err := h.list.Execute(c.Request.Context(), ucAppointment.ListAppointmentsInput{
		Actor:      middleware.ActorFrom(c),
		Date:       c.Query("date"),
		From:       c.Query("from"),
		To:         c.Query("to"),
		EmployeeID: employeeID,
		Query:      c.Query("query"),
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) OccupiedSlots(c *gin.Context) {
	serveOccupiedSlots(c, h.slots, h.log, true)
}

func (h *AppointmentHandler) Calendar(c *gin.Context) {
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil {
		httperr.BadRequest(c, "invalid_date", "Año o mes inválido")
		return
	}

	employeeID, ok := queryUint(c, "employee_id")
	if !ok {
		return
	}

	days, err := h.calendar.Execute(c.Request.Context(), ucAppointment.CalendarMonthInput{
		Actor:      middleware.ActorFrom(c),
		Year:       year,
		Month:      month,
		EmployeeID: employeeID,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}

	httpresp.List(c, days)
}

func (h *AppointmentHandler) Export(c *gin.Context) {
	employeeID, ok := queryUint(c, "employee_id")
	if !ok {
		return
	}

	from, to := c.Query("from"), c.Query("to")
	data, err := h.export.Execute(c.Request.Context(), ucAppointment.ExportAppointmentsInput{
		Actor:      middleware.ActorFrom(c),
		From:       from,
		To:         to,
		EmployeeID: employeeID,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(from, to)))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func exportFilename(from, to string) string {
	switch {
	case from != "" && to != "":
		return fmt.Sprintf("citas_%s_%s.xlsx", from, to)
	case from != "":
		return fmt.Sprintf("citas_desde_%s.xlsx", from)
	default:
		return "citas.xlsx"
	}
}

// serveOccupiedSlots é compartilhado com a rota pública; só a interna
// aceita excluding_id (edição).
func serveOccupiedSlots(c *gin.Context, uc *ucAppointment.OccupiedSlots, log *slog.Logger, allowExclusion bool) {
	employeeID, ok := queryUint(c, "employee_id")
	if !ok {
		return
	}

	serviceIDs, err := parseIDList(c.QueryArray("service_ids"))
	if err != nil {
		httperr.BadRequest(c, "invalid_service_ids", "Lista de servicios inválida")
		return
	}

	var excluding uint
	if allowExclusion {
		if excluding, ok = queryUint(c, "excluding_id"); !ok {
			return
		}
	}

	out, err := uc.Execute(c.Request.Context(), ucAppointment.OccupiedSlotsInput{
		EmployeeID:  employeeID,
		Date:        c.Query("date"),
		ServiceIDs:  serviceIDs,
		ExcludingID: excluding,
	})
	if err != nil {
		fail(c, log, err)
		return
	}

	httpresp.OK(c, out)
}
