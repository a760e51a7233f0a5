package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BruksfildServices01/barber-dashboard/internal/audit"
	"github.com/BruksfildServices01/barber-dashboard/internal/auth"
	"github.com/BruksfildServices01/barber-dashboard/internal/config"
	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/handlers"
	"github.com/BruksfildServices01/barber-dashboard/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-dashboard/internal/usecase/appointment"
)

// Dependencies reúne a infraestrutura já montada pelo main (ou pelos testes).
type Dependencies struct {
	Config      *config.Config
	Shop        shop.Repository
	Appointment ucAppointment.Deps
	AuditStore  audit.Store
	RateLimiter *middleware.RateLimiter
	Gatherer    prometheus.Gatherer
	Logger      *slog.Logger
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if deps.Appointment.Logger == nil {
		deps.Appointment.Logger = log
	}

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authService := auth.NewService(deps.Shop, deps.Config.JWTSecret, deps.Config.JWTTTL)

	authHandler := handlers.NewAuthHandler(authService, log)
	meHandler := handlers.NewMeHandler(deps.Shop, log)
	serviceHandler := handlers.NewServiceHandler(deps.Shop, deps.Appointment.Cache, deps.Appointment.Audit, log)
	employeeHandler := handlers.NewEmployeeHandler(deps.Shop, deps.Appointment.Audit, log)
	clientHandler := handlers.NewClientHandler(deps.Shop, log)
	appointmentHandler := handlers.NewAppointmentHandler(deps.Appointment, log)
	publicHandler := handlers.NewPublicHandler(deps.Shop, deps.Appointment, log)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.AuditStore, log)

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	admin := middleware.RequireRole(shop.RoleAdmin)
	staff := middleware.RequireRole(shop.RoleAdmin, shop.RoleBarber)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/occupied-slots", publicHandler.OccupiedSlots)

			if deps.RateLimiter != nil {
				publicAPI.POST("/appointments", deps.RateLimiter.Middleware(), publicHandler.CreateAppointment)
			} else {
				publicAPI.POST("/appointments", publicHandler.CreateAppointment)
			}
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(deps.Config))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", admin, serviceHandler.Create)
			secured.PATCH("/services/:id", admin, serviceHandler.Update)
			secured.DELETE("/services/:id", admin, serviceHandler.Delete)

			secured.GET("/employees", employeeHandler.List)
			secured.POST("/employees", admin, employeeHandler.Create)

			secured.GET("/clients", staff, clientHandler.List)
			secured.GET("/temporary-clients", staff, clientHandler.ListTemporary)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments/occupied-slots", appointmentHandler.OccupiedSlots)
			secured.GET("/appointments/calendar", appointmentHandler.Calendar)
			secured.GET("/appointments/export.xlsx", staff, appointmentHandler.Export)

			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PUT("/appointments/:id", staff, appointmentHandler.Update)
			secured.DELETE("/appointments/:id", staff, appointmentHandler.Delete)
			secured.PATCH("/appointments/:id/confirm", staff, appointmentHandler.Confirm)
			secured.PATCH("/appointments/:id/complete", staff, appointmentHandler.Complete)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			secured.GET("/audit-logs", admin, auditLogsHandler.List)
		}
	}
}
