package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
	"github.com/BruksfildServices01/barber-dashboard/internal/middleware"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

type MeHandler struct {
	repo shop.Repository
	log  *slog.Logger
}

func NewMeHandler(repo shop.Repository, log *slog.Logger) *MeHandler {
	return &MeHandler{repo: repo, log: log}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if actor.UserID == 0 {
		httperr.Unauthorized(c, "user_not_in_context", "Sesión inválida")
		return
	}

	user, err := h.repo.GetUserByID(c.Request.Context(), actor.UserID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			httperr.Unauthorized(c, "user_not_found", "Usuario no encontrado")
			return
		}
		fail(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userResponse(user)})
}
