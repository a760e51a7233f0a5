package handlers

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/httpresp"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

type ClientHandler struct {
	repo shop.Repository
	log  *slog.Logger
}

func NewClientHandler(repo shop.Repository, log *slog.Logger) *ClientHandler {
	return &ClientHandler{repo: repo, log: log}
}

// List aceita ?query= sobre nome, email e telefone.
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.repo.ListClients(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	if query == "" {
		httpresp.List(c, clients)
		return
	}

	out := make([]models.Client, 0, len(clients))
	for _, cl := range clients {
		if matchesAny(query, cl.FullName(), cl.Email, cl.Phone) {
			out = append(out, cl)
		}
	}
	httpresp.List(c, out)
}

func (h *ClientHandler) ListTemporary(c *gin.Context) {
	temps, err := h.repo.ListTemporaryClients(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}

	status := strings.TrimSpace(c.Query("status"))
	if status == "" {
		httpresp.List(c, temps)
		return
	}

	out := make([]models.TemporaryClient, 0, len(temps))
	for _, t := range temps {
		if t.Status == status {
			out = append(out, t)
		}
	}
	httpresp.List(c, out)
}

func matchesAny(query string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
