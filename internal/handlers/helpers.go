package handlers

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
	"github.com/BruksfildServices01/barber-dashboard/internal/middleware"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido")
		return 0, false
	}
	return uint(id), true
}

// queryUint devolve 0 quando o parâmetro está ausente.
func queryUint(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, "Parámetro inválido: "+name)
		return 0, false
	}
	return uint(v), true
}

// parseIDList aceita "1,2,3" e também ?service_ids=1&service_ids=2.
func parseIDList(values []string) ([]uint, error) {
	var out []uint
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseUint(part, 10, 64)
			if err != nil {
				return nil, err
			}
			out = append(out, uint(id))
		}
	}
	return out, nil
}

// fail escreve o erro de use case; erros inesperados são logados.
func fail(c *gin.Context, log *slog.Logger, err error) {
	if _, ok := httperr.BusinessCode(err); !ok {
		log.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"request_id", c.GetString(middleware.ContextRequestID),
			"error", err,
		)
	}
	httperr.WriteBusiness(c, err)
}

// notFoundAs troca models.ErrNotFound pelo código de negócio da entidade.
func notFoundAs(err error, code string) error {
	if errors.Is(err, models.ErrNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}
