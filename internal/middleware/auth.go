package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-dashboard/internal/auth"
	"github.com/BruksfildServices01/barber-dashboard/internal/config"
	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
)

const (
	ContextUserID     = "userID"
	ContextUserRole   = "userRole"
	ContextEmployeeID = "employeeID"
	ContextClientID   = "clientID"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Falta el encabezado Authorization")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Encabezado Authorization inválido")
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Sesión inválida o expirada")
			c.Abort()
			return
		}

		actor, err := claims.Actor()
		if err != nil {
			httperr.Unauthorized(c, "invalid_token_payload", "Sesión inválida o expirada")
			c.Abort()
			return
		}

		c.Set(ContextUserID, actor.UserID)
		c.Set(ContextUserRole, string(actor.Role))
		c.Set(ContextEmployeeID, actor.EmployeeID)
		c.Set(ContextClientID, actor.ClientID)

		c.Next()
	}
}

// ActorFrom reconstrói o ator gravado pelo AuthMiddleware.
func ActorFrom(c *gin.Context) shop.Actor {
	return shop.Actor{
		UserID:     c.GetUint(ContextUserID),
		Role:       shop.Role(c.GetString(ContextUserRole)),
		EmployeeID: c.GetUint(ContextEmployeeID),
		ClientID:   c.GetUint(ContextClientID),
	}
}

func RequireRole(roles ...shop.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := shop.Role(c.GetString(ContextUserRole))
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		httperr.WriteBusiness(c, httperr.ErrBusiness("forbidden"))
		c.Abort()
	}
}
