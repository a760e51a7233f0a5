package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Role       string `json:"role"`
	EmployeeID uint   `json:"employeeId,omitempty"`
	ClientID   uint   `json:"clientId,omitempty"`
	jwt.RegisteredClaims
}

// Actor converte as claims no ator usado pelos use cases.
func (c *Claims) Actor() (shop.Actor, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return shop.Actor{}, ErrInvalidToken
	}
	role := shop.Role(c.Role)
	if !role.Valid() {
		return shop.Actor{}, ErrInvalidToken
	}
	return shop.Actor{
		UserID:     uint(id),
		Role:       role,
		EmployeeID: c.EmployeeID,
		ClientID:   c.ClientID,
	}, nil
}

func IssueToken(secret string, ttl time.Duration, user *models.User, now time.Time) (string, error) {
	claims := Claims{
		Role:       user.Role,
		EmployeeID: models.UintValue(user.EmployeeID),
		ClientID:   models.UintValue(user.ClientID),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
