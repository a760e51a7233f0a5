package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

// EnsureAdmin cria o administrador inicial quando não existe nenhum.
func EnsureAdmin(ctx context.Context, repo shop.Repository, email, password string, log *slog.Logger) error {
	n, err := repo.CountUsersByRole(ctx, string(shop.RoleAdmin))
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:         "Administrador",
		Email:        email,
		PasswordHash: hashed,
		Role:         string(shop.RoleAdmin),
		Active:       true,
	}
	if err := repo.CreateUser(ctx, admin); err != nil {
		return err
	}

	log.Info("admin user created", "email", email)
	return nil
}

type demoUser struct {
	name, email, password string
	role                  shop.Role
	employeeID, clientID  uint
}

var demoUsers = []demoUser{
	{name: "Pedro Martínez", email: "pedro@barberia.com", password: "barbero123", role: shop.RoleBarber, employeeID: 1},
	{name: "Carlos Ruiz", email: "carlos@barberia.com", password: "barbero123", role: shop.RoleBarber, employeeID: 2},
	{name: "Juan Cliente", email: "juan@cliente.com", password: "cliente123", role: shop.RoleClient, clientID: 3},
	{name: "María Cliente", email: "maria@cliente.com", password: "cliente123", role: shop.RoleClient, clientID: 4},
}

// SeedDemoUsers cria as contas de demonstração do store em memória.
// Contas já existentes são mantidas.
func SeedDemoUsers(ctx context.Context, repo shop.Repository, log *slog.Logger) error {
	for _, d := range demoUsers {
		hashed, err := HashPassword(d.password)
		if err != nil {
			return err
		}

		u := &models.User{
			Name:         d.name,
			Email:        d.email,
			PasswordHash: hashed,
			Role:         string(d.role),
			Active:       true,
		}
		if d.employeeID != 0 {
			u.EmployeeID = models.UintPtr(d.employeeID)
		}
		if d.clientID != 0 {
			u.ClientID = models.UintPtr(d.clientID)
		}

		if err := repo.CreateUser(ctx, u); err != nil {
			if errors.Is(err, models.ErrDuplicate) {
				continue
			}
			return err
		}
	}

	log.Info("demo users seeded", "count", len(demoUsers))
	return nil
}
