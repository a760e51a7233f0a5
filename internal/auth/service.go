package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
	"github.com/BruksfildServices01/barber-dashboard/internal/validators"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	repo   shop.Repository
	secret string
	ttl    time.Duration
	now    func() time.Time
}

func NewService(repo shop.Repository, secret string, ttl time.Duration) *Service {
	return &Service{repo: repo, secret: secret, ttl: ttl, now: time.Now}
}

// Login devolve o usuário e um token novo.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.repo.GetUserByEmail(ctx, validators.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !user.Active || !CheckPassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := IssueToken(s.secret, s.ttl, user, s.now())
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	Password  string
}

// Register cria a conta de um cliente (auto cadastro).
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	email := validators.NormalizeEmail(in.Email)
	if !validators.IsEmail(email) {
		return nil, "", httperr.ErrBusiness("invalid_email")
	}

	hashed, err := HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	client := &models.Client{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		RegisteredOn: s.now().Format("2006-01-02"),
	}
	user := &models.User{
		Name:         client.FullName(),
		Email:        email,
		PasswordHash: hashed,
		Phone:        client.Phone,
		Role:         string(shop.RoleClient),
		Active:       true,
	}

	if err := s.repo.RegisterClient(ctx, client, user); err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			return nil, "", httperr.ErrBusiness("email_taken")
		}
		return nil, "", err
	}

	token, err := IssueToken(s.secret, s.ttl, user, s.now())
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
