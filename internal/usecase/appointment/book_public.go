package appointment

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/barber-dashboard/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
	"github.com/BruksfildServices01/barber-dashboard/internal/validators"
)

type BookPublicInput struct {
	Name  string
	Email string
	Phone string

	// zero = qualquer barbeiro disponível
	EmployeeID uint
	ServiceIDs []uint

	Date  string
	Time  string
	Notes string
}

// BookPublic é o formulário público: cria um cliente temporário e um
// agendamento pendente.
type BookPublic struct {
	deps Deps
}

func NewBookPublic(deps Deps) *BookPublic {
	return &BookPublic{deps: deps.withDefaults()}
}

func (uc *BookPublic) Execute(
	ctx context.Context,
	in BookPublicInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Contato
	// --------------------------------------------------
	name := strings.TrimSpace(in.Name)
	email := validators.NormalizeEmail(in.Email)
	phone := strings.TrimSpace(in.Phone)

	if name == "" || email == "" || phone == "" {
		return nil, httperr.ErrBusiness("missing_contact")
	}
	if !validators.IsEmail(email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}
	if !validators.IsPhone(phone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	// --------------------------------------------------
	// 2️⃣ Serviços (obrigatórios e ativos)
	// --------------------------------------------------
	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness("missing_services")
	}

	checker, services, err := uc.deps.checker(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateServices(in.ServiceIDs, services, true); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Data / hora
	// --------------------------------------------------
	if err := validateSlot(in.Date, in.Time); err != nil {
		return nil, err
	}
	today := uc.deps.today()
	if in.Date < today {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	if err := uc.deps.ensureEmployee(ctx, in.EmployeeID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Agendamento + cliente temporário
	// --------------------------------------------------
	ap := &models.Appointment{
		ServiceIDs: in.ServiceIDs,
		Date:       in.Date,
		Time:       in.Time,
		Status:     string(domain.InitialStatus()),
		Notes:      strings.TrimSpace(in.Notes),
		TemporaryClient: &models.TemporaryClient{
			Name:         name,
			Email:        email,
			Phone:        phone,
			RegisteredOn: today,
			Status:       models.TemporaryClientPending,
		},
	}
	if in.EmployeeID != 0 {
		ap.EmployeeID = models.UintPtr(in.EmployeeID)
	}

	cand := domain.CandidateFor(ap)
	if err := uc.deps.Repo.SaveChecked(ctx, ap, uc.deps.guard(checker, cand)); err != nil {
		uc.deps.rejected(err, "public", nil, cand)
		return nil, err
	}

	uc.deps.written(ctx, "booked", nil, ap)

	return ap, nil
}
