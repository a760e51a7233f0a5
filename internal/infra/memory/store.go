package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BruksfildServices01/barber-dashboard/internal/audit"
	"github.com/BruksfildServices01/barber-dashboard/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

var (
	_ appointment.Repository = (*Store)(nil)
	_ shop.Repository        = (*Store)(nil)
	_ audit.Store            = (*Store)(nil)
)

// Store guarda tudo em mapas protegidos por um único mutex. Leituras e
// escritas trabalham com cópias, nunca com os valores internos.
type Store struct {
	mu sync.RWMutex

	services     map[uint]models.Service
	employees    map[uint]models.Employee
	clients      map[uint]models.Client
	temporary    map[uint]models.TemporaryClient
	users        map[uint]models.User
	appointments map[uint]models.Appointment
	auditLogs    []models.AuditLog

	seq struct {
		service, employee, client, temporary, user, appointment, audit uint
	}

	now func() time.Time
}

func New() *Store {
	return &Store{
		services:     map[uint]models.Service{},
		employees:    map[uint]models.Employee{},
		clients:      map[uint]models.Client{},
		temporary:    map[uint]models.TemporaryClient{},
		users:        map[uint]models.User{},
		appointments: map[uint]models.Appointment{},
		now:          time.Now,
	}
}

// ======================================================
// Catalog (services)
// ======================================================

func (s *Store) ListServices(ctx context.Context, onlyActive bool) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Service, 0, len(s.services))
	for _, svc := range s.services {
		if onlyActive && !svc.Active {
			continue
		}
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetService(ctx context.Context, id uint) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, ok := s.services[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &svc, nil
}

func (s *Store) CreateService(ctx context.Context, svc *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq.service++
	svc.ID = s.seq.service
	svc.CreatedAt = s.now()
	svc.UpdatedAt = svc.CreatedAt
	s.services[svc.ID] = *svc
	return nil
}

func (s *Store) UpdateService(ctx context.Context, svc *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.services[svc.ID]
	if !ok {
		return models.ErrNotFound
	}
	svc.CreatedAt = cur.CreatedAt
	svc.UpdatedAt = s.now()
	s.services[svc.ID] = *svc
	return nil
}

func (s *Store) DeleteService(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.services[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.services, id)
	return nil
}

// ======================================================
// Employees
// ======================================================

func (s *Store) ListEmployees(ctx context.Context, onlyActive bool) ([]models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		if onlyActive && !e.Active {
			continue
		}
		out = append(out, cloneEmployee(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetEmployee(ctx context.Context, id uint) (*models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.employees[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	e = cloneEmployee(e)
	return &e, nil
}

func (s *Store) CreateEmployee(ctx context.Context, e *models.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq.employee++
	e.ID = s.seq.employee
	e.CreatedAt = s.now()
	e.UpdatedAt = e.CreatedAt
	s.employees[e.ID] = cloneEmployee(*e)
	return nil
}

// ======================================================
// Clients
// ======================================================

func (s *Store) ListClients(ctx context.Context) ([]models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Client, 0, len(s.clients))
	for _, c := range s.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clients[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &c, nil
}

func (s *Store) ListTemporaryClients(ctx context.Context) ([]models.TemporaryClient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.TemporaryClient, 0, len(s.temporary))
	for _, t := range s.temporary {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ======================================================
// Users
// ======================================================

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			u = cloneUser(u)
			return &u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *Store) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	u = cloneUser(u)
	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createUserLocked(u)
}

func (s *Store) createUserLocked(u *models.User) error {
	for _, other := range s.users {
		if strings.EqualFold(other.Email, u.Email) {
			return models.ErrDuplicate
		}
	}

	s.seq.user++
	u.ID = s.seq.user
	u.CreatedAt = s.now()
	u.UpdatedAt = u.CreatedAt
	s.users[u.ID] = cloneUser(*u)
	return nil
}

func (s *Store) CountUsersByRole(ctx context.Context, role string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, u := range s.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (s *Store) RegisterClient(ctx context.Context, client *models.Client, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, other := range s.users {
		if strings.EqualFold(other.Email, user.Email) {
			return models.ErrDuplicate
		}
	}

	s.seq.client++
	client.ID = s.seq.client
	client.CreatedAt = s.now()
	client.UpdatedAt = client.CreatedAt
	s.clients[client.ID] = *client

	user.ClientID = models.UintPtr(client.ID)
	if err := s.createUserLocked(user); err != nil {
		return err
	}

	for id, t := range s.temporary {
		if t.Status == models.TemporaryClientPending && strings.EqualFold(t.Email, client.Email) {
			t.Status = models.TemporaryClientRegistered
			t.UpdatedAt = s.now()
			s.temporary[id] = t
		}
	}
	return nil
}

// ======================================================
// Appointments
// ======================================================

func (s *Store) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ap, ok := s.appointments[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	out := s.hydrate(ap)
	return &out, nil
}

func (s *Store) ListForEmployeeOnDate(ctx context.Context, employeeID uint, date string) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.forEmployeeOnDate(employeeID, date), nil
}

func (s *Store) forEmployeeOnDate(employeeID uint, date string) []models.Appointment {
	out := []models.Appointment{}
	if employeeID == 0 {
		return out
	}
	for _, ap := range s.appointments {
		if models.UintValue(ap.EmployeeID) == employeeID && ap.Date == date {
			out = append(out, cloneAppointment(ap))
		}
	}
	sortAppointments(out)
	return out
}

func (s *Store) ListAppointments(ctx context.Context, f appointment.ListFilter) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Appointment{}
	for _, ap := range s.appointments {
		if f.From != "" && ap.Date < f.From {
			continue
		}
		if f.To != "" && ap.Date > f.To {
			continue
		}
		if f.EmployeeID != 0 && models.UintValue(ap.EmployeeID) != f.EmployeeID {
			continue
		}
		if f.ClientID != 0 && models.UintValue(ap.ClientID) != f.ClientID {
			continue
		}
		out = append(out, s.hydrate(ap))
	}
	sortAppointments(out)
	return out, nil
}

func (s *Store) SaveChecked(ctx context.Context, ap *models.Appointment, guard appointment.Guard) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ap.ID != 0 {
		if _, ok := s.appointments[ap.ID]; !ok {
			return models.ErrNotFound
		}
	}

	if guard != nil {
		existing := s.forEmployeeOnDate(models.UintValue(ap.EmployeeID), ap.Date)
		if err := guard(existing); err != nil {
			return err
		}
	}

	if ap.TemporaryClient != nil && ap.TemporaryClient.ID == 0 {
		s.seq.temporary++
		t := ap.TemporaryClient
		t.ID = s.seq.temporary
		t.CreatedAt = s.now()
		t.UpdatedAt = t.CreatedAt
		if t.Status == "" {
			t.Status = models.TemporaryClientPending
		}
		s.temporary[t.ID] = *t
		ap.TemporaryClientID = models.UintPtr(t.ID)
	}

	s.putLocked(ap)
	return nil
}

func (s *Store) Upsert(ctx context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ap.ID != 0 {
		if _, ok := s.appointments[ap.ID]; !ok {
			return models.ErrNotFound
		}
	}
	s.putLocked(ap)
	return nil
}

func (s *Store) putLocked(ap *models.Appointment) {
	now := s.now()
	if ap.ID == 0 {
		s.seq.appointment++
		ap.ID = s.seq.appointment
		ap.CreatedAt = now
	} else {
		ap.CreatedAt = s.appointments[ap.ID].CreatedAt
	}
	ap.UpdatedAt = now

	stored := cloneAppointment(*ap)
	stored.TemporaryClient = nil
	s.appointments[ap.ID] = stored
}

func (s *Store) Remove(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.appointments[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.appointments, id)
	return nil
}

// hydrate anexa o cliente temporário, como o Preload do gorm.
func (s *Store) hydrate(ap models.Appointment) models.Appointment {
	out := cloneAppointment(ap)
	if id := models.UintValue(ap.TemporaryClientID); id != 0 {
		if t, ok := s.temporary[id]; ok {
			out.TemporaryClient = &t
		}
	}
	return out
}

// ======================================================
// Audit
// ======================================================

func (s *Store) Append(ctx context.Context, entry *models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq.audit++
	entry.ID = s.seq.audit
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}
	s.auditLogs = append(s.auditLogs, cloneAudit(*entry))
	return nil
}

func (s *Store) List(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []models.AuditLog{}
	for _, l := range s.auditLogs {
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		if f.Entity != "" && l.Entity != f.Entity {
			continue
		}
		if !f.From.IsZero() && l.CreatedAt.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && l.CreatedAt.After(f.To) {
			continue
		}
		matched = append(matched, cloneAudit(l))
	}

	// mais recentes primeiro
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if f.Offset >= len(matched) {
		return []models.AuditLog{}, total, nil
	}
	matched = matched[f.Offset:]
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched, total, nil
}

// ======================================================
// Copies
// ======================================================

func sortAppointments(aps []models.Appointment) {
	sort.Slice(aps, func(i, j int) bool {
		if aps[i].Date != aps[j].Date {
			return aps[i].Date < aps[j].Date
		}
		if aps[i].Time != aps[j].Time {
			return aps[i].Time < aps[j].Time
		}
		return aps[i].ID < aps[j].ID
	})
}

func copyUint(p *uint) *uint {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyTime(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneAppointment(ap models.Appointment) models.Appointment {
	ap.ClientID = copyUint(ap.ClientID)
	ap.TemporaryClientID = copyUint(ap.TemporaryClientID)
	ap.EmployeeID = copyUint(ap.EmployeeID)
	ap.ServiceID = copyUint(ap.ServiceID)
	ap.ServiceIDs = slices.Clone(ap.ServiceIDs)
	ap.ConfirmedAt = copyTime(ap.ConfirmedAt)
	ap.CompletedAt = copyTime(ap.CompletedAt)
	ap.CancelledAt = copyTime(ap.CancelledAt)
	if ap.TemporaryClient != nil {
		t := *ap.TemporaryClient
		ap.TemporaryClient = &t
	}
	return ap
}

func cloneEmployee(e models.Employee) models.Employee {
	e.UserID = copyUint(e.UserID)
	return e
}

func cloneUser(u models.User) models.User {
	u.EmployeeID = copyUint(u.EmployeeID)
	u.ClientID = copyUint(u.ClientID)
	return u
}

func cloneAudit(l models.AuditLog) models.AuditLog {
	l.UserID = copyUint(l.UserID)
	l.EntityID = copyUint(l.EntityID)
	return l
}
