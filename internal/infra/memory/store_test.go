package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-dashboard/internal/audit"
	"github.com/BruksfildServices01/barber-dashboard/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

func TestSeededCatalog(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()

	services, err := s.ListServices(ctx, true)
	require.NoError(t, err)
	require.Len(t, services, 7)
	assert.Equal(t, "Corte + Barba", services[1].Name)
	assert.Equal(t, 45, services[1].DurationMin)

	employees, err := s.ListEmployees(ctx, true)
	require.NoError(t, err)
	require.Len(t, employees, 3)
	assert.Equal(t, "Pedro Martínez", employees[0].FullName())

	temps, err := s.ListTemporaryClients(ctx)
	require.NoError(t, err)
	require.Len(t, temps, 1)
	assert.Equal(t, models.TemporaryClientPending, temps[0].Status)

	day, err := s.ListForEmployeeOnDate(ctx, 1, "2025-11-10")
	require.NoError(t, err)
	require.Len(t, day, 1)
	assert.Equal(t, "10:00", day[0].Time)
}

func TestReadsReturnCopies(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()

	ap, err := s.GetAppointment(ctx, 1)
	require.NoError(t, err)
	*ap.EmployeeID = 3
	ap.Time = "18:00"

	again, err := s.GetAppointment(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), *again.EmployeeID)
	assert.Equal(t, "10:00", again.Time)
}

func TestSaveCheckedGuardRejects(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()
	blocked := errors.New("blocked")

	var seen []models.Appointment
	ap := &models.Appointment{
		EmployeeID:      models.UintPtr(1),
		Date:            "2025-11-10",
		Time:            "10:00",
		ServiceIDs:      []uint{1},
		TemporaryClient: &models.TemporaryClient{Name: "Ana", Email: "ana@correo.co"},
	}
	err := s.SaveChecked(ctx, ap, func(existing []models.Appointment) error {
		seen = existing
		return blocked
	})

	require.ErrorIs(t, err, blocked)
	require.Len(t, seen, 1)
	assert.Zero(t, ap.ID)

	temps, _ := s.ListTemporaryClients(ctx)
	assert.Len(t, temps, 1, "rejected booking must not leave a temporary client behind")
}

func TestSaveCheckedCreatesTemporaryClient(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()

	ap := &models.Appointment{
		EmployeeID:      models.UintPtr(2),
		Date:            "2099-01-05",
		Time:            "09:00",
		ServiceIDs:      []uint{3},
		Status:          "pending",
		TemporaryClient: &models.TemporaryClient{Name: "Ana", Email: "ana@correo.co", Phone: "3005551234"},
	}
	require.NoError(t, s.SaveChecked(ctx, ap, func([]models.Appointment) error { return nil }))

	require.NotZero(t, ap.ID)
	require.NotNil(t, ap.TemporaryClientID)

	got, err := s.GetAppointment(ctx, ap.ID)
	require.NoError(t, err)
	require.NotNil(t, got.TemporaryClient)
	assert.Equal(t, "Ana", got.TemporaryClient.Name)
	assert.Equal(t, models.TemporaryClientPending, got.TemporaryClient.Status)
}

func TestSaveCheckedSerializesWriters(t *testing.T) {
	s := New()
	ctx := context.Background()
	checker := appointment.NewChecker(appointment.Durations{1: 30}, appointment.Policy{}, nil)

	var wg sync.WaitGroup
	results := make(chan error, 10)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ap := &models.Appointment{EmployeeID: models.UintPtr(1), Date: "2099-01-05", Time: "10:00", ServiceIDs: []uint{1}}
			results <- s.SaveChecked(ctx, ap, func(existing []models.Appointment) error {
				if checker.HasConflict(existing, appointment.CandidateFor(ap)) {
					return errors.New("conflict")
				}
				return nil
			})
		}()
	}
	wg.Wait()
	close(results)

	ok := 0
	for err := range results {
		if err == nil {
			ok++
		}
	}
	assert.Equal(t, 1, ok)
}

func TestUpsertAndRemove(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()

	assert.ErrorIs(t, s.Upsert(ctx, &models.Appointment{ID: 99}), models.ErrNotFound)

	ap, err := s.GetAppointment(ctx, 2)
	require.NoError(t, err)
	ap.Status = "cancelled"
	require.NoError(t, s.Upsert(ctx, ap))

	got, _ := s.GetAppointment(ctx, 2)
	assert.Equal(t, "cancelled", got.Status)

	require.NoError(t, s.Remove(ctx, 2))
	_, err = s.GetAppointment(ctx, 2)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, s.Remove(ctx, 2), models.ErrNotFound)
}

func TestListAppointmentsFilters(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()

	all, err := s.ListAppointments(ctx, appointment.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byEmployee, _ := s.ListAppointments(ctx, appointment.ListFilter{EmployeeID: 1})
	assert.Len(t, byEmployee, 2)

	byDay, _ := s.ListAppointments(ctx, appointment.ListFilter{From: "2025-11-11", To: "2025-11-11"})
	require.Len(t, byDay, 1)
	assert.Equal(t, uint(3), byDay[0].ID)

	byClient, _ := s.ListAppointments(ctx, appointment.ListFilter{ClientID: 2})
	assert.Len(t, byClient, 1)
}

func TestRegisterClientMarksTemporaryClient(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()

	client := &models.Client{FirstName: "Miguel", Email: "miguel.temp@email.com"}
	user := &models.User{Name: "Miguel", Email: "miguel.temp@email.com", Role: "client", PasswordHash: "x"}
	require.NoError(t, s.RegisterClient(ctx, client, user))

	assert.Equal(t, uint(5), client.ID)
	require.NotNil(t, user.ClientID)
	assert.Equal(t, client.ID, *user.ClientID)

	temps, _ := s.ListTemporaryClients(ctx)
	assert.Equal(t, models.TemporaryClientRegistered, temps[0].Status)

	err := s.RegisterClient(ctx, &models.Client{Email: "MIGUEL.temp@email.com"}, &models.User{Email: "MIGUEL.temp@email.com"})
	assert.ErrorIs(t, err, models.ErrDuplicate)
}

func TestAuditListPaginates(t *testing.T) {
	s := New()
	ctx := context.Background()

	for _, action := range []string{"appointment_created", "appointment_cancelled", "appointment_created"} {
		require.NoError(t, s.Append(ctx, &models.AuditLog{Action: action, Entity: "appointment"}))
	}

	logs, total, err := s.List(ctx, audit.Filter{Action: "appointment_created"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, logs, 2)
	assert.Equal(t, uint(3), logs[0].ID)

	logs, total, err = s.List(ctx, audit.Filter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, logs, 1)
	assert.Equal(t, uint(2), logs[0].ID)
}
