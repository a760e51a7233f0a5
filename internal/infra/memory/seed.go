package memory

import "github.com/BruksfildServices01/barber-dashboard/internal/models"

// NewSeeded devolve um Store com o catálogo e a agenda de demonstração.
func NewSeeded() *Store {
	s := New()
	now := s.now()

	services := []models.Service{
		{Name: "Corte de cabello", Description: "Corte clásico para hombre", Price: 15, DurationMin: 30},
		{Name: "Corte + Barba", Description: "Corte y perfilado de barba", Price: 25, DurationMin: 45},
		{Name: "Barba", Description: "Perfilado de barba", Price: 12, DurationMin: 20},
		{Name: "Tinte", Description: "Tinte de cabello", Price: 35, DurationMin: 60},
		{Name: "Afeitado completo", Description: "Afeitado al ras con toalla caliente", Price: 18, DurationMin: 30},
		{Name: "Tratamiento Capilar", Description: "Tratamiento hidratante para cabello", Price: 40, DurationMin: 45},
		{Name: "Diseño de Barba", Description: "Diseño y esculpido de barba personalizado", Price: 20, DurationMin: 35},
	}
	for _, svc := range services {
		s.seq.service++
		svc.ID = s.seq.service
		svc.Active = true
		svc.CreatedAt, svc.UpdatedAt = now, now
		s.services[svc.ID] = svc
	}

	employees := []models.Employee{
		{FirstName: "Pedro", LastName: "Martínez", Position: "Barbero Senior", Phone: "555-2001", Email: "pedro@barberia.com", HiredOn: "2023-01-15"},
		{FirstName: "Carlos", LastName: "Ruiz", Position: "Barbero", Phone: "555-2002", Email: "carlos@barberia.com", HiredOn: "2024-03-20"},
		{FirstName: "Miguel", LastName: "Torres", Position: "Barbero Junior", Phone: "555-2003", Email: "miguel@barberia.com", HiredOn: "2024-08-10"},
	}
	for _, e := range employees {
		s.seq.employee++
		e.ID = s.seq.employee
		e.Active = true
		e.CreatedAt, e.UpdatedAt = now, now
		s.employees[e.ID] = e
	}

	clients := []models.Client{
		{FirstName: "Roberto", LastName: "Sánchez", Email: "roberto@email.com", Phone: "555-3001", Address: "Calle 123", RegisteredOn: "2025-10-01"},
		{FirstName: "Laura", LastName: "Gómez", Email: "laura@email.com", Phone: "555-3002", Address: "Av. 456", RegisteredOn: "2025-10-15"},
		{FirstName: "Juan", LastName: "Cliente", Email: "juan@cliente.com", Phone: "555-0004", Address: "Calle Principal 789", RegisteredOn: "2025-09-01"},
		{FirstName: "María", LastName: "Cliente", Email: "maria@cliente.com", Phone: "555-0005", Address: "Avenida Central 456", RegisteredOn: "2025-09-15"},
	}
	for _, c := range clients {
		s.seq.client++
		c.ID = s.seq.client
		c.CreatedAt, c.UpdatedAt = now, now
		s.clients[c.ID] = c
	}

	s.seq.temporary++
	s.temporary[s.seq.temporary] = models.TemporaryClient{
		ID:           s.seq.temporary,
		Name:         "Miguel Temporal",
		Email:        "miguel.temp@email.com",
		Phone:        "555-4001",
		RegisteredOn: "2025-11-08",
		Status:       models.TemporaryClientPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// agenda antiga: apenas o id de serviço legado
	appointments := []models.Appointment{
		{ClientID: models.UintPtr(1), ServiceID: models.UintPtr(1), EmployeeID: models.UintPtr(1), Date: "2025-11-10", Time: "10:00", Status: "confirmed", Notes: "Cliente prefiere fade bajo"},
		{ClientID: models.UintPtr(2), ServiceID: models.UintPtr(2), EmployeeID: models.UintPtr(2), Date: "2025-11-10", Time: "11:00", Status: "pending"},
		{ClientID: models.UintPtr(1), ServiceID: models.UintPtr(5), EmployeeID: models.UintPtr(1), Date: "2025-11-11", Time: "14:00", Status: "confirmed", Notes: "Afeitado tradicional"},
	}
	for _, ap := range appointments {
		s.seq.appointment++
		ap.ID = s.seq.appointment
		ap.CreatedAt, ap.UpdatedAt = now, now
		s.appointments[ap.ID] = ap
	}

	return s
}
