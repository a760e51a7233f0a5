package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

const day = "2025-11-10"

var catalog = Durations{
	1: 30, // corte
	2: 45, // corte + barba
	3: 20, // barba
	4: 60, // tinte
}

func ap(id, employee uint, date, hm string, services ...uint) models.Appointment {
	a := models.Appointment{
		ID:         id,
		Date:       date,
		Time:       hm,
		ServiceIDs: services,
		Status:     string(StatusPending),
	}
	if employee != 0 {
		a.EmployeeID = models.UintPtr(employee)
	}
	return a
}

func newChecker() *Checker {
	return NewChecker(catalog, Policy{}, nil)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                     string
		aStart, aEnd, bStart, bEnd int
		want                     bool
	}{
		{"identical", 600, 630, 600, 630, true},
		{"back to back after", 630, 660, 600, 630, false},
		{"back to back before", 570, 600, 600, 630, false},
		{"straddles end", 615, 645, 600, 630, true},
		{"contains", 540, 720, 600, 630, true},
		{"inside", 605, 610, 600, 630, true},
		{"disjoint", 700, 730, 600, 630, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd), "symmetric")
		})
	}
}

func TestOverlapsMatchesIntervalDefinition(t *testing.T) {
	for s := 540; s <= 1140; s += 15 {
		for _, d := range []int{20, 30, 45, 75} {
			for s2 := 540; s2 <= 1140; s2 += 15 {
				for _, d2 := range []int{20, 30, 60} {
					want := s < s2+d2 && s2 < s+d
					require.Equal(t, want, Overlaps(s, s+d, s2, s2+d2), "s=%d d=%d s2=%d d2=%d", s, d, s2, d2)
				}
			}
		}
	}
}

func TestHasConflictScenarios(t *testing.T) {
	existing30 := []models.Appointment{ap(1, 5, day, "10:00", 1)}
	existing75 := []models.Appointment{ap(2, 5, day, "09:00", 2, 1)}

	tests := []struct {
		name     string
		existing []models.Appointment
		cand     Candidate
		want     bool
	}{
		{
			name:     "full overlap at same start",
			existing: existing30,
			cand:     Candidate{EmployeeID: 5, Date: day, Time: "10:00", ServiceIDs: []uint{1}},
			want:     true,
		},
		{
			name:     "back to back is free",
			existing: existing30,
			cand:     Candidate{EmployeeID: 5, Date: day, Time: "10:30", ServiceIDs: []uint{1}},
			want:     false,
		},
		{
			name:     "fifteen minute straddle",
			existing: existing30,
			cand:     Candidate{EmployeeID: 5, Date: day, Time: "10:15", ServiceIDs: []uint{1}},
			want:     true,
		},
		{
			name:     "summed services end at 10:15",
			existing: existing75,
			cand:     Candidate{EmployeeID: 5, Date: day, Time: "10:00", ServiceIDs: []uint{3}},
			want:     true,
		},
		{
			name:     "editing itself",
			existing: existing30,
			cand:     Candidate{EmployeeID: 5, Date: day, Time: "10:00", ServiceIDs: []uint{1}, ExcludingID: 1},
			want:     false,
		},
		{
			name:     "any available barber never conflicts",
			existing: existing30,
			cand:     Candidate{Date: day, Time: "10:00", ServiceIDs: []uint{1}},
			want:     false,
		},
		{
			name:     "other barber",
			existing: existing30,
			cand:     Candidate{EmployeeID: 6, Date: day, Time: "10:00", ServiceIDs: []uint{1}},
			want:     false,
		},
		{
			name:     "other date",
			existing: existing30,
			cand:     Candidate{EmployeeID: 5, Date: "2025-11-11", Time: "10:00", ServiceIDs: []uint{1}},
			want:     false,
		},
		{
			name:     "candidate longer than gap",
			existing: existing30,
			cand:     Candidate{EmployeeID: 5, Date: day, Time: "09:30", ServiceIDs: []uint{2}},
			want:     true,
		},
		{
			name:     "candidate ends exactly at existing start",
			existing: existing30,
			cand:     Candidate{EmployeeID: 5, Date: day, Time: "09:30", ServiceIDs: []uint{1}},
			want:     false,
		},
	}

	c := newChecker()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.HasConflict(tt.existing, tt.cand))
		})
	}
}

func TestUnassignedExistingNeverBlocks(t *testing.T) {
	existing := []models.Appointment{ap(1, 0, day, "10:00", 1)}
	c := newChecker()

	assert.False(t, c.HasConflict(existing, Candidate{EmployeeID: 5, Date: day, Time: "10:00"}))
}

func TestDuration(t *testing.T) {
	c := newChecker()
	legacy := uint(4)
	unknown := uint(99)

	tests := []struct {
		name string
		ap   models.Appointment
		want int
	}{
		{"summed list", ap(1, 5, day, "09:00", 1, 2), 75},
		{"legacy single id", models.Appointment{ServiceID: &legacy}, 60},
		{"list wins over legacy", models.Appointment{ServiceID: &legacy, ServiceIDs: []uint{3}}, 20},
		{"nothing resolvable", models.Appointment{}, DefaultDurationMinutes},
		{"unknown legacy id", models.Appointment{ServiceID: &unknown}, DefaultDurationMinutes},
		{"unknown id inside list", ap(1, 5, day, "09:00", 1, 99), 60},
		{"zero legacy id ignored", models.Appointment{ServiceID: models.UintPtr(0)}, DefaultDurationMinutes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Duration(tt.ap))
		})
	}
}

func TestZeroDurationServiceFallsBackToDefault(t *testing.T) {
	c := NewChecker(Durations{7: 0}, Policy{}, nil)
	assert.Equal(t, DefaultDurationMinutes, c.CandidateDuration([]uint{7}, nil))
}

func TestUnresolvedServiceOccupiesExactlyOneSlot(t *testing.T) {
	existing := []models.Appointment{ap(1, 5, day, "11:00", 99)}
	c := newChecker()

	occupied := c.OccupiedSlots(existing, Candidate{EmployeeID: 5, Date: day, ServiceIDs: []uint{1}})
	assert.Equal(t, []string{"11:00"}, occupied)
}

func TestOccupiedSlots(t *testing.T) {
	existing := []models.Appointment{
		ap(1, 1, day, "10:00", 1),
		ap(2, 1, day, "14:00", 4),
		ap(3, 2, day, "09:00", 4),
	}
	c := newChecker()

	t.Run("thirty minute candidate", func(t *testing.T) {
		got := c.OccupiedSlots(existing, Candidate{EmployeeID: 1, Date: day, ServiceIDs: []uint{1}})
		assert.Equal(t, []string{"10:00", "14:00", "14:30"}, got)
	})

	t.Run("longer candidate blocks earlier starts", func(t *testing.T) {
		got := c.OccupiedSlots(existing, Candidate{EmployeeID: 1, Date: day, ServiceIDs: []uint{2}})
		assert.Equal(t, []string{"09:30", "10:00", "14:00", "14:30"}, got)
	})

	t.Run("excluding the edited appointment", func(t *testing.T) {
		got := c.OccupiedSlots(existing, Candidate{EmployeeID: 1, Date: day, ServiceIDs: []uint{1}, ExcludingID: 2})
		assert.Equal(t, []string{"10:00"}, got)
	})

	t.Run("no employee", func(t *testing.T) {
		got := c.OccupiedSlots(existing, Candidate{Date: day, ServiceIDs: []uint{1}})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestOccupiedSlotsAgreeWithHasConflict(t *testing.T) {
	existing := []models.Appointment{
		ap(1, 1, day, "09:00", 2, 1),
		ap(2, 1, day, "12:00", 3),
		ap(3, 1, day, "16:30", 4),
	}
	c := newChecker()

	for _, services := range [][]uint{{1}, {2}, {3}, {4}, {1, 2}} {
		cand := Candidate{EmployeeID: 1, Date: day, ServiceIDs: services}
		occupied := map[string]bool{}
		for _, s := range c.OccupiedSlots(existing, cand) {
			occupied[s] = true
		}
		for _, slot := range SlotGrid {
			cand.Time = slot
			assert.Equal(t, c.HasConflict(existing, cand), occupied[slot], "services=%v slot=%s", services, slot)
		}
	}
}

func TestCancelledAppointmentsBlockByDefault(t *testing.T) {
	cancelled := ap(1, 5, day, "10:00", 1)
	cancelled.Status = string(StatusCancelled)
	existing := []models.Appointment{cancelled}
	cand := Candidate{EmployeeID: 5, Date: day, Time: "10:00", ServiceIDs: []uint{1}}

	assert.True(t, newChecker().HasConflict(existing, cand))

	freeing := NewChecker(catalog, Policy{FreeCancelledSlots: true}, nil)
	assert.False(t, freeing.HasConflict(existing, cand))

	completed := ap(2, 5, day, "10:00", 1)
	completed.Status = string(StatusCompleted)
	assert.True(t, freeing.HasConflict([]models.Appointment{completed}, cand))
}

func TestMalformedTimes(t *testing.T) {
	c := newChecker()
	existing := []models.Appointment{ap(1, 5, day, "ten", 1)}

	assert.False(t, c.HasConflict(existing, Candidate{EmployeeID: 5, Date: day, Time: "10:00"}))
	assert.False(t, c.HasConflict([]models.Appointment{ap(2, 5, day, "10:00", 1)}, Candidate{EmployeeID: 5, Date: day, Time: "xx:yy"}))
}

func TestConflictsReturnsOverlappingAppointments(t *testing.T) {
	existing := []models.Appointment{
		ap(1, 5, day, "10:00", 1),
		ap(2, 5, day, "10:30", 1),
		ap(3, 5, day, "11:30", 1),
	}
	got := newChecker().Conflicts(existing, Candidate{EmployeeID: 5, Date: day, Time: "10:00", ServiceIDs: []uint{4}})

	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, uint(2), got[1].ID)
}
