package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

func TestParseClock(t *testing.T) {
	m, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	m, err = ParseClock("18:30")
	require.NoError(t, err)
	assert.Equal(t, 1110, m)

	_, err = ParseClock("25:00")
	assert.Error(t, err)

	_, err = ParseClock("")
	assert.Error(t, err)
}

func TestFormatClockRoundTrip(t *testing.T) {
	for _, slot := range SlotGrid {
		m, err := ParseClock(slot)
		require.NoError(t, err)
		assert.Equal(t, slot, FormatClock(m))
	}
}

func TestSlotGridHasMiddayGap(t *testing.T) {
	assert.Len(t, SlotGrid, 18)
	assert.True(t, IsGridSlot("12:30"))
	assert.False(t, IsGridSlot("13:00"))
	assert.False(t, IsGridSlot("13:30"))
	assert.True(t, IsGridSlot("14:00"))
	assert.False(t, IsGridSlot("19:00"))
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2025-11-10"))
	assert.False(t, ValidDate("2025-13-10"))
	assert.False(t, ValidDate("10/11/2025"))
	assert.False(t, ValidDate(" 2025-11-10"))
	assert.False(t, ValidDate("2025-11-10 "))
	assert.False(t, ValidDate("2025-11-1"))
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, s)

	_, err = ParseStatus("confirmada")
	assert.Error(t, err)
}

func TestSetStatusAllowsAnyTransition(t *testing.T) {
	now := time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC)
	a := &models.Appointment{Status: string(StatusCompleted)}

	SetStatus(a, StatusCancelled, now)
	assert.Equal(t, string(StatusCancelled), a.Status)
	require.NotNil(t, a.CancelledAt)

	SetStatus(a, StatusPending, now)
	assert.Equal(t, string(StatusPending), a.Status)

	SetStatus(a, StatusConfirmed, now)
	assert.Equal(t, string(StatusConfirmed), a.Status)
	require.NotNil(t, a.ConfirmedAt)

	SetStatus(a, StatusCompleted, now)
	assert.Equal(t, string(StatusCompleted), a.Status)
	require.NotNil(t, a.CompletedAt)
}

func TestEffectiveServiceIDs(t *testing.T) {
	legacy := uint(3)
	assert.Equal(t, []uint{1, 2}, EffectiveServiceIDs([]uint{1, 2}, &legacy))
	assert.Equal(t, []uint{3}, EffectiveServiceIDs(nil, &legacy))
	assert.Nil(t, EffectiveServiceIDs(nil, nil))
}
