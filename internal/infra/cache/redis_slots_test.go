package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barber-dashboard/internal/domain/appointment"
)

func TestKeys(t *testing.T) {
	key := appointment.SlotKey{EmployeeID: 2, Date: "2025-11-10", Duration: 45, ExcludingID: 9}

	assert.Equal(t, "slots:2:2025-11-10", hashKey(defaultPrefix, key.EmployeeID, key.Date))
	assert.Equal(t, "slotsgen:2:2025-11-10", generationKey(defaultPrefix, key.EmployeeID, key.Date))
	assert.Equal(t, "slotsgen:epoch", epochKey(defaultPrefix))
	assert.Equal(t, "45:9", fieldKey(key))
}

func TestJoinGeneration(t *testing.T) {
	assert.Equal(t, "0.0", joinGeneration([]interface{}{nil, nil}))
	assert.Equal(t, "3.0", joinGeneration([]interface{}{"3", nil}))
	assert.Equal(t, "3.12", joinGeneration([]interface{}{"3", "12"}))
	assert.Equal(t, "0.0", joinGeneration(nil))
}

func TestEntryCarriesGeneration(t *testing.T) {
	raw := encodeEntry("1.4", []string{"10:00", "10:30"})
	assert.Equal(t, "1.4|10:00,10:30", raw)

	slots, ok := decodeEntry(raw, "1.4")
	assert.True(t, ok)
	assert.Equal(t, []string{"10:00", "10:30"}, slots)

	// o dia foi invalidado depois do cálculo
	_, ok = decodeEntry(raw, "1.5")
	assert.False(t, ok)

	slots, ok = decodeEntry(encodeEntry("0.0", nil), "0.0")
	assert.True(t, ok)
	assert.Equal(t, []string{}, slots)

	_, ok = decodeEntry("10:00,10:30", "0.0")
	assert.False(t, ok)
}
