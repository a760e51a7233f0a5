package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("Nowhere/City").String())
	assert.Equal(t, "Europe/Madrid", Location("Europe/Madrid").String())
}

func TestTodayUsesShopZone(t *testing.T) {
	// 03:00 UTC ainda é o dia anterior em Bogotá (UTC-5)
	instant := time.Date(2025, 11, 10, 3, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-11-09", Today(instant, "America/Bogota"))
	assert.Equal(t, "2025-11-10", Today(instant, "UTC"))
}
