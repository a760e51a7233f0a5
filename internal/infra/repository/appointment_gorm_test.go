package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayKey(t *testing.T) {
	k, err := dayKey("2025-11-10")
	require.NoError(t, err)
	assert.Equal(t, int32(20251110), k)

	_, err = dayKey("10/11/2025")
	assert.Error(t, err)
}
