package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDList(t *testing.T) {
	ids, err := parseIDList([]string{"1,2", " 3 ", ""})
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3}, ids)

	ids, err = parseIDList(nil)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = parseIDList([]string{"1,abc"})
	assert.Error(t, err)
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "citas_2025-11-01_2025-11-30.xlsx", exportFilename("2025-11-01", "2025-11-30"))
	assert.Equal(t, "citas_desde_2025-11-01.xlsx", exportFilename("2025-11-01", ""))
	assert.Equal(t, "citas.xlsx", exportFilename("", ""))
}
