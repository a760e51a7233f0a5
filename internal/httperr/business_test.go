package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestIsBusinessUnwraps(t *testing.T) {
	err := fmt.Errorf("create: %w", ErrBusiness("time_conflict"))

	assert.True(t, IsBusiness(err, "time_conflict"))
	assert.False(t, IsBusiness(err, "invalid_date"))
	assert.False(t, IsBusiness(errors.New("time_conflict"), "time_conflict"))
}

func TestStatusFor(t *testing.T) {
	tests := map[string]int{
		"time_conflict":         http.StatusConflict,
		"appointment_not_found": http.StatusNotFound,
		"employee_not_found":    http.StatusNotFound,
		"forbidden":             http.StatusForbidden,
		"invalid_time":          http.StatusBadRequest,
		"missing_services":      http.StatusBadRequest,
	}
	for code, want := range tests {
		assert.Equal(t, want, StatusFor(code), code)
	}
}

func TestWriteBusiness(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	WriteBusiness(c, ErrBusiness("time_conflict"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error_code":"time_conflict","message":"El barbero ya tiene una cita en ese horario"}`, w.Body.String())

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	WriteBusiness(c, errors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
