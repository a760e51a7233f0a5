package httperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode devolve o código quando err é um BusinessError.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

// mensagens exibidas no dashboard
var messages = map[string]string{
	"invalid_date":          "La fecha no es válida",
	"invalid_time":          "El horario no es válido",
	"date_in_past":          "La fecha no puede ser anterior a hoy",
	"missing_services":      "Debe seleccionar al menos un servicio",
	"missing_contact":       "Nombre, email y teléfono son obligatorios",
	"service_not_found":     "Servicio no encontrado",
	"employee_not_found":    "Barbero no encontrado",
	"client_not_found":      "Cliente no encontrado",
	"employee_required":     "Debe seleccionar un barbero",
	"client_required":       "Debe seleccionar un cliente",
	"time_conflict":         "El barbero ya tiene una cita en ese horario",
	"invalid_status":        "Estado no válido",
	"appointment_not_found": "Cita no encontrada",
	"forbidden":             "No tiene permisos para esta acción",
	"email_taken":           "El email ya está registrado",
	"invalid_email":         "El email no es válido",
	"invalid_phone":         "El teléfono no es válido",
}

func messageFor(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}

// StatusFor traduz um código de negócio no status HTTP.
func StatusFor(code string) int {
	switch {
	case code == "time_conflict" || code == "email_taken":
		return http.StatusConflict
	case strings.HasSuffix(code, "_not_found"):
		return http.StatusNotFound
	case code == "forbidden":
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}

// WriteBusiness escreve a resposta de um erro vindo de use case.
// Erros que não são de negócio viram 500.
func WriteBusiness(c *gin.Context, err error) {
	code, ok := BusinessCode(err)
	if !ok {
		Internal(c, "internal_error", "Error interno")
		return
	}
	Write(c, StatusFor(code), code, messageFor(code))
}
