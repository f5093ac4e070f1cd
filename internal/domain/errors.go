package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")
	ErrProtectedUser = errors.New("el administrador principal no puede eliminarse")
)

// ValidationError describe un campo requerido ausente, un valor inválido o una violación de unicidad.
// Coincide con ErrInvalidInput vía errors.Is, y además con ErrDuplicate si Duplicate es true.
type ValidationError struct {
	Field     string
	Reason    string
	Duplicate bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap permite errors.Is(err, ErrInvalidInput) y errors.Is(err, ErrDuplicate).
func (e *ValidationError) Unwrap() []error {
	if e.Duplicate {
		return []error{ErrInvalidInput, ErrDuplicate}
	}
	return []error{ErrInvalidInput}
}

// NewValidationError construye un error de validación de campo.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// NewDuplicateError construye el error de unicidad para field=value.
func NewDuplicateError(field, value string) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf("%q ya existe", value), Duplicate: true}
}

// AsValidation extrae el ValidationError de la cadena de errores, si existe.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
