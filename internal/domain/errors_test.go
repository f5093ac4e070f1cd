package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-equipos/internal/domain"
)

func TestValidationError_Is(t *testing.T) {
	err := fmt.Errorf("crear: %w", domain.NewValidationError("name", "es requerido"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, errors.Is(err, domain.ErrDuplicate))

	ve, ok := domain.AsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, "name", ve.Field)
	assert.Equal(t, "name: es requerido", ve.Error())
}

func TestDuplicateError_Is(t *testing.T) {
	err := domain.NewDuplicateError("inventory_number", "INV-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Contains(t, err.Error(), `"INV-1" ya existe`)
}

func TestAsValidation_OtroError(t *testing.T) {
	_, ok := domain.AsValidation(domain.ErrNotFound)
	assert.False(t, ok)
}
