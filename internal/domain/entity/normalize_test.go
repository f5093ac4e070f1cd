package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
)

func TestNormalizeText(t *testing.T) {
	composed := "Jos\u00e9"
	decomposed := "Jose\u0301"
	assert.NotEqual(t, composed, decomposed)
	assert.Equal(t, entity.NormalizeText(composed), entity.NormalizeText(decomposed))
	assert.Equal(t, "INV-1", entity.NormalizeText("  INV-1 \n"))
}

func TestIsValidRoleAndStatus(t *testing.T) {
	for _, r := range entity.Roles {
		assert.True(t, entity.IsValidRole(r))
	}
	assert.False(t, entity.IsValidRole("root"))

	for _, s := range entity.Statuses {
		assert.True(t, entity.IsValidStatus(s))
	}
	assert.False(t, entity.IsValidStatus("lost"))
}

func TestUser_IsProtected(t *testing.T) {
	assert.True(t, (&entity.User{Username: "admin"}).IsProtected())
	assert.False(t, (&entity.User{Username: "admin2"}).IsProtected())
	var nilUser *entity.User
	assert.False(t, nilUser.IsProtected())
}
