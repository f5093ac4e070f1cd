package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-equipos/internal/domain"
	"github.com/jhoicas/inventario-equipos/internal/domain/access"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
)

func TestAllowed_Tabla(t *testing.T) {
	cases := []struct {
		op      access.Operation
		admin   bool
		manager bool
		user    bool
	}{
		{access.ViewEquipment, true, true, true},
		{access.ExportEquipment, true, true, true},
		{access.CreateEquipment, true, true, false},
		{access.UpdateEquipment, true, true, false},
		{access.DeleteEquipment, true, false, false},
		{access.ListUsers, true, false, false},
		{access.CreateUser, true, false, false},
		{access.UpdateUser, true, false, false},
		{access.DeleteUser, true, false, false},
		{access.Register, true, true, true},
	}
	for _, tc := range cases {
		t.Run(string(tc.op), func(t *testing.T) {
			assert.Equal(t, tc.admin, access.Allowed(entity.RoleAdmin, tc.op))
			assert.Equal(t, tc.manager, access.Allowed(entity.RoleManager, tc.op))
			assert.Equal(t, tc.user, access.Allowed(entity.RoleUser, tc.op))
		})
	}
}

func TestAllowed_RegistroSinSesion(t *testing.T) {
	assert.True(t, access.IsPublic(access.Register))
	assert.True(t, access.Allowed("", access.Register))
	assert.False(t, access.Allowed("", access.ViewEquipment))
}

func TestAllowed_OperacionDesconocida(t *testing.T) {
	assert.False(t, access.Allowed(entity.RoleAdmin, access.Operation("equipment.burn")))
}

func TestAuthorize(t *testing.T) {
	assert.NoError(t, access.Authorize(entity.RoleAdmin, access.DeleteEquipment))
	assert.ErrorIs(t, access.Authorize(entity.RoleUser, access.DeleteEquipment), domain.ErrForbidden)
}

func TestCheckUserDeletion(t *testing.T) {
	assert.ErrorIs(t, access.CheckUserDeletion("admin"), domain.ErrProtectedUser)
	assert.NoError(t, access.CheckUserDeletion("employee"))
	assert.NoError(t, access.CheckUserDeletion("Admin"))
}
