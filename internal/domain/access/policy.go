// Package access concentra la tabla de permisos por rol. Es una función pura:
// la capa HTTP la consulta antes de invocar los casos de uso, que no autorizan nada por sí mismos.
package access

import (
	"github.com/jhoicas/inventario-equipos/internal/domain"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
)

// Operation identifica una operación protegida.
type Operation string

const (
	ViewEquipment   Operation = "equipment.view"
	CreateEquipment Operation = "equipment.create"
	UpdateEquipment Operation = "equipment.update"
	DeleteEquipment Operation = "equipment.delete"
	ExportEquipment Operation = "equipment.export"

	ListUsers  Operation = "users.list"
	CreateUser Operation = "users.create"
	UpdateUser Operation = "users.update"
	DeleteUser Operation = "users.delete"

	// Register es el autorregistro con rol user; no requiere sesión.
	Register Operation = "auth.register"
)

// anyAuthenticated marca operaciones abiertas a cualquier rol con sesión.
var anyAuthenticated = []string{entity.RoleAdmin, entity.RoleManager, entity.RoleUser}

var table = map[Operation][]string{
	ViewEquipment:   anyAuthenticated,
	ExportEquipment: anyAuthenticated,
	CreateEquipment: {entity.RoleAdmin, entity.RoleManager},
	UpdateEquipment: {entity.RoleAdmin, entity.RoleManager},
	DeleteEquipment: {entity.RoleAdmin},
	ListUsers:       {entity.RoleAdmin},
	CreateUser:      {entity.RoleAdmin},
	UpdateUser:      {entity.RoleAdmin},
	DeleteUser:      {entity.RoleAdmin},
}

// IsPublic indica si la operación no requiere sesión.
func IsPublic(op Operation) bool {
	return op == Register
}

// Allowed indica si role puede ejecutar op. Operaciones desconocidas se niegan.
func Allowed(role string, op Operation) bool {
	if IsPublic(op) {
		return true
	}
	for _, r := range table[op] {
		if r == role {
			return true
		}
	}
	return false
}

// Authorize devuelve domain.ErrForbidden si role no puede ejecutar op.
func Authorize(role string, op Operation) error {
	if !Allowed(role, op) {
		return domain.ErrForbidden
	}
	return nil
}

// CheckUserDeletion rechaza eliminar al administrador principal, sin importar el rol de quien lo pida.
func CheckUserDeletion(username string) error {
	if username == entity.ProtectedUsername {
		return domain.ErrProtectedUser
	}
	return nil
}
