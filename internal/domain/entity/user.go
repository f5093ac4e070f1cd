package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// ProtectedUsername es el administrador principal: no puede eliminarse.
const ProtectedUsername = "admin"

// MaxUsernameLen largo máximo (en caracteres) de Username, igual que la columna.
const MaxUsernameLen = 80

// Roles lista ordenada de roles (para selects y conteos).
var Roles = []string{RoleAdmin, RoleManager, RoleUser}

// User representa una cuenta del sistema.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt, nunca texto plano
	Role         string // admin, manager, user
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsValidRole indica si role es uno de los roles conocidos.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

// IsProtected indica si la cuenta es el administrador principal.
func (u *User) IsProtected() bool {
	return u != nil && u.Username == ProtectedUsername
}
