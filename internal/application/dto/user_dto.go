package dto

import (
	"time"

	"github.com/jhoicas/inventario-equipos/pkg/optional"
)

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en el use case).
// Role vacío equivale a "user".
type CreateUserRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
}

// UpdateUserRequest actualización parcial: solo se tocan los campos presentes.
type UpdateUserRequest struct {
	Username optional.Value[string]
	Password optional.Value[string]
	Role     optional.Value[string]
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Protected bool      `json:"protected"` // administrador principal, no se puede eliminar
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegisterRequest entrada para autorregistro (rol user).
type RegisterRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// LoginResponse salida con el token de sesión.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}
