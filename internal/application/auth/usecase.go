package auth

import (
	"context"
	"strings"

	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/application/usecase"
	"github.com/jhoicas/inventario-equipos/internal/domain"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
	"github.com/jhoicas/inventario-equipos/internal/domain/repository"
	"github.com/jhoicas/inventario-equipos/pkg/jwt"
	"github.com/jhoicas/inventario-equipos/pkg/password"
)

// SessionConfig configuración para firmar los tokens de sesión.
type SessionConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Principal usuario autenticado de la petición actual.
type Principal struct {
	UserID   int64
	Username string
	Role     string
}

// AuthUseCase casos de uso de autenticación: autorregistro, login y resolución de sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	users    *usecase.UserUseCase
	cfg      SessionConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, users *usecase.UserUseCase, cfg SessionConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, users: users, cfg: cfg}
}

// Register crea una cuenta con rol user. No requiere sesión.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	return uc.users.Create(ctx, dto.CreateUserRequest{
		Username: in.Username,
		Password: in.Password,
		Role:     entity.RoleUser,
	})
}

// Login verifica username/password y emite el token de sesión.
// Usuario inexistente o contraseña incorrecta -> domain.ErrUnauthorized (sin distinguir).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := entity.NormalizeText(in.Username)
	if username == "" || strings.TrimSpace(in.Password) == "" {
		return nil, domain.NewValidationError("username", "usuario y contraseña son requeridos")
	}
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	ok, err := password.Matches(user.PasswordHash, in.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.cfg.Secret, user.ID, user.Username, user.Role, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	session, err := jwt.Parse(uc.cfg.Secret, token)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: session.ExpireAt,
		User: dto.UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			Role:      user.Role,
			Protected: user.IsProtected(),
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		},
	}, nil
}

// Authenticate valida el token y recarga la cuenta: si fue eliminada la sesión deja de valer,
// y el rol vigente es el de la DB, no el del token.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*Principal, error) {
	session, err := jwt.Parse(uc.cfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return &Principal{UserID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// SessionTTLSeconds duración de la sesión en segundos (para la cookie).
func (uc *AuthUseCase) SessionTTLSeconds() int {
	return uc.cfg.ExpMinutes * 60
}
