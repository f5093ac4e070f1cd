package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/domain"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
	"github.com/jhoicas/inventario-equipos/internal/domain/repository"
	"github.com/jhoicas/inventario-equipos/pkg/password"
)

// UserUseCase casos de uso CRUD para cuentas de usuario.
// No autoriza: la capa HTTP consulta access antes de llamar.
type UserUseCase struct {
	repo repository.UserRepository
	tx   TxRunner
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia y el runner de transacciones.
func NewUserUseCase(repo repository.UserRepository, tx TxRunner) *UserUseCase {
	return &UserUseCase{repo: repo, tx: tx}
}

// FindByUsername busca por username exacto. Devuelve (nil, nil) si no existe.
func (uc *UserUseCase) FindByUsername(ctx context.Context, username string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByUsername(ctx, entity.NormalizeText(username))
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// FindByID busca por ID. Devuelve (nil, nil) si no existe.
func (uc *UserUseCase) FindByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Create valida, hashea la contraseña y persiste. Username vacío, password vacío,
// rol desconocido o username existente -> *domain.ValidationError.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	username := entity.NormalizeText(in.Username)
	if username == "" {
		return nil, domain.NewValidationError("username", "es requerido")
	}
	if err := validateMaxLen("username", username, entity.MaxUsernameLen); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Password) == "" {
		return nil, domain.NewValidationError("password", "es requerido")
	}
	if err := validatePasswordLength(in.Password); err != nil {
		return nil, err
	}
	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = entity.RoleUser
	}
	if !entity.IsValidRole(role) {
		return nil, domain.NewValidationError("role", "rol desconocido")
	}

	existing, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewDuplicateError("username", username)
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// El UNIQUE de la DB cubre la carrera entre el chequeo y el insert.
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List devuelve todas las cuentas.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// Update aplica solo los campos presentes. Devuelve (nil, nil) si el ID no existe.
// Un campo presente pero vacío es un error de validación: username, password y role no se pueden borrar.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if v, ok := in.Username.Get(); ok {
		username := entity.NormalizeText(v)
		if username == "" {
			return nil, domain.NewValidationError("username", "es requerido")
		}
		if err := validateMaxLen("username", username, entity.MaxUsernameLen); err != nil {
			return nil, err
		}
		if username != user.Username {
			other, err := uc.repo.GetByUsername(ctx, username)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != user.ID {
				return nil, domain.NewDuplicateError("username", username)
			}
			user.Username = username
		}
	}
	if v, ok := in.Password.Get(); ok {
		if strings.TrimSpace(v) == "" {
			return nil, domain.NewValidationError("password", "no puede estar vacío")
		}
		if err := validatePasswordLength(v); err != nil {
			return nil, err
		}
		hash, err := password.Hash(v)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if v, ok := in.Role.Get(); ok {
		role := strings.TrimSpace(v)
		if !entity.IsValidRole(role) {
			return nil, domain.NewValidationError("role", "rol desconocido")
		}
		user.Role = role
	}

	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina la cuenta y libera sus equipos asignados en la misma transacción.
// Devuelve la cuenta eliminada o (nil, nil) si no existía.
// No protege al administrador principal: eso lo decide quien llama (access.CheckUserDeletion).
func (uc *UserUseCase) Delete(ctx context.Context, id int64) (*dto.UserResponse, error) {
	var deleted *entity.User
	err := uc.tx.Run(ctx, func(userRepo repository.UserRepository, equipmentRepo repository.EquipmentRepository) error {
		user, err := userRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return nil
		}
		if _, err := equipmentRepo.UnassignUser(ctx, id); err != nil {
			return err
		}
		if err := userRepo.Delete(ctx, id); err != nil {
			return err
		}
		deleted = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(deleted), nil
}

// CountByRole conteo de cuentas por rol (todos los roles conocidos, aunque tengan 0).
func (uc *UserUseCase) CountByRole(ctx context.Context) ([]dto.CountEntry, error) {
	counts, err := uc.repo.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	return countEntries(counts, entity.Roles), nil
}

func validatePasswordLength(pw string) error {
	if len(pw) > password.MaxBytes {
		return domain.NewValidationError("password", fmt.Sprintf("máximo %d bytes", password.MaxBytes))
	}
	return nil
}

// EnsureAdmin crea la cuenta "admin" con rol admin si no existe. Devuelve true si la creó.
func (uc *UserUseCase) EnsureAdmin(ctx context.Context, adminPassword string) (bool, error) {
	existing, err := uc.repo.GetByUsername(ctx, entity.ProtectedUsername)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	_, err = uc.Create(ctx, dto.CreateUserRequest{
		Username: entity.ProtectedUsername,
		Password: adminPassword,
		Role:     entity.RoleAdmin,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
