package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/application/usecase"
	"github.com/jhoicas/inventario-equipos/internal/domain/access"
	"github.com/jhoicas/inventario-equipos/internal/domain/entity"
)

const userListPath = "/users/"

// UserHandler administración de cuentas (solo admin).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List GET /users/.
func (h *UserHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()
	users, err := h.uc.List(ctx)
	if err != nil {
		return err
	}
	byRole, err := h.uc.CountByRole(ctx)
	if err != nil {
		return err
	}
	return render(c, "users/list", fiber.Map{
		"Title":  "Usuarios",
		"Users":  users,
		"ByRole": byRole,
		"Roles":  entity.Roles,
	})
}

// Create POST /users/.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "formulario inválido")
	}
	if _, err := h.uc.Create(c.UserContext(), in); err != nil {
		return flashAndRedirect(c, err, "Error al crear el usuario", userListPath)
	}
	setFlash(c, FlashSuccess, "Usuario creado correctamente.")
	return c.Redirect(userListPath, fiber.StatusFound)
}

// Update POST /users/update. El ID viaja en el formulario.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, in, err := parseUpdateUser(c)
	var out *dto.UserResponse
	if err == nil {
		out, err = h.uc.Update(c.UserContext(), id, in)
	}
	if err != nil {
		return flashAndRedirect(c, err, "Error al actualizar el usuario", userListPath)
	}
	if out == nil {
		setFlash(c, FlashError, "Usuario no encontrado.")
	} else {
		setFlash(c, FlashSuccess, "Usuario actualizado correctamente.")
	}
	return c.Redirect(userListPath, fiber.StatusFound)
}

// Delete POST /users/delete/:id. El administrador principal no se elimina, lo pida quien lo pida.
// Los equipos asignados a la cuenta quedan sin asignar.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := parseID(c.Params("id"))
	if err != nil {
		return flashAndRedirect(c, err, "Error al eliminar el usuario", userListPath)
	}
	target, err := h.uc.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if target == nil {
		setFlash(c, FlashError, "Usuario no encontrado.")
		return c.Redirect(userListPath, fiber.StatusFound)
	}
	if err := access.CheckUserDeletion(target.Username); err != nil {
		setFlash(c, FlashError, "No se puede eliminar al administrador principal.")
		return c.Redirect(userListPath, fiber.StatusFound)
	}
	deleted, err := h.uc.Delete(ctx, id)
	if err != nil {
		return flashAndRedirect(c, err, "Error al eliminar el usuario", userListPath)
	}
	if deleted == nil {
		setFlash(c, FlashError, "Usuario no encontrado.")
	} else {
		setFlash(c, FlashSuccess, fmt.Sprintf("Usuario %s eliminado.", deleted.Username))
	}
	return c.Redirect(userListPath, fiber.StatusFound)
}
