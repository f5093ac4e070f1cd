package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-equipos/internal/application/auth"
	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/domain"
)

// AuthHandler maneja login, logout y autorregistro.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	cookie SessionCookie
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookie SessionCookie) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie}
}

// LoginPage GET /auth/login. Con sesión activa redirige al inventario.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if GetPrincipal(c) != nil {
		return c.Redirect("/equipment/", fiber.StatusFound)
	}
	return render(c, "auth/login", fiber.Map{"Title": "Iniciar sesión"})
}

// Login POST /auth/login (formulario).
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "formulario inválido")
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrInvalidInput) {
			flashNow(c, FlashError, "Usuario o contraseña incorrectos.")
			c.Status(fiber.StatusUnauthorized)
			return render(c, "auth/login", fiber.Map{"Title": "Iniciar sesión", "Username": in.Username})
		}
		return err
	}
	h.cookie.set(c, out.Token, h.uc.SessionTTLSeconds())
	setFlash(c, FlashSuccess, "Sesión iniciada correctamente.")
	return c.Redirect("/equipment/", fiber.StatusFound)
}

// Logout GET /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.cookie.clear(c)
	setFlash(c, FlashInfo, "Sesión cerrada.")
	return c.Redirect("/", fiber.StatusFound)
}

// RegisterPage GET /auth/register.
func (h *AuthHandler) RegisterPage(c *fiber.Ctx) error {
	return render(c, "auth/register", fiber.Map{"Title": "Registro"})
}

// Register POST /auth/register: crea una cuenta con rol user.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "formulario inválido")
	}
	if _, err := h.uc.Register(c.UserContext(), in); err != nil {
		if isUserError(err) {
			flashNow(c, FlashError, userMessage(err))
			c.Status(fiber.StatusBadRequest)
			return render(c, "auth/register", fiber.Map{"Title": "Registro", "Username": in.Username})
		}
		return err
	}
	setFlash(c, FlashSuccess, "Registro exitoso. Ya puede iniciar sesión.")
	return c.Redirect("/auth/login", fiber.StatusFound)
}

// Token godoc
// @Summary      Obtener token de API
// @Description  Valida usuario y contraseña y devuelve un Bearer Token para /api.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeAPIError(c, err)
	}
	return c.JSON(out)
}
