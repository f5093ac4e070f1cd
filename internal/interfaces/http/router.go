package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/inventario-equipos/internal/application/auth"
	"github.com/jhoicas/inventario-equipos/internal/application/usecase"
	"github.com/jhoicas/inventario-equipos/internal/domain/access"
	"github.com/jhoicas/inventario-equipos/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	EquipmentUC *usecase.EquipmentUseCase
	ReportUC    *usecase.ReportUseCase
	Cookie      SessionCookie
	AppName     string
}

// AppConfig opciones del servidor Fiber.
type AppConfig struct {
	Name    string
	Logger  *logger.Logger
	Swagger fiber.Handler // opcional: UI de Swagger en /docs
}

// NewApp crea la aplicación Fiber con vistas, middlewares comunes y todas las rutas.
func NewApp(cfg AppConfig, deps RouterDeps) *fiber.App {
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		Views:        NewViews(),
		ErrorHandler: ErrorHandler(log),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(RequestLogger(log.Component("http")))
	if cfg.Swagger != nil {
		app.Use(cfg.Swagger)
	}
	if deps.AppName == "" {
		deps.AppName = cfg.Name
	}
	Router(app, deps)
	return app
}

// Router registra las rutas HTML y de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(FlashMiddleware())
	app.Use(SessionMiddleware(deps.AuthUC, deps.Cookie))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	home := NewHomeHandler(deps.EquipmentUC)
	app.Get("/", home.Index)
	app.Get("/home", RequireAuth(), home.Home)

	// Auth (público salvo logout)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie)
	authGroup := app.Group("/auth")
	authGroup.Get("/login", authHandler.LoginPage)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/logout", RequireAuth(), authHandler.Logout)
	authGroup.Get("/register", RequirePermission(access.Register, "/"), authHandler.RegisterPage)
	authGroup.Post("/register", RequirePermission(access.Register, "/"), authHandler.Register)

	// Equipos
	equipmentHandler := NewEquipmentHandler(deps.EquipmentUC, deps.UserUC, deps.ReportUC)
	equipment := app.Group("/equipment")
	equipment.Get("/", RequirePermission(access.ViewEquipment, "/"), equipmentHandler.List)
	equipment.Post("/", RequirePermission(access.CreateEquipment, equipmentListPath), equipmentHandler.Create)
	equipment.Post("/update", RequirePermission(access.UpdateEquipment, equipmentListPath), equipmentHandler.Update)
	equipment.Post("/delete/:id", RequirePermission(access.DeleteEquipment, equipmentListPath), equipmentHandler.Delete)
	equipment.Get("/export", RequirePermission(access.ExportEquipment, equipmentListPath), equipmentHandler.Export)

	// Usuarios (solo admin)
	userHandler := NewUserHandler(deps.UserUC)
	users := app.Group("/users")
	users.Get("/", RequirePermission(access.ListUsers, equipmentListPath), userHandler.List)
	users.Post("/", RequirePermission(access.CreateUser, equipmentListPath), userHandler.Create)
	users.Post("/update", RequirePermission(access.UpdateUser, equipmentListPath), userHandler.Update)
	users.Post("/delete/:id", RequirePermission(access.DeleteUser, equipmentListPath), userHandler.Delete)

	// API JSON (Bearer Token o cookie de sesión)
	api := app.Group("/api")
	api.Post("/auth/token", authHandler.Token)
	api.Get("/equipment", RequirePermission(access.ViewEquipment, ""), equipmentHandler.ListJSON)
	api.Get("/equipment/:id", RequirePermission(access.ViewEquipment, ""), equipmentHandler.GetJSON)
	api.Get("/stats", RequirePermission(access.ViewEquipment, ""), equipmentHandler.Stats)
}
