package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-equipos/docs"
	"github.com/jhoicas/inventario-equipos/internal/application/auth"
	"github.com/jhoicas/inventario-equipos/internal/application/usecase"
	infrapdf "github.com/jhoicas/inventario-equipos/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-equipos/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/inventario-equipos/internal/interfaces/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Arranca el servidor HTTP",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := cmd.Context()
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer store.close()

	userUC := usecase.NewUserUseCase(store.users, store.tx)
	equipmentUC := usecase.NewEquipmentUseCase(store.equipment, store.users)
	reportUC := usecase.NewReportUseCase(equipmentUC, map[string]usecase.ReportRenderer{
		"pdf": infrapdf.NewMarotoReportRenderer(),
		"xml": xmlexport.NewEtreeRenderer(),
	})
	authUC := auth.NewAuthUseCase(store.users, userUC, auth.SessionConfig{
		Secret:     cfg.Session.Secret,
		ExpMinutes: cfg.Session.TTLMinutes,
		Issuer:     cfg.Session.Issuer,
	})

	created, err := userUC.EnsureAdmin(ctx, cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}
	if created {
		log.Info().Msg("usuario admin creado con la contraseña de ADMIN_PASSWORD")
	}

	// Swagger UI en local: http://localhost:<port>/docs
	var swaggerHandler fiber.Handler
	if cfg.App.SwaggerEnabled {
		swaggerHandler = swagger.New(swagger.Config{
			BasePath:    "/",
			FileContent: docs.SwaggerJSON,
			Path:        "docs",
			Title:       "Inventario de equipos API",
		})
	}

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:    cfg.App.Name,
		Logger:  log,
		Swagger: swaggerHandler,
	}, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		EquipmentUC: equipmentUC,
		ReportUC:    reportUC,
		Cookie: httpRouter.SessionCookie{
			Name:   cfg.Session.CookieName,
			Secure: cfg.IsProduction(),
		},
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- app.Listen(cfg.HTTP.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)
	if err := waitForShutdown(quit, serverErr); err != nil {
		log.Error().Err(err).Msg("servidor HTTP finalizado")
		return fmt.Errorf("servidor HTTP: %w", err)
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
	return nil
}

// waitForShutdown bloquea hasta una señal (nil) o hasta que el servidor termine por su cuenta.
// Listen solo retorna sin error tras Shutdown, así que un nil en serverErr también se reporta.
func waitForShutdown(quit <-chan os.Signal, serverErr <-chan error) error {
	select {
	case <-quit:
		return nil
	case err := <-serverErr:
		if err == nil {
			return errors.New("el servidor se detuvo sin señal de apagado")
		}
		return err
	}
}
