// @title                       Inventario de equipos API
// @version                     1.0
// @description                 API JSON de consulta del inventario de equipos de cómputo.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-equipos/pkg/config"
	"github.com/jhoicas/inventario-equipos/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "inventario",
	Short: "Inventario de equipos de cómputo",
	Long: `Aplicación web para registrar equipos de cómputo, asignarlos a usuarios
y seguir su estado. Sin subcomando arranca el servidor HTTP.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap carga la configuración y crea el logger común a todos los subcomandos.
func bootstrap() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	return cfg, log, nil
}
