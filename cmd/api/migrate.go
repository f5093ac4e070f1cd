package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-equipos/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-equipos/pkg/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migraciones de la base de datos",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Aplica todas las migraciones pendientes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		if err := requirePostgres(cfg); err != nil {
			return err
		}
		return migrateUp(cfg, log)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revierte todas las migraciones (borra las tablas)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		if err := requirePostgres(cfg); err != nil {
			return err
		}
		m, err := postgres.NewMigrator(cfg.DB.ConnectionString())
		if err != nil {
			return err
		}
		defer m.Close()
		if err := m.Down(); err != nil {
			return err
		}
		log.Info().Msg("migraciones revertidas")
		return nil
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Muestra la versión de esquema aplicada",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := bootstrap()
		if err != nil {
			return err
		}
		if err := requirePostgres(cfg); err != nil {
			return err
		}
		m, err := postgres.NewMigrator(cfg.DB.ConnectionString())
		if err != nil {
			return err
		}
		defer m.Close()
		v, dirty, err := m.Version()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t\n", v, dirty)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
}

func requirePostgres(cfg *config.Config) error {
	if cfg.DB.Driver != config.DriverPostgres {
		return fmt.Errorf("migrate requiere DB_DRIVER=%s (actual: %s)", config.DriverPostgres, cfg.DB.Driver)
	}
	return nil
}
