package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-equipos/internal/application/usecase"
)

var seedPassword string

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Crea el usuario admin si no existe",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		store, err := openStorage(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer store.close()

		pw := seedPassword
		if pw == "" {
			pw = cfg.Seed.AdminPassword
		}
		created, err := usecase.NewUserUseCase(store.users, store.tx).EnsureAdmin(ctx, pw)
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintln(cmd.OutOrStdout(), "usuario admin creado")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "el usuario admin ya existe")
		}
		return nil
	},
}

func init() {
	seedAdminCmd.Flags().StringVar(&seedPassword, "password", "", "contraseña del admin (por defecto ADMIN_PASSWORD)")
	rootCmd.AddCommand(seedAdminCmd)
}
