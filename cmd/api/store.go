package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-equipos/internal/application/usecase"
	"github.com/jhoicas/inventario-equipos/internal/domain/repository"
	"github.com/jhoicas/inventario-equipos/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-equipos/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-equipos/pkg/config"
	"github.com/jhoicas/inventario-equipos/pkg/logger"
)

// storage repositorios y runner de transacciones del driver configurado.
type storage struct {
	users     repository.UserRepository
	equipment repository.EquipmentRepository
	tx        usecase.TxRunner
	close     func()
}

// openStorage abre PostgreSQL (aplicando migraciones si DB_AUTO_MIGRATE) o el store en memoria.
func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	if cfg.DB.Driver == config.DriverMemory {
		log.Warn().Msg("DB_DRIVER=memory: los datos se pierden al reiniciar")
		s := memory.NewStore()
		return &storage{
			users:     memory.NewUserRepository(s),
			equipment: memory.NewEquipmentRepository(s),
			tx:        memory.NewTxRunner(s),
			close:     func() {},
		}, nil
	}

	if cfg.DB.AutoMigrate {
		if err := migrateUp(cfg, log); err != nil {
			return nil, err
		}
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	return &storage{
		users:     postgres.NewUserRepository(pool),
		equipment: postgres.NewEquipmentRepository(pool),
		tx:        postgres.NewTxRunner(pool),
		close:     pool.Close,
	}, nil
}

func migrateUp(cfg *config.Config, log *logger.Logger) error {
	m, err := postgres.NewMigrator(cfg.DB.ConnectionString())
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn().Err(err).Msg("cerrar migrador")
		}
	}()
	if err := m.Up(); err != nil {
		return err
	}
	v, _, err := m.Version()
	if err != nil {
		return err
	}
	log.Info().Uint("version", v).Msg("migraciones aplicadas")
	return nil
}
