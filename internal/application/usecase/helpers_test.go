package usecase_test

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-equipos/internal/application/usecase"
	"github.com/jhoicas/inventario-equipos/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-equipos/pkg/password"
)

// fixture casos de uso cableados sobre un store en memoria.
type fixture struct {
	store     *memory.Store
	users     *usecase.UserUseCase
	equipment *usecase.EquipmentUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	password.Cost = bcrypt.MinCost

	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	equipmentRepo := memory.NewEquipmentRepository(store)
	return &fixture{
		store:     store,
		users:     usecase.NewUserUseCase(userRepo, memory.NewTxRunner(store)),
		equipment: usecase.NewEquipmentUseCase(equipmentRepo, userRepo),
	}
}

func ptr[T any](v T) *T { return &v }
