package memory

import (
	"context"

	"github.com/jhoicas/inventario-equipos/internal/application/usecase"
	"github.com/jhoicas/inventario-equipos/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las transacciones y, si fn falla, restaura el estado previo.
// Las escrituras fuera de la transacción esperan a que termine (ver Store.lockWrite).
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn con repositorios del mismo store; rollback = restaurar la foto tomada al inicio.
func (r *TxRunner) Run(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	equipmentRepo repository.EquipmentRepository,
) error) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()

	snap := r.s.snapshot()
	if err := fn(&UserRepo{s: r.s, inTx: true}, &EquipmentRepo{s: r.s, inTx: true}); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}
