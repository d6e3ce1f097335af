package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Reciclaje-api/internal/application/billing"
	"github.com/jhoicas/Reciclaje-api/internal/application/stock"
	"github.com/jhoicas/Reciclaje-api/internal/domain/repository"
)

var _ billing.TxRunner = (*TxRunner)(nil)
var _ stock.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunInvoice ejecuta fn con el repositorio de facturas atado a la tx (cabecera + líneas atómicas).
func (r *TxRunner) RunInvoice(ctx context.Context, fn func(invoices repository.InvoiceRepository) error) error {
	return r.run(ctx, func(q Querier) error {
		return fn(NewInvoiceRepository(q))
	})
}

// RunSnapshots ejecuta fn con el repositorio de fotos de giacenza atado a la tx.
func (r *TxRunner) RunSnapshots(ctx context.Context, fn func(snapshots repository.SnapshotRepository) error) error {
	return r.run(ctx, func(q Querier) error {
		return fn(NewSnapshotRepository(q))
	})
}

func (r *TxRunner) run(ctx context.Context, fn func(q Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
