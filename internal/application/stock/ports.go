// Package stock casos de uso de giacenze: consulta con caché, recálculo con fotos persistidas,
// serie histórica y libro de almacén.
package stock

import (
	"context"
	"time"

	"github.com/jhoicas/Reciclaje-api/internal/domain/repository"
	"github.com/jhoicas/Reciclaje-api/internal/domain/stock"
)

// BalanceCache caché de giacenze calculadas por fecha de referencia.
type BalanceCache interface {
	Get(ctx context.Context, ref time.Time) ([]stock.Balance, bool, error)
	Set(ctx context.Context, ref time.Time, balances []stock.Balance) error
	Invalidate(ctx context.Context) error
}

// TxRunner ejecuta la sustitución de fotos dentro de una transacción.
type TxRunner interface {
	RunSnapshots(ctx context.Context, fn func(repository.SnapshotRepository) error) error
}

// Metrics contadores del recálculo.
type Metrics interface {
	StockRefreshed(lowStock int)
}
