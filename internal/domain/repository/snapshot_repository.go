package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
)

// SnapshotRepository fotos de giacenza persistidas tras cada recálculo.
type SnapshotRepository interface {
	// Replace sustituye todas las fotos de la fecha de referencia.
	Replace(ctx context.Context, ref time.Time, snaps []*entity.StockSnapshot) error
	ListByDate(ctx context.Context, ref time.Time) ([]*entity.StockSnapshot, error)
}
