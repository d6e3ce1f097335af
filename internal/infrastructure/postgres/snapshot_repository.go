package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo fotos de giacenza sobre PostgreSQL.
type SnapshotRepo struct {
	q Querier
}

// NewSnapshotRepository construye el adaptador de fotos de giacenza.
func NewSnapshotRepository(q Querier) *SnapshotRepo {
	return &SnapshotRepo{q: q}
}

// Replace borra e inserta las fotos de la fecha; usar dentro de TxRunner.RunSnapshots.
func (r *SnapshotRepo) Replace(ctx context.Context, ref time.Time, snaps []*entity.StockSnapshot) error {
	ref = dateOnly(ref)
	if _, err := r.q.Exec(ctx, `DELETE FROM stock_snapshots WHERE reference_date = $1`, ref); err != nil {
		return fmt.Errorf("delete snapshots: %w", err)
	}
	for _, s := range snaps {
		_, err := r.q.Exec(ctx, `
			INSERT INTO stock_snapshots (id, reference_date, material_id, quantity_kg, unit_value, total_value, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			s.ID, ref, s.MaterialID, s.QuantityKg, s.UnitValue, s.TotalValue, s.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert snapshot: %w", err)
		}
	}
	return nil
}

func (r *SnapshotRepo) ListByDate(ctx context.Context, ref time.Time) ([]*entity.StockSnapshot, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, reference_date, material_id, quantity_kg, unit_value, total_value, updated_at
		FROM stock_snapshots WHERE reference_date = $1`, dateOnly(ref))
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()
	list := []*entity.StockSnapshot{}
	for rows.Next() {
		var s entity.StockSnapshot
		if err := rows.Scan(&s.ID, &s.ReferenceDate, &s.MaterialID, &s.QuantityKg, &s.UnitValue, &s.TotalValue, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
