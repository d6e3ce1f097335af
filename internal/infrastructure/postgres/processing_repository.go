package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Reciclaje-api/internal/domain"
	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/domain/repository"
)

var _ repository.ProcessingRepository = (*ProcessingRepo)(nil)

const processingColumns = `id, date, material_id, quantity_kg, origin_flow_id, operation, notes, created_at, updated_at`

// ProcessingRepo implementación de ProcessingRepository sobre PostgreSQL.
type ProcessingRepo struct {
	q Querier
}

// NewProcessingRepository construye el adaptador de lavorazioni.
func NewProcessingRepository(q Querier) *ProcessingRepo {
	return &ProcessingRepo{q: q}
}

func scanProcessing(row rowScanner) (*entity.ProcessingEvent, error) {
	var p entity.ProcessingEvent
	err := row.Scan(&p.ID, &p.Date, &p.MaterialID, &p.QuantityKg, &p.OriginFlowID, &p.Operation, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProcessingRepo) Create(ctx context.Context, p *entity.ProcessingEvent) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO processing_events (`+processingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, dateOnly(p.Date), p.MaterialID, p.QuantityKg, p.OriginFlowID, p.Operation, p.Notes, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: material o flujo inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert processing: %w", err)
	}
	return nil
}

func (r *ProcessingRepo) GetByID(ctx context.Context, id string) (*entity.ProcessingEvent, error) {
	p, err := scanProcessing(r.q.QueryRow(ctx, `SELECT `+processingColumns+` FROM processing_events WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get processing: %w", err)
	}
	return p, nil
}

func (r *ProcessingRepo) Update(ctx context.Context, p *entity.ProcessingEvent) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE processing_events SET date = $2, material_id = $3, quantity_kg = $4, origin_flow_id = $5,
			operation = $6, notes = $7, updated_at = $8
		WHERE id = $1`,
		p.ID, dateOnly(p.Date), p.MaterialID, p.QuantityKg, p.OriginFlowID, p.Operation, p.Notes, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: material o flujo inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("update processing: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProcessingRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM processing_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete processing: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProcessingRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.ProcessingEvent, int, error) {
	w := &where{}
	w.period("date", f.Period)
	if f.MaterialID != "" {
		w.add("material_id = $%d", f.MaterialID)
	}
	if f.FlowID != "" {
		w.add("origin_flow_id = $%d", f.FlowID)
	}
	if f.Operation != "" {
		w.add("operation = $%d", f.Operation)
	}
	total, err := count(ctx, r.q, "processing_events", w)
	if err != nil {
		return nil, 0, err
	}
	limit, args := w.paginate(f.Page)
	rows, err := r.q.Query(ctx, `SELECT `+processingColumns+` FROM processing_events`+w.String()+` ORDER BY date DESC, created_at DESC`+limit, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list processing: %w", err)
	}
	defer rows.Close()
	list := []*entity.ProcessingEvent{}
	for rows.Next() {
		p, err := scanProcessing(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan processing: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}
