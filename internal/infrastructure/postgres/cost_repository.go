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

var _ repository.CostRepository = (*CostRepo)(nil)

const costColumns = `id, date, category, description, amount, material_id, supplier, document_number, notes, created_at, updated_at`

// CostRepo implementación de CostRepository sobre PostgreSQL.
type CostRepo struct {
	q Querier
}

// NewCostRepository construye el adaptador de costos.
func NewCostRepository(q Querier) *CostRepo {
	return &CostRepo{q: q}
}

func scanCost(row rowScanner) (*entity.Cost, error) {
	var c entity.Cost
	err := row.Scan(&c.ID, &c.Date, &c.Category, &c.Description, &c.Amount, &c.MaterialID,
		&c.Supplier, &c.DocumentNumber, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CostRepo) Create(ctx context.Context, c *entity.Cost) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO costs (`+costColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		c.ID, dateOnly(c.Date), c.Category, c.Description, c.Amount, c.MaterialID,
		c.Supplier, c.DocumentNumber, c.Notes, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: material inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert cost: %w", err)
	}
	return nil
}

func (r *CostRepo) GetByID(ctx context.Context, id string) (*entity.Cost, error) {
	c, err := scanCost(r.q.QueryRow(ctx, `SELECT `+costColumns+` FROM costs WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cost: %w", err)
	}
	return c, nil
}

func (r *CostRepo) Update(ctx context.Context, c *entity.Cost) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE costs SET date = $2, category = $3, description = $4, amount = $5, material_id = $6,
			supplier = $7, document_number = $8, notes = $9, updated_at = $10
		WHERE id = $1`,
		c.ID, dateOnly(c.Date), c.Category, c.Description, c.Amount, c.MaterialID,
		c.Supplier, c.DocumentNumber, c.Notes, c.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: material inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("update cost: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CostRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM costs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cost: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CostRepo) List(ctx context.Context, f repository.CostFilter) ([]*entity.Cost, int, error) {
	w := &where{}
	w.period("date", f.Period)
	if f.Category != "" {
		w.add("category = $%d", f.Category)
	}
	if f.MaterialID != "" {
		w.add("material_id = $%d", f.MaterialID)
	}
	total, err := count(ctx, r.q, "costs", w)
	if err != nil {
		return nil, 0, err
	}
	limit, args := w.paginate(f.Page)
	rows, err := r.q.Query(ctx, `SELECT `+costColumns+` FROM costs`+w.String()+` ORDER BY date DESC, created_at DESC`+limit, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list costs: %w", err)
	}
	defer rows.Close()
	list := []*entity.Cost{}
	for rows.Next() {
		c, err := scanCost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan cost: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}
