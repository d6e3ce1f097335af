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

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

const materialColumns = `id, code, name, description, cer_code, consortium, average_price, active, created_at, updated_at`

// MaterialRepo implementación de MaterialRepository sobre PostgreSQL.
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador de tipologías de material.
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

func scanMaterial(row rowScanner) (*entity.MaterialType, error) {
	var m entity.MaterialType
	err := row.Scan(&m.ID, &m.Code, &m.Name, &m.Description, &m.CERCode, &m.Consortium,
		&m.AveragePrice, &m.Active, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MaterialRepo) Create(ctx context.Context, m *entity.MaterialType) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO material_types (`+materialColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.ID, m.Code, m.Name, m.Description, m.CERCode, m.Consortium,
		m.AveragePrice, m.Active, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

func (r *MaterialRepo) get(ctx context.Context, column, value string) (*entity.MaterialType, error) {
	m, err := scanMaterial(r.q.QueryRow(ctx, `SELECT `+materialColumns+` FROM material_types WHERE `+column+` = $1`, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return m, nil
}

func (r *MaterialRepo) GetByID(ctx context.Context, id string) (*entity.MaterialType, error) {
	return r.get(ctx, "id", id)
}

func (r *MaterialRepo) GetByCode(ctx context.Context, code string) (*entity.MaterialType, error) {
	return r.get(ctx, "code", code)
}

func (r *MaterialRepo) Update(ctx context.Context, m *entity.MaterialType) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE material_types SET code = $2, name = $3, description = $4, cer_code = $5, consortium = $6,
			average_price = $7, active = $8, updated_at = $9
		WHERE id = $1`,
		m.ID, m.Code, m.Name, m.Description, m.CERCode, m.Consortium, m.AveragePrice, m.Active, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update material: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MaterialRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM material_types WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete material: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve los materiales ordenados por código.
func (r *MaterialRepo) List(ctx context.Context, activeOnly bool) ([]*entity.MaterialType, error) {
	query := `SELECT ` + materialColumns + ` FROM material_types`
	if activeOnly {
		query += ` WHERE active`
	}
	rows, err := r.q.Query(ctx, query+` ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	list := []*entity.MaterialType{}
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// IsReferenced indica si el material aparece en ingresos, lavorazioni o salidas.
func (r *MaterialRepo) IsReferenced(ctx context.Context, id string) (bool, error) {
	var used bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM intakes WHERE material_id = $1)
			OR EXISTS (SELECT 1 FROM processing_events WHERE material_id = $1)
			OR EXISTS (SELECT 1 FROM outbounds WHERE material_id = $1)`, id).Scan(&used)
	if err != nil {
		return false, fmt.Errorf("material referenced: %w", err)
	}
	return used, nil
}
