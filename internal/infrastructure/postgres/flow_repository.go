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

var _ repository.FlowRepository = (*FlowRepo)(nil)

const flowColumns = `id, code, name, description, rate_per_tonne, max_tracers, max_foreign_fraction, min_conforming_plastic, active, created_at, updated_at`

// FlowRepo implementación de FlowRepository sobre PostgreSQL.
type FlowRepo struct {
	q Querier
}

// NewFlowRepository construye el adaptador de flujos de recogida.
func NewFlowRepository(q Querier) *FlowRepo {
	return &FlowRepo{q: q}
}

func scanFlow(row rowScanner) (*entity.CollectionFlow, error) {
	var f entity.CollectionFlow
	err := row.Scan(&f.ID, &f.Code, &f.Name, &f.Description, &f.RatePerTonne,
		&f.MaxTracers, &f.MaxForeignFraction, &f.MinConformingPlastic, &f.Active, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FlowRepo) Create(ctx context.Context, f *entity.CollectionFlow) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO collection_flows (`+flowColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		f.ID, f.Code, f.Name, f.Description, f.RatePerTonne,
		f.MaxTracers, f.MaxForeignFraction, f.MinConformingPlastic, f.Active, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert flow: %w", err)
	}
	return nil
}

func (r *FlowRepo) get(ctx context.Context, column, value string) (*entity.CollectionFlow, error) {
	f, err := scanFlow(r.q.QueryRow(ctx, `SELECT `+flowColumns+` FROM collection_flows WHERE `+column+` = $1`, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get flow: %w", err)
	}
	return f, nil
}

func (r *FlowRepo) GetByID(ctx context.Context, id string) (*entity.CollectionFlow, error) {
	return r.get(ctx, "id", id)
}

func (r *FlowRepo) GetByCode(ctx context.Context, code string) (*entity.CollectionFlow, error) {
	return r.get(ctx, "code", code)
}

func (r *FlowRepo) Update(ctx context.Context, f *entity.CollectionFlow) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE collection_flows SET code = $2, name = $3, description = $4, rate_per_tonne = $5,
			max_tracers = $6, max_foreign_fraction = $7, min_conforming_plastic = $8, active = $9, updated_at = $10
		WHERE id = $1`,
		f.ID, f.Code, f.Name, f.Description, f.RatePerTonne,
		f.MaxTracers, f.MaxForeignFraction, f.MinConformingPlastic, f.Active, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update flow: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *FlowRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM collection_flows WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete flow: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *FlowRepo) List(ctx context.Context, activeOnly bool) ([]*entity.CollectionFlow, error) {
	query := `SELECT ` + flowColumns + ` FROM collection_flows`
	if activeOnly {
		query += ` WHERE active`
	}
	rows, err := r.q.Query(ctx, query+` ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list flows: %w", err)
	}
	defer rows.Close()
	list := []*entity.CollectionFlow{}
	for rows.Next() {
		f, err := scanFlow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan flow: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}
