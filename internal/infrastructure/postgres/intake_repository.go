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

var _ repository.IntakeRepository = (*IntakeRepo)(nil)

const intakeColumns = `id, date, form_number, form_date, municipality_id, material_id, flow_id, quantity_kg, notes, created_at, updated_at`

// IntakeRepo implementación de IntakeRepository sobre PostgreSQL.
type IntakeRepo struct {
	q Querier
}

// NewIntakeRepository construye el adaptador de conferimenti.
func NewIntakeRepository(q Querier) *IntakeRepo {
	return &IntakeRepo{q: q}
}

func scanIntake(row rowScanner) (*entity.Intake, error) {
	var in entity.Intake
	err := row.Scan(&in.ID, &in.Date, &in.FormNumber, &in.FormDate, &in.MunicipalityID, &in.MaterialID,
		&in.FlowID, &in.QuantityKg, &in.Notes, &in.CreatedAt, &in.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *IntakeRepo) Create(ctx context.Context, in *entity.Intake) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO intakes (`+intakeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		in.ID, dateOnly(in.Date), in.FormNumber, in.FormDate, in.MunicipalityID, in.MaterialID,
		in.FlowID, in.QuantityKg, in.Notes, in.CreatedAt, in.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: municipio, material o flujo inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert intake: %w", err)
	}
	return nil
}

func (r *IntakeRepo) GetByID(ctx context.Context, id string) (*entity.Intake, error) {
	in, err := scanIntake(r.q.QueryRow(ctx, `SELECT `+intakeColumns+` FROM intakes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get intake: %w", err)
	}
	return in, nil
}

func (r *IntakeRepo) Update(ctx context.Context, in *entity.Intake) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE intakes SET date = $2, form_number = $3, form_date = $4, municipality_id = $5, material_id = $6,
			flow_id = $7, quantity_kg = $8, notes = $9, updated_at = $10
		WHERE id = $1`,
		in.ID, dateOnly(in.Date), in.FormNumber, in.FormDate, in.MunicipalityID, in.MaterialID,
		in.FlowID, in.QuantityKg, in.Notes, in.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: municipio, material o flujo inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("update intake: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *IntakeRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM intakes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete intake: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *IntakeRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.Intake, int, error) {
	w := &where{}
	w.period("date", f.Period)
	if f.MunicipalityID != "" {
		w.add("municipality_id = $%d", f.MunicipalityID)
	}
	if f.MaterialID != "" {
		w.add("material_id = $%d", f.MaterialID)
	}
	if f.FlowID != "" {
		w.add("flow_id = $%d", f.FlowID)
	}
	total, err := count(ctx, r.q, "intakes", w)
	if err != nil {
		return nil, 0, err
	}
	limit, args := w.paginate(f.Page)
	rows, err := r.q.Query(ctx, `SELECT `+intakeColumns+` FROM intakes`+w.String()+` ORDER BY date DESC, created_at DESC`+limit, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list intakes: %w", err)
	}
	defer rows.Close()
	list := []*entity.Intake{}
	for rows.Next() {
		in, err := scanIntake(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan intake: %w", err)
		}
		list = append(list, in)
	}
	return list, total, rows.Err()
}
