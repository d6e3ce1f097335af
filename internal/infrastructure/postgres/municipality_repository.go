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

var _ repository.MunicipalityRepository = (*MunicipalityRepo)(nil)

const municipalityColumns = `id, istat_code, name, province, region, population, delegation_active, delegation_code, created_at, updated_at`

// MunicipalityRepo implementación de MunicipalityRepository sobre PostgreSQL (pool o tx).
type MunicipalityRepo struct {
	q Querier
}

// NewMunicipalityRepository construye el adaptador de comuni.
func NewMunicipalityRepository(q Querier) *MunicipalityRepo {
	return &MunicipalityRepo{q: q}
}

func scanMunicipality(row rowScanner) (*entity.Municipality, error) {
	var m entity.Municipality
	err := row.Scan(&m.ID, &m.IstatCode, &m.Name, &m.Province, &m.Region, &m.Population,
		&m.DelegationActive, &m.DelegationCode, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserta un comune. El código ISTAT es único.
func (r *MunicipalityRepo) Create(ctx context.Context, m *entity.Municipality) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO municipalities (`+municipalityColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.ID, m.IstatCode, m.Name, m.Province, m.Region, m.Population,
		m.DelegationActive, m.DelegationCode, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert municipality: %w", err)
	}
	return nil
}

// GetByID obtiene un comune por ID.
func (r *MunicipalityRepo) GetByID(ctx context.Context, id string) (*entity.Municipality, error) {
	m, err := scanMunicipality(r.q.QueryRow(ctx, `SELECT `+municipalityColumns+` FROM municipalities WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get municipality: %w", err)
	}
	return m, nil
}

// GetByIstatCode obtiene un comune por código ISTAT.
func (r *MunicipalityRepo) GetByIstatCode(ctx context.Context, code string) (*entity.Municipality, error) {
	m, err := scanMunicipality(r.q.QueryRow(ctx, `SELECT `+municipalityColumns+` FROM municipalities WHERE istat_code = $1`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get municipality by istat: %w", err)
	}
	return m, nil
}

// Update actualiza los datos del comune.
func (r *MunicipalityRepo) Update(ctx context.Context, m *entity.Municipality) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE municipalities SET istat_code = $2, name = $3, province = $4, region = $5, population = $6,
			delegation_active = $7, delegation_code = $8, updated_at = $9
		WHERE id = $1`,
		m.ID, m.IstatCode, m.Name, m.Province, m.Region, m.Population,
		m.DelegationActive, m.DelegationCode, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update municipality: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un comune. Falla con ErrConflict si tiene movimientos o análisis.
func (r *MunicipalityRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM municipalities WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete municipality: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List filtra por nombre y delega, ordenado por nombre.
func (r *MunicipalityRepo) List(ctx context.Context, f repository.MunicipalityFilter) ([]*entity.Municipality, int, error) {
	w := &where{}
	if f.Search != "" {
		w.add("name ILIKE $%d", "%"+f.Search+"%")
	}
	if f.DelegationActive != nil {
		w.add("delegation_active = $%d", *f.DelegationActive)
	}
	total, err := count(ctx, r.q, "municipalities", w)
	if err != nil {
		return nil, 0, err
	}
	limit, args := w.paginate(f.Page)
	rows, err := r.q.Query(ctx, `SELECT `+municipalityColumns+` FROM municipalities`+w.String()+` ORDER BY name`+limit, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list municipalities: %w", err)
	}
	defer rows.Close()
	list := []*entity.Municipality{}
	for rows.Next() {
		m, err := scanMunicipality(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan municipality: %w", err)
		}
		list = append(list, m)
	}
	return list, total, rows.Err()
}
