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

var _ repository.SampleRepository = (*SampleRepo)(nil)

const sampleColumns = `id, sample_date, form_number, form_date, municipality_id, flow_id,
	pct_pet_conforming, pct_other_conforming, pct_tracers, pct_crates, pct_certified_packaging,
	pct_misc_packaging, pct_foreign_fraction, pct_fine_fraction, pct_neutral_fraction,
	sample_weight_kg, notes, validated, validated_at, validated_by, conforming, violations, created_at, updated_at`

// SampleRepo implementación de SampleRepository sobre PostgreSQL.
type SampleRepo struct {
	q Querier
}

// NewSampleRepository construye el adaptador de análisis de calidad.
func NewSampleRepository(q Querier) *SampleRepo {
	return &SampleRepo{q: q}
}

func scanSample(row rowScanner) (*entity.QualitySample, error) {
	var s entity.QualitySample
	p := &s.Percentages
	err := row.Scan(&s.ID, &s.SampleDate, &s.FormNumber, &s.FormDate, &s.MunicipalityID, &s.FlowID,
		&p.PetConforming, &p.OtherConforming, &p.Tracers, &p.Crates, &p.CertifiedPackaging,
		&p.MiscPackaging, &p.ForeignFraction, &p.FineFraction, &p.NeutralFraction,
		&s.SampleWeightKg, &s.Notes, &s.Validated, &s.ValidatedAt, &s.ValidatedBy, &s.Conforming, &s.Violations,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if s.Violations == nil {
		s.Violations = []string{}
	}
	return &s, nil
}

func sampleArgs(s *entity.QualitySample) []any {
	p := s.Percentages
	violations := s.Violations
	if violations == nil {
		violations = []string{}
	}
	return []any{
		s.ID, dateOnly(s.SampleDate), s.FormNumber, s.FormDate, s.MunicipalityID, s.FlowID,
		p.PetConforming, p.OtherConforming, p.Tracers, p.Crates, p.CertifiedPackaging,
		p.MiscPackaging, p.ForeignFraction, p.FineFraction, p.NeutralFraction,
		s.SampleWeightKg, s.Notes, s.Validated, s.ValidatedAt, s.ValidatedBy, s.Conforming, violations,
		s.CreatedAt, s.UpdatedAt,
	}
}

func (r *SampleRepo) Create(ctx context.Context, s *entity.QualitySample) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO quality_samples (`+sampleColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`,
		sampleArgs(s)...,
	)
	if err != nil {
		return fmt.Errorf("insert sample: %w", err)
	}
	return nil
}

func (r *SampleRepo) GetByID(ctx context.Context, id string) (*entity.QualitySample, error) {
	s, err := scanSample(r.q.QueryRow(ctx, `SELECT `+sampleColumns+` FROM quality_samples WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sample: %w", err)
	}
	return s, nil
}

// Update reescribe todas las columnas excepto created_at.
func (r *SampleRepo) Update(ctx context.Context, s *entity.QualitySample) error {
	args := sampleArgs(s)
	args = append(args[:len(args)-2], s.UpdatedAt)
	cmd, err := r.q.Exec(ctx, `
		UPDATE quality_samples SET sample_date = $2, form_number = $3, form_date = $4, municipality_id = $5, flow_id = $6,
			pct_pet_conforming = $7, pct_other_conforming = $8, pct_tracers = $9, pct_crates = $10,
			pct_certified_packaging = $11, pct_misc_packaging = $12, pct_foreign_fraction = $13,
			pct_fine_fraction = $14, pct_neutral_fraction = $15, sample_weight_kg = $16, notes = $17,
			validated = $18, validated_at = $19, validated_by = $20, conforming = $21, violations = $22,
			updated_at = $23
		WHERE id = $1`, args...)
	if err != nil {
		return fmt.Errorf("update sample: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SampleRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM quality_samples WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sample: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List ordena por fecha de muestreo descendente.
func (r *SampleRepo) List(ctx context.Context, f repository.SampleFilter) ([]*entity.QualitySample, int, error) {
	w := &where{}
	w.period("sample_date", f.Period)
	if f.MunicipalityID != "" {
		w.add("municipality_id = $%d", f.MunicipalityID)
	}
	if f.FlowID != "" {
		w.add("flow_id = $%d", f.FlowID)
	}
	if f.Validated != nil {
		w.add("validated = $%d", *f.Validated)
	}
	total, err := count(ctx, r.q, "quality_samples", w)
	if err != nil {
		return nil, 0, err
	}
	limit, args := w.paginate(f.Page)
	rows, err := r.q.Query(ctx, `SELECT `+sampleColumns+` FROM quality_samples`+w.String()+
		` ORDER BY sample_date DESC, created_at DESC`+limit, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list samples: %w", err)
	}
	defer rows.Close()
	list := []*entity.QualitySample{}
	for rows.Next() {
		s, err := scanSample(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan sample: %w", err)
		}
		list = append(list, s)
	}
	return list, total, rows.Err()
}
