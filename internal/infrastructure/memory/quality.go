package memory

import (
	"context"
	"slices"
	"time"

	"github.com/jhoicas/Reciclaje-api/internal/domain"
	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/domain/repository"
)

var _ repository.SampleRepository = (*SampleRepo)(nil)

// SampleRepo análisis de calidad en memoria.
type SampleRepo struct{ s *Store }

func cloneSample(s entity.QualitySample) *entity.QualitySample {
	s.Violations = slices.Clone(s.Violations)
	return &s
}

func (r *SampleRepo) Create(ctx context.Context, s *entity.QualitySample) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.samples[s.ID] = *cloneSample(*s)
	return nil
}

func (r *SampleRepo) GetByID(ctx context.Context, id string) (*entity.QualitySample, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	s, ok := r.s.samples[id]
	if !ok {
		return nil, nil
	}
	return cloneSample(s), nil
}

func (r *SampleRepo) Update(ctx context.Context, s *entity.QualitySample) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.samples[s.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.samples[s.ID] = *cloneSample(*s)
	return nil
}

func (r *SampleRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.samples[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.samples, id)
	return nil
}

func (r *SampleRepo) List(ctx context.Context, f repository.SampleFilter) ([]*entity.QualitySample, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []*entity.QualitySample{}
	for _, s := range r.s.samples {
		if !inPeriod(s.SampleDate, f.Period) {
			continue
		}
		if f.MunicipalityID != "" && s.MunicipalityID != f.MunicipalityID {
			continue
		}
		if f.FlowID != "" && s.FlowID != f.FlowID {
			continue
		}
		if f.Validated != nil && s.Validated != *f.Validated {
			continue
		}
		out = append(out, cloneSample(s))
	}
	newestFirst(out, func(s *entity.QualitySample) time.Time { return s.SampleDate }, func(s *entity.QualitySample) time.Time { return s.CreatedAt })
	return paginate(out, f.Page), len(out), nil
}
