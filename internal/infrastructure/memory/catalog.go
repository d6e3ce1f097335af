package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Reciclaje-api/internal/domain"
	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/domain/repository"
)

var (
	_ repository.MunicipalityRepository = (*MunicipalityRepo)(nil)
	_ repository.MaterialRepository     = (*MaterialRepo)(nil)
	_ repository.FlowRepository         = (*FlowRepo)(nil)
)

// MunicipalityRepo comuni en memoria.
type MunicipalityRepo struct{ s *Store }

func (r *MunicipalityRepo) Create(ctx context.Context, m *entity.Municipality) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.municipalities {
		if e.IstatCode == m.IstatCode {
			return domain.ErrDuplicate
		}
	}
	r.s.municipalities[m.ID] = *m
	return nil
}

func (r *MunicipalityRepo) GetByID(ctx context.Context, id string) (*entity.Municipality, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.municipalities[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *MunicipalityRepo) GetByIstatCode(ctx context.Context, code string) (*entity.Municipality, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, m := range r.s.municipalities {
		if m.IstatCode == code {
			return &m, nil
		}
	}
	return nil, nil
}

func (r *MunicipalityRepo) Update(ctx context.Context, m *entity.Municipality) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.municipalities[m.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, e := range r.s.municipalities {
		if id != m.ID && e.IstatCode == m.IstatCode {
			return domain.ErrDuplicate
		}
	}
	r.s.municipalities[m.ID] = *m
	return nil
}

func (r *MunicipalityRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.municipalities[id]; !ok {
		return domain.ErrNotFound
	}
	for _, in := range r.s.intakes {
		if in.MunicipalityID == id {
			return domain.ErrConflict
		}
	}
	for _, sm := range r.s.samples {
		if sm.MunicipalityID == id {
			return domain.ErrConflict
		}
	}
	delete(r.s.municipalities, id)
	return nil
}

func (r *MunicipalityRepo) List(ctx context.Context, f repository.MunicipalityFilter) ([]*entity.Municipality, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []*entity.Municipality{}
	for _, m := range r.s.municipalities {
		if f.Search != "" && !containsFold(m.Name, f.Search) {
			continue
		}
		if f.DelegationActive != nil && m.DelegationActive != *f.DelegationActive {
			continue
		}
		out = append(out, &m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return paginate(out, f.Page), len(out), nil
}

// MaterialRepo tipologías de material en memoria.
type MaterialRepo struct{ s *Store }

func (r *MaterialRepo) Create(ctx context.Context, m *entity.MaterialType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.materials {
		if e.Code == m.Code {
			return domain.ErrDuplicate
		}
	}
	r.s.materials[m.ID] = *m
	return nil
}

func (r *MaterialRepo) GetByID(ctx context.Context, id string) (*entity.MaterialType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.materials[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *MaterialRepo) GetByCode(ctx context.Context, code string) (*entity.MaterialType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, m := range r.s.materials {
		if m.Code == code {
			return &m, nil
		}
	}
	return nil, nil
}

func (r *MaterialRepo) Update(ctx context.Context, m *entity.MaterialType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.materials[m.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, e := range r.s.materials {
		if id != m.ID && e.Code == m.Code {
			return domain.ErrDuplicate
		}
	}
	r.s.materials[m.ID] = *m
	return nil
}

func (r *MaterialRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.materials[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.materials, id)
	return nil
}

func (r *MaterialRepo) List(ctx context.Context, activeOnly bool) ([]*entity.MaterialType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []*entity.MaterialType{}
	for _, m := range r.s.materials {
		if activeOnly && !m.Active {
			continue
		}
		out = append(out, &m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *MaterialRepo) IsReferenced(ctx context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, in := range r.s.intakes {
		if in.MaterialID == id {
			return true, nil
		}
	}
	for _, p := range r.s.processing {
		if p.MaterialID == id {
			return true, nil
		}
	}
	for _, o := range r.s.outbounds {
		if o.MaterialID == id {
			return true, nil
		}
	}
	return false, nil
}

// FlowRepo flujos de recogida en memoria.
type FlowRepo struct{ s *Store }

func (r *FlowRepo) Create(ctx context.Context, f *entity.CollectionFlow) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.flows {
		if e.Code == f.Code {
			return domain.ErrDuplicate
		}
	}
	r.s.flows[f.ID] = *f
	return nil
}

func (r *FlowRepo) GetByID(ctx context.Context, id string) (*entity.CollectionFlow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	f, ok := r.s.flows[id]
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func (r *FlowRepo) GetByCode(ctx context.Context, code string) (*entity.CollectionFlow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, f := range r.s.flows {
		if f.Code == code {
			return &f, nil
		}
	}
	return nil, nil
}

func (r *FlowRepo) Update(ctx context.Context, f *entity.CollectionFlow) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.flows[f.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, e := range r.s.flows {
		if id != f.ID && e.Code == f.Code {
			return domain.ErrDuplicate
		}
	}
	r.s.flows[f.ID] = *f
	return nil
}

func (r *FlowRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.flows[id]; !ok {
		return domain.ErrNotFound
	}
	for _, sm := range r.s.samples {
		if sm.FlowID == id {
			return domain.ErrConflict
		}
	}
	delete(r.s.flows, id)
	return nil
}

func (r *FlowRepo) List(ctx context.Context, activeOnly bool) ([]*entity.CollectionFlow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []*entity.CollectionFlow{}
	for _, f := range r.s.flows {
		if activeOnly && !f.Active {
			continue
		}
		out = append(out, &f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}
