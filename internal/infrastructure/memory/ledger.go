package memory

import (
	"context"
	"time"

	"github.com/jhoicas/Reciclaje-api/internal/domain"
	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/domain/repository"
)

var (
	_ repository.IntakeRepository     = (*IntakeRepo)(nil)
	_ repository.ProcessingRepository = (*ProcessingRepo)(nil)
	_ repository.OutboundRepository   = (*OutboundRepo)(nil)
)

func matchFlow(flowID *string, want string) bool {
	return want == "" || (flowID != nil && *flowID == want)
}

// IntakeRepo conferimenti en memoria.
type IntakeRepo struct{ s *Store }

func (r *IntakeRepo) Create(ctx context.Context, in *entity.Intake) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.intakes[in.ID] = *in
	return nil
}

func (r *IntakeRepo) GetByID(ctx context.Context, id string) (*entity.Intake, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	in, ok := r.s.intakes[id]
	if !ok {
		return nil, nil
	}
	return &in, nil
}

func (r *IntakeRepo) Update(ctx context.Context, in *entity.Intake) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.intakes[in.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.intakes[in.ID] = *in
	return nil
}

func (r *IntakeRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.intakes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.intakes, id)
	return nil
}

func (r *IntakeRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.Intake, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []*entity.Intake{}
	for _, in := range r.s.intakes {
		if !inPeriod(in.Date, f.Period) || !matchFlow(in.FlowID, f.FlowID) {
			continue
		}
		if f.MunicipalityID != "" && in.MunicipalityID != f.MunicipalityID {
			continue
		}
		if f.MaterialID != "" && in.MaterialID != f.MaterialID {
			continue
		}
		out = append(out, &in)
	}
	newestFirst(out, func(i *entity.Intake) time.Time { return i.Date }, func(i *entity.Intake) time.Time { return i.CreatedAt })
	return paginate(out, f.Page), len(out), nil
}

// ProcessingRepo lavorazioni en memoria.
type ProcessingRepo struct{ s *Store }

func (r *ProcessingRepo) Create(ctx context.Context, p *entity.ProcessingEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.processing[p.ID] = *p
	return nil
}

func (r *ProcessingRepo) GetByID(ctx context.Context, id string) (*entity.ProcessingEvent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.processing[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProcessingRepo) Update(ctx context.Context, p *entity.ProcessingEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.processing[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.processing[p.ID] = *p
	return nil
}

func (r *ProcessingRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.processing[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.processing, id)
	return nil
}

func (r *ProcessingRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.ProcessingEvent, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []*entity.ProcessingEvent{}
	for _, p := range r.s.processing {
		if !inPeriod(p.Date, f.Period) || !matchFlow(p.OriginFlowID, f.FlowID) {
			continue
		}
		if f.MaterialID != "" && p.MaterialID != f.MaterialID {
			continue
		}
		if f.Operation != "" && p.Operation != f.Operation {
			continue
		}
		out = append(out, &p)
	}
	newestFirst(out, func(p *entity.ProcessingEvent) time.Time { return p.Date }, func(p *entity.ProcessingEvent) time.Time { return p.CreatedAt })
	return paginate(out, f.Page), len(out), nil
}

// OutboundRepo salidas en memoria.
type OutboundRepo struct{ s *Store }

func (r *OutboundRepo) Create(ctx context.Context, o *entity.Outbound) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.outbounds[o.ID] = *o
	return nil
}

func (r *OutboundRepo) GetByID(ctx context.Context, id string) (*entity.Outbound, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.outbounds[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *OutboundRepo) Update(ctx context.Context, o *entity.Outbound) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.outbounds[o.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.outbounds[o.ID] = *o
	return nil
}

func (r *OutboundRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.outbounds[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.outbounds, id)
	return nil
}

func (r *OutboundRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.Outbound, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []*entity.Outbound{}
	for _, o := range r.s.outbounds {
		if !inPeriod(o.Date, f.Period) || !matchFlow(o.FlowID, f.FlowID) {
			continue
		}
		if f.MaterialID != "" && o.MaterialID != f.MaterialID {
			continue
		}
		if f.Recipient != "" && !containsFold(o.Recipient, f.Recipient) {
			continue
		}
		out = append(out, &o)
	}
	newestFirst(out, func(o *entity.Outbound) time.Time { return o.Date }, func(o *entity.Outbound) time.Time { return o.CreatedAt })
	return paginate(out, f.Page), len(out), nil
}
