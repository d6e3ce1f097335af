package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/jhoicas/Reciclaje-api/internal/domain"
	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/domain/repository"
)

var (
	_ repository.InvoiceRepository  = (*InvoiceRepo)(nil)
	_ repository.CostRepository     = (*CostRepo)(nil)
	_ repository.SnapshotRepository = (*SnapshotRepo)(nil)
)

// InvoiceRepo facturas a consorcios en memoria.
type InvoiceRepo struct{ s *Store }

func cloneInvoice(inv entity.ConsortiumInvoice) *entity.ConsortiumInvoice {
	inv.Lines = slices.Clone(inv.Lines)
	return &inv
}

func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.ConsortiumInvoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.invoices {
		if e.Consortium == inv.Consortium && e.Year == inv.Year && e.Month == inv.Month {
			return domain.ErrDuplicate
		}
	}
	r.s.invoices[inv.ID] = *cloneInvoice(*inv)
	return nil
}

func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.ConsortiumInvoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	return cloneInvoice(inv), nil
}

func (r *InvoiceRepo) GetByPeriod(ctx context.Context, consortium string, year, month int) (*entity.ConsortiumInvoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, inv := range r.s.invoices {
		if inv.Consortium == consortium && inv.Year == year && inv.Month == month {
			return cloneInvoice(inv), nil
		}
	}
	return nil, nil
}

func (r *InvoiceRepo) UpdateStatus(ctx context.Context, inv *entity.ConsortiumInvoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.invoices[inv.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.Status, cur.SentAt, cur.PaidAt, cur.UpdatedAt = inv.Status, inv.SentAt, inv.PaidAt, inv.UpdatedAt
	r.s.invoices[inv.ID] = cur
	return nil
}

func (r *InvoiceRepo) List(ctx context.Context, f repository.InvoiceFilter) ([]*entity.ConsortiumInvoice, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []*entity.ConsortiumInvoice{}
	for _, inv := range r.s.invoices {
		if f.Consortium != "" && inv.Consortium != f.Consortium {
			continue
		}
		if f.Year != 0 && inv.Year != f.Year {
			continue
		}
		if f.Status != "" && inv.Status != f.Status {
			continue
		}
		out = append(out, cloneInvoice(inv))
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		if a.Month != b.Month {
			return a.Month > b.Month
		}
		return a.Consortium < b.Consortium
	})
	return paginate(out, f.Page), len(out), nil
}

func (r *InvoiceRepo) NextNumber(ctx context.Context, year int) (string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, inv := range r.s.invoices {
		if inv.Year == year {
			n++
		}
	}
	return fmt.Sprintf("%d/%03d", year, n+1), nil
}

// CostRepo costos en memoria.
type CostRepo struct{ s *Store }

func (r *CostRepo) Create(ctx context.Context, c *entity.Cost) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.costs[c.ID] = *c
	return nil
}

func (r *CostRepo) GetByID(ctx context.Context, id string) (*entity.Cost, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.costs[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CostRepo) Update(ctx context.Context, c *entity.Cost) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.costs[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.costs[c.ID] = *c
	return nil
}

func (r *CostRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.costs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.costs, id)
	return nil
}

func (r *CostRepo) List(ctx context.Context, f repository.CostFilter) ([]*entity.Cost, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []*entity.Cost{}
	for _, c := range r.s.costs {
		if !inPeriod(c.Date, f.Period) {
			continue
		}
		if f.Category != "" && c.Category != f.Category {
			continue
		}
		if f.MaterialID != "" && (c.MaterialID == nil || *c.MaterialID != f.MaterialID) {
			continue
		}
		out = append(out, &c)
	}
	newestFirst(out, func(c *entity.Cost) time.Time { return c.Date }, func(c *entity.Cost) time.Time { return c.CreatedAt })
	return paginate(out, f.Page), len(out), nil
}

// SnapshotRepo fotos de giacenza en memoria, agrupadas por fecha.
type SnapshotRepo struct{ s *Store }

func (r *SnapshotRepo) Replace(ctx context.Context, ref time.Time, snaps []*entity.StockSnapshot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]entity.StockSnapshot, 0, len(snaps))
	for _, sn := range snaps {
		list = append(list, *sn)
	}
	r.s.snapshots[dateKey(ref)] = list
	return nil
}

func (r *SnapshotRepo) ListByDate(ctx context.Context, ref time.Time) ([]*entity.StockSnapshot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []*entity.StockSnapshot{}
	for _, sn := range r.s.snapshots[dateKey(ref)] {
		out = append(out, &sn)
	}
	return out, nil
}
