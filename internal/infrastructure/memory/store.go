// Package memory implementa los puertos de repositorio en memoria. Se usa con STORAGE_DRIVER=memory
// para desarrollo local sin PostgreSQL y como doble de prueba de los casos de uso.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/domain/repository"
)

// Store datos compartidos por todos los repositorios de memoria.
type Store struct {
	mu             sync.RWMutex
	txMu           sync.Mutex
	municipalities map[string]entity.Municipality
	materials      map[string]entity.MaterialType
	flows          map[string]entity.CollectionFlow
	intakes        map[string]entity.Intake
	processing     map[string]entity.ProcessingEvent
	outbounds      map[string]entity.Outbound
	samples        map[string]entity.QualitySample
	costs          map[string]entity.Cost
	invoices       map[string]entity.ConsortiumInvoice
	snapshots      map[string][]entity.StockSnapshot
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{
		municipalities: map[string]entity.Municipality{},
		materials:      map[string]entity.MaterialType{},
		flows:          map[string]entity.CollectionFlow{},
		intakes:        map[string]entity.Intake{},
		processing:     map[string]entity.ProcessingEvent{},
		outbounds:      map[string]entity.Outbound{},
		samples:        map[string]entity.QualitySample{},
		costs:          map[string]entity.Cost{},
		invoices:       map[string]entity.ConsortiumInvoice{},
		snapshots:      map[string][]entity.StockSnapshot{},
	}
}

// Repos todos los repositorios sobre el mismo almacén.
type Repos struct {
	Municipalities *MunicipalityRepo
	Materials      *MaterialRepo
	Flows          *FlowRepo
	Intakes        *IntakeRepo
	Processing     *ProcessingRepo
	Outbounds      *OutboundRepo
	Samples        *SampleRepo
	Costs          *CostRepo
	Invoices       *InvoiceRepo
	Snapshots      *SnapshotRepo
	Tx             *TxRunner
}

// Repos construye los repositorios del almacén.
func (s *Store) Repos() Repos {
	return Repos{
		Municipalities: &MunicipalityRepo{s: s},
		Materials:      &MaterialRepo{s: s},
		Flows:          &FlowRepo{s: s},
		Intakes:        &IntakeRepo{s: s},
		Processing:     &ProcessingRepo{s: s},
		Outbounds:      &OutboundRepo{s: s},
		Samples:        &SampleRepo{s: s},
		Costs:          &CostRepo{s: s},
		Invoices:       &InvoiceRepo{s: s},
		Snapshots:      &SnapshotRepo{s: s},
		Tx:             &TxRunner{s: s},
	}
}

// TxRunner serializa las operaciones compuestas. No hay rollback: el almacén es solo de desarrollo.
type TxRunner struct{ s *Store }

func (t *TxRunner) RunInvoice(ctx context.Context, fn func(repository.InvoiceRepository) error) error {
	t.s.txMu.Lock()
	defer t.s.txMu.Unlock()
	return fn(&InvoiceRepo{s: t.s})
}

func (t *TxRunner) RunSnapshots(ctx context.Context, fn func(repository.SnapshotRepository) error) error {
	t.s.txMu.Lock()
	defer t.s.txMu.Unlock()
	return fn(&SnapshotRepo{s: t.s})
}

func inPeriod(d time.Time, p repository.Period) bool {
	if p.From != nil && d.Before(*p.From) {
		return false
	}
	if p.To != nil && d.After(*p.To) {
		return false
	}
	return true
}

func paginate[T any](items []T, p repository.Page) []T {
	if p.Offset >= len(items) {
		return []T{}
	}
	items = items[p.Offset:]
	if p.Limit > 0 && p.Limit < len(items) {
		items = items[:p.Limit]
	}
	return items
}

// newestFirst orden de los libros: fecha descendente, luego alta descendente.
func newestFirst[T any](items []*T, date, created func(*T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		di, dj := date(items[i]), date(items[j])
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return created(items[i]).After(created(items[j]))
	})
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func dateKey(t time.Time) string { return t.Format("2006-01-02") }
