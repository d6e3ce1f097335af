// Package ledger casos de uso de los tres libros de movimientos: conferimenti, lavorazioni y salidas.
// Las giacenze nunca se guardan como verdad: cada alta, cambio o baja invalida la caché de giacenze.
package ledger

import (
	"context"

	"github.com/jhoicas/Reciclaje-api/internal/domain"
	"github.com/jhoicas/Reciclaje-api/internal/domain/repository"
	"github.com/jhoicas/Reciclaje-api/pkg/logger"
)

// CacheInvalidator descarta giacenze cacheadas tras cambiar un libro.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// References repositorios de las tablas maestras que un movimiento referencia.
type References struct {
	Municipalities repository.MunicipalityRepository
	Materials      repository.MaterialRepository
	Flows          repository.FlowRepository
}

func (r References) checkMunicipality(ctx context.Context, id string) error {
	m, err := r.Municipalities.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return notFound("municipio", id)
	}
	return nil
}

func (r References) checkMaterial(ctx context.Context, id string) error {
	m, err := r.Materials.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return notFound("material", id)
	}
	return nil
}

func (r References) checkFlow(ctx context.Context, id *string) error {
	if id == nil || *id == "" {
		return nil
	}
	f, err := r.Flows.GetByID(ctx, *id)
	if err != nil {
		return err
	}
	if f == nil {
		return notFound("flujo", *id)
	}
	return nil
}

func notFound(what, id string) error {
	return &domain.ReferenceError{Entity: what, ID: id}
}

func invalidate(ctx context.Context, cache CacheInvalidator, log *logger.Logger) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("no se pudo invalidar la caché de existencias")
	}
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
