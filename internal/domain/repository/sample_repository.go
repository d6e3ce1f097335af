package repository

import (
	"context"

	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
)

// SampleRepository puerto de persistencia para análisis de calidad.
// Update persiste también el estado de validación y el veredicto almacenado.
type SampleRepository interface {
	Create(ctx context.Context, s *entity.QualitySample) error
	GetByID(ctx context.Context, id string) (*entity.QualitySample, error)
	Update(ctx context.Context, s *entity.QualitySample) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f SampleFilter) ([]*entity.QualitySample, int, error)
}
