package repository

import (
	"context"

	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
)

// MaterialRepository puerto de persistencia para tipologías de material.
type MaterialRepository interface {
	Create(ctx context.Context, m *entity.MaterialType) error
	GetByID(ctx context.Context, id string) (*entity.MaterialType, error)
	GetByCode(ctx context.Context, code string) (*entity.MaterialType, error)
	Update(ctx context.Context, m *entity.MaterialType) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, activeOnly bool) ([]*entity.MaterialType, error)
	// IsReferenced indica si algún movimiento usa el material.
	IsReferenced(ctx context.Context, id string) (bool, error)
}
