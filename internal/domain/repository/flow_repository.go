package repository

import (
	"context"

	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
)

// FlowRepository puerto de persistencia para flujos de recogida.
type FlowRepository interface {
	Create(ctx context.Context, f *entity.CollectionFlow) error
	GetByID(ctx context.Context, id string) (*entity.CollectionFlow, error)
	GetByCode(ctx context.Context, code string) (*entity.CollectionFlow, error)
	Update(ctx context.Context, f *entity.CollectionFlow) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, activeOnly bool) ([]*entity.CollectionFlow, error)
}
