package repository

import (
	"context"

	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
)

// CostRepository puerto de persistencia para costos operativos.
type CostRepository interface {
	Create(ctx context.Context, c *entity.Cost) error
	GetByID(ctx context.Context, id string) (*entity.Cost, error)
	Update(ctx context.Context, c *entity.Cost) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f CostFilter) ([]*entity.Cost, int, error)
}
