package repository

import (
	"context"

	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
)

// MunicipalityRepository puerto de persistencia para comuni. Get* devuelve nil, nil si no existe.
type MunicipalityRepository interface {
	Create(ctx context.Context, m *entity.Municipality) error
	GetByID(ctx context.Context, id string) (*entity.Municipality, error)
	GetByIstatCode(ctx context.Context, code string) (*entity.Municipality, error)
	Update(ctx context.Context, m *entity.Municipality) error
	Delete(ctx context.Context, id string) error
	// List devuelve la página pedida y el total de filas que cumplen el filtro.
	List(ctx context.Context, f MunicipalityFilter) ([]*entity.Municipality, int, error)
}
