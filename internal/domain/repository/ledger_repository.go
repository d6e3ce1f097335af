package repository

import (
	"context"

	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
)

// IntakeRepository puerto de persistencia para conferimenti.
type IntakeRepository interface {
	Create(ctx context.Context, in *entity.Intake) error
	GetByID(ctx context.Context, id string) (*entity.Intake, error)
	Update(ctx context.Context, in *entity.Intake) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f MovementFilter) ([]*entity.Intake, int, error)
}

// ProcessingRepository puerto de persistencia para lavorazioni.
type ProcessingRepository interface {
	Create(ctx context.Context, p *entity.ProcessingEvent) error
	GetByID(ctx context.Context, id string) (*entity.ProcessingEvent, error)
	Update(ctx context.Context, p *entity.ProcessingEvent) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f MovementFilter) ([]*entity.ProcessingEvent, int, error)
}

// OutboundRepository puerto de persistencia para salidas.
type OutboundRepository interface {
	Create(ctx context.Context, o *entity.Outbound) error
	GetByID(ctx context.Context, id string) (*entity.Outbound, error)
	Update(ctx context.Context, o *entity.Outbound) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f MovementFilter) ([]*entity.Outbound, int, error)
}
