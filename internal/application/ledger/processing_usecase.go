package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
	"github.com/jhoicas/Reciclaje-api/internal/domain"
	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/domain/repository"
	"github.com/jhoicas/Reciclaje-api/pkg/logger"
)

// ProcessingUseCase registro de lavorazioni (consumo de giacenza).
type ProcessingUseCase struct {
	repo  repository.ProcessingRepository
	refs  References
	cache CacheInvalidator
	log   *logger.Logger
}

// NewProcessingUseCase construye el caso de uso.
func NewProcessingUseCase(repo repository.ProcessingRepository, refs References, cache CacheInvalidator, log *logger.Logger) *ProcessingUseCase {
	return &ProcessingUseCase{repo: repo, refs: refs, cache: cache, log: log.Component("processing")}
}

func (uc *ProcessingUseCase) Create(ctx context.Context, in dto.ProcessingRequest) (*dto.ProcessingResponse, error) {
	now := time.Now()
	p := &entity.ProcessingEvent{ID: uuid.New().String(), CreatedAt: now}
	if err := uc.apply(ctx, p, in); err != nil {
		return nil, err
	}
	p.UpdatedAt = now
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	invalidate(ctx, uc.cache, uc.log)
	return ToProcessingResponse(p), nil
}

func (uc *ProcessingUseCase) GetByID(ctx context.Context, id string) (*dto.ProcessingResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return ToProcessingResponse(p), nil
}

func (uc *ProcessingUseCase) Update(ctx context.Context, id string, in dto.ProcessingRequest) (*dto.ProcessingResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.apply(ctx, p, in); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	invalidate(ctx, uc.cache, uc.log)
	return ToProcessingResponse(p), nil
}

func (uc *ProcessingUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, uc.cache, uc.log)
	return nil
}

func (uc *ProcessingUseCase) List(ctx context.Context, q dto.MovementQuery) (*dto.ProcessingListResponse, error) {
	q.DefaultPage()
	from, to, err := q.Bounds()
	if err != nil {
		return nil, err
	}
	list, total, err := uc.repo.List(ctx, repository.MovementFilter{
		Period:     repository.Period{From: from, To: to},
		Page:       repository.Page{Limit: q.Limit, Offset: q.Offset},
		MaterialID: q.MaterialID,
		FlowID:     q.FlowID,
		Operation:  q.Operation,
	})
	if err != nil {
		return nil, fmt.Errorf("listar procesamientos: %w", err)
	}
	items := make([]dto.ProcessingResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProcessingResponse(p))
	}
	return &dto.ProcessingListResponse{Items: items, Page: dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total}}, nil
}

func (uc *ProcessingUseCase) apply(ctx context.Context, p *entity.ProcessingEvent, in dto.ProcessingRequest) error {
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return err
	}
	if !in.QuantityKg.IsPositive() {
		return fmt.Errorf("%w: quantity_kg debe ser positiva", domain.ErrInvalidInput)
	}
	switch in.Operation {
	case entity.OperationSorting, entity.OperationBaling, entity.OperationStorage:
	default:
		return fmt.Errorf("%w: operación %q no reconocida", domain.ErrInvalidInput, in.Operation)
	}
	flowID := emptyToNil(in.OriginFlowID)
	if err := uc.refs.checkMaterial(ctx, in.MaterialID); err != nil {
		return err
	}
	if err := uc.refs.checkFlow(ctx, flowID); err != nil {
		return err
	}
	p.Date = date
	p.MaterialID = in.MaterialID
	p.QuantityKg = in.QuantityKg
	p.OriginFlowID = flowID
	p.Operation = in.Operation
	p.Notes = in.Notes
	return nil
}

// ToProcessingResponse entity → DTO.
func ToProcessingResponse(p *entity.ProcessingEvent) *dto.ProcessingResponse {
	return &dto.ProcessingResponse{
		ID:           p.ID,
		Date:         dto.FormatDate(p.Date),
		MaterialID:   p.MaterialID,
		QuantityKg:   p.QuantityKg,
		OriginFlowID: p.OriginFlowID,
		Operation:    p.Operation,
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
