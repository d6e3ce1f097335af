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

// OutboundUseCase registro de salidas.
type OutboundUseCase struct {
	repo  repository.OutboundRepository
	refs  References
	cache CacheInvalidator
	log   *logger.Logger
}

// NewOutboundUseCase construye el caso de uso.
func NewOutboundUseCase(repo repository.OutboundRepository, refs References, cache CacheInvalidator, log *logger.Logger) *OutboundUseCase {
	return &OutboundUseCase{repo: repo, refs: refs, cache: cache, log: log.Component("outbounds")}
}

// Create registra una salida. El valor total se deriva o se contrasta con cantidad × precio.
func (uc *OutboundUseCase) Create(ctx context.Context, in dto.OutboundRequest) (*dto.OutboundResponse, error) {
	now := time.Now()
	o := &entity.Outbound{ID: uuid.New().String(), CreatedAt: now}
	if err := uc.apply(ctx, o, in); err != nil {
		return nil, err
	}
	o.UpdatedAt = now
	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	invalidate(ctx, uc.cache, uc.log)
	return ToOutboundResponse(o), nil
}

func (uc *OutboundUseCase) GetByID(ctx context.Context, id string) (*dto.OutboundResponse, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return ToOutboundResponse(o), nil
}

func (uc *OutboundUseCase) Update(ctx context.Context, id string, in dto.OutboundRequest) (*dto.OutboundResponse, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.apply(ctx, o, in); err != nil {
		return nil, err
	}
	o.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	invalidate(ctx, uc.cache, uc.log)
	return ToOutboundResponse(o), nil
}

func (uc *OutboundUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, uc.cache, uc.log)
	return nil
}

func (uc *OutboundUseCase) List(ctx context.Context, q dto.MovementQuery) (*dto.OutboundListResponse, error) {
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
		Recipient:  q.Recipient,
	})
	if err != nil {
		return nil, fmt.Errorf("listar salidas: %w", err)
	}
	items := make([]dto.OutboundResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *ToOutboundResponse(o))
	}
	return &dto.OutboundListResponse{Items: items, Page: dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total}}, nil
}

func (uc *OutboundUseCase) apply(ctx context.Context, o *entity.Outbound, in dto.OutboundRequest) error {
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return err
	}
	if !in.QuantityKg.IsPositive() {
		return fmt.Errorf("%w: quantity_kg debe ser positiva", domain.ErrInvalidInput)
	}
	flowID := emptyToNil(in.FlowID)
	if err := uc.refs.checkMaterial(ctx, in.MaterialID); err != nil {
		return err
	}
	if err := uc.refs.checkFlow(ctx, flowID); err != nil {
		return err
	}
	candidate := entity.Outbound{QuantityKg: in.QuantityKg, UnitPrice: in.UnitPrice, TotalValue: in.TotalValue}
	if err := candidate.ReconcileTotal(); err != nil {
		return err
	}
	o.Date = date
	o.DocumentNumber = in.DocumentNumber
	o.FormNumber = in.FormNumber
	o.Recipient = in.Recipient
	o.RecipientAddress = in.RecipientAddress
	o.MaterialID = in.MaterialID
	o.QuantityKg = in.QuantityKg
	o.UnitPrice = candidate.UnitPrice
	o.TotalValue = candidate.TotalValue
	o.Destination = in.Destination
	o.FlowID = flowID
	o.Vehicle = in.Vehicle
	o.Driver = in.Driver
	o.Notes = in.Notes
	return nil
}

// ToOutboundResponse entity → DTO.
func ToOutboundResponse(o *entity.Outbound) *dto.OutboundResponse {
	return &dto.OutboundResponse{
		ID:               o.ID,
		Date:             dto.FormatDate(o.Date),
		DocumentNumber:   o.DocumentNumber,
		FormNumber:       o.FormNumber,
		Recipient:        o.Recipient,
		RecipientAddress: o.RecipientAddress,
		MaterialID:       o.MaterialID,
		QuantityKg:       o.QuantityKg,
		UnitPrice:        o.UnitPrice,
		TotalValue:       o.TotalValue,
		Destination:      o.Destination,
		FlowID:           o.FlowID,
		Vehicle:          o.Vehicle,
		Driver:           o.Driver,
		Notes:            o.Notes,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}
