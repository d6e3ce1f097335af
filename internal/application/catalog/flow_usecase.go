package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
	"github.com/jhoicas/Reciclaje-api/internal/domain"
	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/domain/repository"
)

// FlowUseCase CRUD de flujos de recogida.
type FlowUseCase struct {
	repo repository.FlowRepository
}

// NewFlowUseCase construye el caso de uso.
func NewFlowUseCase(repo repository.FlowRepository) *FlowUseCase {
	return &FlowUseCase{repo: repo}
}

func (uc *FlowUseCase) Create(ctx context.Context, in dto.FlowRequest) (*dto.FlowResponse, error) {
	now := time.Now()
	f := &entity.CollectionFlow{ID: uuid.New().String(), Active: true, CreatedAt: now}
	applyFlow(f, in)
	f.UpdatedAt = now
	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return ToFlowResponse(f), nil
}

func (uc *FlowUseCase) GetByID(ctx context.Context, id string) (*dto.FlowResponse, error) {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	return ToFlowResponse(f), nil
}

// Update reemplaza datos y límites. Un límite omitido queda sin restricción.
func (uc *FlowUseCase) Update(ctx context.Context, id string, in dto.FlowRequest) (*dto.FlowResponse, error) {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	applyFlow(f, in)
	f.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return ToFlowResponse(f), nil
}

func (uc *FlowUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *FlowUseCase) List(ctx context.Context, activeOnly bool) ([]dto.FlowResponse, error) {
	list, err := uc.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FlowResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *ToFlowResponse(f))
	}
	return items, nil
}

func applyFlow(f *entity.CollectionFlow, in dto.FlowRequest) {
	f.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	f.Name = in.Name
	f.Description = in.Description
	f.RatePerTonne = in.RatePerTonne
	f.MaxTracers = in.MaxTracers
	f.MaxForeignFraction = in.MaxForeignFraction
	f.MinConformingPlastic = in.MinConformingPlastic
	if in.Active != nil {
		f.Active = *in.Active
	}
}

// ToFlowResponse entity → DTO.
func ToFlowResponse(f *entity.CollectionFlow) *dto.FlowResponse {
	return &dto.FlowResponse{
		ID:                   f.ID,
		Code:                 f.Code,
		Name:                 f.Name,
		Description:          f.Description,
		RatePerTonne:         f.RatePerTonne,
		MaxTracers:           f.MaxTracers,
		MaxForeignFraction:   f.MaxForeignFraction,
		MinConformingPlastic: f.MinConformingPlastic,
		Active:               f.Active,
		CreatedAt:            f.CreatedAt,
		UpdatedAt:            f.UpdatedAt,
	}
}
