package catalog

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

// CacheInvalidator descarta giacenze cacheadas; el precio medio y el estado activo las cambian.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// MaterialUseCase CRUD de tipologías de material.
type MaterialUseCase struct {
	repo  repository.MaterialRepository
	cache CacheInvalidator
	log   *logger.Logger
}

// NewMaterialUseCase construye el caso de uso. cache puede ser nil.
func NewMaterialUseCase(repo repository.MaterialRepository, cache CacheInvalidator, log *logger.Logger) *MaterialUseCase {
	return &MaterialUseCase{repo: repo, cache: cache, log: log.Component("materials")}
}

func (uc *MaterialUseCase) invalidate(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo invalidar la caché de existencias")
	}
}

func (uc *MaterialUseCase) Create(ctx context.Context, in dto.MaterialRequest) (*dto.MaterialResponse, error) {
	now := time.Now()
	m := &entity.MaterialType{
		ID:           uuid.New().String(),
		Code:         in.Code,
		Name:         in.Name,
		Description:  in.Description,
		CERCode:      in.CERCode,
		Consortium:   in.Consortium,
		AveragePrice: in.AveragePrice,
		Active:       in.Active == nil || *in.Active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return ToMaterialResponse(m), nil
}

func (uc *MaterialUseCase) GetByID(ctx context.Context, id string) (*dto.MaterialResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return ToMaterialResponse(m), nil
}

// Update modifica un material. Si ya tiene movimientos solo se aceptan cambios de precio medio y activo.
func (uc *MaterialUseCase) Update(ctx context.Context, id string, in dto.MaterialRequest) (*dto.MaterialResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	identityChanged := m.Code != in.Code || m.Name != in.Name || m.Description != in.Description ||
		m.CERCode != in.CERCode || m.Consortium != in.Consortium
	if identityChanged {
		used, err := uc.repo.IsReferenced(ctx, id)
		if err != nil {
			return nil, err
		}
		if used {
			return nil, fmt.Errorf("%w: material con movimientos, solo se puede modificar precio medio y estado", domain.ErrConflict)
		}
		m.Code, m.Name, m.Description, m.CERCode, m.Consortium = in.Code, in.Name, in.Description, in.CERCode, in.Consortium
	}
	m.AveragePrice = in.AveragePrice
	if in.Active != nil {
		m.Active = *in.Active
	}
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return ToMaterialResponse(m), nil
}

// Delete elimina un material sin movimientos.
func (uc *MaterialUseCase) Delete(ctx context.Context, id string) error {
	used, err := uc.repo.IsReferenced(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return fmt.Errorf("%w: material con movimientos", domain.ErrConflict)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

func (uc *MaterialUseCase) List(ctx context.Context, activeOnly bool) ([]dto.MaterialResponse, error) {
	list, err := uc.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *ToMaterialResponse(m))
	}
	return items, nil
}

// ToMaterialResponse entity → DTO.
func ToMaterialResponse(m *entity.MaterialType) *dto.MaterialResponse {
	return &dto.MaterialResponse{
		ID:           m.ID,
		Code:         m.Code,
		Name:         m.Name,
		Description:  m.Description,
		CERCode:      m.CERCode,
		Consortium:   m.Consortium,
		AveragePrice: m.AveragePrice,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
