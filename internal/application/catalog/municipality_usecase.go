// Package catalog casos de uso de las tablas maestras: comuni, tipologías de material y flujos.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
	"github.com/jhoicas/Reciclaje-api/internal/domain"
	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/domain/repository"
)

// MunicipalityUseCase CRUD de comuni.
type MunicipalityUseCase struct {
	repo repository.MunicipalityRepository
}

// NewMunicipalityUseCase construye el caso de uso.
func NewMunicipalityUseCase(repo repository.MunicipalityRepository) *MunicipalityUseCase {
	return &MunicipalityUseCase{repo: repo}
}

// Create da de alta un comune. El código ISTAT no puede repetirse.
func (uc *MunicipalityUseCase) Create(ctx context.Context, in dto.MunicipalityRequest) (*dto.MunicipalityResponse, error) {
	now := time.Now()
	m := &entity.Municipality{ID: uuid.New().String(), CreatedAt: now}
	applyMunicipality(m, in)
	m.UpdatedAt = now
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return ToMunicipalityResponse(m), nil
}

// GetByID obtiene un comune.
func (uc *MunicipalityUseCase) GetByID(ctx context.Context, id string) (*dto.MunicipalityResponse, error) {
	m, err := uc.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToMunicipalityResponse(m), nil
}

// GetByIstatCode busca por código ISTAT.
func (uc *MunicipalityUseCase) GetByIstatCode(ctx context.Context, code string) (*dto.MunicipalityResponse, error) {
	m, err := uc.repo.GetByIstatCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return ToMunicipalityResponse(m), nil
}

// Update reemplaza los datos del comune.
func (uc *MunicipalityUseCase) Update(ctx context.Context, id string, in dto.MunicipalityRequest) (*dto.MunicipalityResponse, error) {
	m, err := uc.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	applyMunicipality(m, in)
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return ToMunicipalityResponse(m), nil
}

// ToggleDelegation invierte el estado de la delega ANCI-COREPLA.
func (uc *MunicipalityUseCase) ToggleDelegation(ctx context.Context, id string) (*dto.MunicipalityResponse, error) {
	m, err := uc.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	m.DelegationActive = !m.DelegationActive
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return ToMunicipalityResponse(m), nil
}

// Delete elimina un comune sin movimientos asociados.
func (uc *MunicipalityUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// List lista comuni con búsqueda por nombre.
func (uc *MunicipalityUseCase) List(ctx context.Context, q dto.MunicipalityQuery) (*dto.MunicipalityListResponse, error) {
	q.DefaultPage()
	list, total, err := uc.repo.List(ctx, repository.MunicipalityFilter{
		Page:             repository.Page{Limit: q.Limit, Offset: q.Offset},
		Search:           strings.TrimSpace(q.Search),
		DelegationActive: q.DelegationActive,
	})
	if err != nil {
		return nil, fmt.Errorf("listar comuni: %w", err)
	}
	items := make([]dto.MunicipalityResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *ToMunicipalityResponse(m))
	}
	return &dto.MunicipalityListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total},
	}, nil
}

func (uc *MunicipalityUseCase) mustGet(ctx context.Context, id string) (*entity.Municipality, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

func applyMunicipality(m *entity.Municipality, in dto.MunicipalityRequest) {
	m.IstatCode = in.IstatCode
	m.Name = strings.TrimSpace(in.Name)
	m.Province = strings.ToUpper(in.Province)
	m.Region = in.Region
	m.Population = in.Population
	m.DelegationActive = in.DelegationActive
	m.DelegationCode = in.DelegationCode
}

// ToMunicipalityResponse entity → DTO.
func ToMunicipalityResponse(m *entity.Municipality) *dto.MunicipalityResponse {
	return &dto.MunicipalityResponse{
		ID:               m.ID,
		IstatCode:        m.IstatCode,
		Name:             m.Name,
		Province:         m.Province,
		Region:           m.Region,
		Population:       m.Population,
		DelegationActive: m.DelegationActive,
		DelegationCode:   m.DelegationCode,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
