// Package costs casos de uso de los costos operativos de la planta.
package costs

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
	"github.com/jhoicas/Reciclaje-api/internal/domain"
	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/domain/repository"
)

var kgPerTonne = decimal.NewFromInt(1000)

// CostUseCase costos operativos.
type CostUseCase struct {
	repo      repository.CostRepository
	materials repository.MaterialRepository
	intakes   repository.IntakeRepository
}

// NewCostUseCase construye el caso de uso.
func NewCostUseCase(repo repository.CostRepository, materials repository.MaterialRepository, intakes repository.IntakeRepository) *CostUseCase {
	return &CostUseCase{repo: repo, materials: materials, intakes: intakes}
}

func (uc *CostUseCase) Create(ctx context.Context, in dto.CostRequest) (*dto.CostResponse, error) {
	now := time.Now()
	c := &entity.Cost{ID: uuid.New().String(), CreatedAt: now}
	if err := uc.apply(ctx, c, in); err != nil {
		return nil, err
	}
	c.UpdatedAt = now
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return ToCostResponse(c), nil
}

func (uc *CostUseCase) GetByID(ctx context.Context, id string) (*dto.CostResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return ToCostResponse(c), nil
}

func (uc *CostUseCase) Update(ctx context.Context, id string, in dto.CostRequest) (*dto.CostResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.apply(ctx, c, in); err != nil {
		return nil, err
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return ToCostResponse(c), nil
}

func (uc *CostUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *CostUseCase) List(ctx context.Context, q dto.CostQuery) (*dto.CostListResponse, error) {
	q.DefaultPage()
	from, to, err := q.Bounds()
	if err != nil {
		return nil, err
	}
	list, total, err := uc.repo.List(ctx, repository.CostFilter{
		Period:     repository.Period{From: from, To: to},
		Page:       repository.Page{Limit: q.Limit, Offset: q.Offset},
		Category:   q.Category,
		MaterialID: q.MaterialID,
	})
	if err != nil {
		return nil, fmt.Errorf("listar costos: %w", err)
	}
	items := make([]dto.CostResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *ToCostResponse(c))
	}
	return &dto.CostListResponse{Items: items, Page: dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total}}, nil
}

// Summary costos del mes por categoría (todas las categorías, también a cero) y costo por tonelada conferita.
func (uc *CostUseCase) Summary(ctx context.Context, q dto.CostSummaryQuery) (*dto.CostSummaryResponse, error) {
	if q.Month < 1 || q.Month > 12 {
		return nil, fmt.Errorf("%w: mes %d", domain.ErrInvalidInput, q.Month)
	}
	from := time.Date(q.Year, time.Month(q.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	period := repository.Period{From: &from, To: &to}

	list, _, err := uc.repo.List(ctx, repository.CostFilter{Period: period})
	if err != nil {
		return nil, fmt.Errorf("resumen costos: %w", err)
	}
	byCategory := make(map[string]*dto.CostCategoryTotal, len(entity.CostCategories))
	out := &dto.CostSummaryResponse{Year: q.Year, Month: q.Month, Categories: make([]dto.CostCategoryTotal, 0, len(entity.CostCategories))}
	for _, cat := range entity.CostCategories {
		byCategory[cat] = &dto.CostCategoryTotal{Category: cat}
	}
	for _, c := range list {
		t, ok := byCategory[c.Category]
		if !ok {
			continue
		}
		t.Amount = t.Amount.Add(c.Amount)
		t.Count++
		out.Total = out.Total.Add(c.Amount)
	}
	for _, cat := range entity.CostCategories {
		out.Categories = append(out.Categories, *byCategory[cat])
	}

	intakes, _, err := uc.intakes.List(ctx, repository.MovementFilter{Period: period})
	if err != nil {
		return nil, fmt.Errorf("resumen costos: %w", err)
	}
	for _, in := range intakes {
		out.IntakeKg = out.IntakeKg.Add(in.QuantityKg)
	}
	if out.IntakeKg.IsPositive() {
		perTonne := out.Total.Div(out.IntakeKg.Div(kgPerTonne)).Round(2)
		out.CostPerTonne = &perTonne
	}
	return out, nil
}

func (uc *CostUseCase) apply(ctx context.Context, c *entity.Cost, in dto.CostRequest) error {
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return err
	}
	if !in.Amount.IsPositive() {
		return fmt.Errorf("%w: amount debe ser positivo", domain.ErrInvalidInput)
	}
	if !validCategory(in.Category) {
		return fmt.Errorf("%w: categoría %q", domain.ErrInvalidInput, in.Category)
	}
	materialID := in.MaterialID
	if materialID != nil && *materialID == "" {
		materialID = nil
	}
	if materialID != nil {
		m, err := uc.materials.GetByID(ctx, *materialID)
		if err != nil {
			return err
		}
		if m == nil {
			return &domain.ReferenceError{Entity: "material", ID: *materialID}
		}
	}
	c.Date = date
	c.Category = in.Category
	c.Description = in.Description
	c.Amount = in.Amount
	c.MaterialID = materialID
	c.Supplier = in.Supplier
	c.DocumentNumber = in.DocumentNumber
	c.Notes = in.Notes
	return nil
}

func validCategory(cat string) bool {
	for _, c := range entity.CostCategories {
		if c == cat {
			return true
		}
	}
	return false
}

// ToCostResponse entity → DTO.
func ToCostResponse(c *entity.Cost) *dto.CostResponse {
	return &dto.CostResponse{
		ID:             c.ID,
		Date:           dto.FormatDate(c.Date),
		Category:       c.Category,
		Description:    c.Description,
		Amount:         c.Amount,
		MaterialID:     c.MaterialID,
		Supplier:       c.Supplier,
		DocumentNumber: c.DocumentNumber,
		Notes:          c.Notes,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
