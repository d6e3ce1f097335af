package ledger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
	"github.com/jhoicas/Reciclaje-api/internal/domain"
	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/domain/repository"
	"github.com/jhoicas/Reciclaje-api/pkg/logger"
)

// IntakeUseCase registro de conferimenti.
type IntakeUseCase struct {
	repo  repository.IntakeRepository
	refs  References
	cache CacheInvalidator
	log   *logger.Logger
}

// NewIntakeUseCase construye el caso de uso.
func NewIntakeUseCase(repo repository.IntakeRepository, refs References, cache CacheInvalidator, log *logger.Logger) *IntakeUseCase {
	return &IntakeUseCase{repo: repo, refs: refs, cache: cache, log: log.Component("intakes")}
}

func (uc *IntakeUseCase) Create(ctx context.Context, in dto.IntakeRequest) (*dto.IntakeResponse, error) {
	now := time.Now()
	intake := &entity.Intake{ID: uuid.New().String(), CreatedAt: now}
	if err := uc.apply(ctx, intake, in); err != nil {
		return nil, err
	}
	intake.UpdatedAt = now
	if err := uc.repo.Create(ctx, intake); err != nil {
		return nil, err
	}
	invalidate(ctx, uc.cache, uc.log)
	return ToIntakeResponse(intake), nil
}

func (uc *IntakeUseCase) GetByID(ctx context.Context, id string) (*dto.IntakeResponse, error) {
	intake, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if intake == nil {
		return nil, domain.ErrNotFound
	}
	return ToIntakeResponse(intake), nil
}

// Update corrige un conferimento por la misma vía de validación que el alta.
func (uc *IntakeUseCase) Update(ctx context.Context, id string, in dto.IntakeRequest) (*dto.IntakeResponse, error) {
	intake, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if intake == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.apply(ctx, intake, in); err != nil {
		return nil, err
	}
	intake.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, intake); err != nil {
		return nil, err
	}
	invalidate(ctx, uc.cache, uc.log)
	return ToIntakeResponse(intake), nil
}

func (uc *IntakeUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, uc.cache, uc.log)
	return nil
}

func (uc *IntakeUseCase) List(ctx context.Context, q dto.MovementQuery) (*dto.IntakeListResponse, error) {
	q.DefaultPage()
	from, to, err := q.Bounds()
	if err != nil {
		return nil, err
	}
	list, total, err := uc.repo.List(ctx, repository.MovementFilter{
		Period:         repository.Period{From: from, To: to},
		Page:           repository.Page{Limit: q.Limit, Offset: q.Offset},
		MunicipalityID: q.MunicipalityID,
		MaterialID:     q.MaterialID,
		FlowID:         q.FlowID,
	})
	if err != nil {
		return nil, fmt.Errorf("listar ingresos: %w", err)
	}
	items := make([]dto.IntakeResponse, 0, len(list))
	for _, in := range list {
		items = append(items, *ToIntakeResponse(in))
	}
	return &dto.IntakeListResponse{Items: items, Page: dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total}}, nil
}

// Summary total conferito por material en el período, ordenado por cantidad descendente.
func (uc *IntakeUseCase) Summary(ctx context.Context, q dto.DateRangeQuery) (*dto.IntakeSummaryResponse, error) {
	from, to, err := q.Bounds()
	if err != nil {
		return nil, err
	}
	list, _, err := uc.repo.List(ctx, repository.MovementFilter{Period: repository.Period{From: from, To: to}})
	if err != nil {
		return nil, fmt.Errorf("resumen de ingresos: %w", err)
	}
	materials, err := uc.refs.Materials.List(ctx, false)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(materials))
	for _, m := range materials {
		names[m.ID] = m.Name
	}

	byMaterial := map[string]*dto.IntakeSummaryItem{}
	out := &dto.IntakeSummaryResponse{
		From:  dto.FormatOptionalDate(from),
		To:    dto.FormatOptionalDate(to),
		Items: []dto.IntakeSummaryItem{},
	}
	for _, in := range list {
		item, ok := byMaterial[in.MaterialID]
		if !ok {
			item = &dto.IntakeSummaryItem{MaterialID: in.MaterialID, MaterialName: names[in.MaterialID]}
			byMaterial[in.MaterialID] = item
		}
		item.QuantityKg = item.QuantityKg.Add(in.QuantityKg)
		item.Count++
		out.TotalKg = out.TotalKg.Add(in.QuantityKg)
		out.TotalCount++
	}
	for _, item := range byMaterial {
		out.Items = append(out.Items, *item)
	}
	sort.Slice(out.Items, func(i, j int) bool {
		if !out.Items[i].QuantityKg.Equal(out.Items[j].QuantityKg) {
			return out.Items[i].QuantityKg.GreaterThan(out.Items[j].QuantityKg)
		}
		return out.Items[i].MaterialName < out.Items[j].MaterialName
	})
	return out, nil
}

func (uc *IntakeUseCase) apply(ctx context.Context, intake *entity.Intake, in dto.IntakeRequest) error {
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return err
	}
	formDate, err := dto.ParseOptionalDate(in.FormDate)
	if err != nil {
		return err
	}
	if !in.QuantityKg.IsPositive() {
		return fmt.Errorf("%w: quantity_kg debe ser positiva", domain.ErrInvalidInput)
	}
	flowID := emptyToNil(in.FlowID)
	if err := uc.refs.checkMunicipality(ctx, in.MunicipalityID); err != nil {
		return err
	}
	if err := uc.refs.checkMaterial(ctx, in.MaterialID); err != nil {
		return err
	}
	if err := uc.refs.checkFlow(ctx, flowID); err != nil {
		return err
	}
	intake.Date = date
	intake.FormNumber = in.FormNumber
	intake.FormDate = formDate
	intake.MunicipalityID = in.MunicipalityID
	intake.MaterialID = in.MaterialID
	intake.FlowID = flowID
	intake.QuantityKg = in.QuantityKg
	intake.Notes = in.Notes
	return nil
}

// ToIntakeResponse entity → DTO.
func ToIntakeResponse(in *entity.Intake) *dto.IntakeResponse {
	return &dto.IntakeResponse{
		ID:             in.ID,
		Date:           dto.FormatDate(in.Date),
		FormNumber:     in.FormNumber,
		FormDate:       dto.FormatOptionalDate(in.FormDate),
		MunicipalityID: in.MunicipalityID,
		MaterialID:     in.MaterialID,
		FlowID:         in.FlowID,
		QuantityKg:     in.QuantityKg,
		Notes:          in.Notes,
		CreatedAt:      in.CreatedAt,
		UpdatedAt:      in.UpdatedAt,
	}
}
