// Package reports informes agregados sobre los libros de movimientos.
package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
	"github.com/jhoicas/Reciclaje-api/internal/domain"
	"github.com/jhoicas/Reciclaje-api/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// ReportUseCase informes mensuales y tendencia de recogida.
type ReportUseCase struct {
	intakes        repository.IntakeRepository
	processing     repository.ProcessingRepository
	outbounds      repository.OutboundRepository
	municipalities repository.MunicipalityRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	intakes repository.IntakeRepository,
	processing repository.ProcessingRepository,
	outbounds repository.OutboundRepository,
	municipalities repository.MunicipalityRepository,
) *ReportUseCase {
	return &ReportUseCase{intakes: intakes, processing: processing, outbounds: outbounds, municipalities: municipalities}
}

// Monthly totales del mes, balance, tasa de lavorazione y conferito por comune (descendente).
func (uc *ReportUseCase) Monthly(ctx context.Context, q dto.MonthlyReportQuery) (*dto.MonthlyReportResponse, error) {
	if q.Month < 1 || q.Month > 12 {
		return nil, fmt.Errorf("%w: mes %d", domain.ErrInvalidInput, q.Month)
	}
	from := time.Date(q.Year, time.Month(q.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	f := repository.MovementFilter{Period: repository.Period{From: &from, To: &to}}

	intakes, _, err := uc.intakes.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("informe mensual: %w", err)
	}
	processing, _, err := uc.processing.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("informe mensual: %w", err)
	}
	outbounds, _, err := uc.outbounds.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("informe mensual: %w", err)
	}
	municipalities, _, err := uc.municipalities.List(ctx, repository.MunicipalityFilter{})
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(municipalities))
	for _, m := range municipalities {
		names[m.ID] = m.Name
	}

	out := &dto.MonthlyReportResponse{Year: q.Year, Month: q.Month, Municipalities: []dto.MunicipalityTotal{}}
	byMunicipality := map[string]*dto.MunicipalityTotal{}
	for _, in := range intakes {
		out.IntakeKg = out.IntakeKg.Add(in.QuantityKg)
		out.IntakeCount++
		t, ok := byMunicipality[in.MunicipalityID]
		if !ok {
			t = &dto.MunicipalityTotal{MunicipalityID: in.MunicipalityID, Name: names[in.MunicipalityID]}
			byMunicipality[in.MunicipalityID] = t
		}
		t.QuantityKg = t.QuantityKg.Add(in.QuantityKg)
		t.Count++
	}
	for _, p := range processing {
		out.ProcessingKg = out.ProcessingKg.Add(p.QuantityKg)
		out.ProcessingCount++
	}
	for _, o := range outbounds {
		out.OutboundKg = out.OutboundKg.Add(o.QuantityKg)
		out.OutboundCount++
		if o.TotalValue != nil {
			out.OutboundValue = out.OutboundValue.Add(*o.TotalValue)
		}
	}
	out.BalanceKg = out.IntakeKg.Sub(out.OutboundKg).Sub(out.ProcessingKg)
	if out.IntakeKg.IsPositive() {
		out.ProcessingRate = out.ProcessingKg.Div(out.IntakeKg).Mul(hundred).Round(2)
	}

	for _, t := range byMunicipality {
		out.Municipalities = append(out.Municipalities, *t)
	}
	sort.Slice(out.Municipalities, func(i, j int) bool {
		a, b := out.Municipalities[i], out.Municipalities[j]
		if !a.QuantityKg.Equal(b.QuantityKg) {
			return a.QuantityKg.GreaterThan(b.QuantityKg)
		}
		return a.Name < b.Name
	})
	return out, nil
}

// CollectionTrend conferito mes a mes entre enero de FromYear y diciembre de ToYear; los meses sin datos valen cero.
func (uc *ReportUseCase) CollectionTrend(ctx context.Context, q dto.CollectionTrendQuery) (*dto.CollectionTrendResponse, error) {
	if q.ToYear < q.FromYear {
		return nil, fmt.Errorf("%w: to_year anterior a from_year", domain.ErrInvalidInput)
	}
	from := time.Date(q.FromYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(q.ToYear, time.December, 31, 0, 0, 0, 0, time.UTC)
	intakes, _, err := uc.intakes.List(ctx, repository.MovementFilter{Period: repository.Period{From: &from, To: &to}})
	if err != nil {
		return nil, fmt.Errorf("tendencia de recogida: %w", err)
	}

	months := (q.ToYear - q.FromYear + 1) * 12
	out := &dto.CollectionTrendResponse{Points: make([]dto.CollectionTrendPoint, months)}
	for i := range out.Points {
		out.Points[i] = dto.CollectionTrendPoint{Year: q.FromYear + i/12, Month: i%12 + 1}
	}
	for _, in := range intakes {
		i := (in.Date.Year()-q.FromYear)*12 + int(in.Date.Month()) - 1
		if i < 0 || i >= months {
			continue
		}
		out.Points[i].QuantityKg = out.Points[i].QuantityKg.Add(in.QuantityKg)
		out.Points[i].Count++
		out.TotalKg = out.TotalKg.Add(in.QuantityKg)
	}
	return out, nil
}
