package quality

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
	"github.com/jhoicas/Reciclaje-api/internal/application/notify"
	"github.com/jhoicas/Reciclaje-api/internal/application/ports"
	"github.com/jhoicas/Reciclaje-api/internal/domain"
	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/domain/quality"
	"github.com/jhoicas/Reciclaje-api/internal/domain/repository"
	"github.com/jhoicas/Reciclaje-api/pkg/logger"
)

// SampleUseCase análisis de calidad.
type SampleUseCase struct {
	samples        repository.SampleRepository
	flows          repository.FlowRepository
	municipalities repository.MunicipalityRepository
	intakes        repository.IntakeRepository
	exporter       ports.Exporter
	metrics        Metrics
	notifier       notify.Publisher
	log            *logger.Logger
	now            func() time.Time
}

// Deps dependencias del caso de uso. Metrics y Notifier son opcionales; sin Intakes los
// cálculos no incluyen el importe neto.
type Deps struct {
	Samples        repository.SampleRepository
	Flows          repository.FlowRepository
	Municipalities repository.MunicipalityRepository
	Intakes        repository.IntakeRepository
	Exporter       ports.Exporter
	Metrics        Metrics
	Notifier       notify.Publisher
	Now            func() time.Time
}

// NewSampleUseCase construye el caso de uso.
func NewSampleUseCase(d Deps, log *logger.Logger) *SampleUseCase {
	now := d.Now
	if now == nil {
		now = time.Now
	}
	return &SampleUseCase{
		samples:        d.Samples,
		flows:          d.Flows,
		municipalities: d.Municipalities,
		intakes:        d.Intakes,
		exporter:       d.Exporter,
		metrics:        d.Metrics,
		notifier:       d.Notifier,
		log:            log.Component("quality"),
		now:            now,
	}
}

// Create registra un análisis siempre en borrador.
func (uc *SampleUseCase) Create(ctx context.Context, in dto.SampleRequest) (*dto.SampleResponse, error) {
	now := uc.now()
	s := &entity.QualitySample{ID: uuid.New().String(), CreatedAt: now}
	if err := uc.apply(ctx, s, in); err != nil {
		return nil, err
	}
	s.UpdatedAt = now
	if err := uc.samples.Create(ctx, s); err != nil {
		return nil, err
	}
	return ToSampleResponse(s), nil
}

func (uc *SampleUseCase) GetByID(ctx context.Context, id string) (*dto.SampleResponse, error) {
	s, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToSampleResponse(s), nil
}

// Update modifica un borrador. Un análisis validado debe desvalidarse antes.
func (uc *SampleUseCase) Update(ctx context.Context, id string, in dto.SampleRequest) (*dto.SampleResponse, error) {
	s, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.Validated {
		return nil, fmt.Errorf("%w: análisis validado, desvalidar antes de modificar", domain.ErrConflict)
	}
	if err := uc.apply(ctx, s, in); err != nil {
		return nil, err
	}
	s.UpdatedAt = uc.now()
	if err := uc.samples.Update(ctx, s); err != nil {
		return nil, err
	}
	return ToSampleResponse(s), nil
}

func (uc *SampleUseCase) Delete(ctx context.Context, id string) error {
	return uc.samples.Delete(ctx, id)
}

func (uc *SampleUseCase) List(ctx context.Context, q dto.SampleQuery) (*dto.SampleListResponse, error) {
	q.DefaultPage()
	f, err := sampleFilter(q.DateRangeQuery, q.MunicipalityID, q.FlowID)
	if err != nil {
		return nil, err
	}
	f.Validated = q.Validated
	f.Page = repository.Page{Limit: q.Limit, Offset: q.Offset}
	list, total, err := uc.samples.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("listar análisis: %w", err)
	}
	items := make([]dto.SampleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *ToSampleResponse(s))
	}
	return &dto.SampleListResponse{Items: items, Page: dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total}}, nil
}

// Validate pasa el análisis a validado, evalúa la conformidad con los límites del flujo
// y guarda el veredicto junto al análisis.
func (uc *SampleUseCase) Validate(ctx context.Context, id, userID string) (*dto.ValidateResponse, error) {
	s, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.Validated {
		return nil, fmt.Errorf("%w: análisis ya validado", domain.ErrConflict)
	}
	if err := quality.Validate(s.Percentages); err != nil {
		return nil, err
	}
	flow, err := uc.flowOf(ctx, s)
	if err != nil {
		return nil, err
	}

	verdict := quality.Evaluate(s.Percentages, quality.LimitsOf(flow))
	now := uc.now()
	conforming := verdict.Conforming
	s.Validated = true
	s.ValidatedAt = &now
	s.ValidatedBy = userID
	s.Conforming = &conforming
	s.Violations = verdict.Violations
	s.UpdatedAt = now
	if err := uc.samples.Update(ctx, s); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.SampleValidated(conforming)
	}
	uc.log.Info().Str("sample_id", s.ID).Str("flow", flow.Code).Bool("conforme", conforming).Strs("violations", verdict.Violations).Msg("análisis validado")
	if uc.notifier != nil {
		if conforming {
			uc.notifier.Publish(notify.TypeSuccess, "Análisis validado", fmt.Sprintf("Muestra %s conforme al flujo %s", s.FormNumber, flow.Code))
		} else {
			uc.notifier.Publish(notify.TypeWarning, "Análisis no conforme", fmt.Sprintf("Muestra %s: %s", s.FormNumber, strings.Join(verdict.Violations, ", ")))
		}
	}

	return &dto.ValidateResponse{
		Sample:     *ToSampleResponse(s),
		Conformity: toConformityResponse(s.ID, s.Percentages, flow, verdict),
	}, nil
}

// BulkValidate valida cada análisis por separado; un fallo no detiene el resto.
// Los errores no previstos se registran y se devuelven como INTERNAL sin detalle.
func (uc *SampleUseCase) BulkValidate(ctx context.Context, ids []string, userID string) *dto.BulkValidateResponse {
	out := &dto.BulkValidateResponse{Items: make([]dto.BulkValidateItem, 0, len(ids))}
	for _, id := range ids {
		res, err := uc.Validate(ctx, id, userID)
		if err != nil {
			code, msg := itemError(err)
			if code == codeInternal {
				uc.log.Error().Err(err).Str("sample_id", id).Msg("validación masiva")
			}
			out.Failed++
			out.Items = append(out.Items, dto.BulkValidateItem{ID: id, Code: code, Error: msg})
			continue
		}
		conforme := res.Conformity.Conforme
		out.Validated++
		out.Items = append(out.Items, dto.BulkValidateItem{ID: id, OK: true, Conforme: &conforme})
	}
	return out
}

// Unvalidate devuelve el análisis a borrador y descarta el veredicto almacenado.
func (uc *SampleUseCase) Unvalidate(ctx context.Context, id string) (*dto.SampleResponse, error) {
	s, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.Validated {
		return nil, fmt.Errorf("%w: el análisis está en borrador", domain.ErrConflict)
	}
	s.Validated = false
	s.ValidatedAt = nil
	s.ValidatedBy = ""
	s.Conforming = nil
	s.Violations = nil
	s.UpdatedAt = uc.now()
	if err := uc.samples.Update(ctx, s); err != nil {
		return nil, err
	}
	uc.log.Info().Str("sample_id", s.ID).Msg("análisis devuelto a borrador")
	return ToSampleResponse(s), nil
}

// Duplicate copia un análisis en un nuevo borrador con la fecha indicada (hoy por defecto).
func (uc *SampleUseCase) Duplicate(ctx context.Context, id string, in dto.DuplicateSampleRequest) (*dto.SampleResponse, error) {
	src, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	date := today(now)
	if in.SampleDate != "" {
		if date, err = dto.ParseDate(in.SampleDate); err != nil {
			return nil, err
		}
	}
	cp := &entity.QualitySample{
		ID:             uuid.New().String(),
		SampleDate:     date,
		FormNumber:     src.FormNumber,
		FormDate:       src.FormDate,
		MunicipalityID: src.MunicipalityID,
		FlowID:         src.FlowID,
		Percentages:    src.Percentages,
		SampleWeightKg: src.SampleWeightKg,
		Notes:          src.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.samples.Create(ctx, cp); err != nil {
		return nil, err
	}
	return ToSampleResponse(cp), nil
}

// Conformity evalúa el análisis con los límites actuales del flujo sin modificarlo.
func (uc *SampleUseCase) Conformity(ctx context.Context, id string) (*dto.ConformityResponse, error) {
	s, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	flow, err := uc.flowOf(ctx, s)
	if err != nil {
		return nil, err
	}
	resp := toConformityResponse(s.ID, s.Percentages, flow, quality.Evaluate(s.Percentages, quality.LimitsOf(flow)))
	return &resp, nil
}

// Statistics resumen de los análisis que cumplen el filtro.
func (uc *SampleUseCase) Statistics(ctx context.Context, q dto.StatisticsQuery) (*dto.StatisticsResponse, error) {
	f, err := sampleFilter(q.DateRangeQuery, q.MunicipalityID, q.FlowID)
	if err != nil {
		return nil, err
	}
	list, _, err := uc.samples.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("estadísticas de calidad: %w", err)
	}
	flows, err := uc.flowIndex(ctx)
	if err != nil {
		return nil, err
	}
	st := quality.Summarize(list, flows)

	out := &dto.StatisticsResponse{
		Total:         st.Total,
		Validated:     st.Validated,
		Pending:       st.Pending,
		ConformingPct: st.ConformingPct,
		Average:       ToPercentagesDTO(st.Average),
		ByFlow:        make([]dto.FlowConformityDTO, 0, len(st.ByFlow)),
		Violations:    make([]dto.ViolationFrequencyDTO, 0, len(st.Violations)),
	}
	for _, fc := range st.ByFlow {
		out.ByFlow = append(out.ByFlow, dto.FlowConformityDTO{
			FlowID: fc.FlowID, FlowCode: fc.FlowCode, Validated: fc.Total, Conforming: fc.Conforming, ConformingPct: fc.ConformingPct,
		})
	}
	names, err := uc.municipalityNames(ctx)
	if err != nil {
		return nil, err
	}
	out.ByMunicipality = make([]dto.MunicipalityConformityDTO, 0, len(st.ByMunicipality))
	for _, mc := range st.ByMunicipality {
		out.ByMunicipality = append(out.ByMunicipality, dto.MunicipalityConformityDTO{
			MunicipalityID:   mc.MunicipalityID,
			MunicipalityName: names[mc.MunicipalityID],
			Total:            mc.Total,
			Validated:        mc.Validated,
			Conforming:       mc.Conforming,
			ConformingPct:    mc.ConformingPct,
		})
	}
	for _, v := range st.Violations {
		out.Violations = append(out.Violations, dto.ViolationFrequencyDTO{Code: v.Code, Occurrences: v.Occurrences, Pct: v.Pct})
	}
	return out, nil
}

// MovingAverage media cuatrimestral de los análisis validados de un comune en un flujo.
// Con al menos un análisis se evalúa también la media frente a los límites del flujo.
func (uc *SampleUseCase) MovingAverage(ctx context.Context, q dto.MovingAverageQuery) (*dto.MovingAverageResponse, error) {
	ref := today(uc.now())
	if q.Date != "" {
		d, err := dto.ParseDate(q.Date)
		if err != nil {
			return nil, err
		}
		ref = d
	}
	flow, err := uc.flows.GetByID(ctx, q.FlowID)
	if err != nil {
		return nil, err
	}
	if flow == nil {
		return nil, domain.ErrNotFound
	}
	ma, err := uc.movingAverage(ctx, ref, q.MunicipalityID, q.FlowID)
	if err != nil {
		return nil, err
	}
	out := &dto.MovingAverageResponse{
		MunicipalityID: q.MunicipalityID,
		FlowID:         q.FlowID,
		From:           dto.FormatDate(ma.From),
		To:             dto.FormatDate(ma.To),
		SampleCount:    ma.SampleCount,
		SampleIDs:      ma.SampleIDs,
		Average:        ToPercentagesDTO(ma.Average),
	}
	if ma.SampleCount > 0 {
		out.FastConforming = quality.FastConforming(ma.Average)
		c := toConformityResponse("", ma.Average, flow, quality.Evaluate(ma.Average, quality.LimitsOf(flow)))
		out.Conformity = &c
	}
	return out, nil
}

// Calculations cuotas del consorcio, conformidad e importe neto de un análisis.
// La composición es la media móvil cuatrimestral del municipio y flujo a la fecha del análisis;
// sin análisis validados en la ventana se usa el propio análisis. El importe se calcula
// sobre las entregas del municipio en ese flujo durante el mes del análisis.
func (uc *SampleUseCase) Calculations(ctx context.Context, id string) (*dto.CalculationsResponse, error) {
	s, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	flow, err := uc.flowOf(ctx, s)
	if err != nil {
		return nil, err
	}
	ma, err := uc.movingAverage(ctx, s.SampleDate, s.MunicipalityID, s.FlowID)
	if err != nil {
		return nil, err
	}
	basis, p := "moving_average", ma.Average
	if ma.SampleCount == 0 {
		basis, p = "sample", s.Percentages
	}
	shares := quality.ComputeShares(p)
	out := &dto.CalculationsResponse{
		SampleID: s.ID,
		Basis:    basis,
		MovingAverage: dto.MovingAverageDTO{
			From:        dto.FormatDate(ma.From),
			To:          dto.FormatDate(ma.To),
			SampleCount: ma.SampleCount,
			Average:     ToPercentagesDTO(ma.Average),
		},
		Shares: dto.SharesDTO{
			TotalPackaging:  shares.TotalPackaging,
			PetTotal:        shares.PetTotal,
			PetShare:        shares.PetShare,
			OtherCPLShare:   shares.OtherCPLShare,
			TracersShare:    shares.TracersShare,
			CratesShare:     shares.CratesShare,
			MiscShare:       shares.MiscShare,
			ConsortiumTotal: shares.ConsortiumTotal,
		},
		Conformity: toConformityResponse(s.ID, p, flow, quality.Evaluate(p, quality.LimitsOf(flow))),
	}
	if uc.intakes == nil {
		return out, nil
	}

	from := time.Date(s.SampleDate.Year(), s.SampleDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	intakes, _, err := uc.intakes.List(ctx, repository.MovementFilter{
		Period:         repository.Period{From: &from, To: &to},
		MunicipalityID: s.MunicipalityID,
		FlowID:         s.FlowID,
	})
	if err != nil {
		return nil, fmt.Errorf("ingresos del mes: %w", err)
	}
	var qty decimal.Decimal
	for _, in := range intakes {
		qty = qty.Add(in.QuantityKg)
	}
	if qty.IsPositive() {
		fee := quality.ComputeNetFee(qty, p, flow)
		out.Fee = &dto.NetFeeDTO{
			QuantityKg:        fee.QuantityKg,
			ConsortiumTonnes:  fee.ConsortiumTonnes,
			UnitFee:           fee.UnitFee,
			Gross:             fee.Gross,
			ForeignExcessKg:   fee.ForeignExcessKg,
			ForeignExcessCost: fee.ForeignExcessCost,
			Net:               fee.Net,
		}
	}
	return out, nil
}

// ExportXLSX análisis filtrados en hoja de cálculo.
func (uc *SampleUseCase) ExportXLSX(ctx context.Context, q dto.SampleQuery) ([]byte, error) {
	t, err := uc.table(ctx, q)
	if err != nil {
		return nil, err
	}
	return uc.exporter.XLSX(t)
}

// ExportCSV análisis filtrados en CSV.
func (uc *SampleUseCase) ExportCSV(ctx context.Context, q dto.SampleQuery) ([]byte, error) {
	t, err := uc.table(ctx, q)
	if err != nil {
		return nil, err
	}
	return uc.exporter.CSV(t)
}

func (uc *SampleUseCase) table(ctx context.Context, q dto.SampleQuery) (ports.Table, error) {
	f, err := sampleFilter(q.DateRangeQuery, q.MunicipalityID, q.FlowID)
	if err != nil {
		return ports.Table{}, err
	}
	f.Validated = q.Validated
	list, _, err := uc.samples.List(ctx, f)
	if err != nil {
		return ports.Table{}, fmt.Errorf("exportar análisis: %w", err)
	}
	flows, err := uc.flowIndex(ctx)
	if err != nil {
		return ports.Table{}, err
	}
	names, err := uc.municipalityNames(ctx)
	if err != nil {
		return ports.Table{}, err
	}

	t := ports.Table{Sheet: "Análisis", Headers: []string{"Fecha", "Formulario", "Municipio", "Flujo"}}
	for _, np := range (entity.Percentages{}).Fields() {
		t.Headers = append(t.Headers, np.Field)
	}
	t.Headers = append(t.Headers, "Total", "Estado", "Conforme", "Violaciones")

	for _, s := range list {
		flowCode := ""
		if fl := flows[s.FlowID]; fl != nil {
			flowCode = fl.Code
		}
		row := []any{s.SampleDate, s.FormNumber, names[s.MunicipalityID], flowCode}
		for _, np := range s.Percentages.Fields() {
			row = append(row, np.Value)
		}
		conforme := ""
		if s.Conforming != nil {
			conforme = map[bool]string{true: "si", false: "no"}[*s.Conforming]
		}
		row = append(row, quality.Sum(s.Percentages), s.Status(), conforme, strings.Join(s.Violations, ", "))
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func (uc *SampleUseCase) movingAverage(ctx context.Context, ref time.Time, municipalityID, flowID string) (quality.MovingAverage, error) {
	validated := true
	from := ref.AddDate(0, -quality.MovingAverageMonths, 0)
	list, _, err := uc.samples.List(ctx, repository.SampleFilter{
		Period:         repository.Period{From: &from, To: &ref},
		MunicipalityID: municipalityID,
		FlowID:         flowID,
		Validated:      &validated,
	})
	if err != nil {
		return quality.MovingAverage{}, fmt.Errorf("media móvil: %w", err)
	}
	return quality.QuarterlyMovingAverage(ref, list), nil
}

func (uc *SampleUseCase) municipalityNames(ctx context.Context) (map[string]string, error) {
	names := map[string]string{}
	if uc.municipalities == nil {
		return names, nil
	}
	ms, _, err := uc.municipalities.List(ctx, repository.MunicipalityFilter{})
	if err != nil {
		return nil, err
	}
	for _, m := range ms {
		names[m.ID] = m.Name
	}
	return names, nil
}

func (uc *SampleUseCase) get(ctx context.Context, id string) (*entity.QualitySample, error) {
	s, err := uc.samples.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// flowOf el flujo es obligatorio para evaluar; un flujo borrado se trata como ausente.
func (uc *SampleUseCase) flowOf(ctx context.Context, s *entity.QualitySample) (*entity.CollectionFlow, error) {
	if s.FlowID == "" {
		return nil, domain.ErrMissingFlow
	}
	flow, err := uc.flows.GetByID(ctx, s.FlowID)
	if err != nil {
		return nil, err
	}
	if flow == nil {
		return nil, fmt.Errorf("%w: flujo %s", domain.ErrMissingFlow, s.FlowID)
	}
	return flow, nil
}

func (uc *SampleUseCase) flowIndex(ctx context.Context) (map[string]*entity.CollectionFlow, error) {
	flows, err := uc.flows.List(ctx, false)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]*entity.CollectionFlow, len(flows))
	for _, f := range flows {
		idx[f.ID] = f
	}
	return idx, nil
}

func (uc *SampleUseCase) apply(ctx context.Context, s *entity.QualitySample, in dto.SampleRequest) error {
	date, err := dto.ParseDate(in.SampleDate)
	if err != nil {
		return err
	}
	formDate, err := dto.ParseOptionalDate(in.FormDate)
	if err != nil {
		return err
	}
	p := ToPercentages(in.PercentagesDTO)
	if err := quality.Validate(p); err != nil {
		return err
	}
	m, err := uc.municipalities.GetByID(ctx, in.MunicipalityID)
	if err != nil {
		return err
	}
	if m == nil {
		return &domain.ReferenceError{Entity: "municipio", ID: in.MunicipalityID}
	}
	flow, err := uc.flows.GetByID(ctx, in.FlowID)
	if err != nil {
		return err
	}
	if flow == nil {
		return fmt.Errorf("%w: flujo %s", domain.ErrMissingFlow, in.FlowID)
	}
	if total, warn := quality.SumWarning(p); warn {
		uc.log.Warn().Str("form_number", in.FormNumber).Str("total", total.String()).Msg("la suma de fracciones supera 100%")
	}

	s.SampleDate = date
	s.FormNumber = in.FormNumber
	s.FormDate = formDate
	s.MunicipalityID = in.MunicipalityID
	s.FlowID = in.FlowID
	s.Percentages = p
	s.SampleWeightKg = in.SampleWeightKg
	s.Notes = in.Notes
	return nil
}

func sampleFilter(r dto.DateRangeQuery, municipalityID, flowID string) (repository.SampleFilter, error) {
	from, to, err := r.Bounds()
	if err != nil {
		return repository.SampleFilter{}, err
	}
	return repository.SampleFilter{
		Period:         repository.Period{From: from, To: to},
		MunicipalityID: municipalityID,
		FlowID:         flowID,
	}, nil
}

const codeInternal = "INTERNAL"

// itemError código y mensaje de un fallo por elemento, con el mismo esquema que las respuestas HTTP.
func itemError(err error) (code, message string) {
	var perr *quality.ValidationError
	if errors.As(err, &perr) {
		return "INVALID_PERCENTAGE", perr.Error()
	}
	if code := domain.ErrorCode(err); code != "" {
		return code, err.Error()
	}
	return codeInternal, "error interno"
}

func today(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
