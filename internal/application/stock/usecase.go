package stock

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
	"github.com/jhoicas/Reciclaje-api/internal/application/notify"
	"github.com/jhoicas/Reciclaje-api/internal/application/ports"
	"github.com/jhoicas/Reciclaje-api/internal/domain"
	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/domain/repository"
	"github.com/jhoicas/Reciclaje-api/internal/domain/stock"
	"github.com/jhoicas/Reciclaje-api/pkg/logger"
)

// maxHistoryMonths límite de la serie histórica.
const maxHistoryMonths = 60

// UseCase giacenze derivadas de los libros de movimientos.
type UseCase struct {
	materials  repository.MaterialRepository
	intakes    repository.IntakeRepository
	processing repository.ProcessingRepository
	outbounds  repository.OutboundRepository
	snapshots  repository.SnapshotRepository
	tx         TxRunner
	cache      BalanceCache
	metrics    Metrics
	notifier   notify.Publisher
	exporter   ports.Exporter
	log        *logger.Logger
	now        func() time.Time
}

// Deps dependencias del caso de uso. Cache, Metrics y Notifier son opcionales.
type Deps struct {
	Materials  repository.MaterialRepository
	Intakes    repository.IntakeRepository
	Processing repository.ProcessingRepository
	Outbounds  repository.OutboundRepository
	Snapshots  repository.SnapshotRepository
	Tx         TxRunner
	Cache      BalanceCache
	Metrics    Metrics
	Notifier   notify.Publisher
	Exporter   ports.Exporter
	Now        func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(d Deps, log *logger.Logger) *UseCase {
	now := d.Now
	if now == nil {
		now = time.Now
	}
	return &UseCase{
		materials:  d.Materials,
		intakes:    d.Intakes,
		processing: d.Processing,
		outbounds:  d.Outbounds,
		snapshots:  d.Snapshots,
		tx:         d.Tx,
		cache:      d.Cache,
		metrics:    d.Metrics,
		notifier:   d.Notifier,
		exporter:   d.Exporter,
		log:        log.Component("stock"),
		now:        now,
	}
}

// Invalidate descarta la caché; lo usan los libros tras cada cambio.
func (uc *UseCase) Invalidate(ctx context.Context) error {
	if uc.cache == nil {
		return nil
	}
	return uc.cache.Invalidate(ctx)
}

// Balances giacenze a la fecha pedida (hoy por defecto). Sirve desde caché si existe.
func (uc *UseCase) Balances(ctx context.Context, q dto.StockQuery) (*dto.BalancesResponse, error) {
	ref, err := uc.referenceDate(q.Date)
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		cached, ok, err := uc.cache.Get(ctx, ref)
		if err != nil {
			uc.log.Warn().Err(err).Msg("lectura de caché de existencias fallida")
		} else if ok {
			resp := toBalancesResponse(ref, cached)
			resp.Cached = true
			return resp, nil
		}
	}
	balances, err := uc.compute(ctx, ref)
	if err != nil {
		return nil, err
	}
	uc.store(ctx, ref, balances)
	return toBalancesResponse(ref, balances), nil
}

// Refresh recalcula, sustituye las fotos de la fecha y avisa de los materiales en scorta bassa.
func (uc *UseCase) Refresh(ctx context.Context, in dto.RefreshRequest) (*dto.RefreshResponse, error) {
	ref, err := uc.referenceDate(in.Date)
	if err != nil {
		return nil, err
	}
	balances, err := uc.compute(ctx, ref)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	snaps := make([]*entity.StockSnapshot, 0, len(balances))
	for _, b := range balances {
		snaps = append(snaps, &entity.StockSnapshot{
			ID:            uuid.New().String(),
			ReferenceDate: ref,
			MaterialID:    b.MaterialID,
			QuantityKg:    b.QuantityKg,
			UnitValue:     b.UnitValue,
			TotalValue:    b.TotalValue,
			UpdatedAt:     now,
		})
	}
	if uc.tx != nil {
		err := uc.tx.RunSnapshots(ctx, func(repo repository.SnapshotRepository) error {
			return repo.Replace(ctx, ref, snaps)
		})
		if err != nil {
			return nil, fmt.Errorf("guardar fotos de existencias: %w", err)
		}
	}

	if err := uc.Invalidate(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo invalidar la caché de existencias")
	}
	uc.store(ctx, ref, balances)

	low := stock.LowStock(balances)
	if uc.metrics != nil {
		uc.metrics.StockRefreshed(len(low))
	}
	if uc.notifier != nil {
		for _, b := range low {
			uc.notifier.Publish(notify.TypeWarning, "Stock bajo",
				fmt.Sprintf("%s: %s kg", b.MaterialName, b.QuantityKg.StringFixed(0)))
		}
	}
	uc.log.Info().Str("date", dto.FormatDate(ref)).Int("materials", len(balances)).Int("low_stock", len(low)).Msg("existencias recalculadas")

	return &dto.RefreshResponse{
		BalancesResponse: *toBalancesResponse(ref, balances),
		RefreshedAt:      now,
		Snapshots:        len(snaps),
	}, nil
}

// Snapshots fotos persistidas por el último recálculo de la fecha (vacío si nunca se recalculó).
func (uc *UseCase) Snapshots(ctx context.Context, q dto.StockQuery) (*dto.SnapshotsResponse, error) {
	ref, err := uc.referenceDate(q.Date)
	if err != nil {
		return nil, err
	}
	list, err := uc.snapshots.ListByDate(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("leer fotos de existencias: %w", err)
	}
	out := &dto.SnapshotsResponse{Date: dto.FormatDate(ref), Items: make([]dto.SnapshotResponse, 0, len(list))}
	for _, s := range list {
		out.Items = append(out.Items, dto.SnapshotResponse{
			MaterialID: s.MaterialID,
			QuantityKg: s.QuantityKg,
			UnitValue:  s.UnitValue,
			TotalValue: s.TotalValue,
			UpdatedAt:  s.UpdatedAt,
		})
	}
	return out, nil
}

// History serie de fin de mes entre from y to.
func (uc *UseCase) History(ctx context.Context, q dto.HistoryQuery) (*dto.HistoryResponse, error) {
	from, err := dto.ParseDate(q.From)
	if err != nil {
		return nil, err
	}
	to, err := dto.ParseDate(q.To)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: 'to' anterior a 'from'", domain.ErrInvalidInput)
	}
	if to.After(from.AddDate(0, maxHistoryMonths, 0)) {
		return nil, fmt.Errorf("%w: rango máximo %d meses", domain.ErrInvalidInput, maxHistoryMonths)
	}
	materials, err := uc.materials.List(ctx, false)
	if err != nil {
		return nil, err
	}
	if q.MaterialID != "" && !containsMaterial(materials, q.MaterialID) {
		return nil, domain.ErrNotFound
	}
	ledger, err := uc.loadLedger(ctx, repository.Period{To: &to}, "")
	if err != nil {
		return nil, err
	}

	out := &dto.HistoryResponse{From: q.From, To: q.To, Series: []dto.TrendSeriesDTO{}}
	for _, s := range stock.Trend(from, to, materials, ledger, q.MaterialID) {
		series := dto.TrendSeriesDTO{MaterialID: s.MaterialID, MaterialName: s.MaterialName, Points: make([]dto.TrendPointDTO, 0, len(s.Points))}
		for _, p := range s.Points {
			series.Points = append(series.Points, dto.TrendPointDTO{Date: dto.FormatDate(p.Date), QuantityKg: p.QuantityKg})
		}
		out.Series = append(out.Series, series)
	}
	return out, nil
}

// Movements libro de almacén: unión firmada de los tres registros, del más reciente al más antiguo.
func (uc *UseCase) Movements(ctx context.Context, q dto.WarehouseMovementsQuery) (*dto.WarehouseMovementsResponse, error) {
	q.DefaultPage()
	from, to, err := q.Bounds()
	if err != nil {
		return nil, err
	}
	materials, err := uc.materials.List(ctx, false)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(materials))
	for _, m := range materials {
		names[m.ID] = m.Name
	}
	ledger, err := uc.loadLedger(ctx, repository.Period{From: from, To: to}, q.MaterialID)
	if err != nil {
		return nil, err
	}

	all := Merge(ledger, names)
	total := len(all)
	start := min(q.Offset, total)
	end := min(start+q.Limit, total)

	items := make([]dto.WarehouseMovementDTO, 0, end-start)
	for _, m := range all[start:end] {
		items = append(items, dto.WarehouseMovementDTO{
			Date:         dto.FormatDate(m.Date),
			Kind:         m.Kind,
			ReferenceID:  m.ReferenceID,
			MaterialID:   m.MaterialID,
			MaterialName: m.MaterialName,
			Description:  m.Description,
			QuantityKg:   m.QuantityKg,
			SignedKg:     m.QuantityKg.Mul(signOf(m.Sign)),
		})
	}
	return &dto.WarehouseMovementsResponse{Items: items, Page: dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total}}, nil
}

// ExportXLSX giacenze a la fecha en una hoja de cálculo.
func (uc *UseCase) ExportXLSX(ctx context.Context, q dto.StockQuery) ([]byte, error) {
	resp, err := uc.Balances(ctx, q)
	if err != nil {
		return nil, err
	}
	t := ports.Table{
		Sheet:   "Existencias " + resp.Date,
		Headers: []string{"Código", "Material", "Ingresado kg", "Salido kg", "Procesado kg", "Existencias kg", "Valor unitario", "Valor total", "Stock bajo"},
	}
	for _, b := range resp.Items {
		t.Rows = append(t.Rows, []any{b.MaterialCode, b.MaterialName, b.IntakeKg, b.OutboundKg, b.ProcessingKg, b.QuantityKg, b.UnitValue, b.TotalValue, b.IsLowStock})
	}
	return uc.exporter.XLSX(t)
}

func (uc *UseCase) referenceDate(s string) (time.Time, error) {
	if s == "" {
		now := uc.now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return dto.ParseDate(s)
}

func (uc *UseCase) compute(ctx context.Context, ref time.Time) ([]stock.Balance, error) {
	materials, err := uc.materials.List(ctx, false)
	if err != nil {
		return nil, err
	}
	ledger, err := uc.loadLedger(ctx, repository.Period{To: &ref}, "")
	if err != nil {
		return nil, err
	}
	return stock.Compute(ref, materials, ledger), nil
}

func (uc *UseCase) store(ctx context.Context, ref time.Time, balances []stock.Balance) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Set(ctx, ref, balances); err != nil {
		uc.log.Warn().Err(err).Msg("escritura de caché de existencias fallida")
	}
}

func (uc *UseCase) loadLedger(ctx context.Context, period repository.Period, materialID string) (stock.Ledger, error) {
	f := repository.MovementFilter{Period: period, MaterialID: materialID}
	intakes, _, err := uc.intakes.List(ctx, f)
	if err != nil {
		return stock.Ledger{}, fmt.Errorf("cargar ingresos: %w", err)
	}
	processing, _, err := uc.processing.List(ctx, f)
	if err != nil {
		return stock.Ledger{}, fmt.Errorf("cargar procesamientos: %w", err)
	}
	outbounds, _, err := uc.outbounds.List(ctx, f)
	if err != nil {
		return stock.Ledger{}, fmt.Errorf("cargar salidas: %w", err)
	}
	return stock.Ledger{Intakes: intakes, Processing: processing, Outbounds: outbounds}, nil
}

// Merge une los tres libros en líneas firmadas ordenadas por fecha descendente.
func Merge(ledger stock.Ledger, names map[string]string) []entity.WarehouseMovement {
	out := make([]entity.WarehouseMovement, 0, len(ledger.Intakes)+len(ledger.Processing)+len(ledger.Outbounds))
	for _, in := range ledger.Intakes {
		out = append(out, entity.WarehouseMovement{
			Date: in.Date, Kind: entity.MovementKindIntake, ReferenceID: in.ID,
			MaterialID: in.MaterialID, MaterialName: names[in.MaterialID],
			Description: "Formulario " + in.FormNumber, QuantityKg: in.QuantityKg, Sign: 1,
		})
	}
	for _, p := range ledger.Processing {
		out = append(out, entity.WarehouseMovement{
			Date: p.Date, Kind: entity.MovementKindProcessing, ReferenceID: p.ID,
			MaterialID: p.MaterialID, MaterialName: names[p.MaterialID],
			Description: p.Operation, QuantityKg: p.QuantityKg, Sign: -1,
		})
	}
	for _, o := range ledger.Outbounds {
		out = append(out, entity.WarehouseMovement{
			Date: o.Date, Kind: entity.MovementKindOutbound, ReferenceID: o.ID,
			MaterialID: o.MaterialID, MaterialName: names[o.MaterialID],
			Description: o.Recipient, QuantityKg: o.QuantityKg, Sign: -1,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ReferenceID < out[j].ReferenceID
	})
	return out
}

func toBalancesResponse(ref time.Time, balances []stock.Balance) *dto.BalancesResponse {
	qty, value := stock.Totals(balances)
	resp := &dto.BalancesResponse{
		Date:            dto.FormatDate(ref),
		Items:           make([]dto.BalanceResponse, 0, len(balances)),
		TotalQuantityKg: qty,
		TotalValue:      value,
		LowStockCount:   len(stock.LowStock(balances)),
	}
	for _, b := range balances {
		resp.Items = append(resp.Items, dto.BalanceResponse{
			MaterialID:   b.MaterialID,
			MaterialCode: b.MaterialCode,
			MaterialName: b.MaterialName,
			IntakeKg:     b.IntakeKg,
			OutboundKg:   b.OutboundKg,
			ProcessingKg: b.ProcessingKg,
			QuantityKg:   b.QuantityKg,
			UnitValue:    b.UnitValue,
			TotalValue:   b.TotalValue,
			IsLowStock:   b.IsLowStock,
			Negative:     b.Negative,
			Level:        b.Level,
		})
	}
	return resp
}

func containsMaterial(materials []*entity.MaterialType, id string) bool {
	for _, m := range materials {
		if m.ID == id {
			return true
		}
	}
	return false
}

func signOf(sign int) decimal.Decimal {
	return decimal.NewFromInt(int64(sign))
}
