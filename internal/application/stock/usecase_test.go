package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
	"github.com/jhoicas/Reciclaje-api/internal/application/notify"
	appstock "github.com/jhoicas/Reciclaje-api/internal/application/stock"
	"github.com/jhoicas/Reciclaje-api/internal/domain"
	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/domain/stock"
	"github.com/jhoicas/Reciclaje-api/internal/infrastructure/export"
	"github.com/jhoicas/Reciclaje-api/internal/infrastructure/memory"
	"github.com/jhoicas/Reciclaje-api/pkg/logger"
)

type mapCache struct {
	data        map[string][]stock.Balance
	invalidated int
}

func newMapCache() *mapCache { return &mapCache{data: map[string][]stock.Balance{}} }

func (c *mapCache) Get(_ context.Context, ref time.Time) ([]stock.Balance, bool, error) {
	b, ok := c.data[ref.Format(dto.DateLayout)]
	return b, ok, nil
}

func (c *mapCache) Set(_ context.Context, ref time.Time, balances []stock.Balance) error {
	c.data[ref.Format(dto.DateLayout)] = balances
	return nil
}

func (c *mapCache) Invalidate(context.Context) error {
	c.invalidated++
	c.data = map[string][]stock.Balance{}
	return nil
}

type lowStockCounter struct{ last int }

func (m *lowStockCounter) StockRefreshed(n int) { m.last = n }

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func kg(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

type fixture struct {
	uc      *appstock.UseCase
	repos   memory.Repos
	cache   *mapCache
	metrics *lowStockCounter
	store   *notify.Store
	pet     string
	hdpe    string
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	repos := memory.NewStore().Repos()
	price := decimal.RequireFromString("0.25")
	f := &fixture{
		repos:   repos,
		cache:   newMapCache(),
		metrics: &lowStockCounter{},
		store:   notify.NewStore(nil),
		pet:     uuid.NewString(),
		hdpe:    uuid.NewString(),
	}
	require.NoError(t, repos.Materials.Create(ctx, &entity.MaterialType{ID: f.pet, Code: "PET", Name: "Bottiglie PET", AveragePrice: &price, Active: true}))
	require.NoError(t, repos.Materials.Create(ctx, &entity.MaterialType{ID: f.hdpe, Code: "HDPE", Name: "Flaconi HDPE", Active: true}))

	require.NoError(t, repos.Intakes.Create(ctx, &entity.Intake{ID: uuid.NewString(), MaterialID: f.pet, Date: day(2024, 3, 1), QuantityKg: kg(5000), FormNumber: "F1"}))
	require.NoError(t, repos.Outbounds.Create(ctx, &entity.Outbound{ID: uuid.NewString(), MaterialID: f.pet, Date: day(2024, 3, 10), QuantityKg: kg(2000), Recipient: "Riciclo Srl"}))
	require.NoError(t, repos.Processing.Create(ctx, &entity.ProcessingEvent{ID: uuid.NewString(), MaterialID: f.pet, Date: day(2024, 3, 15), QuantityKg: kg(500), Operation: entity.OperationBaling}))
	require.NoError(t, repos.Intakes.Create(ctx, &entity.Intake{ID: uuid.NewString(), MaterialID: f.hdpe, Date: day(2024, 3, 2), QuantityKg: kg(300), FormNumber: "F2"}))

	f.uc = appstock.NewUseCase(appstock.Deps{
		Materials:  repos.Materials,
		Intakes:    repos.Intakes,
		Processing: repos.Processing,
		Outbounds:  repos.Outbounds,
		Snapshots:  repos.Snapshots,
		Tx:         repos.Tx,
		Cache:      f.cache,
		Metrics:    f.metrics,
		Notifier:   f.store,
		Exporter:   export.New(),
		Now:        func() time.Time { return day(2024, 3, 31).Add(15 * time.Hour) },
	}, logger.Nop())
	return f
}

func find(items []dto.BalanceResponse, id string) dto.BalanceResponse {
	for _, b := range items {
		if b.MaterialID == id {
			return b
		}
	}
	return dto.BalanceResponse{}
}

func TestBalances_CalculaYCachea(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	first, err := f.uc.Balances(ctx, dto.StockQuery{})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-31", first.Date)
	assert.False(t, first.Cached)
	pet := find(first.Items, f.pet)
	assert.True(t, pet.QuantityKg.Equal(kg(2500)))
	assert.True(t, pet.TotalValue.Equal(kg(625)))
	assert.False(t, pet.IsLowStock)
	assert.True(t, find(first.Items, f.hdpe).IsLowStock)
	assert.Equal(t, 1, first.LowStockCount)
	assert.True(t, first.TotalQuantityKg.Equal(kg(2800)))

	second, err := f.uc.Balances(ctx, dto.StockQuery{})
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Items, second.Items)
}

func TestBalances_FechaAnteriorExcluyeMovimientosPosteriores(t *testing.T) {
	f := setup(t)

	resp, err := f.uc.Balances(context.Background(), dto.StockQuery{Date: "2024-03-05"})

	require.NoError(t, err)
	assert.True(t, find(resp.Items, f.pet).QuantityKg.Equal(kg(5000)))
}

func TestRefresh_GuardaFotosEInvalidaYAvisa(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	_, err := f.uc.Balances(ctx, dto.StockQuery{})
	require.NoError(t, err)

	resp, err := f.uc.Refresh(ctx, dto.RefreshRequest{})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Snapshots)
	assert.Equal(t, 1, f.cache.invalidated)
	assert.Equal(t, 1, f.metrics.last)
	notes := f.store.List()
	require.Len(t, notes, 1)
	assert.Equal(t, notify.TypeWarning, notes[0].Type)
	assert.Equal(t, "Stock bajo", notes[0].Title)
	assert.Contains(t, notes[0].Message, "Flaconi HDPE")

	snaps, err := f.uc.Snapshots(ctx, dto.StockQuery{Date: "2024-03-31"})
	require.NoError(t, err)
	assert.Len(t, snaps.Items, 2)

	// Recalcular la misma fecha sustituye las fotos en lugar de acumularlas.
	_, err = f.uc.Refresh(ctx, dto.RefreshRequest{Date: "2024-03-31"})
	require.NoError(t, err)
	snaps, err = f.uc.Snapshots(ctx, dto.StockQuery{Date: "2024-03-31"})
	require.NoError(t, err)
	assert.Len(t, snaps.Items, 2)
}

func TestHistory_SerieMensual(t *testing.T) {
	f := setup(t)

	resp, err := f.uc.History(context.Background(), dto.HistoryQuery{From: "2024-02-01", To: "2024-03-31", MaterialID: f.pet})

	require.NoError(t, err)
	require.Len(t, resp.Series, 1)
	require.Len(t, resp.Series[0].Points, 2)
	assert.True(t, resp.Series[0].Points[0].QuantityKg.IsZero())
	assert.True(t, resp.Series[0].Points[1].QuantityKg.Equal(kg(2500)))
}

func TestHistory_RangoInvertidoYMaterialDesconocido(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.uc.History(ctx, dto.HistoryQuery{From: "2024-03-01", To: "2024-01-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.History(ctx, dto.HistoryQuery{From: "2024-01-01", To: "2024-03-01", MaterialID: uuid.NewString()})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMovements_UnionFirmadaPaginada(t *testing.T) {
	f := setup(t)
	q := dto.WarehouseMovementsQuery{MaterialID: f.pet}
	q.Limit = 2

	resp, err := f.uc.Movements(context.Background(), q)

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Page.Total)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, entity.MovementKindProcessing, resp.Items[0].Kind)
	assert.True(t, resp.Items[0].SignedKg.Equal(kg(-500)))
	assert.Equal(t, entity.MovementKindOutbound, resp.Items[1].Kind)
	assert.Equal(t, "Bottiglie PET", resp.Items[1].MaterialName)

	q.Offset = 2
	resp, err = f.uc.Movements(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].SignedKg.Equal(kg(5000)))
}

func TestExportXLSX(t *testing.T) {
	f := setup(t)

	b, err := f.uc.ExportXLSX(context.Background(), dto.StockQuery{})

	require.NoError(t, err)
	assert.NotEmpty(t, b)
}

func TestBalances_MaterialInactivoConservaSusExistencias(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	pet, err := f.repos.Materials.GetByID(ctx, f.pet)
	require.NoError(t, err)
	pet.Active = false
	require.NoError(t, f.repos.Materials.Update(ctx, pet))

	resp, err := f.uc.Balances(ctx, dto.StockQuery{})

	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.True(t, find(resp.Items, f.pet).QuantityKg.Equal(kg(2500)))
	assert.True(t, resp.TotalQuantityKg.Equal(kg(2800)))

	refreshed, err := f.uc.Refresh(ctx, dto.RefreshRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, refreshed.Snapshots)

	hist, err := f.uc.History(ctx, dto.HistoryQuery{From: "2024-03-01", To: "2024-03-31", MaterialID: f.pet})
	require.NoError(t, err)
	require.Len(t, hist.Series, 1)
	assert.True(t, hist.Series[0].Points[0].QuantityKg.Equal(kg(2500)))
}
