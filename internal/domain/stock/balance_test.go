package stock_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/domain/stock"
)

func kg(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func pet() *entity.MaterialType {
	price := decimal.NewFromFloat(0.25)
	return &entity.MaterialType{ID: "pet", Code: "PET", Name: "Bottiglie PET", AveragePrice: &price}
}

func TestCompute_EjemploPET(t *testing.T) {
	ref := day(2024, 3, 31)
	ledger := stock.Ledger{
		Intakes:    []*entity.Intake{{MaterialID: "pet", Date: day(2024, 3, 1), QuantityKg: kg(5000)}},
		Outbounds:  []*entity.Outbound{{MaterialID: "pet", Date: day(2024, 3, 10), QuantityKg: kg(2000)}},
		Processing: []*entity.ProcessingEvent{{MaterialID: "pet", Date: day(2024, 3, 15), QuantityKg: kg(500)}},
	}

	balances := stock.Compute(ref, []*entity.MaterialType{pet()}, ledger)

	require.Len(t, balances, 1)
	b := balances[0]
	assert.True(t, b.QuantityKg.Equal(kg(2500)), b.QuantityKg.String())
	assert.False(t, b.IsLowStock)
	assert.False(t, b.Negative)
	assert.Equal(t, stock.LevelNormal, b.Level)
	assert.True(t, b.UnitValue.Equal(decimal.NewFromFloat(0.25)))
	assert.True(t, b.TotalValue.Equal(decimal.NewFromInt(625)))
	assert.True(t, b.IntakeKg.Equal(kg(5000)))
	assert.True(t, b.OutboundKg.Equal(kg(2000)))
	assert.True(t, b.ProcessingKg.Equal(kg(500)))
}

func TestCompute_NegativoNoSeRecorta(t *testing.T) {
	ledger := stock.Ledger{
		Intakes:   []*entity.Intake{{MaterialID: "pet", Date: day(2024, 1, 1), QuantityKg: kg(100)}},
		Outbounds: []*entity.Outbound{{MaterialID: "pet", Date: day(2024, 1, 2), QuantityKg: kg(150)}},
	}

	b := stock.Compute(day(2024, 1, 31), []*entity.MaterialType{pet()}, ledger)[0]

	assert.True(t, b.QuantityKg.Equal(kg(-50)), b.QuantityKg.String())
	assert.True(t, b.Negative)
	assert.True(t, b.IsLowStock)
	assert.Equal(t, stock.LevelLow, b.Level)
}

func TestCompute_SinMovimientosEsCeroYBajo(t *testing.T) {
	glass := &entity.MaterialType{ID: "glass", Name: "Vetro"}
	ledger := stock.Ledger{
		Intakes: []*entity.Intake{{MaterialID: "glass", Date: day(2024, 5, 1), QuantityKg: kg(9000)}},
	}

	b := stock.Compute(day(2024, 4, 30), []*entity.MaterialType{glass}, ledger)[0]

	assert.True(t, b.QuantityKg.IsZero())
	assert.True(t, b.IsLowStock)
	assert.True(t, b.UnitValue.IsZero(), "sin precio medio el valor unitario es 0")
	assert.True(t, b.TotalValue.IsZero())
}

func TestCompute_FechaDeReferenciaInclusiva(t *testing.T) {
	ref := day(2024, 2, 29)
	ledger := stock.Ledger{
		Intakes: []*entity.Intake{
			{MaterialID: "pet", Date: ref, QuantityKg: kg(1200)},
			{MaterialID: "pet", Date: ref.Add(time.Second), QuantityKg: kg(800)},
		},
	}

	b := stock.Compute(ref, []*entity.MaterialType{pet()}, ledger)[0]

	assert.True(t, b.QuantityKg.Equal(kg(1200)))
	assert.Equal(t, stock.LevelNormal, b.Level)
}

func TestCompute_MaterialFueraDelConjuntoSeExcluye(t *testing.T) {
	ledger := stock.Ledger{
		Intakes: []*entity.Intake{
			{MaterialID: "pet", Date: day(2024, 1, 1), QuantityKg: kg(700)},
			{MaterialID: "ghost", Date: day(2024, 1, 1), QuantityKg: kg(99999)},
		},
	}

	balances := stock.Compute(day(2024, 1, 31), []*entity.MaterialType{pet()}, ledger)

	require.Len(t, balances, 1)
	assert.Equal(t, "pet", balances[0].MaterialID)
	assert.Equal(t, stock.LevelMedium, balances[0].Level)
}

func TestCompute_Idempotente(t *testing.T) {
	ref := day(2024, 6, 30)
	materials := []*entity.MaterialType{pet(), {ID: "hdpe", Name: "HDPE"}}
	ledger := stock.Ledger{
		Intakes:    []*entity.Intake{{MaterialID: "pet", Date: day(2024, 6, 1), QuantityKg: kg(3000)}, {MaterialID: "hdpe", Date: day(2024, 6, 2), QuantityKg: kg(400)}},
		Processing: []*entity.ProcessingEvent{{MaterialID: "hdpe", Date: day(2024, 6, 3), QuantityKg: kg(100)}},
	}

	first := stock.Compute(ref, materials, ledger)
	second := stock.Compute(ref, materials, ledger)

	assert.Equal(t, first, second)
}

func TestTotalsYLowStock(t *testing.T) {
	balances := []stock.Balance{
		{QuantityKg: kg(2000), TotalValue: kg(500), IsLowStock: false},
		{QuantityKg: kg(300), TotalValue: kg(30), IsLowStock: true},
	}

	q, v := stock.Totals(balances)
	assert.True(t, q.Equal(kg(2300)))
	assert.True(t, v.Equal(kg(530)))
	assert.Len(t, stock.LowStock(balances), 1)
}

func TestSampleDates_FinDeMesRecortado(t *testing.T) {
	dates := stock.SampleDates(day(2024, 1, 15), day(2024, 3, 10))

	require.Len(t, dates, 3)
	assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 999999999, time.UTC), dates[0])
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 999999999, time.UTC), dates[1])
	assert.Equal(t, day(2024, 3, 10), dates[2])

	assert.Nil(t, stock.SampleDates(day(2024, 3, 1), day(2024, 2, 1)))
}

func TestTrend_CoincideConCalculoPuntual(t *testing.T) {
	materials := []*entity.MaterialType{pet(), {ID: "hdpe", Name: "HDPE"}}
	ledger := stock.Ledger{
		Intakes: []*entity.Intake{
			{MaterialID: "pet", Date: day(2024, 1, 10), QuantityKg: kg(1000)},
			{MaterialID: "pet", Date: day(2024, 2, 10), QuantityKg: kg(1000)},
			{MaterialID: "hdpe", Date: day(2024, 2, 11), QuantityKg: kg(50)},
		},
		Outbounds: []*entity.Outbound{{MaterialID: "pet", Date: day(2024, 3, 5), QuantityKg: kg(1500)}},
	}
	from, to := day(2024, 1, 1), day(2024, 3, 31)

	all := stock.Trend(from, to, materials, ledger, "")
	require.Len(t, all, 2)

	only := stock.Trend(from, to, materials, ledger, "pet")
	require.Len(t, only, 1)
	require.Len(t, only[0].Points, 3)

	for _, p := range only[0].Points {
		expected := stock.Compute(p.Date, materials[:1], ledger)[0].QuantityKg
		assert.True(t, expected.Equal(p.QuantityKg), "punto %s", p.Date)
	}
	assert.True(t, only[0].Points[0].QuantityKg.Equal(kg(1000)))
	assert.True(t, only[0].Points[1].QuantityKg.Equal(kg(2000)))
	assert.True(t, only[0].Points[2].QuantityKg.Equal(kg(500)))
}
