package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reciclaje-api/internal/domain/billing"
	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
)

func strp(s string) *string { return &s }

func TestCompute_AgrupaPorFlujo(t *testing.T) {
	materials := map[string]*entity.MaterialType{
		"pet":   {ID: "pet", Consortium: entity.ConsortiumCOREPLA},
		"glass": {ID: "glass", Consortium: entity.ConsortiumCOREVE},
	}
	flows := map[string]*entity.CollectionFlow{
		"a": {ID: "a", Code: "A", RatePerTonne: decimal.NewFromInt(300)},
		"b": {ID: "b", Code: "B", RatePerTonne: decimal.NewFromInt(150)},
	}
	intakes := []*entity.Intake{
		{MaterialID: "pet", FlowID: strp("a"), QuantityKg: decimal.NewFromInt(2000)},
		{MaterialID: "pet", FlowID: strp("a"), QuantityKg: decimal.NewFromInt(1000)},
		{MaterialID: "pet", FlowID: strp("b"), QuantityKg: decimal.NewFromInt(1000)},
		{MaterialID: "pet", QuantityKg: decimal.NewFromInt(400)},
		{MaterialID: "glass", FlowID: strp("a"), QuantityKg: decimal.NewFromInt(9000)},
	}

	fee := billing.Compute(entity.ConsortiumCOREPLA, intakes, materials, flows)

	require.Len(t, fee.Lines, 2)
	assert.Equal(t, "A", fee.Lines[0].FlowCode)
	assert.True(t, fee.Lines[0].Amount.Equal(decimal.NewFromInt(900)))
	assert.True(t, fee.Lines[1].Amount.Equal(decimal.NewFromInt(150)))
	assert.True(t, fee.QuantityKg.Equal(decimal.NewFromInt(4000)))
	assert.True(t, fee.NetAmount.Equal(decimal.NewFromInt(1050)))
	assert.True(t, fee.UnitFee.Equal(decimal.NewFromFloat(0.2625)))
	assert.True(t, fee.UnbilledKg.Equal(decimal.NewFromInt(400)))
}

func TestCompute_SinIngresos(t *testing.T) {
	fee := billing.Compute(entity.ConsortiumCOREPLA, nil, nil, nil)

	assert.Empty(t, fee.Lines)
	assert.True(t, fee.NetAmount.IsZero())
	assert.True(t, fee.UnitFee.IsZero())
}

func TestCanTransition(t *testing.T) {
	assert.True(t, billing.CanTransition(entity.InvoiceStatusDraft, entity.InvoiceStatusSent))
	assert.True(t, billing.CanTransition(entity.InvoiceStatusSent, entity.InvoiceStatusPaid))
	assert.False(t, billing.CanTransition(entity.InvoiceStatusPaid, entity.InvoiceStatusDraft))
	assert.False(t, billing.CanTransition(entity.InvoiceStatusSent, entity.InvoiceStatusDraft))
}
