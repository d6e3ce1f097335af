package entity

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reciclaje-api/internal/domain"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestReconcileTotal(t *testing.T) {
	t.Run("deriva el total ausente", func(t *testing.T) {
		o := &Outbound{QuantityKg: decimal.NewFromInt(1200), UnitPrice: dec("0.185")}
		require.NoError(t, o.ReconcileTotal())
		assert.True(t, o.TotalValue.Equal(decimal.NewFromInt(222)))
	})
	t.Run("acepta un total coherente", func(t *testing.T) {
		o := &Outbound{QuantityKg: decimal.NewFromInt(10), UnitPrice: dec("1.5"), TotalValue: dec("15.00")}
		assert.NoError(t, o.ReconcileTotal())
	})
	t.Run("rechaza un total distinto", func(t *testing.T) {
		o := &Outbound{QuantityKg: decimal.NewFromInt(10), UnitPrice: dec("1.5"), TotalValue: dec("16")}
		err := o.ReconcileTotal()
		assert.True(t, errors.Is(err, domain.ErrTotalMismatch))
	})
	t.Run("sin precio no hay regla", func(t *testing.T) {
		o := &Outbound{QuantityKg: decimal.NewFromInt(10), TotalValue: dec("99")}
		assert.NoError(t, o.ReconcileTotal())
	})
}
