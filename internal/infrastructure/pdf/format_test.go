package pdf

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney_SeparadoresItalianos(t *testing.T) {
	assert.Equal(t, "1.234,50", FormatMoney(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "0,00", FormatMoney(decimal.Zero))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "12.000", FormatQuantity(decimal.NewFromInt(12000)))
	assert.Equal(t, "1,500", FormatQuantity(decimal.NewFromFloat(1.5)))
}
