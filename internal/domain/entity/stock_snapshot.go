package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockSnapshot giacenza persistida tras un recálculo. Es una foto derivada, nunca la fuente de verdad.
type StockSnapshot struct {
	ID            string
	ReferenceDate time.Time
	MaterialID    string
	QuantityKg    decimal.Decimal
	UnitValue     decimal.Decimal
	TotalValue    decimal.Decimal
	UpdatedAt     time.Time
}
