// Package stock implementa el cálculo de giacenze a partir de los tres libros de movimientos
// (ingresos, lavorazioni y salidas). Las funciones son puras respecto a sus entradas.
package stock

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
)

// LowStockThresholdKg umbral fijo de scorta bassa (kg).
var LowStockThresholdKg = decimal.NewFromInt(1000)

// criticalThresholdKg por debajo de este valor el nivel mostrado es "low".
var criticalThresholdKg = decimal.NewFromInt(500)

// Niveles de giacenza para la vista.
const (
	LevelLow    = "low"
	LevelMedium = "medium"
	LevelNormal = "normal"
)

// Ledger los tres libros de movimientos. Puede contener movimientos posteriores a la fecha
// de referencia: Compute los descarta.
type Ledger struct {
	Intakes    []*entity.Intake
	Processing []*entity.ProcessingEvent
	Outbounds  []*entity.Outbound
}

// Balance giacenza de un material a una fecha.
type Balance struct {
	MaterialID   string
	MaterialCode string
	MaterialName string
	Date         time.Time
	IntakeKg     decimal.Decimal
	OutboundKg   decimal.Decimal
	ProcessingKg decimal.Decimal
	QuantityKg   decimal.Decimal // ingresos − salidas − lavorazioni; puede ser negativa
	UnitValue    decimal.Decimal
	TotalValue   decimal.Decimal
	IsLowStock   bool
	Negative     bool
	Level        string
}

type totals struct {
	intake, outbound, processing decimal.Decimal
}

// Compute calcula la giacenza de cada material del conjunto a la fecha ref (inclusive).
// Los movimientos de materiales fuera del conjunto se ignoran; un material sin movimientos
// resulta con cantidad cero. Las cantidades negativas se devuelven tal cual, marcadas.
func Compute(ref time.Time, materials []*entity.MaterialType, ledger Ledger) []Balance {
	acc := make(map[string]*totals, len(materials))
	for _, m := range materials {
		if m != nil {
			acc[m.ID] = &totals{}
		}
	}

	for _, in := range ledger.Intakes {
		if t, ok := acc[in.MaterialID]; ok && !in.Date.After(ref) {
			t.intake = t.intake.Add(in.QuantityKg)
		}
	}
	for _, out := range ledger.Outbounds {
		if t, ok := acc[out.MaterialID]; ok && !out.Date.After(ref) {
			t.outbound = t.outbound.Add(out.QuantityKg)
		}
	}
	for _, p := range ledger.Processing {
		if t, ok := acc[p.MaterialID]; ok && !p.Date.After(ref) {
			t.processing = t.processing.Add(p.QuantityKg)
		}
	}

	out := make([]Balance, 0, len(acc))
	for _, m := range materials {
		if m == nil {
			continue
		}
		t := acc[m.ID]
		qty := t.intake.Sub(t.outbound).Sub(t.processing)
		unit := decimal.Zero
		if m.AveragePrice != nil {
			unit = *m.AveragePrice
		}
		out = append(out, Balance{
			MaterialID:   m.ID,
			MaterialCode: m.Code,
			MaterialName: m.Name,
			Date:         ref,
			IntakeKg:     t.intake,
			OutboundKg:   t.outbound,
			ProcessingKg: t.processing,
			QuantityKg:   qty,
			UnitValue:    unit,
			TotalValue:   qty.Mul(unit),
			IsLowStock:   qty.LessThan(LowStockThresholdKg),
			Negative:     qty.IsNegative(),
			Level:        levelOf(qty),
		})
	}
	return out
}

func levelOf(qty decimal.Decimal) string {
	switch {
	case qty.LessThan(criticalThresholdKg):
		return LevelLow
	case qty.LessThan(LowStockThresholdKg):
		return LevelMedium
	default:
		return LevelNormal
	}
}

// Totals suma cantidad y valor de un conjunto de giacenze.
func Totals(balances []Balance) (quantity, value decimal.Decimal) {
	for _, b := range balances {
		quantity = quantity.Add(b.QuantityKg)
		value = value.Add(b.TotalValue)
	}
	return quantity, value
}

// LowStock filtra las giacenze bajo el umbral.
func LowStock(balances []Balance) []Balance {
	out := []Balance{}
	for _, b := range balances {
		if b.IsLowStock {
			out = append(out, b)
		}
	}
	return out
}
