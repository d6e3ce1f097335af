// Package billing calcula los corrispettivi mensuales a facturar a un consorcio de filiera.
package billing

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
)

var kgPerTonne = decimal.NewFromInt(1000)

// Fee resultado del cálculo de una factura mensual.
type Fee struct {
	Lines      []entity.InvoiceLine
	QuantityKg decimal.Decimal
	NetAmount  decimal.Decimal
	UnitFee    decimal.Decimal // €/kg medio
	UnbilledKg decimal.Decimal // ingresos del consorcio sin flujo asociado
}

// Compute agrupa por flujo los ingresos de materiales del consorcio y aplica el corrispettivo €/t del flujo.
// Los ingresos deben venir ya filtrados por período. Los de materiales de otro consorcio se ignoran;
// los que no tienen flujo se acumulan en UnbilledKg.
func Compute(
	consortium string,
	intakes []*entity.Intake,
	materials map[string]*entity.MaterialType,
	flows map[string]*entity.CollectionFlow,
) Fee {
	fee := Fee{Lines: []entity.InvoiceLine{}}
	byFlow := map[string]decimal.Decimal{}

	for _, in := range intakes {
		m := materials[in.MaterialID]
		if m == nil || m.Consortium != consortium {
			continue
		}
		if in.FlowID == nil || flows[*in.FlowID] == nil {
			fee.UnbilledKg = fee.UnbilledKg.Add(in.QuantityKg)
			continue
		}
		byFlow[*in.FlowID] = byFlow[*in.FlowID].Add(in.QuantityKg)
	}

	for flowID, qty := range byFlow {
		f := flows[flowID]
		amount := qty.Div(kgPerTonne).Mul(f.RatePerTonne).Round(2)
		fee.Lines = append(fee.Lines, entity.InvoiceLine{
			FlowID:       flowID,
			FlowCode:     f.Code,
			QuantityKg:   qty,
			RatePerTonne: f.RatePerTonne,
			Amount:       amount,
		})
		fee.QuantityKg = fee.QuantityKg.Add(qty)
		fee.NetAmount = fee.NetAmount.Add(amount)
	}
	sort.Slice(fee.Lines, func(i, j int) bool { return fee.Lines[i].FlowCode < fee.Lines[j].FlowCode })

	if fee.QuantityKg.IsPositive() {
		fee.UnitFee = fee.NetAmount.Div(fee.QuantityKg).Round(4)
	}
	return fee
}

// CanTransition transiciones válidas: draft→sent, sent→paid, draft→paid.
func CanTransition(from, to string) bool {
	switch from {
	case entity.InvoiceStatusDraft:
		return to == entity.InvoiceStatusSent || to == entity.InvoiceStatusPaid
	case entity.InvoiceStatusSent:
		return to == entity.InvoiceStatusPaid
	}
	return false
}
