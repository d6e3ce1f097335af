package quality

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
)

var kgPerTonne = decimal.NewFromInt(1000)

// Shares cuotas del consorcio sobre la composición (%).
// Los embalajes certificados por otro consorcio cuentan en TotalPackaging pero no en ConsortiumTotal.
type Shares struct {
	TotalPackaging  decimal.Decimal
	PetTotal        decimal.Decimal
	PetShare        decimal.Decimal
	OtherCPLShare   decimal.Decimal
	TracersShare    decimal.Decimal
	CratesShare     decimal.Decimal
	MiscShare       decimal.Decimal
	ConsortiumTotal decimal.Decimal
}

// ComputeShares reparte las fracciones de embalaje. Las fracciones extraña, fina y neutra no son embalaje.
func ComputeShares(p entity.Percentages) Shares {
	consortium := p.PetConforming.Add(p.OtherConforming).Add(p.Tracers).Add(p.Crates).Add(p.MiscPackaging)
	return Shares{
		TotalPackaging:  consortium.Add(p.CertifiedPackaging),
		PetTotal:        p.PetConforming,
		PetShare:        p.PetConforming,
		OtherCPLShare:   p.OtherConforming,
		TracersShare:    p.Tracers,
		CratesShare:     p.Crates,
		MiscShare:       p.MiscPackaging,
		ConsortiumTotal: consortium,
	}
}

// NetFee importe neto de una entrega: bruto sobre la quota del consorcio, menos la fracción
// extraña que excede el máximo del flujo al mismo precio por tonelada.
type NetFee struct {
	QuantityKg        decimal.Decimal
	ConsortiumTonnes  decimal.Decimal
	UnitFee           decimal.Decimal // €/t del flujo
	Gross             decimal.Decimal
	ForeignExcessKg   decimal.Decimal
	ForeignExcessCost decimal.Decimal
	Net               decimal.Decimal
}

// ComputeNetFee aplica la composición a quantityKg. Sin máximo de fracción extraña no hay descuento.
// El neto nunca baja de cero.
func ComputeNetFee(quantityKg decimal.Decimal, p entity.Percentages, flow *entity.CollectionFlow) NetFee {
	shares := ComputeShares(p)
	fee := NetFee{
		QuantityKg:       quantityKg,
		ConsortiumTonnes: quantityKg.Mul(shares.ConsortiumTotal).Div(hundred).Div(kgPerTonne).Round(3),
		UnitFee:          flow.RatePerTonne,
	}
	fee.Gross = fee.ConsortiumTonnes.Mul(flow.RatePerTonne).Round(2)

	if flow.MaxForeignFraction != nil && p.ForeignFraction.GreaterThan(*flow.MaxForeignFraction) {
		excess := p.ForeignFraction.Sub(*flow.MaxForeignFraction)
		fee.ForeignExcessKg = quantityKg.Mul(excess).Div(hundred).Round(2)
		fee.ForeignExcessCost = fee.ForeignExcessKg.Div(kgPerTonne).Mul(flow.RatePerTonne).Round(2)
	}
	fee.Net = fee.Gross.Sub(fee.ForeignExcessCost)
	if fee.Net.IsNegative() {
		fee.Net = decimal.Zero
	}
	return fee
}
