// Package pdf genera la representación imprimible de la factura mensual a un consorcio de filiera.
//
// Layout A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  Impianto + P.IVA              │  N° fattura + data + periodo │
//	│  Destinatario: consorcio                                     │
//	│  Tabla: Flusso | Quantità (kg) | €/t | Importo               │
//	│  Totales: quantità, corrispettivo medio, imponibile          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/jhoicas/Reciclaje-api/internal/application/billing"
	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	appconfig "github.com/jhoicas/Reciclaje-api/pkg/config"
)

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 104, Blue: 55}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	plant appconfig.PlantConfig
}

// NewMarotoPDFGenerator construye el generador con los datos del impianto emisor.
func NewMarotoPDFGenerator(plant appconfig.PlantConfig) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{plant: plant}
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, inv *entity.ConsortiumInvoice) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Fattura corrispettivi "+inv.Consortium, true).
		WithAuthor(g.plant.Name, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(g.headerRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(recipientRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	m.AddRows(lineRows(inv.Lines)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(inv))
	if inv.Notes != "" {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("Note: "+inv.Notes, props.Text{Size: 8, Top: 3, Color: colorGray}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoPDFGenerator) headerRow(inv *entity.ConsortiumInvoice) core.Row {
	vat := ""
	if g.plant.VATNumber != "" {
		vat = "P.IVA " + g.plant.VATNumber
	}
	return row.New(20).Add(
		col.New(7).Add(
			text.New(g.plant.Name, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(vat, props.Text{Size: 9, Top: 9, Color: colorGray}),
			text.New(g.plant.Address, props.Text{Size: 8, Top: 14, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("FATTURA CORRISPETTIVI", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New("N. "+inv.Number, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6}),
			text.New("Data: "+inv.Date.Format("02/01/2006"), props.Text{Size: 8, Align: align.Right, Top: 13, Color: colorGray}),
			text.New(fmt.Sprintf("Periodo: %02d/%d", inv.Month, inv.Year), props.Text{Size: 8, Align: align.Right, Top: 17, Color: colorGray}),
		),
	)
}

func recipientRow(inv *entity.ConsortiumInvoice) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New("DESTINATARIO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New("Consorzio "+inv.Consortium, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Flusso", 3, align.Left),
		h("Quantità (kg)", 3, align.Right),
		h("€/t", 3, align.Right),
		h("Importo (€)", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func lineRows(lines []entity.InvoiceLine) []core.Row {
	out := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		out = append(out, row.New(7).Add(
			col.New(3).Add(text.New(l.FlowCode, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(FormatQuantity(l.QuantityKg), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(FormatMoney(l.RatePerTonne), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(FormatMoney(l.Amount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return out
}

func totalsRow(inv *entity.ConsortiumInvoice) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	return row.New(22).Add(
		col.New(4),
		col.New(4).Add(
			label("Quantità totale (kg):", 2),
			label("Corrispettivo medio (€/kg):", 8),
			text.New("IMPONIBILE:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2, Top: 14, Color: colorPrimary}),
		),
		col.New(4).Add(
			value(FormatQuantity(inv.QuantityKg), 2),
			value(FormatUnitFee(inv.UnitFee), 8),
			text.New("€ "+FormatMoney(inv.NetAmount), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 1, Top: 14, Color: colorPrimary}),
		),
	)
}
