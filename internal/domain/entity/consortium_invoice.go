package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de la factura al consorcio.
const (
	InvoiceStatusDraft = "draft"
	InvoiceStatusSent  = "sent"
	InvoiceStatusPaid  = "paid"
)

// ConsortiumInvoice factura mensual de corrispettivi a un consorcio de filiera.
type ConsortiumInvoice struct {
	ID         string
	Number     string
	Date       time.Time
	Month      int
	Year       int
	Consortium string
	QuantityKg decimal.Decimal
	UnitFee    decimal.Decimal // €/kg medio resultante
	NetAmount  decimal.Decimal
	Status     string
	SentAt     *time.Time
	PaidAt     *time.Time
	Notes      string
	Lines      []InvoiceLine
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// InvoiceLine detalle por flujo de recogida.
type InvoiceLine struct {
	FlowID       string
	FlowCode     string
	QuantityKg   decimal.Decimal
	RatePerTonne decimal.Decimal
	Amount       decimal.Decimal
}
