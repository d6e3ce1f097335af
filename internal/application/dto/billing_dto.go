package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// GenerateInvoiceRequest generación de la factura mensual de un consorcio.
type GenerateInvoiceRequest struct {
	Consortium string `json:"consortium" validate:"required,oneof=COREPLA CORIPET RICREA CIAL COREVE"`
	Year       int    `json:"year" validate:"required,min=2000,max=2100"`
	Month      int    `json:"month" validate:"required,min=1,max=12"`
	Notes      string `json:"notes"`
}

// InvoiceStatusRequest cambio de estado.
type InvoiceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=sent paid"`
}

// InvoiceQuery filtros del listado de facturas.
type InvoiceQuery struct {
	PageRequest
	Consortium string `query:"consortium" validate:"omitempty,oneof=COREPLA CORIPET RICREA CIAL COREVE"`
	Year       int    `query:"year" validate:"omitempty,min=2000,max=2100"`
	Status     string `query:"status" validate:"omitempty,oneof=draft sent paid"`
}

// InvoiceLineDTO detalle por flujo.
type InvoiceLineDTO struct {
	FlowID       string          `json:"flow_id"`
	FlowCode     string          `json:"flow_code"`
	QuantityKg   decimal.Decimal `json:"quantity_kg"`
	RatePerTonne decimal.Decimal `json:"rate_per_tonne"`
	Amount       decimal.Decimal `json:"amount"`
}

// InvoiceResponse factura a consorcio.
type InvoiceResponse struct {
	ID         string           `json:"id"`
	Number     string           `json:"number"`
	Date       string           `json:"date"`
	Month      int              `json:"month"`
	Year       int              `json:"year"`
	Consortium string           `json:"consortium"`
	QuantityKg decimal.Decimal  `json:"quantity_kg"`
	UnitFee    decimal.Decimal  `json:"unit_fee"`
	NetAmount  decimal.Decimal  `json:"net_amount"`
	Status     string           `json:"status"`
	SentAt     *time.Time       `json:"sent_at"`
	PaidAt     *time.Time       `json:"paid_at"`
	Notes      string           `json:"notes"`
	Lines      []InvoiceLineDTO `json:"lines"`
	UnbilledKg *decimal.Decimal `json:"unbilled_kg,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

// InvoiceListResponse listado paginado.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
