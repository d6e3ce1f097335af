package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostRequest alta/modificación de un costo.
type CostRequest struct {
	Date           string          `json:"date" validate:"required,datetime=2006-01-02"`
	Category       string          `json:"category" validate:"required,oneof=personnel utilities maintenance transport disposal"`
	Description    string          `json:"description" validate:"required"`
	Amount         decimal.Decimal `json:"amount" validate:"gt=0"`
	MaterialID     *string         `json:"material_id" validate:"omitempty,uuid"`
	Supplier       string          `json:"supplier" validate:"max=160"`
	DocumentNumber string          `json:"document_number" validate:"max=40"`
	Notes          string          `json:"notes"`
}

// CostResponse costo.
type CostResponse struct {
	ID             string          `json:"id"`
	Date           string          `json:"date"`
	Category       string          `json:"category"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	MaterialID     *string         `json:"material_id"`
	Supplier       string          `json:"supplier"`
	DocumentNumber string          `json:"document_number"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CostQuery filtros del listado de costos.
type CostQuery struct {
	PageRequest
	DateRangeQuery
	Category   string `query:"category" validate:"omitempty,oneof=personnel utilities maintenance transport disposal"`
	MaterialID string `query:"material_id" validate:"omitempty,uuid"`
}

// CostListResponse listado paginado.
type CostListResponse struct {
	Items []CostResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// CostSummaryQuery mes a resumir.
type CostSummaryQuery struct {
	Year  int `query:"year" validate:"required,min=2000,max=2100"`
	Month int `query:"month" validate:"required,min=1,max=12"`
}

// CostCategoryTotal total de una categoría.
type CostCategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Count    int             `json:"count"`
}

// CostSummaryResponse costos del mes por categoría. CostPerTonne usa lo conferito en el mes.
type CostSummaryResponse struct {
	Year         int                 `json:"year"`
	Month        int                 `json:"month"`
	Categories   []CostCategoryTotal `json:"categories"`
	Total        decimal.Decimal     `json:"total"`
	IntakeKg     decimal.Decimal     `json:"intake_kg"`
	CostPerTonne *decimal.Decimal    `json:"cost_per_tonne"`
}
