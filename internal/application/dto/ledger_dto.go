package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementQuery filtros comunes de los libros de movimientos.
type MovementQuery struct {
	PageRequest
	DateRangeQuery
	MunicipalityID string `query:"municipality_id" validate:"omitempty,uuid"`
	MaterialID     string `query:"material_id" validate:"omitempty,uuid"`
	FlowID         string `query:"flow_id" validate:"omitempty,uuid"`
	Recipient      string `query:"recipient" validate:"max=160"`
	Operation      string `query:"operation" validate:"omitempty,oneof=sorting baling storage"`
}

// IntakeRequest alta/modificación de un conferimento.
type IntakeRequest struct {
	Date           string          `json:"date" validate:"required,datetime=2006-01-02"`
	FormNumber     string          `json:"form_number" validate:"max=40"`
	FormDate       string          `json:"form_date" validate:"omitempty,datetime=2006-01-02"`
	MunicipalityID string          `json:"municipality_id" validate:"required,uuid"`
	MaterialID     string          `json:"material_id" validate:"required,uuid"`
	FlowID         *string         `json:"flow_id" validate:"omitempty,uuid"`
	QuantityKg     decimal.Decimal `json:"quantity_kg" validate:"gt=0"`
	Notes          string          `json:"notes"`
}

// IntakeResponse conferimento.
type IntakeResponse struct {
	ID             string          `json:"id"`
	Date           string          `json:"date"`
	FormNumber     string          `json:"form_number"`
	FormDate       *string         `json:"form_date"`
	MunicipalityID string          `json:"municipality_id"`
	MaterialID     string          `json:"material_id"`
	FlowID         *string         `json:"flow_id"`
	QuantityKg     decimal.Decimal `json:"quantity_kg"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// IntakeListResponse listado paginado de conferimenti.
type IntakeListResponse struct {
	Items []IntakeResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// IntakeSummaryItem total conferito por material en un período.
type IntakeSummaryItem struct {
	MaterialID   string          `json:"material_id"`
	MaterialName string          `json:"material_name"`
	QuantityKg   decimal.Decimal `json:"quantity_kg"`
	Count        int             `json:"count"`
}

// IntakeSummaryResponse resumen de conferimenti.
type IntakeSummaryResponse struct {
	From       *string             `json:"from"`
	To         *string             `json:"to"`
	Items      []IntakeSummaryItem `json:"items"`
	TotalKg    decimal.Decimal     `json:"total_kg"`
	TotalCount int                 `json:"total_count"`
}

// ProcessingRequest alta/modificación de una lavorazione.
type ProcessingRequest struct {
	Date         string          `json:"date" validate:"required,datetime=2006-01-02"`
	MaterialID   string          `json:"material_id" validate:"required,uuid"`
	QuantityKg   decimal.Decimal `json:"quantity_kg" validate:"gt=0"`
	OriginFlowID *string         `json:"origin_flow_id" validate:"omitempty,uuid"`
	Operation    string          `json:"operation" validate:"required,oneof=sorting baling storage"`
	Notes        string          `json:"notes"`
}

// ProcessingResponse lavorazione.
type ProcessingResponse struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	MaterialID   string          `json:"material_id"`
	QuantityKg   decimal.Decimal `json:"quantity_kg"`
	OriginFlowID *string         `json:"origin_flow_id"`
	Operation    string          `json:"operation"`
	Notes        string          `json:"notes"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProcessingListResponse listado paginado de lavorazioni.
type ProcessingListResponse struct {
	Items []ProcessingResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// OutboundRequest alta/modificación de una salida.
// total_value, si llega junto a unit_price, debe coincidir con quantity_kg × unit_price.
type OutboundRequest struct {
	Date             string           `json:"date" validate:"required,datetime=2006-01-02"`
	DocumentNumber   string           `json:"document_number" validate:"max=40"`
	FormNumber       string           `json:"form_number" validate:"max=40"`
	Recipient        string           `json:"recipient" validate:"required,max=160"`
	RecipientAddress string           `json:"recipient_address"`
	MaterialID       string           `json:"material_id" validate:"required,uuid"`
	QuantityKg       decimal.Decimal  `json:"quantity_kg" validate:"gt=0"`
	UnitPrice        *decimal.Decimal `json:"unit_price" validate:"omitempty,gte=0"`
	TotalValue       *decimal.Decimal `json:"total_value" validate:"omitempty,gte=0"`
	Destination      string           `json:"destination" validate:"omitempty,oneof=recycling energy_recovery disposal"`
	FlowID           *string          `json:"flow_id" validate:"omitempty,uuid"`
	Vehicle          string           `json:"vehicle" validate:"max=40"`
	Driver           string           `json:"driver" validate:"max=80"`
	Notes            string           `json:"notes"`
}

// OutboundResponse salida.
type OutboundResponse struct {
	ID               string           `json:"id"`
	Date             string           `json:"date"`
	DocumentNumber   string           `json:"document_number"`
	FormNumber       string           `json:"form_number"`
	Recipient        string           `json:"recipient"`
	RecipientAddress string           `json:"recipient_address"`
	MaterialID       string           `json:"material_id"`
	QuantityKg       decimal.Decimal  `json:"quantity_kg"`
	UnitPrice        *decimal.Decimal `json:"unit_price"`
	TotalValue       *decimal.Decimal `json:"total_value"`
	Destination      string           `json:"destination"`
	FlowID           *string          `json:"flow_id"`
	Vehicle          string           `json:"vehicle"`
	Driver           string           `json:"driver"`
	Notes            string           `json:"notes"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// OutboundListResponse listado paginado de salidas.
type OutboundListResponse struct {
	Items []OutboundResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
