package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockQuery fecha de referencia (por defecto hoy).
type StockQuery struct {
	Date string `query:"date" validate:"omitempty,datetime=2006-01-02"`
}

// BalanceResponse giacenza de un material.
type BalanceResponse struct {
	MaterialID   string          `json:"material_id"`
	MaterialCode string          `json:"material_code"`
	MaterialName string          `json:"material_name"`
	IntakeKg     decimal.Decimal `json:"intake_kg"`
	OutboundKg   decimal.Decimal `json:"outbound_kg"`
	ProcessingKg decimal.Decimal `json:"processing_kg"`
	QuantityKg   decimal.Decimal `json:"quantity_kg"`
	UnitValue    decimal.Decimal `json:"unit_value"`
	TotalValue   decimal.Decimal `json:"total_value"`
	IsLowStock   bool            `json:"is_low_stock"`
	Negative     bool            `json:"negative"`
	Level        string          `json:"level"`
}

// BalancesResponse giacenze a una fecha con totales.
type BalancesResponse struct {
	Date            string            `json:"date"`
	Items           []BalanceResponse `json:"items"`
	TotalQuantityKg decimal.Decimal   `json:"total_quantity_kg"`
	TotalValue      decimal.Decimal   `json:"total_value"`
	LowStockCount   int               `json:"low_stock_count"`
	Cached          bool              `json:"cached"`
}

// RefreshRequest recálculo para una fecha (por defecto hoy).
type RefreshRequest struct {
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// RefreshResponse resultado del recálculo.
type RefreshResponse struct {
	BalancesResponse
	RefreshedAt time.Time `json:"refreshed_at"`
	Snapshots   int       `json:"snapshots"`
}

// HistoryQuery serie histórica. material_id vacío = todos los materiales.
type HistoryQuery struct {
	From       string `query:"from" validate:"required,datetime=2006-01-02"`
	To         string `query:"to" validate:"required,datetime=2006-01-02"`
	MaterialID string `query:"material_id" validate:"omitempty,uuid"`
}

// TrendPointDTO punto de la serie.
type TrendPointDTO struct {
	Date       string          `json:"date"`
	QuantityKg decimal.Decimal `json:"quantity_kg"`
}

// TrendSeriesDTO serie de un material.
type TrendSeriesDTO struct {
	MaterialID   string          `json:"material_id"`
	MaterialName string          `json:"material_name"`
	Points       []TrendPointDTO `json:"points"`
}

// HistoryResponse series históricas.
type HistoryResponse struct {
	From   string           `json:"from"`
	To     string           `json:"to"`
	Series []TrendSeriesDTO `json:"series"`
}

// WarehouseMovementsQuery filtros del libro de almacén.
type WarehouseMovementsQuery struct {
	PageRequest
	DateRangeQuery
	MaterialID string `query:"material_id" validate:"omitempty,uuid"`
}

// WarehouseMovementDTO línea firmada del libro de almacén.
type WarehouseMovementDTO struct {
	Date         string          `json:"date"`
	Kind         string          `json:"kind"`
	ReferenceID  string          `json:"reference_id"`
	MaterialID   string          `json:"material_id"`
	MaterialName string          `json:"material_name"`
	Description  string          `json:"description"`
	QuantityKg   decimal.Decimal `json:"quantity_kg"`
	SignedKg     decimal.Decimal `json:"signed_kg"`
}

// WarehouseMovementsResponse libro de almacén paginado.
type WarehouseMovementsResponse struct {
	Items []WarehouseMovementDTO `json:"items"`
	Page  PageResponse           `json:"page"`
}

// SnapshotResponse foto de giacenza persistida en el último recálculo de la fecha.
type SnapshotResponse struct {
	MaterialID string          `json:"material_id"`
	QuantityKg decimal.Decimal `json:"quantity_kg"`
	UnitValue  decimal.Decimal `json:"unit_value"`
	TotalValue decimal.Decimal `json:"total_value"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// SnapshotsResponse fotos de una fecha.
type SnapshotsResponse struct {
	Date  string             `json:"date"`
	Items []SnapshotResponse `json:"items"`
}
