package dto

import "github.com/shopspring/decimal"

// MonthlyReportQuery mes del informe.
type MonthlyReportQuery struct {
	Year  int `query:"year" validate:"required,min=2000,max=2100"`
	Month int `query:"month" validate:"required,min=1,max=12"`
}

// MunicipalityTotal conferito por comune.
type MunicipalityTotal struct {
	MunicipalityID string          `json:"municipality_id"`
	Name           string          `json:"name"`
	QuantityKg     decimal.Decimal `json:"quantity_kg"`
	Count          int             `json:"count"`
}

// MonthlyReportResponse resumen del mes.
// Balance = ingresos − salidas − lavorazioni del mes; ProcessingRate = lavorazioni / ingresos × 100.
type MonthlyReportResponse struct {
	Year            int                 `json:"year"`
	Month           int                 `json:"month"`
	IntakeKg        decimal.Decimal     `json:"intake_kg"`
	IntakeCount     int                 `json:"intake_count"`
	OutboundKg      decimal.Decimal     `json:"outbound_kg"`
	OutboundCount   int                 `json:"outbound_count"`
	ProcessingKg    decimal.Decimal     `json:"processing_kg"`
	ProcessingCount int                 `json:"processing_count"`
	BalanceKg       decimal.Decimal     `json:"balance_kg"`
	ProcessingRate  decimal.Decimal     `json:"processing_rate"`
	OutboundValue   decimal.Decimal     `json:"outbound_value"`
	Municipalities  []MunicipalityTotal `json:"municipalities"`
}

// CollectionTrendQuery rango de años (inclusive).
type CollectionTrendQuery struct {
	FromYear int `query:"from_year" validate:"required,min=2000,max=2100"`
	ToYear   int `query:"to_year" validate:"required,min=2000,max=2100,gtefield=FromYear"`
}

// CollectionTrendPoint conferito de un mes.
type CollectionTrendPoint struct {
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	QuantityKg decimal.Decimal `json:"quantity_kg"`
	Count      int             `json:"count"`
}

// CollectionTrendResponse serie mensual de conferimenti.
type CollectionTrendResponse struct {
	Points  []CollectionTrendPoint `json:"points"`
	TotalKg decimal.Decimal        `json:"total_kg"`
}
