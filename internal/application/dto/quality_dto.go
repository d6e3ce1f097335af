package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PercentagesDTO las nueve fracciones merceológicas (%). El rango [0,100] se valida en el dominio.
type PercentagesDTO struct {
	PetConforming      decimal.Decimal `json:"pct_pet_conforming"`
	OtherConforming    decimal.Decimal `json:"pct_other_conforming"`
	Tracers            decimal.Decimal `json:"pct_tracers"`
	Crates             decimal.Decimal `json:"pct_crates"`
	CertifiedPackaging decimal.Decimal `json:"pct_certified_packaging"`
	MiscPackaging      decimal.Decimal `json:"pct_misc_packaging"`
	ForeignFraction    decimal.Decimal `json:"pct_foreign_fraction"`
	FineFraction       decimal.Decimal `json:"pct_fine_fraction"`
	NeutralFraction    decimal.Decimal `json:"pct_neutral_fraction"`
}

// SampleRequest alta/modificación de un análisis (siempre en borrador).
type SampleRequest struct {
	SampleDate     string           `json:"sample_date" validate:"required,datetime=2006-01-02"`
	FormNumber     string           `json:"form_number" validate:"max=40"`
	FormDate       string           `json:"form_date" validate:"omitempty,datetime=2006-01-02"`
	MunicipalityID string           `json:"municipality_id" validate:"required,uuid"`
	FlowID         string           `json:"flow_id" validate:"required,uuid"`
	SampleWeightKg *decimal.Decimal `json:"sample_weight_kg" validate:"omitempty,gt=0"`
	Notes          string           `json:"notes"`
	PercentagesDTO
}

// SampleResponse análisis de calidad. FastConforming es la señal rápida (PET+otros CPL ≥ 90)
// y es independiente del veredicto por límites del flujo (Conforme/Violations, solo si validado).
type SampleResponse struct {
	ID             string           `json:"id"`
	SampleDate     string           `json:"sample_date"`
	FormNumber     string           `json:"form_number"`
	FormDate       *string          `json:"form_date"`
	MunicipalityID string           `json:"municipality_id"`
	FlowID         string           `json:"flow_id"`
	SampleWeightKg *decimal.Decimal `json:"sample_weight_kg"`
	Notes          string           `json:"notes"`
	PercentagesDTO
	Total          decimal.Decimal `json:"pct_total"`
	SumWarning     bool            `json:"sum_warning"`
	FastConforming bool            `json:"fast_conforming"`
	Status         string          `json:"status"`
	Validated      bool            `json:"validated"`
	ValidatedAt    *time.Time      `json:"validated_at"`
	ValidatedBy    string          `json:"validated_by"`
	Conforme       *bool           `json:"conforme"`
	Violations     []string        `json:"violations"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// SampleQuery filtros del listado de análisis.
type SampleQuery struct {
	PageRequest
	DateRangeQuery
	MunicipalityID string `query:"municipality_id" validate:"omitempty,uuid"`
	FlowID         string `query:"flow_id" validate:"omitempty,uuid"`
	Validated      *bool  `query:"validated"`
}

// SampleListResponse listado paginado de análisis.
type SampleListResponse struct {
	Items []SampleResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// FlowLimitsDTO límites del flujo aplicados (null = sin restricción).
type FlowLimitsDTO struct {
	MaxTracers           *decimal.Decimal `json:"max_tracers"`
	MaxForeignFraction   *decimal.Decimal `json:"max_foreign_fraction"`
	MinConformingPlastic *decimal.Decimal `json:"min_conforming_plastic"`
}

// ViolationDTO detalle de una violación.
type ViolationDTO struct {
	Code     string          `json:"code"`
	Message  string          `json:"message"`
	Observed decimal.Decimal `json:"observed"`
	Limit    decimal.Decimal `json:"limit"`
}

// ConformityResponse salida del evaluador de conformidad.
type ConformityResponse struct {
	SampleID               string          `json:"sample_id"`
	FlowID                 string          `json:"flow_id"`
	FlowCode               string          `json:"flow_code"`
	Conforme               bool            `json:"conforme"`
	Violations             []string        `json:"violations"`
	Details                []ViolationDTO  `json:"details"`
	FastConforming         bool            `json:"fast_conforming"`
	ConformingPlasticTotal decimal.Decimal `json:"conforming_plastic_total"`
	Limits                 FlowLimitsDTO   `json:"limits"`
}

// ValidateResponse resultado de la transición borrador → validado.
type ValidateResponse struct {
	Sample     SampleResponse     `json:"sample"`
	Conformity ConformityResponse `json:"conformity"`
}

// BulkValidateItem resultado por análisis en la validación masiva.
type BulkValidateItem struct {
	ID       string `json:"id"`
	OK       bool   `json:"ok"`
	Conforme *bool  `json:"conforme,omitempty"`
	Code     string `json:"code,omitempty"`
	Error    string `json:"error,omitempty"`
}

// BulkValidateResponse resultado de la validación masiva (cada análisis es independiente).
type BulkValidateResponse struct {
	Validated int                `json:"validated"`
	Failed    int                `json:"failed"`
	Items     []BulkValidateItem `json:"items"`
}

// StatisticsQuery filtros de las estadísticas de calidad.
type StatisticsQuery struct {
	DateRangeQuery
	MunicipalityID string `query:"municipality_id" validate:"omitempty,uuid"`
	FlowID         string `query:"flow_id" validate:"omitempty,uuid"`
}

// FlowConformityDTO conformidad por flujo.
type FlowConformityDTO struct {
	FlowID        string          `json:"flow_id"`
	FlowCode      string          `json:"flow_code"`
	Validated     int             `json:"validated"`
	Conforming    int             `json:"conforming"`
	ConformingPct decimal.Decimal `json:"conforming_pct"`
}

// ViolationFrequencyDTO frecuencia de una violación; Pct sobre los análisis validados.
type ViolationFrequencyDTO struct {
	Code        string          `json:"code"`
	Occurrences int             `json:"occurrences"`
	Pct         decimal.Decimal `json:"pct"`
}

// MunicipalityConformityDTO conformidad por comune.
type MunicipalityConformityDTO struct {
	MunicipalityID   string          `json:"municipality_id"`
	MunicipalityName string          `json:"municipality_name"`
	Total            int             `json:"total"`
	Validated        int             `json:"validated"`
	Conforming       int             `json:"conforming"`
	ConformingPct    decimal.Decimal `json:"conforming_pct"`
}

// StatisticsResponse estadísticas de calidad del período.
type StatisticsResponse struct {
	Total          int                         `json:"total"`
	Validated      int                         `json:"validated"`
	Pending        int                         `json:"pending"`
	ConformingPct  decimal.Decimal             `json:"conforming_pct"`
	Average        PercentagesDTO              `json:"average"`
	ByFlow         []FlowConformityDTO         `json:"by_flow"`
	ByMunicipality []MunicipalityConformityDTO `json:"by_municipality"`
	Violations     []ViolationFrequencyDTO     `json:"violations"`
}

// MovingAverageQuery media móvil cuatrimestral para comune + flujo.
type MovingAverageQuery struct {
	MunicipalityID string `query:"municipality_id" validate:"required,uuid"`
	FlowID         string `query:"flow_id" validate:"required,uuid"`
	Date           string `query:"date" validate:"omitempty,datetime=2006-01-02"`
}

// MovingAverageResponse media de los análisis validados en la ventana (from, to].
type MovingAverageResponse struct {
	MunicipalityID string              `json:"municipality_id"`
	FlowID         string              `json:"flow_id"`
	From           string              `json:"from"`
	To             string              `json:"to"`
	SampleCount    int                 `json:"sample_count"`
	SampleIDs      []string            `json:"sample_ids"`
	Average        PercentagesDTO      `json:"average"`
	FastConforming bool                `json:"fast_conforming"`
	Conformity     *ConformityResponse `json:"conformity,omitempty"`
}

// DuplicateSampleRequest fecha del nuevo borrador (por defecto hoy).
type DuplicateSampleRequest struct {
	SampleDate string `json:"sample_date" validate:"omitempty,datetime=2006-01-02"`
}

// SharesDTO quote di competenza del consorcio (%).
type SharesDTO struct {
	TotalPackaging  decimal.Decimal `json:"total_packaging"`
	PetTotal        decimal.Decimal `json:"pet_total"`
	PetShare        decimal.Decimal `json:"pet_share"`
	OtherCPLShare   decimal.Decimal `json:"other_cpl_share"`
	TracersShare    decimal.Decimal `json:"tracers_share"`
	CratesShare     decimal.Decimal `json:"crates_share"`
	MiscShare       decimal.Decimal `json:"misc_share"`
	ConsortiumTotal decimal.Decimal `json:"consortium_total"`
}

// NetFeeDTO importe neto del mes del análisis.
type NetFeeDTO struct {
	QuantityKg        decimal.Decimal `json:"quantity_kg"`
	ConsortiumTonnes  decimal.Decimal `json:"consortium_tonnes"`
	UnitFee           decimal.Decimal `json:"unit_fee"`
	Gross             decimal.Decimal `json:"gross"`
	ForeignExcessKg   decimal.Decimal `json:"foreign_excess_kg"`
	ForeignExcessCost decimal.Decimal `json:"foreign_excess_cost"`
	Net               decimal.Decimal `json:"net"`
}

// CalculationsResponse cálculos de consorcio de un análisis. Basis indica si la composición
// usada es la media móvil ("moving_average") o el propio análisis ("sample").
type CalculationsResponse struct {
	SampleID      string             `json:"sample_id"`
	Basis         string             `json:"basis"`
	MovingAverage MovingAverageDTO   `json:"moving_average"`
	Shares        SharesDTO          `json:"shares"`
	Conformity    ConformityResponse `json:"conformity"`
	Fee           *NetFeeDTO         `json:"fee,omitempty"`
}

// MovingAverageDTO ventana y media usadas en los cálculos.
type MovingAverageDTO struct {
	From        string         `json:"from"`
	To          string         `json:"to"`
	SampleCount int            `json:"sample_count"`
	Average     PercentagesDTO `json:"average"`
}
