package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del análisis de calidad.
const (
	SampleStatusDraft     = "draft"
	SampleStatusValidated = "validated"
)

// Percentages composición merceológica de una muestra (método AQ20), nueve fracciones en %.
type Percentages struct {
	PetConforming      decimal.Decimal // CPL PET
	OtherConforming    decimal.Decimal // otros CPL
	Tracers            decimal.Decimal // traccianti
	Crates             decimal.Decimal // cassette CAC
	CertifiedPackaging decimal.Decimal // imballaggi CONIP
	MiscPackaging      decimal.Decimal // imballaggi vari
	ForeignFraction    decimal.Decimal // frazione estranea
	FineFraction       decimal.Decimal
	NeutralFraction    decimal.Decimal
}

// Fields devuelve las nueve fracciones con su nombre de campo JSON, en orden fijo.
func (p Percentages) Fields() []NamedPercentage {
	return []NamedPercentage{
		{"pct_pet_conforming", p.PetConforming},
		{"pct_other_conforming", p.OtherConforming},
		{"pct_tracers", p.Tracers},
		{"pct_crates", p.Crates},
		{"pct_certified_packaging", p.CertifiedPackaging},
		{"pct_misc_packaging", p.MiscPackaging},
		{"pct_foreign_fraction", p.ForeignFraction},
		{"pct_fine_fraction", p.FineFraction},
		{"pct_neutral_fraction", p.NeutralFraction},
	}
}

// NamedPercentage par campo/valor.
type NamedPercentage struct {
	Field string
	Value decimal.Decimal
}

// QualitySample análisis de laboratorio de un lote, ligado a un comune y a un flujo.
type QualitySample struct {
	ID             string
	SampleDate     time.Time
	FormNumber     string
	FormDate       *time.Time
	MunicipalityID string
	FlowID         string
	Percentages    Percentages
	SampleWeightKg *decimal.Decimal
	Notes          string
	Validated      bool
	ValidatedAt    *time.Time
	ValidatedBy    string
	Conforming     *bool    // veredicto almacenado al validar
	Violations     []string // códigos de violación almacenados al validar
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Status devuelve draft o validated.
func (s *QualitySample) Status() string {
	if s.Validated {
		return SampleStatusValidated
	}
	return SampleStatusDraft
}
