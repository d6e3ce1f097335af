// Package quality contiene el evaluador de conformidad de los análisis merceológicos
// frente a los límites del flujo de recogida COREPLA.
package quality

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
)

// Códigos de violación, en el orden fijo en que se evalúan.
const (
	ViolationTracers                = "tracers"
	ViolationForeignFraction        = "foreign-fraction"
	ViolationConformingPlasticFloor = "conforming-plastic-floor"
)

// FastConformityThreshold umbral del indicador rápido de los listados (CPL PET + otros CPL).
var FastConformityThreshold = decimal.NewFromInt(90)

// Limits límites de calidad de un flujo. nil = sin restricción.
type Limits struct {
	MaxTracers           *decimal.Decimal
	MaxForeignFraction   *decimal.Decimal
	MinConformingPlastic *decimal.Decimal
}

// LimitsOf extrae los límites de un flujo.
func LimitsOf(flow *entity.CollectionFlow) Limits {
	return Limits{
		MaxTracers:           flow.MaxTracers,
		MaxForeignFraction:   flow.MaxForeignFraction,
		MinConformingPlastic: flow.MinConformingPlastic,
	}
}

// ViolationDetail detalle legible de un control fallido.
type ViolationDetail struct {
	Code     string
	Message  string
	Observed decimal.Decimal
	Limit    decimal.Decimal
}

// Verdict resultado autoritativo de la evaluación por límites del flujo.
type Verdict struct {
	Conforming bool
	Violations []string
	Details    []ViolationDetail
}

// ConformingPlasticTotal suma de las dos fracciones de plástico certificado (CPL PET + otros CPL).
func ConformingPlasticTotal(p entity.Percentages) decimal.Decimal {
	return p.PetConforming.Add(p.OtherConforming)
}

// Evaluate compara la muestra con los límites presentes del flujo.
// Orden de controles: traccianti, frazione estranea, mínimo de CPL.
// No valida rangos: la entrada debe haber pasado por Validate.
func Evaluate(p entity.Percentages, limits Limits) Verdict {
	v := Verdict{Violations: []string{}, Details: []ViolationDetail{}}

	if limits.MaxTracers != nil && p.Tracers.GreaterThan(*limits.MaxTracers) {
		v.add(ViolationTracers, p.Tracers, *limits.MaxTracers,
			"trazadores %s%% superan el máximo %s%%")
	}
	if limits.MaxForeignFraction != nil && p.ForeignFraction.GreaterThan(*limits.MaxForeignFraction) {
		v.add(ViolationForeignFraction, p.ForeignFraction, *limits.MaxForeignFraction,
			"fracción extraña %s%% supera el máximo %s%%")
	}
	if limits.MinConformingPlastic != nil {
		total := ConformingPlasticTotal(p)
		if total.LessThan(*limits.MinConformingPlastic) {
			v.add(ViolationConformingPlasticFloor, total, *limits.MinConformingPlastic,
				"CPL totales %s%% por debajo del mínimo %s%%")
		}
	}

	v.Conforming = len(v.Violations) == 0
	return v
}

func (v *Verdict) add(code string, observed, limit decimal.Decimal, format string) {
	v.Violations = append(v.Violations, code)
	v.Details = append(v.Details, ViolationDetail{
		Code:     code,
		Message:  fmt.Sprintf(format, observed.String(), limit.String()),
		Observed: observed,
		Limit:    limit,
	})
}

// FastConforming indicador aproximado de los listados: CPL totales >= 90%.
// Es independiente de Evaluate y puede discrepar con él; ambos se exponen por separado.
func FastConforming(p entity.Percentages) bool {
	return ConformingPlasticTotal(p).GreaterThanOrEqual(FastConformityThreshold)
}
