package quality_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reciclaje-api/internal/domain"
	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/domain/quality"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func dp(v float64) *decimal.Decimal {
	x := decimal.NewFromFloat(v)
	return &x
}

// flujo de referencia: traccianti <= 3, frazione estranea <= 20, CPL >= 85
func referenceLimits() quality.Limits {
	return quality.Limits{MaxTracers: dp(3), MaxForeignFraction: dp(20), MinConformingPlastic: dp(85)}
}

func TestEvaluate_MuestraTodoPETSiempreConforme(t *testing.T) {
	p := entity.Percentages{PetConforming: d(100)}

	cases := map[string]quality.Limits{
		"sin límites":        {},
		"límites de flujo":   referenceLimits(),
		"límites extremos":   {MaxTracers: dp(0), MaxForeignFraction: dp(0), MinConformingPlastic: dp(100)},
		"solo mínimo de CPL": {MinConformingPlastic: dp(100)},
	}
	for name, limits := range cases {
		t.Run(name, func(t *testing.T) {
			v := quality.Evaluate(p, limits)
			assert.True(t, v.Conforming)
			assert.Empty(t, v.Violations)
		})
	}
}

func TestEvaluate_SinLimiteDeTraccianteNuncaFalla(t *testing.T) {
	limits := referenceLimits()
	limits.MaxTracers = nil

	for _, tracers := range []float64{0, 3, 50, 100, 101} {
		p := entity.Percentages{PetConforming: d(90), Tracers: d(tracers)}
		v := quality.Evaluate(p, limits)
		assert.NotContains(t, v.Violations, quality.ViolationTracers, "tracers=%v", tracers)
	}
}

func TestEvaluate_PisoDeCPL(t *testing.T) {
	p := entity.Percentages{
		PetConforming:   d(80),
		OtherConforming: d(3),
		Tracers:         d(2),
		ForeignFraction: d(10),
	}

	v := quality.Evaluate(p, referenceLimits())

	assert.False(t, v.Conforming)
	assert.Equal(t, []string{quality.ViolationConformingPlasticFloor}, v.Violations)
	require.Len(t, v.Details, 1)
	assert.True(t, v.Details[0].Observed.Equal(d(83)))
	assert.True(t, v.Details[0].Limit.Equal(d(85)))
	assert.NotEmpty(t, v.Details[0].Message)
}

func TestEvaluate_OrdenFijoDeViolaciones(t *testing.T) {
	p := entity.Percentages{PetConforming: d(40), Tracers: d(5), ForeignFraction: d(30)}

	v := quality.Evaluate(p, referenceLimits())

	assert.False(t, v.Conforming)
	assert.Equal(t, []string{
		quality.ViolationTracers,
		quality.ViolationForeignFraction,
		quality.ViolationConformingPlasticFloor,
	}, v.Violations)
}

func TestEvaluate_MensajesDeDetalle(t *testing.T) {
	p := entity.Percentages{PetConforming: d(40), Tracers: d(5), ForeignFraction: d(30)}

	v := quality.Evaluate(p, referenceLimits())

	require.Len(t, v.Details, 3)
	assert.Equal(t, "trazadores 5% superan el máximo 3%", v.Details[0].Message)
	assert.Equal(t, "fracción extraña 30% supera el máximo 20%", v.Details[1].Message)
	assert.Equal(t, "CPL totales 40% por debajo del mínimo 85%", v.Details[2].Message)
}

func TestEvaluate_LimiteExactoNoFalla(t *testing.T) {
	p := entity.Percentages{PetConforming: d(80), OtherConforming: d(5), Tracers: d(3), ForeignFraction: d(20)}

	v := quality.Evaluate(p, referenceLimits())

	assert.True(t, v.Conforming)
}

func TestFastConforming_DiscrepaConEvaluador(t *testing.T) {
	p := entity.Percentages{PetConforming: d(95), Tracers: d(10)}
	limits := quality.Limits{MaxTracers: dp(3)}

	assert.True(t, quality.FastConforming(p), "el indicador rápido solo mira CPL >= 90")
	v := quality.Evaluate(p, limits)
	assert.False(t, v.Conforming)
	assert.Equal(t, []string{quality.ViolationTracers}, v.Violations)
}

func TestFastConforming_Umbral(t *testing.T) {
	assert.True(t, quality.FastConforming(entity.Percentages{PetConforming: d(60), OtherConforming: d(30)}))
	assert.False(t, quality.FastConforming(entity.Percentages{PetConforming: d(60), OtherConforming: d(29.9)}))
}

func TestValidate_RechazaFueraDeRango(t *testing.T) {
	err := quality.Validate(entity.Percentages{PetConforming: d(50), ForeignFraction: d(-1)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	var verr *quality.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "pct_foreign_fraction", verr.Field)

	err = quality.Validate(entity.Percentages{Tracers: d(100.5)})
	require.Error(t, err)

	assert.NoError(t, quality.Validate(entity.Percentages{PetConforming: d(100), NeutralFraction: d(0)}))
}

func TestSumWarning_AvisaSinError(t *testing.T) {
	p := entity.Percentages{
		PetConforming: d(60), OtherConforming: d(20), Tracers: d(4),
		ForeignFraction: d(10), FineFraction: d(10),
	}
	require.NoError(t, quality.Validate(p))

	sum, exceeded := quality.SumWarning(p)
	assert.True(t, sum.Equal(d(104)))
	assert.True(t, exceeded)

	_, exceeded = quality.SumWarning(entity.Percentages{PetConforming: d(100)})
	assert.False(t, exceeded)
}

func TestQuarterlyMovingAverage(t *testing.T) {
	ref := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	samples := []*entity.QualitySample{
		{ID: "a", Validated: true, SampleDate: ref.AddDate(0, -1, 0), Percentages: entity.Percentages{PetConforming: d(80), Tracers: d(2)}},
		{ID: "b", Validated: true, SampleDate: ref.AddDate(0, -3, 0), Percentages: entity.Percentages{PetConforming: d(90), Tracers: d(4)}},
		{ID: "c", Validated: false, SampleDate: ref.AddDate(0, -1, 0), Percentages: entity.Percentages{PetConforming: d(10)}},
		{ID: "d", Validated: true, SampleDate: ref.AddDate(0, -5, 0), Percentages: entity.Percentages{PetConforming: d(10)}},
	}

	avg := quality.QuarterlyMovingAverage(ref, samples)

	assert.Equal(t, 2, avg.SampleCount)
	assert.ElementsMatch(t, []string{"a", "b"}, avg.SampleIDs)
	assert.True(t, avg.Average.PetConforming.Equal(d(85)))
	assert.True(t, avg.Average.Tracers.Equal(d(3)))
}

func TestSummarize(t *testing.T) {
	yes, no := true, false
	flows := map[string]*entity.CollectionFlow{"fa": {ID: "fa", Code: "A"}, "fb": {ID: "fb", Code: "B"}}
	samples := []*entity.QualitySample{
		{FlowID: "fa", Validated: true, Conforming: &yes, Violations: []string{}, Percentages: entity.Percentages{PetConforming: d(90)}},
		{FlowID: "fa", Validated: true, Conforming: &no, Violations: []string{quality.ViolationTracers}, Percentages: entity.Percentages{PetConforming: d(70)}},
		{FlowID: "fb", Validated: true, Conforming: &no, Violations: []string{quality.ViolationTracers, quality.ViolationForeignFraction}},
		{FlowID: "fb", Validated: false},
	}

	st := quality.Summarize(samples, flows)

	assert.Equal(t, 4, st.Total)
	assert.Equal(t, 3, st.Validated)
	assert.Equal(t, 1, st.Pending)
	assert.True(t, st.ConformingPct.Equal(d(33.33)), st.ConformingPct.String())
	require.Len(t, st.ByFlow, 2)
	assert.Equal(t, "A", st.ByFlow[0].FlowCode)
	assert.True(t, st.ByFlow[0].ConformingPct.Equal(d(50)))
	require.NotEmpty(t, st.Violations)
	assert.Equal(t, quality.ViolationTracers, st.Violations[0].Code)
	assert.Equal(t, 2, st.Violations[0].Occurrences)
	assert.True(t, st.Average.PetConforming.Equal(d(40)))
}
