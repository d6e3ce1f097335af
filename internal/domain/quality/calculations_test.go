package quality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/domain/quality"
)

func composition() entity.Percentages {
	return entity.Percentages{
		PetConforming:      d(45),
		OtherConforming:    d(25),
		Tracers:            d(3),
		Crates:             d(2),
		CertifiedPackaging: d(5),
		MiscPackaging:      d(4),
		ForeignFraction:    d(12),
		FineFraction:       d(4),
	}
}

func TestComputeShares(t *testing.T) {
	s := quality.ComputeShares(composition())

	assert.True(t, s.TotalPackaging.Equal(d(84)), s.TotalPackaging.String())
	assert.True(t, s.ConsortiumTotal.Equal(d(79)), s.ConsortiumTotal.String())
	assert.True(t, s.PetShare.Equal(d(45)))
	assert.True(t, s.OtherCPLShare.Equal(d(25)))
	assert.True(t, s.TracersShare.Equal(d(3)))
}

func TestComputeNetFee_DescuentaExcesoDeEstranea(t *testing.T) {
	flow := &entity.CollectionFlow{RatePerTonne: d(300), MaxForeignFraction: dp(10)}

	fee := quality.ComputeNetFee(d(10000), composition(), flow)

	assert.True(t, fee.ConsortiumTonnes.Equal(d(7.9)), fee.ConsortiumTonnes.String())
	assert.True(t, fee.Gross.Equal(d(2370)), fee.Gross.String())
	assert.True(t, fee.ForeignExcessKg.Equal(d(200)), fee.ForeignExcessKg.String())
	assert.True(t, fee.ForeignExcessCost.Equal(d(60)), fee.ForeignExcessCost.String())
	assert.True(t, fee.Net.Equal(d(2310)), fee.Net.String())
}

func TestComputeNetFee_SinMaximoNoHayDescuento(t *testing.T) {
	flow := &entity.CollectionFlow{RatePerTonne: d(300)}

	fee := quality.ComputeNetFee(d(10000), composition(), flow)

	assert.True(t, fee.ForeignExcessCost.IsZero())
	assert.True(t, fee.Net.Equal(fee.Gross))
}

func TestComputeNetFee_NetoNoNegativo(t *testing.T) {
	flow := &entity.CollectionFlow{RatePerTonne: d(100), MaxForeignFraction: dp(0)}
	p := entity.Percentages{PetConforming: d(1), ForeignFraction: d(99)}

	fee := quality.ComputeNetFee(d(1000), p, flow)

	assert.True(t, fee.Gross.Equal(d(1)), fee.Gross.String())
	assert.True(t, fee.Net.IsZero())
}

func TestSummarize_PorMunicipioYPorcentajeDeViolaciones(t *testing.T) {
	yes, no := true, false
	samples := []*entity.QualitySample{
		{MunicipalityID: "m1", FlowID: "fa", Validated: true, Conforming: &yes},
		{MunicipalityID: "m1", FlowID: "fa", Validated: true, Conforming: &no, Violations: []string{quality.ViolationTracers}},
		{MunicipalityID: "m2", FlowID: "fa", Validated: true, Conforming: &no, Violations: []string{quality.ViolationTracers}},
		{MunicipalityID: "m2", FlowID: "fa"},
	}

	st := quality.Summarize(samples, nil)

	require.Len(t, st.ByMunicipality, 2)
	m1, m2 := st.ByMunicipality[0], st.ByMunicipality[1]
	assert.Equal(t, "m1", m1.MunicipalityID)
	assert.Equal(t, []int{2, 2, 1}, []int{m1.Total, m1.Validated, m1.Conforming})
	assert.Equal(t, "m2", m2.MunicipalityID)
	assert.Equal(t, []int{2, 1, 0}, []int{m2.Total, m2.Validated, m2.Conforming})
	assert.True(t, st.ByMunicipality[0].ConformingPct.Equal(d(50)))
	assert.True(t, st.ByMunicipality[1].ConformingPct.IsZero())
	assert.True(t, st.Violations[0].Pct.Equal(d(66.67)), st.Violations[0].Pct.String())
}
