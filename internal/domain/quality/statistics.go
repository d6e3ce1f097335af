package quality

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
)

// FlowConformity conformidad agregada de un flujo.
type FlowConformity struct {
	FlowID        string
	FlowCode      string
	Total         int
	Conforming    int
	ConformingPct decimal.Decimal
}

// MunicipalityConformity análisis y conformidad de un comune.
type MunicipalityConformity struct {
	MunicipalityID string
	Total          int
	Validated      int
	Conforming     int
	ConformingPct  decimal.Decimal
}

// ViolationFrequency ocurrencias de un código de violación sobre los análisis validados.
type ViolationFrequency struct {
	Code        string
	Occurrences int
	Pct         decimal.Decimal
}

// Statistics resumen de un conjunto de análisis.
type Statistics struct {
	Total          int
	Validated      int
	Pending        int
	ConformingPct  decimal.Decimal // sobre los validados
	Average        entity.Percentages
	ByFlow         []FlowConformity
	ByMunicipality []MunicipalityConformity
	Violations     []ViolationFrequency
}

// Summarize agrega los análisis. La conformidad usa el veredicto almacenado al validar;
// los análisis en borrador cuentan en Total/Pending y en las medias, no en la conformidad.
func Summarize(samples []*entity.QualitySample, flows map[string]*entity.CollectionFlow) Statistics {
	st := Statistics{ByFlow: []FlowConformity{}, ByMunicipality: []MunicipalityConformity{}, Violations: []ViolationFrequency{}}

	var sum entity.Percentages
	byFlow := map[string]*FlowConformity{}
	byMunicipality := map[string]*MunicipalityConformity{}
	violations := map[string]int{}
	conforming := 0

	for _, s := range samples {
		if s == nil {
			continue
		}
		st.Total++
		sum = addPercentages(sum, s.Percentages)
		mc, ok := byMunicipality[s.MunicipalityID]
		if !ok {
			mc = &MunicipalityConformity{MunicipalityID: s.MunicipalityID}
			byMunicipality[s.MunicipalityID] = mc
		}
		mc.Total++
		if !s.Validated {
			st.Pending++
			continue
		}
		st.Validated++
		mc.Validated++

		fc, ok := byFlow[s.FlowID]
		if !ok {
			fc = &FlowConformity{FlowID: s.FlowID}
			if f := flows[s.FlowID]; f != nil {
				fc.FlowCode = f.Code
			}
			byFlow[s.FlowID] = fc
		}
		fc.Total++
		if s.Conforming != nil && *s.Conforming {
			conforming++
			fc.Conforming++
			mc.Conforming++
		}
		for _, code := range s.Violations {
			violations[code]++
		}
	}

	if st.Total > 0 {
		n := decimal.NewFromInt(int64(st.Total))
		st.Average = mapPercentages(sum, func(d decimal.Decimal) decimal.Decimal { return d.Div(n).Round(2) })
	}
	st.ConformingPct = pct(conforming, st.Validated)

	for _, fc := range byFlow {
		fc.ConformingPct = pct(fc.Conforming, fc.Total)
		st.ByFlow = append(st.ByFlow, *fc)
	}
	sort.Slice(st.ByFlow, func(i, j int) bool { return st.ByFlow[i].FlowCode < st.ByFlow[j].FlowCode })

	for _, mc := range byMunicipality {
		mc.ConformingPct = pct(mc.Conforming, mc.Validated)
		st.ByMunicipality = append(st.ByMunicipality, *mc)
	}
	sort.Slice(st.ByMunicipality, func(i, j int) bool {
		return st.ByMunicipality[i].MunicipalityID < st.ByMunicipality[j].MunicipalityID
	})

	for code, n := range violations {
		st.Violations = append(st.Violations, ViolationFrequency{Code: code, Occurrences: n, Pct: pct(n, st.Validated)})
	}
	sort.Slice(st.Violations, func(i, j int) bool {
		if st.Violations[i].Occurrences != st.Violations[j].Occurrences {
			return st.Violations[i].Occurrences > st.Violations[j].Occurrences
		}
		return st.Violations[i].Code < st.Violations[j].Code
	})
	return st
}

func pct(part, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).Mul(hundred).Div(decimal.NewFromInt(int64(total))).Round(2)
}
