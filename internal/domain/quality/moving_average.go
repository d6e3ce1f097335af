package quality

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
)

// MovingAverageMonths ventana de la media móvil cuatrimestral.
const MovingAverageMonths = 4

// MovingAverage media de las fracciones de los análisis validados en la ventana.
type MovingAverage struct {
	From        time.Time
	To          time.Time
	Average     entity.Percentages
	SampleIDs   []string
	SampleCount int
}

// QuarterlyMovingAverage calcula la media cuatrimestral (ref-4 meses, ref] sobre los análisis validados.
// Los análisis no validados o fuera de la ventana se ignoran; sin análisis la media es cero.
func QuarterlyMovingAverage(ref time.Time, samples []*entity.QualitySample) MovingAverage {
	from := ref.AddDate(0, -MovingAverageMonths, 0)
	out := MovingAverage{From: from, To: ref, SampleIDs: []string{}}

	var sum entity.Percentages
	for _, s := range samples {
		if s == nil || !s.Validated {
			continue
		}
		if !s.SampleDate.After(from) || s.SampleDate.After(ref) {
			continue
		}
		sum = addPercentages(sum, s.Percentages)
		out.SampleIDs = append(out.SampleIDs, s.ID)
	}
	out.SampleCount = len(out.SampleIDs)
	if out.SampleCount == 0 {
		return out
	}
	n := decimal.NewFromInt(int64(out.SampleCount))
	out.Average = mapPercentages(sum, func(d decimal.Decimal) decimal.Decimal { return d.Div(n).Round(2) })
	return out
}

func addPercentages(a, b entity.Percentages) entity.Percentages {
	return entity.Percentages{
		PetConforming:      a.PetConforming.Add(b.PetConforming),
		OtherConforming:    a.OtherConforming.Add(b.OtherConforming),
		Tracers:            a.Tracers.Add(b.Tracers),
		Crates:             a.Crates.Add(b.Crates),
		CertifiedPackaging: a.CertifiedPackaging.Add(b.CertifiedPackaging),
		MiscPackaging:      a.MiscPackaging.Add(b.MiscPackaging),
		ForeignFraction:    a.ForeignFraction.Add(b.ForeignFraction),
		FineFraction:       a.FineFraction.Add(b.FineFraction),
		NeutralFraction:    a.NeutralFraction.Add(b.NeutralFraction),
	}
}

func mapPercentages(p entity.Percentages, fn func(decimal.Decimal) decimal.Decimal) entity.Percentages {
	return entity.Percentages{
		PetConforming:      fn(p.PetConforming),
		OtherConforming:    fn(p.OtherConforming),
		Tracers:            fn(p.Tracers),
		Crates:             fn(p.Crates),
		CertifiedPackaging: fn(p.CertifiedPackaging),
		MiscPackaging:      fn(p.MiscPackaging),
		ForeignFraction:    fn(p.ForeignFraction),
		FineFraction:       fn(p.FineFraction),
		NeutralFraction:    fn(p.NeutralFraction),
	}
}
