package stock

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
)

// Point valor de la serie en una fecha de muestreo.
type Point struct {
	Date       time.Time
	QuantityKg decimal.Decimal
}

// Series serie histórica de un material.
type Series struct {
	MaterialID   string
	MaterialName string
	Points       []Point
}

// SampleDates fin de cada mes natural entre from y to; la última fecha se recorta a to.
func SampleDates(from, to time.Time) []time.Time {
	if to.Before(from) {
		return nil
	}
	var dates []time.Time
	cursor := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, from.Location())
	for {
		endOfMonth := cursor.AddDate(0, 1, 0).Add(-time.Nanosecond)
		if !endOfMonth.Before(to) {
			dates = append(dates, to)
			return dates
		}
		dates = append(dates, endOfMonth)
		cursor = cursor.AddDate(0, 1, 0)
	}
}

// Trend aplica Compute en cada fecha de muestreo. materialID vacío = una serie por material.
// Cada punto coincide con recalcular la giacenza puntual en esa fecha.
func Trend(from, to time.Time, materials []*entity.MaterialType, ledger Ledger, materialID string) []Series {
	selected := materials
	if materialID != "" {
		selected = nil
		for _, m := range materials {
			if m != nil && m.ID == materialID {
				selected = append(selected, m)
			}
		}
	}

	series := make([]Series, 0, len(selected))
	index := make(map[string]int, len(selected))
	for _, m := range selected {
		if m == nil {
			continue
		}
		index[m.ID] = len(series)
		series = append(series, Series{MaterialID: m.ID, MaterialName: m.Name, Points: []Point{}})
	}

	for _, date := range SampleDates(from, to) {
		for _, b := range Compute(date, selected, ledger) {
			i := index[b.MaterialID]
			series[i].Points = append(series[i].Points, Point{Date: date, QuantityKg: b.QuantityKg})
		}
	}
	return series
}
