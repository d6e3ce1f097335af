package quality

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Reciclaje-api/internal/domain"
	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// ValidationError porcentaje fuera de [0,100]. Envuelve domain.ErrInvalidInput.
type ValidationError struct {
	Field string
	Value decimal.Decimal
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s=%s fuera del rango [0,100]", e.Field, e.Value.String())
}

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

// Validate rechaza cualquier fracción fuera de [0,100]. Nunca recorta valores.
func Validate(p entity.Percentages) error {
	for _, f := range p.Fields() {
		if f.Value.IsNegative() || f.Value.GreaterThan(hundred) {
			return &ValidationError{Field: f.Field, Value: f.Value}
		}
	}
	return nil
}

// Sum suma de las nueve fracciones.
func Sum(p entity.Percentages) decimal.Decimal {
	total := decimal.Zero
	for _, f := range p.Fields() {
		total = total.Add(f.Value)
	}
	return total
}

// SumWarning devuelve la suma y si supera el 100%. Es un aviso de consistencia, no un error.
func SumWarning(p entity.Percentages) (decimal.Decimal, bool) {
	s := Sum(p)
	return s, s.GreaterThan(hundred)
}
