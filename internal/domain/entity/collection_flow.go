package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CollectionFlow flujo de recogida COREPLA (A, B, C, D) con su corrispettivo y límites de calidad.
// Un límite nil significa "sin restricción", nunca cero.
type CollectionFlow struct {
	ID                   string
	Code                 string
	Name                 string
	Description          string
	RatePerTonne         decimal.Decimal // €/t
	MaxTracers           *decimal.Decimal
	MaxForeignFraction   *decimal.Decimal
	MinConformingPlastic *decimal.Decimal
	Active               bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
