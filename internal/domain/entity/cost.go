package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de costo.
const (
	CostPersonnel   = "personnel"
	CostUtilities   = "utilities"
	CostMaintenance = "maintenance"
	CostTransport   = "transport"
	CostDisposal    = "disposal"
)

// CostCategories lista de categorías válidas.
var CostCategories = []string{CostPersonnel, CostUtilities, CostMaintenance, CostTransport, CostDisposal}

// Cost costo operativo de la planta, opcionalmente imputado a un material.
type Cost struct {
	ID             string
	Date           time.Time
	Category       string
	Description    string
	Amount         decimal.Decimal
	MaterialID     *string
	Supplier       string
	DocumentNumber string
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
