package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Consorcios de filiera reconocidos.
const (
	ConsortiumCOREPLA = "COREPLA"
	ConsortiumCORIPET = "CORIPET"
	ConsortiumRICREA  = "RICREA"
	ConsortiumCIAL    = "CIAL"
	ConsortiumCOREVE  = "COREVE"
)

// Consortiums lista de consorcios válidos.
var Consortiums = []string{ConsortiumCOREPLA, ConsortiumCORIPET, ConsortiumRICREA, ConsortiumCIAL, ConsortiumCOREVE}

// MaterialType tipología de material reciclable (ej. "Bottiglie PET").
// Una vez referenciada por movimientos solo AveragePrice y Active son modificables.
type MaterialType struct {
	ID           string
	Code         string // único
	Name         string
	Description  string
	CERCode      string // código europeo de residuos
	Consortium   string
	AveragePrice *decimal.Decimal // €/kg de referencia para valorizar la giacenza
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
