package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Reciclaje-api/internal/domain"
)

// Tipos de operación de lavorazione.
const (
	OperationSorting = "sorting" // selezione
	OperationBaling  = "baling"  // pressatura
	OperationStorage = "storage" // stoccaggio
)

// Destinos de una salida.
const (
	DestinationRecycling      = "recycling"
	DestinationEnergyRecovery = "energy_recovery"
	DestinationDisposal       = "disposal"
)

// Intake conferimento de material desde un comune (cantidad positiva en kg).
type Intake struct {
	ID             string
	Date           time.Time
	FormNumber     string
	FormDate       *time.Time
	MunicipalityID string
	MaterialID     string
	FlowID         *string
	QuantityKg     decimal.Decimal
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProcessingEvent lavorazione: consume cantidad de un material (selección, prensado o almacenamiento).
type ProcessingEvent struct {
	ID           string
	Date         time.Time
	MaterialID   string
	QuantityKg   decimal.Decimal
	OriginFlowID *string
	Operation    string
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Outbound salida de material hacia un destinatario.
// Si QuantityKg y UnitPrice están presentes, TotalValue = QuantityKg × UnitPrice.
type Outbound struct {
	ID               string
	Date             time.Time
	DocumentNumber   string
	FormNumber       string
	Recipient        string
	RecipientAddress string
	MaterialID       string
	QuantityKg       decimal.Decimal
	UnitPrice        *decimal.Decimal
	TotalValue       *decimal.Decimal
	Destination      string
	FlowID           *string
	Vehicle          string
	Driver           string
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Tipos de línea en el libro de movimientos de almacén.
const (
	MovementKindIntake     = "intake"
	MovementKindOutbound   = "outbound"
	MovementKindProcessing = "processing"
)

// WarehouseMovement línea firmada del libro de almacén (unión de los tres registros).
type WarehouseMovement struct {
	Date         time.Time
	Kind         string
	ReferenceID  string
	MaterialID   string
	MaterialName string
	Description  string
	QuantityKg   decimal.Decimal
	Sign         int // +1 entrada, -1 salida/consumo
}

// ReconcileTotal aplica la regla valor_total = cantidad × precio_unitario (2 decimales).
// Sin total se deriva; un total distinto se rechaza con ErrTotalMismatch.
func (o *Outbound) ReconcileTotal() error {
	if o.UnitPrice == nil {
		return nil
	}
	expected := o.QuantityKg.Mul(*o.UnitPrice).Round(2)
	if o.TotalValue == nil {
		o.TotalValue = &expected
		return nil
	}
	if !o.TotalValue.Round(2).Equal(expected) {
		return fmt.Errorf("%w: esperado %s, recibido %s", domain.ErrTotalMismatch, expected.StringFixed(2), o.TotalValue.StringFixed(2))
	}
	return nil
}
