package repository

import "time"

// Period rango de fechas opcional (ambos extremos inclusivos).
type Period struct {
	From *time.Time
	To   *time.Time
}

// Page paginación. Limit 0 = sin límite.
type Page struct {
	Limit  int
	Offset int
}

// MovementFilter filtros comunes a los tres libros de movimientos.
type MovementFilter struct {
	Period
	Page
	MunicipalityID string // solo ingresos
	MaterialID     string
	FlowID         string
	Recipient      string // solo salidas, búsqueda parcial
	Operation      string // solo lavorazioni
}

// SampleFilter filtros del listado de análisis de calidad.
type SampleFilter struct {
	Period
	Page
	MunicipalityID string
	FlowID         string
	Validated      *bool
}

// MunicipalityFilter filtros del listado de comuni.
type MunicipalityFilter struct {
	Page
	Search           string // por nombre, parcial e insensible a mayúsculas
	DelegationActive *bool
}

// CostFilter filtros del listado de costos.
type CostFilter struct {
	Period
	Page
	Category   string
	MaterialID string
}

// InvoiceFilter filtros del listado de facturas a consorcios.
type InvoiceFilter struct {
	Page
	Consortium string
	Year       int
	Status     string
}
