package repository

import (
	"context"

	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
)

// InvoiceRepository puerto de persistencia para facturas a consorcios (cabecera + líneas por flujo).
type InvoiceRepository interface {
	// Create inserta cabecera y líneas; debe ejecutarse dentro de una transacción.
	Create(ctx context.Context, inv *entity.ConsortiumInvoice) error
	GetByID(ctx context.Context, id string) (*entity.ConsortiumInvoice, error)
	GetByPeriod(ctx context.Context, consortium string, year, month int) (*entity.ConsortiumInvoice, error)
	UpdateStatus(ctx context.Context, inv *entity.ConsortiumInvoice) error
	List(ctx context.Context, f InvoiceFilter) ([]*entity.ConsortiumInvoice, int, error)
	// NextNumber devuelve el siguiente número correlativo del año (ej. "2024/007").
	NextNumber(ctx context.Context, year int) (string, error)
}
