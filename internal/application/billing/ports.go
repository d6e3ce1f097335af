// Package billing casos de uso de la facturación mensual de corrispettivi a los consorcios de filiera.
package billing

import (
	"context"

	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/domain/repository"
)

// TxRunner ejecuta la numeración y el alta de la factura en una sola transacción.
type TxRunner interface {
	RunInvoice(ctx context.Context, fn func(repo repository.InvoiceRepository) error) error
}

// InvoicePDFGenerator puerto de salida para la representación imprimible de la factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, inv *entity.ConsortiumInvoice) ([]byte, error)
}
