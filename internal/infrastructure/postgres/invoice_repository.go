package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Reciclaje-api/internal/domain"
	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, number, date, month, year, consortium, quantity_kg, unit_fee, net_amount, status,
	sent_at, paid_at, notes, created_at, updated_at`

// InvoiceRepo implementación de InvoiceRepository sobre PostgreSQL.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador de facturas a consorcios.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

func scanInvoice(row rowScanner) (*entity.ConsortiumInvoice, error) {
	var inv entity.ConsortiumInvoice
	err := row.Scan(&inv.ID, &inv.Number, &inv.Date, &inv.Month, &inv.Year, &inv.Consortium,
		&inv.QuantityKg, &inv.UnitFee, &inv.NetAmount, &inv.Status, &inv.SentAt, &inv.PaidAt,
		&inv.Notes, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// Create inserta cabecera y líneas. Un segundo documento para el mismo consorcio y mes es ErrDuplicate.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.ConsortiumInvoice) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO consortium_invoices (`+invoiceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		inv.ID, inv.Number, dateOnly(inv.Date), inv.Month, inv.Year, inv.Consortium,
		inv.QuantityKg, inv.UnitFee, inv.NetAmount, inv.Status, inv.SentAt, inv.PaidAt,
		inv.Notes, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	for _, l := range inv.Lines {
		_, err := r.q.Exec(ctx, `
			INSERT INTO consortium_invoice_lines (invoice_id, flow_id, flow_code, quantity_kg, rate_per_tonne, amount)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			inv.ID, l.FlowID, l.FlowCode, l.QuantityKg, l.RatePerTonne, l.Amount,
		)
		if err != nil {
			return fmt.Errorf("insert invoice line: %w", err)
		}
	}
	return nil
}

func (r *InvoiceRepo) loadLines(ctx context.Context, inv *entity.ConsortiumInvoice) error {
	rows, err := r.q.Query(ctx, `
		SELECT flow_id, flow_code, quantity_kg, rate_per_tonne, amount
		FROM consortium_invoice_lines WHERE invoice_id = $1 ORDER BY flow_code`, inv.ID)
	if err != nil {
		return fmt.Errorf("list invoice lines: %w", err)
	}
	defer rows.Close()
	inv.Lines = []entity.InvoiceLine{}
	for rows.Next() {
		var l entity.InvoiceLine
		if err := rows.Scan(&l.FlowID, &l.FlowCode, &l.QuantityKg, &l.RatePerTonne, &l.Amount); err != nil {
			return fmt.Errorf("scan invoice line: %w", err)
		}
		inv.Lines = append(inv.Lines, l)
	}
	return rows.Err()
}

func (r *InvoiceRepo) getOne(ctx context.Context, query string, args ...any) (*entity.ConsortiumInvoice, error) {
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if err := r.loadLines(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.ConsortiumInvoice, error) {
	return r.getOne(ctx, `SELECT `+invoiceColumns+` FROM consortium_invoices WHERE id = $1`, id)
}

func (r *InvoiceRepo) GetByPeriod(ctx context.Context, consortium string, year, month int) (*entity.ConsortiumInvoice, error) {
	return r.getOne(ctx, `SELECT `+invoiceColumns+` FROM consortium_invoices WHERE consortium = $1 AND year = $2 AND month = $3`,
		consortium, year, month)
}

func (r *InvoiceRepo) UpdateStatus(ctx context.Context, inv *entity.ConsortiumInvoice) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE consortium_invoices SET status = $2, sent_at = $3, paid_at = $4, updated_at = $5 WHERE id = $1`,
		inv.ID, inv.Status, inv.SentAt, inv.PaidAt, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve cabeceras sin líneas, más recientes primero.
func (r *InvoiceRepo) List(ctx context.Context, f repository.InvoiceFilter) ([]*entity.ConsortiumInvoice, int, error) {
	w := &where{}
	if f.Consortium != "" {
		w.add("consortium = $%d", f.Consortium)
	}
	if f.Year > 0 {
		w.add("year = $%d", f.Year)
	}
	if f.Status != "" {
		w.add("status = $%d", f.Status)
	}
	total, err := count(ctx, r.q, "consortium_invoices", w)
	if err != nil {
		return nil, 0, err
	}
	limit, args := w.paginate(f.Page)
	rows, err := r.q.Query(ctx, `SELECT `+invoiceColumns+` FROM consortium_invoices`+w.String()+` ORDER BY year DESC, month DESC, consortium`+limit, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	list := []*entity.ConsortiumInvoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, total, rows.Err()
}

// NextNumber cuenta las facturas del año; el correlativo se reinicia cada año.
func (r *InvoiceRepo) NextNumber(ctx context.Context, year int) (string, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM consortium_invoices WHERE year = $1`, year).Scan(&n); err != nil {
		return "", fmt.Errorf("next invoice number: %w", err)
	}
	return fmt.Sprintf("%d/%03d", year, n+1), nil
}
