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

var _ repository.OutboundRepository = (*OutboundRepo)(nil)

const outboundColumns = `id, date, document_number, form_number, recipient, recipient_address, material_id, quantity_kg,
	unit_price, total_value, destination, flow_id, vehicle, driver, notes, created_at, updated_at`

// OutboundRepo implementación de OutboundRepository sobre PostgreSQL.
type OutboundRepo struct {
	q Querier
}

// NewOutboundRepository construye el adaptador de salidas.
func NewOutboundRepository(q Querier) *OutboundRepo {
	return &OutboundRepo{q: q}
}

func scanOutbound(row rowScanner) (*entity.Outbound, error) {
	var o entity.Outbound
	err := row.Scan(&o.ID, &o.Date, &o.DocumentNumber, &o.FormNumber, &o.Recipient, &o.RecipientAddress,
		&o.MaterialID, &o.QuantityKg, &o.UnitPrice, &o.TotalValue, &o.Destination, &o.FlowID,
		&o.Vehicle, &o.Driver, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OutboundRepo) Create(ctx context.Context, o *entity.Outbound) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO outbounds (`+outboundColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		o.ID, dateOnly(o.Date), o.DocumentNumber, o.FormNumber, o.Recipient, o.RecipientAddress,
		o.MaterialID, o.QuantityKg, o.UnitPrice, o.TotalValue, o.Destination, o.FlowID,
		o.Vehicle, o.Driver, o.Notes, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: material o flujo inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert outbound: %w", err)
	}
	return nil
}

func (r *OutboundRepo) GetByID(ctx context.Context, id string) (*entity.Outbound, error) {
	o, err := scanOutbound(r.q.QueryRow(ctx, `SELECT `+outboundColumns+` FROM outbounds WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get outbound: %w", err)
	}
	return o, nil
}

func (r *OutboundRepo) Update(ctx context.Context, o *entity.Outbound) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE outbounds SET date = $2, document_number = $3, form_number = $4, recipient = $5, recipient_address = $6,
			material_id = $7, quantity_kg = $8, unit_price = $9, total_value = $10, destination = $11, flow_id = $12,
			vehicle = $13, driver = $14, notes = $15, updated_at = $16
		WHERE id = $1`,
		o.ID, dateOnly(o.Date), o.DocumentNumber, o.FormNumber, o.Recipient, o.RecipientAddress,
		o.MaterialID, o.QuantityKg, o.UnitPrice, o.TotalValue, o.Destination, o.FlowID,
		o.Vehicle, o.Driver, o.Notes, o.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: material o flujo inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("update outbound: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OutboundRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM outbounds WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete outbound: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OutboundRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.Outbound, int, error) {
	w := &where{}
	w.period("date", f.Period)
	if f.MaterialID != "" {
		w.add("material_id = $%d", f.MaterialID)
	}
	if f.FlowID != "" {
		w.add("flow_id = $%d", f.FlowID)
	}
	if f.Recipient != "" {
		w.add("recipient ILIKE $%d", "%"+f.Recipient+"%")
	}
	total, err := count(ctx, r.q, "outbounds", w)
	if err != nil {
		return nil, 0, err
	}
	limit, args := w.paginate(f.Page)
	rows, err := r.q.Query(ctx, `SELECT `+outboundColumns+` FROM outbounds`+w.String()+` ORDER BY date DESC, created_at DESC`+limit, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list outbounds: %w", err)
	}
	defer rows.Close()
	list := []*entity.Outbound{}
	for rows.Next() {
		o, err := scanOutbound(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan outbound: %w", err)
		}
		list = append(list, o)
	}
	return list, total, rows.Err()
}
