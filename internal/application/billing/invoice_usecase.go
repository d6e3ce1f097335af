package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
	"github.com/jhoicas/Reciclaje-api/internal/application/notify"
	"github.com/jhoicas/Reciclaje-api/internal/domain"
	"github.com/jhoicas/Reciclaje-api/internal/domain/billing"
	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/domain/repository"
	"github.com/jhoicas/Reciclaje-api/pkg/logger"
)

// InvoiceUseCase genera y gestiona las facturas mensuales a consorcios.
type InvoiceUseCase struct {
	invoices  repository.InvoiceRepository
	intakes   repository.IntakeRepository
	materials repository.MaterialRepository
	flows     repository.FlowRepository
	tx        TxRunner
	pdf       InvoicePDFGenerator
	notifier  notify.Publisher
	log       *logger.Logger
	now       func() time.Time
}

// Deps dependencias del caso de uso. Notifier es opcional.
type Deps struct {
	Invoices  repository.InvoiceRepository
	Intakes   repository.IntakeRepository
	Materials repository.MaterialRepository
	Flows     repository.FlowRepository
	Tx        TxRunner
	PDF       InvoicePDFGenerator
	Notifier  notify.Publisher
	Now       func() time.Time
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(d Deps, log *logger.Logger) *InvoiceUseCase {
	now := d.Now
	if now == nil {
		now = time.Now
	}
	return &InvoiceUseCase{
		invoices:  d.Invoices,
		intakes:   d.Intakes,
		materials: d.Materials,
		flows:     d.Flows,
		tx:        d.Tx,
		pdf:       d.PDF,
		notifier:  d.Notifier,
		log:       log.Component("billing"),
		now:       now,
	}
}

// Generate calcula y guarda la factura del mes para el consorcio.
// Solo puede existir una factura por consorcio y mes (ErrDuplicate).
func (uc *InvoiceUseCase) Generate(ctx context.Context, in dto.GenerateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.Month < 1 || in.Month > 12 {
		return nil, fmt.Errorf("%w: mes %d", domain.ErrInvalidInput, in.Month)
	}
	from := time.Date(in.Year, time.Month(in.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	intakes, _, err := uc.intakes.List(ctx, repository.MovementFilter{Period: repository.Period{From: &from, To: &to}})
	if err != nil {
		return nil, fmt.Errorf("cargar ingresos: %w", err)
	}
	materials, err := uc.materials.List(ctx, false)
	if err != nil {
		return nil, err
	}
	flows, err := uc.flows.List(ctx, false)
	if err != nil {
		return nil, err
	}
	fee := billing.Compute(in.Consortium, intakes, indexMaterials(materials), indexFlows(flows))
	if len(fee.Lines) == 0 {
		return nil, fmt.Errorf("%w: ningún ingreso facturable para %s en %02d/%d", domain.ErrInvalidInput, in.Consortium, in.Month, in.Year)
	}
	if fee.UnbilledKg.IsPositive() {
		uc.log.Warn().Str("consortium", in.Consortium).Str("unbilled_kg", fee.UnbilledKg.String()).Msg("ingresos sin flujo excluidos de la factura")
	}

	now := uc.now()
	inv := &entity.ConsortiumInvoice{
		ID:         uuid.New().String(),
		Date:       now,
		Month:      in.Month,
		Year:       in.Year,
		Consortium: in.Consortium,
		QuantityKg: fee.QuantityKg,
		UnitFee:    fee.UnitFee,
		NetAmount:  fee.NetAmount,
		Status:     entity.InvoiceStatusDraft,
		Notes:      in.Notes,
		Lines:      fee.Lines,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err = uc.tx.RunInvoice(ctx, func(repo repository.InvoiceRepository) error {
		existing, err := repo.GetByPeriod(ctx, in.Consortium, in.Year, in.Month)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: factura %s ya emitida para %s %02d/%d", domain.ErrDuplicate, existing.Number, in.Consortium, in.Month, in.Year)
		}
		number, err := repo.NextNumber(ctx, in.Year)
		if err != nil {
			return err
		}
		inv.Number = number
		return repo.Create(ctx, inv)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("number", inv.Number).Str("consortium", inv.Consortium).Str("net_amount", inv.NetAmount.StringFixed(2)).Msg("factura generada")
	if uc.notifier != nil {
		uc.notifier.Publish(notify.TypeSuccess, "Factura generada", fmt.Sprintf("%s %s: € %s", inv.Number, inv.Consortium, inv.NetAmount.StringFixed(2)))
	}
	resp := ToInvoiceResponse(inv)
	if fee.UnbilledKg.IsPositive() {
		resp.UnbilledKg = &fee.UnbilledKg
	}
	return resp, nil
}

// UpdateStatus aplica una transición draft→sent→paid (o draft→paid).
func (uc *InvoiceUseCase) UpdateStatus(ctx context.Context, id string, in dto.InvoiceStatusRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !billing.CanTransition(inv.Status, in.Status) {
		return nil, fmt.Errorf("%w: transición %s → %s no permitida", domain.ErrConflict, inv.Status, in.Status)
	}
	now := uc.now()
	switch in.Status {
	case entity.InvoiceStatusSent:
		inv.SentAt = &now
	case entity.InvoiceStatusPaid:
		inv.PaidAt = &now
	}
	inv.Status = in.Status
	inv.UpdatedAt = now
	if err := uc.invoices.UpdateStatus(ctx, inv); err != nil {
		return nil, err
	}
	return ToInvoiceResponse(inv), nil
}

func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponse(inv), nil
}

func (uc *InvoiceUseCase) List(ctx context.Context, q dto.InvoiceQuery) (*dto.InvoiceListResponse, error) {
	q.DefaultPage()
	list, total, err := uc.invoices.List(ctx, repository.InvoiceFilter{
		Page:       repository.Page{Limit: q.Limit, Offset: q.Offset},
		Consortium: q.Consortium,
		Year:       q.Year,
		Status:     q.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("listar facturas: %w", err)
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *ToInvoiceResponse(inv))
	}
	return &dto.InvoiceListResponse{Items: items, Page: dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total}}, nil
}

// PDF genera el PDF de la factura. Devuelve también el nombre de archivo sugerido.
func (uc *InvoiceUseCase) PDF(ctx context.Context, id string) ([]byte, string, error) {
	inv, err := uc.get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.pdf.GenerateInvoicePDF(ctx, inv)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: %w", err)
	}
	filename := fmt.Sprintf("factura-%s-%s.pdf", strings.ReplaceAll(inv.Number, "/", "-"), strings.ToLower(inv.Consortium))
	return b, filename, nil
}

func (uc *InvoiceUseCase) get(ctx context.Context, id string) (*entity.ConsortiumInvoice, error) {
	inv, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

func indexMaterials(list []*entity.MaterialType) map[string]*entity.MaterialType {
	idx := make(map[string]*entity.MaterialType, len(list))
	for _, m := range list {
		idx[m.ID] = m
	}
	return idx
}

func indexFlows(list []*entity.CollectionFlow) map[string]*entity.CollectionFlow {
	idx := make(map[string]*entity.CollectionFlow, len(list))
	for _, f := range list {
		idx[f.ID] = f
	}
	return idx
}

// ToInvoiceResponse entity → DTO.
func ToInvoiceResponse(inv *entity.ConsortiumInvoice) *dto.InvoiceResponse {
	lines := make([]dto.InvoiceLineDTO, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, dto.InvoiceLineDTO{
			FlowID:       l.FlowID,
			FlowCode:     l.FlowCode,
			QuantityKg:   l.QuantityKg,
			RatePerTonne: l.RatePerTonne,
			Amount:       l.Amount,
		})
	}
	return &dto.InvoiceResponse{
		ID:         inv.ID,
		Number:     inv.Number,
		Date:       dto.FormatDate(inv.Date),
		Month:      inv.Month,
		Year:       inv.Year,
		Consortium: inv.Consortium,
		QuantityKg: inv.QuantityKg,
		UnitFee:    inv.UnitFee,
		NetAmount:  inv.NetAmount,
		Status:     inv.Status,
		SentAt:     inv.SentAt,
		PaidAt:     inv.PaidAt,
		Notes:      inv.Notes,
		Lines:      lines,
		CreatedAt:  inv.CreatedAt,
	}
}
