package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/jhoicas/Reciclaje-api/internal/application/billing"
	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
	"github.com/jhoicas/Reciclaje-api/internal/domain"
	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/infrastructure/memory"
	"github.com/jhoicas/Reciclaje-api/pkg/logger"
)

type stubPDF struct{ number string }

func (s *stubPDF) GenerateInvoicePDF(_ context.Context, inv *entity.ConsortiumInvoice) ([]byte, error) {
	s.number = inv.Number
	return []byte("%PDF-1.3"), nil
}

func kg(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func setup(t *testing.T) (*appbilling.InvoiceUseCase, *stubPDF) {
	t.Helper()
	ctx := context.Background()
	repos := memory.NewStore().Repos()
	pet, glass, flowA, flowB := uuid.NewString(), uuid.NewString(), uuid.NewString(), uuid.NewString()
	require.NoError(t, repos.Materials.Create(ctx, &entity.MaterialType{ID: pet, Code: "PET", Consortium: entity.ConsortiumCOREPLA, Active: true}))
	require.NoError(t, repos.Materials.Create(ctx, &entity.MaterialType{ID: glass, Code: "VETRO", Consortium: entity.ConsortiumCOREVE, Active: true}))
	require.NoError(t, repos.Flows.Create(ctx, &entity.CollectionFlow{ID: flowA, Code: "A", RatePerTonne: kg(300), Active: true}))
	require.NoError(t, repos.Flows.Create(ctx, &entity.CollectionFlow{ID: flowB, Code: "B", RatePerTonne: kg(150), Active: true}))

	add := func(material string, flow *string, date time.Time, qty int64) {
		require.NoError(t, repos.Intakes.Create(ctx, &entity.Intake{ID: uuid.NewString(), MaterialID: material, FlowID: flow, Date: date, QuantityKg: kg(qty)}))
	}
	march := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	add(pet, &flowA, march, 3000)
	add(pet, &flowB, march, 1000)
	add(pet, nil, march, 400)
	add(glass, &flowA, march, 9000)
	add(pet, &flowA, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), 7000)

	pdf := &stubPDF{}
	uc := appbilling.NewInvoiceUseCase(appbilling.Deps{
		Invoices:  repos.Invoices,
		Intakes:   repos.Intakes,
		Materials: repos.Materials,
		Flows:     repos.Flows,
		Tx:        repos.Tx,
		PDF:       pdf,
		Now:       func() time.Time { return time.Date(2024, 4, 5, 9, 0, 0, 0, time.UTC) },
	}, logger.Nop())
	return uc, pdf
}

func TestGenerate_FacturaDelMes(t *testing.T) {
	uc, _ := setup(t)

	inv, err := uc.Generate(context.Background(), dto.GenerateInvoiceRequest{Consortium: entity.ConsortiumCOREPLA, Year: 2024, Month: 3})

	require.NoError(t, err)
	assert.Equal(t, "2024/001", inv.Number)
	assert.Equal(t, entity.InvoiceStatusDraft, inv.Status)
	require.Len(t, inv.Lines, 2)
	assert.Equal(t, "A", inv.Lines[0].FlowCode)
	assert.True(t, inv.QuantityKg.Equal(kg(4000)))
	assert.True(t, inv.NetAmount.Equal(kg(1050)))
	assert.True(t, inv.UnitFee.Equal(decimal.RequireFromString("0.2625")))
	require.NotNil(t, inv.UnbilledKg)
	assert.True(t, inv.UnbilledKg.Equal(kg(400)))
}

func TestGenerate_DuplicadoYNumeracion(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()
	_, err := uc.Generate(ctx, dto.GenerateInvoiceRequest{Consortium: entity.ConsortiumCOREPLA, Year: 2024, Month: 3})
	require.NoError(t, err)

	_, err = uc.Generate(ctx, dto.GenerateInvoiceRequest{Consortium: entity.ConsortiumCOREPLA, Year: 2024, Month: 3})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	next, err := uc.Generate(ctx, dto.GenerateInvoiceRequest{Consortium: entity.ConsortiumCOREVE, Year: 2024, Month: 3})
	require.NoError(t, err)
	assert.Equal(t, "2024/002", next.Number)
	assert.True(t, next.NetAmount.Equal(kg(2700)))
}

func TestGenerate_SinConferimenti(t *testing.T) {
	uc, _ := setup(t)

	_, err := uc.Generate(context.Background(), dto.GenerateInvoiceRequest{Consortium: entity.ConsortiumCIAL, Year: 2024, Month: 3})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_Transiciones(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()
	inv, err := uc.Generate(ctx, dto.GenerateInvoiceRequest{Consortium: entity.ConsortiumCOREPLA, Year: 2024, Month: 3})
	require.NoError(t, err)

	sent, err := uc.UpdateStatus(ctx, inv.ID, dto.InvoiceStatusRequest{Status: entity.InvoiceStatusSent})
	require.NoError(t, err)
	assert.NotNil(t, sent.SentAt)

	_, err = uc.UpdateStatus(ctx, inv.ID, dto.InvoiceStatusRequest{Status: entity.InvoiceStatusSent})
	assert.ErrorIs(t, err, domain.ErrConflict)

	paid, err := uc.UpdateStatus(ctx, inv.ID, dto.InvoiceStatusRequest{Status: entity.InvoiceStatusPaid})
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, paid.Status)
	assert.NotNil(t, paid.PaidAt)

	_, err = uc.UpdateStatus(ctx, uuid.NewString(), dto.InvoiceStatusRequest{Status: entity.InvoiceStatusPaid})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListYPDF(t *testing.T) {
	uc, pdf := setup(t)
	ctx := context.Background()
	inv, err := uc.Generate(ctx, dto.GenerateInvoiceRequest{Consortium: entity.ConsortiumCOREPLA, Year: 2024, Month: 3})
	require.NoError(t, err)

	list, err := uc.List(ctx, dto.InvoiceQuery{Consortium: entity.ConsortiumCOREPLA})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Page.Total)

	b, name, err := uc.PDF(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(b))
	assert.Equal(t, "factura-2024-001-corepla.pdf", name)
	assert.Equal(t, "2024/001", pdf.number)
}
