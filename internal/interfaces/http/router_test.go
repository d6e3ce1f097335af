package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reciclaje-api/internal/application/billing"
	"github.com/jhoicas/Reciclaje-api/internal/application/catalog"
	"github.com/jhoicas/Reciclaje-api/internal/application/costs"
	"github.com/jhoicas/Reciclaje-api/internal/application/ledger"
	"github.com/jhoicas/Reciclaje-api/internal/application/notify"
	"github.com/jhoicas/Reciclaje-api/internal/application/quality"
	"github.com/jhoicas/Reciclaje-api/internal/application/reports"
	"github.com/jhoicas/Reciclaje-api/internal/application/stock"
	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/infrastructure/export"
	"github.com/jhoicas/Reciclaje-api/internal/infrastructure/memory"
	"github.com/jhoicas/Reciclaje-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Reciclaje-api/internal/interfaces/http"
	"github.com/jhoicas/Reciclaje-api/pkg/config"
	pkgjwt "github.com/jhoicas/Reciclaje-api/pkg/jwt"
	"github.com/jhoicas/Reciclaje-api/pkg/logger"
)

type env struct {
	app            *fiber.App
	repos          memory.Repos
	notifications  *notify.Store
	municipalityID string
	materialID     string
	flowA          string
}

func dec(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

// newEnv arma la API completa sobre el almacén en memoria, con un comune,
// un material COREPLA y el flujo A (traccianti ≤ 5, estranea ≤ 10, CPL ≥ 60).
func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()
	log := logger.Nop()
	repos := memory.NewStore().Repos()
	store := notify.NewStore(nil)
	exporter := export.New()

	e := &env{
		repos:          repos,
		notifications:  store,
		municipalityID: uuid.NewString(),
		materialID:     uuid.NewString(),
		flowA:          uuid.NewString(),
	}
	require.NoError(t, repos.Municipalities.Create(ctx, &entity.Municipality{ID: e.municipalityID, IstatCode: "015146", Name: "Milano", Province: "MI"}))
	require.NoError(t, repos.Materials.Create(ctx, &entity.MaterialType{
		ID: e.materialID, Code: "CPL", Name: "Plastica CPL", Consortium: "COREPLA", AveragePrice: dec("0.20"), Active: true,
	}))
	require.NoError(t, repos.Flows.Create(ctx, &entity.CollectionFlow{
		ID: e.flowA, Code: "A", Name: "Flusso A", RatePerTonne: decimal.NewFromInt(100), Active: true,
		MaxTracers: dec("5"), MaxForeignFraction: dec("10"), MinConformingPlastic: dec("60"),
	}))

	stockUC := stock.NewUseCase(stock.Deps{
		Materials:  repos.Materials,
		Intakes:    repos.Intakes,
		Processing: repos.Processing,
		Outbounds:  repos.Outbounds,
		Snapshots:  repos.Snapshots,
		Tx:         repos.Tx,
		Notifier:   store,
		Exporter:   exporter,
	}, log)
	refs := ledger.References{Municipalities: repos.Municipalities, Materials: repos.Materials, Flows: repos.Flows}

	e.app = fiber.New()
	apphttp.Router(e.app, apphttp.RouterDeps{
		MunicipalityUC: catalog.NewMunicipalityUseCase(repos.Municipalities),
		MaterialUC:     catalog.NewMaterialUseCase(repos.Materials, stockUC, log),
		FlowUC:         catalog.NewFlowUseCase(repos.Flows),
		IntakeUC:       ledger.NewIntakeUseCase(repos.Intakes, refs, stockUC, log),
		ProcessingUC:   ledger.NewProcessingUseCase(repos.Processing, refs, stockUC, log),
		OutboundUC:     ledger.NewOutboundUseCase(repos.Outbounds, refs, stockUC, log),
		SampleUC: quality.NewSampleUseCase(quality.Deps{
			Samples:        repos.Samples,
			Flows:          repos.Flows,
			Municipalities: repos.Municipalities,
			Intakes:        repos.Intakes,
			Exporter:       exporter,
			Notifier:       store,
		}, log),
		StockUC: stockUC,
		InvoiceUC: billing.NewInvoiceUseCase(billing.Deps{
			Invoices:  repos.Invoices,
			Intakes:   repos.Intakes,
			Materials: repos.Materials,
			Flows:     repos.Flows,
			Tx:        repos.Tx,
			PDF:       pdf.NewMarotoPDFGenerator(config.PlantConfig{Name: "Impianto Test", VATNumber: "IT01234567890"}),
			Notifier:  store,
			Now:       func() time.Time { return time.Date(2024, 7, 2, 9, 0, 0, 0, time.UTC) },
		}, log),
		CostUC:          costs.NewCostUseCase(repos.Costs, repos.Materials, repos.Intakes),
		ReportUC:        reports.NewReportUseCase(repos.Intakes, repos.Processing, repos.Outbounds, repos.Municipalities),
		NotificationsUC: notify.NewUseCase(store),
		JWTSecret:       testJWTSecret,
	})
	return e
}

// do lanza una petición autenticada con el rol indicado y devuelve estado y cuerpo.
func (e *env) do(t *testing.T, method, path, role string, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m), string(raw))
	return m
}

func sampleBody(e *env, pet, tracers, foreign string) map[string]any {
	return map[string]any{
		"sample_date":          "2024-06-10",
		"form_number":          "AQ20-01",
		"municipality_id":      e.municipalityID,
		"flow_id":              e.flowA,
		"pct_pet_conforming":   pet,
		"pct_other_conforming": "20",
		"pct_tracers":          tracers,
		"pct_foreign_fraction": foreign,
	}
}

func TestRouter_SinToken_Retorna401(t *testing.T) {
	e := newEnv(t)

	status, body := e.do(t, http.MethodGet, "/api/materials", "", nil)

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestRouter_CatalogoSoloAdminEscribe(t *testing.T) {
	e := newEnv(t)
	in := map[string]any{"code": "b", "name": "Flusso B", "rate_per_tonne": "80"}

	status, _ := e.do(t, http.MethodPost, "/api/flows", pkgjwt.RoleLab, in)
	assert.Equal(t, http.StatusForbidden, status)

	status, body := e.do(t, http.MethodPost, "/api/flows", pkgjwt.RoleAdmin, in)
	require.Equal(t, http.StatusCreated, status, string(body))
	assert.Equal(t, "B", decode(t, body)["code"])

	status, body = e.do(t, http.MethodGet, "/api/flows", pkgjwt.RoleLab, nil)
	require.Equal(t, http.StatusOK, status)
	var flows []map[string]any
	require.NoError(t, json.Unmarshal(body, &flows))
	assert.Len(t, flows, 2)
}

func TestRouter_ValidacionDeCampos(t *testing.T) {
	e := newEnv(t)

	status, body := e.do(t, http.MethodPost, "/api/intakes", pkgjwt.RoleOperator, map[string]any{
		"date":        "10/06/2024",
		"material_id": e.materialID,
		"quantity_kg": "0",
	})

	require.Equal(t, http.StatusBadRequest, status)
	resp := decode(t, body)
	assert.Equal(t, "VALIDATION", resp["code"])
	fields := resp["fields"].(map[string]any)
	assert.Equal(t, "datetime", fields["date"])
	assert.Equal(t, "required", fields["municipality_id"])
	assert.Equal(t, "gt", fields["quantity_kg"])
}

func TestRouter_ReferenciaInexistente_Retorna404(t *testing.T) {
	e := newEnv(t)

	status, body := e.do(t, http.MethodPost, "/api/intakes", pkgjwt.RoleOperator, map[string]any{
		"date":            "2024-06-10",
		"municipality_id": uuid.NewString(),
		"material_id":     e.materialID,
		"quantity_kg":     "100",
	})

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", decode(t, body)["code"])
}

func TestRouter_CicloDeVidaDelAnalisis(t *testing.T) {
	e := newEnv(t)

	status, body := e.do(t, http.MethodPost, "/api/samples", pkgjwt.RoleLab, sampleBody(e, "50", "3", "8"))
	require.Equal(t, http.StatusCreated, status, string(body))
	created := decode(t, body)
	id := created["id"].(string)
	assert.Equal(t, "draft", created["status"])
	assert.Equal(t, false, created["fast_conforming"])

	status, body = e.do(t, http.MethodPost, "/api/samples/"+id+"/validate", pkgjwt.RoleLab, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	validated := decode(t, body)
	assert.Equal(t, true, validated["conformity"].(map[string]any)["conforme"])
	assert.Equal(t, true, validated["sample"].(map[string]any)["validated"])

	status, _ = e.do(t, http.MethodPut, "/api/samples/"+id, pkgjwt.RoleLab, sampleBody(e, "50", "3", "8"))
	assert.Equal(t, http.StatusConflict, status)

	status, _ = e.do(t, http.MethodPost, "/api/samples/"+id+"/validate", pkgjwt.RoleLab, nil)
	assert.Equal(t, http.StatusConflict, status)

	status, _ = e.do(t, http.MethodPost, "/api/samples/"+id+"/unvalidate", pkgjwt.RoleLab, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, body = e.do(t, http.MethodPost, "/api/samples/"+id+"/unvalidate", pkgjwt.RoleAdmin, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	reverted := decode(t, body)
	assert.Equal(t, "draft", reverted["status"])
	assert.Nil(t, reverted["conforme"])
}

func TestRouter_ConformidadConViolaciones(t *testing.T) {
	e := newEnv(t)

	_, body := e.do(t, http.MethodPost, "/api/samples", pkgjwt.RoleLab, sampleBody(e, "30", "7", "12"))
	id := decode(t, body)["id"].(string)

	status, body := e.do(t, http.MethodGet, "/api/samples/"+id+"/conformity", pkgjwt.RoleOperator, nil)

	require.Equal(t, http.StatusOK, status, string(body))
	resp := decode(t, body)
	assert.Equal(t, false, resp["conforme"])
	assert.Equal(t, []any{"tracers", "foreign-fraction", "conforming-plastic-floor"}, resp["violations"])
}

func TestRouter_PorcentajeFueraDeRango_Retorna400(t *testing.T) {
	e := newEnv(t)

	status, body := e.do(t, http.MethodPost, "/api/samples", pkgjwt.RoleLab, sampleBody(e, "120", "3", "8"))

	require.Equal(t, http.StatusBadRequest, status)
	resp := decode(t, body)
	assert.Equal(t, "INVALID_PERCENTAGE", resp["code"])
}

func TestRouter_ValidacionMultiple(t *testing.T) {
	e := newEnv(t)
	_, body := e.do(t, http.MethodPost, "/api/samples", pkgjwt.RoleLab, sampleBody(e, "50", "3", "8"))
	id := decode(t, body)["id"].(string)

	status, body := e.do(t, http.MethodPost, "/api/samples/validate-multiple", pkgjwt.RoleLab,
		map[string]any{"ids": []string{id, uuid.NewString()}})

	require.Equal(t, http.StatusOK, status, string(body))
	resp := decode(t, body)
	assert.EqualValues(t, 1, resp["validated"])
	assert.EqualValues(t, 1, resp["failed"])
}

func TestRouter_SalidaConTotalIncoherente_Retorna422(t *testing.T) {
	e := newEnv(t)

	status, body := e.do(t, http.MethodPost, "/api/outbounds", pkgjwt.RoleOperator, map[string]any{
		"date":        "2024-06-12",
		"recipient":   "Riciclo Srl",
		"material_id": e.materialID,
		"quantity_kg": "1000",
		"unit_price":  "0.30",
		"total_value": "350",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "TOTAL_MISMATCH", decode(t, body)["code"])
}

func TestRouter_GiacenzaTrasMovimientos(t *testing.T) {
	e := newEnv(t)
	status, body := e.do(t, http.MethodPost, "/api/intakes", pkgjwt.RoleOperator, map[string]any{
		"date":            "2024-06-10",
		"municipality_id": e.municipalityID,
		"material_id":     e.materialID,
		"flow_id":         e.flowA,
		"quantity_kg":     "2500",
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	status, body = e.do(t, http.MethodPost, "/api/outbounds", pkgjwt.RoleOperator, map[string]any{
		"date":        "2024-06-20",
		"recipient":   "Riciclo Srl",
		"material_id": e.materialID,
		"quantity_kg": "1000",
		"unit_price":  "0.30",
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	assert.Equal(t, "300", decode(t, body)["total_value"])

	status, body = e.do(t, http.MethodGet, "/api/stock?date=2024-06-15", pkgjwt.RoleLab, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	item := decode(t, body)["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "2500", item["quantity_kg"])
	assert.Equal(t, false, item["is_low_stock"])

	status, body = e.do(t, http.MethodGet, "/api/stock?date=2024-06-30", pkgjwt.RoleLab, nil)
	require.Equal(t, http.StatusOK, status)
	item = decode(t, body)["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "1500", item["quantity_kg"])
	assert.Equal(t, "300", item["total_value"])

	status, body = e.do(t, http.MethodGet, "/api/stock/movements", pkgjwt.RoleLab, nil)
	require.Equal(t, http.StatusOK, status)
	movements := decode(t, body)["items"].([]any)
	require.Len(t, movements, 2)
	assert.Equal(t, "-1000", movements[0].(map[string]any)["signed_kg"])
}

func TestRouter_FacturaMensualYPDF(t *testing.T) {
	e := newEnv(t)
	status, body := e.do(t, http.MethodPost, "/api/intakes", pkgjwt.RoleOperator, map[string]any{
		"date":            "2024-06-10",
		"municipality_id": e.municipalityID,
		"material_id":     e.materialID,
		"flow_id":         e.flowA,
		"quantity_kg":     "2000",
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	gen := map[string]any{"consortium": "COREPLA", "year": 2024, "month": 6}

	status, _ = e.do(t, http.MethodPost, "/api/invoices/generate", pkgjwt.RoleOperator, gen)
	assert.Equal(t, http.StatusForbidden, status)

	status, body = e.do(t, http.MethodPost, "/api/invoices/generate", pkgjwt.RoleAdmin, gen)
	require.Equal(t, http.StatusCreated, status, string(body))
	inv := decode(t, body)
	assert.Equal(t, "2024/001", inv["number"])
	assert.Equal(t, "200", inv["net_amount"])

	status, _ = e.do(t, http.MethodPost, "/api/invoices/generate", pkgjwt.RoleAdmin, gen)
	assert.Equal(t, http.StatusConflict, status)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/"+inv["id"].(string)+"/pdf", nil)
	req.Header.Set("Authorization", tokenForRole(t, pkgjwt.RoleOperator))
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "factura-2024-001-corepla.pdf")
}

func TestRouter_Notificaciones(t *testing.T) {
	e := newEnv(t)
	n := e.notifications.Publish(notify.TypeWarning, "Stock bajo", "CPL bajo el umbral")

	status, body := e.do(t, http.MethodGet, "/api/notifications", pkgjwt.RoleOperator, nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, decode(t, body)["unread"])

	status, _ = e.do(t, http.MethodPost, "/api/notifications/"+n.ID+"/read", pkgjwt.RoleOperator, nil)
	assert.Equal(t, http.StatusNoContent, status)

	_, body = e.do(t, http.MethodGet, "/api/notifications", pkgjwt.RoleOperator, nil)
	assert.EqualValues(t, 0, decode(t, body)["unread"])

	status, _ = e.do(t, http.MethodDelete, "/api/notifications/"+uuid.NewString(), pkgjwt.RoleOperator, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRouter_RecursoInexistente_Retorna404(t *testing.T) {
	e := newEnv(t)

	status, body := e.do(t, http.MethodGet, "/api/samples/"+uuid.NewString(), pkgjwt.RoleLab, nil)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", decode(t, body)["code"])
}

func TestRouter_CalculosYDuplicadoConFecha(t *testing.T) {
	e := newEnv(t)

	status, body := e.do(t, http.MethodPost, "/api/samples", pkgjwt.RoleLab, sampleBody(e, "50", "3", "8"))
	require.Equal(t, http.StatusCreated, status, string(body))
	id := decode(t, body)["id"].(string)

	status, body = e.do(t, http.MethodPost, "/api/intakes", pkgjwt.RoleOperator, map[string]any{
		"date":            "2024-06-20",
		"municipality_id": e.municipalityID,
		"material_id":     e.materialID,
		"flow_id":         e.flowA,
		"quantity_kg":     "2000",
	})
	require.Equal(t, http.StatusCreated, status, string(body))

	status, body = e.do(t, http.MethodGet, "/api/samples/"+id+"/calculations", pkgjwt.RoleOperator, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	calc := decode(t, body)
	assert.Equal(t, "sample", calc["basis"])
	assert.Equal(t, "73", calc["shares"].(map[string]any)["consortium_total"])
	fee := calc["fee"].(map[string]any)
	assert.Equal(t, "1.46", fee["consortium_tonnes"])
	assert.Equal(t, "146", fee["net"])

	status, body = e.do(t, http.MethodPost, "/api/samples/"+id+"/duplicate", pkgjwt.RoleLab, map[string]any{"sample_date": "2024-07-01"})
	require.Equal(t, http.StatusCreated, status, string(body))
	dup := decode(t, body)
	assert.Equal(t, "2024-07-01", dup["sample_date"])
	assert.Equal(t, "draft", dup["status"])

	status, body = e.do(t, http.MethodPost, "/api/samples/"+id+"/duplicate", pkgjwt.RoleLab, map[string]any{"sample_date": "01/07/2024"})
	assert.Equal(t, http.StatusBadRequest, status, string(body))

	status, _ = e.do(t, http.MethodGet, "/api/samples/"+uuid.NewString()+"/calculations", pkgjwt.RoleOperator, nil)
	assert.Equal(t, http.StatusNotFound, status)
}
