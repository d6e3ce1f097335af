package quality_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
	"github.com/jhoicas/Reciclaje-api/internal/application/notify"
	"github.com/jhoicas/Reciclaje-api/internal/application/ports"
	appquality "github.com/jhoicas/Reciclaje-api/internal/application/quality"
	"github.com/jhoicas/Reciclaje-api/internal/domain"
	"github.com/jhoicas/Reciclaje-api/internal/domain/entity"
	"github.com/jhoicas/Reciclaje-api/internal/domain/quality"
	"github.com/jhoicas/Reciclaje-api/internal/domain/repository"
	"github.com/jhoicas/Reciclaje-api/internal/infrastructure/memory"
	"github.com/jhoicas/Reciclaje-api/pkg/logger"
)

type recordingMetrics struct{ conforming, nonConforming int }

func (m *recordingMetrics) SampleValidated(ok bool) {
	if ok {
		m.conforming++
	} else {
		m.nonConforming++
	}
}

type recordingExporter struct{ last ports.Table }

func (e *recordingExporter) XLSX(t ports.Table) ([]byte, error) {
	e.last = t
	return []byte("xlsx"), nil
}

func (e *recordingExporter) CSV(t ports.Table) ([]byte, error) {
	e.last = t
	return []byte("csv"), nil
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

var today = time.Date(2024, 6, 30, 10, 0, 0, 0, time.UTC)

type fixture struct {
	uc             *appquality.SampleUseCase
	repos          memory.Repos
	metrics        *recordingMetrics
	store          *notify.Store
	exporter       *recordingExporter
	municipalityID string
	flowA          string
	flowB          string
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	repos := memory.NewStore().Repos()
	f := &fixture{
		repos:          repos,
		metrics:        &recordingMetrics{},
		store:          notify.NewStore(func() time.Time { return today }),
		exporter:       &recordingExporter{},
		municipalityID: uuid.NewString(),
		flowA:          uuid.NewString(),
		flowB:          uuid.NewString(),
	}
	require.NoError(t, repos.Municipalities.Create(ctx, &entity.Municipality{ID: f.municipalityID, IstatCode: "015146", Name: "Milano"}))
	require.NoError(t, repos.Flows.Create(ctx, &entity.CollectionFlow{
		ID: f.flowA, Code: "A", Active: true, RatePerTonne: d("300"),
		MaxTracers: dp("5"), MaxForeignFraction: dp("10"), MinConformingPlastic: dp("60"),
	}))
	require.NoError(t, repos.Flows.Create(ctx, &entity.CollectionFlow{ID: f.flowB, Code: "B", Active: true}))
	f.uc = appquality.NewSampleUseCase(appquality.Deps{
		Samples:        repos.Samples,
		Flows:          repos.Flows,
		Municipalities: repos.Municipalities,
		Intakes:        repos.Intakes,
		Exporter:       f.exporter,
		Metrics:        f.metrics,
		Notifier:       f.store,
		Now:            func() time.Time { return today },
	}, logger.Nop())
	return f
}

// Muestra conforme al flujo A: CPL 70, traccianti 3, estranea 8.
func (f *fixture) request(flowID string) dto.SampleRequest {
	return dto.SampleRequest{
		SampleDate:     "2024-06-10",
		FormNumber:     "AQ20-01",
		MunicipalityID: f.municipalityID,
		FlowID:         flowID,
		PercentagesDTO: dto.PercentagesDTO{
			PetConforming:   d("45"),
			OtherConforming: d("25"),
			Tracers:         d("3"),
			ForeignFraction: d("8"),
			FineFraction:    d("19"),
		},
	}
}

func TestCreate_SiempreBorrador(t *testing.T) {
	f := setup(t)

	resp, err := f.uc.Create(context.Background(), f.request(f.flowA))

	require.NoError(t, err)
	assert.Equal(t, entity.SampleStatusDraft, resp.Status)
	assert.False(t, resp.Validated)
	assert.Nil(t, resp.Conforme)
	assert.Empty(t, resp.Violations)
	assert.True(t, resp.Total.Equal(d("100")))
	assert.False(t, resp.SumWarning)
	assert.False(t, resp.FastConforming, "70% CPL no alcanza la señal rápida")
}

func TestCreate_FraccionFueraDeRango(t *testing.T) {
	f := setup(t)
	in := f.request(f.flowA)
	in.Tracers = d("101")

	_, err := f.uc.Create(context.Background(), in)

	var ve *quality.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "pct_tracers", ve.Field)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_SumaMayorDe100EsAviso(t *testing.T) {
	f := setup(t)
	in := f.request(f.flowA)
	in.NeutralFraction = d("5")

	resp, err := f.uc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.True(t, resp.SumWarning)
	assert.True(t, resp.Total.Equal(d("105")))
}

func TestCreate_FlujoInexistente(t *testing.T) {
	f := setup(t)

	_, err := f.uc.Create(context.Background(), f.request(uuid.NewString()))

	assert.ErrorIs(t, err, domain.ErrMissingFlow)
}

func TestValidate_ConformeGuardaVeredicto(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	created, err := f.uc.Create(ctx, f.request(f.flowA))
	require.NoError(t, err)

	res, err := f.uc.Validate(ctx, created.ID, "lab-user")

	require.NoError(t, err)
	assert.True(t, res.Conformity.Conforme)
	assert.Empty(t, res.Conformity.Violations)
	assert.Equal(t, "A", res.Conformity.FlowCode)
	assert.True(t, res.Conformity.ConformingPlasticTotal.Equal(d("70")))
	assert.Equal(t, entity.SampleStatusValidated, res.Sample.Status)
	require.NotNil(t, res.Sample.Conforme)
	assert.True(t, *res.Sample.Conforme)
	assert.Equal(t, "lab-user", res.Sample.ValidatedBy)
	assert.Equal(t, 1, f.metrics.conforming)
	notes := f.store.List()
	require.Len(t, notes, 1)
	assert.Equal(t, "Análisis validado", notes[0].Title)
	assert.Equal(t, "Muestra AQ20-01 conforme al flujo A", notes[0].Message)

	stored, err := f.uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, stored.Validated)
	require.NotNil(t, stored.Conforme)
	assert.True(t, *stored.Conforme)
}

func TestValidate_NoConformeOrdenDeViolaciones(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	in := f.request(f.flowA)
	in.PetConforming, in.OtherConforming = d("30"), d("20")
	in.Tracers, in.ForeignFraction, in.FineFraction = d("6"), d("12"), d("32")
	created, err := f.uc.Create(ctx, in)
	require.NoError(t, err)

	res, err := f.uc.Validate(ctx, created.ID, "lab-user")

	require.NoError(t, err)
	assert.False(t, res.Conformity.Conforme)
	assert.Equal(t, []string{quality.ViolationTracers, quality.ViolationForeignFraction, quality.ViolationConformingPlasticFloor}, res.Conformity.Violations)
	require.Len(t, res.Conformity.Details, 3)
	assert.True(t, res.Conformity.Details[2].Observed.Equal(d("50")))
	assert.Equal(t, 1, f.metrics.nonConforming)

	list := f.store.List()
	require.NotEmpty(t, list)
	assert.Equal(t, notify.TypeWarning, list[0].Type)
}

func TestValidate_FlujoSinLimitesSiempreConforme(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	in := f.request(f.flowB)
	in.Tracers, in.ForeignFraction = d("50"), d("40")
	in.PetConforming, in.OtherConforming, in.FineFraction = d("5"), d("5"), d("0")
	created, err := f.uc.Create(ctx, in)
	require.NoError(t, err)

	res, err := f.uc.Validate(ctx, created.ID, "lab-user")

	require.NoError(t, err)
	assert.True(t, res.Conformity.Conforme)
	assert.Nil(t, res.Conformity.Limits.MaxTracers)
}

func TestValidate_FlujoBorradoEsMissingFlow(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	created, err := f.uc.Create(ctx, f.request(f.flowB))
	require.NoError(t, err)
	sample, err := f.repos.Samples.GetByID(ctx, created.ID)
	require.NoError(t, err)
	sample.FlowID = uuid.NewString()
	require.NoError(t, f.repos.Samples.Update(ctx, sample))

	_, err = f.uc.Validate(ctx, created.ID, "lab-user")

	assert.ErrorIs(t, err, domain.ErrMissingFlow)
}

func TestUpdate_ValidadoDevuelveConflicto(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	created, err := f.uc.Create(ctx, f.request(f.flowA))
	require.NoError(t, err)
	_, err = f.uc.Validate(ctx, created.ID, "lab-user")
	require.NoError(t, err)

	_, err = f.uc.Update(ctx, created.ID, f.request(f.flowA))
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.uc.Validate(ctx, created.ID, "lab-user")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUnvalidate_VuelveABorradorYLimpiaVeredicto(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	created, err := f.uc.Create(ctx, f.request(f.flowA))
	require.NoError(t, err)
	_, err = f.uc.Validate(ctx, created.ID, "lab-user")
	require.NoError(t, err)

	resp, err := f.uc.Unvalidate(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.SampleStatusDraft, resp.Status)
	assert.Nil(t, resp.Conforme)
	assert.Nil(t, resp.ValidatedAt)
	assert.Empty(t, resp.Violations)

	_, err = f.uc.Update(ctx, created.ID, f.request(f.flowA))
	assert.NoError(t, err)

	_, err = f.uc.Unvalidate(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestBulkValidate_FallosIndependientes(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	a, err := f.uc.Create(ctx, f.request(f.flowA))
	require.NoError(t, err)
	b, err := f.uc.Create(ctx, f.request(f.flowB))
	require.NoError(t, err)
	missing := uuid.NewString()

	res := f.uc.BulkValidate(ctx, []string{a.ID, missing, b.ID}, "lab-user")

	assert.Equal(t, 2, res.Validated)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Items, 3)
	assert.True(t, res.Items[0].OK)
	assert.False(t, res.Items[1].OK)
	assert.Equal(t, "NOT_FOUND", res.Items[1].Code)
	assert.NotEmpty(t, res.Items[1].Error)
	assert.True(t, res.Items[2].OK)
}

// brokenSamples simula un fallo de la base de datos al leer.
type brokenSamples struct {
	repository.SampleRepository
}

func (brokenSamples) GetByID(context.Context, string) (*entity.QualitySample, error) {
	return nil, errors.New("pgx: conn closed (10.0.0.5:5432)")
}

func TestBulkValidate_ErrorInternoSinDetalle(t *testing.T) {
	f := setup(t)
	uc := appquality.NewSampleUseCase(appquality.Deps{
		Samples:        brokenSamples{f.repos.Samples},
		Flows:          f.repos.Flows,
		Municipalities: f.repos.Municipalities,
	}, logger.Nop())

	res := uc.BulkValidate(context.Background(), []string{uuid.NewString()}, "lab-user")

	require.Len(t, res.Items, 1)
	assert.Equal(t, "INTERNAL", res.Items[0].Code)
	assert.Equal(t, "error interno", res.Items[0].Error)
	assert.NotContains(t, res.Items[0].Error, "pgx")
}

func TestDuplicate_NuevoBorrador(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	created, err := f.uc.Create(ctx, f.request(f.flowA))
	require.NoError(t, err)
	_, err = f.uc.Validate(ctx, created.ID, "lab-user")
	require.NoError(t, err)

	cp, err := f.uc.Duplicate(ctx, created.ID, dto.DuplicateSampleRequest{})

	require.NoError(t, err)
	assert.NotEqual(t, created.ID, cp.ID)
	assert.Equal(t, entity.SampleStatusDraft, cp.Status)
	assert.True(t, cp.PetConforming.Equal(d("45")))
	assert.Nil(t, cp.Conforme)
	assert.Equal(t, "2024-06-30", cp.SampleDate)

	dated, err := f.uc.Duplicate(ctx, created.ID, dto.DuplicateSampleRequest{SampleDate: "2024-07-02"})
	require.NoError(t, err)
	assert.Equal(t, "2024-07-02", dated.SampleDate)
}

func TestCalculations_CuotasEImporteNeto(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	created, err := f.uc.Create(ctx, f.request(f.flowA))
	require.NoError(t, err)
	flowA := f.flowA
	for _, in := range []*entity.Intake{
		{ID: uuid.NewString(), Date: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), MunicipalityID: f.municipalityID, FlowID: &flowA, QuantityKg: d("10000")},
		{ID: uuid.NewString(), Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), MunicipalityID: f.municipalityID, FlowID: &flowA, QuantityKg: d("5000")},
	} {
		require.NoError(t, f.repos.Intakes.Create(ctx, in))
	}

	calc, err := f.uc.Calculations(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, "sample", calc.Basis)
	assert.Equal(t, 0, calc.MovingAverage.SampleCount)
	assert.True(t, calc.Shares.ConsortiumTotal.Equal(d("73")), calc.Shares.ConsortiumTotal.String())
	assert.True(t, calc.Conformity.Conforme)
	require.NotNil(t, calc.Fee)
	assert.True(t, calc.Fee.QuantityKg.Equal(d("10000")))
	assert.True(t, calc.Fee.ConsortiumTonnes.Equal(d("7.3")), calc.Fee.ConsortiumTonnes.String())
	assert.True(t, calc.Fee.Gross.Equal(d("2190")), calc.Fee.Gross.String())
	assert.True(t, calc.Fee.ForeignExcessCost.IsZero())
	assert.True(t, calc.Fee.Net.Equal(d("2190")))

	_, err = f.uc.Validate(ctx, created.ID, "lab")
	require.NoError(t, err)
	calc, err = f.uc.Calculations(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "moving_average", calc.Basis)
	assert.Equal(t, 1, calc.MovingAverage.SampleCount)
}

func TestCalculations_SinEntregasNoHayImporte(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	created, err := f.uc.Create(ctx, f.request(f.flowA))
	require.NoError(t, err)

	calc, err := f.uc.Calculations(ctx, created.ID)

	require.NoError(t, err)
	assert.Nil(t, calc.Fee)

	_, err = f.uc.Calculations(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConformity_NoModificaElAnalisis(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	created, err := f.uc.Create(ctx, f.request(f.flowA))
	require.NoError(t, err)

	c, err := f.uc.Conformity(ctx, created.ID)

	require.NoError(t, err)
	assert.True(t, c.Conforme)
	assert.False(t, c.FastConforming)
	require.NotNil(t, c.Limits.MinConformingPlastic)
	assert.True(t, c.Limits.MinConformingPlastic.Equal(d("60")))

	stored, err := f.uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, stored.Validated)
}

func TestStatistics(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	ok, err := f.uc.Create(ctx, f.request(f.flowA))
	require.NoError(t, err)
	bad := f.request(f.flowA)
	bad.Tracers, bad.FineFraction = d("7"), d("15")
	ko, err := f.uc.Create(ctx, bad)
	require.NoError(t, err)
	_, err = f.uc.Create(ctx, f.request(f.flowB))
	require.NoError(t, err)
	_, err = f.uc.Validate(ctx, ok.ID, "lab")
	require.NoError(t, err)
	_, err = f.uc.Validate(ctx, ko.ID, "lab")
	require.NoError(t, err)

	st, err := f.uc.Statistics(ctx, dto.StatisticsQuery{})

	require.NoError(t, err)
	assert.Equal(t, 3, st.Total)
	assert.Equal(t, 2, st.Validated)
	assert.Equal(t, 1, st.Pending)
	assert.True(t, st.ConformingPct.Equal(d("50")))
	require.Len(t, st.ByFlow, 1)
	assert.Equal(t, "A", st.ByFlow[0].FlowCode)
	require.Len(t, st.Violations, 1)
	assert.Equal(t, quality.ViolationTracers, st.Violations[0].Code)
	assert.True(t, st.Violations[0].Pct.Equal(d("50")), st.Violations[0].Pct.String())
	require.Len(t, st.ByMunicipality, 1)
	assert.Equal(t, "Milano", st.ByMunicipality[0].MunicipalityName)
	assert.Equal(t, 3, st.ByMunicipality[0].Total)
	assert.Equal(t, 2, st.ByMunicipality[0].Validated)
	assert.Equal(t, 1, st.ByMunicipality[0].Conforming)
	assert.True(t, st.ByMunicipality[0].ConformingPct.Equal(d("50")))
}

func TestMovingAverage_SoloValidadosEnVentana(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	in := f.request(f.flowA)
	in.SampleDate = "2024-05-01"
	first, err := f.uc.Create(ctx, in)
	require.NoError(t, err)
	in = f.request(f.flowA)
	in.SampleDate = "2024-06-01"
	in.PetConforming, in.FineFraction = d("55"), d("9")
	second, err := f.uc.Create(ctx, in)
	require.NoError(t, err)
	in = f.request(f.flowA)
	in.SampleDate = "2024-01-15"
	old, err := f.uc.Create(ctx, in)
	require.NoError(t, err)
	in = f.request(f.flowA)
	in.SampleDate = "2024-06-05"
	_, err = f.uc.Create(ctx, in)
	require.NoError(t, err)
	for _, id := range []string{first.ID, second.ID, old.ID} {
		_, err = f.uc.Validate(ctx, id, "lab")
		require.NoError(t, err)
	}

	ma, err := f.uc.MovingAverage(ctx, dto.MovingAverageQuery{MunicipalityID: f.municipalityID, FlowID: f.flowA, Date: "2024-06-30"})

	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", ma.From)
	assert.Equal(t, 2, ma.SampleCount)
	assert.ElementsMatch(t, []string{first.ID, second.ID}, ma.SampleIDs)
	assert.True(t, ma.Average.PetConforming.Equal(d("50")))
	require.NotNil(t, ma.Conformity)
	assert.True(t, ma.Conformity.Conforme)
}

func TestExport_CabecerasYFilas(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	_, err := f.uc.Create(ctx, f.request(f.flowA))
	require.NoError(t, err)

	b, err := f.uc.ExportCSV(ctx, dto.SampleQuery{})

	require.NoError(t, err)
	assert.Equal(t, "csv", string(b))
	require.Len(t, f.exporter.last.Rows, 1)
	assert.Len(t, f.exporter.last.Headers, 17)
	assert.Len(t, f.exporter.last.Rows[0], 17)
	assert.Equal(t, "Milano", f.exporter.last.Rows[0][2])
	assert.Equal(t, "A", f.exporter.last.Rows[0][3])
}
