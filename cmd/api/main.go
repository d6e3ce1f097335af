// @title                       Reciclaje API
// @version                     1.0
// @description                 API de la planta de selección de residuos reciclables.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/Reciclaje-api/docs"
	"github.com/jhoicas/Reciclaje-api/internal/application/billing"
	"github.com/jhoicas/Reciclaje-api/internal/application/catalog"
	"github.com/jhoicas/Reciclaje-api/internal/application/costs"
	"github.com/jhoicas/Reciclaje-api/internal/application/ledger"
	"github.com/jhoicas/Reciclaje-api/internal/application/notify"
	"github.com/jhoicas/Reciclaje-api/internal/application/quality"
	"github.com/jhoicas/Reciclaje-api/internal/application/reports"
	"github.com/jhoicas/Reciclaje-api/internal/application/stock"
	"github.com/jhoicas/Reciclaje-api/internal/domain/repository"
	infracache "github.com/jhoicas/Reciclaje-api/internal/infrastructure/cache"
	"github.com/jhoicas/Reciclaje-api/internal/infrastructure/export"
	"github.com/jhoicas/Reciclaje-api/internal/infrastructure/memory"
	"github.com/jhoicas/Reciclaje-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Reciclaje-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Reciclaje-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Reciclaje-api/internal/interfaces/http"
	"github.com/jhoicas/Reciclaje-api/pkg/config"
	"github.com/jhoicas/Reciclaje-api/pkg/logger"
)

// repositories implementaciones de los puertos según STORAGE_DRIVER.
type repositories struct {
	municipalities repository.MunicipalityRepository
	materials      repository.MaterialRepository
	flows          repository.FlowRepository
	intakes        repository.IntakeRepository
	processing     repository.ProcessingRepository
	outbounds      repository.OutboundRepository
	samples        repository.SampleRepository
	costs          repository.CostRepository
	invoices       repository.InvoiceRepository
	snapshots      repository.SnapshotRepository
	invoiceTx      billing.TxRunner
	snapshotTx     stock.TxRunner
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.App.Storage).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repos, closeStorage := openStorage(ctx, cfg, log)
	defer closeStorage()

	var balanceCache stock.BalanceCache = infracache.NopBalanceCache{}
	if cfg.Redis.Addr != "" {
		rdb, err := infracache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, existencias sin caché")
		} else {
			defer func() { _ = rdb.Close() }()
			balanceCache = infracache.NewRedisBalanceCache(rdb, cfg.Stock.CacheTTL)
		}
	}

	appMetrics := metrics.New()
	notifications := notify.NewStore(nil)
	exporter := export.New()

	stockUC := stock.NewUseCase(stock.Deps{
		Materials:  repos.materials,
		Intakes:    repos.intakes,
		Processing: repos.processing,
		Outbounds:  repos.outbounds,
		Snapshots:  repos.snapshots,
		Tx:         repos.snapshotTx,
		Cache:      balanceCache,
		Metrics:    appMetrics,
		Notifier:   notifications,
		Exporter:   exporter,
	}, log)
	refs := ledger.References{
		Municipalities: repos.municipalities,
		Materials:      repos.materials,
		Flows:          repos.flows,
	}
	sampleUC := quality.NewSampleUseCase(quality.Deps{
		Samples:        repos.samples,
		Flows:          repos.flows,
		Municipalities: repos.municipalities,
		Intakes:        repos.intakes,
		Exporter:       exporter,
		Metrics:        appMetrics,
		Notifier:       notifications,
	}, log)
	// PDF: fattura al consorcio con los datos del impianto
	invoiceUC := billing.NewInvoiceUseCase(billing.Deps{
		Invoices:  repos.invoices,
		Intakes:   repos.intakes,
		Materials: repos.materials,
		Flows:     repos.flows,
		Tx:        repos.invoiceTx,
		PDF:       infrapdf.NewMarotoPDFGenerator(cfg.Plant),
		Notifier:  notifications,
	}, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))
	if cfg.Metrics.Enabled {
		app.Use(appMetrics.Middleware())
		app.Get("/metrics", appMetrics.Handler())
	}

	// Swagger UI en local: http://localhost:<port>/docs (especificación embebida por swag)
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       "Reciclaje API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.App.Storage})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MunicipalityUC:  catalog.NewMunicipalityUseCase(repos.municipalities),
		MaterialUC:      catalog.NewMaterialUseCase(repos.materials, stockUC, log),
		FlowUC:          catalog.NewFlowUseCase(repos.flows),
		IntakeUC:        ledger.NewIntakeUseCase(repos.intakes, refs, stockUC, log),
		ProcessingUC:    ledger.NewProcessingUseCase(repos.processing, refs, stockUC, log),
		OutboundUC:      ledger.NewOutboundUseCase(repos.outbounds, refs, stockUC, log),
		SampleUC:        sampleUC,
		StockUC:         stockUC,
		InvoiceUC:       invoiceUC,
		CostUC:          costs.NewCostUseCase(repos.costs, repos.materials, repos.intakes),
		ReportUC:        reports.NewReportUseCase(repos.intakes, repos.processing, repos.outbounds, repos.municipalities),
		NotificationsUC: notify.NewUseCase(notifications),
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStorage abre PostgreSQL (aplicando migraciones si está habilitado) o el almacén en memoria.
func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (repositories, func()) {
	if cfg.App.Storage == config.StorageMemory {
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
		r := memory.NewStore().Repos()
		return repositories{
			municipalities: r.Municipalities,
			materials:      r.Materials,
			flows:          r.Flows,
			intakes:        r.Intakes,
			processing:     r.Processing,
			outbounds:      r.Outbounds,
			samples:        r.Samples,
			costs:          r.Costs,
			invoices:       r.Invoices,
			snapshots:      r.Snapshots,
			invoiceTx:      r.Tx,
			snapshotTx:     r.Tx,
		}, func() {}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	if cfg.App.Migrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}
	txRunner := postgres.NewTxRunner(pool)
	return repositories{
		municipalities: postgres.NewMunicipalityRepository(pool),
		materials:      postgres.NewMaterialRepository(pool),
		flows:          postgres.NewFlowRepository(pool),
		intakes:        postgres.NewIntakeRepository(pool),
		processing:     postgres.NewProcessingRepository(pool),
		outbounds:      postgres.NewOutboundRepository(pool),
		samples:        postgres.NewSampleRepository(pool),
		costs:          postgres.NewCostRepository(pool),
		invoices:       postgres.NewInvoiceRepository(pool),
		snapshots:      postgres.NewSnapshotRepository(pool),
		invoiceTx:      txRunner,
		snapshotTx:     txRunner,
	}, pool.Close
}
