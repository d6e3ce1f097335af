package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reciclaje-api/internal/application/billing"
	"github.com/jhoicas/Reciclaje-api/internal/application/catalog"
	"github.com/jhoicas/Reciclaje-api/internal/application/costs"
	"github.com/jhoicas/Reciclaje-api/internal/application/ledger"
	"github.com/jhoicas/Reciclaje-api/internal/application/notify"
	"github.com/jhoicas/Reciclaje-api/internal/application/quality"
	"github.com/jhoicas/Reciclaje-api/internal/application/reports"
	"github.com/jhoicas/Reciclaje-api/internal/application/stock"
	"github.com/jhoicas/Reciclaje-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MunicipalityUC  *catalog.MunicipalityUseCase
	MaterialUC      *catalog.MaterialUseCase
	FlowUC          *catalog.FlowUseCase
	IntakeUC        *ledger.IntakeUseCase
	ProcessingUC    *ledger.ProcessingUseCase
	OutboundUC      *ledger.OutboundUseCase
	SampleUC        *quality.SampleUseCase
	StockUC         *stock.UseCase
	InvoiceUC       *billing.InvoiceUseCase
	CostUC          *costs.CostUseCase
	ReportUC        *reports.ReportUseCase
	NotificationsUC *notify.UseCase
	JWTSecret       string
}

// Router registra las rutas de la API. Todas requieren Bearer Token;
// las lecturas admiten cualquier rol y las escrituras se limitan por rol.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret), RequireRole())

	admin := RequireRole(jwt.RoleAdmin)
	operators := RequireRole(jwt.RoleAdmin, jwt.RoleOperator)
	lab := RequireRole(jwt.RoleAdmin, jwt.RoleLab)

	// Comuni
	municipalities := api.Group("/municipalities")
	municipalityHandler := NewMunicipalityHandler(deps.MunicipalityUC)
	municipalities.Get("/", municipalityHandler.List)
	municipalities.Get("/istat/:code", municipalityHandler.GetByIstatCode)
	municipalities.Get("/:id", municipalityHandler.GetByID)
	municipalities.Post("/", admin, municipalityHandler.Create)
	municipalities.Put("/:id", admin, municipalityHandler.Update)
	municipalities.Post("/:id/toggle-delegation", admin, municipalityHandler.ToggleDelegation)
	municipalities.Delete("/:id", admin, municipalityHandler.Delete)

	// Tipologías de material
	materials := api.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Get("/", materialHandler.List)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Post("/", admin, materialHandler.Create)
	materials.Put("/:id", admin, materialHandler.Update)
	materials.Delete("/:id", admin, materialHandler.Delete)

	// Flujos de recogida
	flows := api.Group("/flows")
	flowHandler := NewFlowHandler(deps.FlowUC)
	flows.Get("/", flowHandler.List)
	flows.Get("/:id", flowHandler.GetByID)
	flows.Post("/", admin, flowHandler.Create)
	flows.Put("/:id", admin, flowHandler.Update)
	flows.Delete("/:id", admin, flowHandler.Delete)

	// Conferimenti
	intakes := api.Group("/intakes")
	intakeHandler := NewIntakeHandler(deps.IntakeUC)
	intakes.Get("/", intakeHandler.List)
	intakes.Get("/summary", intakeHandler.Summary)
	intakes.Get("/:id", intakeHandler.GetByID)
	intakes.Post("/", operators, intakeHandler.Create)
	intakes.Put("/:id", operators, intakeHandler.Update)
	intakes.Delete("/:id", operators, intakeHandler.Delete)

	// Lavorazioni
	processing := api.Group("/processing")
	processingHandler := NewProcessingHandler(deps.ProcessingUC)
	processing.Get("/", processingHandler.List)
	processing.Get("/:id", processingHandler.GetByID)
	processing.Post("/", operators, processingHandler.Create)
	processing.Put("/:id", operators, processingHandler.Update)
	processing.Delete("/:id", operators, processingHandler.Delete)

	// Salidas
	outbounds := api.Group("/outbounds")
	outboundHandler := NewOutboundHandler(deps.OutboundUC)
	outbounds.Get("/", outboundHandler.List)
	outbounds.Get("/:id", outboundHandler.GetByID)
	outbounds.Post("/", operators, outboundHandler.Create)
	outbounds.Put("/:id", operators, outboundHandler.Update)
	outbounds.Delete("/:id", operators, outboundHandler.Delete)

	// Análisis merceológicos (rutas fijas antes de /:id)
	samples := api.Group("/samples")
	sampleHandler := NewSampleHandler(deps.SampleUC)
	samples.Get("/", sampleHandler.List)
	samples.Get("/statistics", sampleHandler.Statistics)
	samples.Get("/moving-average", sampleHandler.MovingAverage)
	samples.Get("/export/xlsx", sampleHandler.ExportXLSX)
	samples.Get("/export/csv", sampleHandler.ExportCSV)
	samples.Post("/validate-multiple", lab, sampleHandler.BulkValidate)
	samples.Post("/", lab, sampleHandler.Create)
	samples.Get("/:id", sampleHandler.GetByID)
	samples.Get("/:id/conformity", sampleHandler.Conformity)
	samples.Get("/:id/calculations", sampleHandler.Calculations)
	samples.Put("/:id", lab, sampleHandler.Update)
	samples.Delete("/:id", lab, sampleHandler.Delete)
	samples.Post("/:id/validate", lab, sampleHandler.Validate)
	samples.Post("/:id/unvalidate", admin, sampleHandler.Unvalidate)
	samples.Post("/:id/duplicate", lab, sampleHandler.Duplicate)

	// Giacenze
	stockGroup := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Get("/", stockHandler.Balances)
	stockGroup.Get("/history", stockHandler.History)
	stockGroup.Get("/movements", stockHandler.Movements)
	stockGroup.Get("/snapshots", stockHandler.Snapshots)
	stockGroup.Get("/export/xlsx", stockHandler.ExportXLSX)
	stockGroup.Post("/refresh", operators, stockHandler.Refresh)

	// Facturas a consorcios
	invoices := api.Group("/invoices", operators)
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/generate", admin, invoiceHandler.Generate)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)
	invoices.Patch("/:id/status", admin, invoiceHandler.UpdateStatus)

	// Costos
	costGroup := api.Group("/costs", operators)
	costHandler := NewCostHandler(deps.CostUC)
	costGroup.Get("/", costHandler.List)
	costGroup.Get("/summary", costHandler.Summary)
	costGroup.Get("/:id", costHandler.GetByID)
	costGroup.Post("/", costHandler.Create)
	costGroup.Put("/:id", costHandler.Update)
	costGroup.Delete("/:id", costHandler.Delete)

	// Informes
	reportGroup := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportGroup.Get("/monthly", reportHandler.Monthly)
	reportGroup.Get("/collection-trend", reportHandler.CollectionTrend)

	// Notificaciones
	notifications := api.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationsUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/", notificationHandler.Create)
	notifications.Post("/read-all", notificationHandler.MarkAllRead)
	notifications.Post("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/:id", notificationHandler.Remove)
}
