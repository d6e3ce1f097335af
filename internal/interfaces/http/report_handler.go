package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
	"github.com/jhoicas/Reciclaje-api/internal/application/reports"
)

// ReportHandler maneja los informes del impianto.
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Monthly godoc
// @Summary      Informe mensual
// @Description  Totales de ingresos, salidas y procesamientos del mes, balance y totales por municipio.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        year   query  int  true  "Año"
// @Param        month  query  int  true  "Mes (1-12)"
// @Success      200  {object}  dto.MonthlyReportResponse
// @Failure      400  {object}  dto.ValidationErrorResponse
// @Router       /api/reports/monthly [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	var q dto.MonthlyReportQuery
	if err := bindQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.Monthly(c.UserContext(), q)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// CollectionTrend godoc
// @Summary      Tendencia de recogida mensual
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from_year  query  int  true  "Año inicial"
// @Param        to_year    query  int  true  "Año final"
// @Success      200  {object}  dto.CollectionTrendResponse
// @Failure      400  {object}  dto.ValidationErrorResponse
// @Router       /api/reports/collection-trend [get]
func (h *ReportHandler) CollectionTrend(c *fiber.Ctx) error {
	var q dto.CollectionTrendQuery
	if err := bindQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.CollectionTrend(c.UserContext(), q)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
