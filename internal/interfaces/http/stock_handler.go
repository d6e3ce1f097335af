package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
	"github.com/jhoicas/Reciclaje-api/internal/application/stock"
)

// StockHandler maneja las peticiones HTTP de giacenze y libro de almacén.
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Balances godoc
// @Summary      Existencias por material
// @Description  Conferito − salido − lavorado con movimientos hasta la fecha (incluida).
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Fecha de referencia (YYYY-MM-DD, por defecto hoy)"
// @Success      200  {object}  dto.BalancesResponse
// @Failure      400  {object}  dto.ValidationErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) Balances(c *fiber.Ctx) error {
	var q dto.StockQuery
	if err := bindQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.Balances(c.UserContext(), q)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Refresh godoc
// @Summary      Recalcular existencias
// @Description  Recalcula, guarda las fotos de la fecha y avisa de materiales bajo umbral.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RefreshRequest  false  "Fecha de referencia"
// @Success      200   {object}  dto.RefreshResponse
// @Router       /api/stock/refresh [post]
func (h *StockHandler) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	if len(c.Body()) > 0 {
		if err := bindBody(c, &in); err != nil {
			return handleError(c, err)
		}
	}
	out, err := h.uc.Refresh(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Snapshots godoc
// @Summary      Fotos de existencias guardadas
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Fecha (YYYY-MM-DD, por defecto hoy)"
// @Success      200  {object}  dto.SnapshotsResponse
// @Router       /api/stock/snapshots [get]
func (h *StockHandler) Snapshots(c *fiber.Ctx) error {
	var q dto.StockQuery
	if err := bindQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.Snapshots(c.UserContext(), q)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Serie histórica de existencias
// @Description  Un punto por fin de mes entre from y to.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        from         query  string  true   "Desde (YYYY-MM-DD)"
// @Param        to           query  string  true   "Hasta (YYYY-MM-DD)"
// @Param        material_id  query  string  false  "Material (vacío = todos)"
// @Success      200  {object}  dto.HistoryResponse
// @Failure      400  {object}  dto.ValidationErrorResponse
// @Router       /api/stock/history [get]
func (h *StockHandler) History(c *fiber.Ctx) error {
	var q dto.HistoryQuery
	if err := bindQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.History(c.UserContext(), q)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Libro de almacén
// @Description  Unión firmada de ingresos (+), salidas (−) y procesamientos (−).
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        from         query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to           query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        material_id  query  string  false  "Material"
// @Param        limit        query  int     false  "Límite"  default(50)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.WarehouseMovementsResponse
// @Router       /api/stock/movements [get]
func (h *StockHandler) Movements(c *fiber.Ctx) error {
	var q dto.WarehouseMovementsQuery
	if err := bindQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.Movements(c.UserContext(), q)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ExportXLSX godoc
// @Summary      Exportar existencias a Excel
// @Tags         stock
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        date  query  string  false  "Fecha de referencia (YYYY-MM-DD)"
// @Success      200  {file}  binary
// @Router       /api/stock/export/xlsx [get]
func (h *StockHandler) ExportXLSX(c *fiber.Ctx) error {
	var q dto.StockQuery
	if err := bindQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	data, err := h.uc.ExportXLSX(c.UserContext(), q)
	if err != nil {
		return handleError(c, err)
	}
	return sendFile(c, mimeXLSX, "existencias.xlsx", data)
}
