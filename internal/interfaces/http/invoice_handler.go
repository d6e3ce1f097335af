package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reciclaje-api/internal/application/billing"
	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
)

// InvoiceHandler maneja las peticiones HTTP de facturas a consorcios.
type InvoiceHandler struct {
	uc *billing.InvoiceUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Generate godoc
// @Summary      Generar factura mensual de un consorcio
// @Description  Cantidades por flujo del mes × tarifa por tonelada del flujo. Una por consorcio y mes.
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateInvoiceRequest  true  "Consorcio y período"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "ya existe para el período"
// @Router       /api/invoices/generate [post]
func (h *InvoiceHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateInvoiceRequest
	if err := bindBody(c, &in); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.Generate(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener factura por ID
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de la factura
// @Description  draft → sent → paid.
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la factura"
// @Param        body  body  dto.InvoiceStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      409   {object}  dto.ErrorResponse  "transición no permitida"
// @Router       /api/invoices/{id}/status [patch]
func (h *InvoiceHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.InvoiceStatusRequest
	if err := bindBody(c, &in); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar facturas
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        consortium  query  string  false  "Consorcio"
// @Param        year        query  int     false  "Año"
// @Param        status      query  string  false  "draft | sent | paid"
// @Param        limit       query  int     false  "Límite"  default(50)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.InvoiceListResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var q dto.InvoiceQuery
	if err := bindQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Descargar factura en PDF
// @Tags         invoices
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.PDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return sendFile(c, mimePDF, filename, data)
}
