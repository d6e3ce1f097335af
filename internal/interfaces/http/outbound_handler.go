package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
	"github.com/jhoicas/Reciclaje-api/internal/application/ledger"
)

// OutboundHandler maneja las peticiones HTTP de salidas.
type OutboundHandler struct {
	uc *ledger.OutboundUseCase
}

// NewOutboundHandler construye el handler.
func NewOutboundHandler(uc *ledger.OutboundUseCase) *OutboundHandler {
	return &OutboundHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar salida
// @Description  Sin total_value se deriva de quantity_kg × unit_price; uno distinto se rechaza con 422.
// @Tags         outbounds
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OutboundRequest  true  "Datos de la salida"
// @Success      201   {object}  dto.OutboundResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/outbounds [post]
func (h *OutboundHandler) Create(c *fiber.Ctx) error {
	var in dto.OutboundRequest
	if err := bindBody(c, &in); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener salida por ID
// @Tags         outbounds
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la salida"
// @Success      200  {object}  dto.OutboundResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/outbounds/{id} [get]
func (h *OutboundHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modificar salida
// @Tags         outbounds
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de la salida"
// @Param        body  body  dto.OutboundRequest  true  "Datos de la salida"
// @Success      200   {object}  dto.OutboundResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/outbounds/{id} [put]
func (h *OutboundHandler) Update(c *fiber.Ctx) error {
	var in dto.OutboundRequest
	if err := bindBody(c, &in); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar salida
// @Tags         outbounds
// @Security     Bearer
// @Param        id   path  string  true  "ID de la salida"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/outbounds/{id} [delete]
func (h *OutboundHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar salidas
// @Tags         outbounds
// @Security     Bearer
// @Produce      json
// @Param        from         query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to           query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        material_id  query  string  false  "Material"
// @Param        recipient    query  string  false  "Destinatario (contiene)"
// @Param        limit        query  int     false  "Límite"  default(50)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.OutboundListResponse
// @Router       /api/outbounds [get]
func (h *OutboundHandler) List(c *fiber.Ctx) error {
	var q dto.MovementQuery
	if err := bindQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
