package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reciclaje-api/internal/application/catalog"
	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
)

// FlowHandler maneja las peticiones HTTP de flujos de recogida (A/B/C/D).
type FlowHandler struct {
	uc *catalog.FlowUseCase
}

// NewFlowHandler construye el handler.
func NewFlowHandler(uc *catalog.FlowUseCase) *FlowHandler {
	return &FlowHandler{uc: uc}
}

// Create godoc
// @Summary      Crear flujo de recogida
// @Tags         flows
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FlowRequest  true  "Flujo y límites de conformidad"
// @Success      201   {object}  dto.FlowResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/flows [post]
func (h *FlowHandler) Create(c *fiber.Ctx) error {
	var in dto.FlowRequest
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
// @Summary      Obtener flujo por ID
// @Tags         flows
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del flujo"
// @Success      200  {object}  dto.FlowResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/flows/{id} [get]
func (h *FlowHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modificar flujo
// @Tags         flows
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID del flujo"
// @Param        body  body  dto.FlowRequest  true  "Flujo y límites de conformidad"
// @Success      200   {object}  dto.FlowResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/flows/{id} [put]
func (h *FlowHandler) Update(c *fiber.Ctx) error {
	var in dto.FlowRequest
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
// @Summary      Eliminar flujo sin referencias
// @Tags         flows
// @Security     Bearer
// @Param        id   path  string  true  "ID del flujo"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/flows/{id} [delete]
func (h *FlowHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar flujos
// @Tags         flows
// @Security     Bearer
// @Produce      json
// @Param        active  query  bool  false  "Solo activos"
// @Success      200  {array}  dto.FlowResponse
// @Router       /api/flows [get]
func (h *FlowHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.QueryBool("active", false))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
