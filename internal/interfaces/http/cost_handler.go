package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reciclaje-api/internal/application/costs"
	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
)

// CostHandler maneja las peticiones HTTP de costos operativos.
type CostHandler struct {
	uc *costs.CostUseCase
}

// NewCostHandler construye el handler.
func NewCostHandler(uc *costs.CostUseCase) *CostHandler {
	return &CostHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar costo
// @Tags         costs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CostRequest  true  "Datos del costo"
// @Success      201   {object}  dto.CostResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/costs [post]
func (h *CostHandler) Create(c *fiber.Ctx) error {
	var in dto.CostRequest
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
// @Summary      Obtener costo por ID
// @Tags         costs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del costo"
// @Success      200  {object}  dto.CostResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/costs/{id} [get]
func (h *CostHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modificar costo
// @Tags         costs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID del costo"
// @Param        body  body  dto.CostRequest  true  "Datos del costo"
// @Success      200   {object}  dto.CostResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/costs/{id} [put]
func (h *CostHandler) Update(c *fiber.Ctx) error {
	var in dto.CostRequest
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
// @Summary      Eliminar costo
// @Tags         costs
// @Security     Bearer
// @Param        id   path  string  true  "ID del costo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/costs/{id} [delete]
func (h *CostHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar costos
// @Tags         costs
// @Security     Bearer
// @Produce      json
// @Param        from         query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to           query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        category     query  string  false  "Categoría"
// @Param        material_id  query  string  false  "Material"
// @Param        limit        query  int     false  "Límite"  default(50)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.CostListResponse
// @Router       /api/costs [get]
func (h *CostHandler) List(c *fiber.Ctx) error {
	var q dto.CostQuery
	if err := bindQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen mensual de costos por categoría
// @Tags         costs
// @Security     Bearer
// @Produce      json
// @Param        year   query  int  true  "Año"
// @Param        month  query  int  true  "Mes (1-12)"
// @Success      200  {object}  dto.CostSummaryResponse
// @Failure      400  {object}  dto.ValidationErrorResponse
// @Router       /api/costs/summary [get]
func (h *CostHandler) Summary(c *fiber.Ctx) error {
	var q dto.CostSummaryQuery
	if err := bindQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.Summary(c.UserContext(), q)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
