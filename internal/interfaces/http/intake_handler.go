package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
	"github.com/jhoicas/Reciclaje-api/internal/application/ledger"
)

// IntakeHandler maneja las peticiones HTTP de conferimenti.
type IntakeHandler struct {
	uc *ledger.IntakeUseCase
}

// NewIntakeHandler construye el handler.
func NewIntakeHandler(uc *ledger.IntakeUseCase) *IntakeHandler {
	return &IntakeHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar ingreso
// @Tags         intakes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IntakeRequest  true  "Datos del ingreso"
// @Success      201   {object}  dto.IntakeResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/intakes [post]
func (h *IntakeHandler) Create(c *fiber.Ctx) error {
	var in dto.IntakeRequest
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
// @Summary      Obtener ingreso por ID
// @Tags         intakes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ingreso"
// @Success      200  {object}  dto.IntakeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/intakes/{id} [get]
func (h *IntakeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modificar ingreso
// @Tags         intakes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID del ingreso"
// @Param        body  body  dto.IntakeRequest  true  "Datos del ingreso"
// @Success      200   {object}  dto.IntakeResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/intakes/{id} [put]
func (h *IntakeHandler) Update(c *fiber.Ctx) error {
	var in dto.IntakeRequest
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
// @Summary      Eliminar ingreso
// @Tags         intakes
// @Security     Bearer
// @Param        id   path  string  true  "ID del ingreso"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/intakes/{id} [delete]
func (h *IntakeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar ingresos
// @Tags         intakes
// @Security     Bearer
// @Produce      json
// @Param        from             query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to               query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        municipality_id  query  string  false  "Municipio"
// @Param        material_id      query  string  false  "Material"
// @Param        flow_id          query  string  false  "Flujo"
// @Param        limit            query  int     false  "Límite"  default(50)
// @Param        offset           query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.IntakeListResponse
// @Router       /api/intakes [get]
func (h *IntakeHandler) List(c *fiber.Ctx) error {
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

// Summary godoc
// @Summary      Total conferito por material
// @Tags         intakes
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {object}  dto.IntakeSummaryResponse
// @Router       /api/intakes/summary [get]
func (h *IntakeHandler) Summary(c *fiber.Ctx) error {
	var q dto.DateRangeQuery
	if err := bindQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.Summary(c.UserContext(), q)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
