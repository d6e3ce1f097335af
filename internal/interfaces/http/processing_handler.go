package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
	"github.com/jhoicas/Reciclaje-api/internal/application/ledger"
)

// ProcessingHandler maneja las peticiones HTTP de lavorazioni.
type ProcessingHandler struct {
	uc *ledger.ProcessingUseCase
}

// NewProcessingHandler construye el handler.
func NewProcessingHandler(uc *ledger.ProcessingUseCase) *ProcessingHandler {
	return &ProcessingHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar procesamiento
// @Tags         processing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProcessingRequest  true  "Datos del procesamiento"
// @Success      201   {object}  dto.ProcessingResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/processing [post]
func (h *ProcessingHandler) Create(c *fiber.Ctx) error {
	var in dto.ProcessingRequest
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
// @Summary      Obtener procesamiento por ID
// @Tags         processing
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del procesamiento"
// @Success      200  {object}  dto.ProcessingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/processing/{id} [get]
func (h *ProcessingHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modificar procesamiento
// @Tags         processing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del procesamiento"
// @Param        body  body  dto.ProcessingRequest  true  "Datos del procesamiento"
// @Success      200   {object}  dto.ProcessingResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/processing/{id} [put]
func (h *ProcessingHandler) Update(c *fiber.Ctx) error {
	var in dto.ProcessingRequest
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
// @Summary      Eliminar procesamiento
// @Tags         processing
// @Security     Bearer
// @Param        id   path  string  true  "ID del procesamiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/processing/{id} [delete]
func (h *ProcessingHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar procesamientos
// @Tags         processing
// @Security     Bearer
// @Produce      json
// @Param        from         query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to           query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        material_id  query  string  false  "Material"
// @Param        operation    query  string  false  "sorting | baling | storage"
// @Param        limit        query  int     false  "Límite"  default(50)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ProcessingListResponse
// @Router       /api/processing [get]
func (h *ProcessingHandler) List(c *fiber.Ctx) error {
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
