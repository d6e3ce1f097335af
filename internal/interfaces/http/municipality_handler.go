package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reciclaje-api/internal/application/catalog"
	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
)

// MunicipalityHandler maneja las peticiones HTTP de comuni.
type MunicipalityHandler struct {
	uc *catalog.MunicipalityUseCase
}

// NewMunicipalityHandler construye el handler.
func NewMunicipalityHandler(uc *catalog.MunicipalityUseCase) *MunicipalityHandler {
	return &MunicipalityHandler{uc: uc}
}

// Create godoc
// @Summary      Crear municipio
// @Tags         municipalities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MunicipalityRequest  true  "Datos del municipio"
// @Success      201   {object}  dto.MunicipalityResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/municipalities [post]
func (h *MunicipalityHandler) Create(c *fiber.Ctx) error {
	var in dto.MunicipalityRequest
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
// @Summary      Obtener municipio por ID
// @Tags         municipalities
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del municipio"
// @Success      200  {object}  dto.MunicipalityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/municipalities/{id} [get]
func (h *MunicipalityHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByIstatCode godoc
// @Summary      Buscar municipio por código ISTAT
// @Tags         municipalities
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Código ISTAT"
// @Success      200   {object}  dto.MunicipalityResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/municipalities/istat/{code} [get]
func (h *MunicipalityHandler) GetByIstatCode(c *fiber.Ctx) error {
	out, err := h.uc.GetByIstatCode(c.UserContext(), c.Params("code"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modificar municipio
// @Tags         municipalities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del municipio"
// @Param        body  body  dto.MunicipalityRequest  true  "Datos del municipio"
// @Success      200   {object}  dto.MunicipalityResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/municipalities/{id} [put]
func (h *MunicipalityHandler) Update(c *fiber.Ctx) error {
	var in dto.MunicipalityRequest
	if err := bindBody(c, &in); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ToggleDelegation godoc
// @Summary      Activar/desactivar la delega ANCI-COREPLA
// @Tags         municipalities
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del municipio"
// @Success      200  {object}  dto.MunicipalityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/municipalities/{id}/toggle-delegation [post]
func (h *MunicipalityHandler) ToggleDelegation(c *fiber.Ctx) error {
	out, err := h.uc.ToggleDelegation(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar municipio
// @Tags         municipalities
// @Security     Bearer
// @Param        id   path  string  true  "ID del municipio"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/municipalities/{id} [delete]
func (h *MunicipalityHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar municipios
// @Tags         municipalities
// @Security     Bearer
// @Produce      json
// @Param        search             query  string  false  "Búsqueda por nombre"
// @Param        delegation_active  query  bool    false  "Solo con delega activa"
// @Param        limit              query  int     false  "Límite"  default(50)
// @Param        offset             query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.MunicipalityListResponse
// @Router       /api/municipalities [get]
func (h *MunicipalityHandler) List(c *fiber.Ctx) error {
	var q dto.MunicipalityQuery
	if err := bindQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
