package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
	"github.com/jhoicas/Reciclaje-api/internal/application/quality"
)

// SampleHandler maneja las peticiones HTTP de análisis merceológicos.
type SampleHandler struct {
	uc *quality.SampleUseCase
}

// NewSampleHandler construye el handler.
func NewSampleHandler(uc *quality.SampleUseCase) *SampleHandler {
	return &SampleHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar análisis (borrador)
// @Description  Fracciones fuera de [0,100] se rechazan; una suma > 100 solo marca sum_warning.
// @Tags         samples
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SampleRequest  true  "Datos del análisis"
// @Success      201   {object}  dto.SampleResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/samples [post]
func (h *SampleHandler) Create(c *fiber.Ctx) error {
	var in dto.SampleRequest
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
// @Summary      Obtener análisis por ID
// @Tags         samples
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del análisis"
// @Success      200  {object}  dto.SampleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/samples/{id} [get]
func (h *SampleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modificar análisis en borrador
// @Tags         samples
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID del análisis"
// @Param        body  body  dto.SampleRequest  true  "Datos del análisis"
// @Success      200   {object}  dto.SampleResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "análisis ya validado"
// @Router       /api/samples/{id} [put]
func (h *SampleHandler) Update(c *fiber.Ctx) error {
	var in dto.SampleRequest
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
// @Summary      Eliminar análisis
// @Tags         samples
// @Security     Bearer
// @Param        id   path  string  true  "ID del análisis"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/samples/{id} [delete]
func (h *SampleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar análisis
// @Tags         samples
// @Security     Bearer
// @Produce      json
// @Param        from             query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to               query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        municipality_id  query  string  false  "Municipio"
// @Param        flow_id          query  string  false  "Flujo"
// @Param        validated        query  bool    false  "Estado de validación"
// @Param        limit            query  int     false  "Límite"  default(50)
// @Param        offset           query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.SampleListResponse
// @Router       /api/samples [get]
func (h *SampleHandler) List(c *fiber.Ctx) error {
	var q dto.SampleQuery
	if err := bindQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Validate godoc
// @Summary      Validar análisis
// @Description  Pasa el análisis a validado, lo evalúa contra los límites de su flujo y guarda el veredicto.
// @Tags         samples
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del análisis"
// @Success      200  {object}  dto.ValidateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "ya validado"
// @Failure      422  {object}  dto.ErrorResponse  "sin flujo"
// @Router       /api/samples/{id}/validate [post]
func (h *SampleHandler) Validate(c *fiber.Ctx) error {
	out, err := h.uc.Validate(c.UserContext(), c.Params("id"), GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// BulkValidate godoc
// @Summary      Validar varios análisis
// @Description  Cada id se procesa por separado; el resultado indica éxito o error por elemento.
// @Tags         samples
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IDsRequest  true  "IDs a validar"
// @Success      200   {object}  dto.BulkValidateResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/samples/validate-multiple [post]
func (h *SampleHandler) BulkValidate(c *fiber.Ctx) error {
	var in dto.IDsRequest
	if err := bindBody(c, &in); err != nil {
		return handleError(c, err)
	}
	return c.JSON(h.uc.BulkValidate(c.UserContext(), in.IDs, GetUserID(c)))
}

// Unvalidate godoc
// @Summary      Anular validación
// @Description  Devuelve el análisis a borrador y descarta el veredicto guardado.
// @Tags         samples
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del análisis"
// @Success      200  {object}  dto.SampleResponse
// @Failure      409  {object}  dto.ErrorResponse  "no validado"
// @Router       /api/samples/{id}/unvalidate [post]
func (h *SampleHandler) Unvalidate(c *fiber.Ctx) error {
	out, err := h.uc.Unvalidate(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Duplicate godoc
// @Summary      Duplicar análisis como borrador
// @Description  El cuerpo es opcional; sin sample_date el nuevo borrador lleva la fecha de hoy.
// @Tags         samples
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true   "ID del análisis"
// @Param        body  body  dto.DuplicateSampleRequest  false  "Fecha del duplicado"
// @Success      201  {object}  dto.SampleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/samples/{id}/duplicate [post]
func (h *SampleHandler) Duplicate(c *fiber.Ctx) error {
	var in dto.DuplicateSampleRequest
	if len(c.Body()) > 0 {
		if err := bindBody(c, &in); err != nil {
			return handleError(c, err)
		}
	}
	out, err := h.uc.Duplicate(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Calculations godoc
// @Summary      Cálculos de consorcio del análisis
// @Description  Cuotas de competencia sobre la media móvil cuatrimestral, conformidad y contraprestación neta del mes.
// @Tags         samples
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del análisis"
// @Success      200  {object}  dto.CalculationsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/samples/{id}/calculations [get]
func (h *SampleHandler) Calculations(c *fiber.Ctx) error {
	out, err := h.uc.Calculations(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Conformity godoc
// @Summary      Conformidad del análisis
// @Description  Evalúa las fracciones contra los límites vigentes del flujo. No modifica el análisis.
// @Tags         samples
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del análisis"
// @Success      200  {object}  dto.ConformityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/samples/{id}/conformity [get]
func (h *SampleHandler) Conformity(c *fiber.Ctx) error {
	out, err := h.uc.Conformity(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Statistics godoc
// @Summary      Estadísticas de calidad
// @Tags         samples
// @Security     Bearer
// @Produce      json
// @Param        from             query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to               query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        municipality_id  query  string  false  "Municipio"
// @Param        flow_id          query  string  false  "Flujo"
// @Success      200  {object}  dto.StatisticsResponse
// @Router       /api/samples/statistics [get]
func (h *SampleHandler) Statistics(c *fiber.Ctx) error {
	var q dto.StatisticsQuery
	if err := bindQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.Statistics(c.UserContext(), q)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// MovingAverage godoc
// @Summary      Media móvil cuatrimestral
// @Tags         samples
// @Security     Bearer
// @Produce      json
// @Param        municipality_id  query  string  true   "Municipio"
// @Param        flow_id          query  string  true   "Flujo"
// @Param        date             query  string  false  "Fecha de referencia (YYYY-MM-DD)"
// @Success      200  {object}  dto.MovingAverageResponse
// @Failure      400  {object}  dto.ValidationErrorResponse
// @Router       /api/samples/moving-average [get]
func (h *SampleHandler) MovingAverage(c *fiber.Ctx) error {
	var q dto.MovingAverageQuery
	if err := bindQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.MovingAverage(c.UserContext(), q)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ExportXLSX godoc
// @Summary      Exportar análisis a Excel
// @Tags         samples
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        from             query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to               query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        municipality_id  query  string  false  "Municipio"
// @Param        flow_id          query  string  false  "Flujo"
// @Success      200  {file}  binary
// @Router       /api/samples/export/xlsx [get]
func (h *SampleHandler) ExportXLSX(c *fiber.Ctx) error {
	var q dto.SampleQuery
	if err := bindQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	data, err := h.uc.ExportXLSX(c.UserContext(), q)
	if err != nil {
		return handleError(c, err)
	}
	return sendFile(c, mimeXLSX, "analisi-merceologiche.xlsx", data)
}

// ExportCSV godoc
// @Summary      Exportar análisis a CSV
// @Tags         samples
// @Security     Bearer
// @Produce      text/csv
// @Param        from             query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to               query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {file}  binary
// @Router       /api/samples/export/csv [get]
func (h *SampleHandler) ExportCSV(c *fiber.Ctx) error {
	var q dto.SampleQuery
	if err := bindQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	data, err := h.uc.ExportCSV(c.UserContext(), q)
	if err != nil {
		return handleError(c, err)
	}
	return sendFile(c, mimeCSV, "analisi-merceologiche.csv", data)
}
