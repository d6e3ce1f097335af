package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reciclaje-api/internal/application/dto"
	"github.com/jhoicas/Reciclaje-api/internal/application/notify"
)

// NotificationHandler expone el bus de notificaciones.
type NotificationHandler struct {
	uc *notify.UseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *notify.UseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List godoc
// @Summary      Notificaciones vigentes
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NotificationListResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// Create godoc
// @Summary      Publicar notificación
// @Tags         notifications
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NotificationRequest  true  "Notificación"
// @Success      201   {object}  dto.NotificationResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/notifications [post]
func (h *NotificationHandler) Create(c *fiber.Ctx) error {
	var in dto.NotificationRequest
	if err := bindBody(c, &in); err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.uc.Create(in))
}

// MarkRead godoc
// @Summary      Marcar como leída
// @Tags         notifications
// @Security     Bearer
// @Param        id   path  string  true  "ID de la notificación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.uc.MarkRead(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkAllRead godoc
// @Summary      Marcar todas como leídas
// @Tags         notifications
// @Security     Bearer
// @Success      204
// @Router       /api/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	h.uc.MarkAllRead()
	return c.SendStatus(fiber.StatusNoContent)
}

// Remove godoc
// @Summary      Descartar notificación
// @Tags         notifications
// @Security     Bearer
// @Param        id   path  string  true  "ID de la notificación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notifications/{id} [delete]
func (h *NotificationHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
