package http

import "github.com/gofiber/fiber/v2"

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeCSV  = "text/csv; charset=utf-8"
	mimePDF  = "application/pdf"
)

// sendFile responde con un adjunto descargable.
func sendFile(c *fiber.Ctx, contentType, filename string, data []byte) error {
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(data)
}
