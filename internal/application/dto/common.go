package dto

import (
	"fmt"
	"time"

	"github.com/jhoicas/Reciclaje-api/internal/domain"
)

// DateLayout formato de fechas en requests y responses.
const DateLayout = "2006-01-02"

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=500"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// DateRangeQuery filtro opcional de fechas (inclusivas) en query string.
type DateRangeQuery struct {
	From string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// Bounds convierte el rango a punteros de tiempo (nil = abierto).
func (q DateRangeQuery) Bounds() (from, to *time.Time, err error) {
	if from, err = ParseOptionalDate(q.From); err != nil {
		return nil, nil, err
	}
	if to, err = ParseOptionalDate(q.To); err != nil {
		return nil, nil, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, fmt.Errorf("%w: 'to' anterior a 'from'", domain.ErrInvalidInput)
	}
	return from, to, nil
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse error 400 con el detalle por campo (campo → regla incumplida).
type ValidationErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

// ParseDate interpreta una fecha YYYY-MM-DD en UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q no válida (YYYY-MM-DD)", domain.ErrInvalidInput, s)
	}
	return t, nil
}

// ParseOptionalDate como ParseDate; cadena vacía = nil.
func ParseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate fecha en DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatOptionalDate nil → nil.
func FormatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// IDsRequest lista de identificadores (operaciones masivas).
type IDsRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,max=200,dive,uuid"`
}
