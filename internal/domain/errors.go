package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	// ErrMissingFlow: un análisis sin flujo COREPLA no se puede evaluar.
	ErrMissingFlow = errors.New("análisis sin flujo de recogida asociado")
	// ErrTotalMismatch: valor_total de una salida distinto de cantidad × precio unitario.
	ErrTotalMismatch = errors.New("valor total no coincide con cantidad × precio unitario")
)

// ReferenceError una asociación requerida apunta a un registro inexistente. Se compara como ErrNotFound.
type ReferenceError struct {
	Entity string
	ID     string
}

func (e *ReferenceError) Error() string {
	return e.Entity + " " + e.ID + ": " + ErrNotFound.Error()
}

func (e *ReferenceError) Unwrap() error { return ErrNotFound }

var errorCodes = []struct {
	err  error
	code string
}{
	{ErrNotFound, "NOT_FOUND"},
	{ErrDuplicate, "DUPLICATE"},
	{ErrConflict, "CONFLICT"},
	{ErrTotalMismatch, "TOTAL_MISMATCH"},
	{ErrMissingFlow, "MISSING_FLOW"},
	{ErrInvalidInput, "INVALID_INPUT"},
	{ErrUnauthorized, "UNAUTHORIZED"},
	{ErrForbidden, "FORBIDDEN"},
}

// ErrorCode código público de un error de dominio; "" si no es uno de los sentinel.
func ErrorCode(err error) string {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return ""
}
