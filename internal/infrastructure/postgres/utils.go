package postgres

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Reciclaje-api/internal/domain/repository"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// isForeignKeyViolation 23503: fila referenciada por otra tabla.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

// where acumula condiciones con argumentos posicionales $n.
type where struct {
	conds []string
	args  []any
}

// add agrega una condición; cond lleva un único %d para el placeholder.
func (w *where) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

func (w *where) period(column string, p repository.Period) {
	if p.From != nil {
		w.add(column+" >= $%d", *p.From)
	}
	if p.To != nil {
		w.add(column+" <= $%d", *p.To)
	}
}

func (w *where) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// paginate devuelve la cláusula LIMIT/OFFSET y los argumentos extendidos. Limit 0 = sin límite.
func (w *where) paginate(p repository.Page) (string, []any) {
	args := append([]any{}, w.args...)
	if p.Limit <= 0 {
		return "", args
	}
	args = append(args, p.Limit, p.Offset)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args)), args
}

// dateOnly normaliza a medianoche UTC para columnas DATE.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
