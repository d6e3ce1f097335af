package postgres

import (
	"context"
	"fmt"
)

// rowScanner lo cumplen pgx.Row y pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// count ejecuta SELECT COUNT(*) con el mismo filtro del listado.
func count(ctx context.Context, q Querier, table string, w *where) (int, error) {
	var total int
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM "+table+w.String(), w.args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return total, nil
}
