package postgres

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Reciclaje-api/internal/domain/repository"
)

func TestWhere_BuildsPositionalPlaceholders(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	var w where
	w.add("municipality_id = $%d", "m-1")
	w.period("date", repository.Period{From: &from, To: &to})

	assert.Equal(t, " WHERE municipality_id = $1 AND date >= $2 AND date <= $3", w.String())
	assert.Equal(t, []any{"m-1", from, to}, w.args)
}

func TestWhere_Empty(t *testing.T) {
	var w where
	assert.Equal(t, "", w.String())

	clause, args := w.paginate(repository.Page{})
	assert.Equal(t, "", clause)
	assert.Empty(t, args)
}

func TestWhere_Paginate(t *testing.T) {
	var w where
	w.add("validated = $%d", true)

	clause, args := w.paginate(repository.Page{Limit: 20, Offset: 40})
	assert.Equal(t, " LIMIT $2 OFFSET $3", clause)
	assert.Equal(t, []any{true, 20, 40}, args)
	// los argumentos del filtro no se alteran
	assert.Len(t, w.args, 1)
}

func TestPgErrorCodes(t *testing.T) {
	unique := fmt.Errorf("insertar: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, isUniqueViolation(unique))
	assert.False(t, isForeignKeyViolation(unique))
	assert.True(t, isForeignKeyViolation(fk))
	assert.False(t, isUniqueViolation(errors.New("otro")))
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2024, 3, 5, 17, 45, 0, 0, time.FixedZone("CET", 3600))
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), dateOnly(in))
}
