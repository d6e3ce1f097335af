package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Reciclaje-api/internal/application/ports"
)

func table() ports.Table {
	return ports.Table{
		Sheet:   "Análisis",
		Headers: []string{"data", "comune", "pct_tracers", "conforme"},
		Rows: [][]any{
			{time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "Bologna", decimal.NewFromFloat(3.5), true},
			{time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), "Imola; centro", (*decimal.Decimal)(nil), false},
		},
	}
}

func TestCSV_SeparadorPuntoYComa(t *testing.T) {
	out, err := New().CSV(table())
	require.NoError(t, err)

	expected := "data;comune;pct_tracers;conforme\n" +
		"2024-03-01;Bologna;3.5;si\n" +
		"2024-03-02;\"Imola; centro\";;no\n"
	assert.Equal(t, expected, string(out))
}

func TestXLSX_EscribeCabeceraYFilas(t *testing.T) {
	out, err := New().XLSX(table())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Análisis")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"data", "comune", "pct_tracers", "conforme"}, rows[0])
	assert.Equal(t, "Bologna", rows[1][1])
	assert.Equal(t, "3.5", rows[1][2])
}
