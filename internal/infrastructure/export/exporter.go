// Package export escribe tablas en XLSX (excelize) y CSV.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Reciclaje-api/internal/application/ports"
)

var _ ports.Exporter = (*Exporter)(nil)

const dateLayout = "2006-01-02"

// Exporter implementa ports.Exporter.
type Exporter struct{}

// New construye el exportador.
func New() *Exporter { return &Exporter{} }

// XLSX escribe la tabla en una hoja con cabecera en negrita y columnas autoajustadas al encabezado.
func (e *Exporter) XLSX(t ports.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := t.Sheet
	if sheet == "" {
		sheet = "Dati"
	}
	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheet); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	header := make([]any, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: cabecera: %w", err)
	}
	if len(t.Headers) > 0 {
		style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return nil, fmt.Errorf("xlsx: estilo: %w", err)
		}
		last, _ := excelize.CoordinatesToCellName(len(t.Headers), 1)
		if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
			return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
		}
		for i, h := range t.Headers {
			colName, _ := excelize.ColumnNumberToName(i + 1)
			_ = f.SetColWidth(sheet, colName, colName, float64(len(h)+4))
		}
	}

	for i, r := range t.Rows {
		cells := make([]any, len(r))
		for j, v := range r {
			cells[j] = xlsxValue(v)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("xlsx: celda: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

// CSV escribe la tabla con separador ';' (Excel con configuración regional italiana).
func (e *Exporter) CSV(t ports.Table) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	w.Comma = ';'
	if err := w.Write(t.Headers); err != nil {
		return nil, fmt.Errorf("csv: cabecera: %w", err)
	}
	for _, r := range t.Rows {
		rec := make([]string, len(r))
		for j, v := range r {
			rec[j] = csvValue(v)
		}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("csv: fila: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: flush: %w", err)
	}
	return buf.Bytes(), nil
}

func xlsxValue(v any) any {
	switch x := v.(type) {
	case decimal.Decimal:
		return x.InexactFloat64()
	case *decimal.Decimal:
		if x == nil {
			return ""
		}
		return x.InexactFloat64()
	case time.Time:
		return x.Format(dateLayout)
	case *time.Time:
		if x == nil {
			return ""
		}
		return x.Format(dateLayout)
	case nil:
		return ""
	}
	return v
}

func csvValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case decimal.Decimal:
		return x.String()
	case *decimal.Decimal:
		if x == nil {
			return ""
		}
		return x.String()
	case time.Time:
		return x.Format(dateLayout)
	case *time.Time:
		if x == nil {
			return ""
		}
		return x.Format(dateLayout)
	case bool:
		if x {
			return "si"
		}
		return "no"
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}
