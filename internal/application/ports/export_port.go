package ports

// Table datos tabulares listos para exportar. Las celdas admiten string, números,
// decimal.Decimal (se escribe como número) y time.Time.
type Table struct {
	Sheet   string
	Headers []string
	Rows    [][]any
}

// Exporter puerto de salida para generar archivos descargables (XLSX, CSV).
type Exporter interface {
	XLSX(t Table) ([]byte, error)
	CSV(t Table) ([]byte, error)
}
