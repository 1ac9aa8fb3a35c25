package excel

// RawRowData represents a row of raw sheet data as header -> cell pairs
type RawRowData map[string]string

// ExcelData represents a complete sheet read from a CSV or XLSX file
type ExcelData struct {
	Headers []string     // Column headers
	Rows    []RawRowData // Data rows
}

// Column headers of a band results file
const (
	ColumnNetwork = "Network"
	ColumnPSC     = "PSC"
	ColumnPValue  = "p-value"
)
