package excel

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"fpnpower/domain/electrode"
	"fpnpower/internal"
	"fpnpower/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading Excel and CSV band result files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	logger   *internal.Logger
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "csv"
	if ext == ".xlsx" || ext == ".xlsm" {
		fileType = "xlsx"
	}
	return &DataReader{filePath: filePath, fileType: fileType, logger: internal.DefaultLogger}
}

// WithLogger replaces the reader's logger
func (r *DataReader) WithLogger(logger *internal.Logger) *DataReader {
	r.logger = logger
	return r
}

// ReadData reads headers and rows from the file.
// Failures carry CodeMissingSource, CodeEmptySource or CodeMalformedSource.
func (r *DataReader) ReadData() (*ExcelData, error) {
	r.logger.Debug("[DataReader] Starting to read %s file: %s", r.fileType, r.filePath)

	info, err := os.Stat(r.filePath)
	if os.IsNotExist(err) {
		return nil, errors.MissingSource(r.filePath)
	}
	if err != nil {
		return nil, errors.MalformedSource(r.filePath, err)
	}
	if info.IsDir() {
		return nil, errors.MalformedSource(r.filePath, fmt.Errorf("is a directory"))
	}

	var rows [][]string
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		err = errors.MalformedSource(r.filePath, fmt.Errorf("unsupported file type: %s", r.fileType))
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, errors.EmptySource(r.filePath, "no data to load")
	}
	return r.processRows(rows)
}

// readExcelRows reads the first sheet of a workbook
func (r *DataReader) readExcelRows() ([][]string, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.MalformedSource(r.filePath, fmt.Errorf("failed to open Excel file: %w", err))
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.EmptySource(r.filePath, "workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.MalformedSource(r.filePath, fmt.Errorf("failed to read %s: %w", sheets[0], err))
	}
	r.logger.Debug("[DataReader] %s read in %.2fms (%d rows)", sheets[0], float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	return rows, nil
}

// readCSVRows reads all records of a CSV file, tolerating ragged rows
func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.MalformedSource(r.filePath, fmt.Errorf("failed to open CSV file: %w", err))
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.MalformedSource(r.filePath, fmt.Errorf("failed to read CSV file: %w", err))
	}
	r.logger.Debug("[DataReader] CSV file read in %.2fms (%d rows)", float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	return rows, nil
}

// processRows converts raw string rows into ExcelData format
func (r *DataReader) processRows(rows [][]string) (*ExcelData, error) {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(header, "\ufeff"))
	}

	var dataRows []RawRowData
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}
		rowData := make(RawRowData, len(headers))
		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
	}

	if len(dataRows) == 0 {
		return nil, errors.EmptySource(r.filePath, "it has a header but no rows")
	}

	r.logger.Debug("[DataReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(dataRows))

	return &ExcelData{
		Headers: headers,
		Rows:    dataRows,
	}, nil
}

// ReadTable reads the file and maps the Network, PSC and p-value columns
// into a table tagged with band. Other columns are ignored.
func (r *DataReader) ReadTable(band electrode.Band) (electrode.Table, error) {
	data, err := r.ReadData()
	if err != nil {
		return nil, err
	}
	return r.toTable(data, band)
}

func (r *DataReader) toTable(data *ExcelData, band electrode.Band) (electrode.Table, error) {
	networkCol, err := r.findColumn(data, ColumnNetwork)
	if err != nil {
		return nil, err
	}
	pscCol, err := r.findColumn(data, ColumnPSC)
	if err != nil {
		return nil, err
	}
	pCol, err := r.findColumn(data, ColumnPValue)
	if err != nil {
		return nil, err
	}

	table := make(electrode.Table, 0, len(data.Rows))
	for i, row := range data.Rows {
		psc, err := parseNumber(row[pscCol])
		if err != nil {
			return nil, errors.MalformedSource(r.filePath, fmt.Errorf("row %d column %s: %w", i+2, pscCol, err))
		}
		p, err := parseNumber(row[pCol])
		if err != nil {
			return nil, errors.MalformedSource(r.filePath, fmt.Errorf("row %d column %s: %w", i+2, pCol, err))
		}
		table = append(table, electrode.Record{
			Network: row[networkCol],
			Band:    band,
			PSC:     psc,
			PValue:  p,
		})
	}
	return table, nil
}

// findColumn matches a header case-insensitively
func (r *DataReader) findColumn(data *ExcelData, name string) (string, error) {
	for _, header := range data.Headers {
		if strings.EqualFold(header, name) {
			return header, nil
		}
	}
	return "", errors.MalformedSource(r.filePath, fmt.Errorf("missing column %q", name))
}

// parseNumber returns NaN for empty cells and rejects infinities
func parseNumber(cell string) (float64, error) {
	switch strings.ToLower(cell) {
	case "", "nan", "na", "n/a":
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) {
		return 0, fmt.Errorf("infinite value %q", cell)
	}
	return v, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
