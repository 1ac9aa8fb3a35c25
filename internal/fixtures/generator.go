// Package fixtures generates synthetic band results files with the same
// layout as the per-band electrode analysis output.
package fixtures

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"fpnpower/domain/electrode"

	"github.com/xuri/excelize/v2"
)

// Headers of a generated results file
var Headers = []string{"Electrode", "Network", "PSC", "p-value"}

// Dataset is the in-memory form of one band results file
type Dataset struct {
	Band    electrode.Band
	Headers []string
	Rows    [][]string // already formatted/rounded strings

	// Records mirror Rows after rounding
	Records electrode.Table
}

// Config controls the synthetic electrode population
type Config struct {
	Electrodes int
	Seed       int64
	Networks   []string

	// SignificantFraction is the share of electrodes drawn with p < 0.05
	SignificantFraction float64
	// FPNShift moves the mean PSC of FPN electrodes, scaled up for higher bands
	FPNShift float64
	// Spread is the PSC standard deviation
	Spread float64
}

func DefaultConfig() Config {
	return Config{
		Electrodes:          120,
		Seed:                42,
		Networks:            []string{"FPN", "DMN", "CON", "motor"},
		SignificantFraction: 0.4,
		FPNShift:            4,
		Spread:              10,
	}
}

// Generate draws one band's electrodes. The same seed and band always give the same rows.
func Generate(cfg Config, band electrode.Band) (*Dataset, error) {
	if cfg.Electrodes <= 0 {
		return nil, fmt.Errorf("electrodes must be > 0")
	}
	if len(cfg.Networks) == 0 {
		return nil, fmt.Errorf("at least one network is required")
	}
	if cfg.SignificantFraction < 0 || cfg.SignificantFraction > 1 {
		return nil, fmt.Errorf("significant fraction must be in [0, 1]")
	}

	rng := rand.New(rand.NewSource(cfg.Seed + int64(band)*7919))

	// gamma bands increase within FPN, low bands decrease
	shift := cfg.FPNShift * (float64(band) - 2.5) / 2.5

	table := make(electrode.Table, 0, cfg.Electrodes)
	for i := 0; i < cfg.Electrodes; i++ {
		network := cfg.Networks[rng.Intn(len(cfg.Networks))]

		psc := rng.NormFloat64() * cfg.Spread
		if network == "FPN" {
			psc += shift
		}

		var p float64
		if rng.Float64() < cfg.SignificantFraction {
			p = rng.Float64() * 0.0499
		} else {
			p = 0.05 + rng.Float64()*0.95
		}

		table = append(table, electrode.Record{
			Network: network,
			Band:    band,
			PSC:     round(psc, 4),
			PValue:  round(p, 5),
		})
	}
	return FromTable(band, table), nil
}

// FromTable builds a dataset holding exactly the given records
func FromTable(band electrode.Band, table electrode.Table) *Dataset {
	ds := &Dataset{Band: band, Headers: Headers, Records: table.WithBand(band)}
	for i, rec := range table {
		ds.Rows = append(ds.Rows, []string{
			"E" + strconv.Itoa(i+1),
			rec.Network,
			fToStr(rec.PSC),
			fToStr(rec.PValue),
		})
	}
	return ds
}

func WriteCSV(path string, ds *Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(ds.Headers); err != nil {
		return err
	}
	for _, row := range ds.Rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func WriteXLSX(path string, ds *Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"

	// Header row
	for i, h := range ds.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	// Data rows; numeric columns are stored as numbers
	for r, row := range ds.Rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			var value interface{} = v
			if num, err := strconv.ParseFloat(v, 64); err == nil && c >= 2 {
				value = num
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

// Write picks CSV or XLSX from the file extension
func Write(path string, ds *Dataset) error {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return WriteXLSX(path, ds)
	}
	return WriteCSV(path, ds)
}

// WriteBands generates every band in files and writes it into dir
func WriteBands(dir string, files map[electrode.Band]string, cfg Config) ([]*Dataset, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	var out []*Dataset
	for _, band := range electrode.AllBands {
		name, ok := files[band]
		if !ok {
			continue
		}
		ds, err := Generate(cfg, band)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", band, err)
		}
		if err := Write(filepath.Join(dir, name), ds); err != nil {
			return nil, fmt.Errorf("writing %s: %w", name, err)
		}
		out = append(out, ds)
	}
	return out, nil
}

func round(x float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(x*p) / p
}

func fToStr(x float64) string {
	if math.IsNaN(x) {
		return ""
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
