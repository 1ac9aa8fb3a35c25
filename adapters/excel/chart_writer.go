package excel

import (
	"fmt"
	"os"
	"path/filepath"

	"fpnpower/adapters/render"
	"fpnpower/domain/electrode"
	"fpnpower/internal"
	"fpnpower/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the report workbook
const (
	SheetShare     = "Share"
	SheetNetChange = "Net Change"
	SheetAverage   = "Average Change"

	// ReportFileName is the workbook written into the output directory
	ReportFileName = "fpn_power_report.xlsx"
)

// ChartWriter renders a report as a workbook with one data sheet and one
// native clustered bar chart per aggregate.
type ChartWriter struct {
	dir    string
	logger *internal.Logger
}

// NewChartWriter creates a writer targeting dir
func NewChartWriter(dir string, logger *internal.Logger) *ChartWriter {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &ChartWriter{dir: dir, logger: logger}
}

func (w *ChartWriter) Name() string { return "xlsx" }

// Path returns the workbook location
func (w *ChartWriter) Path() string {
	return filepath.Join(w.dir, ReportFileName)
}

// Render writes the workbook, replacing any previous one
func (w *ChartWriter) Render(report *electrode.Report) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return errors.RenderFailed(w.Name(), err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetShare); err != nil {
		return errors.RenderFailed(w.Name(), err)
	}
	for _, sheet := range []string{SheetNetChange, SheetAverage} {
		if _, err := f.NewSheet(sheet); err != nil {
			return errors.RenderFailed(w.Name(), err)
		}
	}

	steps := []struct {
		name string
		fn   func(*excelize.File, *electrode.Report) error
	}{
		{SheetShare, writeShareSheet},
		{SheetNetChange, writeNetChangeSheet},
		{SheetAverage, writeAverageSheet},
	}
	for _, step := range steps {
		if err := step.fn(f, report); err != nil {
			return errors.RenderFailed(w.Name(), fmt.Errorf("sheet %s: %w", step.name, err))
		}
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(w.Path()); err != nil {
		return errors.RenderFailed(w.Name(), err)
	}
	w.logger.Info("[ChartWriter] Report %s written to %s", report.RunID, w.Path())
	return nil
}

func writeShareSheet(f *excelize.File, report *electrode.Report) error {
	sheet := SheetShare
	header := []interface{}{"Band"}
	for _, s := range render.ShareSeriesOrder {
		header = append(header, s.Label)
	}
	header = append(header, "Significant", "Total")
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, band := range electrode.ChartBands {
		result := report.Share(band)
		row := []interface{}{band.String()}
		for _, s := range render.ShareSeriesOrder {
			row = append(row, s.Signed(result))
		}
		row = append(row, result.Significant, result.Total)
		if err := f.SetSheetRow(sheet, cellName(1, i+2), &row); err != nil {
			return err
		}
	}

	// decreases are stored negated and displayed as magnitudes
	if err := setNumberFormat(f, sheet, cellName(2, 2), cellName(len(render.ShareSeriesOrder)+1, len(electrode.ChartBands)+1), "0.0;0.0"); err != nil {
		return err
	}

	lastRow := len(electrode.ChartBands) + 1
	series := make([]excelize.ChartSeries, 0, len(render.ShareSeriesOrder))
	for j, s := range render.ShareSeriesOrder {
		col := j + 2
		series = append(series, excelize.ChartSeries{
			Name:       ref(sheet, col, 1),
			Categories: rangeRef(sheet, 1, 2, 1, lastRow),
			Values:     rangeRef(sheet, col, 2, col, lastRow),
			Fill:       solid(s.Color),
		})
	}

	yMax, yMin := render.ShareAxisLimit, -render.ShareAxisLimit
	return f.AddChart(sheet, "J2", &excelize.Chart{
		Type:   excelize.Col,
		Series: series,
		Title:  []excelize.RichTextRun{{Text: render.ShareTitle}},
		Legend: excelize.ChartLegend{Position: "right"},
		PlotArea: excelize.ChartPlotArea{
			ShowVal: true,
			NumFmt:  excelize.ChartNumFmt{CustomNumFmt: "0.0;0.0"},
		},
		XAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: render.BandAxisLabel}}},
		YAxis: excelize.ChartAxis{
			Maximum:        &yMax,
			Minimum:        &yMin,
			MajorUnit:      20,
			MajorGridLines: true,
			NumFmt:         excelize.ChartNumFmt{CustomNumFmt: "0;0"},
			Title:          []excelize.RichTextRun{{Text: render.ShareAxisLabel}},
		},
		Dimension: excelize.ChartDimension{Width: 840, Height: 600},
	})
}

func writeNetChangeSheet(f *excelize.File, report *electrode.Report) error {
	sheet := SheetNetChange
	header := []interface{}{"Band"}
	for _, nt := range electrode.NetworkTypes {
		header = append(header, nt.String())
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, band := range electrode.ChartBands {
		row := []interface{}{band.String()}
		for _, nt := range electrode.NetworkTypes {
			// absent groups plot as an empty bar
			row = append(row, report.NetChange.ValueOrZero(nt, band))
		}
		if err := f.SetSheetRow(sheet, cellName(1, i+2), &row); err != nil {
			return err
		}
	}

	lastRow := len(electrode.ChartBands) + 1
	if err := setNumberFormat(f, sheet, "B2", cellName(len(electrode.NetworkTypes)+1, lastRow), `0.00"%"`); err != nil {
		return err
	}

	series := make([]excelize.ChartSeries, 0, len(electrode.NetworkTypes))
	for j, nt := range electrode.NetworkTypes {
		col := j + 2
		series = append(series, excelize.ChartSeries{
			Name:       ref(sheet, col, 1),
			Categories: rangeRef(sheet, 1, 2, 1, lastRow),
			Values:     rangeRef(sheet, col, 2, col, lastRow),
			Fill:       solid(render.NetworkTypeColors[nt]),
		})
	}

	return f.AddChart(sheet, "E2", &excelize.Chart{
		Type:     excelize.Col,
		Series:   series,
		Title:    []excelize.RichTextRun{{Text: render.NetChangeTitle}},
		Legend:   excelize.ChartLegend{Position: "top"},
		PlotArea: excelize.ChartPlotArea{ShowVal: true},
		XAxis:    excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: render.BandAxisLabel}}},
		YAxis: excelize.ChartAxis{
			MajorGridLines: true,
			Title:          []excelize.RichTextRun{{Text: render.ChangeAxisLabel}},
		},
		Dimension: excelize.ChartDimension{Width: 720, Height: 480},
	})
}

func writeAverageSheet(f *excelize.File, report *electrode.Report) error {
	sheet := SheetAverage
	header := []interface{}{"Network", "PSC", "Count", "StdErr"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "F1", report.AverageBand.String()); err != nil {
		return err
	}

	for i, avg := range report.AverageChange {
		row := []interface{}{avg.Network, avg.MeanPSC, avg.Count, avg.StdErr}
		if err := f.SetSheetRow(sheet, cellName(1, i+2), &row); err != nil {
			return err
		}
	}
	if len(report.AverageChange) == 0 {
		return nil
	}

	lastRow := len(report.AverageChange) + 1
	if err := setNumberFormat(f, sheet, "B2", cellName(2, lastRow), `0.00"%"`); err != nil {
		return err
	}

	// one series per network so every bar gets its network color
	series := make([]excelize.ChartSeries, 0, len(report.AverageChange))
	for i, avg := range report.AverageChange {
		series = append(series, excelize.ChartSeries{
			Name:       ref(sheet, 1, i+2),
			Categories: ref(sheet, 6, 1),
			Values:     ref(sheet, 2, i+2),
			Fill:       solid(render.NetworkColor(avg.Network)),
		})
	}

	return f.AddChart(sheet, "H2", &excelize.Chart{
		Type:     excelize.Col,
		Series:   series,
		Title:    []excelize.RichTextRun{{Text: render.AverageTitle}},
		Legend:   excelize.ChartLegend{Position: "right"},
		PlotArea: excelize.ChartPlotArea{ShowVal: true},
		XAxis:    excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: render.NetworkAxisLabel}}},
		YAxis: excelize.ChartAxis{
			MajorGridLines: true,
			Title:          []excelize.RichTextRun{{Text: render.ChangeAxisLabel}},
		},
		Dimension: excelize.ChartDimension{Width: 720, Height: 480},
	})
}

func setNumberFormat(f *excelize.File, sheet, from, to, format string) error {
	style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &format})
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, from, to, style)
}

func solid(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func ref(sheet string, col, row int) string {
	absolute, _ := excelize.CoordinatesToCellName(col, row, true)
	return fmt.Sprintf("'%s'!%s", sheet, absolute)
}

func rangeRef(sheet string, col1, row1, col2, row2 int) string {
	from, _ := excelize.CoordinatesToCellName(col1, row1, true)
	to, _ := excelize.CoordinatesToCellName(col2, row2, true)
	return fmt.Sprintf("'%s'!%s:%s", sheet, from, to)
}
