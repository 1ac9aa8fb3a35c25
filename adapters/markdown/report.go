// Package markdown renders a report as Markdown tables and as a standalone HTML page.
package markdown

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fpnpower/adapters/render"
	"fpnpower/domain/electrode"
	"fpnpower/internal"
	"fpnpower/internal/errors"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

const baseName = "fpn_power_report"

// ReportWriter writes fpn_power_report.md and/or fpn_power_report.html
type ReportWriter struct {
	dir       string
	writeMD   bool
	writeHTML bool
	logger    *internal.Logger
}

// NewReportWriter creates a writer; at least one of writeMD and writeHTML should be set
func NewReportWriter(dir string, writeMD, writeHTML bool, logger *internal.Logger) *ReportWriter {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &ReportWriter{dir: dir, writeMD: writeMD, writeHTML: writeHTML, logger: logger}
}

func (w *ReportWriter) Name() string { return "markdown" }

// MarkdownPath returns the location of the Markdown file
func (w *ReportWriter) MarkdownPath() string {
	return filepath.Join(w.dir, baseName+".md")
}

// HTMLPath returns the location of the HTML file
func (w *ReportWriter) HTMLPath() string {
	return filepath.Join(w.dir, baseName+".html")
}

func (w *ReportWriter) Render(report *electrode.Report) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return errors.RenderFailed(w.Name(), err)
	}

	md := Build(report)
	if w.writeMD {
		if err := os.WriteFile(w.MarkdownPath(), md, 0o644); err != nil {
			return errors.RenderFailed(w.Name(), err)
		}
		w.logger.Info("[ReportWriter] Markdown written to %s", w.MarkdownPath())
	}
	if w.writeHTML {
		if err := os.WriteFile(w.HTMLPath(), ToHTML(md), 0o644); err != nil {
			return errors.RenderFailed(w.Name(), err)
		}
		w.logger.Info("[ReportWriter] HTML written to %s", w.HTMLPath())
	}
	return nil
}

// Build renders the report as Markdown
func Build(report *electrode.Report) []byte {
	var b bytes.Buffer

	fmt.Fprintf(&b, "# FPN power modulation report\n\n")
	fmt.Fprintf(&b, "Run `%s`, generated %s.\n\n", report.RunID, report.GeneratedAt.Format(time.RFC3339))
	if !report.SourceHash.IsEmpty() {
		fmt.Fprintf(&b, "Input fingerprint `%s`.\n\n", report.SourceHash)
	}
	if len(report.Missing) > 0 {
		b.WriteString("Bands without data:")
		for _, band := range report.Missing {
			fmt.Fprintf(&b, " %s", band)
		}
		b.WriteString(".\n\n")
	}

	fmt.Fprintf(&b, "## %s\n\n", render.ShareTitle)
	b.WriteString("| Band |")
	for _, s := range render.ShareSeriesOrder {
		fmt.Fprintf(&b, " %s |", s.Label)
	}
	b.WriteString(" Significant | Total |\n|---|")
	for range render.ShareSeriesOrder {
		b.WriteString("---:|")
	}
	b.WriteString("---:|---:|\n")
	for _, band := range electrode.ChartBands {
		r := report.Share(band)
		fmt.Fprintf(&b, "| %s |", band)
		for _, s := range render.ShareSeriesOrder {
			fmt.Fprintf(&b, " %.1f |", s.Value(r))
		}
		fmt.Fprintf(&b, " %d | %d |\n", r.Significant, r.Total)
	}

	fmt.Fprintf(&b, "\n## %s\n\n", render.NetChangeTitle)
	b.WriteString("| Band |")
	for _, nt := range electrode.NetworkTypes {
		fmt.Fprintf(&b, " %s |", nt)
	}
	b.WriteString("\n|---|")
	for range electrode.NetworkTypes {
		b.WriteString("---:|")
	}
	b.WriteString("\n")
	for _, band := range electrode.ChartBands {
		fmt.Fprintf(&b, "| %s |", band)
		for _, nt := range electrode.NetworkTypes {
			if v, ok := report.NetChange.Get(nt, band); ok {
				fmt.Fprintf(&b, " %.2f%% |", v)
			} else {
				b.WriteString(" n/a |")
			}
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n## %s (%s)\n\n", render.AverageTitle, report.AverageBand)
	if len(report.AverageChange) == 0 {
		b.WriteString("No electrodes.\n")
		return b.Bytes()
	}
	b.WriteString("| Network | PSC | Electrodes | Std. error |\n|---|---:|---:|---:|\n")
	for _, avg := range report.AverageChange {
		fmt.Fprintf(&b, "| %s | %.2f%% | %d | %.2f |\n", avg.Network, avg.MeanPSC, avg.Count, avg.StdErr)
	}
	return b.Bytes()
}

// ToHTML converts report Markdown into a complete HTML page
func ToHTML(md []byte) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse(md)

	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.CompletePage,
		Title: "FPN power modulation report",
	})
	return markdown.Render(doc, renderer)
}
