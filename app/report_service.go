package app

import (
	"strconv"
	"strings"
	"time"

	"fpnpower/domain/core"
	"fpnpower/domain/electrode"
	"fpnpower/internal"
	"fpnpower/internal/aggregate"
	"fpnpower/internal/errors"
	"fpnpower/ports"
)

// BandSources maps each band to the file it is loaded from
type BandSources map[electrode.Band]string

// BandTables holds the loaded tables of one run. Absent bands have no entry.
type BandTables map[electrode.Band]electrode.Table

// ReportService loads the band files and computes every aggregate of a report
type ReportService struct {
	source      ports.TableSource
	aggregator  *aggregate.Aggregator
	averageBand electrode.Band
	logger      *internal.Logger
	now         func() time.Time
}

// NewReportService creates a report service
func NewReportService(source ports.TableSource, aggregator *aggregate.Aggregator, averageBand electrode.Band, logger *internal.Logger) *ReportService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &ReportService{
		source:      source,
		aggregator:  aggregator,
		averageBand: averageBand,
		logger:      logger,
		now:         time.Now,
	}
}

// LoadBands loads every configured band, in band order. Bands whose source is
// missing, empty or unreadable are returned in missing.
func (s *ReportService) LoadBands(sources BandSources) (tables BandTables, missing []electrode.Band) {
	tables = make(BandTables, len(sources))
	for _, band := range electrode.AllBands {
		path, ok := sources[band]
		if !ok {
			continue
		}
		table, ok := s.source.Load(path, band)
		if !ok {
			missing = append(missing, band)
			continue
		}
		tables[band] = table
	}
	return tables, missing
}

// Build computes the share of each chart band, the net change across the
// chart bands and the average change of the configured band.
func (s *ReportService) Build(tables BandTables, missing []electrode.Band) *electrode.Report {
	report := &electrode.Report{
		RunID:       core.NewRunID(),
		GeneratedAt: s.now().UTC(),
		Shares:      make(map[electrode.Band]electrode.ShareResult, len(electrode.ChartBands)),
		SourceHash:  SourceHash(tables),
		AverageBand: s.averageBand,
		Missing:     missing,
	}

	netInputs := make([]electrode.Table, 0, len(electrode.ChartBands))
	for _, band := range electrode.ChartBands {
		table := tables[band]
		report.Shares[band] = s.aggregator.Share(table)
		netInputs = append(netInputs, table.WithBand(band))
	}
	report.NetChange = s.aggregator.NetChange(netInputs...)
	report.AverageChange = s.aggregator.AverageChange(tables[s.averageBand])

	for _, band := range electrode.ChartBands {
		share := report.Shares[band]
		s.logger.Debug("[ReportService] %s: %d/%d significant, share sum %.1f", band, share.Significant, share.Total, share.Sum())
	}
	s.logger.Info("[ReportService] Report %s built: %d net-change groups, %d networks averaged, %d bands missing",
		report.RunID, report.NetChange.Len(), len(report.AverageChange), len(missing))
	return report
}

// SourceHash fingerprints the loaded rows of every band. Two runs over the
// same data share a hash even when file names or locations differ.
func SourceHash(tables BandTables) core.Hash {
	parts := make(map[string]string, len(tables))
	for band, table := range tables {
		var b strings.Builder
		for _, rec := range table {
			b.WriteString(rec.Network)
			b.WriteByte('\t')
			b.WriteString(strconv.FormatFloat(rec.PSC, 'g', -1, 64))
			b.WriteByte('\t')
			b.WriteString(strconv.FormatFloat(rec.PValue, 'g', -1, 64))
			b.WriteByte('\n')
		}
		parts[band.String()] = b.String()
	}
	return core.ComputeSourceHash(parts)
}

// Run loads the sources and builds the report
func (s *ReportService) Run(sources BandSources) *electrode.Report {
	tables, missing := s.LoadBands(sources)
	return s.Build(tables, missing)
}

// Publish hands the report to every renderer, stopping at the first failure
func (s *ReportService) Publish(report *electrode.Report, renderers ...ports.Renderer) error {
	for _, r := range renderers {
		if err := r.Render(report); err != nil {
			if !errors.HasCode(err, errors.CodeRenderFailed) {
				err = errors.RenderFailed(r.Name(), err)
			}
			return err
		}
		s.logger.Debug("[ReportService] %s renderer finished", r.Name())
	}
	return nil
}
