package container

import (
	"fmt"

	"fpnpower/adapters/excel"
	"fpnpower/adapters/markdown"
	"fpnpower/app"
	"fpnpower/domain/electrode"
	"fpnpower/internal"
	"fpnpower/internal/aggregate"
	"fpnpower/internal/config"
	"fpnpower/internal/network"
	"fpnpower/ports"
)

// Container holds all application dependencies of one run
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	Loader        *excel.Loader
	Aggregator    *aggregate.Aggregator
	ReportService *app.ReportService
	Renderers     []ports.Renderer
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	logger := internal.NewLogger(internal.ParseLogLevel(cfg.LogLevel))
	c := &Container{
		Config: cfg,
		Logger: logger,
		Loader: excel.NewLoader(logger),
	}

	c.Aggregator = aggregate.New(AggregatorOptions(cfg))
	c.ReportService = app.NewReportService(c.Loader, c.Aggregator, cfg.Analysis.AverageBand, logger)
	c.Renderers = Renderers(cfg, logger)

	return c, nil
}

// AggregatorOptions maps the analysis settings onto the two classifier policies
func AggregatorOptions(cfg *config.Config) aggregate.Options {
	others := make([]string, len(cfg.Analysis.OtherNetworks))
	copy(others, cfg.Analysis.OtherNetworks)

	return aggregate.Options{
		Alpha: cfg.Analysis.Alpha,
		ShareClassifier: &network.EnumeratedPolicy{
			Distinguished: cfg.Analysis.DistinguishedNetwork,
			Others:        others,
		},
		NetChangeClassifier: &network.SubstringPolicy{
			Distinguished: cfg.Analysis.DistinguishedNetwork,
		},
	}
}

// Sources returns the file of every band
func Sources(cfg *config.Config) app.BandSources {
	sources := make(app.BandSources, len(electrode.AllBands))
	for _, band := range electrode.AllBands {
		sources[band] = cfg.BandPath(band)
	}
	return sources
}

// Renderers builds the renderers enabled by the output formats
func Renderers(cfg *config.Config, logger *internal.Logger) []ports.Renderer {
	var renderers []ports.Renderer
	if cfg.WantsFormat(config.FormatXLSX) {
		renderers = append(renderers, excel.NewChartWriter(cfg.Output.Dir, logger))
	}
	wantMD, wantHTML := cfg.WantsFormat(config.FormatMarkdown), cfg.WantsFormat(config.FormatHTML)
	if wantMD || wantHTML {
		renderers = append(renderers, markdown.NewReportWriter(cfg.Output.Dir, wantMD, wantHTML, logger))
	}
	return renderers
}

// Run loads the configured band files, builds the report and renders it
func (c *Container) Run() (*electrode.Report, error) {
	report := c.ReportService.Run(Sources(c.Config))
	if err := c.ReportService.Publish(report, c.Renderers...); err != nil {
		return report, err
	}
	return report, nil
}
