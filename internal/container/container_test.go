package container

import (
	"path/filepath"
	"testing"

	"fpnpower/domain/electrode"
	"fpnpower/internal/config"
	"fpnpower/internal/fixtures"
	"fpnpower/internal/network"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.Data.Dir = t.TempDir()
	cfg.Output.Dir = filepath.Join(t.TempDir(), "out")
	cfg.Output.Formats = []string{config.FormatXLSX, config.FormatHTML, config.FormatMarkdown}
	cfg.LogLevel = "ERROR"
	return cfg
}

func TestNewRequiresConfig(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestAggregatorOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Analysis.Alpha = 0.01
	cfg.Analysis.OtherNetworks = []string{"VIS"}

	opts := AggregatorOptions(cfg)

	assert.Equal(t, 0.01, opts.Alpha)
	share, ok := opts.ShareClassifier.(*network.EnumeratedPolicy)
	require.True(t, ok)
	assert.Equal(t, []string{"VIS"}, share.Others)
	net, ok := opts.NetChangeClassifier.(*network.SubstringPolicy)
	require.True(t, ok)
	assert.Equal(t, "FPN", net.Distinguished)
}

func TestRenderersFollowFormats(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Formats = []string{config.FormatMarkdown}
	renderers := Renderers(cfg, nil)
	require.Len(t, renderers, 1)
	assert.Equal(t, "markdown", renderers[0].Name())

	cfg.Output.Formats = []string{config.FormatXLSX, config.FormatHTML}
	assert.Len(t, Renderers(cfg, nil), 2)

	cfg.Output.Formats = nil
	assert.Empty(t, Renderers(cfg, nil))
}

func TestRunEndToEnd(t *testing.T) {
	cfg := testConfig(t)
	// leave delta out to exercise the missing-source path
	files := config.DefaultBandFiles()
	delete(files, electrode.Delta)
	_, err := fixtures.WriteBands(cfg.Data.Dir, files, fixtures.DefaultConfig())
	require.NoError(t, err)

	c, err := New(cfg)
	require.NoError(t, err)

	report, err := c.Run()
	require.NoError(t, err)

	assert.Equal(t, []electrode.Band{electrode.Delta}, report.Missing)
	for _, band := range electrode.ChartBands {
		share := report.Share(band)
		assert.Equal(t, fixtures.DefaultConfig().Electrodes, share.Total)
		assert.Greater(t, share.Significant, 0)
		// fixture networks are all enumerated, so shares are exhaustive up to zero-change rows
		assert.InDelta(t, 100.0, share.Sum(), 1.0)
	}
	assert.Len(t, report.AverageChange, 4)

	assert.FileExists(t, filepath.Join(cfg.Output.Dir, "fpn_power_report.xlsx"))
	assert.FileExists(t, filepath.Join(cfg.Output.Dir, "fpn_power_report.html"))
	assert.FileExists(t, filepath.Join(cfg.Output.Dir, "fpn_power_report.md"))
}
