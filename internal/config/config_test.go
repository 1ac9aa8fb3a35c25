package config

import (
	"os"
	"path/filepath"
	"testing"

	"fpnpower/domain/electrode"
	"fpnpower/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"CONFIG_FILE", "DATA_DIR", "OUTPUT_DIR", "LOG_LEVEL", "SIGNIFICANCE_ALPHA",
		"DISTINGUISHED_NETWORK", "OTHER_NETWORKS", "AVERAGE_BAND", "REPORT_FORMATS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.05, cfg.Analysis.Alpha)
	assert.Equal(t, "FPN", cfg.Analysis.DistinguishedNetwork)
	assert.Equal(t, []string{"DMN", "CON", "motor"}, cfg.Analysis.OtherNetworks)
	assert.Equal(t, electrode.HighGamma, cfg.Analysis.AverageBand)
	assert.Len(t, cfg.Data.BandFiles, 6)
	assert.Equal(t, filepath.Join(".", "Band5-HG Results - Band5-HG Results.csv"), cfg.BandPath(electrode.HighGamma))
	assert.True(t, cfg.WantsFormat(FormatXLSX))
	assert.False(t, cfg.WantsFormat(FormatMarkdown))
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATA_DIR", "/data")
	t.Setenv("SIGNIFICANCE_ALPHA", "0.01")
	t.Setenv("OTHER_NETWORKS", "DMN, CON ,motor,VIS")
	t.Setenv("AVERAGE_BAND", "beta")
	t.Setenv("REPORT_FORMATS", "Markdown,html")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.01, cfg.Analysis.Alpha)
	assert.Equal(t, []string{"DMN", "CON", "motor", "VIS"}, cfg.Analysis.OtherNetworks)
	assert.Equal(t, electrode.Beta, cfg.Analysis.AverageBand)
	assert.Equal(t, []string{FormatMarkdown, FormatHTML}, cfg.Output.Formats)
	assert.Equal(t, filepath.Join("/data", "Band3-Beta Results - Band3-Beta Results.csv"), cfg.BandPath(electrode.Beta))
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "fpn.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data:
  dir: /srv/ieeg
  band_files:
    High Gamma: /abs/hg.csv
    beta: beta.xlsx
analysis:
  alpha: 0.04
  average_band: low gamma
output:
  formats: [xlsx]
log_level: DEBUG
`), 0o644))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("LOG_LEVEL", "WARN")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.04, cfg.Analysis.Alpha)
	assert.Equal(t, electrode.LowGamma, cfg.Analysis.AverageBand)
	assert.Equal(t, "/abs/hg.csv", cfg.BandPath(electrode.HighGamma))
	assert.Equal(t, filepath.Join("/srv/ieeg", "beta.xlsx"), cfg.BandPath(electrode.Beta))
	assert.Equal(t, []string{FormatXLSX}, cfg.Output.Formats)
	assert.Equal(t, "WARN", cfg.LogLevel)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"alpha out of range", "SIGNIFICANCE_ALPHA", "1.5"},
		{"unknown band", "AVERAGE_BAND", "omega"},
		{"unknown format", "REPORT_FORMATS", "pdf"},
		{"overlapping networks", "OTHER_NETWORKS", "FPN,DMN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestLoadConfigFileIsDirectory(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", t.TempDir())

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}
