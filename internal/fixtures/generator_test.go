package fixtures

import (
	"path/filepath"
	"testing"

	"fpnpower/domain/electrode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultConfig()

	a, err := Generate(cfg, electrode.HighGamma)
	require.NoError(t, err)
	b, err := Generate(cfg, electrode.HighGamma)
	require.NoError(t, err)
	c, err := Generate(cfg, electrode.Beta)
	require.NoError(t, err)

	assert.Equal(t, a.Rows, b.Rows)
	assert.NotEqual(t, a.Rows, c.Rows)
	assert.Len(t, a.Records, cfg.Electrodes)
	assert.Equal(t, Headers, a.Headers)
}

func TestGenerateRespectsSignificantFraction(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SignificantFraction = 0

	ds, err := Generate(cfg, electrode.LowGamma)
	require.NoError(t, err)
	for _, rec := range ds.Records {
		assert.GreaterOrEqual(t, rec.PValue, 0.05)
		assert.Equal(t, electrode.LowGamma, rec.Band)
	}
}

func TestGenerateValidatesConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Electrodes = 0
	_, err := Generate(cfg, electrode.Beta)
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.Networks = nil
	_, err = Generate(cfg, electrode.Beta)
	assert.Error(t, err)
}

func TestWriteBands(t *testing.T) {
	dir := t.TempDir()
	files := map[electrode.Band]string{
		electrode.Beta:      "beta.csv",
		electrode.HighGamma: "hg.xlsx",
	}

	written, err := WriteBands(dir, files, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, written, 2)
	assert.FileExists(t, filepath.Join(dir, "beta.csv"))
	assert.FileExists(t, filepath.Join(dir, "hg.xlsx"))
}
