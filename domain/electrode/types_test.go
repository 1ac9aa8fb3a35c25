package electrode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBand(t *testing.T) {
	tests := []struct {
		in   string
		want Band
	}{
		{"High Gamma", HighGamma},
		{"high_gamma", HighGamma},
		{"HG", HighGamma},
		{"Low Gamma", LowGamma},
		{"gamma", LowGamma},
		{" beta ", Beta},
		{"Delta", Delta},
	}
	for _, tt := range tests {
		got, err := ParseBand(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseBand("omega")
	assert.Error(t, err)
}

func TestTableWithBandDoesNotMutate(t *testing.T) {
	orig := Table{{Network: "FPN", PSC: 1, PValue: 0.01}}
	tagged := orig.WithBand(Beta)

	assert.Equal(t, Beta, tagged[0].Band)
	assert.Equal(t, Delta, orig[0].Band)
}

func TestConcatPreservesOrder(t *testing.T) {
	a := Table{{Network: "FPN"}}
	b := Table{{Network: "DMN"}, {Network: "CON"}}

	got := Concat(a, nil, b)
	require.Len(t, got, 3)
	assert.Equal(t, "FPN", got[0].Network)
	assert.Equal(t, "CON", got[2].Network)
	assert.True(t, Concat().IsEmpty())
}

func TestNetChangeResultPairsAndJSON(t *testing.T) {
	r := NewNetChangeResult()
	r.Set(Other, Beta, -1.5)
	r.Set(Distinguished, HighGamma, 8)

	assert.Equal(t, 2, r.Len())
	_, ok := r.Get(Distinguished, Beta)
	assert.False(t, ok)
	assert.Equal(t, 0.0, r.ValueOrZero(Distinguished, Beta))

	pairs := r.Pairs()
	require.Len(t, pairs, 2)
	assert.Equal(t, Distinguished, pairs[0].Type)
	assert.Equal(t, Other, pairs[1].Type)

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"FPN":{"High Gamma":8},"non-FPN":{"Beta":-1.5}}`, string(raw))
}

func TestReportJSONUsesBandLabels(t *testing.T) {
	rep := Report{Shares: map[Band]ShareResult{HighGamma: {FPNIncrease: 50, Significant: 2}}}
	raw, err := json.Marshal(rep)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"High Gamma":{"fpn_increase":50`)
}
