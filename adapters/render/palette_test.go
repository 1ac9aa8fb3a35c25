package render

import (
	"testing"

	"fpnpower/domain/electrode"

	"github.com/stretchr/testify/assert"
)

func TestShareSeriesSigned(t *testing.T) {
	r := electrode.ShareResult{FPNIncrease: 10, FPNDecrease: 5, NonFPNIncrease: 20, NonFPNDecrease: 15}

	got := make([]float64, len(ShareSeriesOrder))
	for i, s := range ShareSeriesOrder {
		got[i] = s.Signed(r)
	}

	assert.Equal(t, []float64{10, -5, 20, -15}, got)
}

func TestNetworkColor(t *testing.T) {
	assert.Equal(t, "FF0000", NetworkColor("DMN"))
	assert.Equal(t, FallbackColor, NetworkColor("VIS"))
}
