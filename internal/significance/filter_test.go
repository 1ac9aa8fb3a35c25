package significance

import (
	"math"
	"testing"

	"fpnpower/domain/electrode"

	"github.com/stretchr/testify/assert"
)

func table() electrode.Table {
	return electrode.Table{
		{Network: "FPN", PSC: 1, PValue: 0.01},
		{Network: "DMN", PSC: -1, PValue: 0.05},
		{Network: "CON", PSC: 2, PValue: 0.2},
		{Network: "motor", PSC: 3, PValue: math.NaN()},
	}
}

func TestInclusiveKeepsBoundary(t *testing.T) {
	got := Inclusive(table(), Alpha)

	assert.Len(t, got, 2)
	assert.Equal(t, "DMN", got[1].Network)
}

func TestStrictDropsBoundary(t *testing.T) {
	got := Strict(table(), Alpha)

	assert.Len(t, got, 1)
	assert.Equal(t, "FPN", got[0].Network)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	in := table()
	out := Strict(in, Alpha)
	out[0].Network = "changed"

	assert.Equal(t, "FPN", in[0].Network)
	assert.Len(t, in, 4)
}

func TestFilterEmpty(t *testing.T) {
	assert.Empty(t, Inclusive(nil, Alpha))
	assert.Empty(t, Strict(electrode.Table{}, Alpha))
}
