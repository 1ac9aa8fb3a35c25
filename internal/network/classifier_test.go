package network

import (
	"testing"

	"fpnpower/domain/electrode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(names ...string) electrode.Table {
	t := make(electrode.Table, len(names))
	for i, n := range names {
		t[i] = electrode.Record{Network: n, PSC: float64(i), PValue: 0.01}
	}
	return t
}

func TestEnumeratedPolicy(t *testing.T) {
	got := NewEnumeratedPolicy().Classify(labels("FPN", "DMN", "CON", "motor", "FPN-left", "VIS", ""))
	require.Len(t, got, 7)

	want := []electrode.NetworkType{
		electrode.Distinguished,
		electrode.Other,
		electrode.Other,
		electrode.Other,
		electrode.Unclassified,
		electrode.Unclassified,
		electrode.Unclassified,
	}
	for i, w := range want {
		assert.Equal(t, w, got[i].Type, got[i].Network)
	}
}

func TestSubstringPolicy(t *testing.T) {
	got := NewSubstringPolicy().Classify(labels("FPN", "FPN-left", "rFPN", "DMN", "VIS", "fpn"))

	want := []electrode.NetworkType{
		electrode.Distinguished,
		electrode.Distinguished,
		electrode.Distinguished,
		electrode.Other,
		electrode.Other,
		electrode.Other,
	}
	for i, w := range want {
		assert.Equal(t, w, got[i].Type, got[i].Network)
	}
}

func TestPoliciesDisagreeOnCompoundLabels(t *testing.T) {
	enumerated := NewEnumeratedPolicy()
	substring := NewSubstringPolicy()

	assert.Equal(t, electrode.Unclassified, enumerated.TypeOf("FPN-left"))
	assert.Equal(t, electrode.Distinguished, substring.TypeOf("FPN-left"))
	assert.Equal(t, electrode.Unclassified, enumerated.TypeOf("VIS"))
	assert.Equal(t, electrode.Other, substring.TypeOf("VIS"))
}

func TestClassifyKeepsSourceIntact(t *testing.T) {
	in := labels("FPN", "DMN")
	out := NewSubstringPolicy().Classify(in)
	out[0].Network = "changed"

	assert.Equal(t, "FPN", in[0].Network)
	assert.Equal(t, in[1], out[1].Record)
}

func TestDefaultOthersNotShared(t *testing.T) {
	p := NewEnumeratedPolicy()
	p.Others[0] = "VIS"

	assert.Equal(t, "DMN", DefaultOthers[0])
}

func TestClassifyEmpty(t *testing.T) {
	assert.Empty(t, NewEnumeratedPolicy().Classify(nil))
	assert.Empty(t, NewSubstringPolicy().Classify(electrode.Table{}))
}
