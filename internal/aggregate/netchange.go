package aggregate

import (
	"fpnpower/domain/electrode"
	"fpnpower/internal/significance"
)

type groupKey struct {
	nt   electrode.NetworkType
	band electrode.Band
}

type signedValues struct {
	positive []float64
	negative []float64
}

// NetChange combines band-tagged tables, keeps rows with p < alpha and
// returns, per network type and band, mean(positive psc) + mean(negative psc).
// Each mean is 0 when its side is empty. Groups without significant rows are
// absent from the result.
func (a *Aggregator) NetChange(tables ...electrode.Table) electrode.NetChangeResult {
	combined := electrode.Concat(tables...)
	sig := significance.Strict(combined, a.opts.Alpha)

	groups := make(map[groupKey]*signedValues)
	for _, row := range a.opts.NetChangeClassifier.Classify(sig) {
		key := groupKey{nt: row.Type, band: row.Band}
		g, ok := groups[key]
		if !ok {
			g = &signedValues{}
			groups[key] = g
		}
		switch {
		case row.PSC > 0:
			g.positive = append(g.positive, row.PSC)
		case row.PSC < 0:
			g.negative = append(g.negative, row.PSC)
		}
	}

	result := electrode.NewNetChangeResult()
	for key, g := range groups {
		result.Set(key.nt, key.band, meanOrZero(g.positive)+meanOrZero(g.negative))
	}
	return result
}

// NetChangeByBand tags each table with its band before running NetChange
func (a *Aggregator) NetChangeByBand(byBand map[electrode.Band]electrode.Table) electrode.NetChangeResult {
	tagged := make([]electrode.Table, 0, len(byBand))
	for _, band := range electrode.AllBands {
		if t, ok := byBand[band]; ok {
			tagged = append(tagged, t.WithBand(band))
		}
	}
	return a.NetChange(tagged...)
}
