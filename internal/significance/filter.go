// Package significance narrows electrode tables to rows whose p-value passes a threshold.
//
// Two comparisons coexist on purpose: the share computation keeps p <= alpha
// while the net-change computation keeps p < alpha. Callers pick the one
// their aggregate is defined with.
package significance

import "fpnpower/domain/electrode"

// Alpha is the fixed significance threshold
const Alpha = 0.05

// Inclusive returns the rows with p-value <= threshold
func Inclusive(t electrode.Table, threshold float64) electrode.Table {
	return filter(t, func(p float64) bool { return p <= threshold })
}

// Strict returns the rows with p-value < threshold
func Strict(t electrode.Table, threshold float64) electrode.Table {
	return filter(t, func(p float64) bool { return p < threshold })
}

func filter(t electrode.Table, keep func(p float64) bool) electrode.Table {
	out := make(electrode.Table, 0, len(t))
	for _, rec := range t {
		// NaN p-values fail both comparisons
		if keep(rec.PValue) {
			out = append(out, rec)
		}
	}
	return out
}
