package aggregate

import (
	"fpnpower/domain/electrode"
	"fpnpower/internal/significance"
)

// Share returns the percentage of significant electrodes (p <= alpha) that
// increase or decrease power, split into the distinguished network and the
// named other networks.
//
// The distinguished increase counts psc >= 0 while the other increase counts
// psc > 0, so a zero change is an FPN increase but no direction for other
// networks. Unclassified rows still count in the denominator.
func (a *Aggregator) Share(t electrode.Table) electrode.ShareResult {
	result := electrode.ShareResult{Total: t.Len()}

	sig := significance.Inclusive(t, a.opts.Alpha)
	result.Significant = sig.Len()
	if result.Significant == 0 {
		return result
	}

	var fpnUp, fpnDown, otherUp, otherDown int
	for _, row := range a.opts.ShareClassifier.Classify(sig) {
		switch row.Type {
		case electrode.Distinguished:
			if row.PSC >= 0 {
				fpnUp++
			} else if row.PSC < 0 {
				fpnDown++
			}
		case electrode.Other:
			if row.PSC > 0 {
				otherUp++
			} else if row.PSC < 0 {
				otherDown++
			}
		}
	}

	total := float64(result.Significant)
	result.FPNIncrease = 100 * float64(fpnUp) / total
	result.FPNDecrease = 100 * float64(fpnDown) / total
	result.NonFPNIncrease = 100 * float64(otherUp) / total
	result.NonFPNDecrease = 100 * float64(otherDown) / total
	return result
}
