package aggregate

import (
	"math"
	"sort"

	"fpnpower/domain/electrode"

	"gonum.org/v1/gonum/stat"
)

// AverageChange returns the mean psc of every row per network label,
// without any significance filter. Rows with a missing psc or an empty
// label are skipped. The result is sorted by label.
func (a *Aggregator) AverageChange(t electrode.Table) electrode.AverageChangeResult {
	if t.IsEmpty() {
		return electrode.AverageChangeResult{}
	}

	byNetwork := make(map[string][]float64)
	for _, rec := range t {
		if rec.Network == "" || math.IsNaN(rec.PSC) {
			continue
		}
		byNetwork[rec.Network] = append(byNetwork[rec.Network], rec.PSC)
	}

	result := make(electrode.AverageChangeResult, 0, len(byNetwork))
	for name, values := range byNetwork {
		result = append(result, electrode.NetworkAverage{
			Network: name,
			MeanPSC: meanOrZero(values),
			Count:   len(values),
			StdErr:  stdErr(values),
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Network < result[j].Network })
	return result
}

func stdErr(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	_, std := stat.MeanStdDev(values, nil)
	return stat.StdErr(std, float64(len(values)))
}
