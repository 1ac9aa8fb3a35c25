package electrode

import (
	"encoding/json"
	"sort"
	"time"

	"fpnpower/domain/core"
)

// ShareResult holds the percentage of significant electrodes per direction and network type.
// Percentages are relative to Significant and are all zero when Significant is zero.
type ShareResult struct {
	FPNIncrease    float64 `json:"fpn_increase"`
	FPNDecrease    float64 `json:"fpn_decrease"`
	NonFPNIncrease float64 `json:"non_fpn_increase"`
	NonFPNDecrease float64 `json:"non_fpn_decrease"`

	Significant int `json:"significant"`
	Total       int `json:"total"`
}

// Sum returns the sum of the four percentages
func (r ShareResult) Sum() float64 {
	return r.FPNIncrease + r.FPNDecrease + r.NonFPNIncrease + r.NonFPNDecrease
}

// NetChangeResult maps network type and band to the net change of significant electrodes.
// Only combinations present in the data are stored.
type NetChangeResult struct {
	values map[NetworkType]map[Band]float64
}

// NewNetChangeResult returns an empty result
func NewNetChangeResult() NetChangeResult {
	return NetChangeResult{values: make(map[NetworkType]map[Band]float64)}
}

// Set stores the net change for one group
func (r *NetChangeResult) Set(nt NetworkType, band Band, value float64) {
	if r.values == nil {
		r.values = make(map[NetworkType]map[Band]float64)
	}
	byBand, ok := r.values[nt]
	if !ok {
		byBand = make(map[Band]float64)
		r.values[nt] = byBand
	}
	byBand[band] = value
}

// Get returns the net change for one group and whether the group existed
func (r NetChangeResult) Get(nt NetworkType, band Band) (float64, bool) {
	v, ok := r.values[nt][band]
	return v, ok
}

// ValueOrZero returns the stored value, or 0 for absent groups
func (r NetChangeResult) ValueOrZero(nt NetworkType, band Band) float64 {
	v, _ := r.Get(nt, band)
	return v
}

// Len returns the number of stored groups
func (r NetChangeResult) Len() int {
	n := 0
	for _, byBand := range r.values {
		n += len(byBand)
	}
	return n
}

// NetChangePair is one stored group of a NetChangeResult
type NetChangePair struct {
	Type  NetworkType `json:"network_type"`
	Band  Band        `json:"band"`
	Value float64     `json:"net_change"`
}

// Pairs returns every stored group ordered by network type then band
func (r NetChangeResult) Pairs() []NetChangePair {
	pairs := make([]NetChangePair, 0, r.Len())
	for nt, byBand := range r.values {
		for band, v := range byBand {
			pairs = append(pairs, NetChangePair{Type: nt, Band: band, Value: v})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Type != pairs[j].Type {
			return pairs[i].Type < pairs[j].Type
		}
		return pairs[i].Band < pairs[j].Band
	})
	return pairs
}

// MarshalJSON renders the nested network type -> band -> value mapping
func (r NetChangeResult) MarshalJSON() ([]byte, error) {
	out := make(map[string]map[string]float64, len(r.values))
	for nt, byBand := range r.values {
		inner := make(map[string]float64, len(byBand))
		for band, v := range byBand {
			inner[band.String()] = v
		}
		out[nt.String()] = inner
	}
	return json.Marshal(out)
}

// NetworkAverage is the mean PSC of one network label
type NetworkAverage struct {
	Network string  `json:"network"`
	MeanPSC float64 `json:"psc"`
	Count   int     `json:"count"`
	StdErr  float64 `json:"std_err"`
}

// AverageChangeResult has one row per network label, sorted by label
type AverageChangeResult []NetworkAverage

// Lookup returns the row for a network label
func (r AverageChangeResult) Lookup(network string) (NetworkAverage, bool) {
	for _, row := range r {
		if row.Network == network {
			return row, true
		}
	}
	return NetworkAverage{}, false
}

// Report bundles every aggregate of one run for the renderers
type Report struct {
	RunID       core.RunID           `json:"run_id"`
	GeneratedAt time.Time            `json:"generated_at"`
	SourceHash  core.Hash            `json:"source_hash"`
	Shares      map[Band]ShareResult `json:"shares"`
	NetChange   NetChangeResult      `json:"net_change"`

	AverageBand   Band                `json:"average_band"`
	AverageChange AverageChangeResult `json:"average_change"`

	// Missing lists bands whose source could not be loaded
	Missing []Band `json:"missing,omitempty"`
}

// Share returns the share result of a band, or the zero result
func (r *Report) Share(band Band) ShareResult {
	return r.Shares[band]
}
