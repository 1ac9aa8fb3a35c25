// Package aggregate computes the three power-modulation summaries:
// the share of significant electrodes per direction, the net change per
// network type and band, and the average change per network.
//
// All computations are pure. They accept nil or empty tables and return
// zero or empty results instead of errors.
package aggregate

import (
	"fpnpower/domain/electrode"
	"fpnpower/internal/network"
	"fpnpower/internal/significance"

	"github.com/montanaflynn/stats"
)

// Options configures an Aggregator
type Options struct {
	Alpha float64

	// ShareClassifier labels rows for Share (exact names)
	ShareClassifier network.Classifier
	// NetChangeClassifier labels rows for NetChange (substring match)
	NetChangeClassifier network.Classifier
}

// DefaultOptions uses alpha 0.05 and the default FPN / DMN, CON, motor names
func DefaultOptions() Options {
	return Options{
		Alpha:               significance.Alpha,
		ShareClassifier:     network.NewEnumeratedPolicy(),
		NetChangeClassifier: network.NewSubstringPolicy(),
	}
}

// Aggregator runs the aggregate computations with fixed options
type Aggregator struct {
	opts Options
}

// New creates an aggregator, filling unset options with defaults
func New(opts Options) *Aggregator {
	def := DefaultOptions()
	if opts.Alpha <= 0 {
		opts.Alpha = def.Alpha
	}
	if opts.ShareClassifier == nil {
		opts.ShareClassifier = def.ShareClassifier
	}
	if opts.NetChangeClassifier == nil {
		opts.NetChangeClassifier = def.NetChangeClassifier
	}
	return &Aggregator{opts: opts}
}

// Options returns the effective options
func (a *Aggregator) Options() Options {
	return a.opts
}

var defaultAggregator = New(DefaultOptions())

// ComputeShare runs Share with default options
func ComputeShare(t electrode.Table) electrode.ShareResult {
	return defaultAggregator.Share(t)
}

// ComputeNetChange runs NetChange with default options
func ComputeNetChange(tables ...electrode.Table) electrode.NetChangeResult {
	return defaultAggregator.NetChange(tables...)
}

// ComputeAverageChange runs AverageChange with default options
func ComputeAverageChange(t electrode.Table) electrode.AverageChangeResult {
	return defaultAggregator.AverageChange(t)
}

// meanOrZero returns the arithmetic mean, or 0 for an empty sequence
func meanOrZero(values []float64) float64 {
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}
