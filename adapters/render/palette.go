// Package render holds the static labels and colors shared by every report renderer.
package render

import "fpnpower/domain/electrode"

// ShareSeries describes one bar of the share chart
type ShareSeries struct {
	Label    string
	Color    string // hex RGB without '#'
	Increase bool
	Value    func(electrode.ShareResult) float64
}

// ShareSeriesOrder is the bar order within each band group
var ShareSeriesOrder = []ShareSeries{
	{Label: "FPN Increase", Color: "FFFF00", Increase: true, Value: func(r electrode.ShareResult) float64 { return r.FPNIncrease }},
	{Label: "FPN Decrease", Color: "FFA500", Value: func(r electrode.ShareResult) float64 { return r.FPNDecrease }},
	{Label: "non-FPN Increase", Color: "D3D3D3", Increase: true, Value: func(r electrode.ShareResult) float64 { return r.NonFPNIncrease }},
	{Label: "non-FPN Decrease", Color: "A9A9A9", Value: func(r electrode.ShareResult) float64 { return r.NonFPNDecrease }},
}

// Signed returns the plotted value: decreases point down
func (s ShareSeries) Signed(r electrode.ShareResult) float64 {
	v := s.Value(r)
	if s.Increase || v == 0 {
		return v
	}
	return -v
}

// ShareAxisLimit bounds the mirrored share axis
const ShareAxisLimit = 80.0

// NetworkTypeColors colors the net-change bars
var NetworkTypeColors = map[electrode.NetworkType]string{
	electrode.Distinguished: "FFA500",
	electrode.Other:         "808080",
}

// networkColors colors the average-change bars
var networkColors = map[string]string{
	"FPN":   "FFA500",
	"DMN":   "FF0000",
	"CON":   "800080",
	"motor": "0000FF",
}

// FallbackColor is used for networks without an assigned color
const FallbackColor = "808080"

// NetworkColor returns the bar color of a network label
func NetworkColor(network string) string {
	if c, ok := networkColors[network]; ok {
		return c
	}
	return FallbackColor
}

// Titles and axis labels
const (
	ShareTitle       = "Significant electrodes by network and band"
	NetChangeTitle   = "Net power modulation of significant electrodes"
	AverageTitle     = "Average power modulation per network"
	BandAxisLabel    = "Frequency Bands"
	ShareAxisLabel   = "% Significant Electrodes"
	ChangeAxisLabel  = "% Power Change"
	NetworkAxisLabel = "Network"
)
