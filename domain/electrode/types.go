package electrode

import (
	"fmt"
	"strings"
)

// Band identifies the frequency range a results file was computed in.
// It is assigned per file, never read from the file itself.
type Band int

const (
	Delta Band = iota
	Theta
	Alpha
	Beta
	LowGamma
	HighGamma
)

var bandLabels = map[Band]string{
	Delta:     "Delta",
	Theta:     "Theta",
	Alpha:     "Alpha",
	Beta:      "Beta",
	LowGamma:  "Low Gamma",
	HighGamma: "High Gamma",
}

// AllBands lists every band in file order (Band0..Band5).
var AllBands = []Band{Delta, Theta, Alpha, Beta, LowGamma, HighGamma}

// ChartBands are the bands consumed by the share and net-change charts, in plotting order.
var ChartBands = []Band{HighGamma, LowGamma, Beta}

// String returns the display label used by the charts
func (b Band) String() string {
	if label, ok := bandLabels[b]; ok {
		return label
	}
	return fmt.Sprintf("Band(%d)", int(b))
}

// Valid reports whether b is one of the six known bands
func (b Band) Valid() bool {
	_, ok := bandLabels[b]
	return ok
}

// ParseBand accepts a display label ("High Gamma"), a short name ("hg", "lg")
// or the identifier form ("high_gamma").
func ParseBand(s string) (Band, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", " ", "_", " ").Replace(key)
	switch key {
	case "delta":
		return Delta, nil
	case "theta":
		return Theta, nil
	case "alpha":
		return Alpha, nil
	case "beta":
		return Beta, nil
	case "low gamma", "lg", "gamma":
		return LowGamma, nil
	case "high gamma", "hg":
		return HighGamma, nil
	}
	return 0, fmt.Errorf("unknown band %q", s)
}

// MarshalText lets bands be used as JSON object keys
func (b Band) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("invalid band %d", int(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText parses a band label
func (b *Band) UnmarshalText(text []byte) error {
	parsed, err := ParseBand(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Record is one electrode row of a band results file.
// Missing numeric cells are NaN; NaN never passes a comparison.
type Record struct {
	Network string  `json:"network"`
	Band    Band    `json:"band"`
	PSC     float64 `json:"psc"`
	PValue  float64 `json:"p_value"`
}

// Table is an ordered collection of records sharing one schema.
// A nil Table is a valid empty table.
type Table []Record

// Len returns the number of records
func (t Table) Len() int {
	return len(t)
}

// IsEmpty reports whether the table has no records
func (t Table) IsEmpty() bool {
	return len(t) == 0
}

// WithBand returns a copy of the table with every record tagged with band
func (t Table) WithBand(band Band) Table {
	out := make(Table, len(t))
	for i, rec := range t {
		rec.Band = band
		out[i] = rec
	}
	return out
}

// Concat joins tables in order into a new table
func Concat(tables ...Table) Table {
	n := 0
	for _, t := range tables {
		n += len(t)
	}
	out := make(Table, 0, n)
	for _, t := range tables {
		out = append(out, t...)
	}
	return out
}

// NetworkType is the derived membership label of a record
type NetworkType int

const (
	Distinguished NetworkType = iota
	Other
	// Unclassified rows are neither the distinguished network nor a named other network.
	Unclassified
)

// String returns the label the charts expect
func (nt NetworkType) String() string {
	switch nt {
	case Distinguished:
		return "FPN"
	case Other:
		return "non-FPN"
	default:
		return "unclassified"
	}
}

// MarshalText lets network types be used as JSON object keys
func (nt NetworkType) MarshalText() ([]byte, error) {
	return []byte(nt.String()), nil
}

// NetworkTypes lists the two chartable network types in plotting order
var NetworkTypes = []NetworkType{Distinguished, Other}
