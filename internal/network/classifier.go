// Package network labels electrode rows as inside or outside the distinguished network.
//
// Two membership policies exist and are kept apart because they give
// different numbers: EnumeratedPolicy (exact names, used for electrode
// shares) and SubstringPolicy (label contains the name, used for net change).
package network

import (
	"strings"

	"fpnpower/domain/electrode"
)

// DefaultDistinguished is the network compared against all others
const DefaultDistinguished = "FPN"

// DefaultOthers are the named non-distinguished networks
var DefaultOthers = []string{"DMN", "CON", "motor"}

// Row is a record with its derived network type
type Row struct {
	electrode.Record
	Type electrode.NetworkType
}

// Table is a classified electrode table
type Table []Row

// Classifier derives network types without touching the source table
type Classifier interface {
	Classify(t electrode.Table) Table
	Name() string
}

// EnumeratedPolicy matches the distinguished name exactly and the other
// networks against a fixed list. Anything else is Unclassified.
type EnumeratedPolicy struct {
	Distinguished string
	Others        []string
}

// NewEnumeratedPolicy returns the policy with the default network names
func NewEnumeratedPolicy() *EnumeratedPolicy {
	others := make([]string, len(DefaultOthers))
	copy(others, DefaultOthers)
	return &EnumeratedPolicy{Distinguished: DefaultDistinguished, Others: others}
}

func (p *EnumeratedPolicy) Name() string { return "enumerated" }

// TypeOf classifies a single network label
func (p *EnumeratedPolicy) TypeOf(network string) electrode.NetworkType {
	if network == p.Distinguished {
		return electrode.Distinguished
	}
	for _, other := range p.Others {
		if network == other {
			return electrode.Other
		}
	}
	return electrode.Unclassified
}

func (p *EnumeratedPolicy) Classify(t electrode.Table) Table {
	return classify(t, p.TypeOf)
}

// SubstringPolicy treats every label containing the distinguished name as
// distinguished and everything else as Other.
type SubstringPolicy struct {
	Distinguished string
}

// NewSubstringPolicy returns the policy with the default network name
func NewSubstringPolicy() *SubstringPolicy {
	return &SubstringPolicy{Distinguished: DefaultDistinguished}
}

func (p *SubstringPolicy) Name() string { return "substring" }

// TypeOf classifies a single network label
func (p *SubstringPolicy) TypeOf(network string) electrode.NetworkType {
	if strings.Contains(network, p.Distinguished) {
		return electrode.Distinguished
	}
	return electrode.Other
}

func (p *SubstringPolicy) Classify(t electrode.Table) Table {
	return classify(t, p.TypeOf)
}

func classify(t electrode.Table, typeOf func(string) electrode.NetworkType) Table {
	out := make(Table, len(t))
	for i, rec := range t {
		out[i] = Row{Record: rec, Type: typeOf(rec.Network)}
	}
	return out
}
