// Package typemap holds the one-to-one correspondence between raw (RawGeo)
// and finished (Geo) layer-type codes.
package typemap

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInconsistent indicates a table that is not one-to-one.
var ErrInconsistent = errors.New("inconsistent type map")

// Pair maps one raw layer-type code to its finished counterpart.
type Pair struct {
	Raw      string `yaml:"raw" json:"raw"`
	Finished string `yaml:"finished" json:"finished"`
}

// DefaultPairs is the built-in RawGeo to Geo table.
var DefaultPairs = []Pair{
	{Raw: "LRG", Finished: "LG"},
	{Raw: "MRG", Finished: "MG"},
	{Raw: "SRG", Finished: "SG"},
	{Raw: "PRG", Finished: "PG"},
	{Raw: "NRG", Finished: "NG"},
}

// Map is a validated bidirectional lookup.
type Map struct {
	toFinished map[string]string
	toRaw      map[string]string
}

// New builds a Map, rejecting empty codes, repeated codes on either side and
// codes that appear on both sides.
func New(pairs []Pair) (*Map, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w: no pairs", ErrInconsistent)
	}

	m := &Map{
		toFinished: make(map[string]string, len(pairs)),
		toRaw:      make(map[string]string, len(pairs)),
	}
	for _, p := range pairs {
		if p.Raw == "" || p.Finished == "" {
			return nil, fmt.Errorf("%w: empty code in pair %q -> %q", ErrInconsistent, p.Raw, p.Finished)
		}
		if prev, ok := m.toFinished[p.Raw]; ok {
			return nil, fmt.Errorf("%w: raw code %s mapped to both %s and %s", ErrInconsistent, p.Raw, prev, p.Finished)
		}
		if prev, ok := m.toRaw[p.Finished]; ok {
			return nil, fmt.Errorf("%w: finished code %s mapped from both %s and %s", ErrInconsistent, p.Finished, prev, p.Raw)
		}
		m.toFinished[p.Raw] = p.Finished
		m.toRaw[p.Finished] = p.Raw
	}

	for raw := range m.toFinished {
		if _, ok := m.toRaw[raw]; ok {
			return nil, fmt.Errorf("%w: code %s used as both raw and finished", ErrInconsistent, raw)
		}
	}

	return m, nil
}

// Default returns the built-in table.
func Default() *Map {
	m, err := New(DefaultPairs)
	if err != nil {
		panic(err)
	}
	return m
}

// Finished returns the finished code for a raw code.
func (m *Map) Finished(raw string) (string, bool) {
	g, ok := m.toFinished[raw]
	return g, ok
}

// Raw returns the raw code for a finished code.
func (m *Map) Raw(finished string) (string, bool) {
	r, ok := m.toRaw[finished]
	return r, ok
}

// RawSet returns the set of raw codes.
func (m *Map) RawSet() map[string]bool {
	set := make(map[string]bool, len(m.toFinished))
	for r := range m.toFinished {
		set[r] = true
	}
	return set
}

// FinishedSet returns the set of finished codes.
func (m *Map) FinishedSet() map[string]bool {
	set := make(map[string]bool, len(m.toRaw))
	for g := range m.toRaw {
		set[g] = true
	}
	return set
}

// RawCodes returns the raw codes in sorted order.
func (m *Map) RawCodes() []string {
	codes := make([]string, 0, len(m.toFinished))
	for r := range m.toFinished {
		codes = append(codes, r)
	}
	sort.Strings(codes)
	return codes
}

// Pairs returns the table ordered by raw code.
func (m *Map) Pairs() []Pair {
	pairs := make([]Pair, 0, len(m.toFinished))
	for _, r := range m.RawCodes() {
		pairs = append(pairs, Pair{Raw: r, Finished: m.toFinished[r]})
	}
	return pairs
}
