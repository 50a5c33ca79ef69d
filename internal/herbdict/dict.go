// Package herbdict holds the per-tradition herb dictionaries and the merged
// cross-referenced view the extractor scans against.
package herbdict

import (
	"github.com/jchesterman/apothecary/internal/model"
	"github.com/jchesterman/apothecary/internal/names"
)

// Merged is the read-only union of the tradition dictionaries. Entries keep
// their declaration order; herbs pre-declared under more than one tradition
// are folded into a single entry tagged mixed.
type Merged struct {
	entries []model.HerbEntry
	byName  map[string]int
}

// Merge builds the merged view from the built-in western, Ayurvedic, and
// TCM dictionaries. The result is independent of any previous call.
func Merge() *Merged {
	return MergeDictionaries(westernHerbs, ayurvedicHerbs, tcmHerbs)
}

// MergeDictionaries merges the given dictionaries in order. Two entries
// refer to the same herb when their name sets (canonical name plus aliases,
// normalized) intersect; such cross-references are pre-declared in the
// source data, never inferred from free text. An entry contributed by two
// or more traditions is tagged mixed and carries the union of the
// tradition-specific fields.
func MergeDictionaries(dicts ...[]model.HerbEntry) *Merged {
	m := &Merged{byName: make(map[string]int)}

	for _, dict := range dicts {
		for _, e := range dict {
			idx, found := m.find(e)
			if !found {
				entry := e
				entry.Aliases = append([]string(nil), e.Aliases...)
				m.entries = append(m.entries, entry)
				idx = len(m.entries) - 1
			} else {
				m.fold(idx, e)
			}
			for _, n := range entryNames(m.entries[idx]) {
				if key := names.Normalize(n); key != "" {
					if _, ok := m.byName[key]; !ok {
						m.byName[key] = idx
					}
				}
			}
		}
	}
	return m
}

// find locates an existing entry sharing any pre-declared name with e.
func (m *Merged) find(e model.HerbEntry) (int, bool) {
	for _, n := range entryNames(e) {
		if idx, ok := m.byName[names.Normalize(n)]; ok {
			return idx, true
		}
	}
	return 0, false
}

// fold merges an incoming entry into an existing one and retags it mixed.
func (m *Merged) fold(idx int, e model.HerbEntry) {
	dst := &m.entries[idx]
	if dst.Tradition != e.Tradition {
		dst.Tradition = model.TraditionMixed
	}
	have := make(map[string]bool)
	for _, n := range entryNames(*dst) {
		have[names.Normalize(n)] = true
	}
	for _, n := range entryNames(e) {
		key := names.Normalize(n)
		if key == "" || have[key] {
			continue
		}
		have[key] = true
		dst.Aliases = append(dst.Aliases, n)
	}
	if dst.ScientificName == "" {
		dst.ScientificName = e.ScientificName
	}
	if dst.SanskritName == "" {
		dst.SanskritName = e.SanskritName
	}
	if dst.PinyinName == "" {
		dst.PinyinName = e.PinyinName
	}
	if dst.ChineseName == "" {
		dst.ChineseName = e.ChineseName
	}
}

func entryNames(e model.HerbEntry) []string {
	ns := make([]string, 0, len(e.Aliases)+1)
	ns = append(ns, e.Name)
	ns = append(ns, e.Aliases...)
	return ns
}

// Entries returns the merged entries in declaration order.
func (m *Merged) Entries() []model.HerbEntry {
	return m.entries
}

// Lookup resolves a canonical name or alias to its merged entry.
func (m *Merged) Lookup(name string) (model.HerbEntry, bool) {
	idx, ok := m.byName[names.Normalize(name)]
	if !ok {
		return model.HerbEntry{}, false
	}
	return m.entries[idx], true
}

// Stats summarizes the merged dictionary by tradition.
type Stats struct {
	Total     int `json:"total"`
	Western   int `json:"western"`
	Ayurvedic int `json:"ayurvedic"`
	TCM       int `json:"tcm"`
	Mixed     int `json:"mixed"`
}

// Stats counts merged entries per tradition tag.
func (m *Merged) Stats() Stats {
	st := Stats{Total: len(m.entries)}
	for _, e := range m.entries {
		switch e.Tradition {
		case model.TraditionWestern:
			st.Western++
		case model.TraditionAyurvedic:
			st.Ayurvedic++
		case model.TraditionTCM:
			st.TCM++
		case model.TraditionMixed:
			st.Mixed++
		}
	}
	return st
}
