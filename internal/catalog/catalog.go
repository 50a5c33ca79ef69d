// Package catalog holds the substance catalog and interaction table and
// answers resolution and pairwise-interaction queries against them.
package catalog

import (
	"errors"
	"fmt"

	"github.com/jchesterman/apothecary/internal/model"
	"github.com/jchesterman/apothecary/internal/names"
)

// Load-time data-integrity errors. These indicate defective catalog data,
// not recoverable runtime conditions.
var (
	ErrDuplicateAlias     = errors.New("alias maps to more than one substance")
	ErrDuplicatePair      = errors.New("duplicate interaction pair")
	ErrUnknownSubstance   = errors.New("interaction references unknown substance")
	ErrInvalidSeverity    = errors.New("invalid interaction severity")
	ErrSelfInteraction    = errors.New("interaction pairs a substance with itself")
	ErrEmptySubstanceName = errors.New("substance has an empty name")
)

// pairKey is the unordered lookup key for two canonical substance names.
type pairKey [2]string

func makePairKey(a, b string) pairKey {
	na, nb := names.Normalize(a), names.Normalize(b)
	if na > nb {
		na, nb = nb, na
	}
	return pairKey{na, nb}
}

// Catalog is the read-only substance catalog plus interaction table.
// Construct once at startup with New and share freely; no method mutates it.
type Catalog struct {
	substances []model.Substance
	byAlias    map[string]int
	pairs      map[pairKey]model.Interaction
}

// New builds a catalog and verifies its integrity: every alias resolves to
// exactly one substance, every interaction references cataloged substances,
// and at most one record exists per unordered pair. Conflicts are rejected
// here rather than silently resolved.
func New(substances []model.Substance, interactions []model.Interaction) (*Catalog, error) {
	c := &Catalog{
		substances: substances,
		byAlias:    make(map[string]int),
		pairs:      make(map[pairKey]model.Interaction),
	}

	for i, s := range substances {
		if names.Normalize(s.Name) == "" {
			return nil, fmt.Errorf("substance %d: %w", i, ErrEmptySubstanceName)
		}
		for _, alias := range append([]string{s.Name}, s.Aliases...) {
			key := names.Normalize(alias)
			if key == "" {
				continue
			}
			if prev, ok := c.byAlias[key]; ok && prev != i {
				return nil, fmt.Errorf("%q (%s vs %s): %w",
					alias, substances[prev].Name, s.Name, ErrDuplicateAlias)
			}
			c.byAlias[key] = i
		}
	}

	for _, in := range interactions {
		if !in.Severity.Valid() {
			return nil, fmt.Errorf("%s + %s: %q: %w",
				in.Substance1, in.Substance2, in.Severity, ErrInvalidSeverity)
		}
		a, ok1 := c.Resolve(in.Substance1)
		b, ok2 := c.Resolve(in.Substance2)
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("%s + %s: %w", in.Substance1, in.Substance2, ErrUnknownSubstance)
		}
		if names.Normalize(a.Name) == names.Normalize(b.Name) {
			return nil, fmt.Errorf("%s: %w", a.Name, ErrSelfInteraction)
		}
		key := makePairKey(a.Name, b.Name)
		if _, ok := c.pairs[key]; ok {
			return nil, fmt.Errorf("%s + %s: %w", a.Name, b.Name, ErrDuplicatePair)
		}
		c.pairs[key] = in
	}

	return c, nil
}

// Resolve maps a free-form user string to its catalog substance. Matching is
// case- and diacritic-insensitive over canonical names and aliases; no fuzzy
// or partial matching. The boolean is false when nothing matches.
func (c *Catalog) Resolve(raw string) (model.Substance, bool) {
	i, ok := c.byAlias[names.Normalize(raw)]
	if !ok {
		return model.Substance{}, false
	}
	return c.substances[i], true
}

// Substances returns the catalog entries in declaration order.
func (c *Catalog) Substances() []model.Substance {
	return c.substances
}

// FindInteractions enumerates all unordered pairs of the input in stable
// order (outer index i before inner index j) and returns the known
// interaction record for each pair that has one. Duplicate substances in
// the input contribute a pair only once. Empty and singleton inputs yield
// an empty result.
func (c *Catalog) FindInteractions(substances []model.Substance) []model.Interaction {
	var found []model.Interaction
	seen := make(map[pairKey]bool)

	for i := 0; i < len(substances); i++ {
		for j := i + 1; j < len(substances); j++ {
			key := makePairKey(substances[i].Name, substances[j].Name)
			if key[0] == key[1] || seen[key] {
				continue
			}
			seen[key] = true
			if in, ok := c.pairs[key]; ok {
				found = append(found, in)
			}
		}
	}
	return found
}
