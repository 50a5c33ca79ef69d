// Package model defines the core apothecary data types.
package model

// Category classifies a substance in the catalog.
type Category string

const (
	CategoryHerb         Category = "herb"
	CategoryOTC          Category = "otc"
	CategoryPrescription Category = "prescription"
)

// Severity rates an interaction, ordered minor < moderate < major < severe.
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeverityMajor    Severity = "major"
	SeveritySevere   Severity = "severe"
)

var severityRank = map[Severity]int{
	SeverityMinor:    0,
	SeverityModerate: 1,
	SeverityMajor:    2,
	SeveritySevere:   3,
}

// Rank returns the ordinal position of the severity. Unknown severities rank
// below minor.
func (s Severity) Rank() int {
	if r, ok := severityRank[s]; ok {
		return r
	}
	return -1
}

// Valid reports whether s is one of the four defined levels.
func (s Severity) Valid() bool {
	_, ok := severityRank[s]
	return ok
}

// Substance is one catalog entry: an herb, OTC drug, or prescription drug.
// Loaded once at startup and read-only thereafter.
type Substance struct {
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Aliases     []string `json:"aliases,omitempty"`
	Effects     []string `json:"effects,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Interaction is a known pairwise interaction between two substances. The
// pair is unordered: lookup succeeds regardless of argument order.
type Interaction struct {
	Substance1     string   `json:"substance1"`
	Substance2     string   `json:"substance2"`
	Severity       Severity `json:"severity"`
	Effects        []string `json:"effects,omitempty"`
	Detail         string   `json:"detail,omitempty"`
	Recommendation string   `json:"recommendation,omitempty"`
}
