package export

import (
	"sort"
	"strings"
	"text/template"

	"github.com/jchesterman/apothecary/internal/model"
)

// codeTemplate renders model.Substance literals that can be pasted into the
// catalog's default data.
var codeTemplate = template.Must(template.New("catalog").Parse(
	`// Generated substance definitions for the apothecary catalog.
// Review effects and descriptions before adding them to catalog data.

{{range .}}{Name: {{printf "%q" .Name}},
	Category:    model.CategoryHerb,
	Aliases:     []string{ {{- range $i, $a := .Aliases}}{{if $i}}, {{end}}{{printf "%q" $a}}{{end -}} },
	Effects:     []string{ {{- range $i, $e := .Effects}}{{if $i}}, {{end}}{{printf "%q" $e}}{{end -}} },
	Description: {{printf "%q" .Description}},
},
{{end}}`))

// GenerateCode renders Go substance literals for the extracted herbs,
// sorted by name.
func GenerateCode(herbs []model.ExtractedHerb) (string, error) {
	type entry struct {
		Name        string
		Aliases     []string
		Effects     []string
		Description string
	}

	sorted := append([]model.ExtractedHerb(nil), herbs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	entries := make([]entry, 0, len(sorted))
	for _, h := range sorted {
		e := entry{Name: h.Name}

		e.Aliases = append(e.Aliases, strings.ToLower(h.Name))
		if h.ScientificName != "" {
			e.Aliases = appendLower(e.Aliases, h.ScientificName)
		}
		for _, n := range h.CommonNames {
			e.Aliases = appendLower(e.Aliases, n)
		}
		if len(e.Aliases) > 5 {
			e.Aliases = e.Aliases[:5]
		}

		for _, use := range h.TraditionalUses {
			if first := strings.TrimSpace(strings.SplitN(use, ",", 2)[0]); len(first) > 0 && len(first) < 50 {
				e.Effects = append(e.Effects, first)
			}
			if len(e.Effects) == 3 {
				break
			}
		}
		if len(e.Effects) == 0 {
			e.Effects = []string{"traditional medicine"}
		}

		e.Description = "Herb from the " + string(h.Tradition) + " tradition"
		if h.ScientificName != "" {
			e.Description += " (" + h.ScientificName + ")"
		}

		entries = append(entries, e)
	}

	var b strings.Builder
	if err := codeTemplate.Execute(&b, entries); err != nil {
		return "", err
	}
	return b.String(), nil
}

func appendLower(list []string, v string) []string {
	v = strings.ToLower(v)
	for _, have := range list {
		if have == v {
			return list
		}
	}
	return append(list, v)
}
