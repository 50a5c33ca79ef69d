package tradition

import (
	"regexp"
	"strings"

	"github.com/jchesterman/apothecary/internal/model"
)

// rasaVocab are the recognized tastes, Sanskrit and English forms.
var rasaVocab = []string{
	"Madhura", "Sweet", "Amla", "Sour", "Lavana", "Salty",
	"Katu", "Pungent", "Tikta", "Bitter", "Kashaya", "Astringent",
}

const doshaAlt = `(?:vata|pitta|kapha)`

// ayurRule is one entry of the Ayurvedic pattern table.
type ayurRule struct {
	re     *regexp.Regexp
	field  string
	policy accumulation
}

// ayurRules is evaluated in order. Labeled sections tolerate an optional
// plural "s"; assertion sentences capture comma/"and"-separated dosha lists.
var ayurRules = []ayurRule{
	{regexp.MustCompile(`(?i)\b(?:balances?|pacifies?|calms?)\s+(` + doshaAlt + `(?:(?:\s*,\s*|\s+and\s+)` + doshaAlt + `)*)`), "dosha-pacifies", appendUnique},
	{regexp.MustCompile(`(?i)\b(` + doshaAlt + `)[- ](?:balancing|pacifying)\b`), "dosha-pacifies", appendUnique},
	{regexp.MustCompile(`(?i)\b(?:aggravates?|increases?)\s+(` + doshaAlt + `(?:(?:\s*,\s*|\s+and\s+)` + doshaAlt + `)*)`), "dosha-aggravates", appendUnique},
	{regexp.MustCompile(`(?i)\b(` + doshaAlt + `)[- ](?:aggravating|increasing)\b`), "dosha-aggravates", appendUnique},
	{regexp.MustCompile(`(?i)\brasas?\s*:\s*([^\n.]+)`), "rasa", appendUnique},
	{regexp.MustCompile(`(?i)\brasa\s+is\s+([^\n.]+)`), "rasa", appendUnique},
	{regexp.MustCompile(`(?i)\bvirya\s*:\s*([^\n.]+)`), "virya", firstWins},
	{regexp.MustCompile(`(?i)\b(?:ushna|heating|hot\s+potency)\b`), "virya-heating", firstWins},
	{regexp.MustCompile(`(?i)\b(?:shita|sheeta|cooling|cool\s+potency)\b`), "virya-cooling", firstWins},
	{regexp.MustCompile(`(?i)\bvipaka\s*:\s*(madhura|amla|katu)\b`), "vipaka-term", firstWins},
	{regexp.MustCompile(`(?i)\bvipaka\s*:\s*([^\n.]+)`), "vipaka", firstWins},
}

var vipakaTerms = map[string]string{
	"madhura": "Madhura (sweet)",
	"amla":    "Amla (sour)",
	"katu":    "Katu (pungent)",
}

// AyurvedicParser extracts Ayurvedic properties from a text window.
type AyurvedicParser struct {
	rules []ayurRule
}

func NewAyurvedicParser() *AyurvedicParser {
	return &AyurvedicParser{rules: ayurRules}
}

// Extract runs the pattern table over the window. A window with no matching
// pattern yields an empty record, which is a valid outcome.
func (p *AyurvedicParser) Extract(window string) *model.AyurvedicProperties {
	props := &model.AyurvedicProperties{}

	for _, r := range p.rules {
		for _, m := range r.re.FindAllStringSubmatch(window, -1) {
			applyAyurRule(props, r, m)
			if r.policy == firstWins {
				break
			}
		}
	}
	return props
}

func applyAyurRule(props *model.AyurvedicProperties, r ayurRule, m []string) {
	switch r.field {
	case "dosha-pacifies", "dosha-aggravates":
		effect := model.DoshaPacifies
		if r.field == "dosha-aggravates" {
			effect = model.DoshaAggravates
		}
		for _, d := range splitValues(m[1]) {
			if props.Doshas == nil {
				props.Doshas = make(map[string]string)
			}
			props.Doshas[strings.ToLower(d)] = effect
		}
	case "rasa":
		for _, v := range splitValues(m[1]) {
			if term := canonicalTerm(rasaVocab, v); term != "" {
				props.Rasa = appendIfNew(props.Rasa, strings.ToLower(term))
			}
		}
	case "virya":
		if props.Virya == "" {
			props.Virya = strings.TrimSpace(m[1])
		}
	case "virya-heating":
		if props.Virya == "" {
			props.Virya = "Ushna (heating)"
		}
	case "virya-cooling":
		if props.Virya == "" {
			props.Virya = "Shita (cooling)"
		}
	case "vipaka-term":
		if props.Vipaka == "" {
			props.Vipaka = vipakaTerms[strings.ToLower(m[1])]
		}
	case "vipaka":
		if props.Vipaka == "" {
			props.Vipaka = strings.TrimSpace(m[1])
		}
	}
}
