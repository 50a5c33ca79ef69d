package tradition

import (
	"regexp"
	"strings"

	"github.com/jchesterman/apothecary/internal/model"
)

var (
	channelVocab = []string{
		"Liver", "Heart", "Spleen", "Lung", "Kidney",
		"Stomach", "Large Intestine", "Small Intestine",
		"Bladder", "Gallbladder", "Pericardium", "Triple Burner",
	}
	tasteVocab = []string{
		"Pungent", "Sweet", "Sour", "Bitter", "Salty", "Bland", "Astringent",
	}
	temperatureVocab = []string{"Hot", "Warm", "Neutral", "Cool", "Cold"}
)

const channelAlt = `(?:liver|heart|spleen|lungs?|kidneys?|stomach|large\s+intestine|small\s+intestine|bladder|gallbladder|pericardium|triple\s+burner)`

// tcmRule is one entry of the TCM pattern table.
type tcmRule struct {
	re     *regexp.Regexp
	field  string
	policy accumulation
}

var tcmRules = []tcmRule{
	{regexp.MustCompile(`(?i)\b(?:channels?|meridians?)\s*:\s*([^\n.]+)`), "channels", appendUnique},
	{regexp.MustCompile(`(?i)\benters?\s+the\s+(` + channelAlt + `(?:(?:\s*,\s*|\s+and\s+)` + channelAlt + `)*)\s*(?:channels?|meridians?)?`), "channels", appendUnique},
	{regexp.MustCompile(`(?i)\btemperature\s*:\s*([^\n.]+)`), "temperature", firstWins},
	{regexp.MustCompile(`(?i)\btemperature\s+is\s+(hot|warm|neutral|cool|cold)\b`), "temperature-term", firstWins},
	{regexp.MustCompile(`(?i)\b(warming|cooling)\s+(?:herb|nature|property)`), "temperature-nature", firstWins},
	{regexp.MustCompile(`(?i)\btastes?\s*:\s*([^\n.]+)`), "tastes", appendUnique},
	{regexp.MustCompile(`(?i)\btaste\s+is\s+([^\n.]+)`), "tastes", appendUnique},
	{regexp.MustCompile(`(?i)\b(tonif(?:y|ies))\s+(qi|blood|yin|yang|kidney|liver|heart|spleen|lung)\b`), "action", appendUnique},
	{regexp.MustCompile(`(?i)\b(clears?)\s+(heat|damp(?:ness)?|phlegm|wind|toxins)\b`), "action", appendUnique},
	{regexp.MustCompile(`(?i)\b(moves?)\s+(qi|blood)\b`), "action", appendUnique},
	{regexp.MustCompile(`(?i)\b(transforms?)\s+(phlegm)\b`), "action", appendUnique},
	{regexp.MustCompile(`(?i)\b(nourishes?)\s+(blood|yin)\b`), "action", appendUnique},
	{regexp.MustCompile(`(?i)\b(calms?)\s+(?:the\s+)?(shen|spirit|liver)\b`), "action", appendUnique},
	{regexp.MustCompile(`(?i)\b(drains?)\s+(damp(?:ness)?|fire)\b`), "action", appendUnique},
}

// actionVerbs maps a matched verb to its canonical third-person form.
var actionVerbs = map[string]string{
	"tonify": "Tonifies", "tonifies": "Tonifies",
	"clear": "Clears", "clears": "Clears",
	"move": "Moves", "moves": "Moves",
	"transform": "Transforms", "transforms": "Transforms",
	"nourish": "Nourishes", "nourishes": "Nourishes",
	"calm": "Calms", "calms": "Calms",
	"drain": "Drains", "drains": "Drains",
}

// TCMParser extracts Traditional Chinese Medicine properties from a text
// window.
type TCMParser struct {
	rules []tcmRule
}

func NewTCMParser() *TCMParser {
	return &TCMParser{rules: tcmRules}
}

// Extract runs the pattern table over the window. No matching pattern
// yields an empty record, not an error.
func (p *TCMParser) Extract(window string) *model.TCMProperties {
	props := &model.TCMProperties{}

	for _, r := range p.rules {
		for _, m := range r.re.FindAllStringSubmatch(window, -1) {
			applyTCMRule(props, r, m)
			if r.policy == firstWins {
				break
			}
		}
	}
	return props
}

func applyTCMRule(props *model.TCMProperties, r tcmRule, m []string) {
	switch r.field {
	case "channels":
		for _, v := range splitValues(m[1]) {
			v = strings.TrimSuffix(strings.TrimSuffix(title(v), " Channel"), " Meridian")
			if term := canonicalTerm(channelVocab, singularChannel(v)); term != "" {
				props.Channels = appendIfNew(props.Channels, term)
			}
		}
	case "temperature":
		if props.Temperature == "" {
			for _, v := range splitValues(m[1]) {
				if term := canonicalTerm(temperatureVocab, v); term != "" {
					props.Temperature = term
					break
				}
			}
		}
	case "temperature-term":
		if props.Temperature == "" {
			props.Temperature = title(m[1])
		}
	case "temperature-nature":
		if props.Temperature == "" {
			if strings.EqualFold(m[1], "warming") {
				props.Temperature = "Warm"
			} else {
				props.Temperature = "Cool"
			}
		}
	case "tastes":
		for _, v := range splitValues(m[1]) {
			if term := canonicalTerm(tasteVocab, v); term != "" {
				props.Tastes = appendIfNew(props.Tastes, term)
			}
		}
	case "action":
		verb := actionVerbs[strings.ToLower(m[1])]
		props.Actions = appendIfNew(props.Actions, verb+" "+title(m[2]))
	}
}

// singularChannel drops a trailing "s" from lungs/kidneys so the value
// matches the vocabulary.
func singularChannel(v string) string {
	switch strings.ToLower(v) {
	case "lungs":
		return "Lung"
	case "kidneys":
		return "Kidney"
	}
	return v
}
