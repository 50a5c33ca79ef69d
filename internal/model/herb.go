package model

// Tradition identifies the medicinal-knowledge system an herb belongs to.
type Tradition string

const (
	TraditionWestern   Tradition = "western"
	TraditionAyurvedic Tradition = "ayurvedic"
	TraditionTCM       Tradition = "tcm"
	// TraditionMixed marks herbs recognized by two or more traditions.
	TraditionMixed Tradition = "mixed"
)

// HerbEntry is one row of a tradition dictionary. Static, read-only.
type HerbEntry struct {
	Name           string    `json:"name"`
	ScientificName string    `json:"scientific_name,omitempty"`
	Aliases        []string  `json:"aliases,omitempty"`
	Tradition      Tradition `json:"tradition"`
	SanskritName   string    `json:"sanskrit_name,omitempty"`
	PinyinName     string    `json:"pinyin_name,omitempty"`
	ChineseName    string    `json:"chinese_name,omitempty"`
}

// Dosha effect values used in AyurvedicProperties.Doshas.
const (
	DoshaPacifies   = "pacifies"
	DoshaAggravates = "aggravates"
)

// AyurvedicProperties holds the Ayurvedic block of an extracted herb.
type AyurvedicProperties struct {
	SanskritName string            `json:"sanskrit_name,omitempty"`
	Doshas       map[string]string `json:"doshas,omitempty"`
	Rasa         []string          `json:"rasa,omitempty"`
	Virya        string            `json:"virya,omitempty"`
	Vipaka       string            `json:"vipaka,omitempty"`
}

// Empty reports whether no property was extracted.
func (p *AyurvedicProperties) Empty() bool {
	return p == nil || (p.SanskritName == "" && len(p.Doshas) == 0 &&
		len(p.Rasa) == 0 && p.Virya == "" && p.Vipaka == "")
}

// TCMProperties holds the Traditional Chinese Medicine block of an
// extracted herb.
type TCMProperties struct {
	PinyinName  string   `json:"pinyin_name,omitempty"`
	ChineseName string   `json:"chinese_name,omitempty"`
	Channels    []string `json:"channels,omitempty"`
	Temperature string   `json:"temperature,omitempty"`
	Tastes      []string `json:"tastes,omitempty"`
	Actions     []string `json:"actions,omitempty"`
}

// Empty reports whether no property was extracted.
func (p *TCMProperties) Empty() bool {
	return p == nil || (p.PinyinName == "" && p.ChineseName == "" &&
		len(p.Channels) == 0 && p.Temperature == "" &&
		len(p.Tastes) == 0 && len(p.Actions) == 0)
}

// ExtractedHerb is one herb found in a text source, with whatever
// tradition-specific properties the surrounding text yielded. Created once
// per canonical herb during an extraction pass; the caller owns it after
// the pass returns.
type ExtractedHerb struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	ScientificName     string    `json:"scientific_name,omitempty"`
	CommonNames        []string  `json:"common_names,omitempty"`
	TraditionalUses    []string  `json:"traditional_uses,omitempty"`
	PreparationMethods []string  `json:"preparation_methods,omitempty"`
	Contraindications  []string  `json:"contraindications,omitempty"`
	Interactions       []string  `json:"interactions,omitempty"`
	SourceDocument     string    `json:"source_document"`
	Tradition          Tradition `json:"tradition"`

	Ayurvedic *AyurvedicProperties `json:"ayurvedic,omitempty"`
	TCM       *TCMProperties       `json:"tcm,omitempty"`
}
