// Package extract scans plain text for known herbs and builds extracted
// herb records with tradition-specific properties.
package extract

import (
	"math/rand"
	"regexp"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/jchesterman/apothecary/internal/herbdict"
	"github.com/jchesterman/apothecary/internal/model"
	"github.com/jchesterman/apothecary/internal/tradition"
)

// Options configures an Extractor.
type Options struct {
	// Window is the context radius in bytes around a herb mention.
	// Zero means DefaultWindow.
	Window int
}

// matcher scans for one dictionary name. decl is the position of the name
// in dictionary declaration order and breaks ties between equal-length
// matches.
type matcher struct {
	re    *regexp.Regexp
	entry int
	decl  int
}

// span is one accepted occurrence of a dictionary name in the input text.
type span struct {
	start, end int
	entry      int
	decl       int
}

// Extractor finds herbs from a merged dictionary in free text. It is
// read-only after construction and safe for concurrent use except for ID
// generation, which follows single-threaded CLI usage.
type Extractor struct {
	dict     *herbdict.Merged
	matchers []matcher
	ayur     *tradition.AyurvedicParser
	tcm      *tradition.TCMParser
	window   int
	entropy  *rand.Rand
}

// New builds an extractor over the merged dictionary, compiling one
// whole-word pattern per canonical name and alias.
func New(dict *herbdict.Merged, opts Options) *Extractor {
	e := &Extractor{
		dict:    dict,
		ayur:    tradition.NewAyurvedicParser(),
		tcm:     tradition.NewTCMParser(),
		window:  opts.Window,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if e.window <= 0 {
		e.window = DefaultWindow
	}

	decl := 0
	for i, entry := range dict.Entries() {
		for _, name := range append([]string{entry.Name}, entry.Aliases...) {
			if name == "" {
				continue
			}
			e.matchers = append(e.matchers, matcher{
				re:    regexp.MustCompile(wordPattern(name)),
				entry: i,
				decl:  decl,
			})
			decl++
		}
	}
	return e
}

func (e *Extractor) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), e.entropy).String()
}

// wordPattern builds a case-insensitive whole-word pattern for name. The
// \b anchors are applied only next to ASCII word characters; Chinese names
// have none and match as plain substrings.
func wordPattern(name string) string {
	p := regexp.QuoteMeta(name)
	if isWordByte(name[0]) {
		p = `\b` + p
	}
	if isWordByte(name[len(name)-1]) {
		p += `\b`
	}
	return `(?i)` + p
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= 'a' && b <= 'z')
}

// Extract returns one record per unique herb found in text, in order of
// first appearance. Text without any known herb yields an empty result.
func (e *Extractor) Extract(text, sourceDoc string) []model.ExtractedHerb {
	spans := e.scan(text)

	byEntry := make(map[int]*model.ExtractedHerb)
	var order []int

	for _, sp := range spans {
		entry := e.dict.Entries()[sp.entry]
		window := contextWindow(text, sp.start, sp.end, e.window)

		herb, ok := byEntry[sp.entry]
		if !ok {
			herb = &model.ExtractedHerb{
				ID:             e.newID(),
				Name:           entry.Name,
				ScientificName: entry.ScientificName,
				CommonNames:    append([]string(nil), entry.Aliases...),
				SourceDocument: sourceDoc,
				Tradition:      entry.Tradition,
			}
			byEntry[sp.entry] = herb
			order = append(order, sp.entry)
		}
		e.widen(herb, entry, window)
	}

	herbs := make([]model.ExtractedHerb, 0, len(order))
	for _, idx := range order {
		herbs = append(herbs, *byEntry[idx])
	}
	return herbs
}

// scan finds all dictionary-name occurrences and resolves overlaps: the
// longest matching alias wins, ties broken by declaration order.
func (e *Extractor) scan(text string) []span {
	var candidates []span
	for _, m := range e.matchers {
		for _, loc := range m.re.FindAllStringIndex(text, -1) {
			candidates = append(candidates, span{start: loc[0], end: loc[1], entry: m.entry, decl: m.decl})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.start != b.start {
			return a.start < b.start
		}
		if a.end != b.end {
			return a.end > b.end // longer first
		}
		return a.decl < b.decl
	})

	var accepted []span
	for _, c := range candidates {
		overlaps := false
		for _, a := range accepted {
			if c.start < a.end && a.start < c.end {
				overlaps = true
				break
			}
		}
		if !overlaps {
			accepted = append(accepted, c)
		}
	}
	return accepted
}

// widen folds one occurrence's window into the herb record: list fields
// accumulate ordered-unique values, non-empty scalar fields are never
// overwritten.
func (e *Extractor) widen(herb *model.ExtractedHerb, entry model.HerbEntry, window string) {
	herb.TraditionalUses = harvest(herb.TraditionalUses, usePatterns, window)
	herb.Interactions = harvest(herb.Interactions, interactionPatterns, window)
	herb.Contraindications = harvest(herb.Contraindications, contraindicationPatterns, window)
	herb.PreparationMethods = harvest(herb.PreparationMethods, preparationPatterns, window)

	if entry.Tradition == model.TraditionAyurvedic || entry.Tradition == model.TraditionMixed {
		props := e.ayur.Extract(window)
		props.SanskritName = entry.SanskritName
		if !props.Empty() {
			if herb.Ayurvedic == nil {
				herb.Ayurvedic = &model.AyurvedicProperties{}
			}
			mergeAyurvedic(herb.Ayurvedic, props)
		}
	}

	if entry.Tradition == model.TraditionTCM || entry.Tradition == model.TraditionMixed {
		props := e.tcm.Extract(window)
		props.PinyinName = entry.PinyinName
		props.ChineseName = entry.ChineseName
		if !props.Empty() {
			if herb.TCM == nil {
				herb.TCM = &model.TCMProperties{}
			}
			mergeTCM(herb.TCM, props)
		}
	}
}
