package extract

import "github.com/jchesterman/apothecary/internal/model"

// MergeHerb folds src into dst: records for the same canonical herb from
// different documents (or later occurrences in the same document) combine
// by unioning list fields in first-seen order and keeping existing
// non-empty scalar fields. Distinct source labels are joined with "; ".
func MergeHerb(dst *model.ExtractedHerb, src model.ExtractedHerb) {
	if dst.ScientificName == "" {
		dst.ScientificName = src.ScientificName
	}
	dst.CommonNames = mergeLists(dst.CommonNames, src.CommonNames)
	dst.TraditionalUses = mergeLists(dst.TraditionalUses, src.TraditionalUses)
	dst.PreparationMethods = mergeLists(dst.PreparationMethods, src.PreparationMethods)
	dst.Contraindications = mergeLists(dst.Contraindications, src.Contraindications)
	dst.Interactions = mergeLists(dst.Interactions, src.Interactions)

	if src.SourceDocument != "" && src.SourceDocument != dst.SourceDocument {
		if dst.SourceDocument == "" {
			dst.SourceDocument = src.SourceDocument
		} else {
			dst.SourceDocument += "; " + src.SourceDocument
		}
	}

	if src.Ayurvedic != nil {
		if dst.Ayurvedic == nil {
			dst.Ayurvedic = &model.AyurvedicProperties{}
		}
		mergeAyurvedic(dst.Ayurvedic, src.Ayurvedic)
	}
	if src.TCM != nil {
		if dst.TCM == nil {
			dst.TCM = &model.TCMProperties{}
		}
		mergeTCM(dst.TCM, src.TCM)
	}
}

func mergeAyurvedic(dst, src *model.AyurvedicProperties) {
	if dst.SanskritName == "" {
		dst.SanskritName = src.SanskritName
	}
	for dosha, effect := range src.Doshas {
		if dst.Doshas == nil {
			dst.Doshas = make(map[string]string)
		}
		if _, ok := dst.Doshas[dosha]; !ok {
			dst.Doshas[dosha] = effect
		}
	}
	dst.Rasa = mergeLists(dst.Rasa, src.Rasa)
	if dst.Virya == "" {
		dst.Virya = src.Virya
	}
	if dst.Vipaka == "" {
		dst.Vipaka = src.Vipaka
	}
}

func mergeTCM(dst, src *model.TCMProperties) {
	if dst.PinyinName == "" {
		dst.PinyinName = src.PinyinName
	}
	if dst.ChineseName == "" {
		dst.ChineseName = src.ChineseName
	}
	dst.Channels = mergeLists(dst.Channels, src.Channels)
	if dst.Temperature == "" {
		dst.Temperature = src.Temperature
	}
	dst.Tastes = mergeLists(dst.Tastes, src.Tastes)
	dst.Actions = mergeLists(dst.Actions, src.Actions)
}

func mergeLists(dst, src []string) []string {
	for _, v := range src {
		dst = appendUnique(dst, v)
	}
	return dst
}
