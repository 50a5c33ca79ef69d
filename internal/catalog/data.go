package catalog

import "github.com/jchesterman/apothecary/internal/model"

// Default returns the built-in catalog. The data is static reference
// content; an error here means the shipped data itself is defective.
func Default() (*Catalog, error) {
	return New(defaultSubstances, defaultInteractions)
}

var defaultSubstances = []model.Substance{
	{
		Name:        "St. John's Wort",
		Category:    model.CategoryHerb,
		Aliases:     []string{"st johns wort", "hypericum", "hypericum perforatum"},
		Effects:     []string{"mood elevation", "antidepressant"},
		Description: "Popular herbal supplement used for mild to moderate depression",
	},
	{
		Name:        "Valerian Root",
		Category:    model.CategoryHerb,
		Aliases:     []string{"valerian", "valeriana officinalis"},
		Effects:     []string{"relaxation", "sedation", "sleep aid"},
		Description: "Herbal supplement commonly used for relaxation and sleep",
	},
	{
		Name:        "Kava",
		Category:    model.CategoryHerb,
		Aliases:     []string{"kava kava", "piper methysticum"},
		Effects:     []string{"relaxation", "anxiety relief"},
		Description: "Herb used for anxiety and relaxation",
	},
	{
		Name:        "Ginseng",
		Category:    model.CategoryHerb,
		Aliases:     []string{"panax ginseng", "asian ginseng"},
		Effects:     []string{"energy", "stimulation", "cognitive enhancement"},
		Description: "Popular herb used for energy and mental clarity",
	},
	{
		Name:        "Chamomile",
		Category:    model.CategoryHerb,
		Aliases:     []string{"chamomile tea", "matricaria chamomilla"},
		Effects:     []string{"relaxation", "mild sedation", "digestive aid"},
		Description: "Gentle herb commonly used in teas for relaxation",
	},
	{
		Name:        "Ginkgo Biloba",
		Category:    model.CategoryHerb,
		Aliases:     []string{"ginkgo", "maidenhair tree"},
		Effects:     []string{"cognitive enhancement", "circulation"},
		Description: "Herb used for memory and circulation support",
	},
	{
		Name:        "Passionflower",
		Category:    model.CategoryHerb,
		Aliases:     []string{"passiflora", "passiflora incarnata"},
		Effects:     []string{"relaxation", "anxiety relief", "sleep aid"},
		Description: "Herb used for anxiety and sleep support",
	},
	{
		Name:        "Warfarin",
		Category:    model.CategoryPrescription,
		Aliases:     []string{"coumadin"},
		Effects:     []string{"blood thinner", "anticoagulant"},
		Description: "Prescription blood thinner",
	},
	{
		Name:        "SSRIs",
		Category:    model.CategoryPrescription,
		Aliases:     []string{"ssri", "selective serotonin reuptake inhibitor"},
		Effects:     []string{"antidepressant"},
		Description: "Common class of antidepressant medications",
	},
	{
		Name:        "Benzodiazepines",
		Category:    model.CategoryPrescription,
		Aliases:     []string{"benzodiazepine", "benzos"},
		Effects:     []string{"sedation", "anxiety relief"},
		Description: "Prescription medications for anxiety and sedation",
	},
	{
		Name:        "Ibuprofen",
		Category:    model.CategoryOTC,
		Aliases:     []string{"advil", "motrin"},
		Effects:     []string{"pain relief", "anti-inflammatory"},
		Description: "Common over-the-counter pain reliever",
	},
	{
		Name:        "Aspirin",
		Category:    model.CategoryOTC,
		Aliases:     []string{"acetylsalicylic acid"},
		Effects:     []string{"pain relief", "blood thinner"},
		Description: "Common over-the-counter pain reliever and blood thinner",
	},
	{
		Name:        "Diphenhydramine",
		Category:    model.CategoryOTC,
		Aliases:     []string{"benadryl"},
		Effects:     []string{"antihistamine", "sedation"},
		Description: "Common over-the-counter antihistamine and sleep aid",
	},
}

var defaultInteractions = []model.Interaction{
	{
		Substance1:     "St. John's Wort",
		Substance2:     "SSRIs",
		Severity:       model.SeveritySevere,
		Effects:        []string{"serotonin syndrome", "confusion", "agitation", "rapid heart rate"},
		Detail:         "St. John's Wort can increase serotonin levels dangerously when combined with SSRIs",
		Recommendation: "DO NOT COMBINE. Consult healthcare provider immediately if taking both.",
	},
	{
		Substance1:     "Valerian Root",
		Substance2:     "Benzodiazepines",
		Severity:       model.SeverityMajor,
		Effects:        []string{"excessive sedation", "drowsiness", "impaired coordination"},
		Detail:         "Both substances have sedative effects that can be dangerously enhanced",
		Recommendation: "Avoid combination. If needed, consult healthcare provider for proper dosing.",
	},
	{
		Substance1:     "Valerian Root",
		Substance2:     "Diphenhydramine",
		Severity:       model.SeverityModerate,
		Effects:        []string{"excessive drowsiness", "sedation"},
		Detail:         "Combining sedative herbs with antihistamines can cause excessive drowsiness",
		Recommendation: "Avoid driving or operating machinery. Consider reducing doses or timing separately.",
	},
	{
		Substance1:     "Kava",
		Substance2:     "Benzodiazepines",
		Severity:       model.SeverityMajor,
		Effects:        []string{"excessive sedation", "liver damage risk"},
		Detail:         "Kava combined with benzodiazepines increases sedation and liver toxicity risk",
		Recommendation: "Avoid combination. Consult healthcare provider.",
	},
	{
		Substance1:     "Ginkgo Biloba",
		Substance2:     "Warfarin",
		Severity:       model.SeverityMajor,
		Effects:        []string{"increased bleeding risk", "bruising"},
		Detail:         "Ginkgo has blood-thinning properties that enhance warfarin's effects",
		Recommendation: "Avoid combination. Requires close monitoring if used together.",
	},
	{
		Substance1:     "Ginkgo Biloba",
		Substance2:     "Aspirin",
		Severity:       model.SeverityModerate,
		Effects:        []string{"increased bleeding risk"},
		Detail:         "Both substances have blood-thinning effects",
		Recommendation: "Use caution. Monitor for unusual bleeding or bruising.",
	},
	{
		Substance1:     "Ginkgo Biloba",
		Substance2:     "Ibuprofen",
		Severity:       model.SeverityModerate,
		Effects:        []string{"increased bleeding risk"},
		Detail:         "Ginkgo may enhance the blood-thinning effects of NSAIDs",
		Recommendation: "Use caution. Monitor for unusual bleeding or bruising.",
	},
	{
		Substance1:     "Ginseng",
		Substance2:     "Warfarin",
		Severity:       model.SeverityModerate,
		Effects:        []string{"altered blood clotting", "reduced warfarin effectiveness"},
		Detail:         "Ginseng may interfere with warfarin's anticoagulant effects",
		Recommendation: "Avoid or use with close medical supervision.",
	},
	{
		Substance1:     "Chamomile",
		Substance2:     "Warfarin",
		Severity:       model.SeverityMinor,
		Effects:        []string{"potential increased bleeding risk"},
		Detail:         "Chamomile may have mild blood-thinning effects",
		Recommendation: "Generally safe in tea form, but monitor if using concentrated extracts.",
	},
	{
		Substance1:     "Chamomile",
		Substance2:     "Benzodiazepines",
		Severity:       model.SeverityMinor,
		Effects:        []string{"mild additional sedation"},
		Detail:         "Chamomile has mild sedative effects that may add to benzodiazepines",
		Recommendation: "Generally safe in moderate amounts. Avoid excessive use.",
	},
	{
		Substance1:     "Passionflower",
		Substance2:     "Benzodiazepines",
		Severity:       model.SeverityModerate,
		Effects:        []string{"excessive sedation", "drowsiness"},
		Detail:         "Both have sedative effects that can be enhanced when combined",
		Recommendation: "Use caution. May need to adjust dosages. Consult healthcare provider.",
	},
}
