package herbdict

import "github.com/jchesterman/apothecary/internal/model"

// westernHerbs is the Western herbal dictionary. Declaration order matters:
// it fixes tie-breaks when two aliases match the same stretch of text.
var westernHerbs = []model.HerbEntry{
	{Name: "St. John's Wort", ScientificName: "Hypericum perforatum",
		Aliases: []string{"St Johns Wort", "Hypericum", "Klamath Weed"}, Tradition: model.TraditionWestern},
	{Name: "Valerian Root", ScientificName: "Valeriana officinalis",
		Aliases: []string{"Valerian", "Garden Heliotrope"}, Tradition: model.TraditionWestern},
	{Name: "Kava", ScientificName: "Piper methysticum",
		Aliases: []string{"Kava Kava", "Awa"}, Tradition: model.TraditionWestern},
	{Name: "Ginseng", ScientificName: "Panax ginseng",
		Aliases: []string{"Asian Ginseng", "Korean Ginseng"}, Tradition: model.TraditionWestern},
	{Name: "Chamomile", ScientificName: "Matricaria chamomilla",
		Aliases: []string{"German Chamomile", "Blue Chamomile"}, Tradition: model.TraditionWestern},
	{Name: "Ginkgo Biloba", ScientificName: "Ginkgo biloba",
		Aliases: []string{"Ginkgo", "Maidenhair Tree"}, Tradition: model.TraditionWestern},
	{Name: "Passionflower", ScientificName: "Passiflora incarnata",
		Aliases: []string{"Passiflora", "Maypop"}, Tradition: model.TraditionWestern},
	{Name: "Feverfew", ScientificName: "Tanacetum parthenium",
		Aliases: []string{"Featherfew", "Bachelor's Buttons"}, Tradition: model.TraditionWestern},
	{Name: "Skullcap", ScientificName: "Scutellaria lateriflora",
		Aliases: []string{"American Skullcap", "Blue Skullcap"}, Tradition: model.TraditionWestern},
	{Name: "Lemon Balm", ScientificName: "Melissa officinalis",
		Aliases: []string{"Melissa", "Balm"}, Tradition: model.TraditionWestern},
	{Name: "Hops", ScientificName: "Humulus lupulus",
		Aliases: []string{"Common Hops"}, Tradition: model.TraditionWestern},
	{Name: "Dong Quai", ScientificName: "Angelica sinensis",
		Aliases: []string{"Female Ginseng", "Dang Gui"}, Tradition: model.TraditionWestern},
	{Name: "Evening Primrose", ScientificName: "Oenothera biennis",
		Aliases: []string{"Evening Star", "Sun Drop"}, Tradition: model.TraditionWestern},
	{Name: "Rhodiola", ScientificName: "Rhodiola rosea",
		Aliases: []string{"Golden Root", "Arctic Root"}, Tradition: model.TraditionWestern},
	{Name: "Schisandra", ScientificName: "Schisandra chinensis",
		Aliases: []string{"Five Flavor Berry", "Wu Wei Zi"}, Tradition: model.TraditionWestern},
	{Name: "Astragalus", ScientificName: "Astragalus membranaceus",
		Aliases: []string{"Huang Qi", "Milk Vetch"}, Tradition: model.TraditionWestern},
	{Name: "Eleuthero", ScientificName: "Eleutherococcus senticosus",
		Aliases: []string{"Siberian Ginseng", "Ci Wu Jia"}, Tradition: model.TraditionWestern},
	{Name: "Maca", ScientificName: "Lepidium meyenii",
		Aliases: []string{"Peruvian Ginseng", "Maca Root"}, Tradition: model.TraditionWestern},
	{Name: "Tribulus", ScientificName: "Tribulus terrestris",
		Aliases: []string{"Puncture Vine", "Gokshura"}, Tradition: model.TraditionWestern},
	{Name: "Fenugreek", ScientificName: "Trigonella foenum-graecum",
		Aliases: []string{"Greek Hay", "Methi"}, Tradition: model.TraditionWestern},
	{Name: "Goldenseal", ScientificName: "Hydrastis canadensis",
		Aliases: []string{"Orange Root", "Yellow Puccoon"}, Tradition: model.TraditionWestern},
	{Name: "Cranberry", ScientificName: "Vaccinium macrocarpon",
		Aliases: []string{"American Cranberry", "Large Cranberry"}, Tradition: model.TraditionWestern},
	{Name: "Nettle", ScientificName: "Urtica dioica",
		Aliases: []string{"Stinging Nettle", "Common Nettle"}, Tradition: model.TraditionWestern},
	{Name: "Dandelion", ScientificName: "Taraxacum officinale",
		Aliases: []string{"Lion's Tooth", "Blowball"}, Tradition: model.TraditionWestern},
	{Name: "Red Clover", ScientificName: "Trifolium pratense",
		Aliases: []string{"Purple Clover", "Meadow Clover"}, Tradition: model.TraditionWestern},
	{Name: "Vitex", ScientificName: "Vitex agnus-castus",
		Aliases: []string{"Chaste Tree", "Monk's Pepper"}, Tradition: model.TraditionWestern},
	{Name: "Yarrow", ScientificName: "Achillea millefolium",
		Aliases: []string{"Common Yarrow", "Nosebleed Plant"}, Tradition: model.TraditionWestern},
	{Name: "Calendula", ScientificName: "Calendula officinalis",
		Aliases: []string{"Pot Marigold", "Garden Marigold"}, Tradition: model.TraditionWestern},
	{Name: "Marshmallow", ScientificName: "Althaea officinalis",
		Aliases: []string{"Marsh Mallow", "White Mallow"}, Tradition: model.TraditionWestern},
	{Name: "Licorice", ScientificName: "Glycyrrhiza glabra",
		Aliases: []string{"Sweet Root", "Gan Cao"}, Tradition: model.TraditionWestern},
	{Name: "Fennel", ScientificName: "Foeniculum vulgare",
		Aliases: []string{"Sweet Fennel", "Florence Fennel"}, Tradition: model.TraditionWestern},
	{Name: "Cinnamon", ScientificName: "Cinnamomum verum",
		Aliases: []string{"True Cinnamon", "Ceylon Cinnamon"}, Tradition: model.TraditionWestern},
	{Name: "Thyme", ScientificName: "Thymus vulgaris",
		Aliases: []string{"Common Thyme", "Garden Thyme"}, Tradition: model.TraditionWestern},
	{Name: "Rosemary", ScientificName: "Rosmarinus officinalis",
		Aliases: []string{"Compass Plant", "Polar Plant"}, Tradition: model.TraditionWestern},
	{Name: "Sage", ScientificName: "Salvia officinalis",
		Aliases: []string{"Common Sage", "Garden Sage"}, Tradition: model.TraditionWestern},
	{Name: "Holy Basil", ScientificName: "Ocimum tenuiflorum",
		Aliases: []string{"Tulsi", "Sacred Basil"}, Tradition: model.TraditionWestern},
}
