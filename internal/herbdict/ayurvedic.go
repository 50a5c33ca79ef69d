package herbdict

import "github.com/jchesterman/apothecary/internal/model"

var ayurvedicHerbs = []model.HerbEntry{
	{Name: "Ashwagandha", ScientificName: "Withania somnifera", SanskritName: "अश्वगंधा",
		Aliases: []string{"Indian Ginseng", "Winter Cherry"}, Tradition: model.TraditionAyurvedic},
	{Name: "Tulsi", ScientificName: "Ocimum tenuiflorum", SanskritName: "तुलसी",
		Aliases: []string{"Holy Basil", "Sacred Basil"}, Tradition: model.TraditionAyurvedic},
	{Name: "Brahmi", ScientificName: "Bacopa monnieri", SanskritName: "ब्राह्मी",
		Aliases: []string{"Water Hyssop", "Bacopa"}, Tradition: model.TraditionAyurvedic},
	{Name: "Shatavari", ScientificName: "Asparagus racemosus", SanskritName: "शतावरी",
		Aliases: []string{"Wild Asparagus", "Satavari"}, Tradition: model.TraditionAyurvedic},
	{Name: "Triphala", ScientificName: "Combination formula", SanskritName: "त्रिफला",
		Aliases: []string{"Three Fruits"}, Tradition: model.TraditionAyurvedic},
	{Name: "Amalaki", ScientificName: "Phyllanthus emblica", SanskritName: "आमलकी",
		Aliases: []string{"Amla", "Indian Gooseberry"}, Tradition: model.TraditionAyurvedic},
	{Name: "Haritaki", ScientificName: "Terminalia chebula", SanskritName: "हरीतकी",
		Aliases: []string{"Chebulic Myrobalan", "Black Myrobalan"}, Tradition: model.TraditionAyurvedic},
	{Name: "Guduchi", ScientificName: "Tinospora cordifolia", SanskritName: "गुडूची",
		Aliases: []string{"Giloy", "Heart-leaved Moonseed"}, Tradition: model.TraditionAyurvedic},
	{Name: "Neem", ScientificName: "Azadirachta indica", SanskritName: "निम्ब",
		Aliases: []string{"Indian Lilac", "Margosa"}, Tradition: model.TraditionAyurvedic},
	{Name: "Turmeric", ScientificName: "Curcuma longa", SanskritName: "हरिद्रा",
		Aliases: []string{"Haridra", "Indian Saffron"}, Tradition: model.TraditionAyurvedic},
	{Name: "Ginger", ScientificName: "Zingiber officinale", SanskritName: "शुण्ठी",
		Aliases: []string{"Shunti", "Adrak"}, Tradition: model.TraditionAyurvedic},
	{Name: "Black Pepper", ScientificName: "Piper nigrum", SanskritName: "मरिच",
		Aliases: []string{"Maricha", "Kali Mirch"}, Tradition: model.TraditionAyurvedic},
	{Name: "Long Pepper", ScientificName: "Piper longum", SanskritName: "पिप्पली",
		Aliases: []string{"Pippali", "Indian Long Pepper"}, Tradition: model.TraditionAyurvedic},
	{Name: "Guggulu", ScientificName: "Commiphora mukul", SanskritName: "गुग्गुलु",
		Aliases: []string{"Indian Bdellium", "Guggul"}, Tradition: model.TraditionAyurvedic},
	{Name: "Shilajit", ScientificName: "Mineral pitch", SanskritName: "शिलाजीत",
		Aliases: []string{"Mineral Pitch", "Asphaltum"}, Tradition: model.TraditionAyurvedic},
	{Name: "Arjuna", ScientificName: "Terminalia arjuna", SanskritName: "अर्जुन",
		Aliases: []string{"Arjun", "White Marudah"}, Tradition: model.TraditionAyurvedic},
	{Name: "Jatamansi", ScientificName: "Nardostachys jatamansi", SanskritName: "जटामांसी",
		Aliases: []string{"Spikenard", "Muskroot"}, Tradition: model.TraditionAyurvedic},
	{Name: "Gokshura", ScientificName: "Tribulus terrestris", SanskritName: "गोक्षुर",
		Aliases: []string{"Puncture Vine", "Gokhru"}, Tradition: model.TraditionAyurvedic},
	{Name: "Kapikacchu", ScientificName: "Mucuna pruriens", SanskritName: "कपिकच्छू",
		Aliases: []string{"Mucuna", "Velvet Bean", "Cowhage"}, Tradition: model.TraditionAyurvedic},
	{Name: "Manjistha", ScientificName: "Rubia cordifolia", SanskritName: "मञ्जिष्ठा",
		Aliases: []string{"Indian Madder", "Manjishtha"}, Tradition: model.TraditionAyurvedic},
}
