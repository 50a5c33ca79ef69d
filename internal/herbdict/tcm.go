package herbdict

import "github.com/jchesterman/apothecary/internal/model"

var tcmHerbs = []model.HerbEntry{
	{Name: "Ren Shen", ScientificName: "Panax ginseng", PinyinName: "Rén Shēn", ChineseName: "人参",
		Aliases: []string{"Ginseng", "Asian Ginseng", "Korean Ginseng"}, Tradition: model.TraditionTCM},
	{Name: "Huang Qi", ScientificName: "Astragalus membranaceus", PinyinName: "Huáng Qí", ChineseName: "黄芪",
		Aliases: []string{"Astragalus", "Milk Vetch Root"}, Tradition: model.TraditionTCM},
	{Name: "Gan Cao", ScientificName: "Glycyrrhiza uralensis", PinyinName: "Gān Cǎo", ChineseName: "甘草",
		Aliases: []string{"Licorice", "Chinese Licorice"}, Tradition: model.TraditionTCM},
	{Name: "Sheng Jiang", ScientificName: "Zingiber officinale", PinyinName: "Shēng Jiāng", ChineseName: "生姜",
		Aliases: []string{"Fresh Ginger", "Ginger"}, Tradition: model.TraditionTCM},
	{Name: "Rou Gui", ScientificName: "Cinnamomum cassia", PinyinName: "Ròu Guì", ChineseName: "肉桂",
		Aliases: []string{"Cinnamon Bark", "Cassia Bark"}, Tradition: model.TraditionTCM},
	{Name: "Gui Zhi", ScientificName: "Cinnamomum cassia", PinyinName: "Guì Zhī", ChineseName: "桂枝",
		Aliases: []string{"Cinnamon Twig", "Cassia Twig"}, Tradition: model.TraditionTCM},
	{Name: "Bai Shao", ScientificName: "Paeonia lactiflora", PinyinName: "Bái Sháo", ChineseName: "白芍",
		Aliases: []string{"White Peony Root", "Peony"}, Tradition: model.TraditionTCM},
	{Name: "Dang Gui", ScientificName: "Angelica sinensis", PinyinName: "Dāng Guī", ChineseName: "当归",
		Aliases: []string{"Angelica", "Dong Quai"}, Tradition: model.TraditionTCM},
	{Name: "Chuan Xiong", ScientificName: "Ligusticum chuanxiong", PinyinName: "Chuān Xiōng", ChineseName: "川芎",
		Aliases: []string{"Ligusticum", "Szechuan Lovage"}, Tradition: model.TraditionTCM},
	{Name: "Bai Zhu", ScientificName: "Atractylodes macrocephala", PinyinName: "Bái Zhú", ChineseName: "白术",
		Aliases: []string{"Atractylodes", "White Atractylodes"}, Tradition: model.TraditionTCM},
	{Name: "Fu Ling", ScientificName: "Poria cocos", PinyinName: "Fú Líng", ChineseName: "茯苓",
		Aliases: []string{"Poria", "Hoelen", "China Root"}, Tradition: model.TraditionTCM},
	{Name: "Dang Shen", ScientificName: "Codonopsis pilosula", PinyinName: "Dǎng Shēn", ChineseName: "党参",
		Aliases: []string{"Codonopsis", "Poor Man's Ginseng"}, Tradition: model.TraditionTCM},
	{Name: "Wu Wei Zi", ScientificName: "Schisandra chinensis", PinyinName: "Wǔ Wèi Zǐ", ChineseName: "五味子",
		Aliases: []string{"Schisandra", "Five Flavor Berry"}, Tradition: model.TraditionTCM},
	{Name: "Mai Men Dong", ScientificName: "Ophiopogon japonicus", PinyinName: "Mài Mén Dōng", ChineseName: "麦门冬",
		Aliases: []string{"Ophiopogon", "Dwarf Lilyturf"}, Tradition: model.TraditionTCM},
	{Name: "Gou Qi Zi", ScientificName: "Lycium barbarum", PinyinName: "Gǒu Qǐ Zǐ", ChineseName: "枸杞子",
		Aliases: []string{"Lycium", "Goji Berry", "Wolfberry"}, Tradition: model.TraditionTCM},
	{Name: "Ju Hua", ScientificName: "Chrysanthemum morifolium", PinyinName: "Jú Huā", ChineseName: "菊花",
		Aliases: []string{"Chrysanthemum", "Florist's Daisy"}, Tradition: model.TraditionTCM},
	{Name: "Jin Yin Hua", ScientificName: "Lonicera japonica", PinyinName: "Jīn Yín Huā", ChineseName: "金银花",
		Aliases: []string{"Honeysuckle", "Japanese Honeysuckle"}, Tradition: model.TraditionTCM},
	{Name: "Huang Qin", ScientificName: "Scutellaria baicalensis", PinyinName: "Huáng Qín", ChineseName: "黄芩",
		Aliases: []string{"Baikal Skullcap"}, Tradition: model.TraditionTCM},
	{Name: "Huang Lian", ScientificName: "Coptis chinensis", PinyinName: "Huáng Lián", ChineseName: "黄连",
		Aliases: []string{"Coptis", "Chinese Goldthread"}, Tradition: model.TraditionTCM},
	{Name: "Chai Hu", ScientificName: "Bupleurum chinense", PinyinName: "Chái Hú", ChineseName: "柴胡",
		Aliases: []string{"Bupleurum", "Hare's Ear"}, Tradition: model.TraditionTCM},
	{Name: "Dan Shen", ScientificName: "Salvia miltiorrhiza", PinyinName: "Dān Shēn", ChineseName: "丹参",
		Aliases: []string{"Red Sage"}, Tradition: model.TraditionTCM},
	{Name: "Suan Zao Ren", ScientificName: "Ziziphus jujuba var. spinosa", PinyinName: "Suān Zǎo Rén", ChineseName: "酸枣仁",
		Aliases: []string{"Ziziphus", "Sour Jujube Seed"}, Tradition: model.TraditionTCM},
	{Name: "Ma Huang", ScientificName: "Ephedra sinica", PinyinName: "Má Huáng", ChineseName: "麻黄",
		Aliases: []string{"Ephedra"}, Tradition: model.TraditionTCM},
	{Name: "Chen Pi", ScientificName: "Citrus reticulata", PinyinName: "Chén Pí", ChineseName: "陈皮",
		Aliases: []string{"Citrus Peel", "Tangerine Peel"}, Tradition: model.TraditionTCM},
	{Name: "Jie Geng", ScientificName: "Platycodon grandiflorus", PinyinName: "Jié Gěng", ChineseName: "桔梗",
		Aliases: []string{"Platycodon", "Balloon Flower"}, Tradition: model.TraditionTCM},
}
