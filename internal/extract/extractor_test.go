package extract

import (
	"reflect"
	"testing"

	"github.com/jchesterman/apothecary/internal/herbdict"
	"github.com/jchesterman/apothecary/internal/model"
)

func newExtractor(t *testing.T) *Extractor {
	t.Helper()
	return New(herbdict.Merge(), Options{})
}

func TestExtract_AyurvedicProperties(t *testing.T) {
	ex := newExtractor(t)

	text := "Ashwagandha (Withania somnifera) is a powerful adaptogen. " +
		"It balances Vata and Kapha doshas. " +
		"Rasa: bitter, astringent, sweet. Virya: heating (Ushna)."

	herbs := ex.Extract(text, "materia.pdf")
	if len(herbs) != 1 {
		t.Fatalf("expected 1 herb, got %d", len(herbs))
	}

	h := herbs[0]
	if h.Name != "Ashwagandha" {
		t.Errorf("name = %q, want Ashwagandha", h.Name)
	}
	if h.Tradition != model.TraditionAyurvedic {
		t.Errorf("tradition = %q, want ayurvedic", h.Tradition)
	}
	if h.ID == "" {
		t.Error("expected a generated ID")
	}
	if h.SourceDocument != "materia.pdf" {
		t.Errorf("source = %q, want materia.pdf", h.SourceDocument)
	}
	if h.Ayurvedic == nil {
		t.Fatal("expected Ayurvedic properties")
	}
	wantDoshas := map[string]string{"vata": model.DoshaPacifies, "kapha": model.DoshaPacifies}
	if !reflect.DeepEqual(h.Ayurvedic.Doshas, wantDoshas) {
		t.Errorf("doshas = %v, want %v", h.Ayurvedic.Doshas, wantDoshas)
	}
	if want := []string{"bitter", "astringent", "sweet"}; !reflect.DeepEqual(h.Ayurvedic.Rasa, want) {
		t.Errorf("rasa = %v, want %v", h.Ayurvedic.Rasa, want)
	}
	if h.Ayurvedic.Virya != "heating (Ushna)" {
		t.Errorf("virya = %q, want %q", h.Ayurvedic.Virya, "heating (Ushna)")
	}
	if h.Ayurvedic.SanskritName == "" {
		t.Error("expected Sanskrit name from the dictionary entry")
	}
}

func TestExtract_TCMProperties(t *testing.T) {
	ex := newExtractor(t)

	text := "Huang Qi (Astragalus) tonifies Qi and strengthens the immune system. " +
		"It enters the Spleen and Lung channels. Temperature is warm, taste is sweet."

	herbs := ex.Extract(text, "tcm.pdf")
	if len(herbs) != 1 {
		t.Fatalf("expected 1 herb, got %d", len(herbs))
	}

	h := herbs[0]
	if h.Name != "Astragalus" {
		t.Errorf("name = %q, want the merged canonical name Astragalus", h.Name)
	}
	if h.Tradition != model.TraditionMixed {
		t.Errorf("tradition = %q, want mixed", h.Tradition)
	}
	if h.TCM == nil {
		t.Fatal("expected TCM properties")
	}
	if want := []string{"Spleen", "Lung"}; !reflect.DeepEqual(h.TCM.Channels, want) {
		t.Errorf("channels = %v, want %v", h.TCM.Channels, want)
	}
	if h.TCM.Temperature != "Warm" {
		t.Errorf("temperature = %q, want Warm", h.TCM.Temperature)
	}
	if want := []string{"Sweet"}; !reflect.DeepEqual(h.TCM.Tastes, want) {
		t.Errorf("tastes = %v, want %v", h.TCM.Tastes, want)
	}
	if want := []string{"Tonifies Qi"}; !reflect.DeepEqual(h.TCM.Actions, want) {
		t.Errorf("actions = %v, want %v", h.TCM.Actions, want)
	}
	if h.TCM.PinyinName != "Huáng Qí" {
		t.Errorf("pinyin = %q, want Huáng Qí", h.TCM.PinyinName)
	}
	if h.Ayurvedic != nil {
		t.Errorf("unexpected Ayurvedic properties: %+v", h.Ayurvedic)
	}
}

func TestExtract_FirstAppearanceOrder(t *testing.T) {
	ex := newExtractor(t)

	text := "Ashwagandha balances Vata and Kapha doshas.\n\n" +
		"Huang Qi tonifies Qi and enters the Spleen channel."

	herbs := ex.Extract(text, "both.pdf")
	if len(herbs) != 2 {
		t.Fatalf("expected 2 herbs, got %d", len(herbs))
	}
	if herbs[0].Name != "Ashwagandha" || herbs[1].Name != "Astragalus" {
		t.Errorf("order = [%s, %s], want first-appearance order", herbs[0].Name, herbs[1].Name)
	}
}

func TestExtract_NoHerbs(t *testing.T) {
	ex := newExtractor(t)

	herbs := ex.Extract("A short note about software licensing.", "note.pdf")
	if len(herbs) != 0 {
		t.Errorf("expected no herbs, got %d", len(herbs))
	}
}

func TestExtract_LongestAliasWins(t *testing.T) {
	ex := newExtractor(t)

	herbs := ex.Extract("Siberian Ginseng is used for stamina.", "doc.pdf")
	if len(herbs) != 1 {
		t.Fatalf("expected 1 herb, got %d", len(herbs))
	}
	if herbs[0].Name != "Eleuthero" {
		t.Errorf("name = %q, want Eleuthero (longest alias match)", herbs[0].Name)
	}
}

func TestExtract_RepeatMentionsSingleRecord(t *testing.T) {
	ex := newExtractor(t)

	text := "Chamomile tea is calming. Many people drink chamomile before bed."
	herbs := ex.Extract(text, "doc.pdf")
	if len(herbs) != 1 {
		t.Fatalf("expected 1 record for repeated mentions, got %d", len(herbs))
	}
	if herbs[0].Name != "Chamomile" {
		t.Errorf("name = %q, want Chamomile", herbs[0].Name)
	}
}

func TestExtract_CuePhrases(t *testing.T) {
	ex := newExtractor(t)

	text := "Valerian is used for insomnia and restlessness. " +
		"It is contraindicated in pregnancy. " +
		"It interacts with sedatives and alcohol. " +
		"Taken as a tea or tincture."

	herbs := ex.Extract(text, "doc.pdf")
	if len(herbs) != 1 {
		t.Fatalf("expected 1 herb, got %d", len(herbs))
	}

	h := herbs[0]
	if h.Name != "Valerian Root" {
		t.Errorf("name = %q, want Valerian Root", h.Name)
	}
	if want := []string{"insomnia and restlessness"}; !reflect.DeepEqual(h.TraditionalUses, want) {
		t.Errorf("uses = %v, want %v", h.TraditionalUses, want)
	}
	if want := []string{"pregnancy"}; !reflect.DeepEqual(h.Contraindications, want) {
		t.Errorf("contraindications = %v, want %v", h.Contraindications, want)
	}
	if want := []string{"sedatives and alcohol"}; !reflect.DeepEqual(h.Interactions, want) {
		t.Errorf("interactions = %v, want %v", h.Interactions, want)
	}
	if want := []string{"a tea or tincture"}; !reflect.DeepEqual(h.PreparationMethods, want) {
		t.Errorf("preparations = %v, want %v", h.PreparationMethods, want)
	}
}

func TestTruncateAtWord(t *testing.T) {
	got := truncateAtWord("alpha beta gamma", 10)
	if got != "alpha beta" {
		t.Errorf("truncateAtWord = %q, want %q", got, "alpha beta")
	}
	if got := truncateAtWord("short", 10); got != "short" {
		t.Errorf("truncateAtWord = %q, want unchanged input", got)
	}
}
