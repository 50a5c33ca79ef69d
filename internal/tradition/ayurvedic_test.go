package tradition

import (
	"reflect"
	"testing"

	"github.com/jchesterman/apothecary/internal/model"
)

func TestAyurvedic_FullDescription(t *testing.T) {
	window := "Ashwagandha (Withania somnifera) balances Vata and Kapha doshas. " +
		"Rasa: bitter, astringent, sweet. Virya: heating (Ushna)."

	props := NewAyurvedicParser().Extract(window)

	wantDoshas := map[string]string{
		"vata":  model.DoshaPacifies,
		"kapha": model.DoshaPacifies,
	}
	if !reflect.DeepEqual(props.Doshas, wantDoshas) {
		t.Errorf("doshas = %v, want %v", props.Doshas, wantDoshas)
	}
	wantRasa := []string{"bitter", "astringent", "sweet"}
	if !reflect.DeepEqual(props.Rasa, wantRasa) {
		t.Errorf("rasa = %v, want %v", props.Rasa, wantRasa)
	}
	if props.Virya != "heating (Ushna)" {
		t.Errorf("virya = %q, want %q", props.Virya, "heating (Ushna)")
	}
}

func TestAyurvedic_Aggravates(t *testing.T) {
	props := NewAyurvedicParser().Extract("In excess it aggravates Pitta.")

	if got := props.Doshas["pitta"]; got != model.DoshaAggravates {
		t.Errorf("pitta effect = %q, want aggravates", got)
	}
}

func TestAyurvedic_HyphenatedDoshaForm(t *testing.T) {
	props := NewAyurvedicParser().Extract("A well known vata-pacifying herb.")

	if got := props.Doshas["vata"]; got != model.DoshaPacifies {
		t.Errorf("vata effect = %q, want pacifies", got)
	}
}

func TestAyurvedic_ViryaKeywordFallback(t *testing.T) {
	props := NewAyurvedicParser().Extract("Traditionally considered a cooling herb with Shita qualities.")

	if props.Virya != "Shita (cooling)" {
		t.Errorf("virya = %q, want %q", props.Virya, "Shita (cooling)")
	}
}

func TestAyurvedic_ViryaFirstWins(t *testing.T) {
	props := NewAyurvedicParser().Extract("Virya: cooling. Some sources describe it as heating.")

	if props.Virya != "cooling" {
		t.Errorf("virya = %q, want the labeled value to win", props.Virya)
	}
}

func TestAyurvedic_VipakaTerm(t *testing.T) {
	props := NewAyurvedicParser().Extract("Vipaka: Madhura")

	if props.Vipaka != "Madhura (sweet)" {
		t.Errorf("vipaka = %q, want %q", props.Vipaka, "Madhura (sweet)")
	}
}

func TestAyurvedic_RasaIgnoresUnknownTerms(t *testing.T) {
	props := NewAyurvedicParser().Extract("Rasa: sweet, umami")

	want := []string{"sweet"}
	if !reflect.DeepEqual(props.Rasa, want) {
		t.Errorf("rasa = %v, want %v", props.Rasa, want)
	}
}

func TestAyurvedic_EmptyWindow(t *testing.T) {
	props := NewAyurvedicParser().Extract("No relevant description at all.")

	if !props.Empty() {
		t.Errorf("expected empty record, got %+v", props)
	}
}
