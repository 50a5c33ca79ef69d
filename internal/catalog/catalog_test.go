package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/jchesterman/apothecary/internal/model"
)

func defaultCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	return c
}

func TestResolve_CaseInsensitive(t *testing.T) {
	c := defaultCatalog(t)

	for _, name := range []string{"Valerian Root", "valerian root", "VALERIAN ROOT"} {
		s, ok := c.Resolve(name)
		if !ok {
			t.Fatalf("Resolve(%q) not found", name)
		}
		if s.Name != "Valerian Root" {
			t.Errorf("Resolve(%q) = %q, want Valerian Root", name, s.Name)
		}
	}
}

func TestResolve_Alias(t *testing.T) {
	c := defaultCatalog(t)

	s, ok := c.Resolve("benadryl")
	if !ok {
		t.Fatal("Resolve(benadryl) not found")
	}
	if s.Name != "Diphenhydramine" {
		t.Errorf("expected Diphenhydramine, got %q", s.Name)
	}
	if s.Category != model.CategoryOTC {
		t.Errorf("expected otc category, got %q", s.Category)
	}
}

func TestResolve_NotFound(t *testing.T) {
	c := defaultCatalog(t)

	if _, ok := c.Resolve("unobtainium"); ok {
		t.Error("expected not found for unknown substance")
	}
	if _, ok := c.Resolve(""); ok {
		t.Error("expected not found for empty string")
	}
}

func TestFindInteractions_PairSymmetry(t *testing.T) {
	c := defaultCatalog(t)

	valerian, _ := c.Resolve("valerian root")
	benadryl, _ := c.Resolve("benadryl")

	forward := c.FindInteractions([]model.Substance{valerian, benadryl})
	reverse := c.FindInteractions([]model.Substance{benadryl, valerian})

	if len(forward) != 1 || len(reverse) != 1 {
		t.Fatalf("expected 1 interaction each way, got %d and %d", len(forward), len(reverse))
	}
	if forward[0].Severity != reverse[0].Severity || forward[0].Detail != reverse[0].Detail {
		t.Error("pair lookup differs depending on argument order")
	}
}

func TestFindInteractions_EmptyAndSingleton(t *testing.T) {
	c := defaultCatalog(t)

	if got := c.FindInteractions(nil); len(got) != 0 {
		t.Errorf("empty input: expected no interactions, got %d", len(got))
	}
	kava, _ := c.Resolve("kava")
	if got := c.FindInteractions([]model.Substance{kava}); len(got) != 0 {
		t.Errorf("singleton input: expected no interactions, got %d", len(got))
	}
}

func TestFindInteractions_NoKnownPairs(t *testing.T) {
	c := defaultCatalog(t)

	chamomile, _ := c.Resolve("chamomile")
	ginseng, _ := c.Resolve("ginseng")

	if got := c.FindInteractions([]model.Substance{chamomile, ginseng}); len(got) != 0 {
		t.Errorf("expected no interactions for chamomile+ginseng, got %d", len(got))
	}
}

func TestFindInteractions_ValerianDiphenhydramine(t *testing.T) {
	c := defaultCatalog(t)

	valerian, ok1 := c.Resolve("valerian root")
	benadryl, ok2 := c.Resolve("benadryl")
	if !ok1 || !ok2 {
		t.Fatal("failed to resolve test substances")
	}

	got := c.FindInteractions([]model.Substance{valerian, benadryl})
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 interaction, got %d", len(got))
	}
	if got[0].Severity != model.SeverityModerate {
		t.Errorf("expected moderate severity, got %q", got[0].Severity)
	}
	if !containsString(got[0].Effects, "excessive drowsiness") {
		t.Errorf("expected effects to include excessive drowsiness, got %v", got[0].Effects)
	}
}

func TestFindInteractions_StJohnsWortSSRI(t *testing.T) {
	c := defaultCatalog(t)

	sjw, ok1 := c.Resolve("st johns wort")
	ssri, ok2 := c.Resolve("ssri")
	if !ok1 || !ok2 {
		t.Fatal("failed to resolve test substances")
	}

	got := c.FindInteractions([]model.Substance{sjw, ssri})
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 interaction, got %d", len(got))
	}
	if got[0].Severity != model.SeveritySevere {
		t.Errorf("expected severe severity, got %q", got[0].Severity)
	}
	found := false
	for _, e := range got[0].Effects {
		if strings.Contains(e, "serotonin syndrome") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected effects to reference serotonin syndrome, got %v", got[0].Effects)
	}
}

func TestFindInteractions_DeterministicOrder(t *testing.T) {
	c := defaultCatalog(t)

	ginkgo, _ := c.Resolve("ginkgo")
	warfarin, _ := c.Resolve("warfarin")
	aspirin, _ := c.Resolve("aspirin")

	got := c.FindInteractions([]model.Substance{ginkgo, warfarin, aspirin})
	if len(got) != 2 {
		t.Fatalf("expected 2 interactions, got %d", len(got))
	}
	// First-seen-pair order: (ginkgo, warfarin) before (ginkgo, aspirin).
	if got[0].Substance2 != "Warfarin" {
		t.Errorf("expected ginkgo+warfarin first, got %s + %s", got[0].Substance1, got[0].Substance2)
	}
	if got[1].Substance2 != "Aspirin" {
		t.Errorf("expected ginkgo+aspirin second, got %s + %s", got[1].Substance1, got[1].Substance2)
	}
}

func TestFindInteractions_DuplicateInput(t *testing.T) {
	c := defaultCatalog(t)

	valerian, _ := c.Resolve("valerian")
	benadryl, _ := c.Resolve("benadryl")

	got := c.FindInteractions([]model.Substance{valerian, benadryl, valerian})
	if len(got) != 1 {
		t.Errorf("duplicate input substance: expected 1 interaction, got %d", len(got))
	}
}

func TestNew_RejectsDuplicateAlias(t *testing.T) {
	subs := []model.Substance{
		{Name: "Alpha", Category: model.CategoryHerb, Aliases: []string{"shared"}},
		{Name: "Beta", Category: model.CategoryHerb, Aliases: []string{"Shared"}},
	}
	_, err := New(subs, nil)
	if !errors.Is(err, ErrDuplicateAlias) {
		t.Errorf("expected ErrDuplicateAlias, got %v", err)
	}
}

func TestNew_RejectsDuplicatePair(t *testing.T) {
	subs := []model.Substance{
		{Name: "Alpha", Category: model.CategoryHerb},
		{Name: "Beta", Category: model.CategoryHerb},
	}
	ins := []model.Interaction{
		{Substance1: "Alpha", Substance2: "Beta", Severity: model.SeverityMinor},
		{Substance1: "Beta", Substance2: "Alpha", Severity: model.SeverityMajor},
	}
	_, err := New(subs, ins)
	if !errors.Is(err, ErrDuplicatePair) {
		t.Errorf("expected ErrDuplicatePair, got %v", err)
	}
}

func TestNew_RejectsUnknownSubstance(t *testing.T) {
	subs := []model.Substance{{Name: "Alpha", Category: model.CategoryHerb}}
	ins := []model.Interaction{
		{Substance1: "Alpha", Substance2: "Ghost", Severity: model.SeverityMinor},
	}
	_, err := New(subs, ins)
	if !errors.Is(err, ErrUnknownSubstance) {
		t.Errorf("expected ErrUnknownSubstance, got %v", err)
	}
}

func TestNew_RejectsInvalidSeverity(t *testing.T) {
	subs := []model.Substance{
		{Name: "Alpha", Category: model.CategoryHerb},
		{Name: "Beta", Category: model.CategoryHerb},
	}
	ins := []model.Interaction{
		{Substance1: "Alpha", Substance2: "Beta", Severity: "catastrophic"},
	}
	_, err := New(subs, ins)
	if !errors.Is(err, ErrInvalidSeverity) {
		t.Errorf("expected ErrInvalidSeverity, got %v", err)
	}
}

func containsString(list []string, v string) bool {
	for _, have := range list {
		if have == v {
			return true
		}
	}
	return false
}
