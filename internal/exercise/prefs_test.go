package exercise

import "testing"

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences()

	for _, typ := range Core {
		if !p.IsEnabled(typ) {
			t.Errorf("core type %s should be enabled by default", typ)
		}
	}
	for _, typ := range All {
		core := false
		for _, c := range Core {
			if c == typ {
				core = true
			}
		}
		if !core && p.IsEnabled(typ) {
			t.Errorf("non-core type %s should be disabled by default", typ)
		}
	}

	if !p.PrioritizeWeaknesses {
		t.Error("PrioritizeWeaknesses should default to true")
	}
	if p.WeaknessThreshold != DefaultWeaknessThreshold {
		t.Errorf("WeaknessThreshold = %v, want %v", p.WeaknessThreshold, DefaultWeaknessThreshold)
	}
}

func TestSetEnabled_DoesNotMutateOriginal(t *testing.T) {
	p := DefaultPreferences()
	q := p.SetEnabled(SentenceBuilding, true)

	if !q.IsEnabled(SentenceBuilding) {
		t.Error("SetEnabled did not enable the type")
	}
	if p.IsEnabled(SentenceBuilding) {
		t.Error("SetEnabled mutated the original preferences")
	}
}

func TestCategoryBulkToggles(t *testing.T) {
	p := DefaultPreferences().SetCategory(CategoryProduction, true)

	if !p.CategoryFullyEnabled(CategoryProduction) {
		t.Error("production should be fully enabled after bulk enable")
	}
	if p.CategoryPartiallyEnabled(CategoryProduction) {
		t.Error("fully enabled category must not report partial")
	}

	p = p.SetEnabled(ConjugationPractice, false)
	if p.CategoryFullyEnabled(CategoryProduction) {
		t.Error("production should no longer be fully enabled")
	}
	if !p.CategoryPartiallyEnabled(CategoryProduction) {
		t.Error("production should report partially enabled")
	}

	p = p.SetCategory(CategoryProduction, false)
	if p.CategoryPartiallyEnabled(CategoryProduction) || p.CategoryFullyEnabled(CategoryProduction) {
		t.Error("disabled category must report neither fully nor partially enabled")
	}
}

func TestCategories_PartitionAllTypes(t *testing.T) {
	recognition := OfCategory(CategoryRecognition)
	production := OfCategory(CategoryProduction)

	if len(recognition)+len(production) != len(All) {
		t.Errorf("categories cover %d types, want %d", len(recognition)+len(production), len(All))
	}
	for _, typ := range recognition {
		if typ.Category() != CategoryRecognition {
			t.Errorf("%s misfiled", typ)
		}
	}
}

func TestIsMultipleChoice(t *testing.T) {
	if !MultipleChoiceText.IsMultipleChoice() || !MultipleChoiceIcon.IsMultipleChoice() {
		t.Error("choice types should report multiple choice")
	}
	if ReadingRecognition.IsMultipleChoice() {
		t.Error("reading recognition is not multiple choice")
	}
}
