package mutation

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	g := NewGenerator()
	instructions := []string{
		"pick coke can",
		"move the blue cup near the plate",
		"open the top drawer carefully",
		"don't touch the left block",
	}

	for _, instr := range instructions {
		for _, c := range Categories() {
			first, err := g.Generate(instr, c)
			if err != nil {
				t.Fatalf("Generate(%q, %s): %v", instr, c, err)
			}
			for i := 0; i < 5; i++ {
				got, err := g.Generate(instr, c)
				if err != nil {
					t.Fatalf("Generate(%q, %s) repeat: %v", instr, c, err)
				}
				if got != first {
					t.Fatalf("category %s not deterministic: %q then %q", c, first, got)
				}
			}
		}
	}
}

func TestGenerateNonEmptyAndDistinct(t *testing.T) {
	g := NewGenerator()
	instructions := []string{
		"pick coke can",
		"close the drawer",
		"stack the cubes",
	}

	for _, instr := range instructions {
		for _, c := range MutationCategories() {
			got, err := g.Generate(instr, c)
			if err != nil {
				t.Fatalf("Generate(%q, %s): %v", instr, c, err)
			}
			if strings.TrimSpace(got) == "" {
				t.Fatalf("category %s returned empty text", c)
			}
			if got == instr {
				t.Fatalf("category %s returned baseline unchanged: %q", c, got)
			}
		}
	}
}

func TestGenerateBaselinePassthrough(t *testing.T) {
	g := NewGenerator()
	got, err := g.Generate("pick coke can", CategoryBaseline)
	if err != nil {
		t.Fatalf("Generate baseline: %v", err)
	}
	if got != "pick coke can" {
		t.Fatalf("baseline must be a passthrough, got %q", got)
	}
}

func TestGenerateUnknownCategory(t *testing.T) {
	g := NewGenerator()
	_, err := g.Generate("pick coke can", Category("sarcasm"))
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestGenerateEmptyInstruction(t *testing.T) {
	g := NewGenerator()
	if _, err := g.Generate("  ", CategorySynonyms); err == nil {
		t.Fatal("expected error for empty instruction")
	}
}

func TestCategoryRules(t *testing.T) {
	g := NewGenerator()
	tests := []struct {
		name     string
		instr    string
		category Category
		accept   func(string) bool
	}{
		{
			"synonyms-pick", "pick coke can", CategorySynonyms,
			oneOf("grab coke can", "lift coke can", "take coke can"),
		},
		{
			"passive-voice", "pick up the coke can", CategoryPassiveVoice,
			exact("up the coke can should be picked."),
		},
		{
			"passive-voice-single-word", "stop", CategoryPassiveVoice,
			exact("stop should be performed."),
		},
		{
			"spatial-left", "place the cup on the left shelf", CategorySpatialReordering,
			oneOf(
				"place the cup on the on the left shelf",
				"place the cup on the to your left shelf",
			),
		},
		{
			"negation-dont", "don't touch the lid", CategoryNegationPositive,
			exact("avoid touch the lid"),
		},
		{
			"negation-positive-form", "Touch the lid", CategoryNegationPositive,
			exact("Be sure to touch the lid"),
		},
		{
			"temporal-append", "close the drawer", CategoryTemporalModifiers,
			exact("close the drawer right away."),
		},
		{
			"temporal-now", "close the drawer now", CategoryTemporalModifiers,
			oneOf("close the drawer right away", "close the drawer immediately"),
		},
		{
			"complexity-strip", "carefully move the cup", CategoryComplexityVariation,
			exact("move the cup"),
		},
		{
			"complexity-add", "move the cup", CategoryComplexityVariation,
			exact("Carefully move the cup"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.Generate(tt.instr, tt.category)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if !tt.accept(got) {
				t.Errorf("unexpected mutation: %q", got)
			}
		})
	}
}

func TestValidatorOptIn(t *testing.T) {
	rejectAll := func(original, mutated string, c Category) error {
		return fmt.Errorf("rejected %s", c)
	}
	g := NewGenerator().WithValidator(rejectAll, CategorySynonyms)

	_, err := g.Generate("pick coke can", CategorySynonyms)
	if !errors.Is(err, ErrSemanticDrift) {
		t.Fatalf("expected ErrSemanticDrift for opted-in category, got %v", err)
	}

	// Categories not opted in are never validated.
	if _, err := g.Generate("pick coke can", CategoryVerbPhrasing); err != nil {
		t.Fatalf("non-validated category should pass: %v", err)
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(string(c))
		if err != nil {
			t.Fatalf("ParseCategory(%s): %v", c, err)
		}
		if got != c {
			t.Fatalf("ParseCategory(%s) = %s", c, got)
		}
	}
	if _, err := ParseCategory("passive-voice"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestCategoriesOrder(t *testing.T) {
	cats := Categories()
	if len(cats) != 11 {
		t.Fatalf("expected 11 categories, got %d", len(cats))
	}
	if cats[0] != CategoryBaseline {
		t.Fatalf("baseline must come first, got %s", cats[0])
	}
	if len(MutationCategories()) != 10 {
		t.Fatalf("expected 10 mutation categories")
	}
}

func oneOf(choices ...string) func(string) bool {
	return func(got string) bool {
		for _, c := range choices {
			if got == c {
				return true
			}
		}
		return false
	}
}

func exact(want string) func(string) bool {
	return func(got string) bool { return got == want }
}
