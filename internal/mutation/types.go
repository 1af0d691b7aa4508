package mutation

// #region imports
import (
	"errors"
	"fmt"
)

// #endregion

// #region category

// Category identifies one linguistic transformation class applied to a
// baseline instruction.
type Category string

const (
	// CategoryBaseline is the no-op passthrough pseudo-category.
	CategoryBaseline Category = "baseline"

	CategorySynonyms            Category = "synonyms"
	CategoryPassiveVoice        Category = "passive_voice"
	CategorySpatialReordering   Category = "spatial_reordering"
	CategoryFormalInformal      Category = "formal_informal"
	CategoryVerbPhrasing        Category = "verb_phrasing"
	CategoryObjectDescriptors   Category = "object_descriptors"
	CategoryDirectionalLanguage Category = "directional_language"
	CategoryTemporalModifiers   Category = "temporal_modifiers"
	CategoryNegationPositive    Category = "negation_positive"
	CategoryComplexityVariation Category = "complexity_variation"
)

// #endregion

// #region category-order

// categoryOrder is the declared enumeration order: baseline first, then the
// ten mutation classes.
var categoryOrder = []Category{
	CategoryBaseline,
	CategorySynonyms,
	CategoryPassiveVoice,
	CategorySpatialReordering,
	CategoryFormalInformal,
	CategoryVerbPhrasing,
	CategoryObjectDescriptors,
	CategoryDirectionalLanguage,
	CategoryTemporalModifiers,
	CategoryNegationPositive,
	CategoryComplexityVariation,
}

// Categories returns all categories in declared order, baseline first.
// The returned slice is a copy.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// MutationCategories returns the ten mutation classes in declared order,
// excluding the baseline pseudo-category.
func MutationCategories() []Category {
	return Categories()[1:]
}

// #endregion

// #region parse

// ErrUnknownCategory is returned when a category string is not a member of
// the closed category set.
var ErrUnknownCategory = errors.New("unknown mutation category")

// ParseCategory validates a raw string against the closed category set.
func ParseCategory(s string) (Category, error) {
	for _, c := range categoryOrder {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}

// #endregion
