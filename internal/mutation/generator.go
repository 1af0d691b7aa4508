package mutation

// #region imports
import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"
	"unicode"
)

// #endregion

// #region rules

// rule rewrites occurrences of an anchor word to one of several choices.
// Rules are checked in order; the first anchor present in the text wins and
// all of its occurrences are rewritten.
type rule struct {
	anchor  string
	choices []string
}

var synonymRules = []rule{
	{"pick", []string{"grab", "lift", "take"}},
	{"move", []string{"shift", "relocate", "transport"}},
	{"place", []string{"put", "set", "position"}},
	{"open", []string{"unseal", "unlock", "pull open"}},
	{"close", []string{"shut", "seal", "push closed"}},
}

var spatialRules = []rule{
	{"left", []string{"on the left", "to your left"}},
	{"right", []string{"on the right", "to your right"}},
	{"front", []string{"in front", "ahead"}},
	{"behind", []string{"in the back", "behind you"}},
}

var formalRules = []rule{
	{"get", []string{"retrieve", "obtain"}},
	{"grab", []string{"retrieve", "obtain"}},
	{"take", []string{"retrieve", "obtain"}},
	{"move", []string{"relocate", "transport"}},
}

var verbPhrasingRules = []rule{
	{"pick up", []string{"lift up", "raise", "collect"}},
	{"move", []string{"move over", "carry", "bring"}},
	{"place", []string{"set down", "put down"}},
}

var descriptorRules = []rule{
	{"red", []string{"crimson", "scarlet"}},
	{"green", []string{"emerald", "lime"}},
	{"blue", []string{"azure", "navy"}},
	{"coke", []string{"soda", "cola"}},
}

var directionalRules = []rule{
	{"toward", []string{"in the direction of", "closer to"}},
	{"near", []string{"close to", "adjacent to"}},
	{"away", []string{"farther from", "further from"}},
}

var temporalChoices = []string{"right away", "immediately"}

// #endregion

// #region generator

// Generator deterministically produces a mutated instruction for a
// (baseline, category) pair. The same pair always yields the same text,
// within a run and across runs: the replacement choice is selected by a
// hash of the pair rather than a random source.
type Generator struct {
	validator Validator
	validated map[Category]bool
}

// NewGenerator returns a generator with semantic validation disabled.
func NewGenerator() *Generator {
	return &Generator{validated: make(map[Category]bool)}
}

// Generate returns the mutated form of instruction for the given category.
// The baseline pseudo-category is a passthrough. The result is never empty
// and, for mutation categories, never identical to the input.
func (g *Generator) Generate(instruction string, category Category) (string, error) {
	if strings.TrimSpace(instruction) == "" {
		return "", fmt.Errorf("empty baseline instruction")
	}
	if !category.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, string(category))
	}
	if category == CategoryBaseline {
		return instruction, nil
	}

	mutated := strings.TrimSpace(mutate(instruction, category))
	if mutated == "" || mutated == instruction {
		mutated = fallback(instruction, category)
	}

	if g.validator != nil && g.validated[category] {
		if err := g.validator(instruction, mutated, category); err != nil {
			return "", fmt.Errorf("%w: %v", ErrSemanticDrift, err)
		}
	}
	return mutated, nil
}

// #endregion

// #region mutate

func mutate(text string, category Category) string {
	switch category {
	case CategorySynonyms:
		return applyRules(text, CategorySynonyms, synonymRules, true)
	case CategoryPassiveVoice:
		return passiveVoice(text)
	case CategorySpatialReordering:
		return applyRules(text, CategorySpatialReordering, spatialRules, true)
	case CategoryFormalInformal:
		return applyRules(text, CategoryFormalInformal, formalRules, true)
	case CategoryVerbPhrasing:
		return applyRules(text, CategoryVerbPhrasing, verbPhrasingRules, false)
	case CategoryObjectDescriptors:
		return applyRules(text, CategoryObjectDescriptors, descriptorRules, true)
	case CategoryDirectionalLanguage:
		return applyRules(text, CategoryDirectionalLanguage, directionalRules, true)
	case CategoryTemporalModifiers:
		return temporalModifiers(text)
	case CategoryNegationPositive:
		return negationPositive(text)
	case CategoryComplexityVariation:
		return complexityVariation(text)
	}
	return text
}

// applyRules rewrites the first matching anchor. wordBound controls whether
// the anchor must match on word boundaries or as a bare substring.
func applyRules(text string, category Category, rules []rule, wordBound bool) string {
	for _, r := range rules {
		re := anchorPattern(r.anchor, wordBound)
		if !re.MatchString(text) {
			continue
		}
		choice := r.choices[pickIndex(text, category, len(r.choices))]
		return re.ReplaceAllString(text, choice)
	}
	return text
}

func anchorPattern(anchor string, wordBound bool) *regexp.Regexp {
	if wordBound {
		return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(anchor) + `\b`)
	}
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(anchor))
}

// #endregion

// #region special-forms

var leadingVerbPattern = regexp.MustCompile(`^(\w+)([\s\S]*)$`)

func passiveVoice(text string) string {
	m := leadingVerbPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return text + " should be done."
	}
	verb, rest := m[1], strings.TrimSpace(m[2])
	if rest == "" {
		return text + " should be performed."
	}
	return rest + " should be " + strings.ToLower(verb) + "ed."
}

var nowPattern = regexp.MustCompile(`(?i)\bnow\b`)

func temporalModifiers(text string) string {
	if strings.Contains(strings.ToLower(text), "now") {
		choice := temporalChoices[pickIndex(text, CategoryTemporalModifiers, len(temporalChoices))]
		return nowPattern.ReplaceAllString(text, choice)
	}
	return text + " right away."
}

func negationPositive(text string) string {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "don't") || strings.Contains(lower, "do not") {
		out := strings.ReplaceAll(text, "don't", "avoid")
		return strings.ReplaceAll(out, "do not", "avoid")
	}
	return "Be sure to " + lowerFirst(text)
}

var carefullyPattern = regexp.MustCompile(`(?i)\bcarefully\b`)

func complexityVariation(text string) string {
	if strings.Contains(strings.ToLower(text), "carefully") {
		stripped := strings.TrimSpace(carefullyPattern.ReplaceAllString(text, ""))
		return collapseSpaces(stripped)
	}
	return "Carefully " + lowerFirst(text)
}

// #endregion

// #region fallbacks

// fallback produces a fixed rephrasing for categories whose rule tables find
// no anchor in the text, so mutated output always differs from the baseline.
func fallback(text string, category Category) string {
	switch category {
	case CategorySynonyms:
		return "Please " + lowerFirst(text)
	case CategorySpatialReordering:
		return "In the scene, " + lowerFirst(text)
	case CategoryFormalInformal:
		return "Kindly " + lowerFirst(text)
	case CategoryVerbPhrasing:
		return "Go ahead and " + lowerFirst(text)
	case CategoryObjectDescriptors:
		return text + " as described."
	case CategoryDirectionalLanguage:
		return "From where you are, " + lowerFirst(text)
	}
	return text + " as instructed."
}

// #endregion

// #region helpers

// pickIndex derives a stable choice index from the (text, category) pair.
func pickIndex(text string, category Category, n int) int {
	h := fnv.New64a()
	h.Write([]byte(text))
	h.Write([]byte{'|'})
	h.Write([]byte(category))
	return int(h.Sum64() % uint64(n))
}

func lowerFirst(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

var multiSpace = regexp.MustCompile(`\s+`)

func collapseSpaces(s string) string {
	return multiSpace.ReplaceAllString(s, " ")
}

// #endregion
