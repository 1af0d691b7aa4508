package mutation

// #region imports
import "errors"

// #endregion

// #region drift-error

// ErrSemanticDrift reports that an opted-in validator judged a mutation to
// have changed the meaning of the baseline instruction.
var ErrSemanticDrift = errors.New("mutation semantic drift")

// #endregion

// #region validator

// Validator is an external semantic-equivalence check. It returns a non-nil
// error when mutated no longer means the same as original.
type Validator func(original, mutated string, category Category) error

// WithValidator enables the validator for the listed categories only.
// Validation is off by default; categories not listed are never checked.
func (g *Generator) WithValidator(v Validator, categories ...Category) *Generator {
	g.validator = v
	for _, c := range categories {
		g.validated[c] = true
	}
	return g
}

// #endregion
