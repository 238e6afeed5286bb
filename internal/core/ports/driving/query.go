package driving

import "github.com/custodia-labs/brickset-cli/internal/core/domain"

// QueryService exposes the fixed query catalogue over the loaded
// dataset. Every method is a pure function of the dataset: no method
// mutates state, fails, or depends on a previous call, and all are
// well-defined on an empty dataset.
type QueryService interface {
	// Sets returns every record in source order.
	Sets() []domain.LegoSet

	// NamesWithSameFirstAndLastLetter returns the names whose
	// lower-cased first letter equals their literal last letter.
	NamesWithSameFirstAndLastLetter() []string

	// NamesStartingWith returns the names matching the prefix,
	// ignoring case.
	NamesStartingWith(prefix string) []string

	// NumbersWithAtMostTags returns the catalog numbers of sets that
	// carry tag information with at most maxTags entries. Sets without
	// tag information are excluded.
	NumbersWithAtMostTags(maxTags int) []string

	// PackagingSummary returns how many sets use each packaging type.
	PackagingSummary() map[domain.PackagingType]int

	// SumOfPieces returns the total piece count across all sets.
	// The boolean is false when the dataset is empty.
	SumOfPieces() (int, bool)

	// AllSetsWithinPieceLimit reports whether every set has at most
	// 500 pieces. Vacuously true on an empty dataset.
	AllSetsWithinPieceLimit() bool

	// TagsWithoutSubtheme returns the sorted distinct tags of sets
	// that have no subtheme but do carry tag information.
	TagsWithoutSubtheme() []string

	// ThemeWithLongestName returns the longest theme name. On ties,
	// the first-encountered theme wins. The boolean is false when the
	// dataset is empty.
	ThemeWithLongestName() (string, bool)

	// SetsPerTheme returns how many sets belong to each theme.
	SetsPerTheme() map[string]int

	// SubthemesByTheme returns, for every theme, its sorted distinct
	// subthemes. Themes whose sets all lack a subtheme map to an
	// empty (non-nil) slice.
	SubthemesByTheme() map[string][]string
}
