package services

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/brickset-cli/internal/core/domain"
	"github.com/custodia-labs/brickset-cli/internal/core/ports/driven"
	"github.com/custodia-labs/brickset-cli/internal/core/ports/driving"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// pieceLimit is the threshold for AllSetsWithinPieceLimit.
const pieceLimit = 500

// QueryService answers the fixed query catalogue over a set store.
type QueryService struct {
	store driven.SetStore
}

// NewQueryService creates a new query service.
func NewQueryService(store driven.SetStore) *QueryService {
	return &QueryService{store: store}
}

// Sets returns every record in source order.
func (s *QueryService) Sets() []domain.LegoSet {
	return s.store.GetAll()
}

// NamesWithSameFirstAndLastLetter returns the names whose lower-cased
// first letter equals their literal last letter. The last letter is
// compared as-is, so "Ava" matches while "AvA" does not. A one-letter
// name always matches.
func (s *QueryService) NamesWithSameFirstAndLastLetter() []string {
	var names []string
	for _, set := range s.store.GetAll() {
		runes := []rune(set.Name)
		if len(runes) == 0 {
			continue
		}
		if len(runes) == 1 || unicode.ToLower(runes[0]) == runes[len(runes)-1] {
			names = append(names, set.Name)
		}
	}
	return names
}

// NamesStartingWith returns the names matching the prefix, ignoring case.
func (s *QueryService) NamesStartingWith(prefix string) []string {
	prefix = strings.ToLower(prefix)
	var names []string
	for _, set := range s.store.GetAll() {
		if strings.HasPrefix(strings.ToLower(set.Name), prefix) {
			names = append(names, set.Name)
		}
	}
	return names
}

// NumbersWithAtMostTags returns the catalog numbers of sets carrying
// tag information with at most maxTags entries. Sets without tag
// information are excluded rather than counted as zero tags.
func (s *QueryService) NumbersWithAtMostTags(maxTags int) []string {
	var numbers []string
	for _, set := range s.store.GetAll() {
		if set.HasTags() && len(set.Tags) <= maxTags {
			numbers = append(numbers, set.Number)
		}
	}
	return numbers
}

// PackagingSummary returns how many sets use each packaging type.
// Only packaging types present in the dataset appear as keys.
func (s *QueryService) PackagingSummary() map[domain.PackagingType]int {
	summary := make(map[domain.PackagingType]int)
	for _, set := range s.store.GetAll() {
		summary[set.Packaging]++
	}
	return summary
}

// SumOfPieces returns the total piece count across all sets.
// The boolean is false when the dataset is empty.
func (s *QueryService) SumOfPieces() (int, bool) {
	sets := s.store.GetAll()
	if len(sets) == 0 {
		return 0, false
	}
	total := 0
	for _, set := range sets {
		total += set.Pieces
	}
	return total, true
}

// AllSetsWithinPieceLimit reports whether every set has at most 500
// pieces. Vacuously true on an empty dataset.
func (s *QueryService) AllSetsWithinPieceLimit() bool {
	for _, set := range s.store.GetAll() {
		if set.Pieces > pieceLimit {
			return false
		}
	}
	return true
}

// TagsWithoutSubtheme returns the sorted distinct tags of sets that
// have no subtheme but do carry tag information.
func (s *QueryService) TagsWithoutSubtheme() []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, set := range s.store.GetAll() {
		if set.HasSubtheme() || !set.HasTags() {
			continue
		}
		for _, tag := range set.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags
}

// ThemeWithLongestName returns the longest theme name, measured in
// letters. A strictly longer theme replaces the current best, so the
// first-encountered theme wins ties. The boolean is false when the
// dataset is empty.
func (s *QueryService) ThemeWithLongestName() (string, bool) {
	best := ""
	found := false
	for _, set := range s.store.GetAll() {
		if !found || utf8.RuneCountInString(set.Theme) > utf8.RuneCountInString(best) {
			best = set.Theme
			found = true
		}
	}
	return best, found
}

// SetsPerTheme returns how many sets belong to each theme. Themes are
// grouped by exact string, with no case folding.
func (s *QueryService) SetsPerTheme() map[string]int {
	counts := make(map[string]int)
	for _, set := range s.store.GetAll() {
		counts[set.Theme]++
	}
	return counts
}

// SubthemesByTheme returns, for every theme, its sorted distinct
// subthemes. Sets without a subtheme still register their theme, so a
// theme whose sets all lack a subtheme maps to an empty slice.
func (s *QueryService) SubthemesByTheme() map[string][]string {
	grouped := make(map[string]map[string]struct{})
	for _, set := range s.store.GetAll() {
		if _, ok := grouped[set.Theme]; !ok {
			grouped[set.Theme] = make(map[string]struct{})
		}
		if set.HasSubtheme() {
			grouped[set.Theme][*set.Subtheme] = struct{}{}
		}
	}

	result := make(map[string][]string, len(grouped))
	for theme, subs := range grouped {
		sorted := make([]string, 0, len(subs))
		for sub := range subs {
			sorted = append(sorted, sub)
		}
		sort.Strings(sorted)
		result[theme] = sorted
	}
	return result
}
