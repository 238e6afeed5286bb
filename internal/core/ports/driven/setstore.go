package driven

import "github.com/custodia-labs/brickset-cli/internal/core/domain"

// SetStore provides read-only access to a LEGO set dataset.
//
// Implementations load the full dataset exactly once, at construction,
// and fail construction with a *domain.LoadError if the backing
// resource is missing, unreadable, or malformed. After construction
// the dataset never changes; there are no mutating operations.
type SetStore interface {
	// GetAll returns every record in source order. The returned slice
	// is a fresh copy on every call: mutating it never affects the
	// store's internal storage or later calls.
	GetAll() []domain.LegoSet
}
