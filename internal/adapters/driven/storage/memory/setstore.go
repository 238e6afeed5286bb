package memory

import (
	"github.com/custodia-labs/brickset-cli/internal/core/domain"
	"github.com/custodia-labs/brickset-cli/internal/core/ports/driven"
)

// Ensure SetStore implements the interface.
var _ driven.SetStore = (*SetStore)(nil)

// SetStore is an in-memory implementation of driven.SetStore,
// seeded directly from a slice. Used for tests and fixtures.
type SetStore struct {
	sets []domain.LegoSet
}

// NewSetStore creates a set store holding the given records.
// The records are deep-copied, so later changes to the seed slice or
// its tag storage do not leak in.
func NewSetStore(sets ...domain.LegoSet) *SetStore {
	return &SetStore{sets: domain.CloneSets(sets)}
}

// GetAll returns a deep copy of every record in seed order.
func (s *SetStore) GetAll() []domain.LegoSet {
	return domain.CloneSets(s.sets)
}
