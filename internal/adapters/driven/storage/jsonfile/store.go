// Package jsonfile implements a driven.SetStore backed by a JSON
// resource: either the bundled dataset or a file on disk. The full
// dataset is decoded and validated once at construction.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/custodia-labs/brickset-cli/internal/adapters/driven/storage/jsonfile/dataset"
	"github.com/custodia-labs/brickset-cli/internal/core/domain"
	"github.com/custodia-labs/brickset-cli/internal/core/ports/driven"
	"github.com/custodia-labs/brickset-cli/internal/logger"
	"github.com/custodia-labs/brickset-cli/internal/validator"
)

// Ensure Store implements the interface.
var _ driven.SetStore = (*Store)(nil)

// Store is a JSON-backed, load-once implementation of driven.SetStore.
type Store struct {
	resource string
	sets     []domain.LegoSet
}

// New loads the named resource from fsys. The resource must be a JSON
// array of set records; unknown fields, missing required fields,
// negative piece counts and unknown packaging types are all load
// failures. Returns a *domain.LoadError on any failure.
func New(fsys fs.FS, resource string) (*Store, error) {
	f, err := fsys.Open(resource)
	if err != nil {
		return nil, domain.NewLoadError(resource, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()

	var sets []domain.LegoSet
	if err := dec.Decode(&sets); err != nil {
		return nil, domain.NewLoadError(resource, err)
	}

	v := validator.New()
	for i := range sets {
		if err := v.Validate(sets[i]); err != nil {
			return nil, domain.NewLoadError(resource, fmt.Errorf("record %d (%s): %w", i, sets[i].Number, err))
		}
	}

	logger.Debug("loaded %d sets from %s", len(sets), resource)
	return &Store{resource: resource, sets: sets}, nil
}

// NewFromFile loads a dataset from a file on disk.
func NewFromFile(path string) (*Store, error) {
	dir := filepath.Dir(path)
	return New(os.DirFS(dir), filepath.Base(path))
}

// NewBundled loads the dataset shipped inside the binary.
func NewBundled() (*Store, error) {
	return New(dataset.FS, dataset.DefaultResource)
}

// GetAll returns a deep copy of every record in source order.
func (s *Store) GetAll() []domain.LegoSet {
	return domain.CloneSets(s.sets)
}

// Resource returns the identifier of the loaded resource.
func (s *Store) Resource() string {
	return s.resource
}
