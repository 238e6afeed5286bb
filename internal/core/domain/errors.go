package domain

import "fmt"

// LoadError reports that a dataset resource could not be loaded:
// the resource is missing, unreadable, or does not decode into valid
// records. Construction of a set store is the only fallible step in
// the program; a LoadError is fatal.
type LoadError struct {
	// Resource identifies the dataset (file path or embedded name).
	Resource string
	// Err is the underlying cause.
	Err error
}

// NewLoadError wraps err as a load failure for the named resource.
func NewLoadError(resource string, err error) *LoadError {
	return &LoadError{Resource: resource, Err: err}
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("loading dataset %q: %v", e.Resource, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *LoadError) Unwrap() error {
	return e.Err
}
