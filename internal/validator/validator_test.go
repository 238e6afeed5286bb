package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/brickset-cli/internal/core/domain"
)

func validSet() domain.LegoSet {
	return domain.LegoSet{
		Number:    "60228-1",
		Name:      "Deep Space Rocket",
		Theme:     "City",
		Pieces:    837,
		Packaging: domain.PackagingBox,
	}
}

func TestValidate_ValidRecord(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(validSet()))
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	v := New()

	tests := []struct {
		name   string
		mutate func(*domain.LegoSet)
		field  string
	}{
		{"missing number", func(s *domain.LegoSet) { s.Number = "" }, "number"},
		{"missing name", func(s *domain.LegoSet) { s.Name = "" }, "name"},
		{"missing theme", func(s *domain.LegoSet) { s.Theme = "" }, "theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := validSet()
			tt.mutate(&set)

			err := v.Validate(set)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field+" is required")
		})
	}
}

func TestValidate_NegativePieces(t *testing.T) {
	v := New()
	set := validSet()
	set.Pieces = -1

	err := v.Validate(set)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pieces")
}

func TestValidate_UnknownPackaging(t *testing.T) {
	v := New()
	set := validSet()
	set.Packaging = "crate"

	err := v.Validate(set)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "packagingType must be a known packaging type")
}

func TestValidate_OptionalFieldsMayBeAbsent(t *testing.T) {
	v := New()
	set := validSet()
	set.Subtheme = nil
	set.Tags = nil

	assert.NoError(t, v.Validate(set))
}
