package domain

// LegoSet is one record of the brickset dataset. Records are loaded
// once at startup and never mutated afterwards.
type LegoSet struct {
	// Number is the unique catalog number (e.g., "60228-1").
	Number string `json:"number" validate:"required"`

	// Name is the human-readable display name.
	Name string `json:"name" validate:"required"`

	// Theme is the top-level classification label.
	Theme string `json:"theme" validate:"required"`

	// Subtheme refines the theme. Nil means the set has no subtheme,
	// which is distinct from an empty string.
	Subtheme *string `json:"subtheme"`

	// Tags are free-text labels. Nil means the record carries no tag
	// information at all, which is distinct from an empty list.
	Tags []string `json:"tags"`

	// Pieces is the piece count.
	Pieces int `json:"pieces" validate:"gte=0"`

	// Packaging describes how the set is packaged.
	Packaging PackagingType `json:"packagingType" validate:"packaging"`
}

// Clone returns a deep copy of the record. The copy shares no storage
// with the original: Tags gets its own backing array and Subtheme its
// own pointer, so writes through one never reach the other.
func (s LegoSet) Clone() LegoSet {
	out := s
	if s.Subtheme != nil {
		sub := *s.Subtheme
		out.Subtheme = &sub
	}
	if s.Tags != nil {
		out.Tags = make([]string, len(s.Tags))
		copy(out.Tags, s.Tags)
	}
	return out
}

// CloneSets deep-copies a record slice. Set stores use it so the
// views they hand out cannot mutate their internal storage.
func CloneSets(sets []LegoSet) []LegoSet {
	out := make([]LegoSet, len(sets))
	for i := range sets {
		out[i] = sets[i].Clone()
	}
	return out
}

// HasSubtheme reports whether the record carries a subtheme.
func (s *LegoSet) HasSubtheme() bool {
	return s.Subtheme != nil
}

// HasTags reports whether the record carries tag information.
// A present-but-empty tag list still counts as having tags.
func (s *LegoSet) HasTags() bool {
	return s.Tags != nil
}
