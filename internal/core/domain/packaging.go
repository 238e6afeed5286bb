package domain

import "fmt"

// PackagingType describes how a LEGO set is packaged.
// The value set mirrors the brickset vocabulary and is closed:
// datasets using any other value fail to load.
type PackagingType string

const (
	// PackagingNone means the set ships without packaging.
	PackagingNone PackagingType = "none"
	// PackagingBox is a standard cardboard box.
	PackagingBox PackagingType = "box"
	// PackagingPolybag is a sealed plastic bag.
	PackagingPolybag PackagingType = "polybag"
	// PackagingPlasticBox is a reusable plastic box.
	PackagingPlasticBox PackagingType = "plastic box"
	// PackagingFoilPack is a sealed foil pack.
	PackagingFoilPack PackagingType = "foil pack"
	// PackagingTub is a plastic tub.
	PackagingTub PackagingType = "tub"
	// PackagingCanister is a cylindrical canister.
	PackagingCanister PackagingType = "canister"
	// PackagingBlisterPack is a carded blister pack.
	PackagingBlisterPack PackagingType = "blister pack"
	// PackagingShrinkWrapped means shrink-wrapped without a box.
	PackagingShrinkWrapped PackagingType = "shrink-wrapped"
	// PackagingOther covers packaging outside the named kinds.
	PackagingOther PackagingType = "other"
)

// AllPackagingTypes lists every valid packaging type.
func AllPackagingTypes() []PackagingType {
	return []PackagingType{
		PackagingNone,
		PackagingBox,
		PackagingPolybag,
		PackagingPlasticBox,
		PackagingFoilPack,
		PackagingTub,
		PackagingCanister,
		PackagingBlisterPack,
		PackagingShrinkWrapped,
		PackagingOther,
	}
}

// ParsePackagingType converts a string to a PackagingType.
// Returns an error for values outside the closed set.
func ParsePackagingType(s string) (PackagingType, error) {
	p := PackagingType(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown packaging type %q", s)
	}
	return p, nil
}

// Valid reports whether the value belongs to the closed set.
func (p PackagingType) Valid() bool {
	switch p {
	case PackagingNone, PackagingBox, PackagingPolybag, PackagingPlasticBox,
		PackagingFoilPack, PackagingTub, PackagingCanister,
		PackagingBlisterPack, PackagingShrinkWrapped, PackagingOther:
		return true
	}
	return false
}

// String returns the string representation.
func (p PackagingType) String() string {
	return string(p)
}
