package game

// Variant selects one of the two rule sets a room can be created with.
// The guard rules of the two variants are disjoint and never combined.
type Variant int

const (
	// VariantClassic plays the full 108-card deck with skip, reverse,
	// draw-two and wild cards, forced-effect flags and a color-choice
	// sub-phase after a wild.
	VariantClassic Variant = iota
	// VariantNumeric plays a number-only deck (1-9, twice per color).
	// Drawing is mandatory before passing, blocked while a legal play
	// exists, and limited to once per turn.
	VariantNumeric
)

var variantNames = map[Variant]string{
	VariantClassic: "classic",
	VariantNumeric: "numeric",
}

func (v Variant) String() string {
	return variantNames[v]
}
