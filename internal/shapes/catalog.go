package shapes

// Archetype describes a shape kind and the size tiers it may spawn with.
type Archetype struct {
	Kind         Kind
	AllowedSizes []SizeTier
}

var allTiers = []SizeTier{Small, Medium, Large}

// Catalog is the fixed set of archetypes. Treat as read-only.
var Catalog = []Archetype{
	{Kind: Circle, AllowedSizes: allTiers},
	{Kind: Square, AllowedSizes: allTiers},
	{Kind: Rectangle, AllowedSizes: allTiers},
	{Kind: Triangle, AllowedSizes: allTiers},
	{Kind: Diamond, AllowedSizes: allTiers},
	{Kind: Hexagon, AllowedSizes: allTiers},
}

var baseSizes = map[SizeTier]float64{
	Small:  50,
	Medium: 75,
	Large:  100,
}

// BaseDimensions returns the untransformed width and height of a tier.
func BaseDimensions(tier SizeTier) (float64, float64) {
	side := baseSizes[tier]
	return side, side
}

// Dimensions applies the kind-specific adjustment to the tier's base size.
func Dimensions(kind Kind, tier SizeTier) (float64, float64) {
	w, h := BaseDimensions(tier)
	switch kind {
	case Rectangle:
		w *= 1.5
	case Hexagon:
		h *= 0.6
	}
	return w, h
}
