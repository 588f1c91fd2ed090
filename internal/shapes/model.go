package shapes

import "time"

type Kind string

const (
	Circle    = Kind("circle")
	Square    = Kind("square")
	Rectangle = Kind("rectangle")
	Triangle  = Kind("triangle")
	Diamond   = Kind("diamond")
	Hexagon   = Kind("hexagon")
)

type SizeTier string

const (
	Small  = SizeTier("small")
	Medium = SizeTier("medium")
	Large  = SizeTier("large")
)

// Box is an axis-aligned placement in play-area units.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"w"`
	Height float64 `json:"h"`
}

// Center returns the middle of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// Bounds is the extent of the play area.
type Bounds struct {
	Width  float64 `json:"w"`
	Height float64 `json:"h"`
}

func (b Bounds) Valid() bool {
	return b.Width > 0 && b.Height > 0
}

// LiveShape is the single clickable shape of a session. Values are never
// mutated after the spawner hands them out.
type LiveShape struct {
	ID        int       `json:"id"`
	Kind      Kind      `json:"kind"`
	Size      SizeTier  `json:"size"`
	Box       Box       `json:"box"`
	Boxless   bool      `json:"boxless,omitempty"`
	SpawnedAt time.Time `json:"spawnedAt"`
}
