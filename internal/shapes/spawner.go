package shapes

import (
	"math/rand"
	"sync"
	"time"
)

// Spawner picks archetypes, tiers and placements for new shapes.
type Spawner struct {
	mu     sync.Mutex
	rng    *rand.Rand
	nextID int
}

func NewSpawner(seed int64) *Spawner {
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed)),
		nextID: 1,
	}
}

// Spawn returns a new shape placed inside bounds, or false when the play
// area has no usable extent.
func (s *Spawner) Spawn(bounds Bounds, now time.Time) (LiveShape, bool) {
	if !bounds.Valid() {
		return LiveShape{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	arch := Catalog[s.rng.Intn(len(Catalog))]
	tier := arch.AllowedSizes[s.rng.Intn(len(arch.AllowedSizes))]
	w, h := Dimensions(arch.Kind, tier)

	id := s.nextID
	s.nextID++
	return LiveShape{
		ID:        id,
		Kind:      arch.Kind,
		Size:      tier,
		Box:       Box{X: s.coord(bounds.Width - w), Y: s.coord(bounds.Height - h), Width: w, Height: h},
		Boxless:   arch.Kind == Triangle,
		SpawnedAt: now,
	}, true
}

// coord picks uniformly in [0, span]; a negative span collapses to 0.
func (s *Spawner) coord(span float64) float64 {
	if span <= 0 {
		return 0
	}
	return s.rng.Float64() * span
}
