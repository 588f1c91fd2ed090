package shapes

import (
	"testing"
	"time"
)

var now = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func TestSpawner_Spawn(t *testing.T) {
	s := NewSpawner(1)
	bounds := Bounds{Width: 600, Height: 400}

	for i := 0; i < 500; i++ {
		shape, ok := s.Spawn(bounds, now)
		if !ok {
			t.Fatal("Spawn() ok = false for valid bounds")
		}
		if shape.Box.X < 0 || shape.Box.X+shape.Box.Width > bounds.Width {
			t.Errorf("shape %d x range [%f, %f] outside width %f", shape.ID, shape.Box.X, shape.Box.X+shape.Box.Width, bounds.Width)
		}
		if shape.Box.Y < 0 || shape.Box.Y+shape.Box.Height > bounds.Height {
			t.Errorf("shape %d y range [%f, %f] outside height %f", shape.ID, shape.Box.Y, shape.Box.Y+shape.Box.Height, bounds.Height)
		}
		if !shape.SpawnedAt.Equal(now) {
			t.Errorf("SpawnedAt = %v, want %v", shape.SpawnedAt, now)
		}
		if shape.Boxless != (shape.Kind == Triangle) {
			t.Errorf("Boxless = %v for kind %q", shape.Boxless, shape.Kind)
		}
	}
}

func TestSpawner_AutoIncrement(t *testing.T) {
	s := NewSpawner(1)
	bounds := Bounds{Width: 600, Height: 400}
	s1, _ := s.Spawn(bounds, now)
	s2, _ := s.Spawn(bounds, now)
	s3, _ := s.Spawn(bounds, now)

	if s1.ID != 1 || s2.ID != 2 || s3.ID != 3 {
		t.Errorf("IDs = %d, %d, %d; want 1, 2, 3", s1.ID, s2.ID, s3.ID)
	}
}

func TestSpawner_InvalidBounds(t *testing.T) {
	s := NewSpawner(1)
	for _, b := range []Bounds{{0, 400}, {600, 0}, {-1, 10}, {}} {
		if _, ok := s.Spawn(b, now); ok {
			t.Errorf("Spawn(%+v) ok = true, want false", b)
		}
	}
}

func TestSpawner_TinyBoundsPinsToOrigin(t *testing.T) {
	s := NewSpawner(7)
	bounds := Bounds{Width: 10, Height: 10}
	for i := 0; i < 50; i++ {
		shape, ok := s.Spawn(bounds, now)
		if !ok {
			t.Fatal("Spawn() ok = false")
		}
		if shape.Box.X != 0 || shape.Box.Y != 0 {
			t.Errorf("oversized shape placed at (%f, %f), want (0, 0)", shape.Box.X, shape.Box.Y)
		}
	}
}

func TestSpawner_CoversCatalog(t *testing.T) {
	s := NewSpawner(42)
	kinds := make(map[Kind]bool)
	tiers := make(map[SizeTier]bool)
	for i := 0; i < 1000; i++ {
		shape, _ := s.Spawn(Bounds{Width: 600, Height: 400}, now)
		kinds[shape.Kind] = true
		tiers[shape.Size] = true
	}
	if len(kinds) != len(Catalog) {
		t.Errorf("saw %d kinds, want %d", len(kinds), len(Catalog))
	}
	if len(tiers) != 3 {
		t.Errorf("saw %d tiers, want 3", len(tiers))
	}
}

func TestSpawner_SameSeedSameSequence(t *testing.T) {
	a := NewSpawner(99)
	b := NewSpawner(99)
	bounds := Bounds{Width: 800, Height: 600}
	for i := 0; i < 20; i++ {
		sa, _ := a.Spawn(bounds, now)
		sb, _ := b.Spawn(bounds, now)
		if sa != sb {
			t.Fatalf("spawn %d differs: %+v vs %+v", i, sa, sb)
		}
	}
}

func TestDimensions(t *testing.T) {
	tests := []struct {
		kind  Kind
		tier  SizeTier
		wantW float64
		wantH float64
	}{
		{Circle, Small, 50, 50},
		{Square, Medium, 75, 75},
		{Rectangle, Small, 75, 50},
		{Rectangle, Large, 150, 100},
		{Hexagon, Medium, 75, 45},
		{Hexagon, Large, 100, 60},
		{Triangle, Large, 100, 100},
		{Diamond, Small, 50, 50},
	}
	for _, tt := range tests {
		w, h := Dimensions(tt.kind, tt.tier)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("Dimensions(%s, %s) = (%v, %v), want (%v, %v)", tt.kind, tt.tier, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestCatalog_AllTiersAllowed(t *testing.T) {
	if len(Catalog) != 6 {
		t.Fatalf("catalog size = %d, want 6", len(Catalog))
	}
	for _, a := range Catalog {
		if len(a.AllowedSizes) != 3 {
			t.Errorf("%s allows %d tiers, want 3", a.Kind, len(a.AllowedSizes))
		}
	}
}

func TestBox_Center(t *testing.T) {
	x, y := Box{X: 10, Y: 20, Width: 50, Height: 30}.Center()
	if x != 35 || y != 35 {
		t.Errorf("Center() = (%v, %v), want (35, 35)", x, y)
	}
}
