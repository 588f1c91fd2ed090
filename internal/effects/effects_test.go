package effects

import (
	"shapetrainer/internal/stats"
	"testing"
	"time"
)

var at = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func TestNewHit(t *testing.T) {
	tests := []struct {
		ms        int64
		wantLabel string
		wantQ     stats.Quality
	}{
		{150, "PERFECT! 150ms", stats.Perfect},
		{200, "FAST! 200ms", stats.Fast},
		{399, "FAST! 399ms", stats.Fast},
		{400, "GOOD 400ms", stats.Normal},
	}
	for _, tt := range tests {
		e := NewHit(1, 10, 20, tt.ms, at, DefaultTTL)
		if e.Label != tt.wantLabel {
			t.Errorf("label(%d) = %q, want %q", tt.ms, e.Label, tt.wantLabel)
		}
		if e.Quality != tt.wantQ {
			t.Errorf("quality(%d) = %q, want %q", tt.ms, e.Quality, tt.wantQ)
		}
		if e.Kind != KindHit {
			t.Errorf("kind = %q, want %q", e.Kind, KindHit)
		}
		if e.Color != QualityColor(tt.wantQ) {
			t.Errorf("color = %q, want %q", e.Color, QualityColor(tt.wantQ))
		}
	}
}

func TestNewMiss(t *testing.T) {
	e := NewMiss(3, 42, 24, at, DefaultTTL)
	if e.Kind != KindMiss || e.Label != "MISS!" || e.Quality != "" {
		t.Errorf("miss effect = %+v", e)
	}
	if e.X != 42 || e.Y != 24 {
		t.Errorf("position = (%v, %v), want (42, 24)", e.X, e.Y)
	}
}

func TestEffect_Expired(t *testing.T) {
	e := NewMiss(1, 0, 0, at, DefaultTTL)
	if e.Expired(at.Add(1999 * time.Millisecond)) {
		t.Error("effect expired before ttl")
	}
	if !e.Expired(at.Add(2000 * time.Millisecond)) {
		t.Error("effect not expired at ttl")
	}
}
