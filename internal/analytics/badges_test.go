package analytics

import (
	"shapetrainer/internal/stats"
	"testing"
)

func TestEvaluateSessionBadges_Thresholds(t *testing.T) {
	tests := []struct {
		name    string
		summary SessionSummary
		badge   BadgeID
		want    bool
	}{
		{"sharpshooter at 10 perfect", SessionSummary{PerfectHits: 10, TotalHits: 10, AvgReactionMs: 500}, BadgeSharpshooter, true},
		{"no sharpshooter at 9 perfect", SessionSummary{PerfectHits: 9, TotalHits: 10, AvgReactionMs: 500}, BadgeSharpshooter, false},
		{"speed demon under 300ms", SessionSummary{TotalHits: 10, AvgReactionMs: 250}, BadgeSpeedDemon, true},
		{"no speed demon at 300ms", SessionSummary{TotalHits: 10, AvgReactionMs: 300}, BadgeSpeedDemon, false},
		{"no speed demon with few hits", SessionSummary{TotalHits: 9, AvgReactionMs: 150}, BadgeSpeedDemon, false},
		{"unstoppable at 25 streak", SessionSummary{LongestStreak: 25}, BadgeUnstoppable, true},
		{"no unstoppable at 24 streak", SessionSummary{LongestStreak: 24}, BadgeUnstoppable, false},
		{"centurion at 100 hits", SessionSummary{TotalHits: 100, AvgReactionMs: 500, MissedClicks: 1}, BadgeCenturion, true},
		{"no centurion at 99 hits", SessionSummary{TotalHits: 99, AvgReactionMs: 500}, BadgeCenturion, false},
		{"perfectionist with no misses", SessionSummary{TotalHits: 20, AvgReactionMs: 500}, BadgePerfectionist, true},
		{"no perfectionist with a missed shape", SessionSummary{TotalHits: 20, MissedShapes: 1, AvgReactionMs: 500}, BadgePerfectionist, false},
		{"no perfectionist with few hits", SessionSummary{TotalHits: 19, AvgReactionMs: 500}, BadgePerfectionist, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hasBadge(EvaluateSessionBadges(tt.summary), tt.badge)
			if got != tt.want {
				t.Errorf("has %s = %v, want %v", tt.badge, got, tt.want)
			}
		})
	}
}

func TestEvaluateSessionBadges_NoBadges(t *testing.T) {
	badges := EvaluateSessionBadges(SessionSummary{
		TotalHits:     5,
		PerfectHits:   1,
		MissedClicks:  3,
		AvgReactionMs: 500,
		LongestStreak: 3,
	})
	if len(badges) != 0 {
		t.Errorf("should earn no badges, got %d", len(badges))
	}
}

func TestEvaluateSessionBadges_MultipleBadges(t *testing.T) {
	badges := EvaluateSessionBadges(SessionSummary{
		TotalHits:     120,
		PerfectHits:   40,
		AvgReactionMs: 220,
		LongestStreak: 120,
	})
	// Sharpshooter, SpeedDemon, Unstoppable, Centurion, Perfectionist
	if len(badges) != 5 {
		t.Errorf("should earn 5 badges, got %d", len(badges))
	}
}

func TestEvaluateSessionBadges_EmptySession(t *testing.T) {
	if badges := EvaluateSessionBadges(SessionSummary{}); len(badges) != 0 {
		t.Errorf("empty session earned %d badges", len(badges))
	}
}

func TestSummaryFromStats(t *testing.T) {
	s := stats.SessionStats{
		TotalHits:     12,
		PerfectHits:   4,
		MissedClicks:  1,
		MissedShapes:  2,
		AvgReactionMs: 310,
		AccuracyPct:   80,
		LongestStreak: 6,
	}
	got := SummaryFromStats("sess", "player", s)
	if got.SessionID != "sess" || got.PlayerID != "player" {
		t.Errorf("ids = %q/%q", got.SessionID, got.PlayerID)
	}
	if got.TotalHits != 12 || got.PerfectHits != 4 || got.LongestStreak != 6 || got.AccuracyPct != 80 {
		t.Errorf("summary = %+v", got)
	}
}

func TestEvaluateLifetimeBadges_Veteran(t *testing.T) {
	badges := EvaluateLifetimeBadges(PlayerLifetimeStats{SessionsPlayed: 10})
	if !hasBadge(badges, BadgeVeteran) {
		t.Error("should earn Veteran with 10 sessions")
	}
}

func TestEvaluateLifetimeBadges_NoVeteran(t *testing.T) {
	badges := EvaluateLifetimeBadges(PlayerLifetimeStats{SessionsPlayed: 9})
	if hasBadge(badges, BadgeVeteran) {
		t.Error("should not earn Veteran with 9 sessions")
	}
}

func hasBadge(badges []Badge, id BadgeID) bool {
	for _, b := range badges {
		if b.ID == id {
			return true
		}
	}
	return false
}
