package analytics

import "shapetrainer/internal/stats"

type BadgeID string

const (
	BadgeSharpshooter  BadgeID = "sharpshooter"
	BadgeSpeedDemon    BadgeID = "speed_demon"
	BadgeUnstoppable   BadgeID = "unstoppable"
	BadgeCenturion     BadgeID = "centurion"
	BadgeVeteran       BadgeID = "veteran"
	BadgePerfectionist BadgeID = "perfectionist"
)

type Badge struct {
	ID          BadgeID `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

var AllBadges = map[BadgeID]Badge{
	BadgeSharpshooter:  {ID: BadgeSharpshooter, Name: "Sharpshooter", Description: "10+ perfect hits in a single session", Icon: "🎯"},
	BadgeSpeedDemon:    {ID: BadgeSpeedDemon, Name: "Speed Demon", Description: "Average reaction under 300ms over 10+ hits", Icon: "⚡"},
	BadgeUnstoppable:   {ID: BadgeUnstoppable, Name: "Unstoppable", Description: "25 hits in a row", Icon: "🔥"},
	BadgeCenturion:     {ID: BadgeCenturion, Name: "Centurion", Description: "100+ hits in a single session", Icon: "💯"},
	BadgeVeteran:       {ID: BadgeVeteran, Name: "Veteran", Description: "Finished 10+ sessions", Icon: "🏅"},
	BadgePerfectionist: {ID: BadgePerfectionist, Name: "Perfectionist", Description: "100% accuracy over 20+ hits", Icon: "✨"},
}

// SummaryFromStats builds the badge input from a finished session's stats.
func SummaryFromStats(sessionID, playerID string, s stats.SessionStats) SessionSummary {
	return SessionSummary{
		SessionID:     sessionID,
		PlayerID:      playerID,
		TotalHits:     s.TotalHits,
		PerfectHits:   s.PerfectHits,
		MissedClicks:  s.MissedClicks,
		MissedShapes:  s.MissedShapes,
		AvgReactionMs: s.AvgReactionMs,
		AccuracyPct:   s.AccuracyPct,
		LongestStreak: s.LongestStreak,
	}
}

// EvaluateSessionBadges checks which badges a player earned in a single session.
func EvaluateSessionBadges(s SessionSummary) []Badge {
	var earned []Badge

	if s.PerfectHits >= 10 {
		earned = append(earned, AllBadges[BadgeSharpshooter])
	}

	if s.TotalHits >= 10 && s.AvgReactionMs < 300 {
		earned = append(earned, AllBadges[BadgeSpeedDemon])
	}

	if s.LongestStreak >= 25 {
		earned = append(earned, AllBadges[BadgeUnstoppable])
	}

	if s.TotalHits >= 100 {
		earned = append(earned, AllBadges[BadgeCenturion])
	}

	if s.TotalHits >= 20 && s.MissedClicks == 0 && s.MissedShapes == 0 {
		earned = append(earned, AllBadges[BadgePerfectionist])
	}

	return earned
}

// EvaluateLifetimeBadges checks which badges a player earned across their career.
func EvaluateLifetimeBadges(stats PlayerLifetimeStats) []Badge {
	var earned []Badge

	// Veteran: 10+ finished sessions
	if stats.SessionsPlayed >= 10 {
		earned = append(earned, AllBadges[BadgeVeteran])
	}

	return earned
}
