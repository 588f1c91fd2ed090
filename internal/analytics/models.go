package analytics

import "time"

// SessionSummary is one finished session's tally as fed to badge evaluation.
type SessionSummary struct {
	SessionID     string `json:"sessionId"`
	PlayerID      string `json:"playerId"`
	TotalHits     int    `json:"totalHits"`
	PerfectHits   int    `json:"perfectHits"`
	MissedClicks  int    `json:"missedClicks"`
	MissedShapes  int    `json:"missedShapes"`
	AvgReactionMs int64  `json:"avgReactionMs"`
	AccuracyPct   int    `json:"accuracyPct"`
	LongestStreak int    `json:"longestStreak"`
}

type PlayerLifetimeStats struct {
	PlayerID       string  `json:"playerId"`
	PlayerName     string  `json:"playerName"`
	PlayerColor    string  `json:"playerColor"`
	SessionsPlayed int     `json:"sessionsPlayed"`
	TotalHits      int     `json:"totalHits"`
	BestReactionMs int64   `json:"bestReactionMs"`
	AvgReactionMs  int64   `json:"avgReactionMs"`
	LongestStreak  int     `json:"longestStreak"`
	Badges         []Badge `json:"badges"`
}

type LeaderboardEntry struct {
	PlayerID    string `json:"playerId"`
	PlayerName  string `json:"playerName"`
	PlayerColor string `json:"playerColor"`
	Value       int64  `json:"value"`
	Rank        int    `json:"rank"`
}

type SessionRecap struct {
	SessionID   string         `json:"sessionId"`
	SessionCode string         `json:"sessionCode"`
	StartedAt   *time.Time     `json:"startedAt"`
	EndedAt     *time.Time     `json:"endedAt"`
	Summary     SessionSummary `json:"summary"`
}
