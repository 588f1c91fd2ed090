package db

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SessionResult is the final tally written when a session finishes.
type SessionResult struct {
	TotalHits      int
	MissedClicks   int
	MissedShapes   int
	AvgReactionMs  int64
	BestReactionMs *int64
	AccuracyPct    int
	LongestStreak  int
}

func (d *DB) CreateSession(sessionCode, playerID string, durationS int, startedAt time.Time) (string, error) {
	id := uuid.New().String()
	_, err := d.Exec(`
		INSERT INTO sessions (id, session_code, player_id, duration_s, started_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, sessionCode, playerID, durationS, startedAt.UTC())
	if err != nil {
		return "", fmt.Errorf("creating session: %w", err)
	}
	return id, nil
}

func (d *DB) EndSession(id string, endedAt time.Time, r SessionResult) error {
	_, err := d.Exec(`
		UPDATE sessions SET
			ended_at = ?, total_hits = ?, missed_clicks = ?, missed_shapes = ?,
			avg_reaction_ms = ?, best_reaction_ms = ?, accuracy_pct = ?, longest_streak = ?
		WHERE id = ?
	`, endedAt.UTC(), r.TotalHits, r.MissedClicks, r.MissedShapes,
		r.AvgReactionMs, r.BestReactionMs, r.AccuracyPct, r.LongestStreak, id)
	if err != nil {
		return fmt.Errorf("ending session: %w", err)
	}
	return nil
}
