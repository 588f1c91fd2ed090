package db

import (
	"fmt"
	"time"
)

type ReactionEvent struct {
	SessionID  string
	PlayerID   string
	ShapeID    int
	ShapeKind  string
	SizeTier   string
	ReactionMs int64
	Quality    string
	ClickedAt  time.Time
}

const insertReaction = `
	INSERT INTO reactions (session_id, player_id, shape_id, shape_kind, size_tier, reaction_ms, quality, clicked_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

func (d *DB) BatchRecordReactions(events []ReactionEvent) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(d.rebind(insertReaction))
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, ev := range events {
		if _, err := stmt.Exec(ev.SessionID, ev.PlayerID, ev.ShapeID, ev.ShapeKind, ev.SizeTier, ev.ReactionMs, ev.Quality, ev.ClickedAt.UTC()); err != nil {
			return fmt.Errorf("recording reaction in batch: %w", err)
		}
	}

	return tx.Commit()
}
