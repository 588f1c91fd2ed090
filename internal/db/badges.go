package db

import (
	"fmt"
	"time"
)

func (d *DB) AwardBadge(playerID, badgeID string, sessionID *string) error {
	_, err := d.Exec(`
		INSERT INTO player_badges (player_id, badge_id, session_id, awarded_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (player_id, badge_id) DO NOTHING
	`, playerID, badgeID, sessionID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("awarding badge: %w", err)
	}
	return nil
}

func (d *DB) GetPlayerBadges(playerID string) ([]string, error) {
	rows, err := d.Query(`
		SELECT badge_id FROM player_badges WHERE player_id = ? ORDER BY awarded_at
	`, playerID)
	if err != nil {
		return nil, fmt.Errorf("getting badges: %w", err)
	}
	defer rows.Close()

	var badges []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		badges = append(badges, id)
	}
	return badges, rows.Err()
}
