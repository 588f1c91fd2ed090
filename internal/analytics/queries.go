package analytics

import (
	"fmt"
	"shapetrainer/internal/db"
)

type Queries struct {
	DB *db.DB
}

func NewQueries(database *db.DB) *Queries {
	return &Queries{DB: database}
}

func (q *Queries) GetPlayerLifetimeStats(playerID string) (*PlayerLifetimeStats, error) {
	stats := &PlayerLifetimeStats{
		PlayerID: playerID,
	}

	player, err := q.DB.GetPlayer(playerID)
	if err != nil {
		return nil, err
	}
	stats.PlayerName = player.Name
	stats.PlayerColor = player.Color

	err = q.DB.QueryRow(`
		SELECT
			COUNT(*) as sessions_played,
			COALESCE(SUM(total_hits), 0) as total_hits,
			COALESCE(MAX(longest_streak), 0) as longest_streak
		FROM sessions
		WHERE player_id = ? AND ended_at IS NOT NULL
	`, playerID).Scan(&stats.SessionsPlayed, &stats.TotalHits, &stats.LongestStreak)
	if err != nil {
		return nil, fmt.Errorf("getting lifetime stats: %w", err)
	}

	err = q.DB.QueryRow(`
		SELECT
			COALESCE(MIN(reaction_ms), 0) as best_reaction,
			COALESCE(CAST(ROUND(AVG(reaction_ms)) AS INTEGER), 0) as avg_reaction
		FROM reactions
		WHERE player_id = ?
	`, playerID).Scan(&stats.BestReactionMs, &stats.AvgReactionMs)
	if err != nil {
		return nil, fmt.Errorf("getting reaction stats: %w", err)
	}

	badgeIDs, err := q.DB.GetPlayerBadges(playerID)
	if err != nil {
		return nil, err
	}
	for _, id := range badgeIDs {
		if b, ok := AllBadges[BadgeID(id)]; ok {
			stats.Badges = append(stats.Badges, b)
		}
	}

	return stats, nil
}

func (q *Queries) GetLeaderboard(category string, limit int) ([]LeaderboardEntry, error) {
	var query string
	switch category {
	case "hits":
		query = `
			SELECT p.id, p.name, p.color, COALESCE(SUM(s.total_hits), 0) as value
			FROM players p
			JOIN sessions s ON s.player_id = p.id AND s.ended_at IS NOT NULL
			GROUP BY p.id, p.name, p.color
			ORDER BY value DESC
			LIMIT ?`
	case "reaction":
		query = `
			SELECT p.id, p.name, p.color, MIN(r.reaction_ms) as value
			FROM players p
			JOIN reactions r ON r.player_id = p.id
			GROUP BY p.id, p.name, p.color
			ORDER BY value ASC
			LIMIT ?`
	case "streak":
		query = `
			SELECT p.id, p.name, p.color, COALESCE(MAX(s.longest_streak), 0) as value
			FROM players p
			JOIN sessions s ON s.player_id = p.id AND s.ended_at IS NOT NULL
			GROUP BY p.id, p.name, p.color
			ORDER BY value DESC
			LIMIT ?`
	case "perfect":
		query = `
			SELECT p.id, p.name, p.color, SUM(CASE WHEN r.quality = 'perfect' THEN 1 ELSE 0 END) as value
			FROM players p
			JOIN reactions r ON r.player_id = p.id
			GROUP BY p.id, p.name, p.color
			ORDER BY value DESC
			LIMIT ?`
	case "accuracy":
		query = `
			SELECT p.id, p.name, p.color, COALESCE(MAX(s.accuracy_pct), 0) as value
			FROM players p
			JOIN sessions s ON s.player_id = p.id AND s.ended_at IS NOT NULL AND s.total_hits > 0
			GROUP BY p.id, p.name, p.color
			ORDER BY value DESC
			LIMIT ?`
	default:
		return nil, fmt.Errorf("unknown leaderboard category: %s", category)
	}

	rows, err := q.DB.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("getting leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	rank := 1
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.PlayerID, &e.PlayerName, &e.PlayerColor, &e.Value); err != nil {
			return nil, err
		}
		e.Rank = rank
		rank++
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (q *Queries) GetSessionRecap(sessionID string) (*SessionRecap, error) {
	recap := &SessionRecap{SessionID: sessionID}
	s := &recap.Summary
	s.SessionID = sessionID

	err := q.DB.QueryRow(`
		SELECT session_code, player_id, started_at, ended_at,
			total_hits, missed_clicks, missed_shapes, avg_reaction_ms, accuracy_pct, longest_streak
		FROM sessions WHERE id = ?
	`, sessionID).Scan(&recap.SessionCode, &s.PlayerID, &recap.StartedAt, &recap.EndedAt,
		&s.TotalHits, &s.MissedClicks, &s.MissedShapes, &s.AvgReactionMs, &s.AccuracyPct, &s.LongestStreak)
	if err != nil {
		return nil, fmt.Errorf("getting session: %w", err)
	}

	err = q.DB.QueryRow(`
		SELECT COUNT(*) FROM reactions WHERE session_id = ? AND quality = 'perfect'
	`, sessionID).Scan(&s.PerfectHits)
	if err != nil {
		return nil, fmt.Errorf("getting perfect hits: %w", err)
	}

	return recap, nil
}
