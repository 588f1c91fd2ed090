package server

import (
	"log"
	"shapetrainer/internal/analytics"
	"shapetrainer/internal/db"
	"shapetrainer/internal/events"
	"shapetrainer/internal/session"
	"shapetrainer/internal/sessions"
)

// handleSessionEvent runs on the session's dispatch goroutine, once per event
// and in order.
func (s *Server) handleSessionEvent(sess *sessions.Session, ev events.Event) {
	s.Metrics.Observe(ev)

	snap := sess.Engine.Snapshot()
	sess.Broadcaster.BroadcastJSON("state", snap)
	sess.Hub.Broadcast(stateMessage(snap))

	if s.DB != nil {
		s.archiveEvent(sess, ev)
	}
}

func (s *Server) archiveEvent(sess *sessions.Session, ev events.Event) {
	switch ev.Kind {
	case events.KindPhase:
		switch session.Phase(ev.Phase) {
		case session.PhasePlaying:
			id, err := s.DB.CreateSession(sess.Code, sess.PlayerID, sess.Engine.Config().SessionDuration, ev.At)
			if err != nil {
				log.Printf("[DB] CreateSession error: %v\n", err)
				return
			}
			sess.SetArchiveID(id)
		case session.PhaseFinished:
			s.finishArchive(sess, ev)
		case session.PhaseIdle:
			// Stopped runs stay open in the archive and earn nothing.
			sess.SetArchiveID("")
		}
	case events.KindHit:
		id := sess.ArchiveID()
		if id == "" || s.ReactionBuffer == nil {
			return
		}
		select {
		case s.ReactionBuffer <- db.ReactionEvent{
			SessionID:  id,
			PlayerID:   sess.PlayerID,
			ShapeID:    ev.ShapeID,
			ShapeKind:  ev.ShapeKind,
			SizeTier:   ev.SizeTier,
			ReactionMs: ev.ReactionMs,
			Quality:    string(ev.Quality),
			ClickedAt:  ev.At,
		}:
		default:
			log.Println("[DB] Reaction buffer full, dropping event")
		}
	}
}

func (s *Server) finishArchive(sess *sessions.Session, ev events.Event) {
	id := sess.ArchiveID()
	if id == "" || ev.Stats == nil {
		return
	}
	sess.SetArchiveID("")
	st := *ev.Stats

	err := s.DB.EndSession(id, ev.At, db.SessionResult{
		TotalHits:      st.TotalHits,
		MissedClicks:   st.MissedClicks,
		MissedShapes:   st.MissedShapes,
		AvgReactionMs:  st.AvgReactionMs,
		BestReactionMs: st.BestReactionMs,
		AccuracyPct:    st.AccuracyPct,
		LongestStreak:  st.LongestStreak,
	})
	if err != nil {
		log.Printf("[DB] EndSession error: %v\n", err)
		return
	}

	for _, b := range analytics.EvaluateSessionBadges(analytics.SummaryFromStats(id, sess.PlayerID, st)) {
		sID := id
		if err := s.DB.AwardBadge(sess.PlayerID, string(b.ID), &sID); err != nil {
			log.Printf("[DB] AwardBadge error: %v\n", err)
		}
	}

	q := analytics.NewQueries(s.DB)
	lifeStats, err := q.GetPlayerLifetimeStats(sess.PlayerID)
	if err != nil {
		log.Printf("[DB] GetPlayerLifetimeStats error: %v\n", err)
		return
	}
	for _, b := range analytics.EvaluateLifetimeBadges(*lifeStats) {
		if err := s.DB.AwardBadge(sess.PlayerID, string(b.ID), nil); err != nil {
			log.Printf("[DB] AwardBadge error: %v\n", err)
		}
	}
}
