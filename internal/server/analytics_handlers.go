package server

import (
	"log"
	"net/http"
	"shapetrainer/internal/analytics"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleAnalyticsLeaderboard(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		writeError(w, http.StatusServiceUnavailable, "Analytics requires a database connection")
		return
	}

	category := r.URL.Query().Get("cat")
	if category == "" {
		category = "hits"
	}
	limit := 10
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}

	q := analytics.NewQueries(s.DB)
	entries, err := q.GetLeaderboard(category, limit)
	if err != nil {
		log.Printf("[Analytics] leaderboard error: %v\n", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if entries == nil {
		entries = []analytics.LeaderboardEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleAnalyticsPlayer(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		writeError(w, http.StatusServiceUnavailable, "Analytics requires a database connection")
		return
	}

	q := analytics.NewQueries(s.DB)
	stats, err := q.GetPlayerLifetimeStats(chi.URLParam(r, "id"))
	if err != nil {
		log.Printf("[Analytics] player stats error: %v\n", err)
		writeError(w, http.StatusNotFound, "Player not found")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleAnalyticsSession(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		writeError(w, http.StatusServiceUnavailable, "Analytics requires a database connection")
		return
	}

	q := analytics.NewQueries(s.DB)
	recap, err := q.GetSessionRecap(chi.URLParam(r, "id"))
	if err != nil {
		log.Printf("[Analytics] session recap error: %v\n", err)
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}
	writeJSON(w, http.StatusOK, recap)
}
