package server

import (
	"encoding/json"
	"net/http"
	"shapetrainer/internal/clock"
	"shapetrainer/internal/db"
	"shapetrainer/internal/metrics"
	"shapetrainer/internal/players"
	"shapetrainer/internal/sessions"
	"strings"
)

const (
	cookieSession = "session_code"
	cookiePlayer  = "player_id"
)

type Server struct {
	Sessions       *sessions.Store
	Players        *players.Store
	Clock          clock.Scheduler
	Metrics        *metrics.Metrics
	DB             *db.DB                // nil if no database configured
	ReactionBuffer chan db.ReactionEvent // nil if no database configured
}

// NewServer wires the event hooks into store. Sessions created earlier are
// not observed.
func NewServer(store *sessions.Store, sched clock.Scheduler) *Server {
	s := &Server{
		Sessions: store,
		Players:  players.NewStore(),
		Clock:    sched,
		Metrics:  metrics.New(),
	}
	s.Metrics.TrackSessions(func() int { return len(store.List()) })
	s.Metrics.TrackDropped(func() int {
		n := 0
		for _, sess := range store.List() {
			n += sess.Bus.Dropped()
		}
		return n
	})
	store.OnEvent(s.handleSessionEvent)
	return s
}

// getSession resolves the current session from the session_code cookie,
// falling back to a ?code= query parameter.
func (s *Server) getSession(r *http.Request) *sessions.Session {
	code := r.URL.Query().Get("code")
	if cookie, err := r.Cookie(cookieSession); err == nil {
		code = cookie.Value
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if !sessions.ValidCode(code) {
		return nil
	}
	sess := s.Sessions.Get(code)
	if sess != nil {
		sess.Touch(s.Clock.Now())
	}
	return sess
}

func playerID(r *http.Request) string {
	if cookie, err := r.Cookie(cookiePlayer); err == nil {
		return cookie.Value
	}
	return ""
}

func setCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
