package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"shapetrainer/internal/players"
	"shapetrainer/internal/session"
	"shapetrainer/internal/shapes"

	"github.com/google/uuid"
)

type createSessionResponse struct {
	Code     string           `json:"code"`
	PlayerID string           `json:"playerId"`
	State    session.Snapshot `json:"state"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	log.Println("[Handle:CreateSession] Request Received")

	id := playerID(r)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.New().String()
	}
	player := s.Players.Get(id)
	if player == nil {
		player = s.Players.Add(id, "")
		s.archivePlayer(player)
	}

	sess, err := s.Sessions.Create(id)
	if err != nil {
		log.Println(err)
		writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	setCookie(w, cookieSession, sess.Code)
	setCookie(w, cookiePlayer, id)

	log.Printf("[Handle:CreateSession] Created session %s\n", sess.Code)
	writeJSON(w, http.StatusCreated, createSessionResponse{
		Code:     sess.Code,
		PlayerID: id,
		State:    sess.Engine.Snapshot(),
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	log.Println("[Handle:Register] Request Received")

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid body")
		return
	}

	id := playerID(r)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.New().String()
		setCookie(w, cookiePlayer, id)
	}

	player := s.Players.Rename(id, body.Name)
	if player == nil {
		player = s.Players.Add(id, body.Name)
	}
	s.archivePlayer(player)

	writeJSON(w, http.StatusOK, player)
}

func (s *Server) archivePlayer(p *players.Player) {
	if s.DB == nil {
		return
	}
	if err := s.DB.UpsertPlayer(p.ID, p.Name, p.Color); err != nil {
		log.Printf("[DB] UpsertPlayer error: %v\n", err)
	}
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	sess := s.getSession(r)
	if sess == nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}
	sess.Engine.Start()
	writeJSON(w, http.StatusOK, sess.Engine.Snapshot())
}

func (s *Server) handleStop(w http.ResponseWriter, r *http.Request) {
	sess := s.getSession(r)
	if sess == nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}
	sess.Engine.Stop()
	writeJSON(w, http.StatusOK, sess.Engine.Snapshot())
}

type shapeClick struct {
	ShapeID *int `json:"shapeId"`
}

// handleShapeClick takes the click time from the server clock so reaction
// times never depend on the client. A click naming a shape that is no longer
// live is ignored.
func (s *Server) handleShapeClick(w http.ResponseWriter, r *http.Request) {
	sess := s.getSession(r)
	if sess == nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}
	var req shapeClick
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	if req.ShapeID != nil {
		sess.Engine.OnShapeClickID(*req.ShapeID, s.Clock.Now())
	} else {
		sess.Engine.OnShapeClick(s.Clock.Now())
	}
	writeJSON(w, http.StatusOK, sess.Engine.Snapshot())
}

type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (s *Server) handleAreaClick(w http.ResponseWriter, r *http.Request) {
	sess := s.getSession(r)
	if sess == nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}
	var p point
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid click position")
		return
	}
	sess.Engine.OnAreaClick(p.X, p.Y)
	writeJSON(w, http.StatusOK, sess.Engine.Snapshot())
}

func (s *Server) handleBounds(w http.ResponseWriter, r *http.Request) {
	sess := s.getSession(r)
	if sess == nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}
	var b shapes.Bounds
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid bounds")
		return
	}
	if b.Width < 0 || b.Height < 0 {
		writeError(w, http.StatusBadRequest, "Bounds must not be negative")
		return
	}
	sess.Engine.SetBounds(b)
	writeJSON(w, http.StatusOK, sess.Engine.Snapshot())
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	sess := s.getSession(r)
	if sess == nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}
	writeJSON(w, http.StatusOK, sess.Engine.Snapshot())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.DB != nil {
		if err := s.DB.Ping(); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "db_error", "error": err.Error()})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
