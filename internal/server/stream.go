package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"shapetrainer/internal/session"
	"shapetrainer/internal/sessions"
	"shapetrainer/internal/shapes"
	"shapetrainer/internal/wshub"
	"strings"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	sess := s.getSession(r)
	if sess == nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	msgChan := sess.Broadcaster.Subscribe()
	defer sess.Broadcaster.Unsubscribe(msgChan)

	if data, err := json.Marshal(sess.Engine.Snapshot()); err == nil {
		writeSSE(w, "state", string(data))
	}
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg, ok := <-msgChan:
			if !ok {
				return
			}
			writeSSE(w, msg.Event, msg.Data)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, event, data string) {
	fmt.Fprintf(w, "event: %s\n", event)
	for _, line := range strings.Split(data, "\n") {
		fmt.Fprintf(w, "data: %s\n", line)
	}
	fmt.Fprint(w, "\n")
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sess := s.getSession(r)
	if sess == nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		log.Printf("[WS] Accept error: %v\n", err)
		return
	}
	defer conn.CloseNow()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	client := &wshub.Client{
		ID:   uuid.New().String(),
		Conn: conn,
		Send: make(chan []byte, 16),
	}
	sess.Hub.Register(client)
	defer sess.Hub.Unregister(client.ID)
	log.Printf("[WS] Client %s joined session %s (%d connected)\n", client.ID, sess.Code, sess.Hub.Count())

	if data, err := json.Marshal(stateMessage(sess.Engine.Snapshot())); err == nil {
		client.Send <- data
	}
	go func() {
		client.WritePump(ctx)
		cancel()
	}()

	err = client.ReadPump(ctx, func(msg wshub.ClientMessage) {
		s.applyClientMessage(sess, client, msg)
	})
	if err != nil && websocket.CloseStatus(err) != websocket.StatusNormalClosure && !errors.Is(err, context.Canceled) {
		log.Printf("[WS] Client %s read error: %v\n", client.ID, err)
	}
}

// applyClientMessage feeds one inbound message to the engine. State changes
// reach every client through the event hook; errors go back to the sender.
func (s *Server) applyClientMessage(sess *sessions.Session, client *wshub.Client, msg wshub.ClientMessage) {
	sess.Touch(s.Clock.Now())
	switch msg.Type {
	case wshub.TypeStart:
		sess.Engine.Start()
	case wshub.TypeStop:
		sess.Engine.Stop()
	case wshub.TypeShape:
		if msg.ID != nil {
			sess.Engine.OnShapeClickID(*msg.ID, s.Clock.Now())
		} else {
			sess.Engine.OnShapeClick(s.Clock.Now())
		}
	case wshub.TypeArea:
		sess.Engine.OnAreaClick(msg.X, msg.Y)
	case wshub.TypeBounds:
		if msg.W < 0 || msg.H < 0 {
			sendError(client, "bounds must not be negative")
			return
		}
		sess.Engine.SetBounds(shapes.Bounds{Width: msg.W, Height: msg.H})
		sess.Hub.Broadcast(stateMessage(sess.Engine.Snapshot()))
	default:
		sendError(client, "unknown message type: "+msg.Type)
	}
}

func sendError(c *wshub.Client, text string) {
	data, err := json.Marshal(wshub.ServerMessage{Type: "error", Error: text})
	if err != nil {
		return
	}
	select {
	case c.Send <- data:
	default:
	}
}

func stateMessage(snap session.Snapshot) wshub.ServerMessage {
	raw, err := json.Marshal(snap)
	if err != nil {
		log.Printf("[WS] Marshal error: %v\n", err)
	}
	return wshub.ServerMessage{Type: "state", State: raw}
}
