package server

import (
	"fmt"
	"log"
	"net/http"
	"shapetrainer/internal/clock"
	"shapetrainer/internal/config"
	"shapetrainer/internal/db"
	"shapetrainer/internal/sessions"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes sets up the HTTP routes.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/sessions", s.handleCreateSession)
	r.Route("/session", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/start", s.handleStart)
		r.Post("/stop", s.handleStop)
		r.Post("/click/shape", s.handleShapeClick)
		r.Post("/click/area", s.handleAreaClick)
		r.Post("/bounds", s.handleBounds)
		r.Get("/state", s.handleState)
		r.Get("/events", s.handleEvents)
		r.Get("/ws", s.handleWebSocket)
	})
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.Metrics.Handler())
	r.Route("/analytics", func(r chi.Router) {
		r.Get("/leaderboard", s.handleAnalyticsLeaderboard)
		r.Get("/player/{id}", s.handleAnalyticsPlayer)
		r.Get("/session/{id}", s.handleAnalyticsSession)
	})
	return r
}

func Run(appCfg config.Config) error {
	sched := clock.NewReal()
	store := sessions.NewStore(appCfg.Session(), sched, appCfg.SpawnSeed)
	srv := NewServer(store, sched)

	// Optional database connection
	if appCfg.DatabaseURL != "" {
		database, err := db.Connect(appCfg.DatabaseURL)
		if err != nil {
			log.Printf("[DB] Failed to connect: %v (running without database)\n", err)
		} else {
			if err := database.Migrate(); err != nil {
				log.Printf("[DB] Migration failed: %v\n", err)
			}
			srv.AttachDB(database)
			log.Println("[DB] Database connected and migrations applied")
		}
	} else {
		log.Println("[DB] DATABASE_URL not set, running without database")
	}

	addr := "0.0.0.0:" + appCfg.Port
	fmt.Printf("Server listening on http://localhost:%s\n", appCfg.Port)
	return http.ListenAndServe(addr, srv.Routes())
}

// AttachDB enables archiving and starts the reaction batch writer.
func (s *Server) AttachDB(database *db.DB) {
	s.DB = database
	s.ReactionBuffer = make(chan db.ReactionEvent, 1000)
	go reactionBatchWriter(database, s.ReactionBuffer)
}

func reactionBatchWriter(database *db.DB, buffer chan db.ReactionEvent) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	batch := make([]db.ReactionEvent, 0, 50)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := database.BatchRecordReactions(batch); err != nil {
			log.Printf("[DB] BatchRecordReactions error: %v\n", err)
		}
		batch = batch[:0]
	}

	for {
		select {
		case ev, ok := <-buffer:
			if !ok {
				flush()
				return
			}
			batch = append(batch, ev)
			if len(batch) >= 50 {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}
