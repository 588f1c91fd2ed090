package server

import (
	"path/filepath"
	"shapetrainer/internal/analytics"
	"shapetrainer/internal/db"
	"testing"
	"time"
)

func attachTestDB(t *testing.T, srv *Server) *db.DB {
	t.Helper()
	database, err := db.Connect("sqlite:" + filepath.Join(t.TempDir(), "archive.db"))
	if err != nil {
		t.Fatalf("Connect() error: %v", err)
	}
	if err := database.Migrate(); err != nil {
		t.Fatalf("Migrate() error: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	srv.AttachDB(database)
	return database
}

func TestArchive_FinishedSession(t *testing.T) {
	srv, m, ts := newTestServer(t)
	database := attachTestDB(t, srv)
	client := newClientWithJar(t)
	createSession(t, client, ts.URL)

	postJSON(t, client, ts.URL+"/session/start", nil)
	m.Advance(4 * time.Second)
	m.Advance(150 * time.Millisecond)
	postJSON(t, client, ts.URL+"/session/click/shape", nil)
	postJSON(t, client, ts.URL+"/session/click/area", point{X: 3, Y: 4})
	m.Advance(2 * time.Second)

	var hits, missed int
	waitFor(t, "archived session", func() bool {
		err := database.QueryRow(`
			SELECT total_hits, missed_clicks FROM sessions WHERE ended_at IS NOT NULL
		`).Scan(&hits, &missed)
		return err == nil
	})
	if hits != 1 || missed != 1 {
		t.Errorf("hits, missed = %d, %d, want 1, 1", hits, missed)
	}

	waitFor(t, "archived reaction", func() bool {
		var n int
		database.QueryRow(`SELECT COUNT(*) FROM reactions WHERE reaction_ms = 150 AND quality = 'perfect'`).Scan(&n)
		return n == 1
	})
}

func TestArchive_StoppedSessionStaysOpen(t *testing.T) {
	srv, m, ts := newTestServer(t)
	database := attachTestDB(t, srv)
	client := newClientWithJar(t)
	code := createSession(t, client, ts.URL)

	postJSON(t, client, ts.URL+"/session/start", nil)
	m.Advance(4 * time.Second)
	postJSON(t, client, ts.URL+"/session/stop", nil)

	sess := srv.Sessions.Get(code)
	waitFor(t, "archive id cleared", func() bool {
		var n int
		database.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&n)
		return n == 1 && sess.ArchiveID() == ""
	})

	var ended int
	database.QueryRow(`SELECT COUNT(*) FROM sessions WHERE ended_at IS NOT NULL`).Scan(&ended)
	if ended != 0 {
		t.Errorf("stopped session was closed in the archive")
	}
}

func TestArchive_LeaderboardEndpoint(t *testing.T) {
	srv, m, ts := newTestServer(t)
	attachTestDB(t, srv)
	client := newClientWithJar(t)
	createSession(t, client, ts.URL)

	postJSON(t, client, ts.URL+"/session/start", nil)
	m.Advance(4 * time.Second)
	m.Advance(300 * time.Millisecond)
	postJSON(t, client, ts.URL+"/session/click/shape", nil)
	m.Advance(2 * time.Second)

	var entries []analytics.LeaderboardEntry
	waitFor(t, "leaderboard entry", func() bool {
		resp, err := client.Get(ts.URL + "/analytics/leaderboard?cat=hits")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		entries = nil
		if err := decodeJSON(resp, &entries); err != nil {
			return false
		}
		return len(entries) == 1
	})
	if entries[0].Value != 1 || entries[0].PlayerName != "Player" {
		t.Errorf("entry = %+v", entries[0])
	}

	resp, err := client.Get(ts.URL + "/analytics/leaderboard?cat=bogus")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != 400 {
		t.Errorf("bogus category status = %d, want 400", resp.StatusCode)
	}
}
