package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"roster-service/internal/config"
	"roster-service/internal/domain/teams"
	"roster-service/internal/store"
)

func testConfig() config.Config {
	return config.Config{
		Port:     "0",
		Provider: "fixture",
		Catalog:  config.CatalogConfig{PageSize: 10},
		Metrics:  config.MetricsConfig{Enabled: false},
	}
}

func do(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestServerWiresFullRosterFlow(t *testing.T) {
	srv := New(testConfig(), nil)
	handler := srv.Handler()

	if rec := do(t, handler, http.MethodPost, "/session", `{"username":"alice"}`); rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec := do(t, handler, http.MethodPost, "/teams", `{"name":"Alpha","region":"West","country":"US"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create team: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var team teams.Team
	if err := json.Unmarshal(rec.Body.Bytes(), &team); err != nil {
		t.Fatalf("decode team: %v", err)
	}

	// The fixture catalog pages deterministically.
	if rec := do(t, handler, http.MethodPost, "/players/next", ""); rec.Code != http.StatusAccepted {
		t.Fatalf("load page: expected 202, got %d", rec.Code)
	}

	rec = do(t, handler, http.MethodGet, "/players", "")
	var view struct {
		Players []struct {
			ID int `json:"id"`
		} `json:"players"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode players: %v", err)
	}
	if len(view.Players) == 0 {
		t.Fatalf("expected fixture players, got %s", rec.Body.String())
	}

	assignBody := `{"playerId":` + jsonInt(view.Players[0].ID) + `}`
	if rec := do(t, handler, http.MethodPost, "/teams/"+team.ID+"/players", assignBody); rec.Code != http.StatusOK {
		t.Fatalf("assign: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec := do(t, handler, http.MethodPost, "/teams/"+team.ID+"/players", assignBody); rec.Code != http.StatusConflict {
		t.Fatalf("re-assign: expected 409, got %d", rec.Code)
	}
}

func TestServerRestoresPersistedStateAcrossRestarts(t *testing.T) {
	cfg := testConfig()
	cfg.Persistence = config.PersistenceConfig{
		Enabled: true,
		Path:    filepath.Join(t.TempDir(), "state.db"),
	}

	first := New(cfg, nil)
	handler := first.Handler()
	do(t, handler, http.MethodPost, "/session", `{"username":"alice"}`)
	do(t, handler, http.MethodPost, "/teams", `{"name":"Alpha"}`)
	if first.persistence == nil {
		t.Fatalf("expected persistence wired")
	}
	if err := first.persistence.Close(); err != nil {
		t.Fatalf("close persistence: %v", err)
	}

	second := New(cfg, nil)
	rec := do(t, second.Handler(), http.MethodGet, "/session", "")
	var sess store.Session
	if err := json.Unmarshal(rec.Body.Bytes(), &sess); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if !sess.IsLoggedIn || sess.Username != "alice" {
		t.Fatalf("expected restored session, got %+v", sess)
	}

	rec = do(t, second.Handler(), http.MethodGet, "/teams", "")
	var list struct {
		Teams []teams.Team `json:"teams"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode teams: %v", err)
	}
	if len(list.Teams) != 1 || list.Teams[0].Name != "Alpha" {
		t.Fatalf("expected restored team list, got %+v", list.Teams)
	}
}

func TestServerRunsAndShutsDownOnCancel(t *testing.T) {
	srv := New(testConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		srv.Run(ctx, cancel)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not shut down")
	}
}

func jsonInt(v int) string {
	b, _ := json.Marshal(v)
	return string(b)
}
