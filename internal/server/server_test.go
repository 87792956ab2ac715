package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/pierreaubert/nethack-rs-sub002/internal/engine"
	"github.com/pierreaubert/nethack-rs-sub002/pkg/api"
	"github.com/pierreaubert/nethack-rs-sub002/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newTestServer() *Server {
	return New(engine.NewService(engine.Config{Seed: 42}), "0")
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestHandleLevel(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()
	s.handleLevel(rec, httptest.NewRequest(http.MethodGet, "/level?branch=0&depth=5", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	var snap api.LevelSnapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("bad response json: %v", err)
	}
	if snap.Type != "LEVEL" || snap.Branch != 0 || snap.Depth != 5 {
		t.Errorf("unexpected snapshot header: %+v", snap)
	}
	if len(snap.Cells) == 0 {
		t.Error("snapshot has no cells")
	}
}

func TestHandleLevelValidation(t *testing.T) {
	s := newTestServer()

	for _, q := range []string{
		"branch=0&depth=0",
		"branch=0&depth=99",
		"branch=42&depth=1",
		"branch=0",
	} {
		rec := httptest.NewRecorder()
		s.handleLevel(rec, httptest.NewRequest(http.MethodGet, "/level?"+q, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("query %q: expected 400, got %d", q, rec.Code)
		}
	}
}

func TestHandleLevelStringSeed(t *testing.T) {
	s := newTestServer()

	get := func(q string) *api.LevelSnapshot {
		rec := httptest.NewRecorder()
		s.handleLevel(rec, httptest.NewRequest(http.MethodGet, "/level?"+q, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("query %q: status %d", q, rec.Code)
		}
		var snap api.LevelSnapshot
		if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
			t.Fatalf("query %q: bad json: %v", q, err)
		}
		return &snap
	}

	a := get("branch=0&depth=3&seed=yendor")
	b := get("branch=0&depth=3&seed=yendor")
	if a.Seed != b.Seed {
		t.Error("string seed is not stable")
	}
}

func TestDebugMap(t *testing.T) {
	s := newTestServer()
	h := NewDebugHandler(s.Engine)

	rec := httptest.NewRecorder()
	h.handleDumpMap(rec, httptest.NewRequest(http.MethodGet, "/debug/map?branch=0&depth=1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	lines := strings.Split(strings.TrimRight(rec.Body.String(), "\n"), "\n")
	if len(lines) != 21 {
		t.Errorf("expected 21 map rows, got %d", len(lines))
	}
}
