package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/draftdeck/draftdeck/internal/defra"
	"github.com/draftdeck/draftdeck/internal/drafts"
	"github.com/draftdeck/draftdeck/internal/testutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRequireInitBlocksUntilReady(t *testing.T) {
	s := &Server{logger: testLogger()}

	called := false
	handler := s.requireInit(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/api/posts/pending", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 before init", w.Code)
	}
	if called {
		t.Error("handler ran before initialization")
	}

	s.defraClient = defra.NewClient("http://127.0.0.1:9181")
	s.draftStore = drafts.NewMemStore()

	w = httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/api/posts/pending", nil))

	if w.Code != http.StatusOK || !called {
		t.Errorf("status = %d, called = %v after init", w.Code, called)
	}
}

func TestNewDefaults(t *testing.T) {
	s, err := New(Config{Logger: testLogger()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Addr() != "127.0.0.1:8080" {
		t.Errorf("addr = %q", s.Addr())
	}
	if s.IsRunning() {
		t.Error("new server reports running")
	}
}

// TestServerLifecycle starts a real server against a Docker-managed
// DefraDB and exercises the API end to end.
func TestServerLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Docker integration test in short mode")
	}

	cfg := testutil.NewServerConfig(t)

	s, err := New(Config{
		Host:          cfg.Host,
		Port:          cfg.Port,
		DefraDataPath: cfg.DefraDataPath,
		DefraConfig: defra.DockerConfig{
			ContainerName: cfg.DefraConfig.ContainerName,
			HostPort:      cfg.DefraConfig.HostPort,
			Labels:        cfg.DefraConfig.Labels,
		},
		Logger: cfg.Logger,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.Start(ctx)
	}()

	if err := testutil.WaitForServer(cfg.URL(), 90*time.Second); err != nil {
		t.Fatalf("server never became ready: %v", err)
	}

	client := testutil.HTTPClient()

	// Status reports a healthy store and no providers configured.
	status, err := testutil.GetStatus(cfg.URL())
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if status.Defra.Health != "healthy" {
		t.Errorf("defra health = %q", status.Defra.Health)
	}
	if status.Providers.Completion {
		t.Error("completion provider configured without credentials")
	}

	// Save a prompt and read it back through the API.
	resp, err := client.Post(cfg.URL()+"/api/prompts", "application/json",
		strings.NewReader(`{"content":"integration prompt"}`))
	if err != nil {
		t.Fatalf("POST /api/prompts: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create prompt status = %d", resp.StatusCode)
	}

	resp, err = client.Get(cfg.URL() + "/api/prompts/latest")
	if err != nil {
		t.Fatalf("GET /api/prompts/latest: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("latest prompt status = %d", resp.StatusCode)
	}

	// Generation without a configured completion provider fails cleanly.
	resp, err = client.Post(cfg.URL()+"/api/posts/generate", "application/json",
		strings.NewReader(`{"prompt":"hello"}`))
	if err != nil {
		t.Fatalf("POST /api/posts/generate: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("generate without provider status = %d, want 500", resp.StatusCode)
	}

	cancel()
	if err := testutil.WaitForShutdown(done, 60*time.Second); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
