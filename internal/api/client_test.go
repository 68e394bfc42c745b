package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/posts/pending" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"status":"success","posts":[]}`))
	}))
	defer srv.Close()

	var result struct {
		Status string `json:"status"`
	}
	client := NewClient(srv.URL)
	if err := client.Get(t.Context(), "/api/posts/pending", &result); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if result.Status != "success" {
		t.Errorf("status = %q", result.Status)
	}
}

func TestClientPostSendsJSON(t *testing.T) {
	var gotContentType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"status":"success","id":"p1"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	body := map[string]string{"content": "hello"}
	if err := client.Post(t.Context(), "/api/prompts", body, nil); err != nil {
		t.Fatalf("Post: %v", err)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %q", gotContentType)
	}
	if gotBody != `{"content":"hello"}` {
		t.Errorf("body = %q", gotBody)
	}
}

func TestClientErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status":"error","message":"post not found"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.Get(t.Context(), "/api/posts/missing", nil)
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if !strings.Contains(err.Error(), "post not found") {
		t.Errorf("error = %q, want server message included", err)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error = %q, want status code included", err)
	}
}

func TestClientErrorNonEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.Delete(t.Context(), "/api/posts/x", nil)
	if err == nil || !strings.Contains(err.Error(), "upstream exploded") {
		t.Errorf("error = %v, want raw body included", err)
	}
}
