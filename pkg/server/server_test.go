package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/soundprediction/faqgraph"
	"github.com/soundprediction/faqgraph/pkg/config"
	"github.com/soundprediction/faqgraph/pkg/extractor"
	"github.com/soundprediction/faqgraph/pkg/llm"
)

// echoClient replies with a fixed answer.
type echoClient struct {
	reply string
}

func (e *echoClient) Chat(ctx context.Context, messages []llm.Message) (string, error) {
	return e.reply, nil
}

func (e *echoClient) Close() error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host: "localhost",
			Port: 8080,
			Mode: "test",
		},
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	kb := faqgraph.NewClient(nil, nil)
	if err := kb.AddFAQ("What is a knowledge graph?", "Nodes and edges.", "Basics", "graph"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	chat := &echoClient{reply: "a generated answer"}
	srv := New(testConfig(), kb, chat, extractor.New(chat, nil), nil)
	srv.Setup()
	return srv
}

func TestNew(t *testing.T) {
	srv := New(testConfig(), nil, nil, nil, nil)
	if srv == nil {
		t.Fatal("expected non-nil server")
	}
}

func TestSetup(t *testing.T) {
	srv := newTestServer(t)
	if srv.router == nil {
		t.Error("expected router to be initialized")
	}
	if srv.server == nil {
		t.Fatal("expected http.Server to be initialized")
	}
	if srv.server.Addr != "localhost:8080" {
		t.Errorf("expected addr localhost:8080, got %s", srv.server.Addr)
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestDetailedHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health/detailed", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Status string `json:"status"`
		Facts  int    `json:"facts"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Status != "ok" || body.Facts != 1 {
		t.Errorf("unexpected body: %+v", body)
	}
}

func postJSON(t *testing.T, srv *Server, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func TestChatEndpoint(t *testing.T) {
	srv := newTestServer(t)

	w := postJSON(t, srv, "/api/v1/chat", map[string]any{
		"text": "tell me about knowledge graphs",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Text    string            `json:"text"`
		Context []json.RawMessage `json:"context"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Text != "a generated answer" {
		t.Errorf("unexpected answer: %q", body.Text)
	}
	if len(body.Context) == 0 {
		t.Error("expected retrieved context in the response")
	}
}

func TestChatEndpointValidation(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"missing text", map[string]any{}},
		{"blank text", map[string]any{"text": "   "}},
		{"bad history role", map[string]any{
			"text":    "q",
			"history": []map[string]string{{"role": "robot", "content": "x"}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, srv, "/api/v1/chat", tt.payload)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestAddFAQEndpoint(t *testing.T) {
	srv := newTestServer(t)

	w := postJSON(t, srv, "/api/v1/faq", map[string]any{
		"question": "How do refunds work?",
		"answer":   "Within thirty days.",
		"category": "Billing",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAddFAQEndpointValidation(t *testing.T) {
	srv := newTestServer(t)

	w := postJSON(t, srv, "/api/v1/faq", map[string]any{
		"question": "q",
		"answer":   "a",
		"category": "   ",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAddEntityEndpoint(t *testing.T) {
	srv := newTestServer(t)

	w := postJSON(t, srv, "/api/v1/entity", map[string]any{
		"name":        "redis",
		"entity_type": "Database",
		"properties": map[string]any{
			"model": map[string]string{"value": "key-value", "metadata": "source: docs"},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAddRelationshipEndpoint(t *testing.T) {
	srv := newTestServer(t)

	w := postJSON(t, srv, "/api/v1/relationship", map[string]any{
		"from_entity":       "redis",
		"relationship_type": "caches_for",
		"to_entity":         "postgres",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLegacyFlatRoutes(t *testing.T) {
	srv := newTestServer(t)

	w := postJSON(t, srv, "/faq", map[string]any{
		"question": "q?",
		"answer":   "a.",
		"category": "Basics",
	})
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 on legacy route, got %d", w.Code)
	}
}

func TestExtractEndpoint(t *testing.T) {
	kb := faqgraph.NewClient(nil, nil)
	chat := &echoClient{reply: `{"entities": [{"name": "MeTTa", "type": "Language"}]}`}
	srv := New(testConfig(), kb, chat, extractor.New(chat, nil), nil)
	srv.Setup()

	w := postJSON(t, srv, "/api/v1/extract/text", map[string]any{
		"text": "MeTTa is a declarative language.",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if got := kb.Stats().Entities; got != 1 {
		t.Errorf("expected the extracted entity to be applied, got %d entities", got)
	}
}

func TestExtractRoutesAbsentWithoutExtractor(t *testing.T) {
	kb := faqgraph.NewClient(nil, nil)
	srv := New(testConfig(), kb, &echoClient{}, nil, nil)
	srv.Setup()

	w := postJSON(t, srv, "/api/v1/extract/text", map[string]any{"text": "x"})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 without an extractor, got %d", w.Code)
	}
}

func TestCORSPreflights(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/chat", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard CORS origin, got %q", got)
	}
}
