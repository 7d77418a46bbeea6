package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rkradadiya/chatroom/internal/config"
	"github.com/rkradadiya/chatroom/internal/delivery/ws"
)

func TestIsOriginAllowed(t *testing.T) {
	original := config.AppConfig.AllowedOrigins
	config.AppConfig.AllowedOrigins = []string{"http://localhost:3000"}
	defer func() { config.AppConfig.AllowedOrigins = original }()

	tests := []struct {
		origin   string
		expected bool
	}{
		{"http://localhost:3000", true},
		{"", true}, // Empty origin allowed (same-origin)
		{"http://evil.com", false},
		{"https://attacker.com", false},
	}

	for _, tc := range tests {
		result := isOriginAllowed(tc.origin)
		if result != tc.expected {
			t.Errorf("isOriginAllowed(%s) = %v, expected %v", tc.origin, result, tc.expected)
		}
	}
}

func TestIsOriginAllowed_Wildcard(t *testing.T) {
	original := config.AppConfig.AllowedOrigins
	config.AppConfig.AllowedOrigins = []string{"*"}
	defer func() { config.AppConfig.AllowedOrigins = original }()

	if !isOriginAllowed("http://anywhere.example") {
		t.Error("Expected wildcard to allow any origin")
	}
}

func TestHandleHealth(t *testing.T) {
	h := NewHandler(ws.NewHub(nil))

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	h.HandleHealth(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body["status"])
	}
}

func TestHandleWebSocket_RejectsBadOrigin(t *testing.T) {
	original := config.AppConfig.AllowedOrigins
	config.AppConfig.AllowedOrigins = []string{"http://localhost:3000"}
	defer func() { config.AppConfig.AllowedOrigins = original }()

	h := NewHandler(ws.NewHub(nil))

	req := httptest.NewRequest("GET", "/ws", nil)
	req.Header.Set("Origin", "http://evil.com")
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	req.Header.Set("Sec-WebSocket-Version", "13")
	req.Header.Set("Sec-WebSocket-Key", "dGhlIHNhbXBsZSBub25jZQ==")
	w := httptest.NewRecorder()
	h.HandleWebSocket(w, req)

	if w.Result().StatusCode == http.StatusSwitchingProtocols {
		t.Error("Expected upgrade to be rejected for disallowed origin")
	}
}
