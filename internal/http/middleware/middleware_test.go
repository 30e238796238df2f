package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"roster-service/internal/metrics"
)

func TestLoggingSetsAndPropagatesRequestID(t *testing.T) {
	var seen string
	handler := Logging(nil, metrics.NewRecorder(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/teams", nil))

	if seen == "" {
		t.Fatalf("expected request id in context")
	}
	if got := rec.Header().Get("X-Request-ID"); got != seen {
		t.Fatalf("expected header %q to match context id %q", got, seen)
	}
}

func TestLoggingKeepsValidIncomingRequestID(t *testing.T) {
	handler := Logging(nil, metrics.NewRecorder(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest("GET", "/teams", nil)
	req.Header.Set("X-Request-ID", "caller-supplied-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "caller-supplied-1" {
		t.Fatalf("expected caller id kept, got %q", got)
	}
}

func TestLoggingToleratesNilRecorder(t *testing.T) {
	handler := Logging(nil, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("DELETE", "/teams/abc-123", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected handler status preserved, got %d", rec.Code)
	}
}

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/teams", "/teams"},
		{"/teams/42", "/teams/:id"},
		{"/teams/42/players", "/teams/:id/players"},
		{"/teams/42/players/7", "/teams/:id/players"},
		{"/players", "/players"},
		{"/players/next", "/players/next"},
		{"/session", "/session"},
		{"/health", "/health"},
		{"/unknown", "/unknown"},
	}
	for _, tc := range cases {
		if got := normalizePath(tc.in); got != tc.want {
			t.Fatalf("normalizePath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
