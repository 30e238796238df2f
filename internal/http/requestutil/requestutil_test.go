package requestutil

import (
	"net/http/httptest"
	"testing"
)

func TestSanitizeRequestIDKeepsValidIDs(t *testing.T) {
	for _, id := range []string{"abc123", "req-1", "a_b-C9"} {
		if got := SanitizeRequestID(id); got != id {
			t.Fatalf("expected %q kept, got %q", id, got)
		}
	}
}

func TestSanitizeRequestIDReplacesInvalidIDs(t *testing.T) {
	for _, id := range []string{"", "has space", "bad/slash", string(make([]byte, 80))} {
		got := SanitizeRequestID(id)
		if got == id || got == "" {
			t.Fatalf("expected replacement for %q, got %q", id, got)
		}
	}
}

func TestNewRequestIDIsUnique(t *testing.T) {
	if NewRequestID() == NewRequestID() {
		t.Fatalf("expected distinct ids")
	}
}

func TestClientIPPrefersForwardedHeader(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	if got := ClientIP(r); got != "10.0.0.1:1234" {
		t.Fatalf("expected remote addr, got %q", got)
	}

	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if got := ClientIP(r); got != "203.0.113.7" {
		t.Fatalf("expected first forwarded hop, got %q", got)
	}
}
