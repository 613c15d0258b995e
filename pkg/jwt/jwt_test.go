package jwt

import (
	"strings"
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewManager("secret", time.Hour)
	token, err := m.GenerateAccessToken("u1", "sess-1", "Admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	claims, err := m.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.UserID != "u1" || claims.SessionID != "sess-1" || claims.Role != "Admin" {
		t.Fatalf("claims: got %+v", claims)
	}
}

func TestAccessTokenRejected(t *testing.T) {
	m := NewManager("secret", time.Hour)
	token, _ := m.GenerateAccessToken("u1", "sess-1", "Admin")

	other := NewManager("other-secret", time.Hour)
	if _, err := other.ValidateAccessToken(token); err == nil {
		t.Fatalf("expected signature mismatch to fail")
	}

	expired := NewManager("secret", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	old, _ := expired.GenerateAccessToken("u1", "sess-1", "Admin")
	if _, err := m.ValidateAccessToken(old); err == nil || !strings.Contains(err.Error(), "expired") {
		t.Fatalf("expected expiry error, got %v", err)
	}
}
