package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/diewo77/go-notes/auth"
)

func TestTokenService_RoundTrip(t *testing.T) {
	ts := auth.NewTokenService([]byte("test-secret"), time.Hour)

	for _, id := range []uint{1, 42, 90000} {
		token, err := ts.Issue(id)
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		claims, err := ts.Verify(token)
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if claims.UserID != id {
			t.Errorf("expected subject %d, got %d", id, claims.UserID)
		}
	}
}

func TestTokenService_TwoTokensBothValid(t *testing.T) {
	ts := auth.NewTokenService([]byte("test-secret"), time.Hour)

	t1, err := ts.Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	t2, err := ts.Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	for _, tok := range []string{t1, t2} {
		claims, err := ts.Verify(tok)
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if claims.UserID != 7 {
			t.Errorf("expected subject 7, got %d", claims.UserID)
		}
	}
}

func TestTokenService_Expired(t *testing.T) {
	// 1ns TTL: the token is expired by the time Verify runs.
	ts := auth.NewTokenService([]byte("test-secret"), time.Nanosecond)
	token, err := ts.Issue(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	_, err = ts.Verify(token)
	if !errors.Is(err, auth.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := auth.NewTokenService([]byte("secret-a"), time.Hour)
	verifier := auth.NewTokenService([]byte("secret-b"), time.Hour)

	token, err := issuer.Issue(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = verifier.Verify(token)
	if !errors.Is(err, auth.ErrTokenSignature) {
		t.Errorf("expected ErrTokenSignature, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	ts := auth.NewTokenService([]byte("test-secret"), time.Hour)

	for _, bad := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := ts.Verify(bad); !errors.Is(err, auth.ErrTokenMalformed) {
			t.Errorf("Verify(%q): expected ErrTokenMalformed, got %v", bad, err)
		}
	}
}
