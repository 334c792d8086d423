package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/diewo77/go-notes/auth"
)

func TestRequireToken_MissingHeader(t *testing.T) {
	ts := auth.NewTokenService([]byte("test-secret"), time.Hour)
	handler := auth.RequireToken(ts)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run without a token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
}

func TestRequireToken_NonBearerHeader(t *testing.T) {
	ts := auth.NewTokenService([]byte("test-secret"), time.Hour)
	handler := auth.RequireToken(ts)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
}

func TestRequireToken_InvalidToken(t *testing.T) {
	ts := auth.NewTokenService([]byte("test-secret"), time.Hour)
	handler := auth.RequireToken(ts)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run with a bad token")
	}))

	// Signed with a different secret
	other := auth.NewTokenService([]byte("other-secret"), time.Hour)
	forged, _ := other.Issue(1)

	for _, raw := range []string{"garbage", forged} {
		req := httptest.NewRequest(http.MethodGet, "/notes", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusForbidden {
			t.Errorf("token %q: expected 403, got %d", raw, rr.Code)
		}
	}
}

func TestRequireToken_ValidTokenSetsIdentity(t *testing.T) {
	ts := auth.NewTokenService([]byte("test-secret"), time.Hour)

	var gotID uint
	handler := auth.RequireToken(ts)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = auth.UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	token, err := ts.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if gotID != 42 {
		t.Errorf("expected user id 42 in context, got %d", gotID)
	}
}
