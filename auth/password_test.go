package auth_test

import (
	"testing"

	"github.com/diewo77/go-notes/auth"
)

func TestHasher_HashAndCheck(t *testing.T) {
	h := auth.NewHasher(4) // minimum cost, keeps the test fast

	hashed, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hashed == "s3cret" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !h.Check("s3cret", hashed) {
		t.Error("correct password should verify")
	}
	if h.Check("wrong", hashed) {
		t.Error("wrong password should not verify")
	}
}

func TestHasher_SaltedPerCall(t *testing.T) {
	h := auth.NewHasher(4)

	h1, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if h1 == h2 {
		t.Error("two hashes of the same password should differ (per-call salt)")
	}
	if !h.Check("same-password", h1) || !h.Check("same-password", h2) {
		t.Error("both hashes should verify independently")
	}
}

func TestHasher_CheckNeverPanicsOnBadHash(t *testing.T) {
	h := auth.NewHasher(0)

	if h.Check("anything", "not-a-bcrypt-hash") {
		t.Error("invalid stored hash should simply fail verification")
	}
}
