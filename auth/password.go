package auth

import "golang.org/x/crypto/bcrypt"

// Hasher hashes and verifies user passwords with bcrypt.
// The cost is the bcrypt work factor; hashing is deliberately CPU-expensive.
type Hasher struct {
	cost int
}

// NewHasher creates a password hasher. A non-positive cost falls back to
// bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the salted one-way hash of a plaintext password.
// The salt is generated per call, so two hashes of the same password differ.
func (h *Hasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Check reports whether plain matches the stored hash.
// It never returns an error on mismatch, only false; bcrypt's comparison is
// constant-time with respect to the hash.
func (h *Hasher) Check(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
