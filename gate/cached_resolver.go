package gate

import (
	"context"
	"sync"
	"time"
)

// CachedResolver wraps a RoleResolver with TTL-based caching.
// This avoids hitting the database on every authorization check.
//
// Only successful resolutions are cached; ErrUserNotFound and
// ErrNoRoleAssigned always reflect the current store state, so a deleted
// user is denied on the very next permission check.
type CachedResolver[U comparable] struct {
	inner RoleResolver[U]
	cache map[U]*cacheEntry
	mu    sync.RWMutex
	ttl   time.Duration
}

type cacheEntry struct {
	role      Role
	expiresAt time.Time
}

// NewCachedResolver wraps a resolver with caching.
// ttl is how long roles are cached before re-fetching.
func NewCachedResolver[U comparable](inner RoleResolver[U], ttl time.Duration) *CachedResolver[U] {
	return &CachedResolver[U]{
		inner: inner,
		cache: make(map[U]*cacheEntry),
		ttl:   ttl,
	}
}

// Resolve returns the role for the given user, using cache if available.
func (r *CachedResolver[U]) Resolve(ctx context.Context, user U) (Role, error) {
	// Check cache first (read lock)
	r.mu.RLock()
	entry, ok := r.cache[user]
	r.mu.RUnlock()

	if ok && time.Now().Before(entry.expiresAt) {
		return entry.role, nil
	}

	// Cache miss or expired - fetch from inner resolver
	role, err := r.inner.Resolve(ctx, user)
	if err != nil {
		return nil, err
	}

	// Store in cache (write lock)
	r.mu.Lock()
	r.cache[user] = &cacheEntry{
		role:      role,
		expiresAt: time.Now().Add(r.ttl),
	}
	r.mu.Unlock()

	return role, nil
}

// Invalidate removes a user from the cache.
// Call this when a user's role assignment changes or the user is deleted.
// Stale-allow is a security defect; callers must invalidate synchronously
// with the mutation, before responding.
func (r *CachedResolver[U]) Invalidate(user U) {
	r.mu.Lock()
	delete(r.cache, user)
	r.mu.Unlock()
}

// InvalidateAll clears the entire cache.
// Call this when a role's permission set is modified.
func (r *CachedResolver[U]) InvalidateAll() {
	r.mu.Lock()
	r.cache = make(map[U]*cacheEntry)
	r.mu.Unlock()
}
