package policy

import (
	"log"
	"time"

	"github.com/diewo77/go-notes/auth"
	"github.com/diewo77/go-notes/gate"
	"github.com/diewo77/go-notes/internal/handlers"
	"github.com/diewo77/go-notes/internal/models"
	"gorm.io/gorm"
)

// Router holds the configured guards and handlers for the application.
// All dependencies are injected explicitly; nothing here reaches for
// process-global state.
type Router struct {
	Tokens *auth.TokenService
	Cache  *gate.CachedResolver[uint]
	Guard  *Guard

	AuthHandler    *handlers.AuthHandler
	NoteHandler    *handlers.NoteHandler
	ContactHandler *handlers.ContactHandler
	AdminHandler   *handlers.AdminHandler
}

// NewRouter wires the authorization pipeline and all handlers.
// cacheTTL bounds how long a resolved role may be reused without a fresh
// store lookup; mutating handlers invalidate sooner.
func NewRouter(db *gorm.DB, tokens *auth.TokenService, hasher *auth.Hasher, cacheTTL time.Duration) *Router {
	resolver := NewDBRoleResolver(db)
	cache := gate.NewCachedResolver[uint](resolver, cacheTTL)
	routes := Routes()

	warnUngrantedPermissions(db, routes)

	return &Router{
		Tokens:         tokens,
		Cache:          cache,
		Guard:          NewGuard(routes, cache),
		AuthHandler:    handlers.NewAuthHandler(db, tokens, hasher, cache),
		NoteHandler:    handlers.NewNoteHandler(db),
		ContactHandler: handlers.NewContactHandler(db),
		AdminHandler:   handlers.NewAdminHandler(db, cache),
	}
}

// warnUngrantedPermissions logs a warning for every permission the route map
// references that no role currently grants. A misconfigured map is a
// configuration warning, not a startup failure: the affected routes simply
// deny everyone until a role grants the permission.
func warnUngrantedPermissions(db *gorm.DB, routes *gate.RouteMap) {
	for _, perm := range routes.Permissions() {
		var count int64
		err := db.Model(&models.Role{}).
			Joins("JOIN role_permissions ON role_permissions.role_id = roles.id").
			Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
			Where("permissions.code = ?", string(perm)).
			Count(&count).Error
		if err != nil {
			log.Printf("route map validation skipped for %q: %v", perm, err)
			continue
		}
		if count == 0 {
			log.Printf("warning: route map requires permission %q but no role grants it", perm)
		}
	}
}
