package main

import (
	"net/http"

	"github.com/diewo77/go-notes/auth"
	"github.com/diewo77/go-notes/httpx"
	"github.com/diewo77/go-notes/internal/policy"
	"gorm.io/gorm"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux    *http.ServeMux
	db     *gorm.DB
	router *policy.Router
}

// NewApp creates a new application with all routes configured.
func NewApp(db *gorm.DB, router *policy.Router) *App {
	app := &App{
		mux:    http.NewServeMux(),
		db:     db,
		router: router,
	}
	app.setupRoutes()
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

// setupRoutes configures all application routes.
// Every protected route runs the same pipeline: token check, then the
// permission guard (which passes paths the route map does not cover), then
// the handler.
func (a *App) setupRoutes() {
	ah := a.router.AuthHandler
	nh := a.router.NoteHandler
	ch := a.router.ContactHandler
	adh := a.router.AdminHandler

	requireToken := auth.RequireToken(a.router.Tokens)
	guard := a.router.Guard.Middleware
	protected := func(h http.HandlerFunc) http.Handler {
		return requireToken(guard(h))
	}

	// ─────────────────────────────────────────────────────────────────────────
	// Public routes (no auth required)
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.HandleFunc("POST /auth/register", ah.Register)
	a.mux.HandleFunc("POST /auth/login", ah.Login)
	a.mux.HandleFunc("POST /contact", ch.Create)
	a.mux.HandleFunc("GET /healthz", a.healthz)

	// ─────────────────────────────────────────────────────────────────────────
	// Authenticated routes (token required, no specific permission)
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.Handle("GET /auth/me", protected(ah.Me))
	a.mux.Handle("PUT /auth/profile", protected(ah.UpdateProfile))
	a.mux.Handle("DELETE /auth/profile", protected(ah.DeleteProfile))

	a.mux.Handle("GET /notes", protected(nh.List))
	a.mux.Handle("GET /notes/{id}", protected(nh.Get))
	a.mux.Handle("POST /notes", protected(nh.Create))

	// ─────────────────────────────────────────────────────────────────────────
	// Permission-gated routes (required permission declared in policy.Routes)
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.Handle("PUT /notes/update/{id}", protected(nh.Update))
	a.mux.Handle("DELETE /notes/delete/{id}", protected(nh.Delete))

	a.mux.Handle("GET /admin/roles", protected(adh.ListRoles))
	a.mux.Handle("POST /admin/roles", protected(adh.CreateRole))
	a.mux.Handle("POST /admin/users/{id}/role", protected(adh.AssignRole))
}

// healthz reports process and database health.
func (a *App) healthz(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := a.db.DB()
	if err != nil || sqlDB.PingContext(r.Context()) != nil {
		httpx.JSON(w, http.StatusServiceUnavailable, map[string]any{
			"status":   "degraded",
			"database": "disconnected",
		})
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"database": "connected",
	})
}
