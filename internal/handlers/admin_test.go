package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diewo77/go-notes/gate"
	"github.com/diewo77/go-notes/internal/handlers"
	"github.com/diewo77/go-notes/internal/models"
	"github.com/diewo77/go-notes/internal/policy"
)

func TestAssignRole_InvalidatesCacheSynchronously(t *testing.T) {
	dbi := setupDB(t)
	member := seedRole(t, dbi, "member")
	seedRole(t, dbi, "editor", "updateNote")

	user := models.User{Email: "alice@example.com", Password: "hash", RoleID: &member.ID}
	if err := dbi.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	cache := gate.NewCachedResolver[uint](policy.NewDBRoleResolver(dbi), 5*time.Minute)
	h := handlers.NewAdminHandler(dbi, cache)

	// Warm the cache with the old role
	role, err := cache.Resolve(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("warm cache: %v", err)
	}
	if role.HasPermission("updateNote") {
		t.Fatal("member should not have updateNote yet")
	}

	id := strconv.Itoa(int(user.ID))
	req := httptest.NewRequest(http.MethodPost, "/admin/users/"+id+"/role", strings.NewReader(`{"roleName":"editor"}`))
	req.SetPathValue("id", id)
	rr := httptest.NewRecorder()
	h.AssignRole(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	// The very next permission check must see the new role
	role, err = cache.Resolve(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("resolve after assign: %v", err)
	}
	if !role.HasPermission("updateNote") {
		t.Error("stale role served after assignment; cache not invalidated")
	}
}

func TestAssignRole_Errors(t *testing.T) {
	dbi := setupDB(t)
	seedRole(t, dbi, "member")
	cache := gate.NewCachedResolver[uint](policy.NewDBRoleResolver(dbi), 5*time.Minute)
	h := handlers.NewAdminHandler(dbi, cache)

	// Unknown role name
	req := httptest.NewRequest(http.MethodPost, "/admin/users/1/role", strings.NewReader(`{"roleName":"ghost"}`))
	req.SetPathValue("id", "1")
	rr := httptest.NewRecorder()
	h.AssignRole(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("unknown role: expected 400, got %d", rr.Code)
	}

	// Unknown user
	req = httptest.NewRequest(http.MethodPost, "/admin/users/999/role", strings.NewReader(`{"roleName":"member"}`))
	req.SetPathValue("id", "999")
	rr = httptest.NewRecorder()
	h.AssignRole(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Errorf("unknown user: expected 404, got %d", rr.Code)
	}
}

func TestCreateRole(t *testing.T) {
	dbi := setupDB(t)
	cache := gate.NewCachedResolver[uint](policy.NewDBRoleResolver(dbi), 5*time.Minute)
	h := handlers.NewAdminHandler(dbi, cache)

	req := httptest.NewRequest(http.MethodPost, "/admin/roles", strings.NewReader(`{"name":"reviewer","permissions":["updateNote"]}`))
	rr := httptest.NewRecorder()
	h.CreateRole(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var role models.Role
	if err := dbi.Preload("Permissions").Where("name = ?", "reviewer").First(&role).Error; err != nil {
		t.Fatalf("role not stored: %v", err)
	}
	if len(role.Permissions) != 1 || role.Permissions[0].Code != "updateNote" {
		t.Errorf("permissions not attached: %+v", role.Permissions)
	}

	// Duplicate name
	req = httptest.NewRequest(http.MethodPost, "/admin/roles", strings.NewReader(`{"name":"reviewer"}`))
	rr = httptest.NewRecorder()
	h.CreateRole(rr, req)
	if rr.Code != http.StatusConflict {
		t.Errorf("duplicate role: expected 409, got %d", rr.Code)
	}
}

func TestContact_Create(t *testing.T) {
	dbi := setupDB(t)
	h := handlers.NewContactHandler(dbi)

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(
		`{"name":"carol","email":"carol@example.com","phone":"1234567890","message":"hello"}`))
	rr := httptest.NewRecorder()
	h.Create(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var count int64
	dbi.Model(&models.Contact{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 stored contact, got %d", count)
	}

	// Missing fields
	req = httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{"name":"x"}`))
	rr = httptest.NewRecorder()
	h.Create(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rr.Code)
	}
}
