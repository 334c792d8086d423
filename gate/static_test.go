package gate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/diewo77/go-notes/gate"
)

func TestStaticRole_HasPermission(t *testing.T) {
	role := gate.NewStaticRole("editor", "updateNote", "deleteNote")

	if !role.HasPermission("updateNote") {
		t.Error("granted permission should match")
	}
	if role.HasPermission("manageRoles") {
		t.Error("ungranted permission should not match")
	}
	if role.Name() != "editor" {
		t.Errorf("expected 'editor', got %q", role.Name())
	}
	if len(role.Permissions()) != 2 {
		t.Errorf("expected 2 permissions, got %d", len(role.Permissions()))
	}
}

func TestStaticResolver_Errors(t *testing.T) {
	r := gate.NewStaticResolver[uint]()
	r.Set(1, gate.NewStaticRole("member"))
	r.Set(2, nil) // exists but role-less

	if _, err := r.Resolve(context.Background(), 1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	_, err := r.Resolve(context.Background(), 2)
	if !errors.Is(err, gate.ErrNoRoleAssigned) {
		t.Errorf("expected ErrNoRoleAssigned, got %v", err)
	}

	_, err = r.Resolve(context.Background(), 99)
	if !errors.Is(err, gate.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
