package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/eslsoft/courseboxd/internal/core"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := setupTestClient(t)
	repo := NewUserRepository(client)

	user := createUserForTest(t, ctx, client, "ada")

	byEmail, err := repo.GetUserByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail() error = %v", err)
	}
	if byEmail.ID != user.ID || byEmail.PasswordHash != nil {
		t.Fatalf("unexpected user %#v", byEmail)
	}

	byUsername, err := repo.GetUserByUsername(ctx, "ada")
	if err != nil {
		t.Fatalf("GetUserByUsername() error = %v", err)
	}
	if byUsername.DefaultVisibility != core.VisibilityPublic {
		t.Fatalf("unexpected visibility %q", byUsername.DefaultVisibility)
	}

	if _, err := repo.GetUser(ctx, uuid.New()); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	duplicate := user
	duplicate.ID = uuid.New()
	duplicate.Username = "ada2"
	if err := repo.CreateUser(ctx, duplicate); !errors.Is(err, core.ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := setupTestClient(t)
	repo := NewUserRepository(client)
	user := createUserForTest(t, ctx, client, "ada")

	user.Name = lo.ToPtr("Ada Lovelace")
	user.AvatarURL = lo.ToPtr("https://cdn.example.com/ada.png")
	user.DefaultVisibility = core.VisibilityPrivate
	user.UpdatedAt = time.Now().UTC()
	if err := repo.UpdateProfile(ctx, user); err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}

	got, err := repo.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if lo.FromPtr(got.Name) != "Ada Lovelace" || lo.FromPtr(got.AvatarURL) != "https://cdn.example.com/ada.png" {
		t.Fatalf("profile not updated: %#v", got)
	}
	if got.DefaultVisibility != core.VisibilityPrivate {
		t.Fatalf("expected PRIVATE, got %q", got.DefaultVisibility)
	}

	missing := user
	missing.ID = uuid.New()
	if err := repo.UpdateProfile(ctx, missing); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
