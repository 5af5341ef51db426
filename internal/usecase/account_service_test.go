package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/lo"

	"github.com/eslsoft/courseboxd/internal/core"
)

func TestAccountService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)

	session, err := c.accounts.Register(ctx, core.RegistrationInput{
		Email:           "  Ada@Example.com ",
		Username:        "Ada_L",
		Name:            lo.ToPtr("Ada Lovelace"),
		Password:        "analytical",
		ConfirmPassword: "analytical",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if session.Token == "" || session.ExpiresAt.IsZero() {
		t.Fatalf("expected issued token, got %#v", session)
	}
	if session.User.Email != "ada@example.com" || session.User.Username != "ada_l" {
		t.Fatalf("expected lowercased identity, got %s / %s", session.User.Email, session.User.Username)
	}
	if session.User.PasswordHash != nil {
		t.Fatalf("session must not expose the password hash")
	}
	if session.User.DefaultVisibility != core.VisibilityPublic {
		t.Fatalf("expected PUBLIC default, got %q", session.User.DefaultVisibility)
	}

	login, err := c.accounts.Login(ctx, core.CredentialsInput{Email: "ADA@example.com", Password: "analytical"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if login.User.ID != session.User.ID {
		t.Fatalf("login resolved a different account")
	}

	for _, creds := range []core.CredentialsInput{
		{Email: "ada@example.com", Password: "wrong password"},
		{Email: "nobody@example.com", Password: "analytical"},
	} {
		if _, err := c.accounts.Login(ctx, creds); !errors.Is(err, core.ErrInvalidCredentials) {
			t.Fatalf("Login(%s) expected ErrInvalidCredentials, got %v", creds.Email, err)
		}
	}
}

func TestAccountService_RegisterRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)
	c.register(t, "ada")

	cases := []struct {
		name  string
		input core.RegistrationInput
		field string
	}{
		{
			name:  "email",
			input: core.RegistrationInput{Email: "ada@example.com", Username: "someone", Password: "password1", ConfirmPassword: "password1"},
			field: "email",
		},
		{
			name:  "username",
			input: core.RegistrationInput{Email: "other@example.com", Username: "ADA", Password: "password1", ConfirmPassword: "password1"},
			field: "username",
		},
	}
	for _, tc := range cases {
		_, err := c.accounts.Register(ctx, tc.input)
		var verr *core.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
		if verr.Fields[tc.field] == "" {
			t.Fatalf("%s: expected %s error, got %v", tc.name, tc.field, verr.Fields)
		}
	}
}

func TestAccountService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)
	user := c.register(t, "ada")

	updated, err := c.accounts.UpdateProfile(ctx, user.ID, core.ProfileInput{
		Name:              " Countess ",
		AvatarURL:         lo.ToPtr("https://cdn.example.com/ada.png"),
		DefaultVisibility: "PRIVATE",
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if lo.FromPtr(updated.Name) != "Countess" || updated.DefaultVisibility != core.VisibilityPrivate {
		t.Fatalf("unexpected profile %#v", updated)
	}

	got, err := c.accounts.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if lo.FromPtr(got.AvatarURL) != "https://cdn.example.com/ada.png" {
		t.Fatalf("avatar not persisted: %#v", got)
	}

	_, err = c.accounts.UpdateProfile(ctx, user.ID, core.ProfileInput{Name: "Ada", DefaultVisibility: "SECRET"})
	var verr *core.ValidationError
	if !errors.As(err, &verr) || verr.Fields["defaultVisibility"] == "" {
		t.Fatalf("expected defaultVisibility error, got %v", err)
	}
}
