package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/eslsoft/courseboxd/internal/core"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	fixedNow := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	manager, err := NewTokenManager("secret", "courseboxd", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}
	manager.WithClock(func() time.Time { return fixedNow })

	userID := uuid.New()
	token, expiresAt, err := manager.Issue(userID)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if !expiresAt.Equal(fixedNow.Add(time.Hour)) {
		t.Fatalf("unexpected expiry %v", expiresAt)
	}

	got, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if got != userID {
		t.Fatalf("expected subject %v, got %v", userID, got)
	}
}

func TestTokenManager_RejectsInvalidTokens(t *testing.T) {
	fixedNow := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	manager, _ := NewTokenManager("secret", "courseboxd", time.Hour)
	manager.WithClock(func() time.Time { return fixedNow })

	token, _, err := manager.Issue(uuid.New())
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	other, _ := NewTokenManager("other-secret", "courseboxd", time.Hour)
	other.WithClock(func() time.Time { return fixedNow })

	foreignIssuer, _ := NewTokenManager("secret", "someone-else", time.Hour)
	foreignIssuer.WithClock(func() time.Time { return fixedNow })

	expired, _ := NewTokenManager("secret", "courseboxd", time.Hour)
	expired.WithClock(func() time.Time { return fixedNow.Add(2 * time.Hour) })

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	cases := []struct {
		name    string
		manager *TokenManager
		token   string
	}{
		{name: "wrong secret", manager: other, token: token},
		{name: "wrong issuer", manager: foreignIssuer, token: token},
		{name: "expired", manager: expired, token: token},
		{name: "tampered", manager: manager, token: tampered},
		{name: "garbage", manager: manager, token: "not-a-token"},
	}
	for _, tc := range cases {
		if _, err := tc.manager.Verify(tc.token); !errors.Is(err, core.ErrUnauthenticated) {
			t.Fatalf("%s: expected ErrUnauthenticated, got %v", tc.name, err)
		}
	}
}

func TestNewTokenManager_RequiresSecret(t *testing.T) {
	if _, err := NewTokenManager("", "courseboxd", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
	if _, err := NewTokenManager("secret", "courseboxd", 0); err == nil {
		t.Fatal("expected error for zero ttl")
	}
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("correct horse")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "correct horse" {
		t.Fatal("expected hashed password")
	}
	if err := hasher.Compare(hash, "correct horse"); err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if err := hasher.Compare(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error")
	}
	if NewBcryptHasher(99).cost != bcrypt.DefaultCost {
		t.Fatal("expected out-of-range cost to fall back to default")
	}
}
