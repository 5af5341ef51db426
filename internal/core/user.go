package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Visibility is a user's default publishing preference.
type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
)

// User represents a registered account.
type User struct {
	ID                uuid.UUID
	Email             string
	Username          string
	Name              *string
	PasswordHash      *string
	AvatarURL         *string
	DefaultVisibility Visibility
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Session is an authenticated user with a bearer token.
type Session struct {
	User      User
	Token     string
	ExpiresAt time.Time
}

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user User) error
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	UpdateProfile(ctx context.Context, user User) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer mints bearer tokens for a user.
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, time.Time, error)
}

// IdentityVerifier resolves a bearer token to a user id.
type IdentityVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

// AccountService exposes the account use cases to adapters.
type AccountService interface {
	Register(ctx context.Context, input RegistrationInput) (*Session, error)
	Login(ctx context.Context, input CredentialsInput) (*Session, error)
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	UpdateProfile(ctx context.Context, actorID uuid.UUID, input ProfileInput) (*User, error)
}
