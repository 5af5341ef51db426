package db

import (
	"context"

	"github.com/google/uuid"

	entgenerated "github.com/eslsoft/courseboxd/internal/adapter/db/ent/generated"
	"github.com/eslsoft/courseboxd/internal/adapter/db/ent/generated/predicate"
	entuser "github.com/eslsoft/courseboxd/internal/adapter/db/ent/generated/user"
	"github.com/eslsoft/courseboxd/internal/core"
)

// UserRepository persists accounts using Ent.
type UserRepository struct {
	client *entgenerated.Client
}

// NewUserRepository constructs an Ent-backed user repository.
func NewUserRepository(client *entgenerated.Client) *UserRepository {
	return &UserRepository{client: client}
}

var _ core.UserRepository = (*UserRepository)(nil)

// CreateUser inserts a new account.
func (r *UserRepository) CreateUser(ctx context.Context, user core.User) error {
	err := r.client.User.Create().
		SetID(user.ID).
		SetEmail(user.Email).
		SetUsername(user.Username).
		SetNillableName(user.Name).
		SetNillablePasswordHash(user.PasswordHash).
		SetNillableAvatarURL(user.AvatarURL).
		SetDefaultVisibility(string(user.DefaultVisibility)).
		SetCreatedAt(user.CreatedAt).
		SetUpdatedAt(user.UpdatedAt).
		Exec(ctx)
	return wrapError("insert user", uniqueAs(err, core.ErrAccountExists))
}

// GetUser fetches an account by id.
func (r *UserRepository) GetUser(ctx context.Context, id uuid.UUID) (*core.User, error) {
	return r.getUser(ctx, "get user", entuser.ID(id))
}

// GetUserByEmail fetches an account by lowercased email.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*core.User, error) {
	return r.getUser(ctx, "get user by email", entuser.EmailEQ(email))
}

// GetUserByUsername fetches an account by lowercased username.
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*core.User, error) {
	return r.getUser(ctx, "get user by username", entuser.UsernameEQ(username))
}

// UpdateProfile writes the display attributes of an account.
func (r *UserRepository) UpdateProfile(ctx context.Context, user core.User) error {
	update := r.client.User.UpdateOneID(user.ID).
		SetDefaultVisibility(string(user.DefaultVisibility)).
		SetUpdatedAt(user.UpdatedAt)
	setOrClear(user.Name, update.SetName, update.ClearName)
	setOrClear(user.AvatarURL, update.SetAvatarURL, update.ClearAvatarURL)

	return wrapError("update profile", update.Exec(ctx))
}

func (r *UserRepository) getUser(ctx context.Context, op string, pred predicate.User) (*core.User, error) {
	row, err := r.client.User.Query().Where(pred).Only(ctx)
	if err != nil {
		return nil, wrapError(op, err)
	}
	return &core.User{
		ID:                row.ID,
		Email:             row.Email,
		Username:          row.Username,
		Name:              row.Name,
		PasswordHash:      row.PasswordHash,
		AvatarURL:         row.AvatarURL,
		DefaultVisibility: core.Visibility(row.DefaultVisibility),
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}, nil
}
