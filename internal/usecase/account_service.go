package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/eslsoft/courseboxd/internal/core"
)

// AccountService coordinates registration, sign-in and profile edits.
type AccountService struct {
	users     core.UserRepository
	validator core.InputValidator
	hasher    core.PasswordHasher
	tokens    core.TokenIssuer
	logger    zerolog.Logger
	now       func() time.Time
}

// NewAccountService constructs an AccountService.
func NewAccountService(users core.UserRepository, validator core.InputValidator, hasher core.PasswordHasher, tokens core.TokenIssuer, logger zerolog.Logger) *AccountService {
	return &AccountService{
		users:     users,
		validator: validator,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger.With().Str("component", "account_service").Logger(),
		now:       time.Now,
	}
}

// WithClock allows tests to override the clock used by the service.
func (s *AccountService) WithClock(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

var _ core.AccountService = (*AccountService)(nil)

// Register creates an account and signs it in.
func (s *AccountService) Register(ctx context.Context, input core.RegistrationInput) (*core.Session, error) {
	reg, err := s.validator.Registration(input)
	if err != nil {
		return nil, err
	}

	if taken, err := s.exists(s.users.GetUserByEmail(ctx, reg.Email)); err != nil {
		return nil, err
	} else if taken {
		return nil, core.NewValidationError("email", "An account with this email already exists")
	}
	if taken, err := s.exists(s.users.GetUserByUsername(ctx, reg.Username)); err != nil {
		return nil, err
	} else if taken {
		return nil, core.NewValidationError("username", "This username is already taken")
	}

	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	user := core.User{
		ID:                uuid.New(),
		Email:             reg.Email,
		Username:          reg.Username,
		Name:              reg.Name,
		PasswordHash:      &hash,
		DefaultVisibility: reg.DefaultVisibility,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID.String()).Str("username", user.Username).Msg("account registered")
	return s.session(user)
}

// Login verifies credentials and issues a session token.
func (s *AccountService) Login(ctx context.Context, input core.CredentialsInput) (*core.Session, error) {
	creds, err := s.validator.Credentials(input)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.ErrInvalidCredentials
		}
		return nil, err
	}
	if user.PasswordHash == nil {
		return nil, core.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(*user.PasswordHash, creds.Password); err != nil {
		return nil, core.ErrInvalidCredentials
	}

	return s.session(*user)
}

// GetUser returns the account with the given id.
func (s *AccountService) GetUser(ctx context.Context, id uuid.UUID) (*core.User, error) {
	if id == uuid.Nil {
		return nil, core.ErrUnauthenticated
	}
	return s.users.GetUser(ctx, id)
}

// UpdateProfile edits the display attributes of the actor's account.
func (s *AccountService) UpdateProfile(ctx context.Context, actorID uuid.UUID, input core.ProfileInput) (*core.User, error) {
	update, err := s.validator.Profile(input)
	if err != nil {
		return nil, err
	}

	user, err := s.GetUser(ctx, actorID)
	if err != nil {
		return nil, err
	}

	user.Name = &update.Name
	user.AvatarURL = update.AvatarURL
	user.DefaultVisibility = update.DefaultVisibility
	user.UpdatedAt = s.now().UTC()
	if err := s.users.UpdateProfile(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AccountService) session(user core.User) (*core.Session, error) {
	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = nil
	return &core.Session{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

func (s *AccountService) exists(_ *core.User, err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, core.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}
