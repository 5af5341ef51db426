//go:build wireinject

package server

import (
	"github.com/google/wire"

	"github.com/eslsoft/courseboxd/internal/adapter/auth"
	"github.com/eslsoft/courseboxd/internal/adapter/db"
	adaptertransport "github.com/eslsoft/courseboxd/internal/adapter/transport"
	"github.com/eslsoft/courseboxd/internal/core"
	"github.com/eslsoft/courseboxd/internal/usecase"
	"github.com/eslsoft/courseboxd/internal/validation"
)

// InitializeServer sets up the full HTTP server with all dependencies wired.
func InitializeServer() (*Server, error) {
	wire.Build(
		NewConfig,
		NewLogger,
		NewEntClient,
		wire.Bind(new(core.CourseRepository), new(*db.CourseRepository)),
		db.NewCourseRepository,
		wire.Bind(new(core.UserRepository), new(*db.UserRepository)),
		db.NewUserRepository,
		wire.Bind(new(core.InputValidator), new(*validation.Validator)),
		validation.New,
		wire.Bind(new(core.PasswordHasher), new(*auth.BcryptHasher)),
		NewPasswordHasher,
		wire.Bind(new(core.TokenIssuer), new(*auth.TokenManager)),
		wire.Bind(new(core.IdentityVerifier), new(*auth.TokenManager)),
		NewTokenManager,
		wire.Bind(new(core.CourseService), new(*usecase.CourseService)),
		usecase.NewCourseService,
		wire.Bind(new(core.AccountService), new(*usecase.AccountService)),
		usecase.NewAccountService,
		adaptertransport.NewCourseHandler,
		adaptertransport.NewAccountHandler,
		NewHTTPHandler,
		NewServer,
	)
	return nil, nil
}
