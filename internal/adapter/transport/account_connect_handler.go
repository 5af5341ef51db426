package transport

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/eslsoft/courseboxd/internal/core"
)

// AccountServiceName is the fully-qualified name of the account service.
const AccountServiceName = "courseboxd.v1.AccountService"

const (
	AccountServiceRegisterProcedure      = "/" + AccountServiceName + "/Register"
	AccountServiceLoginProcedure         = "/" + AccountServiceName + "/Login"
	AccountServiceUpdateProfileProcedure = "/" + AccountServiceName + "/UpdateProfile"
)

// AccountHandler serves sign-up, sign-in and profile edits over Connect.
type AccountHandler struct {
	service core.AccountService
}

// NewAccountHandler constructs an account handler backed by the provided service.
func NewAccountHandler(service core.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// NewAccountServiceHandler builds an HTTP handler for every account procedure.
func NewAccountServiceHandler(h *AccountHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	routes := map[string]http.Handler{
		AccountServiceRegisterProcedure:      connect.NewUnaryHandler(AccountServiceRegisterProcedure, h.Register, writeOptions(opts)...),
		AccountServiceLoginProcedure:         connect.NewUnaryHandler(AccountServiceLoginProcedure, h.Login, writeOptions(opts)...),
		AccountServiceUpdateProfileProcedure: connect.NewUnaryHandler(AccountServiceUpdateProfileProcedure, h.UpdateProfile, writeOptions(opts)...),
	}
	return "/" + AccountServiceName + "/", serviceMux(routes)
}

// Register creates an account and returns a session for it.
func (h *AccountHandler) Register(ctx context.Context, req *connect.Request[core.RegistrationInput]) (*connect.Response[RegisterResponse], error) {
	session, err := h.service.Register(ctx, *req.Msg)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&RegisterResponse{Session: toSessionMessage(session)}), nil
}

// Login exchanges credentials for a session.
func (h *AccountHandler) Login(ctx context.Context, req *connect.Request[core.CredentialsInput]) (*connect.Response[LoginResponse], error) {
	session, err := h.service.Login(ctx, *req.Msg)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&LoginResponse{Session: toSessionMessage(session)}), nil
}

// UpdateProfile edits the caller's display attributes.
func (h *AccountHandler) UpdateProfile(ctx context.Context, req *connect.Request[core.ProfileInput]) (*connect.Response[UpdateProfileResponse], error) {
	actorID, err := core.RequireActor(ctx)
	if err != nil {
		return nil, err
	}

	user, err := h.service.UpdateProfile(ctx, actorID, *req.Msg)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&UpdateProfileResponse{User: toUserMessage(user)}), nil
}
