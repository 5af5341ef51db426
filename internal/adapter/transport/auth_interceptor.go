package transport

import (
	"context"
	"fmt"
	"strings"

	"connectrpc.com/connect"

	"github.com/eslsoft/courseboxd/internal/core"
)

const bearerPrefix = "Bearer "

// NewAuthInterceptor resolves the bearer token of each request into an actor
// id on the context. Requests without a token pass through anonymously;
// handlers that mutate state require an actor themselves.
func NewAuthInterceptor(verifier core.IdentityVerifier) connect.Interceptor {
	return connect.UnaryInterceptorFunc(func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			header := strings.TrimSpace(req.Header().Get("Authorization"))
			if header == "" {
				return next(ctx, req)
			}

			if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
				return nil, fmt.Errorf("%w: unsupported authorization scheme", core.ErrUnauthenticated)
			}
			userID, err := verifier.Verify(strings.TrimSpace(header[len(bearerPrefix):]))
			if err != nil {
				return nil, err
			}
			return next(core.WithActor(ctx, userID), req)
		}
	})
}
