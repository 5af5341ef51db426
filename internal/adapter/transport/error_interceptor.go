package transport

import (
	"context"
	"errors"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/eslsoft/courseboxd/internal/core"
)

const internalErrorMessage = "internal server error"

// NewErrorInterceptor creates a Connect interceptor that maps domain errors
// to transport-friendly Connect errors.
func NewErrorInterceptor(logger zerolog.Logger) connect.Interceptor {
	return connect.UnaryInterceptorFunc(func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			res, err := next(ctx, req)
			if err == nil {
				return res, nil
			}

			mapped := mapError(err)
			if connect.CodeOf(mapped) == connect.CodeInternal {
				logger.Error().Err(err).Str("procedure", req.Spec().Procedure).Msg("request failed")
			}
			return nil, mapped
		}
	})
}

func mapError(err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}

	var validationErr *core.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return validationError(validationErr)
	case errors.Is(err, core.ErrValidation),
		errors.Is(err, core.ErrInvalidVideoReference):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, core.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, core.ErrForbidden):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, core.ErrUnauthenticated),
		errors.Is(err, core.ErrInvalidCredentials):
		return connect.NewError(connect.CodeUnauthenticated, err)
	case errors.Is(err, core.ErrAccountExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, errors.New(internalErrorMessage))
	}
}

// validationError attaches the field-path map as a google.protobuf.Struct detail.
func validationError(verr *core.ValidationError) error {
	out := connect.NewError(connect.CodeInvalidArgument, verr)

	fields, err := structpb.NewStruct(lo.MapValues(verr.Fields, func(msg string, _ string) any { return msg }))
	if err != nil {
		return out
	}
	if detail, err := connect.NewErrorDetail(fields); err == nil {
		out.AddDetail(detail)
	}
	return out
}
