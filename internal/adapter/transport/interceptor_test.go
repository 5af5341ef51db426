package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/eslsoft/courseboxd/internal/core"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want connect.Code
	}{
		{name: "validation", err: core.NewValidationError("title", "Title is required"), want: connect.CodeInvalidArgument},
		{name: "wrapped validation", err: fmt.Errorf("%w: bad input", core.ErrValidation), want: connect.CodeInvalidArgument},
		{name: "video reference", err: core.ErrInvalidVideoReference, want: connect.CodeInvalidArgument},
		{name: "not found", err: fmt.Errorf("get course: %w", core.ErrNotFound), want: connect.CodeNotFound},
		{name: "forbidden", err: core.ErrForbidden, want: connect.CodePermissionDenied},
		{name: "unauthenticated", err: core.ErrUnauthenticated, want: connect.CodeUnauthenticated},
		{name: "credentials", err: core.ErrInvalidCredentials, want: connect.CodeUnauthenticated},
		{name: "account exists", err: core.ErrAccountExists, want: connect.CodeAlreadyExists},
		{name: "slug exhausted", err: core.ErrSlugExhausted, want: connect.CodeInternal},
		{name: "persistence", err: fmt.Errorf("insert: %w", core.ErrPersistence), want: connect.CodeInternal},
		{name: "connect passthrough", err: connect.NewError(connect.CodeResourceExhausted, errors.New("slow down")), want: connect.CodeResourceExhausted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := connect.CodeOf(mapError(tc.err)); got != tc.want {
				t.Fatalf("mapError() code = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMapError_HidesInternalDetails(t *testing.T) {
	err := mapError(fmt.Errorf("insert course: %w: pq: connection refused", core.ErrPersistence))

	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect error, got %T", err)
	}
	if connectErr.Message() != internalErrorMessage {
		t.Fatalf("expected generic message, got %q", connectErr.Message())
	}
}

func TestMapError_AttachesValidationFields(t *testing.T) {
	verr := core.NewValidationError("videos[0].title", "Video title must be at least 3 characters")
	verr.Add("removedVideoIds[1]", "Invalid identifier")

	fields := validationFields(mapError(verr))
	want := map[string]string{
		"videos[0].title":    "Video title must be at least 3 characters",
		"removedVideoIds[1]": "Invalid identifier",
	}
	if fmt.Sprint(fields) != fmt.Sprint(want) {
		t.Fatalf("validation fields = %v, want %v", fields, want)
	}
}

func TestErrorInterceptor_LogsInternalFailures(t *testing.T) {
	var buf bytes.Buffer
	interceptor := NewErrorInterceptor(zerolog.New(&buf))

	unary := interceptor.WrapUnary(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, fmt.Errorf("list courses: %w: disk full", core.ErrPersistence)
	})
	if _, err := unary(context.Background(), connect.NewRequest(&ListCoursesRequest{})); connect.CodeOf(err) != connect.CodeInternal {
		t.Fatalf("expected internal error, got %v", err)
	}
	if !strings.Contains(buf.String(), "disk full") {
		t.Fatalf("expected underlying error to be logged, got %q", buf.String())
	}

	buf.Reset()
	unary = interceptor.WrapUnary(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, core.ErrNotFound
	})
	if _, err := unary(context.Background(), connect.NewRequest(&GetCourseRequest{})); connect.CodeOf(err) != connect.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected client errors not to be logged, got %q", buf.String())
	}
}

func TestAuthInterceptor(t *testing.T) {
	userID := uuid.New()
	verifier := stubVerifier{tokens: map[string]uuid.UUID{"good-token": userID}}
	interceptor := NewAuthInterceptor(verifier)

	cases := []struct {
		name      string
		header    string
		wantActor uuid.UUID
		wantErr   error
	}{
		{name: "anonymous"},
		{name: "bearer", header: "Bearer good-token", wantActor: userID},
		{name: "lowercase scheme", header: "bearer good-token", wantActor: userID},
		{name: "unknown token", header: "Bearer forged", wantErr: core.ErrUnauthenticated},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: core.ErrUnauthenticated},
		{name: "short header", header: "Bear", wantErr: core.ErrUnauthenticated},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotActor uuid.UUID
			nextCalled := false
			unary := interceptor.WrapUnary(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
				nextCalled = true
				gotActor, _ = core.ActorFromContext(ctx)
				return connect.NewResponse(&ListCoursesResponse{}), nil
			})

			req := connect.NewRequest(&ListCoursesRequest{})
			if tc.header != "" {
				req.Header().Set("Authorization", tc.header)
			}

			_, err := unary(context.Background(), req)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				if nextCalled {
					t.Fatal("expected interceptor to block the request")
				}
				return
			}
			if err != nil {
				t.Fatalf("unary() error = %v", err)
			}
			if gotActor != tc.wantActor {
				t.Fatalf("actor = %v, want %v", gotActor, tc.wantActor)
			}
		})
	}
}

type stubVerifier struct {
	tokens map[string]uuid.UUID
}

func (s stubVerifier) Verify(token string) (uuid.UUID, error) {
	id, ok := s.tokens[token]
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: unknown token", core.ErrUnauthenticated)
	}
	return id, nil
}

// validationFields extracts the field-path map attached to a Connect error.
func validationFields(err error) map[string]string {
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		return nil
	}
	for _, detail := range connectErr.Details() {
		msg, err := detail.Value()
		if err != nil {
			continue
		}
		if fields, ok := msg.(*structpb.Struct); ok {
			return lo.MapValues(fields.AsMap(), func(v any, _ string) string {
				s, _ := v.(string)
				return s
			})
		}
	}
	return nil
}
