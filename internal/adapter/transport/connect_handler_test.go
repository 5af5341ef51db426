package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/eslsoft/courseboxd/internal/core"
)

func newTestServer(t *testing.T, courses core.CourseService, accounts core.AccountService, verifier core.IdentityVerifier) *httptest.Server {
	t.Helper()
	interceptors := connect.WithInterceptors(NewErrorInterceptor(zerolog.Nop()), NewAuthInterceptor(verifier))

	mux := http.NewServeMux()
	mux.Handle(NewCourseServiceHandler(NewCourseHandler(courses), interceptors))
	mux.Handle(NewAccountServiceHandler(NewAccountHandler(accounts), interceptors))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func call[Req, Res any](t *testing.T, srv *httptest.Server, procedure, token string, msg *Req) (*Res, error) {
	t.Helper()
	client := connect.NewClient[Req, Res](srv.Client(), srv.URL+procedure, connect.WithCodec(jsonCodec{}))
	req := connect.NewRequest(msg)
	if token != "" {
		req.Header().Set("Authorization", "Bearer "+token)
	}
	res, err := client.CallUnary(context.Background(), req)
	if err != nil {
		return nil, err
	}
	return res.Msg, nil
}

func TestCourseHandler_CreateCourseRequiresActor(t *testing.T) {
	called := false
	courses := &stubCourseService{
		createCourseFn: func(context.Context, uuid.UUID, core.CourseInput) (*core.Course, error) {
			called = true
			return nil, errors.New("unexpected")
		},
	}
	srv := newTestServer(t, courses, &stubAccountService{}, stubVerifier{})

	_, err := call[CreateCourseRequest, CreateCourseResponse](t, srv, CourseServiceCreateCourseProcedure, "", &CreateCourseRequest{
		Course: core.CourseInput{Title: lo.ToPtr("Launch")},
	})
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
	if called {
		t.Fatal("service must not be called without an actor")
	}
}

func TestCourseHandler_CreateCourse(t *testing.T) {
	actorID := uuid.New()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	courses := &stubCourseService{
		createCourseFn: func(_ context.Context, gotActor uuid.UUID, in core.CourseInput) (*core.Course, error) {
			if gotActor != actorID {
				t.Fatalf("actor = %v, want %v", gotActor, actorID)
			}
			if lo.FromPtr(in.Title) != "Launch" || len(in.Videos) != 1 {
				t.Fatalf("unexpected input %#v", in)
			}
			courseID := uuid.New()
			return &core.Course{
				ID:        courseID,
				Slug:      "launch",
				Title:     "Launch",
				CreatorID: actorID,
				CreatedAt: now,
				UpdatedAt: now,
				Videos: []core.Video{{
					ID: uuid.New(), CourseID: courseID, CreatorID: actorID,
					Slug: "part-one", Title: "Part One", URL: "https://videos.example.com/1", Position: 1,
				}},
			}, nil
		},
	}
	srv := newTestServer(t, courses, &stubAccountService{}, stubVerifier{tokens: map[string]uuid.UUID{"tok": actorID}})

	res, err := call[CreateCourseRequest, CreateCourseResponse](t, srv, CourseServiceCreateCourseProcedure, "tok", &CreateCourseRequest{
		Course: core.CourseInput{
			Title: lo.ToPtr("Launch"),
			Videos: []core.VideoInput{{
				Title: lo.ToPtr("Part One"),
				URL:   lo.ToPtr("https://videos.example.com/1"),
			}},
		},
	})
	if err != nil {
		t.Fatalf("CreateCourse error = %v", err)
	}
	if res.Course.Slug != "launch" || res.Course.VideoCount != 1 {
		t.Fatalf("unexpected course %#v", res.Course)
	}
	if len(res.Course.Videos) != 1 || res.Course.Videos[0].Position != 1 {
		t.Fatalf("unexpected videos %#v", res.Course.Videos)
	}
	if !res.Course.CreatedAt.Equal(now) {
		t.Fatalf("createdAt = %v, want %v", res.Course.CreatedAt, now)
	}
}

func TestCourseHandler_ValidationDetails(t *testing.T) {
	actorID := uuid.New()
	courses := &stubCourseService{
		createCourseFn: func(context.Context, uuid.UUID, core.CourseInput) (*core.Course, error) {
			return nil, core.NewValidationError("videos[0].title", "Video title must be at least 3 characters")
		},
	}
	srv := newTestServer(t, courses, &stubAccountService{}, stubVerifier{tokens: map[string]uuid.UUID{"tok": actorID}})

	_, err := call[CreateCourseRequest, CreateCourseResponse](t, srv, CourseServiceCreateCourseProcedure, "tok", &CreateCourseRequest{})
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	fields := validationFields(err)
	if fields["videos[0].title"] != "Video title must be at least 3 characters" {
		t.Fatalf("unexpected validation fields %v", fields)
	}
}

func TestCourseHandler_UpdateCourseRejectsBadID(t *testing.T) {
	actorID := uuid.New()
	srv := newTestServer(t, &stubCourseService{}, &stubAccountService{}, stubVerifier{tokens: map[string]uuid.UUID{"tok": actorID}})

	_, err := call[UpdateCourseRequest, UpdateCourseResponse](t, srv, CourseServiceUpdateCourseProcedure, "tok", &UpdateCourseRequest{
		CourseID: "not-a-uuid",
	})
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if validationFields(err)["courseId"] != "Invalid identifier" {
		t.Fatalf("unexpected validation fields %v", validationFields(err))
	}
}

func TestCourseHandler_UpdateCoursePassesVideoPresence(t *testing.T) {
	actorID, courseID := uuid.New(), uuid.New()
	var got core.CourseUpdateInput
	courses := &stubCourseService{
		updateCourseFn: func(_ context.Context, id, actor uuid.UUID, in core.CourseUpdateInput) (*core.Course, error) {
			if id != courseID || actor != actorID {
				t.Fatalf("unexpected ids %v %v", id, actor)
			}
			got = in
			return &core.Course{ID: courseID, Slug: "launch", Title: "Launch"}, nil
		},
	}
	srv := newTestServer(t, courses, &stubAccountService{}, stubVerifier{tokens: map[string]uuid.UUID{"tok": actorID}})

	_, err := call[UpdateCourseRequest, UpdateCourseResponse](t, srv, CourseServiceUpdateCourseProcedure, "tok", &UpdateCourseRequest{
		CourseID: courseID.String(),
		Course: core.CourseUpdateInput{
			CourseInput:     core.CourseInput{Title: lo.ToPtr("Launch"), Videos: []core.VideoInput{}},
			RemovedVideoIDs: []string{"abc"},
		},
	})
	if err != nil {
		t.Fatalf("UpdateCourse error = %v", err)
	}
	if got.Videos == nil {
		t.Fatal("expected an empty videos list to arrive as present")
	}
	if len(got.RemovedVideoIDs) != 1 || got.RemovedVideoIDs[0] != "abc" {
		t.Fatalf("unexpected removed ids %v", got.RemovedVideoIDs)
	}
}

func TestCourseHandler_ErrorCodes(t *testing.T) {
	actorID := uuid.New()
	cases := []struct {
		name string
		err  error
		want connect.Code
	}{
		{name: "forbidden", err: core.ErrForbidden, want: connect.CodePermissionDenied},
		{name: "not found", err: core.ErrNotFound, want: connect.CodeNotFound},
		{name: "invalid reference", err: core.ErrInvalidVideoReference, want: connect.CodeInvalidArgument},
		{name: "exhausted", err: core.ErrSlugExhausted, want: connect.CodeInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			courses := &stubCourseService{
				deleteVideoFn: func(context.Context, uuid.UUID, uuid.UUID) (*core.DeletedVideo, error) {
					return nil, tc.err
				},
			}
			srv := newTestServer(t, courses, &stubAccountService{}, stubVerifier{tokens: map[string]uuid.UUID{"tok": actorID}})

			_, err := call[DeleteVideoRequest, DeleteVideoResponse](t, srv, CourseServiceDeleteVideoProcedure, "tok", &DeleteVideoRequest{
				VideoID: uuid.NewString(),
			})
			if connect.CodeOf(err) != tc.want {
				t.Fatalf("code = %v, want %v", connect.CodeOf(err), tc.want)
			}
		})
	}
}

func TestCourseHandler_GetCourseOverHTTPGet(t *testing.T) {
	courses := &stubCourseService{
		getCourseBySlugFn: func(_ context.Context, slug string) (*core.Course, error) {
			if slug != "launch" {
				return nil, core.ErrNotFound
			}
			return &core.Course{
				ID:      uuid.New(),
				Slug:    "launch",
				Title:   "Launch",
				Creator: &core.Creator{ID: uuid.New(), Username: "ada"},
			}, nil
		},
	}
	srv := newTestServer(t, courses, &stubAccountService{}, stubVerifier{})

	query := url.Values{}
	query.Set("encoding", "json")
	query.Set("message", `{"slug":"launch"}`)
	resp, err := srv.Client().Get(srv.URL + CourseServiceGetCourseProcedure + "?" + query.Encode())
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
	}

	var out GetCourseResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Course.Slug != "launch" || out.Course.Creator == nil || out.Course.Creator.Username != "ada" {
		t.Fatalf("unexpected course %#v", out.Course)
	}
}

func TestAccountHandler_RegisterAndProfile(t *testing.T) {
	userID := uuid.New()
	expires := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	accounts := &stubAccountService{
		registerFn: func(_ context.Context, in core.RegistrationInput) (*core.Session, error) {
			if in.Username != "ada" {
				return nil, core.NewValidationError("username", "This username is already taken")
			}
			return &core.Session{
				User:      core.User{ID: userID, Email: in.Email, Username: in.Username, DefaultVisibility: core.VisibilityPublic},
				Token:     "tok",
				ExpiresAt: expires,
			}, nil
		},
		updateProfileFn: func(_ context.Context, actor uuid.UUID, in core.ProfileInput) (*core.User, error) {
			return &core.User{ID: actor, Username: "ada", Name: lo.ToPtr(in.Name), DefaultVisibility: core.Visibility(in.DefaultVisibility)}, nil
		},
	}
	srv := newTestServer(t, &stubCourseService{}, accounts, stubVerifier{tokens: map[string]uuid.UUID{"tok": userID}})

	reg, err := call[core.RegistrationInput, RegisterResponse](t, srv, AccountServiceRegisterProcedure, "", &core.RegistrationInput{
		Email: "ada@example.com", Username: "ada", Password: "analytical", ConfirmPassword: "analytical",
	})
	if err != nil {
		t.Fatalf("Register error = %v", err)
	}
	if reg.Session.Token != "tok" || reg.Session.User.ID != userID.String() || !reg.Session.ExpiresAt.Equal(expires) {
		t.Fatalf("unexpected session %#v", reg.Session)
	}

	_, err = call[core.RegistrationInput, RegisterResponse](t, srv, AccountServiceRegisterProcedure, "", &core.RegistrationInput{Username: "taken"})
	if validationFields(err)["username"] != "This username is already taken" {
		t.Fatalf("expected username field error, got %v", err)
	}

	if _, err := call[core.ProfileInput, UpdateProfileResponse](t, srv, AccountServiceUpdateProfileProcedure, "", &core.ProfileInput{Name: "Ada"}); connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Fatalf("expected unauthenticated, got %v", err)
	}

	profile, err := call[core.ProfileInput, UpdateProfileResponse](t, srv, AccountServiceUpdateProfileProcedure, reg.Session.Token, &core.ProfileInput{
		Name: "Countess", DefaultVisibility: "PRIVATE",
	})
	if err != nil {
		t.Fatalf("UpdateProfile error = %v", err)
	}
	if lo.FromPtr(profile.User.Name) != "Countess" || profile.User.DefaultVisibility != "PRIVATE" {
		t.Fatalf("unexpected profile %#v", profile.User)
	}
}

func TestAccountHandler_LoginFailureIsUnauthenticated(t *testing.T) {
	accounts := &stubAccountService{
		loginFn: func(context.Context, core.CredentialsInput) (*core.Session, error) {
			return nil, core.ErrInvalidCredentials
		},
	}
	srv := newTestServer(t, &stubCourseService{}, accounts, stubVerifier{})

	_, err := call[core.CredentialsInput, LoginResponse](t, srv, AccountServiceLoginProcedure, "", &core.CredentialsInput{
		Email: "ada@example.com", Password: "nope",
	})
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

type stubCourseService struct {
	core.CourseService
	getCourseBySlugFn func(ctx context.Context, slug string) (*core.Course, error)
	createCourseFn    func(ctx context.Context, actorID uuid.UUID, in core.CourseInput) (*core.Course, error)
	updateCourseFn    func(ctx context.Context, courseID, actorID uuid.UUID, in core.CourseUpdateInput) (*core.Course, error)
	deleteVideoFn     func(ctx context.Context, videoID, actorID uuid.UUID) (*core.DeletedVideo, error)
}

func (s *stubCourseService) GetCourseBySlug(ctx context.Context, slug string) (*core.Course, error) {
	if s.getCourseBySlugFn == nil {
		return nil, errors.New("unexpected GetCourseBySlug call")
	}
	return s.getCourseBySlugFn(ctx, slug)
}

func (s *stubCourseService) CreateCourse(ctx context.Context, actorID uuid.UUID, in core.CourseInput) (*core.Course, error) {
	if s.createCourseFn == nil {
		return nil, errors.New("unexpected CreateCourse call")
	}
	return s.createCourseFn(ctx, actorID, in)
}

func (s *stubCourseService) UpdateCourse(ctx context.Context, courseID, actorID uuid.UUID, in core.CourseUpdateInput) (*core.Course, error) {
	if s.updateCourseFn == nil {
		return nil, errors.New("unexpected UpdateCourse call")
	}
	return s.updateCourseFn(ctx, courseID, actorID, in)
}

func (s *stubCourseService) DeleteVideo(ctx context.Context, videoID, actorID uuid.UUID) (*core.DeletedVideo, error) {
	if s.deleteVideoFn == nil {
		return nil, errors.New("unexpected DeleteVideo call")
	}
	return s.deleteVideoFn(ctx, videoID, actorID)
}

type stubAccountService struct {
	core.AccountService
	registerFn      func(ctx context.Context, in core.RegistrationInput) (*core.Session, error)
	loginFn         func(ctx context.Context, in core.CredentialsInput) (*core.Session, error)
	updateProfileFn func(ctx context.Context, actorID uuid.UUID, in core.ProfileInput) (*core.User, error)
}

func (s *stubAccountService) Register(ctx context.Context, in core.RegistrationInput) (*core.Session, error) {
	if s.registerFn == nil {
		return nil, errors.New("unexpected Register call")
	}
	return s.registerFn(ctx, in)
}

func (s *stubAccountService) Login(ctx context.Context, in core.CredentialsInput) (*core.Session, error) {
	if s.loginFn == nil {
		return nil, errors.New("unexpected Login call")
	}
	return s.loginFn(ctx, in)
}

func (s *stubAccountService) UpdateProfile(ctx context.Context, actorID uuid.UUID, in core.ProfileInput) (*core.User, error) {
	if s.updateProfileFn == nil {
		return nil, errors.New("unexpected UpdateProfile call")
	}
	return s.updateProfileFn(ctx, actorID, in)
}
