package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/eslsoft/courseboxd/internal/adapter/db"
	"github.com/eslsoft/courseboxd/internal/adapter/transport"
	"github.com/eslsoft/courseboxd/internal/config"
	"github.com/eslsoft/courseboxd/internal/usecase"
	"github.com/eslsoft/courseboxd/internal/validation"
)

func testConfig(t *testing.T) config.Config {
	return config.Config{
		HTTPAddress:     "127.0.0.1:0",
		ShutdownTimeout: time.Second,
		CORSOrigins:     []string{"https://app.example.com"},
		DatabaseDriver:  config.DriverSQLite,
		DatabaseURL:     fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", strings.ReplaceAll(t.Name(), "/", "_")),
		AuthSecret:      "server-test-secret",
		AuthIssuer:      "courseboxd-test",
		AuthTokenTTL:    time.Hour,
		BcryptCost:      bcrypt.MinCost,
		LogLevel:        "debug",
		LogFormat:       "json",
	}
}

func newTestServer(t *testing.T, logs io.Writer) *httptest.Server {
	t.Helper()
	cfg := testConfig(t)

	logger, err := newLogger(cfg, logs)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	client, err := NewEntClient(cfg)
	if err != nil {
		t.Fatalf("NewEntClient() error = %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	tokens, err := NewTokenManager(cfg)
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}

	v := validation.New()
	courses := usecase.NewCourseService(db.NewCourseRepository(client), v, logger)
	accounts := usecase.NewAccountService(db.NewUserRepository(client), v, NewPasswordHasher(cfg), tokens, logger)
	handler := NewHTTPHandler(cfg, logger, tokens, transport.NewCourseHandler(courses), transport.NewAccountHandler(accounts))

	srv := httptest.NewServer(NewServer(cfg, handler, client, logger).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, procedure, token string, body any) (int, map[string]any) {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, srv.URL+procedure, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("POST %s error = %v", procedure, err)
	}
	defer resp.Body.Close()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode %s response: %v", procedure, err)
	}
	return resp.StatusCode, out
}

func TestServer_Healthz(t *testing.T) {
	srv := newTestServer(t, io.Discard)

	resp, err := srv.Client().Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz error = %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Fatalf("healthz = %d %q", resp.StatusCode, body)
	}
}

func TestServer_RegisterThenCreateCourse(t *testing.T) {
	var logs bytes.Buffer
	srv := newTestServer(t, &logs)

	status, out := postJSON(t, srv, transport.AccountServiceRegisterProcedure, "", map[string]any{
		"email":           "ada@example.com",
		"username":        "ada",
		"password":        "analytical",
		"confirmPassword": "analytical",
	})
	if status != http.StatusOK {
		t.Fatalf("Register status = %d, body = %v", status, out)
	}
	session := out["session"].(map[string]any)
	token := session["token"].(string)

	status, out = postJSON(t, srv, transport.CourseServiceCreateCourseProcedure, "", map[string]any{
		"course": map[string]any{"title": "Launch"},
	})
	if status != http.StatusUnauthorized || out["code"] != "unauthenticated" {
		t.Fatalf("anonymous CreateCourse = %d %v", status, out)
	}

	status, out = postJSON(t, srv, transport.CourseServiceCreateCourseProcedure, token, map[string]any{
		"course": map[string]any{
			"title": "Launch",
			"videos": []map[string]any{
				{"title": "Part One", "url": "https://videos.example.com/1"},
				{"title": "Part Two", "url": "https://videos.example.com/2", "durationSeconds": 90},
			},
		},
	})
	if status != http.StatusOK {
		t.Fatalf("CreateCourse status = %d, body = %v", status, out)
	}
	course := out["course"].(map[string]any)
	if course["slug"] != "launch" || course["videoCount"] != float64(2) {
		t.Fatalf("unexpected course %v", course)
	}

	status, out = postJSON(t, srv, transport.CourseServiceCreateCourseProcedure, token, map[string]any{
		"course": map[string]any{
			"title":  "Launch",
			"videos": []map[string]any{{"title": "ab", "url": "not a url"}},
		},
	})
	if status != http.StatusBadRequest || out["code"] != "invalid_argument" {
		t.Fatalf("invalid CreateCourse = %d %v", status, out)
	}
	if details, _ := out["details"].([]any); len(details) != 1 {
		t.Fatalf("expected one validation detail, got %v", out["details"])
	}

	status, out = postJSON(t, srv, transport.CourseServiceListCoursesProcedure, "", map[string]any{})
	if status != http.StatusOK {
		t.Fatalf("ListCourses status = %d, body = %v", status, out)
	}
	if courses := out["courses"].([]any); len(courses) != 1 {
		t.Fatalf("expected 1 course, got %d", len(courses))
	}

	if !strings.Contains(logs.String(), `"message":"request"`) {
		t.Fatalf("expected access log entries, got %q", logs.String())
	}
}

func TestServer_CORSPreflight(t *testing.T) {
	srv := newTestServer(t, io.Discard)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+transport.CourseServiceCreateCourseProcedure, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "authorization,content-type")

	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("OPTIONS error = %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Fatalf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(t)
	cfg.LogLevel = "warn"

	logger, err := newLogger(cfg, &buf)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("unexpected log output %q", buf.String())
	}

	cfg.LogLevel = "loud"
	if _, err := newLogger(cfg, &buf); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
