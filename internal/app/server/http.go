package server

import (
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/eslsoft/courseboxd/internal/adapter/transport"
	"github.com/eslsoft/courseboxd/internal/config"
	"github.com/eslsoft/courseboxd/internal/core"
)

// NewHTTPHandler wires the Connect handlers into a ServeMux ready for serving.
func NewHTTPHandler(
	cfg config.Config,
	logger zerolog.Logger,
	verifier core.IdentityVerifier,
	courses *transport.CourseHandler,
	accounts *transport.AccountHandler,
) http.Handler {
	interceptors := connect.WithInterceptors(
		transport.NewErrorInterceptor(logger),
		transport.NewAuthInterceptor(verifier),
	)

	mux := http.NewServeMux()

	path, svc := transport.NewCourseServiceHandler(courses, interceptors)
	logger.Debug().Str("path", path).Msg("mounted service")
	mux.Handle(path, svc)

	path, svc = transport.NewAccountServiceHandler(accounts, interceptors)
	logger.Debug().Str("path", path).Msg("mounted service")
	mux.Handle(path, svc)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var handler http.Handler = mux
	if len(cfg.CORSOrigins) > 0 {
		handler = newCORS(cfg.CORSOrigins).Handler(handler)
	}
	return withAccessLog(logger, handler)
}

func newCORS(origins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{
			"Authorization",
			"Content-Type",
			"Connect-Protocol-Version",
			"Connect-Timeout-Ms",
		},
		ExposedHeaders: []string{"Grpc-Status", "Grpc-Message", "Grpc-Status-Details-Bin"},
		MaxAge:         7200,
	})
}

func withAccessLog(logger zerolog.Logger, next http.Handler) http.Handler {
	access := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	})
	return hlog.NewHandler(logger)(
		hlog.RequestIDHandler("request_id", "X-Request-Id")(
			hlog.RemoteAddrHandler("remote_addr")(access(next)),
		),
	)
}
