// AngelaMos | 2026
// routes_test.go

package server

import (
	"log/slog"
	"net/http"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/pestopia/backend/internal/auth"
	"github.com/pestopia/backend/internal/config"
	"github.com/pestopia/backend/internal/health"
	"github.com/pestopia/backend/internal/ops"
	"github.com/pestopia/backend/internal/pest"
	"github.com/pestopia/backend/internal/predict"
	"github.com/pestopia/backend/internal/recommendation"
)

// TestRouteManifest pins the public surface of the API: adding, renaming,
// or dropping a route has to show up here.
func TestRouteManifest(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	healthHandler := health.NewHandler(nil, nil)

	srv := New(Config{
		ServerConfig:  config.ServerConfig{},
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	passthrough := func(next http.Handler) http.Handler { return next }

	healthHandler.RegisterRoutes(router)
	auth.NewHandler(nil).RegisterRoutes(router, passthrough)
	pest.NewHandler(nil).RegisterRoutes(router, passthrough)
	recommendation.NewHandler(nil).RegisterRoutes(router, passthrough)
	predict.NewHandler(nil, 0, logger).RegisterRoutes(router, passthrough)
	ops.NewHandler(ops.HandlerConfig{}).RegisterRoutes(router, passthrough)

	var routes []string
	err := chi.Walk(router, func(
		method, route string,
		_ http.Handler,
		_ ...func(http.Handler) http.Handler,
	) error {
		if route != "/" {
			route = strings.TrimSuffix(route, "/")
		}
		routes = append(routes, method+" "+route)
		return nil
	})
	require.NoError(t, err)

	sort.Strings(routes)

	want := []string{
		"DELETE /pest/{pestID}",
		"DELETE /recommendation/{recID}",
		"GET /",
		"GET /auth/me",
		"GET /health/live",
		"GET /health/ready",
		"GET /ops/stats",
		"GET /pest",
		"GET /pest/{pestID}",
		"GET /predict",
		"GET /recommendation",
		"GET /recommendation/{recID}",
		"POST /auth/signin",
		"POST /auth/signup",
		"POST /pest",
		"POST /predict",
		"PUT /pest/{pestID}",
		"PUT /recommendation/{recID}",
	}

	require.Equal(t, want, routes)
}
