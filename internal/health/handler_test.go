// AngelaMos | 2026
// handler_test.go

package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	err error
}

func (f *fakeChecker) Ping(_ context.Context) error {
	return f.err
}

func newTestRouter(db, redis Checker) chi.Router {
	router := chi.NewRouter()
	NewHandler(db, redis).RegisterRoutes(router)
	return router
}

func TestRoot_PlainText(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&fakeChecker{}, &fakeChecker{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	require.Equal(t, "ok", rec.Body.String())
}

func TestLiveness(t *testing.T) {
	t.Parallel()

	// liveness ignores dependency health
	router := newTestRouter(
		&fakeChecker{err: errors.New("db down")},
		&fakeChecker{err: errors.New("redis down")},
	)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/health/live", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestReadiness_AllHealthy(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&fakeChecker{}, &fakeChecker{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Checks, 2)
}

func TestReadiness_DependencyDown(t *testing.T) {
	t.Parallel()

	router := newTestRouter(
		&fakeChecker{},
		&fakeChecker{err: errors.New("connection refused")},
	)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "degraded", resp.Status)
}

func TestShutdown_FailsProbes(t *testing.T) {
	t.Parallel()

	handler := NewHandler(&fakeChecker{}, &fakeChecker{})
	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	handler.SetShutdown(true)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/health/live", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
