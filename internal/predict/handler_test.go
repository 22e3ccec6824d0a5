// AngelaMos | 2026
// handler_test.go

package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/pestopia/backend/internal/middleware"
)

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func asUser(userID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), middleware.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newTestRouter(t *testing.T, classifier Classifier) (chi.Router, *fakeRepo) {
	t.Helper()

	repo := &fakeRepo{}
	svc := NewService(repo, classifier, 1, t.TempDir(), testLogger())
	handler := NewHandler(svc, 1<<20, testLogger())

	router := chi.NewRouter()
	handler.RegisterRoutes(router, asUser("owner-1"))
	return router, repo
}

func TestHandler_PredictSuccess(t *testing.T) {
	t.Parallel()

	router, repo := newTestRouter(t, &fakeClassifier{result: okResult()})

	body, contentType := multipartBody(t, "image", "leaf.jpg", []byte("jpegdata"))
	req := httptest.NewRequest(http.MethodPost, "/predict/", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool               `json:"success"`
		Data    PredictionResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "aphid", resp.Data.ClassName)
	require.InDelta(t, 0.93, resp.Data.Confidence, 1e-9)
	require.True(t, json.Valid(resp.Data.Raw))

	require.Len(t, repo.created, 1)
	require.Equal(t, "owner-1", repo.created[0].OwnerID)
}

func TestHandler_PredictNoFile(t *testing.T) {
	t.Parallel()

	router, repo := newTestRouter(t, &fakeClassifier{result: okResult()})

	body, contentType := multipartBody(t, "wrong_field", "leaf.jpg", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/predict/", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, repo.created)
}

func TestHandler_PredictNotMultipart(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, &fakeClassifier{result: okResult()})

	req := httptest.NewRequest(http.MethodPost, "/predict/",
		bytes.NewBufferString(`{"image":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_PredictBusy(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	started := make(chan struct{})
	classifier := &fakeClassifier{
		result:  okResult(),
		block:   block,
		started: started,
	}
	router, _ := newTestRouter(t, classifier)

	go func() {
		body, contentType := multipartBody(t, "image", "a.jpg", []byte("x"))
		req := httptest.NewRequest(http.MethodPost, "/predict/", body)
		req.Header.Set("Content-Type", contentType)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}()

	<-started
	defer close(block)

	body, contentType := multipartBody(t, "image", "b.jpg", []byte("y"))
	req := httptest.NewRequest(http.MethodPost, "/predict/", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "PREDICT_BUSY", resp.Error.Code)
}

func TestHandler_PredictClassifierFailure(t *testing.T) {
	t.Parallel()

	router, repo := newTestRouter(t, &fakeClassifier{err: ErrInvocation})

	body, contentType := multipartBody(t, "image", "leaf.jpg", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/predict/", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Empty(t, repo.created)
}

func TestHandler_List(t *testing.T) {
	t.Parallel()

	classifier := &fakeClassifier{result: okResult()}
	repo := &fakeRepo{listOut: []Prediction{
		{ID: "p1", OwnerID: "owner-1", ClassName: "aphid",
			Raw: []byte(`{"class_name":"aphid","confidence":0.9}`)},
	}}
	svc := NewService(repo, classifier, 1, t.TempDir(), testLogger())
	handler := NewHandler(svc, 1<<20, testLogger())

	router := chi.NewRouter()
	handler.RegisterRoutes(router, asUser("owner-1"))

	req := httptest.NewRequest(http.MethodGet, "/predict/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data PredictionListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Predictions, 1)
	require.Equal(t, "p1", resp.Data.Predictions[0].ID)
}
