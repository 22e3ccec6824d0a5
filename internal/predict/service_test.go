// AngelaMos | 2026
// service_test.go

package predict

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	mu      sync.Mutex
	created []*Prediction
	listOut []Prediction
	err     error
}

func (f *fakeRepo) Create(_ context.Context, p *Prediction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	p.CreatedAt = time.Now()
	f.created = append(f.created, p)
	return nil
}

func (f *fakeRepo) ListByOwner(
	_ context.Context,
	_ string,
) ([]Prediction, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.listOut, nil
}

type fakeClassifier struct {
	mu        sync.Mutex
	paths     []string
	result    *Result
	err       error
	block     chan struct{}
	started   chan struct{}
	startOnce sync.Once
}

func (f *fakeClassifier) Classify(
	_ context.Context,
	imagePath string,
) (*Result, error) {
	f.mu.Lock()
	f.paths = append(f.paths, imagePath)
	f.mu.Unlock()

	if f.started != nil {
		f.startOnce.Do(func() { close(f.started) })
	}
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func okResult() *Result {
	return &Result{
		ClassName:  "aphid",
		Confidence: 0.93,
		Raw:        json.RawMessage(`[{"class_name":"aphid","confidence":0.93}]`),
	}
}

func TestService_PredictPersistsTopResult(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	classifier := &fakeClassifier{result: okResult()}
	svc := NewService(repo, classifier, 2, t.TempDir(), testLogger())

	prediction, err := svc.Predict(
		context.Background(),
		"owner-1",
		"leaf.jpg",
		strings.NewReader("image-bytes"),
	)
	require.NoError(t, err)
	require.Equal(t, "owner-1", prediction.OwnerID)
	require.Equal(t, "aphid", prediction.ClassName)
	require.InDelta(t, 0.93, prediction.Confidence, 1e-9)
	require.NotEmpty(t, prediction.ID)
	require.Len(t, repo.created, 1)
}

func TestService_TransientFileRemovedOnSuccess(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	classifier := &fakeClassifier{result: okResult()}
	svc := NewService(&fakeRepo{}, classifier, 2, dir, testLogger())

	_, err := svc.Predict(
		context.Background(),
		"owner-1",
		"leaf.jpg",
		strings.NewReader("image-bytes"),
	)
	require.NoError(t, err)

	require.Len(t, classifier.paths, 1)
	_, statErr := os.Stat(classifier.paths[0])
	require.True(t, os.IsNotExist(statErr))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestService_TransientFileRemovedOnFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	classifier := &fakeClassifier{err: ErrBadOutput}
	svc := NewService(&fakeRepo{}, classifier, 2, dir, testLogger())

	_, err := svc.Predict(
		context.Background(),
		"owner-1",
		"leaf.jpg",
		strings.NewReader("image-bytes"),
	)
	require.ErrorIs(t, err, ErrBadOutput)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestService_NoRecordOnFailure(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	classifier := &fakeClassifier{err: ErrInvocation}
	svc := NewService(repo, classifier, 2, t.TempDir(), testLogger())

	_, err := svc.Predict(
		context.Background(),
		"owner-1",
		"leaf.jpg",
		strings.NewReader("image-bytes"),
	)
	require.ErrorIs(t, err, ErrInvocation)
	require.Empty(t, repo.created)
}

func TestService_BusyWhenSaturated(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	started := make(chan struct{})
	classifier := &fakeClassifier{
		result:  okResult(),
		block:   block,
		started: started,
	}
	svc := NewService(&fakeRepo{}, classifier, 1, t.TempDir(), testLogger())

	done := make(chan error, 1)
	go func() {
		_, err := svc.Predict(
			context.Background(),
			"owner-1",
			"leaf.jpg",
			strings.NewReader("image-bytes"),
		)
		done <- err
	}()

	<-started

	_, err := svc.Predict(
		context.Background(),
		"owner-2",
		"leaf.jpg",
		strings.NewReader("image-bytes"),
	)
	require.ErrorIs(t, err, ErrBusy)

	close(block)
	require.NoError(t, <-done)

	// slot freed, next request admitted
	_, err = svc.Predict(
		context.Background(),
		"owner-3",
		"leaf.jpg",
		strings.NewReader("image-bytes"),
	)
	require.NoError(t, err)
}

func TestService_UploadKeepsExtension(t *testing.T) {
	t.Parallel()

	classifier := &fakeClassifier{result: okResult()}
	svc := NewService(&fakeRepo{}, classifier, 1, t.TempDir(), testLogger())

	_, err := svc.Predict(
		context.Background(),
		"owner-1",
		"photo.PNG",
		strings.NewReader("image-bytes"),
	)
	require.NoError(t, err)
	require.Len(t, classifier.paths, 1)
	require.Equal(t, ".PNG", filepath.Ext(classifier.paths[0]))
}

func TestService_ListPassesThrough(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{listOut: []Prediction{
		{ID: "p1", OwnerID: "owner-1", ClassName: "aphid"},
	}}
	svc := NewService(repo, &fakeClassifier{}, 1, t.TempDir(), testLogger())

	out, err := svc.List(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "p1", out[0].ID)
}

func TestService_RepoErrorSurfaces(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("db down")
	repo := &fakeRepo{err: wantErr}
	classifier := &fakeClassifier{result: okResult()}
	svc := NewService(repo, classifier, 1, t.TempDir(), testLogger())

	_, err := svc.Predict(
		context.Background(),
		"owner-1",
		"leaf.jpg",
		strings.NewReader("image-bytes"),
	)
	require.ErrorIs(t, err, wantErr)
}
