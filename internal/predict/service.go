// AngelaMos | 2026
// service.go

package predict

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrBusy is returned when every classifier slot is occupied. Admission is
// bounded: one external process per slot, no queue.
var ErrBusy = errors.New("classifier at capacity")

type Classifier interface {
	Classify(ctx context.Context, imagePath string) (*Result, error)
}

type Service struct {
	repo       Repository
	classifier Classifier
	sem        chan struct{}
	uploadDir  string
	logger     *slog.Logger
}

func NewService(
	repo Repository,
	classifier Classifier,
	maxConcurrent int,
	uploadDir string,
	logger *slog.Logger,
) *Service {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	return &Service{
		repo:       repo,
		classifier: classifier,
		sem:        make(chan struct{}, maxConcurrent),
		uploadDir:  uploadDir,
		logger:     logger,
	}
}

// Predict writes the uploaded image to a transient file, runs the classifier
// against it, and persists the top result. The transient file is removed in
// every outcome; no record is created on failure.
func (s *Service) Predict(
	ctx context.Context,
	ownerID, filename string,
	image io.Reader,
) (*Prediction, error) {
	imagePath, err := s.saveUpload(filename, image)
	if err != nil {
		return nil, err
	}
	defer func() {
		if rmErr := os.Remove(imagePath); rmErr != nil {
			s.logger.Warn("remove transient upload",
				"path", imagePath,
				"error", rmErr,
			)
		}
	}()

	select {
	case s.sem <- struct{}{}:
	default:
		return nil, ErrBusy
	}
	defer func() { <-s.sem }()

	result, err := s.classifier.Classify(ctx, imagePath)
	if err != nil {
		return nil, err
	}

	prediction := &Prediction{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		ImagePath:  imagePath,
		ClassName:  result.ClassName,
		Confidence: result.Confidence,
		Raw:        result.Raw,
	}

	if err := s.repo.Create(ctx, prediction); err != nil {
		return nil, err
	}

	return prediction, nil
}

func (s *Service) List(
	ctx context.Context,
	ownerID string,
) ([]Prediction, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) saveUpload(
	filename string,
	image io.Reader,
) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	ext := filepath.Ext(filepath.Base(filename))
	f, err := os.CreateTemp(s.uploadDir, "upload-*"+ext)
	if err != nil {
		return "", fmt.Errorf("create transient file: %w", err)
	}

	if _, err := io.Copy(f, image); err != nil {
		_ = f.Close()          //nolint:errcheck // cleanup on copy failure
		_ = os.Remove(f.Name()) //nolint:errcheck // cleanup on copy failure
		return "", fmt.Errorf("write transient file: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name()) //nolint:errcheck // cleanup on close failure
		return "", fmt.Errorf("close transient file: %w", err)
	}

	return f.Name(), nil
}
