// AngelaMos | 2026
// handler.go

package predict

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pestopia/backend/internal/core"
	"github.com/pestopia/backend/internal/middleware"
)

type Handler struct {
	service        *Service
	maxUploadBytes int64
	logger         *slog.Logger
}

func NewHandler(
	service *Service,
	maxUploadBytes int64,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/predict", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/", h.Predict)
		r.Get("/", h.List)
	})
}

func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			core.JSONError(w, core.ValidationError("image exceeds upload limit"))
			return
		}
		core.JSONError(w, core.ValidationError("multipart form required"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		core.JSONError(w, core.ValidationError("no image uploaded"))
		return
	}
	defer file.Close() //nolint:errcheck

	prediction, err := h.service.Predict(
		r.Context(),
		userID,
		header.Filename,
		file,
	)
	if err != nil {
		h.handlePredictError(w, err)
		return
	}

	core.OK(w, ToPredictionResponse(prediction))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	predictions, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.logger.Error("list predictions", "error", err)
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, PredictionListResponse{
		Predictions: ToPredictionResponseList(predictions),
	})
}

func (h *Handler) handlePredictError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrBusy):
		core.JSONError(w, core.UnavailableError(
			"classifier is at capacity, retry shortly",
			"PREDICT_BUSY",
		))
	case errors.Is(err, ErrInvocation), errors.Is(err, ErrBadOutput):
		h.logger.Error("classification failed", "error", err)
		core.InternalServerError(w, err)
	default:
		h.logger.Error("prediction failed", "error", err)
		core.InternalServerError(w, err)
	}
}
