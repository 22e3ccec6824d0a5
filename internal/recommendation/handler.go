// AngelaMos | 2026
// handler.go

package recommendation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/pestopia/backend/internal/core"
	"github.com/pestopia/backend/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/recommendation", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{recID}", h.Get)
		r.Put("/{recID}", h.Update)
		r.Delete("/{recID}", h.Delete)
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreateRecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	rec, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToRecommendationResponse(rec))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	pestID := r.URL.Query().Get("pest_id")
	if pestID != "" {
		if _, err := uuid.Parse(pestID); err != nil {
			core.BadRequest(w, "pest_id must be a valid UUID")
			return
		}
	}

	recs, err := h.service.List(r.Context(), userID, pestID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, RecommendationListResponse{
		Recommendations: ToRecommendationResponseList(recs),
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	recID, ok := recIDParam(w, r)
	if !ok {
		return
	}

	rec, err := h.service.Get(r.Context(), recID, userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "recommendation")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToRecommendationResponse(rec))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	recID, ok := recIDParam(w, r)
	if !ok {
		return
	}

	var req UpdateRecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	rec, err := h.service.Update(r.Context(), recID, userID, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "recommendation")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToRecommendationResponse(rec))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	recID, ok := recIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), recID, userID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "recommendation")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func recIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	recID := chi.URLParam(r, "recID")
	if _, err := uuid.Parse(recID); err != nil {
		core.NotFound(w, "recommendation")
		return "", false
	}
	return recID, true
}
