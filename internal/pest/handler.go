// AngelaMos | 2026
// handler.go

package pest

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
	r.Route("/pest", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{pestID}", h.Get)
		r.Put("/{pestID}", h.Update)
		r.Delete("/{pestID}", h.Delete)
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreatePestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	pest, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToPestResponse(pest))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	pests, err := h.service.List(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, PestListResponse{Pests: ToPestResponseList(pests)})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	pestID, ok := pestIDParam(w, r)
	if !ok {
		return
	}

	detail, err := h.service.GetDetail(r.Context(), pestID, userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "pest")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, detail)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	pestID, ok := pestIDParam(w, r)
	if !ok {
		return
	}

	var req UpdatePestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	pest, err := h.service.Update(r.Context(), pestID, userID, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "pest")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPestResponse(pest))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	pestID, ok := pestIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), pestID, userID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "pest")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

// pestIDParam treats malformed ids the same as absent ones so id probing
// cannot distinguish the two.
func pestIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	pestID := chi.URLParam(r, "pestID")
	if _, err := uuid.Parse(pestID); err != nil {
		core.NotFound(w, "pest")
		return "", false
	}
	return pestID, true
}
