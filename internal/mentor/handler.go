// MentorHive | 2026
// handler.go

package mentor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mentorhive/backend/internal/core"
	"github.com/mentorhive/backend/internal/middleware"
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
	r.Route("/mentors", func(r chi.Router) {
		r.Get("/", h.ListApproved)
		r.Get("/{userID}/profile", h.GetProfile)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Post("/profile", h.CreateProfile)
			r.Put("/profile", h.UpdateProfile)
		})
	})
}

func (h *Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetUserRole(r.Context())

	var req CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	profile, err := h.service.CreateProfile(r.Context(), userID, role, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotMentor):
			core.JSONError(w, core.ForbiddenError(
				"only mentors can create a mentor profile",
			))
		case errors.Is(err, ErrProfileExists):
			core.JSONError(w, core.DuplicateError("profile"))
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.CreatedWithMessage(
		w,
		"mentor profile created successfully",
		ToProfileResponse(profile),
	)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "mentor profile")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToProfileResponse(profile))
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "mentor profile")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OKWithMessage(
		w,
		"mentor profile updated successfully",
		ToProfileResponse(profile),
	)
}

func (h *Handler) ListApproved(w http.ResponseWriter, r *http.Request) {
	params := ListProfilesParams{
		Page:     queryInt(r, "page", 1),
		PageSize: queryInt(r, "limit", 20),
	}

	profiles, total, err := h.service.ListApproved(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	params.Normalize()
	core.Paginated(
		w,
		ToProfileResponseList(profiles),
		total,
		params.Page,
		params.PageSize,
	)
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
