// MentorHive | 2026
// handler.go

package blog

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
	optionalAuth func(http.Handler) http.Handler,
) {
	r.Route("/blogs", func(r chi.Router) {
		r.With(optionalAuth).Get("/", h.ListBlogs)
		r.Get("/{blogID}", h.GetBlog)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Post("/", h.CreateBlog)
			r.Put("/{blogID}", h.UpdateBlog)
			r.Delete("/{blogID}", h.DeleteBlog)
			r.Post("/{blogID}/like", h.LikeBlog)
		})
	})
}

func (h *Handler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	blog, err := h.service.CreateBlog(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMentorNotApproved):
			core.JSONError(w, core.NewAppError(
				err,
				"only approved mentors can publish blogs",
				http.StatusForbidden,
				"MENTOR_NOT_APPROVED",
			))
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "user")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.CreatedWithMessage(
		w,
		"blog created successfully",
		ToBlogResponse(blog),
	)
}

func (h *Handler) GetBlog(w http.ResponseWriter, r *http.Request) {
	blog, err := h.service.GetBlog(r.Context(), chi.URLParam(r, "blogID"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "blog")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToBlogResponse(blog))
}

func (h *Handler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetUserRole(r.Context())

	var req UpdateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	blog, err := h.service.UpdateBlog(
		r.Context(),
		userID,
		role,
		chi.URLParam(r, "blogID"),
		req,
	)
	if err != nil {
		h.writeBlogError(w, err)
		return
	}

	core.OKWithMessage(w, "blog updated successfully", ToBlogResponse(blog))
}

func (h *Handler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetUserRole(r.Context())

	err := h.service.DeleteBlog(
		r.Context(),
		userID,
		role,
		chi.URLParam(r, "blogID"),
	)
	if err != nil {
		h.writeBlogError(w, err)
		return
	}

	core.OKWithMessage(w, "blog deleted successfully", nil)
}

func (h *Handler) LikeBlog(w http.ResponseWriter, r *http.Request) {
	likes, err := h.service.LikeBlog(r.Context(), chi.URLParam(r, "blogID"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "blog")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, map[string]int{"likes": likes})
}

func (h *Handler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	params := ListBlogsParams{
		Page:     queryInt(r, "page", 1),
		PageSize: queryInt(r, "limit", 20),
		Tag:      r.URL.Query().Get("tag"),
		AuthorID: r.URL.Query().Get("authorId"),
		Search:   r.URL.Query().Get("search"),
		IncludeUnpublished: r.URL.Query().
			Get("includeUnpublished") == "true",
	}

	callerID := middleware.GetUserID(r.Context())
	callerRole := middleware.GetUserRole(r.Context())

	blogs, total, err := h.service.ListBlogs(
		r.Context(),
		callerID,
		callerRole,
		params,
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	params.Normalize()
	core.Paginated(
		w,
		ToBlogResponseList(blogs),
		total,
		params.Page,
		params.PageSize,
	)
}

func (h *Handler) writeBlogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "blog")
	case errors.Is(err, core.ErrForbidden):
		core.JSONError(w, core.ForbiddenError(
			"you do not have permission to modify this blog",
		))
	default:
		core.InternalServerError(w, err)
	}
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
