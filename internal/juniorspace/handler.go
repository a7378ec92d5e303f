// MentorHive | 2026
// handler.go

package juniorspace

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
	r.Route("/junior-space/posts", func(r chi.Router) {
		r.Get("/", h.ListPosts)
		r.Get("/{postID}", h.GetPost)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Post("/", h.CreatePost)
			r.Delete("/{postID}", h.DeletePost)
		})
	})
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	post, err := h.service.CreatePost(r.Context(), userID, req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.CreatedWithMessage(w, "post created successfully", ToPostResponse(post))
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.GetPost(r.Context(), chi.URLParam(r, "postID"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "post")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPostResponse(post))
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetUserRole(r.Context())

	err := h.service.DeletePost(
		r.Context(),
		userID,
		role,
		chi.URLParam(r, "postID"),
	)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "post")
		case errors.Is(err, core.ErrForbidden):
			core.JSONError(w, core.ForbiddenError(
				"you do not have permission to delete this post",
			))
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OKWithMessage(w, "post deleted successfully", nil)
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	params := ListPostsParams{
		Page:     queryInt(r, "page", 1),
		PageSize: queryInt(r, "limit", 20),
		Category: r.URL.Query().Get("category"),
		AuthorID: r.URL.Query().Get("authorId"),
	}

	posts, total, err := h.service.ListPosts(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	params.Normalize()
	core.Paginated(
		w,
		ToPostResponseList(posts),
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
