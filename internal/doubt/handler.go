// MentorHive | 2026
// handler.go

package doubt

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
	r.Route("/doubts", func(r chi.Router) {
		r.Get("/", h.ListDoubts)
		r.Get("/{doubtID}", h.GetDoubt)
		r.Get("/{doubtID}/answers", h.ListAnswers)
		r.Get("/{doubtID}/comments", h.ListComments)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Post("/", h.CreateDoubt)
			r.Put("/{doubtID}", h.UpdateDoubt)
			r.Delete("/{doubtID}", h.DeleteDoubt)
			r.Post("/{doubtID}/answers", h.CreateAnswer)
			r.Post("/{doubtID}/comments", h.CreateComment)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Put("/answers/{answerID}", h.UpdateAnswer)
		r.Delete("/answers/{answerID}", h.DeleteAnswer)
		r.Delete("/comments/{commentID}", h.DeleteComment)
	})
}

func (h *Handler) CreateDoubt(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreateDoubtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	doubt, err := h.service.CreateDoubt(r.Context(), userID, req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.CreatedWithMessage(
		w,
		"doubt posted successfully",
		ToDoubtResponse(doubt),
	)
}

func (h *Handler) GetDoubt(w http.ResponseWriter, r *http.Request) {
	doubt, err := h.service.GetDoubt(r.Context(), chi.URLParam(r, "doubtID"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "doubt")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToDoubtResponse(doubt))
}

func (h *Handler) UpdateDoubt(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetUserRole(r.Context())

	var req UpdateDoubtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	doubt, err := h.service.UpdateDoubt(
		r.Context(),
		userID,
		role,
		chi.URLParam(r, "doubtID"),
		req,
	)
	if err != nil {
		h.writeContentError(w, err, "doubt")
		return
	}

	core.OKWithMessage(w, "doubt updated successfully", ToDoubtResponse(doubt))
}

func (h *Handler) DeleteDoubt(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetUserRole(r.Context())

	err := h.service.DeleteDoubt(
		r.Context(),
		userID,
		role,
		chi.URLParam(r, "doubtID"),
	)
	if err != nil {
		h.writeContentError(w, err, "doubt")
		return
	}

	core.OKWithMessage(w, "doubt deleted successfully", nil)
}

func (h *Handler) ListDoubts(w http.ResponseWriter, r *http.Request) {
	params := ListDoubtsParams{
		Page:     queryInt(r, "page", 1),
		PageSize: queryInt(r, "limit", 20),
		Tag:      r.URL.Query().Get("tag"),
		Status:   r.URL.Query().Get("status"),
		AuthorID: r.URL.Query().Get("authorId"),
	}

	doubts, total, err := h.service.ListDoubts(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	params.Normalize()
	core.Paginated(
		w,
		ToDoubtResponseList(doubts),
		total,
		params.Page,
		params.PageSize,
	)
}

func (h *Handler) CreateAnswer(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreateAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	answer, err := h.service.CreateAnswer(
		r.Context(),
		userID,
		chi.URLParam(r, "doubtID"),
		req,
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "doubt")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.CreatedWithMessage(
		w,
		"answer posted successfully",
		ToAnswerResponse(answer),
	)
}

func (h *Handler) UpdateAnswer(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetUserRole(r.Context())

	var req UpdateAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	answer, err := h.service.UpdateAnswer(
		r.Context(),
		userID,
		role,
		chi.URLParam(r, "answerID"),
		req,
	)
	if err != nil {
		h.writeContentError(w, err, "answer")
		return
	}

	core.OKWithMessage(
		w,
		"answer updated successfully",
		ToAnswerResponse(answer),
	)
}

func (h *Handler) DeleteAnswer(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetUserRole(r.Context())

	err := h.service.DeleteAnswer(
		r.Context(),
		userID,
		role,
		chi.URLParam(r, "answerID"),
	)
	if err != nil {
		h.writeContentError(w, err, "answer")
		return
	}

	core.OKWithMessage(w, "answer deleted successfully", nil)
}

func (h *Handler) ListAnswers(w http.ResponseWriter, r *http.Request) {
	answers, err := h.service.ListAnswers(
		r.Context(),
		chi.URLParam(r, "doubtID"),
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "doubt")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToAnswerResponseList(answers))
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	comment, err := h.service.CreateComment(
		r.Context(),
		userID,
		chi.URLParam(r, "doubtID"),
		req,
	)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "comment target")
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "parent comment belongs to another doubt")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.CreatedWithMessage(
		w,
		"comment posted successfully",
		ToCommentResponse(comment),
	)
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	role := middleware.GetUserRole(r.Context())

	err := h.service.DeleteComment(
		r.Context(),
		userID,
		role,
		chi.URLParam(r, "commentID"),
	)
	if err != nil {
		h.writeContentError(w, err, "comment")
		return
	}

	core.OKWithMessage(w, "comment deleted successfully", nil)
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.service.ListComments(
		r.Context(),
		chi.URLParam(r, "doubtID"),
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "doubt")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToCommentResponseList(comments))
}

func (h *Handler) writeContentError(
	w http.ResponseWriter,
	err error,
	kind string,
) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, kind)
	case errors.Is(err, core.ErrForbidden):
		core.JSONError(w, core.ForbiddenError(
			"you do not have permission to modify this "+kind,
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
