// MentorHive | 2026
// handler.go

package moderation

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mentorhive/backend/internal/audit"
	"github.com/mentorhive/backend/internal/core"
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

// RegisterRoutes mounts onto the /admin subrouter. The system stats
// surface registers its own /system subtree alongside these.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Post("/register", h.RegisterAdmin)

	r.Route("/{adminID}", func(r chi.Router) {
		r.Use(authenticator)

		r.Patch("/mentors/approve", h.ApproveMentor)
		r.Patch("/mentors/reject", h.RejectMentor)

		r.Delete("/doubts", h.DeleteDoubt)
		r.Delete("/answers", h.DeleteAnswer)
		r.Delete("/comments", h.DeleteComment)
		r.Delete("/junior-posts", h.DeleteJuniorPost)

		r.Post("/users/ban", h.BanUser)
		r.Post("/users/unban", h.UnbanUser)

		r.Get("/actions", h.ListActions)
		r.Get("/stats", h.Stats)
	})
}

func (h *Handler) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	var req RegisterAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	admin, err := h.service.RegisterAdmin(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSecretKey):
			core.JSONError(w, core.InvalidSecretKeyError())
		case errors.Is(err, core.ErrDuplicateKey):
			core.JSONError(w, core.DuplicateError("email"))
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.CreatedWithMessage(w, "admin registered successfully", AdminResponse{
		ID:    admin.ID,
		Name:  admin.Name,
		Email: admin.Email,
		Role:  admin.Role,
	})
}

func (h *Handler) ApproveMentor(w http.ResponseWriter, r *http.Request) {
	adminID := chi.URLParam(r, "adminID")

	var req MentorActionRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.ApproveMentor(r.Context(), adminID, req.MentorUserID)
	if err != nil {
		h.writeModerationError(w, err, "mentor profile")
		return
	}

	core.OKWithMessage(w, "mentor approved successfully", resp)
}

func (h *Handler) RejectMentor(w http.ResponseWriter, r *http.Request) {
	adminID := chi.URLParam(r, "adminID")

	var req MentorActionRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.RejectMentor(r.Context(), adminID, req.MentorUserID)
	if err != nil {
		h.writeModerationError(w, err, "mentor profile")
		return
	}

	core.OKWithMessage(w, "mentor rejected successfully", resp)
}

func (h *Handler) DeleteDoubt(w http.ResponseWriter, r *http.Request) {
	adminID := chi.URLParam(r, "adminID")

	var req DeleteDoubtRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.DeleteDoubt(r.Context(), adminID, req.DoubtID)
	if err != nil {
		h.writeModerationError(w, err, "doubt")
		return
	}

	core.OKWithMessage(w, "doubt deleted successfully", resp)
}

func (h *Handler) DeleteAnswer(w http.ResponseWriter, r *http.Request) {
	adminID := chi.URLParam(r, "adminID")

	var req DeleteAnswerRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.DeleteAnswer(r.Context(), adminID, req.AnswerID)
	if err != nil {
		h.writeModerationError(w, err, "answer")
		return
	}

	core.OKWithMessage(w, "answer deleted successfully", resp)
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	adminID := chi.URLParam(r, "adminID")

	var req DeleteCommentRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.DeleteComment(r.Context(), adminID, req.CommentID)
	if err != nil {
		h.writeModerationError(w, err, "comment")
		return
	}

	core.OKWithMessage(w, "comment deleted successfully", resp)
}

func (h *Handler) DeleteJuniorPost(w http.ResponseWriter, r *http.Request) {
	adminID := chi.URLParam(r, "adminID")

	var req DeleteJuniorPostRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.DeleteJuniorPost(r.Context(), adminID, req.PostID)
	if err != nil {
		h.writeModerationError(w, err, "post")
		return
	}

	core.OKWithMessage(w, "junior post deleted successfully", resp)
}

func (h *Handler) BanUser(w http.ResponseWriter, r *http.Request) {
	adminID := chi.URLParam(r, "adminID")

	var req UserActionRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.BanUser(r.Context(), adminID, req.UserID)
	if err != nil {
		h.writeModerationError(w, err, "user")
		return
	}

	core.OKWithMessage(w, "user banned successfully", resp)
}

func (h *Handler) UnbanUser(w http.ResponseWriter, r *http.Request) {
	adminID := chi.URLParam(r, "adminID")

	var req UserActionRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.UnbanUser(r.Context(), adminID, req.UserID)
	if err != nil {
		h.writeModerationError(w, err, "user")
		return
	}

	core.OKWithMessage(w, "user unbanned successfully", resp)
}

func (h *Handler) ListActions(w http.ResponseWriter, r *http.Request) {
	adminID := chi.URLParam(r, "adminID")

	params := audit.ListActionsParams{
		ActionType: r.URL.Query().Get("actionType"),
		Page:       queryInt(r, "page", 1),
		PageSize:   queryInt(r, "limit", 20),
	}

	actions, total, err := h.service.ListActions(r.Context(), adminID, params)
	if err != nil {
		h.writeModerationError(w, err, "admin")
		return
	}

	params.Normalize()
	core.Paginated(
		w,
		audit.ToActionResponseList(actions),
		total,
		params.Page,
		params.PageSize,
	)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	adminID := chi.URLParam(r, "adminID")

	stats, err := h.service.Stats(r.Context(), adminID)
	if err != nil {
		h.writeModerationError(w, err, "admin")
		return
	}

	core.OK(w, stats)
}

func (h *Handler) decodeAndValidate(
	w http.ResponseWriter,
	r *http.Request,
	req any,
) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		core.BadRequest(w, "invalid request body")
		return false
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return false
	}

	return true
}

func (h *Handler) writeModerationError(
	w http.ResponseWriter,
	err error,
	kind string,
) {
	switch {
	case errors.Is(err, ErrNotAdmin):
		core.JSONError(w, core.NewAppError(
			err,
			"unauthorized: admin access required",
			http.StatusForbidden,
			"UNAUTHORIZED",
		))
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, kind)
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
