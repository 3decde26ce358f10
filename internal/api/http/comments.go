package http

import (
	"net/http"

	"github.com/clipstack/clipstack/internal/api/service"
	"github.com/clipstack/clipstack/pkg/httpx"
)

// CommentsHandler serves comment CRUD under videos.
type CommentsHandler struct {
	CommentService *service.CommentService
}

func (h *CommentsHandler) HandleListByVideo(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	comments, err := h.CommentService.ListByVideo(r.Context(), r.PathValue("videoID"), page, limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCommentResponses(comments))
}

// HandleListOwn lists the caller's comments across all videos.
func (h *CommentsHandler) HandleListOwn(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	comments, err := h.CommentService.ListOwn(r.Context(), httpx.UserID(r.Context()), page, limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCommentResponses(comments))
}

func (h *CommentsHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	comment, err := h.CommentService.Add(r.Context(), httpx.UserID(r.Context()),
		r.PathValue("videoID"), req.Content)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toCommentResponse(comment))
}

func (h *CommentsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	comment, err := h.CommentService.Update(r.Context(), httpx.UserID(r.Context()),
		r.PathValue("commentID"), req.Content)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCommentResponse(comment))
}

func (h *CommentsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.CommentService.Delete(r.Context(), httpx.UserID(r.Context()), r.PathValue("commentID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
