package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forumapi/forumapi/internal/api"
	"github.com/forumapi/forumapi/internal/domain"
	mw "github.com/forumapi/forumapi/internal/middleware"
	"github.com/forumapi/forumapi/internal/utils"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	threadId := chi.URLParam(r, "threadId")

	var body api.CreateCommentRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	created, err := h.comment.Create(domain.CommentPayload{
		Content:  utils.SanitizeUserInput(body.Content),
		UserId:   user.Id,
		ThreadId: threadId,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.CreateCommentResponse{AddedComment: created})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")

	if err := h.comment.Delete(commentId, threadId, user.Id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
