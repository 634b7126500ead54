package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forumapi/forumapi/internal/api"
	"github.com/forumapi/forumapi/internal/domain"
	mw "github.com/forumapi/forumapi/internal/middleware"
	"github.com/forumapi/forumapi/internal/utils"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body api.CreateThreadRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	created, err := h.thread.Create(domain.ThreadPayload{
		Title: utils.SanitizeUserInput(body.Title),
		Body:  utils.SanitizeUserInput(body.Body),
		Owner: user.Id,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.CreateThreadResponse{AddedThread: created})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")

	thread, err := h.thread.GetWithComments(threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.ThreadDetailResponse{Thread: thread})
}
