package handler

import (
	"encoding/json"
	"net/http"

	"github.com/forumapi/forumapi/internal/config"
	"github.com/forumapi/forumapi/internal/logger"
	"github.com/forumapi/forumapi/internal/service"
)

type Handler struct {
	auth    service.AuthService
	thread  service.ThreadService
	comment service.CommentService
	cfg     *config.Config
}

func New(auth service.AuthService, thread service.ThreadService, comment service.CommentService, cfg *config.Config) *Handler {
	return &Handler{auth, thread, comment, cfg}
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
