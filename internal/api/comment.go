package api

import (
	"github.com/forumapi/forumapi/internal/domain"
)

// Request DTOs

type CreateCommentRequest struct {
	Content any `json:"content"`
}

// Response DTOs

type CreateCommentResponse struct {
	AddedComment domain.CreatedComment `json:"addedComment"`
}
