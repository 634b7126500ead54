package api

import (
	"github.com/forumapi/forumapi/internal/domain"
)

// Request DTOs

// CreateThreadRequest keeps its fields untyped: the domain factory decides
// between missing-field and type-mismatch failures, not the JSON decoder.
type CreateThreadRequest struct {
	Title any `json:"title"`
	Body  any `json:"body"`
}

// Response DTOs

type CreateThreadResponse struct {
	AddedThread domain.CreatedThread `json:"addedThread"`
}

type ThreadDetailResponse struct {
	Thread domain.ThreadDetail `json:"thread"`
}
