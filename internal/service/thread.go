package service

import (
	"github.com/forumapi/forumapi/internal/domain"
)

type ThreadService interface {
	Create(payload domain.ThreadPayload) (domain.CreatedThread, error)
	GetWithComments(threadId string) (domain.ThreadDetail, error)
}

type Thread struct {
	threads  ThreadStorage
	comments CommentStorage
}

type ThreadStorage interface {
	CreateThread(thread domain.Thread) (domain.CreatedThread, error)
	// FindThread returns the thread's public fields joined with the owner's
	// display name.
	FindThread(threadId string) (domain.ThreadRow, error)
	// VerifyThread only checks existence, without paying for the projection.
	VerifyThread(threadId string) error
}

func NewThread(threads ThreadStorage, comments CommentStorage) ThreadService {
	return &Thread{threads, comments}
}

func (s *Thread) Create(payload domain.ThreadPayload) (domain.CreatedThread, error) {
	thread, err := domain.NewThread(payload)
	if err != nil {
		return domain.CreatedThread{}, err
	}
	return s.threads.CreateThread(thread)
}

// GetWithComments fetches the thread, lists its comments in creation order
// and renders them, redacting the deleted ones. A thread without comments is
// not an error; a missing thread is, and the comment listing is never reached.
func (s *Thread) GetWithComments(threadId string) (domain.ThreadDetail, error) {
	row, err := s.threads.FindThread(threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	commentRows, err := s.comments.ListCommentsByThread(threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	comments := make([]domain.RenderedComment, 0, len(commentRows))
	for _, cr := range commentRows {
		rendered, err := domain.NewRenderedComment(domain.RenderedCommentPayload{
			Id:        cr.Id,
			Username:  cr.Username,
			Date:      cr.Date,
			Content:   cr.Content,
			IsDeleted: cr.IsDeleted,
		})
		if err != nil {
			return domain.ThreadDetail{}, err
		}
		comments = append(comments, rendered)
	}
	return domain.NewThreadDetail(row, comments), nil
}
