package service

import (
	"github.com/forumapi/forumapi/internal/domain"
)

type CommentService interface {
	Create(payload domain.CommentPayload) (domain.CreatedComment, error)
	Delete(commentId, threadId, userId string) error
}

type Comment struct {
	comments CommentStorage
	threads  ThreadStorage
}

type CommentStorage interface {
	CreateComment(comment domain.Comment) (domain.CreatedComment, error)
	// VerifyComment only checks existence.
	VerifyComment(commentId string) error
	// CheckCommentOwner fails with AuthorizationError when no comment with
	// that id is owned by that user. It does not tell a missing comment apart
	// from a foreign one; callers wanting a distinct NotFound must call
	// VerifyComment first.
	CheckCommentOwner(commentId, userId string) error
	// SoftDeleteComment marks the comment deleted. The flag is one-way.
	SoftDeleteComment(commentId string) error
	// ListCommentsByThread returns every comment on the thread in creation
	// order, soft-deleted ones included.
	ListCommentsByThread(threadId string) ([]domain.CommentRow, error)
}

func NewComment(comments CommentStorage, threads ThreadStorage) CommentService {
	return &Comment{comments, threads}
}

// Create persists a comment on an existing thread. The parent thread is
// verified before the comment is constructed or written, so a bad thread id
// never leaves an orphan comment behind.
func (s *Comment) Create(payload domain.CommentPayload) (domain.CreatedComment, error) {
	threadId, _ := payload.ThreadId.(string)
	if err := s.threads.VerifyThread(threadId); err != nil {
		return domain.CreatedComment{}, err
	}
	comment, err := domain.NewComment(payload)
	if err != nil {
		return domain.CreatedComment{}, err
	}
	return s.comments.CreateComment(comment)
}

// Delete soft-deletes an owned comment. The checks run strictly in order:
// thread existence, then comment existence, then ownership, then the delete
// itself. The first violated precondition is the one reported, so a wrong
// thread id surfaces as thread-not-found even when the comment id is bad too.
func (s *Comment) Delete(commentId, threadId, userId string) error {
	if err := s.threads.VerifyThread(threadId); err != nil {
		return err
	}
	if err := s.comments.VerifyComment(commentId); err != nil {
		return err
	}
	if err := s.comments.CheckCommentOwner(commentId, userId); err != nil {
		return err
	}
	return s.comments.SoftDeleteComment(commentId)
}
