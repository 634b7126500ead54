package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forumapi/forumapi/internal/domain"
	internal_errors "github.com/forumapi/forumapi/internal/errors"
)

func TestCommentCreate(t *testing.T) {
	t.Run("Successful creation verifies the thread first", func(t *testing.T) {
		threads := &MockThreadStorage{}
		comments := &MockCommentStorage{}
		service := NewComment(comments, threads)

		comments.createCommentFunc = func(comment domain.Comment) (domain.CreatedComment, error) {
			assert.Equal(t, domain.Comment{Content: "sebuah comment", Owner: "user-123", Thread: "thread-123"}, comment)
			return domain.CreatedComment{Id: "comment-456", Content: comment.Content, Owner: comment.Owner}, nil
		}

		created, err := service.Create(domain.CommentPayload{Content: "sebuah comment", UserId: "user-123", ThreadId: "thread-123"})

		require.NoError(t, err)
		assert.Equal(t, domain.CreatedComment{Id: "comment-456", Content: "sebuah comment", Owner: "user-123"}, created)
		assert.True(t, threads.verifyThreadCalled, "VerifyThread should be called")
		assert.Equal(t, "thread-123", threads.verifyThreadArg)
	})

	t.Run("Missing thread means no write", func(t *testing.T) {
		threads := &MockThreadStorage{}
		comments := &MockCommentStorage{}
		service := NewComment(comments, threads)
		notFound := &internal_errors.NotFoundError{Message: "Thread tidak ditemukan"}

		threads.verifyThreadFunc = func(threadId string) error {
			return notFound
		}

		_, err := service.Create(domain.CommentPayload{Content: "sebuah comment", UserId: "user-123", ThreadId: "thread-404"})

		assert.Equal(t, notFound, err)
		assert.False(t, comments.createCalled, "CreateComment should not be called")
	})

	t.Run("Missing content fails validation after the thread check", func(t *testing.T) {
		threads := &MockThreadStorage{}
		comments := &MockCommentStorage{}
		service := NewComment(comments, threads)

		_, err := service.Create(domain.CommentPayload{UserId: "user-123", ThreadId: "thread-123"})

		var vErr *internal_errors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, internal_errors.MissingField, vErr.Kind)
		assert.Equal(t, "content", vErr.Field)
		assert.True(t, threads.verifyThreadCalled, "VerifyThread runs before validation")
		assert.False(t, comments.createCalled, "CreateComment should not be called")
	})

	t.Run("Non-string content is a type mismatch", func(t *testing.T) {
		threads := &MockThreadStorage{}
		comments := &MockCommentStorage{}
		service := NewComment(comments, threads)

		_, err := service.Create(domain.CommentPayload{Content: 42, UserId: "user-123", ThreadId: "thread-123"})

		var vErr *internal_errors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, internal_errors.TypeMismatch, vErr.Kind)
		assert.False(t, comments.createCalled, "CreateComment should not be called")
	})
}

func TestCommentDelete(t *testing.T) {
	t.Run("Successful delete runs all four steps in order", func(t *testing.T) {
		threads := &MockThreadStorage{}
		comments := &MockCommentStorage{}
		service := NewComment(comments, threads)

		var order []string
		threads.verifyThreadFunc = func(threadId string) error {
			order = append(order, "verifyThread")
			return nil
		}
		comments.verifyCommentFunc = func(commentId string) error {
			order = append(order, "verifyComment")
			return nil
		}
		comments.checkCommentOwnerFunc = func(commentId, userId string) error {
			order = append(order, "checkOwner")
			assert.Equal(t, "comment-123", commentId)
			assert.Equal(t, "user-123", userId)
			return nil
		}
		comments.softDeleteFunc = func(commentId string) error {
			order = append(order, "softDelete")
			assert.Equal(t, "comment-123", commentId)
			return nil
		}

		err := service.Delete("comment-123", "thread-123", "user-123")

		require.NoError(t, err)
		assert.Equal(t, []string{"verifyThread", "verifyComment", "checkOwner", "softDelete"}, order)
	})

	t.Run("Wrong thread id reports thread not found even with a bad comment id", func(t *testing.T) {
		threads := &MockThreadStorage{}
		comments := &MockCommentStorage{}
		service := NewComment(comments, threads)
		threadNotFound := &internal_errors.NotFoundError{Message: "Thread tidak ditemukan"}

		threads.verifyThreadFunc = func(threadId string) error {
			return threadNotFound
		}
		comments.verifyCommentFunc = func(commentId string) error {
			return &internal_errors.NotFoundError{Message: "Comment tidak ditemukan"}
		}

		err := service.Delete("comment-404", "thread-404", "user-123")

		assert.Equal(t, threadNotFound, err)
		assert.False(t, comments.verifyCalled, "VerifyComment should not be called")
		assert.False(t, comments.softDeleteCalled, "SoftDeleteComment should not be called")
	})

	t.Run("Missing comment stops before the ownership check", func(t *testing.T) {
		threads := &MockThreadStorage{}
		comments := &MockCommentStorage{}
		service := NewComment(comments, threads)
		commentNotFound := &internal_errors.NotFoundError{Message: "Comment tidak ditemukan"}

		comments.verifyCommentFunc = func(commentId string) error {
			return commentNotFound
		}

		err := service.Delete("comment-404", "thread-123", "user-123")

		assert.Equal(t, commentNotFound, err)
		assert.False(t, comments.checkOwnerCalled, "CheckCommentOwner should not be called")
		assert.False(t, comments.softDeleteCalled, "SoftDeleteComment should not be called")
	})

	t.Run("Foreign comment is forbidden and stays undeleted", func(t *testing.T) {
		threads := &MockThreadStorage{}
		comments := &MockCommentStorage{}
		service := NewComment(comments, threads)
		unauthorized := &internal_errors.AuthorizationError{Message: "Unauthorized"}

		comments.checkCommentOwnerFunc = func(commentId, userId string) error {
			return unauthorized
		}

		err := service.Delete("comment-123", "thread-123", "user-456")

		assert.Equal(t, unauthorized, err)
		assert.False(t, comments.softDeleteCalled, "SoftDeleteComment should not be called")
	})
}
