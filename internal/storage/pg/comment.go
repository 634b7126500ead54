package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/forumapi/forumapi/internal/domain"
	internal_errors "github.com/forumapi/forumapi/internal/errors"
)

func (s *Storage) CreateComment(comment domain.Comment) (domain.CreatedComment, error) {
	id := "comment-" + s.idGen()

	var created domain.CreatedComment
	err := s.db.QueryRow(`
        INSERT INTO comments (id, content, owner, thread)
        VALUES ($1, $2, $3, $4)
        RETURNING id, content, owner
    `, id, comment.Content, comment.Owner, comment.Thread).Scan(&created.Id, &created.Content, &created.Owner)
	if err != nil {
		return domain.CreatedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return created, nil
}

func (s *Storage) VerifyComment(commentId string) error {
	var exists bool
	err := s.db.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM comments WHERE id = $1)",
		commentId,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to verify comment: %w", err)
	}
	if !exists {
		return &internal_errors.NotFoundError{Message: "Comment tidak ditemukan"}
	}
	return nil
}

// CheckCommentOwner reports Unauthorized both when the comment is missing and
// when it belongs to someone else. Callers wanting a distinct 404 must verify
// existence first.
func (s *Storage) CheckCommentOwner(commentId, userId string) error {
	var exists bool
	err := s.db.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM comments WHERE id = $1 AND owner = $2)",
		commentId, userId,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check comment owner: %w", err)
	}
	if !exists {
		return &internal_errors.AuthorizationError{Message: "Unauthorized"}
	}
	return nil
}

// SoftDeleteComment flips is_delete. The flag is never reset, so deleting an
// already-deleted comment is a harmless no-op as long as the row exists.
func (s *Storage) SoftDeleteComment(commentId string) error {
	var id string
	err := s.db.QueryRow(
		"UPDATE comments SET is_delete = true WHERE id = $1 RETURNING id",
		commentId,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.NotFoundError{Message: "Comment tidak ditemukan"}
		}
		return fmt.Errorf("failed to soft-delete comment: %w", err)
	}
	return nil
}

func (s *Storage) ListCommentsByThread(threadId string) ([]domain.CommentRow, error) {
	rows, err := s.db.Query(`
        SELECT comments.id, users.username, comments.date, comments.content, comments.is_delete
        FROM comments
        JOIN users ON users.id = comments.owner
        WHERE comments.thread = $1
        ORDER BY comments.date
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.CommentRow
	for rows.Next() {
		var c domain.CommentRow
		if err := rows.Scan(&c.Id, &c.Username, &c.Date, &c.Content, &c.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return comments, nil
}
