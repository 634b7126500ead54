package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/forumapi/forumapi/internal/domain"
	internal_errors "github.com/forumapi/forumapi/internal/errors"
)

func (s *Storage) CreateThread(thread domain.Thread) (domain.CreatedThread, error) {
	id := "thread-" + s.idGen()

	var created domain.CreatedThread
	err := s.db.QueryRow(`
        INSERT INTO threads (id, title, body, owner)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, owner
    `, id, thread.Title, thread.Body, thread.Owner).Scan(&created.Id, &created.Title, &created.Owner)
	if err != nil {
		return domain.CreatedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return created, nil
}

func (s *Storage) FindThread(threadId string) (domain.ThreadRow, error) {
	var row domain.ThreadRow
	err := s.db.QueryRow(`
        SELECT threads.id, threads.title, threads.body, threads.date, users.username
        FROM threads
        JOIN users ON users.id = threads.owner
        WHERE threads.id = $1
    `, threadId).Scan(&row.Id, &row.Title, &row.Body, &row.Date, &row.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadRow{}, &internal_errors.NotFoundError{Message: "Thread tidak ditemukan"}
		}
		return domain.ThreadRow{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	return row, nil
}

func (s *Storage) VerifyThread(threadId string) error {
	var exists bool
	err := s.db.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM threads WHERE id = $1)",
		threadId,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to verify thread: %w", err)
	}
	if !exists {
		return &internal_errors.NotFoundError{Message: "Thread tidak ditemukan"}
	}
	return nil
}
