package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"

	"github.com/forumapi/forumapi/internal/domain"
	internal_errors "github.com/forumapi/forumapi/internal/errors"
)

const uniqueViolation = "23505"

func (s *Storage) SaveUser(user domain.User) (domain.RegisteredUser, error) {
	id := "user-" + s.idGen()

	var registered domain.RegisteredUser
	err := s.db.QueryRow(`
        INSERT INTO users (id, username, password, fullname)
        VALUES ($1, $2, $3, $4)
        RETURNING id, username, fullname
    `, id, user.Username, user.PassHash, user.Fullname).Scan(&registered.Id, &registered.Username, &registered.Fullname)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return domain.RegisteredUser{}, &internal_errors.ErrorWithStatusCode{
				Message:    "username tidak tersedia",
				StatusCode: http.StatusBadRequest,
			}
		}
		return domain.RegisteredUser{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return registered, nil
}

func (s *Storage) UserByUsername(username string) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRow(`
        SELECT id, username, password, fullname
        FROM users
        WHERE username = $1
    `, username).Scan(&user.Id, &user.Username, &user.PassHash, &user.Fullname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.NotFoundError{Message: "User tidak ditemukan"}
		}
		return domain.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}
