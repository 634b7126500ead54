package service

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/forumapi/forumapi/internal/domain"
	internal_errors "github.com/forumapi/forumapi/internal/errors"
	"github.com/forumapi/forumapi/internal/logger"
)

type AuthService interface {
	Register(creds domain.Credentials) (domain.RegisteredUser, error)
	Login(username, password string) (string, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

type AuthStorage interface {
	SaveUser(user domain.User) (domain.RegisteredUser, error)
	UserByUsername(username string) (domain.User, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

func NewAuth(storage AuthStorage, jwt Jwt) AuthService {
	return &Auth{storage, jwt}
}

func (a *Auth) Register(creds domain.Credentials) (domain.RegisteredUser, error) {
	passHash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.RegisteredUser{}, err
	}
	return a.storage.SaveUser(domain.User{
		Username: creds.Username,
		Fullname: creds.Fullname,
		PassHash: string(passHash),
	})
}

// Login checks the password and returns a signed access token. A missing user
// and a wrong password produce the same outcome so usernames cannot be probed.
func (a *Auth) Login(username, password string) (string, error) {
	badCredentials := &internal_errors.ErrorWithStatusCode{
		Message:    "kredensial yang Anda masukkan salah",
		StatusCode: http.StatusUnauthorized,
	}

	user, err := a.storage.UserByUsername(username)
	if err != nil {
		if internal_errors.Is[*internal_errors.NotFoundError](err) {
			return "", badCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(password)); err != nil {
		return "", badCredentials
	}
	return a.jwt.NewToken(user)
}
