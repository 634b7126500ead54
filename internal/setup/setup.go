package setup

import (
	"github.com/forumapi/forumapi/internal/config"
	"github.com/forumapi/forumapi/internal/handler"
	"github.com/forumapi/forumapi/internal/jwt"
	"github.com/forumapi/forumapi/internal/middleware"
	"github.com/forumapi/forumapi/internal/service"
	"github.com/forumapi/forumapi/internal/storage/pg"
)

// Dependencies holds all initialized dependencies.
type Dependencies struct {
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	Jwt            jwt.JwtService
}

// SetupDependencies wires every component with explicit constructors; the
// storage struct satisfies all the per-service storage interfaces.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	auth := service.NewAuth(storage, jwtService)
	thread := service.NewThread(storage, storage)
	comment := service.NewComment(storage, storage)

	h := handler.New(auth, thread, comment, cfg)
	authMw := middleware.NewAuth(jwtService)

	return &Dependencies{
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: authMw,
		Jwt:            jwtService,
	}, nil
}
