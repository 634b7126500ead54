package api

import (
	"github.com/forumapi/forumapi/internal/domain"
)

// Request DTOs

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Fullname string `json:"fullname" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type RegisterResponse struct {
	AddedUser domain.RegisteredUser `json:"addedUser"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}
