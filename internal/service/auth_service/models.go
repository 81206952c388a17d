package auth_service

import (
	"github.com/aust-acm/austoj/internal/service/user_service"
	"github.com/google/uuid"
)

type AuthService struct {
	UserConfig *user_service.UserService
}

type UserLoginRequest struct {
	UserName         string `json:"user_name" validate:"required"`
	Password         string `json:"password" validate:"required"`
	RememberForMonth bool   `json:"remember_for_month"`
}

type UserLoginResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	UserName string    `json:"user_name"`
}
