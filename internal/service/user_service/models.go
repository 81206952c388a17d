package user_service

import (
	"context"

	"github.com/aust-acm/austoj/internal/database"
	"github.com/google/uuid"
)

// UserStore is the slice of the query layer the user service needs.
type UserStore interface {
	GetUserByUserName(ctx context.Context, userName string) (database.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (database.User, error)
}

type UserService struct {
	DB UserStore
}

type UserProfile struct {
	UserID   uuid.UUID `json:"user_id"`
	UserName string    `json:"user_name"`
	Email    string    `json:"email"`
}
