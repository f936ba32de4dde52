package repository

import (
	"context"
	"errors"

	"table-booking-backend/internal/features/user/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByTgChatID(ctx context.Context, chatID string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}
