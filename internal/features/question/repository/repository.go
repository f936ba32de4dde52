package repository

import (
	"context"
	"errors"

	"table-booking-backend/internal/features/question/models"
)

var ErrQuestionNotFound = errors.New("question not found")

type QuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error
	GetByID(ctx context.Context, id int64) (*models.Question, error)
	Update(ctx context.Context, question *models.Question) error
	Delete(ctx context.Context, id int64) error
	// List возвращает все вопросы, включая немодерированные — источник кэша.
	List(ctx context.Context) ([]*models.Question, error)
}
