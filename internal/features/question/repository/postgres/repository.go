package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"table-booking-backend/internal/features/question/models"
	"table-booking-backend/internal/features/question/repository"
)

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) repository.QuestionRepository {
	return &postgresRepository{db: db}
}

// Create создает вопрос
func (r *postgresRepository) Create(ctx context.Context, question *models.Question) error {
	query := `
		INSERT INTO questions (name, text, answer, moderated)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		question.Name, question.Text, question.Answer, question.Moderated).
		Scan(&question.ID, &question.CreatedAt, &question.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}

	return nil
}

// GetByID получает вопрос по ID
func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	query := `
		SELECT id, name, text, answer, moderated, created_at, updated_at
		FROM questions
		WHERE id = $1
	`

	var q models.Question
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&q.ID, &q.Name, &q.Text, &q.Answer, &q.Moderated, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	return &q, nil
}

// Update обновляет вопрос
func (r *postgresRepository) Update(ctx context.Context, question *models.Question) error {
	query := `
		UPDATE questions
		SET name = $2, text = $3, answer = $4, moderated = $5, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		question.ID, question.Name, question.Text, question.Answer, question.Moderated)
	if err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return repository.ErrQuestionNotFound
	}

	return nil
}

// Delete удаляет вопрос
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM questions WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return repository.ErrQuestionNotFound
	}

	return nil
}

// List возвращает все вопросы, новые первыми
func (r *postgresRepository) List(ctx context.Context) ([]*models.Question, error) {
	query := `
		SELECT id, name, text, answer, moderated, created_at, updated_at
		FROM questions
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	var questions []*models.Question
	for rows.Next() {
		var q models.Question
		err := rows.Scan(&q.ID, &q.Name, &q.Text, &q.Answer, &q.Moderated, &q.CreatedAt, &q.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, &q)
	}

	return questions, rows.Err()
}
