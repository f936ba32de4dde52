package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"table-booking-backend/internal/features/content/repository"
)

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) repository.ContentRepository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) getBody(ctx context.Context, query, title string) (string, error) {
	var body string
	err := r.db.QueryRowContext(ctx, query, title).Scan(&body)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", repository.ErrContentNotFound
		}
		return "", fmt.Errorf("failed to get content entry: %w", err)
	}

	return body, nil
}

// GetText получает текстовый блок по ключу
func (r *postgresRepository) GetText(ctx context.Context, title string) (string, error) {
	return r.getBody(ctx, "SELECT body FROM content_texts WHERE title = $1", title)
}

// GetImage получает путь изображения по ключу
func (r *postgresRepository) GetImage(ctx context.Context, title string) (string, error) {
	return r.getBody(ctx, "SELECT image FROM content_images WHERE title = $1", title)
}

// GetLink получает ссылку по ключу
func (r *postgresRepository) GetLink(ctx context.Context, title string) (string, error) {
	return r.getBody(ctx, "SELECT link FROM content_links WHERE title = $1", title)
}

// ListParameters возвращает все типизированные параметры
func (r *postgresRepository) ListParameters(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT title, body FROM content_parameters")
	if err != nil {
		return nil, fmt.Errorf("failed to list content parameters: %w", err)
	}
	defer rows.Close()

	params := make(map[string]string)
	for rows.Next() {
		var title, body string
		if err := rows.Scan(&title, &body); err != nil {
			return nil, fmt.Errorf("failed to scan content parameter: %w", err)
		}
		params[title] = body
	}

	return params, rows.Err()
}
