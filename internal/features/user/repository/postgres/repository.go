package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"table-booking-backend/internal/features/user/models"
	"table-booking-backend/internal/features/user/repository"
)

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) repository.UserRepository {
	return &postgresRepository{db: db}
}

const userColumns = `
	id, email, name, password_hash, description, phone, avatar,
	tg_nick, tg_chat_id, time_offset, is_moderator, is_staff, is_superuser,
	created_at, updated_at
`

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Description, &u.Phone, &u.Avatar,
		&u.TgNick, &u.TgChatID, &u.TimeOffset, &u.IsModerator, &u.IsStaff, &u.IsSuperuser,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create создает нового пользователя
func (r *postgresRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, name, password_hash, description, phone, avatar,
			tg_nick, tg_chat_id, time_offset, is_moderator, is_staff, is_superuser)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.Name, user.PasswordHash, user.Description, user.Phone, user.Avatar,
		user.TgNick, user.TgChatID, user.TimeOffset, user.IsModerator, user.IsStaff, user.IsSuperuser).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return repository.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID получает пользователя по ID
func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = $1"

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// GetByEmail получает пользователя по почте
func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE email = $1"

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// GetByTgChatID получает пользователя по идентификатору чата Telegram
func (r *postgresRepository) GetByTgChatID(ctx context.Context, chatID string) (*models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE tg_chat_id = $1"

	user, err := scanUser(r.db.QueryRowContext(ctx, query, chatID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by telegram chat id: %w", err)
	}

	return user, nil
}

// Update обновляет пользователя
func (r *postgresRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET name = $2, description = $3, phone = $4, avatar = $5,
			tg_nick = $6, tg_chat_id = $7, time_offset = $8, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Description, user.Phone, user.Avatar,
		user.TgNick, user.TgChatID, user.TimeOffset)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
