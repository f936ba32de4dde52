package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"table-booking-backend/internal/features/booking/models"
	"table-booking-backend/internal/features/booking/repository"
)

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) repository.BookingRepository {
	return &postgresRepository{db: db}
}

const bookingColumns = `
	b.id, b.user_id, b.table_id, t.number,
	to_char(b.date_field, 'YYYY-MM-DD'), to_char(b.time_start, 'HH24:MI'),
	b.active, b.created_at, b.updated_at
`

func scanBooking(row interface{ Scan(...interface{}) error }) (*models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID, &b.UserID, &b.TableID, &b.TableNumber,
		&b.Date, &b.TimeStart, &b.Active, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create создает бронирование
func (r *postgresRepository) Create(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (user_id, table_id, date_field, time_start, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		booking.UserID, booking.TableID, booking.Date, booking.TimeStart, booking.Active).
		Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

// GetByID получает бронирование по ID
func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		JOIN tables t ON t.id = b.table_id
		WHERE b.id = $1
	`

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return booking, nil
}

// Update обновляет бронирование
func (r *postgresRepository) Update(ctx context.Context, booking *models.Booking) error {
	query := `
		UPDATE bookings
		SET table_id = $2, date_field = $3, time_start = $4, active = $5, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		booking.ID, booking.TableID, booking.Date, booking.TimeStart, booking.Active)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	return nil
}

// Delete удаляет бронирование; booking_tokens каскадируется по внешнему ключу
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM bookings WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	return nil
}

// List возвращает все бронирования без сортировки
func (r *postgresRepository) List(ctx context.Context) ([]*models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		JOIN tables t ON t.id = b.table_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

// CreateToken сохраняет токен подтверждения
func (r *postgresRepository) CreateToken(ctx context.Context, token *models.BookingToken) error {
	query := `
		INSERT INTO booking_tokens (booking_id, token)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query, token.BookingID, token.Token).
		Scan(&token.ID, &token.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create booking token: %w", err)
	}

	return nil
}

// DeleteTokenByBookingID удаляет токен бронирования, если он есть
func (r *postgresRepository) DeleteTokenByBookingID(ctx context.Context, bookingID int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM booking_tokens WHERE booking_id = $1", bookingID)
	if err != nil {
		return fmt.Errorf("failed to delete booking token: %w", err)
	}

	return nil
}

// ClaimToken атомарно изымает токен по значению. DELETE ... RETURNING
// гарантирует, что из двух конкурентных подтверждений строку получит
// ровно одно, второе увидит ErrTokenNotFound.
func (r *postgresRepository) ClaimToken(ctx context.Context, token string) (*models.TokenClaim, error) {
	query := `
		DELETE FROM booking_tokens
		WHERE token = $1
		RETURNING booking_id, created_at
	`

	var claim models.TokenClaim
	err := r.db.QueryRowContext(ctx, query, token).Scan(&claim.BookingID, &claim.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to claim booking token: %w", err)
	}

	return &claim, nil
}

// ListActual возвращает будущие бронирования: активные либо с токеном
// свежее границы окна подтверждения
func (r *postgresRepository) ListActual(ctx context.Context, border time.Time, today string) ([]*models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		JOIN tables t ON t.id = b.table_id
		LEFT JOIN booking_tokens bt ON bt.booking_id = b.id
		WHERE b.date_field >= $2
			AND (b.active = TRUE OR bt.created_at > $1)
		ORDER BY b.date_field, b.time_start
	`

	rows, err := r.db.QueryContext(ctx, query, border, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list actual bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

// GetTable получает столик по ID
func (r *postgresRepository) GetTable(ctx context.Context, id int64) (*models.Table, error) {
	var table models.Table
	err := r.db.QueryRowContext(ctx,
		"SELECT id, number FROM tables WHERE id = $1", id).
		Scan(&table.ID, &table.Number)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrTableNotFound
		}
		return nil, fmt.Errorf("failed to get table: %w", err)
	}

	return &table, nil
}

// ListTablesByIDs получает столики по списку ID, упорядоченные по номеру
func (r *postgresRepository) ListTablesByIDs(ctx context.Context, ids []int64) ([]*models.Table, error) {
	if len(ids) == 0 {
		return []*models.Table{}, nil
	}

	query := `
		SELECT id, number FROM tables
		WHERE id = ANY($1)
		ORDER BY number
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []*models.Table
	for rows.Next() {
		var table models.Table
		if err := rows.Scan(&table.ID, &table.Number); err != nil {
			return nil, fmt.Errorf("failed to scan table: %w", err)
		}
		tables = append(tables, &table)
	}

	return tables, rows.Err()
}

// SetActive переключает флаг активности бронирования
func (r *postgresRepository) SetActive(ctx context.Context, id int64, active bool) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE bookings SET active = $2, updated_at = NOW() WHERE id = $1", id, active)
	if err != nil {
		return fmt.Errorf("failed to set booking activity: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	return nil
}
