package repository

import (
	"context"
	"errors"
	"time"

	"table-booking-backend/internal/features/booking/models"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrTableNotFound   = errors.New("table not found")
	ErrTokenNotFound   = errors.New("booking token not found")
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id int64) (*models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error
	// Delete удаляет бронирование; токен удаляется каскадно вместе с ним.
	Delete(ctx context.Context, id int64) error
	// List возвращает все бронирования без сортировки — источник данных кэша.
	List(ctx context.Context) ([]*models.Booking, error)

	CreateToken(ctx context.Context, token *models.BookingToken) error
	DeleteTokenByBookingID(ctx context.Context, bookingID int64) error
	// ClaimToken атомарно изымает токен по значению. Второй конкурентный
	// вызов не находит строку и получает ErrTokenNotFound.
	ClaimToken(ctx context.Context, token string) (*models.TokenClaim, error)

	// ListActual возвращает будущие бронирования, которые либо активны,
	// либо имеют токен свежее границы окна подтверждения.
	ListActual(ctx context.Context, border time.Time, today string) ([]*models.Booking, error)

	GetTable(ctx context.Context, id int64) (*models.Table, error)
	ListTablesByIDs(ctx context.Context, ids []int64) ([]*models.Table, error)
	SetActive(ctx context.Context, id int64, active bool) error
}
