package models

import (
	"time"

	"table-booking-backend/internal/common/permissions"
)

// Table столик ресторана
type Table struct {
	ID     int64 `json:"id"`
	Number int   `json:"number" example:"4"`
}

// Booking бронирование столика. Создаётся неактивным и становится видимым
// в занятых слотах либо после подтверждения, либо пока живёт его токен.
type Booking struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	TableID     int64     `json:"table_id"`
	TableNumber int       `json:"table_number"`
	Date        string    `json:"date" example:"2024-06-01"`
	TimeStart   string    `json:"time_start" example:"14:00"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (b *Booking) ResourceKind() string { return permissions.KindBooking }
func (b *Booking) ResourceOwner() int64 { return b.UserID }

// BookingToken токен подтверждения. Существует только в окне подтверждения:
// удаляется при подтверждении или истечении, никогда не обновляется.
type BookingToken struct {
	ID        int64     `json:"id"`
	BookingID int64     `json:"booking_id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenClaim результат атомарного изъятия токена из хранилища
type TokenClaim struct {
	BookingID int64
	CreatedAt time.Time
}

// BookingCreateRequest данные создания бронирования
type BookingCreateRequest struct {
	TableID   int64  `json:"table_id" binding:"required" example:"4"`
	Date      string `json:"date" binding:"required" example:"2024-06-01"`
	TimeStart string `json:"time_start" binding:"required" example:"14:00"`
}

// BookingUpdateRequest данные изменения бронирования. Изменение повторно
// запускает подтверждение: бронирование деактивируется и получает новый токен.
type BookingUpdateRequest struct {
	TableID   int64  `json:"table_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	TimeStart string `json:"time_start" binding:"required"`
}

// BookingResponse бронирование в ответах API
type BookingResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	TableID     int64     `json:"table_id"`
	TableNumber int       `json:"table_number"`
	Date        string    `json:"date"`
	TimeStart   string    `json:"time_start"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// BookingCreateResponse ответ на создание: клиенту показывают страницу
// "проверьте почту" по адресу confirm_booking/{email}
type BookingCreateResponse struct {
	Booking     *BookingResponse `json:"booking"`
	ConfirmPath string           `json:"confirm_path" example:"/confirm_booking/guest@example.com"`
}

// Статусы результата проверки токена
const (
	VerificationConfirmed = "confirmed"
	VerificationExpired   = "expired"
)

// VerificationResult итог перехода по ссылке подтверждения
type VerificationResult struct {
	Status    string `json:"status" enums:"confirmed,expired"`
	BookingID int64  `json:"booking_id,omitempty"`
}

// BookingContext данные формы бронирования: актуальные бронирования,
// занятые столики и рабочие параметры ресторана
type BookingContext struct {
	Bookings        []*BookingResponse `json:"bookings"`
	Tables          []*Table           `json:"tables"`
	PeriodOfBooking int                `json:"period_of_booking"`
	WorkStart       string             `json:"work_start" example:"09:00"`
	WorkEnd         string             `json:"work_end" example:"23:00"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}
