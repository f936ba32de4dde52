package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"table-booking-backend/internal/common/cache"
	apperrors "table-booking-backend/internal/common/errors"
	"table-booking-backend/internal/common/permissions"
	"table-booking-backend/internal/common/validation"
	"table-booking-backend/internal/features/booking/models"
	"table-booking-backend/internal/features/booking/repository"
	contentmodels "table-booking-backend/internal/features/content/models"
	usermodels "table-booking-backend/internal/features/user/models"
	"table-booking-backend/internal/service/notifications"
)

type BookingService interface {
	Create(ctx context.Context, actor *usermodels.User, req *models.BookingCreateRequest) (*models.BookingCreateResponse, error)
	GetByID(ctx context.Context, actor *usermodels.User, id int64) (*models.BookingResponse, error)
	Update(ctx context.Context, actor *usermodels.User, id int64, req *models.BookingUpdateRequest) (*models.BookingCreateResponse, error)
	Delete(ctx context.Context, actor *usermodels.User, id int64) error
	ToggleActive(ctx context.Context, actor *usermodels.User, id int64) error
	ListMine(ctx context.Context, actor *usermodels.User) ([]*models.BookingResponse, error)
	Context(ctx context.Context) (*models.BookingContext, error)
	Verify(ctx context.Context, token string) (*models.VerificationResult, error)
}

// listCache покрывает используемую часть кэш-сервиса
type listCache interface {
	GetOrSet(ctx context.Context, key string, dest interface{}, ttl time.Duration, setter func() (interface{}, error)) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// paramsProvider отдаёт типизированные параметры ресторана
type paramsProvider interface {
	Params(ctx context.Context) *contentmodels.Parameters
}

const (
	cacheKey = cache.KeyBookingList
	cacheTTL = cache.DefaultListTTL

	confirmSubject = "Подтверждение бронирования"
)

type bookingService struct {
	repo       repository.BookingRepository
	cache      listCache
	params     paramsProvider
	dispatcher notifications.Dispatcher
	baseURL    string
	logger     *zap.Logger

	now func() time.Time
}

func NewBookingService(repo repository.BookingRepository, cache listCache, params paramsProvider, dispatcher notifications.Dispatcher, baseURL string, logger *zap.Logger) BookingService {
	return &bookingService{
		repo:       repo,
		cache:      cache,
		params:     params,
		dispatcher: dispatcher,
		baseURL:    baseURL,
		logger:     logger,
		now:        time.Now,
	}
}

// Create сохраняет неактивное бронирование, выпускает токен подтверждения
// и ставит письмо со ссылкой в очередь отправки
func (s *bookingService) Create(ctx context.Context, actor *usermodels.User, req *models.BookingCreateRequest) (*models.BookingCreateResponse, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}

	if err := s.validateSlot(ctx, req.Date, req.TimeStart); err != nil {
		return nil, err
	}

	table, err := s.repo.GetTable(ctx, req.TableID)
	if err != nil {
		if err == repository.ErrTableNotFound {
			return nil, apperrors.NewTableNotFoundError(req.TableID)
		}
		return nil, apperrors.NewDatabaseError("get table", err)
	}

	booking := &models.Booking{
		UserID:      actor.ID,
		TableID:     table.ID,
		TableNumber: table.Number,
		Date:        req.Date,
		TimeStart:   req.TimeStart,
		Active:      false,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, apperrors.NewDatabaseError("create booking", err)
	}

	if err := s.issueToken(ctx, booking, actor); err != nil {
		return nil, err
	}

	s.recache(ctx)

	s.logger.Info("Booking created",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("user_id", actor.ID),
		zap.Int("table", table.Number),
	)

	return &models.BookingCreateResponse{
		Booking:     toResponse(booking),
		ConfirmPath: fmt.Sprintf("/confirm_booking/%s", actor.Email),
	}, nil
}

// issueToken выпускает криптослучайный токен и отправляет ссылку подтверждения
func (s *bookingService) issueToken(ctx context.Context, booking *models.Booking, actor *usermodels.User) error {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to generate confirmation token")
	}
	token := hex.EncodeToString(raw)

	bookingToken := &models.BookingToken{
		BookingID: booking.ID,
		Token:     token,
	}
	if err := s.repo.CreateToken(ctx, bookingToken); err != nil {
		return apperrors.NewDatabaseError("create booking token", err)
	}

	url := fmt.Sprintf("%s/booking_verification/%s/", s.baseURL, token)
	body := fmt.Sprintf("Привет, перейди по ссылке для подтверждения бронирования: %s", url)
	s.dispatcher.Send(ctx, confirmSubject, body, []string{actor.Email})

	return nil
}

// GetByID возвращает бронирование владельцу или модератору
func (s *bookingService) GetByID(ctx context.Context, actor *usermodels.User, id int64) (*models.BookingResponse, error) {
	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if !permissions.Can(actor, permissions.ActionView, booking) {
		return nil, apperrors.NewForbiddenError("you cannot view this booking")
	}

	return toResponse(booking), nil
}

// Update меняет бронирование владельца и повторно запускает подтверждение:
// бронирование деактивируется, старый токен заменяется новым
func (s *bookingService) Update(ctx context.Context, actor *usermodels.User, id int64, req *models.BookingUpdateRequest) (*models.BookingCreateResponse, error) {
	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	// Проверка прав выполняется до любых изменений
	if !permissions.Can(actor, permissions.ActionUpdate, booking) {
		return nil, apperrors.NewForbiddenError("only the owner can edit a booking")
	}

	if err := s.validateSlot(ctx, req.Date, req.TimeStart); err != nil {
		return nil, err
	}

	table, err := s.repo.GetTable(ctx, req.TableID)
	if err != nil {
		if err == repository.ErrTableNotFound {
			return nil, apperrors.NewTableNotFoundError(req.TableID)
		}
		return nil, apperrors.NewDatabaseError("get table", err)
	}

	booking.TableID = table.ID
	booking.TableNumber = table.Number
	booking.Date = req.Date
	booking.TimeStart = req.TimeStart
	booking.Active = false

	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, apperrors.NewDatabaseError("update booking", err)
	}

	if err := s.repo.DeleteTokenByBookingID(ctx, booking.ID); err != nil {
		return nil, apperrors.NewDatabaseError("delete booking token", err)
	}

	if err := s.issueToken(ctx, booking, actor); err != nil {
		return nil, err
	}

	s.recache(ctx)

	return &models.BookingCreateResponse{
		Booking:     toResponse(booking),
		ConfirmPath: fmt.Sprintf("/confirm_booking/%s", actor.Email),
	}, nil
}

// Delete удаляет бронирование владельца или любое — модератором
func (s *bookingService) Delete(ctx context.Context, actor *usermodels.User, id int64) error {
	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if !permissions.Can(actor, permissions.ActionDelete, booking) {
		return apperrors.NewForbiddenError("you cannot delete this booking")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.NewDatabaseError("delete booking", err)
	}

	s.invalidate(ctx)
	return nil
}

// ToggleActive снимает активность с подтверждённого бронирования
func (s *bookingService) ToggleActive(ctx context.Context, actor *usermodels.User, id int64) error {
	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if !permissions.Can(actor, permissions.ActionToggle, booking) {
		return apperrors.NewForbiddenError("you cannot change this booking")
	}

	if booking.Active {
		if err := s.repo.SetActive(ctx, id, false); err != nil {
			return apperrors.NewDatabaseError("deactivate booking", err)
		}
	}

	s.recache(ctx)
	return nil
}

// ListMine возвращает бронирования пользователя, упорядоченные по дате и времени
func (s *bookingService) ListMine(ctx context.Context, actor *usermodels.User) ([]*models.BookingResponse, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}

	all, err := s.cachedList(ctx, false)
	if err != nil {
		return nil, err
	}

	var mine []*models.BookingResponse
	for _, b := range all {
		if b.UserID == actor.ID {
			mine = append(mine, toResponse(b))
		}
	}

	sortResponses(mine)
	return mine, nil
}

// Context собирает данные формы бронирования: актуальные бронирования,
// занятые столики и рабочие параметры
func (s *bookingService) Context(ctx context.Context) (*models.BookingContext, error) {
	params := s.params.Params(ctx)
	now := s.now()
	border := now.Add(-time.Duration(params.ConfirmTimedelta) * time.Minute)
	today := now.Format(validation.DateLayout)

	bookings, err := s.repo.ListActual(ctx, border, today)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list actual bookings", err)
	}

	seen := make(map[int64]bool)
	var tableIDs []int64
	responses := make([]*models.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, toResponse(b))
		if !seen[b.TableID] {
			seen[b.TableID] = true
			tableIDs = append(tableIDs, b.TableID)
		}
	}

	tables, err := s.repo.ListTablesByIDs(ctx, tableIDs)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list tables", err)
	}

	return &models.BookingContext{
		Bookings:        responses,
		Tables:          tables,
		PeriodOfBooking: params.PeriodOfBooking,
		WorkStart:       params.WorkStart,
		WorkEnd:         params.WorkEnd,
	}, nil
}

// Verify обрабатывает переход по ссылке подтверждения. Токен изымается
// атомарно: повторное подтверждение того же токена получает "не найдено",
// а не повторное истечение.
func (s *bookingService) Verify(ctx context.Context, token string) (*models.VerificationResult, error) {
	claim, err := s.repo.ClaimToken(ctx, token)
	if err != nil {
		if err == repository.ErrTokenNotFound {
			return nil, apperrors.NewTokenNotFoundError()
		}
		return nil, apperrors.NewDatabaseError("claim booking token", err)
	}

	params := s.params.Params(ctx)
	border := s.now().Add(-time.Duration(params.ConfirmTimedelta) * time.Minute)

	if claim.CreatedAt.Before(border) {
		// Окно подтверждения истекло: бронирование удаляется вместе с токеном
		if err := s.repo.Delete(ctx, claim.BookingID); err != nil && err != repository.ErrBookingNotFound {
			return nil, apperrors.NewDatabaseError("delete expired booking", err)
		}
		s.recache(ctx)

		s.logger.Info("Booking confirmation expired", zap.Int64("booking_id", claim.BookingID))
		return &models.VerificationResult{
			Status:    models.VerificationExpired,
			BookingID: claim.BookingID,
		}, nil
	}

	if err := s.repo.SetActive(ctx, claim.BookingID, true); err != nil {
		if err == repository.ErrBookingNotFound {
			return nil, apperrors.NewBookingNotFoundError(claim.BookingID)
		}
		return nil, apperrors.NewDatabaseError("activate booking", err)
	}
	s.recache(ctx)

	s.logger.Info("Booking confirmed", zap.Int64("booking_id", claim.BookingID))
	return &models.VerificationResult{
		Status:    models.VerificationConfirmed,
		BookingID: claim.BookingID,
	}, nil
}

// validateSlot проверяет дату и время против рабочих параметров
func (s *bookingService) validateSlot(ctx context.Context, date, timeStart string) error {
	parsedDate, err := validation.ValidateBookingDate(date)
	if err != nil {
		return apperrors.NewValidationError("date", err.Error())
	}
	if err := validation.ValidateBookingTime(timeStart); err != nil {
		return apperrors.NewValidationError("time_start", err.Error())
	}

	params := s.params.Params(ctx)
	today := s.now().Format(validation.DateLayout)
	if date < today {
		return apperrors.NewValidationError("date", "booking date cannot be in the past")
	}

	horizon, _ := validation.ValidateBookingDate(today)
	horizon = horizon.AddDate(0, 0, params.PeriodOfBooking)
	if parsedDate.After(horizon) {
		return apperrors.NewValidationError("date",
			fmt.Sprintf("booking date cannot be more than %d days ahead", params.PeriodOfBooking))
	}

	if timeStart < params.WorkStart || timeStart > params.WorkEnd {
		return apperrors.NewValidationError("time_start",
			fmt.Sprintf("booking time must be between %s and %s", params.WorkStart, params.WorkEnd))
	}

	return nil
}

func (s *bookingService) getBooking(ctx context.Context, id int64) (*models.Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrBookingNotFound {
			return nil, apperrors.NewBookingNotFoundError(id)
		}
		return nil, apperrors.NewDatabaseError("get booking", err)
	}
	return booking, nil
}

// cachedList отдаёт список бронирований из кэша; recache принудительно
// перечитывает его из базы
func (s *bookingService) cachedList(ctx context.Context, recache bool) ([]*models.Booking, error) {
	if recache {
		bookings, err := s.repo.List(ctx)
		if err != nil {
			return nil, apperrors.NewDatabaseError("list bookings", err)
		}
		if err := s.cache.Set(ctx, cacheKey, bookings, cacheTTL); err != nil {
			s.logger.Warn("Failed to recache booking list", zap.Error(err))
		}
		return bookings, nil
	}

	var bookings []*models.Booking
	err := s.cache.GetOrSet(ctx, cacheKey, &bookings, cacheTTL, func() (interface{}, error) {
		return s.repo.List(ctx)
	})
	if err != nil {
		return nil, apperrors.NewCacheError("get booking list", err)
	}

	return bookings, nil
}

// recache перечитывает кэш списка после мутации
func (s *bookingService) recache(ctx context.Context) {
	if _, err := s.cachedList(ctx, true); err != nil {
		s.logger.Warn("Failed to refresh booking list cache", zap.Error(err))
	}
}

// invalidate сбрасывает кэш списка без немедленного перечитывания
func (s *bookingService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, cacheKey); err != nil {
		s.logger.Warn("Failed to invalidate booking list cache", zap.Error(err))
	}
}

func toResponse(b *models.Booking) *models.BookingResponse {
	return &models.BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		TableID:     b.TableID,
		TableNumber: b.TableNumber,
		Date:        b.Date,
		TimeStart:   b.TimeStart,
		Active:      b.Active,
		CreatedAt:   b.CreatedAt,
	}
}

// sortResponses упорядочивает бронирования по дате, затем по времени начала
func sortResponses(list []*models.BookingResponse) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date < list[j].Date
		}
		return list[i].TimeStart < list[j].TimeStart
	})
}
