package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"

	initdata "github.com/telegram-mini-apps/init-data-golang"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	apperrors "table-booking-backend/internal/common/errors"
	"table-booking-backend/internal/common/validation"
	"table-booking-backend/internal/features/user/models"
	"table-booking-backend/internal/features/user/repository"
)

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.SessionResponse, error)
	LoginTelegram(ctx context.Context, rawInitData string) (*models.SessionResponse, error)
	Logout(ctx context.Context, token string) error
	GetBySession(ctx context.Context, token string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.UserResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *models.ProfileUpdateRequest) (*models.UserResponse, error)
}

// SessionStore хранит сессии как пары token -> user id с TTL
type SessionStore interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

const sessionPrefix = "session:"

type userService struct {
	repo       repository.UserRepository
	sessions   SessionStore
	sessionTTL time.Duration
	bcryptCost int
	botToken   string
	initTTL    time.Duration
	logger     *zap.Logger
}

func NewUserService(repo repository.UserRepository, sessions SessionStore, sessionTTL time.Duration, bcryptCost int, botToken string, initTTL time.Duration, logger *zap.Logger) UserService {
	return &userService{
		repo:       repo,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		bcryptCost: bcryptCost,
		botToken:   botToken,
		initTTL:    initTTL,
		logger:     logger,
	}
}

// Register создает нового пользователя
func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	if err := validation.ValidateEmail(req.Email); err != nil {
		return nil, apperrors.NewValidationError("email", err.Error())
	}
	if err := validation.ValidateName(req.Name); err != nil {
		return nil, apperrors.NewValidationError("name", err.Error())
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewValidationError("password", err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to hash password")
	}

	user := &models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if err == repository.ErrEmailTaken {
			return nil, apperrors.New(apperrors.ErrCodeEmailTaken, "Email is already registered").
				WithDetail("email", req.Email)
		}
		return nil, apperrors.NewDatabaseError("create user", err)
	}

	s.logger.Info("User registered", zap.Int64("user_id", user.ID))
	return toUserResponse(user), nil
}

// Login проверяет пароль и открывает сессию
func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.SessionResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return nil, invalidCredentials()
		}
		return nil, apperrors.NewDatabaseError("get user by email", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, invalidCredentials()
	}

	return s.openSession(ctx, user)
}

// LoginTelegram проверяет init_data мини-приложения и открывает сессию
// пользователю с совпадающим идентификатором чата Telegram
func (s *userService) LoginTelegram(ctx context.Context, rawInitData string) (*models.SessionResponse, error) {
	if s.botToken == "" {
		return nil, apperrors.NewUnauthorizedError("telegram login is not configured")
	}

	if err := initdata.Validate(rawInitData, s.botToken, s.initTTL); err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid telegram init data")
	}

	data, err := initdata.Parse(rawInitData)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("malformed telegram init data")
	}

	chatID := strconv.FormatInt(data.User.ID, 10)
	user, err := s.repo.GetByTgChatID(ctx, chatID)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return nil, apperrors.New(apperrors.ErrCodeUserNotFound, "No account is linked to this Telegram user").
				WithDetail("tg_chat_id", chatID)
		}
		return nil, apperrors.NewDatabaseError("get user by telegram chat id", err)
	}

	return s.openSession(ctx, user)
}

func (s *userService) openSession(ctx context.Context, user *models.User) (*models.SessionResponse, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to generate session token")
	}
	token := hex.EncodeToString(raw)

	key := sessionPrefix + token
	if err := s.sessions.Set(ctx, key, strconv.FormatInt(user.ID, 10), s.sessionTTL); err != nil {
		return nil, apperrors.NewCacheError("store session", err)
	}

	s.logger.Info("Session opened", zap.Int64("user_id", user.ID))
	return &models.SessionResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

// Logout закрывает сессию
func (s *userService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, sessionPrefix+token); err != nil {
		return apperrors.NewCacheError("delete session", err)
	}
	return nil
}

// GetBySession возвращает пользователя по токену сессии
func (s *userService) GetBySession(ctx context.Context, token string) (*models.User, error) {
	value, err := s.sessions.Get(ctx, sessionPrefix+token)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("session not found or expired")
	}

	userID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("corrupted session")
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return nil, apperrors.NewUserNotFoundError(userID)
		}
		return nil, apperrors.NewDatabaseError("get user", err)
	}

	return user, nil
}

// GetByID возвращает публичный профиль пользователя
func (s *userService) GetByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return nil, apperrors.NewUserNotFoundError(id)
		}
		return nil, apperrors.NewDatabaseError("get user", err)
	}

	return toUserResponse(user), nil
}

// UpdateProfile изменяет поля профиля пользователя
func (s *userService) UpdateProfile(ctx context.Context, userID int64, req *models.ProfileUpdateRequest) (*models.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return nil, apperrors.NewUserNotFoundError(userID)
		}
		return nil, apperrors.NewDatabaseError("get user", err)
	}

	if req.Name != nil {
		if err := validation.ValidateName(*req.Name); err != nil {
			return nil, apperrors.NewValidationError("name", err.Error())
		}
		user.Name = *req.Name
	}
	if req.Description != nil {
		user.Description = *req.Description
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.TgNick != nil {
		if err := validation.ValidateTgNick(*req.TgNick); err != nil {
			return nil, apperrors.NewValidationError("tg_nick", err.Error())
		}
		user.TgNick = *req.TgNick
	}
	if req.TgChatID != nil {
		if err := validation.ValidateTgChatID(*req.TgChatID); err != nil {
			return nil, apperrors.NewValidationError("tg_chat_id", err.Error())
		}
		user.TgChatID = *req.TgChatID
	}
	if req.TimeOffset != nil {
		user.TimeOffset = *req.TimeOffset
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, apperrors.NewDatabaseError("update user", err)
	}

	return toUserResponse(user), nil
}

func invalidCredentials() *apperrors.AppError {
	return apperrors.New(apperrors.ErrCodeInvalidCredentials, "Invalid email or password")
}

func toUserResponse(user *models.User) *models.UserResponse {
	return &models.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		Description: user.Description,
		Phone:       user.Phone,
		Avatar:      user.Avatar,
		TgNick:      user.TgNick,
		TimeOffset:  user.TimeOffset,
		IsModerator: user.IsModerator,
		IsStaff:     user.IsStaff,
		CreatedAt:   user.CreatedAt,
	}
}
