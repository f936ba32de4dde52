package models

import "time"

// User представляет полную модель пользователя в системе
// @Description Полная модель пользователя
type User struct {
	ID           int64     `json:"id" example:"42"`
	Email        string    `json:"email" example:"guest@example.com"`
	Name         string    `json:"name" example:"Ivan"`
	PasswordHash string    `json:"-"`
	Description  string    `json:"description,omitempty"`
	Phone        string    `json:"phone,omitempty" example:"+79990001122"`
	Avatar       string    `json:"avatar,omitempty"`
	TgNick       string    `json:"tg_nick,omitempty" example:"ivan_tg"`
	TgChatID     string    `json:"tg_chat_id,omitempty"`
	TimeOffset   int       `json:"time_offset" example:"3"`
	IsModerator  bool      `json:"is_moderator"`
	IsStaff      bool      `json:"is_staff"`
	IsSuperuser  bool      `json:"is_superuser"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CanManageQuestions сообщает, имеет ли пользователь права персонала
func (u *User) CanManageQuestions() bool {
	return u.IsStaff || u.IsSuperuser
}

// UserResponse представляет публичную информацию о пользователе
// @Description Публичная информация о пользователе
type UserResponse struct {
	ID          int64     `json:"id" example:"42"`
	Email       string    `json:"email" example:"guest@example.com"`
	Name        string    `json:"name" example:"Ivan"`
	Description string    `json:"description,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Avatar      string    `json:"avatar,omitempty"`
	TgNick      string    `json:"tg_nick,omitempty"`
	TimeOffset  int       `json:"time_offset"`
	IsModerator bool      `json:"is_moderator"`
	IsStaff     bool      `json:"is_staff"`
	CreatedAt   time.Time `json:"created_at"`
}

// RegisterRequest данные регистрации нового пользователя
type RegisterRequest struct {
	Email    string `json:"email" binding:"required" example:"guest@example.com"`
	Name     string `json:"name" binding:"required" example:"Ivan"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// LoginRequest данные входа
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TelegramLoginRequest вход через Telegram Mini App
type TelegramLoginRequest struct {
	InitData string `json:"init_data" binding:"required"`
}

// ProfileUpdateRequest изменяемые поля профиля
type ProfileUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Avatar      *string `json:"avatar,omitempty"`
	TgNick      *string `json:"tg_nick,omitempty"`
	TgChatID    *string `json:"tg_chat_id,omitempty"`
	TimeOffset  *int    `json:"time_offset,omitempty"`
}

// SessionResponse ответ на успешный вход
type SessionResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}
