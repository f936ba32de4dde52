package models

import (
	"time"

	"table-booking-backend/internal/common/permissions"
)

// Question запись раздела "вопрос-ответ". Вопросы обычных посетителей
// попадают на премодерацию и не видны в публичном списке, пока персонал
// их не опубликует.
type Question struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" example:"Мария"`
	Text      string    `json:"text"`
	Answer    string    `json:"answer,omitempty"`
	Moderated bool      `json:"moderated"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (q *Question) ResourceKind() string { return permissions.KindQuestion }
func (q *Question) ResourceOwner() int64 { return 0 }

// QuestionCreateRequest форма создания вопроса. Answer и Moderated
// учитываются только для персонала, остальным доступна укороченная форма.
type QuestionCreateRequest struct {
	Name      string  `json:"name" binding:"required"`
	Text      string  `json:"text" binding:"required"`
	Answer    *string `json:"answer,omitempty"`
	Moderated *bool   `json:"moderated,omitempty"`
}

// QuestionUpdateRequest форма редактирования вопроса персоналом
type QuestionUpdateRequest struct {
	Name      string `json:"name" binding:"required"`
	Text      string `json:"text" binding:"required"`
	Answer    string `json:"answer"`
	Moderated bool   `json:"moderated"`
}

// Статусы результата создания вопроса
const (
	CreateStatusPublished         = "published"
	CreateStatusPendingModeration = "pending_moderation"
)

// QuestionCreateResponse итог создания: вопрос персонала публикуется сразу,
// остальные уходят на премодерацию
type QuestionCreateResponse struct {
	Question *Question `json:"question"`
	Status   string    `json:"status" enums:"published,pending_moderation"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}
