// Package permissions содержит единую проверку прав доступа к сущностям.
// Правила: владелец всегда может действовать со своей сущностью, модератор —
// с любым бронированием (кроме редактирования, оно доступно только владельцу),
// персонал — с любым вопросом.
package permissions

import (
	usermodels "table-booking-backend/internal/features/user/models"
)

// Action действие над ресурсом
type Action string

const (
	ActionView   Action = "view"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionToggle Action = "toggle"
)

// Kind тип ресурса
const (
	KindBooking  = "booking"
	KindQuestion = "question"
)

// Resource сущность, к которой проверяется доступ
type Resource interface {
	ResourceKind() string
	ResourceOwner() int64
}

// Can решает, разрешено ли действующему лицу действие над ресурсом.
// Проверка выполняется до любых изменений в хранилище.
func Can(actor *usermodels.User, action Action, res Resource) bool {
	if actor == nil || res == nil {
		return false
	}

	switch res.ResourceKind() {
	case KindBooking:
		if res.ResourceOwner() == actor.ID {
			return true
		}
		// Форма редактирования бронирования доступна только владельцу
		if action == ActionUpdate {
			return false
		}
		return actor.IsModerator
	case KindQuestion:
		return actor.CanManageQuestions()
	}

	return false
}
