package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// Максимальные длины для различных полей
	MaxEmailLength    = 150
	MaxNameLength     = 150
	MaxTgNickLength   = 50
	MaxTgChatIDLength = 50
	MaxQuestionLength = 2000
	MaxAnswerLength   = 2000

	// Минимальные длины
	MinNameLength     = 1
	MinPasswordLength = 6
	MinQuestionLength = 1

	// Форматы даты и времени бронирования
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail проверяет адрес электронной почты
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if len(email) > MaxEmailLength {
		return fmt.Errorf("email cannot exceed %d characters", MaxEmailLength)
	}

	if !emailRegex.MatchString(email) {
		return fmt.Errorf("email has invalid format")
	}

	return nil
}

// ValidateName проверяет имя пользователя
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < MinNameLength {
		return fmt.Errorf("name cannot be empty")
	}

	if len(name) > MaxNameLength {
		return fmt.Errorf("name cannot exceed %d characters", MaxNameLength)
	}

	return nil
}

// ValidatePassword проверяет пароль
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	}

	return nil
}

// ValidateTgNick проверяет ник в Telegram
func ValidateTgNick(nick string) error {
	if len(nick) > MaxTgNickLength {
		return fmt.Errorf("telegram nick cannot exceed %d characters", MaxTgNickLength)
	}

	return nil
}

// ValidateTgChatID проверяет идентификатор чата Telegram
func ValidateTgChatID(chatID string) error {
	if len(chatID) > MaxTgChatIDLength {
		return fmt.Errorf("telegram chat id cannot exceed %d characters", MaxTgChatIDLength)
	}

	return nil
}

// ValidateBookingDate проверяет дату бронирования в формате YYYY-MM-DD
func ValidateBookingDate(date string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be in format %s", DateLayout)
	}

	return parsed, nil
}

// ValidateBookingTime проверяет время бронирования в формате HH:MM
func ValidateBookingTime(timeStart string) error {
	if _, err := time.Parse(TimeLayout, timeStart); err != nil {
		return fmt.Errorf("time must be in format %s", TimeLayout)
	}

	return nil
}

// ValidateQuestionText проверяет текст вопроса
func ValidateQuestionText(text string) error {
	text = strings.TrimSpace(text)
	if len(text) < MinQuestionLength {
		return fmt.Errorf("question text cannot be empty")
	}

	if len(text) > MaxQuestionLength {
		return fmt.Errorf("question text cannot exceed %d characters", MaxQuestionLength)
	}

	return nil
}

// ValidateAnswerText проверяет текст ответа
func ValidateAnswerText(answer string) error {
	if len(answer) > MaxAnswerLength {
		return fmt.Errorf("answer cannot exceed %d characters", MaxAnswerLength)
	}

	return nil
}

// ValidatePositiveInt проверяет, что число положительное
func ValidatePositiveInt(value int64, fieldName string) error {
	if value <= 0 {
		return fmt.Errorf("%s must be positive", fieldName)
	}

	return nil
}
