package workers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMail(t *testing.T) {
	mail, ok := parseMail(map[string]interface{}{
		"from":       "noreply@restaurant.local",
		"subject":    "Подтверждение бронирования",
		"body":       "перейди по ссылке",
		"recipients": "guest@example.com, second@example.com",
	})
	require.True(t, ok)

	assert.Equal(t, "noreply@restaurant.local", mail.From)
	assert.Equal(t, "Подтверждение бронирования", mail.Subject)
	assert.Equal(t, "перейди по ссылке", mail.Body)
	assert.Equal(t, []string{"guest@example.com", "second@example.com"}, mail.Recipients)
}

func TestParseMailRejectsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]interface{}
	}{
		{"missing subject", map[string]interface{}{
			"body": "b", "recipients": "a@example.com",
		}},
		{"missing body", map[string]interface{}{
			"subject": "s", "recipients": "a@example.com",
		}},
		{"missing recipients", map[string]interface{}{
			"subject": "s", "body": "b",
		}},
		{"empty recipients", map[string]interface{}{
			"subject": "s", "body": "b", "recipients": "",
		}},
		{"recipients all blank", map[string]interface{}{
			"subject": "s", "body": "b", "recipients": " , ,",
		}},
		{"wrong type", map[string]interface{}{
			"subject": 42, "body": "b", "recipients": "a@example.com",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := parseMail(tt.values)
			assert.False(t, ok)
		})
	}
}

func TestParseMailWithoutFrom(t *testing.T) {
	// Отправитель не обязателен: транспорт может подставить свой
	mail, ok := parseMail(map[string]interface{}{
		"subject":    "s",
		"body":       "b",
		"recipients": "guest@example.com",
	})
	require.True(t, ok)
	assert.Empty(t, mail.From)
}
