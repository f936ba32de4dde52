package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid", "guest@example.com", false},
		{"valid with subdomain", "a@mail.example.org", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"no at sign", "guest.example.com", true},
		{"no domain dot", "guest@example", true},
		{"two at signs", "a@b@example.com", true},
		{"too long", strings.Repeat("a", MaxEmailLength) + "@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Ivan"))
	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName("   "))
	assert.Error(t, ValidateName(strings.Repeat("x", MaxNameLength+1)))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("secret123"))
	assert.Error(t, ValidatePassword("12345"))
}

func TestValidateBookingDate(t *testing.T) {
	parsed, err := ValidateBookingDate("2024-06-01")
	assert.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())

	for _, bad := range []string{"", "01.06.2024", "2024-6-1", "2024-13-01", "tomorrow"} {
		_, err := ValidateBookingDate(bad)
		assert.Error(t, err, "date %q must be rejected", bad)
	}
}

func TestValidateBookingTime(t *testing.T) {
	assert.NoError(t, ValidateBookingTime("09:00"))
	assert.NoError(t, ValidateBookingTime("23:59"))

	for _, bad := range []string{"", "14-00", "25:00", "12:60", "2pm"} {
		assert.Error(t, ValidateBookingTime(bad), "time %q must be rejected", bad)
	}
}

func TestValidateQuestionText(t *testing.T) {
	assert.NoError(t, ValidateQuestionText("Есть ли у вас столики у окна?"))
	assert.Error(t, ValidateQuestionText(""))
	assert.Error(t, ValidateQuestionText("  "))
	assert.Error(t, ValidateQuestionText(strings.Repeat("x", MaxQuestionLength+1)))
}

func TestValidatePositiveInt(t *testing.T) {
	assert.NoError(t, ValidatePositiveInt(1, "table_id"))
	assert.Error(t, ValidatePositiveInt(0, "table_id"))
	assert.Error(t, ValidatePositiveInt(-5, "table_id"))
}
