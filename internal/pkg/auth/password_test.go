package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	passwords := NewPasswordManager(testConfig())

	tests := []struct {
		password string
		want     error
	}{
		{"Ab1!", ErrPasswordTooShort},
		{"abcdef1!", ErrPasswordNoUpper},
		{"ABCDEF1!", ErrPasswordNoLower},
		{"Abcdefg!", ErrPasswordNoDigit},
		{"Abcdef12", ErrPasswordNoSpecial},
		{"Roma@1", nil},
		{"Đồnghồ9#", nil},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := passwords.ValidatePassword(tt.password)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	passwords := NewPasswordManager(testConfig())

	hash, err := passwords.HashPassword("Roma@123")
	require.NoError(t, err)
	assert.NotEqual(t, "Roma@123", hash)

	assert.NoError(t, passwords.VerifyPassword("Roma@123", hash))
	assert.Error(t, passwords.VerifyPassword("roma@123", hash))

	_, err = passwords.HashPassword("weak")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}
