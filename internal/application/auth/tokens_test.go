package auth

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sixDigits = regexp.MustCompile(`^[1-9][0-9]{5}$`)

func TestGenerateOTP_SeisDigitos(t *testing.T) {
	for i := 0; i < 200; i++ {
		otp, err := GenerateOTP()
		require.NoError(t, err)
		assert.Regexp(t, sixDigits, otp)
	}
}

func TestGenerateResetToken_HashCoincide(t *testing.T) {
	raw, hash, err := GenerateResetToken()
	require.NoError(t, err)

	assert.Len(t, raw, 64)
	assert.Equal(t, HashResetToken(raw), hash)
	assert.NotEqual(t, raw, hash, "el valor en claro nunca es el que se persiste")

	raw2, _, err := GenerateResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, raw, raw2)
}

func TestOTPMatches(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	code := "123456"
	exp := now.Add(OTPTTL)

	assert.True(t, otpMatches(&code, &exp, "123456", now))
	assert.False(t, otpMatches(&code, &exp, "123457", now), "debe coincidir exactamente")
	assert.False(t, otpMatches(&code, &exp, "12345", now))
	assert.False(t, otpMatches(&code, &exp, "123456", exp), "en el instante de expiración ya no es válido")
	assert.False(t, otpMatches(nil, nil, "123456", now))
}
