package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"
)

// Vigencias de los secretos de un solo uso.
const (
	OTPTTL        = 10 * time.Minute
	ResetTokenTTL = 15 * time.Minute

	otpMin         = 100000
	otpSpan        = 900000 // [100000, 999999]
	resetTokenSize = 32
)

// GenerateOTP devuelve un código numérico de 6 dígitos con distribución uniforme.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpSpan))
	if err != nil {
		return "", fmt.Errorf("generar OTP: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+otpMin), nil
}

// GenerateResetToken devuelve el token en claro (hex de 32 bytes aleatorios) y su hash.
// Solo el hash se persiste; el valor en claro viaja por correo.
func GenerateResetToken() (raw, hash string, err error) {
	b := make([]byte, resetTokenSize)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("generar token de reset: %w", err)
	}
	raw = hex.EncodeToString(b)
	return raw, HashResetToken(raw), nil
}

// HashResetToken calcula el SHA-256 en hex del token presentado.
func HashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// otpMatches compara en tiempo constante y exige now < expiresAt.
func otpMatches(stored *string, expiresAt *time.Time, presented string, now time.Time) bool {
	if stored == nil || expiresAt == nil {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(*stored), []byte(presented)) != 1 {
		return false
	}
	return now.Before(*expiresAt)
}
