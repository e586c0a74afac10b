package entity

import "time"

// Shop representa la cuenta de una tienda (tenant). Es dueña de sus bodegas e ítems de inventario.
type Shop struct {
	ID           string
	Name         string
	Email        string // siempre en minúsculas
	PasswordHash string // bcrypt, nunca en texto plano
	Phone        string
	Address      string
	IsVerified   bool

	// Verificación de email
	OTP          *string
	OTPExpiresAt *time.Time

	// Restablecimiento de contraseña: solo se guarda el hash SHA-256 del token enviado.
	ResetTokenHash      *string
	ResetTokenExpiresAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SetOTP guarda un código nuevo y su expiración absoluta; reemplaza al anterior.
func (s *Shop) SetOTP(code string, expiresAt time.Time) {
	s.OTP = &code
	s.OTPExpiresAt = &expiresAt
}

// ClearOTP elimina el código pendiente.
func (s *Shop) ClearOTP() {
	s.OTP = nil
	s.OTPExpiresAt = nil
}

// SetResetToken guarda el hash del token y su expiración.
func (s *Shop) SetResetToken(hash string, expiresAt time.Time) {
	s.ResetTokenHash = &hash
	s.ResetTokenExpiresAt = &expiresAt
}

// ClearResetToken elimina el token de restablecimiento pendiente.
func (s *Shop) ClearResetToken() {
	s.ResetTokenHash = nil
	s.ResetTokenExpiresAt = nil
}
