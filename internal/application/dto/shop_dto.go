package dto

import "time"

// RegisterShopRequest body de POST /api/shop/register.
type RegisterShopRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,max=320"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Phone    string `json:"phone" validate:"required,max=50"`
	Address  string `json:"address" validate:"required,max=500"`
}

// VerifyOTPRequest body de POST /api/shop/verify-otp.
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,max=320"`
	OTP   string `json:"otp" validate:"required"`
}

// EmailRequest body de resend-otp y forgot-password.
type EmailRequest struct {
	Email string `json:"email" validate:"required,max=320"`
}

// LoginRequest body de POST /api/shop/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,max=320"`
	Password string `json:"password" validate:"required"`
}

// ResetPasswordRequest body de POST /api/shop/reset-password/:token.
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required,min=8,max=72"`
}

// ShopSummary datos mínimos de la tienda devueltos en login.
type ShopSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse token de sesión y resumen de la tienda.
type LoginResponse struct {
	Token string      `json:"token"`
	Shop  ShopSummary `json:"shop"`
}

// ShopProfileResponse perfil de la tienda (sin password, OTP ni token de reset).
type ShopProfileResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
