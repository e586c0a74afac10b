package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrShopNotFound       = errors.New("tienda no encontrada")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidEmail       = errors.New("email inválido")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInvalidToken       = errors.New("token inválido o expirado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrForbidden          = errors.New("acceso denegado")
	ErrAlreadyVerified    = errors.New("la tienda ya está verificada")
	ErrInvalidOTP         = errors.New("OTP inválido o expirado")
	ErrInvalidResetToken  = errors.New("token de restablecimiento inválido o expirado")
	ErrRateLimited        = errors.New("demasiadas solicitudes")
	ErrDeliveryFailure    = errors.New("no se pudo enviar el correo")

	// ErrStorage envuelve fallos del motor de persistencia para no confundirlos con errores de programación.
	ErrStorage = errors.New("almacenamiento no disponible")
)
