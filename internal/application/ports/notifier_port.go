package ports

import "context"

// Notifier define el puerto de salida para los tres correos de la cuenta.
// Los adaptadores (SMTP, log) no reintentan: cualquier fallo se devuelve envuelto en domain.ErrDeliveryFailure.
type Notifier interface {
	// SendWelcome confirma que la tienda quedó verificada.
	SendWelcome(ctx context.Context, to, shopName string) error
	// SendOTP envía el código de verificación de 6 dígitos.
	SendOTP(ctx context.Context, to, shopName, otp string) error
	// SendPasswordReset envía el enlace que contiene el token en claro.
	SendPasswordReset(ctx context.Context, to, shopName, resetURL string) error
}
