// Package mail implementa el puerto Notifier: SMTP con gomail o solo log para desarrollo.
package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stockmate-api/internal/application/auth"
	"github.com/jhoicas/stockmate-api/internal/application/ports"
	"github.com/jhoicas/stockmate-api/internal/domain"
	"github.com/jhoicas/stockmate-api/pkg/config"
	"github.com/jhoicas/stockmate-api/pkg/logger"
	"gopkg.in/gomail.v2"
)

var (
	_ ports.Notifier = (*SMTPNotifier)(nil)
	_ ports.Notifier = (*LogNotifier)(nil)
)

// sender lo cumple *gomail.Dialer.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPNotifier envía los correos de la cuenta por SMTP.
type SMTPNotifier struct {
	dialer       sender
	from         string
	fromName     string
	dashboardURL string
	log          *logger.Logger
}

// NewSMTPNotifier construye el notificador a partir de la configuración de correo.
func NewSMTPNotifier(cfg config.MailConfig, frontendURL string, log *logger.Logger) *SMTPNotifier {
	return &SMTPNotifier{
		dialer:       gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:         cfg.User,
		fromName:     cfg.FromName,
		dashboardURL: frontendURL + "/dashboard",
		log:          log.Named("mail"),
	}
}

// SendWelcome envía el correo de bienvenida tras verificar la cuenta.
func (n *SMTPNotifier) SendWelcome(ctx context.Context, to, shopName string) error {
	body, err := render("welcome.html", welcomeData{ShopName: shopName, DashboardURL: n.dashboardURL, Year: time.Now().Year()})
	if err != nil {
		return err
	}
	return n.send(ctx, to, fmt.Sprintf("¡Bienvenido a StockMate, %s! Tu tienda está lista", shopName), body)
}

// SendOTP envía el código de verificación.
func (n *SMTPNotifier) SendOTP(ctx context.Context, to, shopName, otp string) error {
	body, err := render("otp.html", otpData{ShopName: shopName, SpacedOTP: spaceDigits(otp), ValidMinutes: minutes(auth.OTPTTL)})
	if err != nil {
		return err
	}
	return n.send(ctx, to, "Tu código de verificación de StockMate: "+otp, body)
}

// SendPasswordReset envía el enlace para restablecer la contraseña.
func (n *SMTPNotifier) SendPasswordReset(ctx context.Context, to, shopName, resetURL string) error {
	body, err := render("reset.html", resetData{ShopName: shopName, ResetURL: resetURL, ValidMinutes: minutes(auth.ResetTokenTTL)})
	if err != nil {
		return err
	}
	return n.send(ctx, to, "Restablecer la contraseña de tu cuenta de StockMate", body)
}

func (n *SMTPNotifier) send(ctx context.Context, to, subject, html string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailure, err)
	}
	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.from, n.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetHeader("X-Priority", "1")
	m.SetBody("text/html", html)
	if err := n.dialer.DialAndSend(m); err != nil {
		n.log.Error().Err(err).Str("to", to).Str("subject", subject).Msg("envío de correo fallido")
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailure, err)
	}
	n.log.Debug().Str("to", to).Str("subject", subject).Msg("correo enviado")
	return nil
}

// LogNotifier no envía nada: registra los mensajes en el log. Se usa cuando no hay SMTP configurado.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notificador de desarrollo.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log.Named("mail")}
}

// SendWelcome registra el correo de bienvenida.
func (n *LogNotifier) SendWelcome(_ context.Context, to, shopName string) error {
	n.log.Info().Str("to", to).Str("shop", shopName).Msg("bienvenida (SMTP no configurado)")
	return nil
}

// SendOTP registra el código; solo visible con nivel debug.
func (n *LogNotifier) SendOTP(_ context.Context, to, shopName, otp string) error {
	n.log.Debug().Str("to", to).Str("shop", shopName).Str("otp", otp).Msg("OTP (SMTP no configurado)")
	return nil
}

// SendPasswordReset registra el enlace; solo visible con nivel debug.
func (n *LogNotifier) SendPasswordReset(_ context.Context, to, shopName, resetURL string) error {
	n.log.Debug().Str("to", to).Str("shop", shopName).Str("reset_url", resetURL).Msg("reset de contraseña (SMTP no configurado)")
	return nil
}
