package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockmate-api/internal/application/dto"
	"github.com/jhoicas/stockmate-api/internal/application/validation"
	"github.com/jhoicas/stockmate-api/internal/domain"
	"github.com/jhoicas/stockmate-api/pkg/logger"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// Orden importa: la primera coincidencia con errors.Is gana.
var errorMappings = []errorMapping{
	{domain.ErrStorage, fiber.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "almacenamiento no disponible, intenta de nuevo"},
	{domain.ErrDeliveryFailure, fiber.StatusInternalServerError, "DELIVERY_FAILURE", "no se pudo enviar el correo"},
	{domain.ErrEmailAlreadyExists, fiber.StatusBadRequest, "EMAIL_EXISTS", "el email ya está registrado"},
	{domain.ErrInvalidEmail, fiber.StatusBadRequest, "INVALID_EMAIL", "email inválido o no registrado"},
	{domain.ErrAlreadyVerified, fiber.StatusBadRequest, "ALREADY_VERIFIED", "la cuenta ya está verificada"},
	{domain.ErrInvalidOTP, fiber.StatusBadRequest, "INVALID_OTP", "código inválido o expirado"},
	{domain.ErrInvalidResetToken, fiber.StatusBadRequest, "INVALID_RESET_TOKEN", "token inválido o expirado"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION", "datos inválidos"},
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "credenciales inválidas o cuenta sin verificar"},
	{domain.ErrInvalidToken, fiber.StatusUnauthorized, "INVALID_TOKEN", "token inválido o expirado"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "MISSING_TOKEN", "Authorization header requerido"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN", "la bodega no existe o no pertenece a tu tienda"},
	{domain.ErrShopNotFound, fiber.StatusNotFound, "SHOP_NOT_FOUND", "tienda no encontrada"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado"},
	{domain.ErrRateLimited, fiber.StatusTooManyRequests, "RATE_LIMITED", "demasiados intentos, espera unos minutos"},
}

// respondError traduce un error de dominio a status y dto.ErrorResponse.
// Los 5xx se registran con la causa; al cliente solo llega el mensaje genérico.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: verr.Error()})
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			if m.status >= fiber.StatusInternalServerError {
				logServerError(c, log, err, m.code)
			}
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: m.message})
		}
	}
	logServerError(c, log, err, "INTERNAL")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func logServerError(c *fiber.Ctx, log *logger.Logger, err error, code string) {
	if log == nil {
		return
	}
	log.Error().Err(err).
		Str("code", code).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("request_id", requestID(c)).
		Msg("error atendiendo la petición")
}

// parseBody decodifica el JSON y valida los tags del DTO. Devuelve false si ya respondió 400.
func parseBody(c *fiber.Ctx, out any) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido: " + bodyErrorHint(err)})
	}
	if err := validation.Struct(out); err != nil {
		return false, respondError(c, nil, err)
	}
	return true, nil
}

func bodyErrorHint(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		msg = msg[i+2:]
	}
	return msg
}
