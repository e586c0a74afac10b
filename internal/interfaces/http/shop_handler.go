package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockmate-api/internal/application/auth"
	"github.com/jhoicas/stockmate-api/internal/application/dto"
	"github.com/jhoicas/stockmate-api/pkg/logger"
)

// ShopHandler maneja el ciclo de vida de la cuenta de la tienda.
type ShopHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewShopHandler construye el handler de cuentas.
func NewShopHandler(uc *auth.AuthUseCase, log *logger.Logger) *ShopHandler {
	return &ShopHandler{uc: uc, log: log}
}

// Register godoc
// @Summary      Registrar tienda
// @Description  Crea la cuenta sin verificar y envía un OTP de 6 dígitos al email.
// @Tags         shop
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterShopRequest  true  "name, email, password, phone, address"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/shop/register [post]
func (h *ShopHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterShopRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	if err := h.uc.Register(c.UserContext(), in); err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "tienda registrada, revisa tu correo para verificar la cuenta"})
}

// VerifyOTP godoc
// @Summary      Verificar OTP
// @Tags         shop
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifyOTPRequest  true  "email, otp"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/shop/verify-otp [post]
func (h *ShopHandler) VerifyOTP(c *fiber.Ctx) error {
	var in dto.VerifyOTPRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	if err := h.uc.VerifyOTP(c.UserContext(), in); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cuenta verificada"})
}

// ResendOTP godoc
// @Summary      Reenviar OTP
// @Tags         shop
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmailRequest  true  "email"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/shop/resend-otp [post]
func (h *ShopHandler) ResendOTP(c *fiber.Ctx) error {
	var in dto.EmailRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	if err := h.uc.ResendOTP(c.UserContext(), in); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "nuevo código enviado"})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         shop
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/shop/login [post]
func (h *ShopHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Profile godoc
// @Summary      Perfil de la tienda autenticada
// @Tags         shop
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ShopProfileResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shop/profile [get]
func (h *ShopHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.Profile(c.UserContext(), GetShopID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// ForgotPassword godoc
// @Summary      Solicitar restablecimiento de contraseña
// @Tags         shop
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmailRequest  true  "email"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/shop/forgot-password [post]
func (h *ShopHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.EmailRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	if err := h.uc.ForgotPassword(c.UserContext(), in); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "enlace de restablecimiento enviado al correo"})
}

// ResetPassword godoc
// @Summary      Restablecer contraseña
// @Tags         shop
// @Accept       json
// @Produce      json
// @Param        token  path  string                    true  "token recibido por correo"
// @Param        body   body  dto.ResetPasswordRequest  true  "newPassword"
// @Success      200    {object}  dto.MessageResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/shop/reset-password/{token} [post]
func (h *ShopHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	if err := h.uc.ResetPassword(c.UserContext(), c.Params("token"), in); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "contraseña actualizada"})
}
