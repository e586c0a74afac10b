package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stockmate-api/internal/application/dto"
	"github.com/jhoicas/stockmate-api/internal/application/ports"
	"github.com/jhoicas/stockmate-api/internal/application/validation"
	"github.com/jhoicas/stockmate-api/internal/domain"
	"github.com/jhoicas/stockmate-api/internal/domain/entity"
	"github.com/jhoicas/stockmate-api/internal/domain/repository"
	"github.com/jhoicas/stockmate-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const minPasswordLen = 8

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// Config parámetros del caso de uso. Now permite simular el paso del tiempo en tests.
// VerifyLimiter acota los intentos de verificación de OTP por email; nil deja los intentos sin límite.
type Config struct {
	JWT           JWTConfig
	FrontendURL   string
	VerifyLimiter ports.RateLimiter
	Now           func() time.Time
}

// AuthUseCase ciclo de vida de la cuenta: registro, OTP, login, perfil y restablecimiento de contraseña.
type AuthUseCase struct {
	shopRepo repository.ShopRepository
	notifier ports.Notifier
	limiter  ports.RateLimiter
	cfg      Config
}

// NewAuthUseCase construye el caso de uso de auth. limiter puede ser nil (sin límite de reenvíos).
func NewAuthUseCase(shopRepo repository.ShopRepository, notifier ports.Notifier, limiter ports.RateLimiter, cfg Config) *AuthUseCase {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	cfg.FrontendURL = strings.TrimRight(cfg.FrontendURL, "/")
	return &AuthUseCase{shopRepo: shopRepo, notifier: notifier, limiter: limiter, cfg: cfg}
}

// Register crea una tienda sin verificar y le envía el OTP.
// Devuelve ErrInvalidEmail o ErrEmailAlreadyExists (sin importar mayúsculas del email).
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterShopRequest) error {
	email := NormalizeEmail(in.Email)
	if !validation.Email(email) {
		return domain.ErrInvalidEmail
	}
	existing, err := uc.shopRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrEmailAlreadyExists
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return err
	}
	otp, err := GenerateOTP()
	if err != nil {
		return err
	}
	now := uc.cfg.Now()
	shop := &entity.Shop{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		IsVerified:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	shop.SetOTP(otp, now.Add(OTPTTL))
	if err := uc.shopRepo.Create(ctx, shop); err != nil {
		return err
	}
	return deliveryErr(uc.notifier.SendOTP(ctx, shop.Email, shop.Name, otp))
}

// VerifyOTP marca la tienda como verificada si el código coincide y no expiró. El código es de un solo uso.
func (uc *AuthUseCase) VerifyOTP(ctx context.Context, in dto.VerifyOTPRequest) error {
	shop, err := uc.pendingShop(ctx, in.Email)
	if err != nil {
		return err
	}
	if err := allow(ctx, uc.cfg.VerifyLimiter, "otp_verify:"+shop.Email); err != nil {
		return err
	}
	now := uc.cfg.Now()
	if !otpMatches(shop.OTP, shop.OTPExpiresAt, strings.TrimSpace(in.OTP), now) {
		return domain.ErrInvalidOTP
	}
	shop.IsVerified = true
	shop.ClearOTP()
	shop.UpdatedAt = now
	if err := uc.shopRepo.Update(ctx, shop); err != nil {
		return err
	}
	return deliveryErr(uc.notifier.SendWelcome(ctx, shop.Email, shop.Name))
}

// ResendOTP reemplaza el código pendiente por uno nuevo y lo envía.
func (uc *AuthUseCase) ResendOTP(ctx context.Context, in dto.EmailRequest) error {
	shop, err := uc.pendingShop(ctx, in.Email)
	if err != nil {
		return err
	}
	if err := allow(ctx, uc.limiter, "otp_resend:"+shop.Email); err != nil {
		return err
	}
	otp, err := GenerateOTP()
	if err != nil {
		return err
	}
	now := uc.cfg.Now()
	shop.SetOTP(otp, now.Add(OTPTTL))
	shop.UpdatedAt = now
	if err := uc.shopRepo.Update(ctx, shop); err != nil {
		return err
	}
	return deliveryErr(uc.notifier.SendOTP(ctx, shop.Email, shop.Name, otp))
}

// Login verifica email/password y que la cuenta esté verificada; genera el token de sesión.
// Todas las causas de rechazo devuelven ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	shop, err := uc.shopRepo.GetByEmail(ctx, NormalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(shop.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !shop.IsVerified {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.cfg.JWT.Secret, shop.ID, uc.cfg.JWT.Issuer, uc.cfg.JWT.TTL)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Shop:  dto.ShopSummary{ID: shop.ID, Name: shop.Name, Email: shop.Email},
	}, nil
}

// Profile devuelve el perfil sin secretos. ErrShopNotFound si la tienda ya no existe.
func (uc *AuthUseCase) Profile(ctx context.Context, shopID string) (*dto.ShopProfileResponse, error) {
	shop, err := uc.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrShopNotFound
	}
	return toProfileResponse(shop), nil
}

// ResolveShop lo usa el middleware de auth para confirmar que la tienda del token sigue existiendo.
func (uc *AuthUseCase) ResolveShop(ctx context.Context, shopID string) (*dto.ShopProfileResponse, error) {
	return uc.Profile(ctx, shopID)
}

// ForgotPassword genera un token de reset, guarda su hash con vigencia de 15 minutos y envía el enlace.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, in dto.EmailRequest) error {
	shop, err := uc.shopRepo.GetByEmail(ctx, NormalizeEmail(in.Email))
	if err != nil {
		return err
	}
	if shop == nil {
		return domain.ErrShopNotFound
	}
	raw, hash, err := GenerateResetToken()
	if err != nil {
		return err
	}
	now := uc.cfg.Now()
	shop.SetResetToken(hash, now.Add(ResetTokenTTL))
	shop.UpdatedAt = now
	if err := uc.shopRepo.Update(ctx, shop); err != nil {
		return err
	}
	resetURL := uc.cfg.FrontendURL + "/reset-password/" + raw
	return deliveryErr(uc.notifier.SendPasswordReset(ctx, shop.Email, shop.Name, resetURL))
}

// ResetPassword cambia la contraseña si el token presentado corresponde a un hash vigente.
// El hash se borra en el mismo guardado que el cambio de contraseña; un hash vencido se borra al detectarlo.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, token string, in dto.ResetPasswordRequest) error {
	if len(in.NewPassword) < minPasswordLen {
		return domain.ErrInvalidInput
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.ErrInvalidResetToken
	}
	shop, err := uc.shopRepo.GetByResetTokenHash(ctx, HashResetToken(token))
	if err != nil {
		return err
	}
	if shop == nil {
		return domain.ErrInvalidResetToken
	}
	now := uc.cfg.Now()
	if shop.ResetTokenExpiresAt == nil || !now.Before(*shop.ResetTokenExpiresAt) {
		shop.ClearResetToken()
		shop.UpdatedAt = now
		if err := uc.shopRepo.Update(ctx, shop); err != nil {
			return err
		}
		return domain.ErrInvalidResetToken
	}
	hash, err := hashPassword(in.NewPassword)
	if err != nil {
		return err
	}
	shop.PasswordHash = hash
	shop.ClearResetToken()
	shop.UpdatedAt = now
	return uc.shopRepo.Update(ctx, shop)
}

// pendingShop busca la tienda por email y exige que aún no esté verificada.
func (uc *AuthUseCase) pendingShop(ctx context.Context, email string) (*entity.Shop, error) {
	shop, err := uc.shopRepo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrInvalidEmail
	}
	if shop.IsVerified {
		return nil, domain.ErrAlreadyVerified
	}
	return shop, nil
}

// NormalizeEmail recorta espacios y pasa a minúsculas; la unicidad del email no distingue mayúsculas.
func NormalizeEmail(email string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(email))
}

// hashPassword aplica bcrypt; las contraseñas de más de 72 bytes son entrada inválida.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domain.ErrInvalidInput
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// allow consume un intento de la clave; ErrRateLimited si se agotó la ventana.
func allow(ctx context.Context, limiter ports.RateLimiter, key string) error {
	if limiter == nil {
		return nil
	}
	ok, err := limiter.Allow(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrRateLimited
	}
	return nil
}

func deliveryErr(err error) error {
	if err == nil || errors.Is(err, domain.ErrDeliveryFailure) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrDeliveryFailure, err)
}

func toProfileResponse(s *entity.Shop) *dto.ShopProfileResponse {
	return &dto.ShopProfileResponse{
		ID:         s.ID,
		Name:       s.Name,
		Email:      s.Email,
		Phone:      s.Phone,
		Address:    s.Address,
		IsVerified: s.IsVerified,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
