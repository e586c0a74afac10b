package http

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockmate-api/internal/application/dto"
	"github.com/jhoicas/stockmate-api/internal/domain"
	"github.com/jhoicas/stockmate-api/pkg/jwt"
)

// Locals keys para la tienda autenticada en Fiber.
const (
	LocalShopID = "shop_id"
	LocalShop   = "shop"
)

// ShopResolver confirma que la tienda del token sigue existiendo y devuelve su perfil sin secretos.
type ShopResolver interface {
	ResolveShop(ctx context.Context, shopID string) (*dto.ShopProfileResponse, error)
}

// AuthMiddleware valida el Bearer Token JWT, resuelve la tienda y la deja en c.Locals.
func AuthMiddleware(jwtSecret string, resolver ShopResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if authHeader == "" {
			return respondError(c, nil, domain.ErrUnauthorized)
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return respondError(c, nil, domain.ErrInvalidToken)
		}
		shopID, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
		if err != nil {
			return respondError(c, nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err))
		}
		shop, err := resolver.ResolveShop(c.UserContext(), shopID)
		if err != nil {
			// 401 y no 404: el token apunta a una tienda que ya no existe.
			if errors.Is(err, domain.ErrShopNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SHOP_NOT_FOUND", Message: "la tienda del token no existe"})
			}
			return respondError(c, nil, err)
		}
		c.Locals(LocalShopID, shop.ID)
		c.Locals(LocalShop, shop)
		return c.Next()
	}
}

// GetShopID devuelve el ID de la tienda autenticada (después del middleware de auth).
func GetShopID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalShopID).(string)
	return s
}

// GetShop devuelve el perfil resuelto por el middleware, o nil fuera de rutas protegidas.
func GetShop(c *fiber.Ctx) *dto.ShopProfileResponse {
	s, _ := c.Locals(LocalShop).(*dto.ShopProfileResponse)
	return s
}
