package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmate-api/internal/application/dto"
	"github.com/jhoicas/stockmate-api/internal/domain"
	apphttp "github.com/jhoicas/stockmate-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/stockmate-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testShopID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "stockmate-test"
)

// stubResolver resuelve solo las tiendas registradas en shops; err fuerza un fallo del almacenamiento.
type stubResolver struct {
	shops map[string]bool
	err   error
}

func (r stubResolver) ResolveShop(_ context.Context, shopID string) (*dto.ShopProfileResponse, error) {
	if r.err != nil {
		return nil, r.err
	}
	if !r.shops[shopID] {
		return nil, domain.ErrShopNotFound
	}
	return &dto.ShopProfileResponse{ID: shopID, Name: "Sol"}, nil
}

func buildGuardedApp(resolver apphttp.ShopResolver) *fiber.App {
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret, resolver), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"shop_id": apphttp.GetShopID(c), "name": apphttp.GetShop(c).Name})
	})
	return app
}

func bearer(t *testing.T, shopID string, ttl time.Duration) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, shopID, testIssuer, ttl)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doGuarded(t *testing.T, app *fiber.App, authHeader string) (*http.Response, dto.ErrorResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	var e dto.ErrorResponse
	_ = json.Unmarshal(body, &e)
	return resp, e
}

func TestAuthMiddleware_SinHeader_MissingToken(t *testing.T) {
	app := buildGuardedApp(stubResolver{})
	resp, e := doGuarded(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", e.Code)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildGuardedApp(stubResolver{})
	resp, e := doGuarded(t, app, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", e.Code)
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := buildGuardedApp(stubResolver{})
	resp, e := doGuarded(t, app, "Bearer token.invalido.aqui")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", e.Code)
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := buildGuardedApp(stubResolver{shops: map[string]bool{testShopID: true}})
	resp, e := doGuarded(t, app, bearer(t, testShopID, -time.Minute))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", e.Code)
}

func TestAuthMiddleware_TiendaInexistente(t *testing.T) {
	app := buildGuardedApp(stubResolver{shops: map[string]bool{}})
	resp, e := doGuarded(t, app, bearer(t, testShopID, time.Hour))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "SHOP_NOT_FOUND", e.Code)
}

func TestAuthMiddleware_AlmacenamientoCaido(t *testing.T) {
	app := buildGuardedApp(stubResolver{err: errors.Join(domain.ErrStorage, errors.New("timeout"))})
	resp, e := doGuarded(t, app, bearer(t, testShopID, time.Hour))
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "STORAGE_UNAVAILABLE", e.Code)
}

func TestAuthMiddleware_CargaTiendaEnLocals(t *testing.T) {
	app := buildGuardedApp(stubResolver{shops: map[string]bool{testShopID: true}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", bearer(t, testShopID, time.Hour))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testShopID, body["shop_id"])
	assert.Equal(t, "Sol", body["name"])
}

func TestAuthMiddleware_RespuestasDesdeErroresDeDominio(t *testing.T) {
	app := buildGuardedApp(stubResolver{})

	resp, e := doGuarded(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"}, e)

	resp, e = doGuarded(t, app, "Bearer   ")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"}, e)

	resp, e = doGuarded(t, app, "Bearer token.invalido.aqui")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"}, e)
}
