package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/stockmate-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testShopID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "stockmate-test"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testShopID, testIssuer, 7*24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	shopID, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testShopID, shopID)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testShopID, testIssuer, -time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testShopID, testIssuer, time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestParse_Malformado(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "token.invalido.aqui")
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testShopID, testIssuer, time.Hour)
	assert.ErrorIs(t, err, pkgjwt.ErrEmptySecret)

	_, err = pkgjwt.Parse("", "x")
	assert.ErrorIs(t, err, pkgjwt.ErrEmptySecret)
}

func TestParse_SinShopID(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "", testIssuer, time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "un token sin shop_id no identifica a ninguna tienda")
}
