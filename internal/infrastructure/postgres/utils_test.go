package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stockmate-api/internal/domain"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("23505 en el texto no cuenta")))
}

func TestStorageErr(t *testing.T) {
	cause := errors.New("connection refused")
	err := storageErr("get shop", cause)
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "get shop")
}

func TestValidID(t *testing.T) {
	assert.True(t, validID("0b6b2a0e-6f53-4c5e-9d2b-1f7a3c9e8d41"))
	assert.False(t, validID("nonexistent"))
	assert.False(t, validID(""))
}
