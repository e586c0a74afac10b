package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stockmate-api/internal/domain"
	"github.com/jhoicas/stockmate-api/internal/domain/entity"
	"github.com/jhoicas/stockmate-api/internal/domain/repository"
)

var _ repository.ShopRepository = (*ShopRepo)(nil)

const shopColumns = `id, name, email, password_hash, phone, address, is_verified,
	otp, otp_expires_at, reset_token_hash, reset_token_expires_at, created_at, updated_at`

// ShopRepo implementación del puerto ShopRepository sobre PostgreSQL.
type ShopRepo struct {
	q Querier
}

// NewShopRepository construye el adaptador de persistencia para tiendas. Pasar pool o tx.
func NewShopRepository(q Querier) *ShopRepo {
	return &ShopRepo{q: q}
}

// Create persiste una nueva tienda. El índice único sobre lower(email) se traduce a ErrEmailAlreadyExists.
func (r *ShopRepo) Create(ctx context.Context, shop *entity.Shop) error {
	query := `
		INSERT INTO shops (` + shopColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		shop.ID, shop.Name, shop.Email, shop.PasswordHash, shop.Phone, shop.Address, shop.IsVerified,
		shop.OTP, shop.OTPExpiresAt, shop.ResetTokenHash, shop.ResetTokenExpiresAt,
		shop.CreatedAt, shop.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return storageErr("insert shop", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID.
func (r *ShopRepo) GetByID(ctx context.Context, id string) (*entity.Shop, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.findOne(ctx, "get shop by id", `SELECT `+shopColumns+` FROM shops WHERE id = $1`, id)
}

// GetByEmail obtiene una tienda por email.
func (r *ShopRepo) GetByEmail(ctx context.Context, email string) (*entity.Shop, error) {
	return r.findOne(ctx, "get shop by email", `SELECT `+shopColumns+` FROM shops WHERE lower(email) = lower($1) LIMIT 1`, email)
}

// GetByResetTokenHash obtiene la tienda con ese hash de token de reset pendiente.
func (r *ShopRepo) GetByResetTokenHash(ctx context.Context, hash string) (*entity.Shop, error) {
	return r.findOne(ctx, "get shop by reset token", `SELECT `+shopColumns+` FROM shops WHERE reset_token_hash = $1 LIMIT 1`, hash)
}

// Update reemplaza todos los campos mutables de la tienda.
func (r *ShopRepo) Update(ctx context.Context, shop *entity.Shop) error {
	query := `
		UPDATE shops SET name = $2, email = $3, password_hash = $4, phone = $5, address = $6,
			is_verified = $7, otp = $8, otp_expires_at = $9, reset_token_hash = $10,
			reset_token_expires_at = $11, updated_at = $12
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		shop.ID, shop.Name, shop.Email, shop.PasswordHash, shop.Phone, shop.Address,
		shop.IsVerified, shop.OTP, shop.OTPExpiresAt, shop.ResetTokenHash,
		shop.ResetTokenExpiresAt, shop.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return storageErr("update shop", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrShopNotFound
	}
	return nil
}

func (r *ShopRepo) findOne(ctx context.Context, op, query string, arg any) (*entity.Shop, error) {
	var s entity.Shop
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&s.ID, &s.Name, &s.Email, &s.PasswordHash, &s.Phone, &s.Address, &s.IsVerified,
		&s.OTP, &s.OTPExpiresAt, &s.ResetTokenHash, &s.ResetTokenExpiresAt,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr(op, err)
	}
	return &s, nil
}
