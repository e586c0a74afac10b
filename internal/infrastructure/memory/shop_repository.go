package memory

import (
	"context"

	"github.com/jhoicas/stockmate-api/internal/domain"
	"github.com/jhoicas/stockmate-api/internal/domain/entity"
	"github.com/jhoicas/stockmate-api/internal/domain/repository"
)

var _ repository.ShopRepository = (*ShopRepo)(nil)

// ShopRepo implementación en memoria de ShopRepository.
type ShopRepo struct {
	s *Store
}

// Create persiste una tienda; el email debe ser único.
func (r *ShopRepo) Create(_ context.Context, shop *entity.Shop) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.shops {
		if existing.Email == shop.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.shops[shop.ID] = cloneShop(shop)
	r.s.shopOrder = append(r.s.shopOrder, shop.ID)
	return nil
}

// GetByID obtiene una tienda por ID.
func (r *ShopRepo) GetByID(_ context.Context, id string) (*entity.Shop, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if shop, ok := r.s.shops[id]; ok {
		return cloneShop(shop), nil
	}
	return nil, nil
}

// GetByEmail obtiene una tienda por email (ya normalizado).
func (r *ShopRepo) GetByEmail(_ context.Context, email string) (*entity.Shop, error) {
	return r.find(func(s *entity.Shop) bool { return s.Email == email }), nil
}

// GetByResetTokenHash obtiene la tienda con ese hash de token pendiente.
func (r *ShopRepo) GetByResetTokenHash(_ context.Context, hash string) (*entity.Shop, error) {
	return r.find(func(s *entity.Shop) bool {
		return s.ResetTokenHash != nil && *s.ResetTokenHash == hash
	}), nil
}

// Update reemplaza el registro completo (last-write-wins).
func (r *ShopRepo) Update(_ context.Context, shop *entity.Shop) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.shops[shop.ID]; !ok {
		return domain.ErrShopNotFound
	}
	for id, existing := range r.s.shops {
		if id != shop.ID && existing.Email == shop.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.shops[shop.ID] = cloneShop(shop)
	return nil
}

func (r *ShopRepo) find(match func(*entity.Shop) bool) *entity.Shop {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, id := range r.s.shopOrder {
		if shop := r.s.shops[id]; match(shop) {
			return cloneShop(shop)
		}
	}
	return nil
}

func cloneShop(s *entity.Shop) *entity.Shop {
	c := *s
	if s.OTP != nil {
		v := *s.OTP
		c.OTP = &v
	}
	if s.OTPExpiresAt != nil {
		v := *s.OTPExpiresAt
		c.OTPExpiresAt = &v
	}
	if s.ResetTokenHash != nil {
		v := *s.ResetTokenHash
		c.ResetTokenHash = &v
	}
	if s.ResetTokenExpiresAt != nil {
		v := *s.ResetTokenExpiresAt
		c.ResetTokenExpiresAt = &v
	}
	return &c
}
