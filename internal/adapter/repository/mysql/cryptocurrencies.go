package mysql

import (
	"context"

	cryptoDomain "cryptolend-backend/internal/domain/cryptocurrency"

	"gorm.io/gorm"
)

type CryptocurrencyRepository struct{ db *gorm.DB }

func NewCryptocurrencyRepository(db *gorm.DB) *CryptocurrencyRepository {
	return &CryptocurrencyRepository{db: db}
}

func (r *CryptocurrencyRepository) Create(ctx context.Context, c *cryptoDomain.Cryptocurrency) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CryptocurrencyRepository) GetByCryptoID(ctx context.Context, cryptoID string) (*cryptoDomain.Cryptocurrency, error) {
	var out cryptoDomain.Cryptocurrency
	res := r.db.WithContext(ctx).Where("crypto_id = ?", cryptoID).First(&out)
	return &out, res.Error
}

func (r *CryptocurrencyRepository) GetBySymbol(ctx context.Context, symbol string) (*cryptoDomain.Cryptocurrency, error) {
	var out cryptoDomain.Cryptocurrency
	res := r.db.WithContext(ctx).Where("symbol = ?", symbol).First(&out)
	return &out, res.Error
}
