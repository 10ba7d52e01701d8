package storemock

import (
	"context"

	cryptoDomain "cryptolend-backend/internal/domain/cryptocurrency"
	termDomain "cryptolend-backend/internal/domain/interestterm"

	"gorm.io/gorm"
)

var (
	_ cryptoDomain.Repository = (*Cryptocurrencies)(nil)
	_ termDomain.Repository   = (*InterestTerms)(nil)
)

type Cryptocurrencies struct {
	CreateFn        func(ctx context.Context, c *cryptoDomain.Cryptocurrency) error
	GetByCryptoIDFn func(ctx context.Context, cryptoID string) (*cryptoDomain.Cryptocurrency, error)
	GetBySymbolFn   func(ctx context.Context, symbol string) (*cryptoDomain.Cryptocurrency, error)
}

func (m *Cryptocurrencies) Create(ctx context.Context, c *cryptoDomain.Cryptocurrency) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Cryptocurrencies) GetByCryptoID(ctx context.Context, cryptoID string) (*cryptoDomain.Cryptocurrency, error) {
	if m.GetByCryptoIDFn != nil {
		return m.GetByCryptoIDFn(ctx, cryptoID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Cryptocurrencies) GetBySymbol(ctx context.Context, symbol string) (*cryptoDomain.Cryptocurrency, error) {
	if m.GetBySymbolFn != nil {
		return m.GetBySymbolFn(ctx, symbol)
	}
	return nil, gorm.ErrRecordNotFound
}

type InterestTerms struct {
	CreateFn      func(ctx context.Context, t *termDomain.InterestTerm) error
	GetByTermIDFn func(ctx context.Context, termID string) (*termDomain.InterestTerm, error)
}

func (m *InterestTerms) Create(ctx context.Context, t *termDomain.InterestTerm) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *InterestTerms) GetByTermID(ctx context.Context, termID string) (*termDomain.InterestTerm, error) {
	if m.GetByTermIDFn != nil {
		return m.GetByTermIDFn(ctx, termID)
	}
	return nil, gorm.ErrRecordNotFound
}
