package engine

import (
	"context"

	"cryptolend-backend/internal/domain/cryptocurrency"
	"cryptolend-backend/internal/domain/interestterm"
	"cryptolend-backend/internal/domain/uow"
	"cryptolend-backend/pkg/id"
)

// SaveCryptocurrency normalizes, validates and persists a collateral asset.
func (e *Engine) SaveCryptocurrency(ctx context.Context, c *cryptocurrency.Cryptocurrency) error {
	c.Normalize()
	if errs := ValidateCryptocurrency(c); len(errs) > 0 {
		return errs
	}
	return e.uow.WithinTx(ctx, func(r uow.Repos) error {
		if c.CryptoID == "" {
			c.CryptoID = id.NewID32()
		}
		return r.Cryptocurrencies.Create(ctx, c)
	})
}

// SaveInterestTerm validates and persists a rate/duration pair.
func (e *Engine) SaveInterestTerm(ctx context.Context, t *interestterm.InterestTerm) error {
	if errs := ValidateInterestTerm(t); len(errs) > 0 {
		return errs
	}
	return e.uow.WithinTx(ctx, func(r uow.Repos) error {
		if t.TermID == "" {
			t.TermID = id.NewID32()
		}
		return r.InterestTerms.Create(ctx, t)
	})
}
