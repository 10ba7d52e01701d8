package cryptocurrency

import "context"

type Repository interface {
	Create(ctx context.Context, c *Cryptocurrency) error
	GetByCryptoID(ctx context.Context, cryptoID string) (*Cryptocurrency, error)
	GetBySymbol(ctx context.Context, symbol string) (*Cryptocurrency, error)
}
