package deal

import "context"

type Repository interface {
	Create(ctx context.Context, d *Deal) error
	Save(ctx context.Context, d *Deal) error
	GetByDealID(ctx context.Context, dealID string) (*Deal, error)
}
