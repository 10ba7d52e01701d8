package interestterm

import "context"

type Repository interface {
	Create(ctx context.Context, t *InterestTerm) error
	GetByTermID(ctx context.Context, termID string) (*InterestTerm, error)
}
