package storemock

import (
	"context"

	domain "cryptolend-backend/internal/domain/deal"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Deals)(nil)

type Deals struct {
	CreateFn      func(ctx context.Context, d *domain.Deal) error
	SaveFn        func(ctx context.Context, d *domain.Deal) error
	GetByDealIDFn func(ctx context.Context, dealID string) (*domain.Deal, error)
}

func (m *Deals) Create(ctx context.Context, d *domain.Deal) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Deals) Save(ctx context.Context, d *domain.Deal) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}

func (m *Deals) GetByDealID(ctx context.Context, dealID string) (*domain.Deal, error) {
	if m.GetByDealIDFn != nil {
		return m.GetByDealIDFn(ctx, dealID)
	}
	return nil, gorm.ErrRecordNotFound
}
