package mysql

import (
	"context"

	dealDomain "cryptolend-backend/internal/domain/deal"

	"gorm.io/gorm"
)

type DealRepository struct{ db *gorm.DB }

func NewDealRepository(db *gorm.DB) *DealRepository { return &DealRepository{db: db} }

func (r *DealRepository) Create(ctx context.Context, d *dealDomain.Deal) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DealRepository) Save(ctx context.Context, d *dealDomain.Deal) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DealRepository) GetByDealID(ctx context.Context, dealID string) (*dealDomain.Deal, error) {
	var out dealDomain.Deal
	res := r.db.WithContext(ctx).Where("deal_id = ?", dealID).First(&out)
	return &out, res.Error
}
