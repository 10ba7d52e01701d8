package mysql

import (
	"context"

	termDomain "cryptolend-backend/internal/domain/interestterm"

	"gorm.io/gorm"
)

type InterestTermRepository struct{ db *gorm.DB }

func NewInterestTermRepository(db *gorm.DB) *InterestTermRepository {
	return &InterestTermRepository{db: db}
}

func (r *InterestTermRepository) Create(ctx context.Context, t *termDomain.InterestTerm) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *InterestTermRepository) GetByTermID(ctx context.Context, termID string) (*termDomain.InterestTerm, error) {
	var out termDomain.InterestTerm
	res := r.db.WithContext(ctx).Where("term_id = ?", termID).First(&out)
	return &out, res.Error
}
