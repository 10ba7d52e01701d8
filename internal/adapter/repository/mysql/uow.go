package mysql

import (
	"context"

	"cryptolend-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(uow.Repos{
			Users:            &UserRepository{db: tx},
			Cryptocurrencies: &CryptocurrencyRepository{db: tx},
			InterestTerms:    &InterestTermRepository{db: tx},
			LoanRequests:     &LoanRequestRepository{db: tx},
			Deals:            &DealRepository{db: tx},
		})
	})
}
