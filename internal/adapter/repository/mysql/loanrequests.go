package mysql

import (
	"context"

	lrDomain "cryptolend-backend/internal/domain/loanrequest"

	"gorm.io/gorm"
)

type LoanRequestRepository struct{ db *gorm.DB }

func NewLoanRequestRepository(db *gorm.DB) *LoanRequestRepository {
	return &LoanRequestRepository{db: db}
}

func (r *LoanRequestRepository) Create(ctx context.Context, lr *lrDomain.LoanRequest) error {
	return r.db.WithContext(ctx).Create(lr).Error
}

func (r *LoanRequestRepository) Save(ctx context.Context, lr *lrDomain.LoanRequest) error {
	return r.db.WithContext(ctx).Save(lr).Error
}

func (r *LoanRequestRepository) GetByRequestID(ctx context.Context, requestID string) (*lrDomain.LoanRequest, error) {
	var out lrDomain.LoanRequest
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

func (r *LoanRequestRepository) GetPendingByBorrowerID(ctx context.Context, borrowerID string) ([]lrDomain.LoanRequest, error) {
	var out []lrDomain.LoanRequest
	res := r.db.WithContext(ctx).
		Where("borrower_id = ? AND status = ?", borrowerID, lrDomain.StatusPending).
		Order("request_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}
