package storemock

import (
	"context"

	domain "cryptolend-backend/internal/domain/loanrequest"

	"gorm.io/gorm"
)

var _ domain.Repository = (*LoanRequests)(nil)

type LoanRequests struct {
	CreateFn                 func(ctx context.Context, lr *domain.LoanRequest) error
	SaveFn                   func(ctx context.Context, lr *domain.LoanRequest) error
	GetByRequestIDFn         func(ctx context.Context, requestID string) (*domain.LoanRequest, error)
	GetPendingByBorrowerIDFn func(ctx context.Context, borrowerID string) ([]domain.LoanRequest, error)
}

func (m *LoanRequests) Create(ctx context.Context, lr *domain.LoanRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, lr)
	}
	return nil
}

func (m *LoanRequests) Save(ctx context.Context, lr *domain.LoanRequest) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, lr)
	}
	return nil
}

func (m *LoanRequests) GetByRequestID(ctx context.Context, requestID string) (*domain.LoanRequest, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *LoanRequests) GetPendingByBorrowerID(ctx context.Context, borrowerID string) ([]domain.LoanRequest, error) {
	if m.GetPendingByBorrowerIDFn != nil {
		return m.GetPendingByBorrowerIDFn(ctx, borrowerID)
	}
	return nil, nil
}
