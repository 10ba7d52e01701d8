package loanrequest

import "context"

type Repository interface {
	Create(ctx context.Context, lr *LoanRequest) error
	Save(ctx context.Context, lr *LoanRequest) error
	GetByRequestID(ctx context.Context, requestID string) (*LoanRequest, error)
	GetPendingByBorrowerID(ctx context.Context, borrowerID string) ([]LoanRequest, error)
}
