package uow

import (
	"context"

	"cryptolend-backend/internal/domain/cryptocurrency"
	"cryptolend-backend/internal/domain/deal"
	"cryptolend-backend/internal/domain/interestterm"
	"cryptolend-backend/internal/domain/loanrequest"
	"cryptolend-backend/internal/domain/user"
)

// Repos bundles every repository bound to the same transaction.
type Repos struct {
	Users            user.Repository
	Cryptocurrencies cryptocurrency.Repository
	InterestTerms    interestterm.Repository
	LoanRequests     loanrequest.Repository
	Deals            deal.Repository
}

// UnitOfWork runs fn with repositories sharing one transaction, so a save
// observes its own earlier reads/writes and a failure rolls everything back.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
