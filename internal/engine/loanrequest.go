package engine

import (
	"context"
	"time"

	"cryptolend-backend/internal/domain/loanrequest"
	"cryptolend-backend/internal/domain/uow"
	"cryptolend-backend/pkg/id"
)

// Default window between a request's date and its expiry when the caller
// supplies no expiry.
const defaultExpiryWindow = 30 * 24 * time.Hour

// SaveLoanRequest applies creation defaults (status pending, request date
// now, expiry 30 days out), validates every field and persists.
func (e *Engine) SaveLoanRequest(ctx context.Context, lr *loanrequest.LoanRequest, changes ChangeSet) error {
	now := e.now().UTC()
	applyLoanRequestDefaults(lr, now)

	if errs := ValidateLoanRequest(lr, now); len(errs) > 0 {
		return errs
	}

	return e.uow.WithinTx(ctx, func(r uow.Repos) error {
		if lr.ID == 0 {
			if lr.RequestID == "" {
				lr.RequestID = id.NewID32()
			}
			return r.LoanRequests.Create(ctx, lr)
		}
		return r.LoanRequests.Save(ctx, lr)
	})
}

func applyLoanRequestDefaults(lr *loanrequest.LoanRequest, now time.Time) {
	if lr.RequestDate.IsZero() {
		lr.RequestDate = now
	}
	if lr.ExpiryDate.IsZero() {
		lr.ExpiryDate = lr.RequestDate.Add(defaultExpiryWindow)
	}
	if lr.Status == "" {
		lr.Status = loanrequest.StatusPending
	}
}
