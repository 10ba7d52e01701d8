package engine

import (
	"context"
	"errors"

	"cryptolend-backend/internal/domain/deal"
	"cryptolend-backend/internal/domain/uow"
	"cryptolend-backend/internal/domain/validation"
	"cryptolend-backend/pkg/id"

	"gorm.io/gorm"
)

// SaveDeal is the lifecycle coordinator for deals, run per save attempt:
//
//  1. decide whether the completion date must be (re)derived — on create,
//     when the loanDetails reference changed, or when the date is unset;
//  2. derive it via the two-step resolve (LoanRequest, then its
//     InterestTerm) — any resolution failure aborts the save;
//  3. validate the deal's own fields;
//  4. persist.
//
// Everything runs in one transaction, so no deal is observable with an
// unset or stale completion date relative to its loanDetails.
func (e *Engine) SaveDeal(ctx context.Context, d *deal.Deal, changes ChangeSet) error {
	return e.uow.WithinTx(ctx, func(r uow.Repos) error {
		if needsDerivation(d, changes) {
			if err := e.deriveCompletionDate(ctx, r, d); err != nil {
				return err
			}
		}
		if errs := ValidateDeal(d); len(errs) > 0 {
			return errs
		}
		if d.ID == 0 {
			if d.DealID == "" {
				d.DealID = id.NewID32()
			}
			return r.Deals.Create(ctx, d)
		}
		return r.Deals.Save(ctx, d)
	})
}

// needsDerivation keeps an already-derived date untouched unless the save
// creates the deal, reassigns loanDetails, or finds the date unset. An empty
// reference is left to field validation to report as required.
func needsDerivation(d *deal.Deal, changes ChangeSet) bool {
	if d.LoanDetailsID == "" {
		return false
	}
	return d.ID == 0 || changes.Has("loanDetails") || d.ExpectedCompletionDate.IsZero()
}

// deriveCompletionDate resolves the deal's loan request and that request's
// interest term, then advances the request's creation date by loan_length
// calendar months. time.AddDate normalizes overflow days forward (Jan 31 +
// 1 month lands past end-of-February), which is the calendar arithmetic the
// derived date is defined by.
func (e *Engine) deriveCompletionDate(ctx context.Context, r uow.Repos, d *deal.Deal) error {
	lr, err := r.LoanRequests.GetByRequestID(ctx, d.LoanDetailsID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return validation.ErrLoanRequestNotFound
		}
		return err
	}

	if lr.InterestTermID == "" {
		return validation.ErrMissingInterestTerm
	}

	term, err := r.InterestTerms.GetByTermID(ctx, lr.InterestTermID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return validation.ErrInvalidInterestTerm
		}
		return err
	}
	if term.LoanLength <= 0 {
		return validation.ErrInvalidInterestTerm
	}

	base := lr.CreatedAt
	if base.IsZero() {
		base = e.now().UTC()
	}
	d.ExpectedCompletionDate = base.AddDate(0, term.LoanLength, 0)
	return nil
}
