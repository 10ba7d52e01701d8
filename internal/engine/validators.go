package engine

import (
	"fmt"
	"net/mail"
	"time"
	"unicode"

	"cryptolend-backend/internal/domain/cryptocurrency"
	"cryptolend-backend/internal/domain/deal"
	"cryptolend-backend/internal/domain/interestterm"
	"cryptolend-backend/internal/domain/loanrequest"
	"cryptolend-backend/internal/domain/user"
	"cryptolend-backend/internal/domain/validation"
)

// Field validators. Each one checks every attribute of its document and
// reports all violations together; nothing short-circuits after the first
// failing field. Inputs are expected in normalized form (see the entity
// Normalize methods) — length bounds and format checks apply post-normalization.

// ValidateUser checks email shape/bounds and the password policy
// (length 8-100, at least one uppercase, one lowercase, one digit).
func ValidateUser(u *user.User) validation.FieldErrors {
	var errs validation.FieldErrors

	switch {
	case u.Email == "":
		errs = append(errs, validation.FieldError{
			Field: "email", Kind: validation.KindRequired, Message: "Email is required",
		})
	case len(u.Email) < 3 || len(u.Email) > 200:
		errs = append(errs, validation.FieldError{
			Field: "email", Kind: validation.KindRange, Message: "Email must be between 3 and 200 characters",
		})
	case !validEmail(u.Email):
		errs = append(errs, validation.FieldError{
			Field: "email", Kind: validation.KindFormat, Message: "Email must be a valid email address",
		})
	}

	switch {
	case u.Password == "":
		errs = append(errs, validation.FieldError{
			Field: "password", Kind: validation.KindRequired, Message: "Password is required",
		})
	case len(u.Password) < 8 || len(u.Password) > 100:
		errs = append(errs, validation.FieldError{
			Field: "password", Kind: validation.KindRange, Message: "Password must be between 8 and 100 characters",
		})
	case !passwordClasses(u.Password):
		errs = append(errs, validation.FieldError{
			Field: "password", Kind: validation.KindFormat,
			Message: "Password must contain at least one uppercase letter, one lowercase letter, and one number",
		})
	}

	return errs
}

func validEmail(s string) bool {
	a, err := mail.ParseAddress(s)
	// reject the "Name <addr>" form; only a bare address is a valid value
	return err == nil && a.Address == s
}

// passwordClasses requires all three character classes simultaneously.
func passwordClasses(s string) bool {
	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

// ValidateCryptocurrency checks the symbol (3-5 chars, A-Z only after
// uppercasing) and the display name (1-50 chars after trimming).
func ValidateCryptocurrency(c *cryptocurrency.Cryptocurrency) validation.FieldErrors {
	var errs validation.FieldErrors

	switch {
	case c.Symbol == "":
		errs = append(errs, validation.FieldError{
			Field: "symbol", Kind: validation.KindRequired, Message: "Symbol is required",
		})
	case len(c.Symbol) < 3 || len(c.Symbol) > 5:
		errs = append(errs, validation.FieldError{
			Field: "symbol", Kind: validation.KindRange, Message: "Symbol must be between 3 and 5 characters",
		})
	case !symbolLetters(c.Symbol):
		errs = append(errs, validation.FieldError{
			Field: "symbol", Kind: validation.KindFormat, Message: "Symbol must contain only uppercase letters",
		})
	}

	switch {
	case c.Name == "":
		errs = append(errs, validation.FieldError{
			Field: "name", Kind: validation.KindRequired, Message: "Name is required",
		})
	case len(c.Name) > 50:
		errs = append(errs, validation.FieldError{
			Field: "name", Kind: validation.KindRange, Message: "Name must be at most 50 characters",
		})
	}

	return errs
}

func symbolLetters(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// ValidateInterestTerm checks the reference-data row a loan request is
// priced against.
func ValidateInterestTerm(t *interestterm.InterestTerm) validation.FieldErrors {
	var errs validation.FieldErrors
	if t.LoanLength <= 0 {
		errs = append(errs, validation.FieldError{
			Field: "loan_length", Kind: validation.KindRange, Message: "Loan length must be a positive number of months",
		})
	}
	if t.InterestRate <= 0 {
		errs = append(errs, validation.FieldError{
			Field: "interest_rate", Kind: validation.KindRange, Message: "Interest rate must be greater than 0",
		})
	}
	return errs
}

// ValidateLoanRequest checks a request against "now" (request dates may not
// be in the future). Defaults are expected to be applied beforehand.
func ValidateLoanRequest(lr *loanrequest.LoanRequest, now time.Time) validation.FieldErrors {
	var errs validation.FieldErrors

	if lr.BorrowerID == "" {
		errs = append(errs, requiredPath("borrower_id"))
	}
	if lr.CryptocurrencyID == "" {
		errs = append(errs, requiredPath("cryptocurrency"))
	}
	if lr.InterestTermID == "" {
		errs = append(errs, requiredPath("interest_term"))
	}
	if lr.RequestAmount <= 0 {
		errs = append(errs, validation.FieldError{
			Field: "request_amount", Kind: validation.KindRange, Message: "Request amount must be greater than 0",
		})
	}
	if lr.RequestDate.After(now) {
		errs = append(errs, validation.FieldError{
			Field: "request_date", Kind: validation.KindRange, Message: "Request date cannot be in the future",
		})
	}
	if !lr.ExpiryDate.After(lr.RequestDate) {
		errs = append(errs, validation.FieldError{
			Field: "expiry_date", Kind: validation.KindRange, Message: "Expiry date must be after request date",
		})
	}
	if !lr.Status.Valid() {
		errs = append(errs, validation.FieldError{
			Field: "status", Kind: validation.KindEnum,
			Message: fmt.Sprintf("`%s` is not a valid enum value for path `status`", lr.Status),
		})
	}

	return errs
}

// ValidateDeal checks the deal's own attributes. The derived completion
// date is the derivation step's responsibility, not a field rule.
func ValidateDeal(d *deal.Deal) validation.FieldErrors {
	var errs validation.FieldErrors
	if d.LenderID == "" {
		errs = append(errs, requiredPath("lenderId"))
	}
	if d.LoanDetailsID == "" {
		errs = append(errs, requiredPath("loanDetails"))
	}
	return errs
}

func requiredPath(field string) validation.FieldError {
	return validation.FieldError{
		Field: field, Kind: validation.KindRequired,
		Message: fmt.Sprintf("Path `%s` is required.", field),
	}
}
