package validation

import (
	"errors"
	"strings"
)

// Kind classifies a single attribute violation so callers can tell a
// shape problem apart from a uniqueness conflict on the same attribute.
type Kind string

const (
	KindRequired Kind = "required"
	KindFormat   Kind = "format"
	KindRange    Kind = "range"
	KindEnum     Kind = "enum"
	KindUnique   Kind = "unique"
)

// FieldError is one attribute-level violation on the document being saved.
type FieldError struct {
	Field   string `json:"field"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e FieldError) Error() string { return e.Field + ": " + e.Message }

// FieldErrors aggregates every violation found on one document. Validators
// append to it instead of returning on the first failure, so a save attempt
// surfaces the complete error set for its document in one pass.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Error())
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether any violation is attached to the given attribute.
func (e FieldErrors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// OrNil returns the set as an error, or nil when no violation was recorded.
// A typed nil slice wrapped in an error interface would not compare equal to
// nil, hence the helper.
func (e FieldErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// AsFieldErrors unwraps err into a FieldErrors set when it carries one.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// Reference-resolution failures. These short-circuit a save attempt: field
// validation of the dependent document is meaningless without a resolved
// reference chain.
var (
	ErrLoanRequestNotFound = errors.New("LoanRequest document not found")
	ErrMissingInterestTerm = errors.New("LoanRequest missing interest_term")
	ErrInvalidInterestTerm = errors.New("Interest term is missing or invalid")
)

// IsReferenceError reports whether err belongs to the resolution class.
func IsReferenceError(err error) bool {
	return errors.Is(err, ErrLoanRequestNotFound) ||
		errors.Is(err, ErrMissingInterestTerm) ||
		errors.Is(err, ErrInvalidInterestTerm)
}
