package engine

import (
	"strings"
	"testing"
	"time"

	"cryptolend-backend/internal/domain/cryptocurrency"
	"cryptolend-backend/internal/domain/deal"
	"cryptolend-backend/internal/domain/loanrequest"
	"cryptolend-backend/internal/domain/user"
)

// ----- User -----

func TestValidateUser_Valid(t *testing.T) {
	u := &user.User{Email: "test@example.com", Password: "Password123"}
	if errs := ValidateUser(u); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidateUser_EmailRules(t *testing.T) {
	cases := []struct {
		name  string
		email string
	}{
		{"missing", ""},
		{"bad format", "invalid-email"},
		{"too short", "a@"},
		{"too long", strings.Repeat("a", 190) + "@example.com"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := &user.User{Email: tc.email, Password: "Password123"}
			errs := ValidateUser(u)
			if !errs.Has("email") {
				t.Fatalf("email %q: expected an email error, got %v", tc.email, errs)
			}
		})
	}
}

func TestValidateUser_PasswordRules(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Password123", false},
		{"missing", "", true},
		{"too short", "Short1", true},
		{"too long", "L" + strings.Repeat("o", 98) + "ng1", true},
		{"no uppercase", "password123", true},
		{"no lowercase", "PASSWORD123", true},
		{"no digit", "PasswordABC", true},
		{"exactly 8", "Abcdef12", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := &user.User{Email: "test@example.com", Password: tc.password}
			errs := ValidateUser(u)
			if tc.wantErr && !errs.Has("password") {
				t.Fatalf("password %q: expected a password error, got %v", tc.password, errs)
			}
			if !tc.wantErr && errs.Has("password") {
				t.Fatalf("password %q: unexpected error: %v", tc.password, errs)
			}
		})
	}
}

func TestValidateUser_AggregatesAcrossFields(t *testing.T) {
	u := &user.User{} // both email and password missing
	errs := ValidateUser(u)
	if !errs.Has("email") || !errs.Has("password") {
		t.Fatalf("expected errors on both email and password, got %v", errs)
	}
}

// ----- Cryptocurrency -----

func TestValidateCryptocurrency_SymbolRules(t *testing.T) {
	cases := []struct {
		name    string
		symbol  string
		wantErr bool
	}{
		{"valid BTC", "BTC", false},
		{"valid 5 chars", "MATIC", false},
		{"missing", "", true},
		{"too short", "BT", true},
		{"too long", "TOOLONG", true},
		{"digits", "BT1", true},
		{"lowercase leaks through unnormalized", "btc", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &cryptocurrency.Cryptocurrency{Symbol: tc.symbol, Name: "Bitcoin"}
			errs := ValidateCryptocurrency(c)
			if tc.wantErr && !errs.Has("symbol") {
				t.Fatalf("symbol %q: expected error, got %v", tc.symbol, errs)
			}
			if !tc.wantErr && len(errs) != 0 {
				t.Fatalf("symbol %q: unexpected errors: %v", tc.symbol, errs)
			}
		})
	}
}

func TestValidateCryptocurrency_NormalizeThenValidate(t *testing.T) {
	c := &cryptocurrency.Cryptocurrency{Symbol: " btc ", Name: "  Bitcoin  "}
	c.Normalize()
	if c.Symbol != "BTC" || c.Name != "Bitcoin" {
		t.Fatalf("normalize: %+v", c)
	}
	if errs := ValidateCryptocurrency(c); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidateCryptocurrency_Name(t *testing.T) {
	c := &cryptocurrency.Cryptocurrency{Symbol: "ETH"}
	if errs := ValidateCryptocurrency(c); !errs.Has("name") {
		t.Fatalf("expected name error, got %v", errs)
	}

	c = &cryptocurrency.Cryptocurrency{Symbol: "ETH", Name: strings.Repeat("x", 51)}
	if errs := ValidateCryptocurrency(c); !errs.Has("name") {
		t.Fatalf("expected name length error, got %v", errs)
	}
}

// ----- LoanRequest -----

func validRequest(now time.Time) *loanrequest.LoanRequest {
	return &loanrequest.LoanRequest{
		BorrowerID:       strings.Repeat("b", 32),
		CryptocurrencyID: strings.Repeat("c", 32),
		InterestTermID:   strings.Repeat("t", 32),
		RequestAmount:    500,
		RequestDate:      now,
		ExpiryDate:       now.Add(24 * time.Hour),
		Status:           loanrequest.StatusPending,
	}
}

func TestValidateLoanRequest_Valid(t *testing.T) {
	now := time.Now().UTC()
	if errs := ValidateLoanRequest(validRequest(now), now); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidateLoanRequest_NegativeAmount(t *testing.T) {
	now := time.Now().UTC()
	lr := validRequest(now)
	lr.RequestAmount = -100
	errs := ValidateLoanRequest(lr, now)
	if !errs.Has("request_amount") {
		t.Fatalf("expected request_amount error, got %v", errs)
	}
	if !strings.Contains(errs.Error(), "Request amount must be greater than 0") {
		t.Fatalf("message = %q", errs.Error())
	}
}

func TestValidateLoanRequest_FutureRequestDate(t *testing.T) {
	now := time.Now().UTC()
	lr := validRequest(now)
	lr.RequestDate = now.Add(24 * time.Hour)
	lr.ExpiryDate = lr.RequestDate.Add(24 * time.Hour)
	errs := ValidateLoanRequest(lr, now)
	if !strings.Contains(errs.Error(), "Request date cannot be in the future") {
		t.Fatalf("errors = %v", errs)
	}
}

func TestValidateLoanRequest_ExpiryBeforeRequestDate(t *testing.T) {
	now := time.Now().UTC()
	lr := validRequest(now)
	lr.ExpiryDate = now.Add(-24 * time.Hour)
	if errs := ValidateLoanRequest(lr, now); !errs.Has("expiry_date") {
		t.Fatalf("expected expiry_date error, got %v", errs)
	}
}

func TestValidateLoanRequest_InvalidStatus(t *testing.T) {
	now := time.Now().UTC()
	lr := validRequest(now)
	lr.Status = "invalid-status"
	errs := ValidateLoanRequest(lr, now)
	if !errs.Has("status") {
		t.Fatalf("expected status error, got %v", errs)
	}
	if !strings.Contains(errs.Error(), "`invalid-status` is not a valid enum value for path `status`") {
		t.Fatalf("message = %q", errs.Error())
	}
}

func TestValidateLoanRequest_MissingInterestTerm(t *testing.T) {
	now := time.Now().UTC()
	lr := validRequest(now)
	lr.InterestTermID = ""
	errs := ValidateLoanRequest(lr, now)
	if !errs.Has("interest_term") {
		t.Fatalf("expected interest_term error, got %v", errs)
	}
	if !strings.Contains(errs.Error(), "interest_term: Path `interest_term` is required.") {
		t.Fatalf("message = %q", errs.Error())
	}
}

func TestValidateLoanRequest_AllRequiredMissing(t *testing.T) {
	now := time.Now().UTC()
	errs := ValidateLoanRequest(&loanrequest.LoanRequest{}, now)
	for _, field := range []string{"borrower_id", "cryptocurrency", "interest_term", "request_amount", "status"} {
		if !errs.Has(field) {
			t.Errorf("expected error on %s, got %v", field, errs)
		}
	}
}

// ----- Deal -----

func TestValidateDeal_RequiredFields(t *testing.T) {
	errs := ValidateDeal(&deal.Deal{})
	if !errs.Has("lenderId") || !errs.Has("loanDetails") {
		t.Fatalf("expected lenderId and loanDetails errors, got %v", errs)
	}
}

func TestValidateDeal_Valid(t *testing.T) {
	d := &deal.Deal{LenderID: strings.Repeat("l", 32), LoanDetailsID: strings.Repeat("r", 32)}
	if errs := ValidateDeal(d); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}
