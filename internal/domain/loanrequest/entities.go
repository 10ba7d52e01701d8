package loanrequest

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusFunded    Status = "funded"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is a member of the status enum.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusFunded, StatusExpired, StatusCancelled:
		return true
	}
	return false
}

// LoanRequest is a borrower's ask for funds against a collateral
// cryptocurrency. BorrowerID, CryptocurrencyID and InterestTermID hold the
// public 32-hex identifiers of the referenced documents.
type LoanRequest struct {
	ID               uint64    `gorm:"primaryKey;column:id" json:"-"`
	RequestID        string    `gorm:"size:32;uniqueIndex:ux_loan_requests_request_id" json:"request_id"`
	BorrowerID       string    `gorm:"size:32;index:idx_loan_requests_borrower" json:"borrower_id"`
	CryptocurrencyID string    `gorm:"size:32" json:"cryptocurrency"`
	InterestTermID   string    `gorm:"size:32" json:"interest_term"`
	RequestAmount    float64   `gorm:"type:decimal(18,2)" json:"request_amount"`
	RequestDate      time.Time `json:"request_date"`
	ExpiryDate       time.Time `json:"expiry_date"`
	Status           Status    `gorm:"type:enum('pending','funded','expired','cancelled');default:'pending'" json:"status"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LoanRequest) TableName() string { return "loan_requests" }
