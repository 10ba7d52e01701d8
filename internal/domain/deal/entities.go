package deal

import "time"

// Deal binds a lender to a borrower's loan request. ExpectedCompletionDate
// is never supplied by callers: the engine derives it from the referenced
// request's creation date and its interest term's loan length, and
// recomputes it whenever the loanDetails reference changes.
type Deal struct {
	ID                     uint64    `gorm:"primaryKey;column:id" json:"-"`
	DealID                 string    `gorm:"size:32;uniqueIndex:ux_deals_deal_id" json:"deal_id"`
	LenderID               string    `gorm:"size:32;index:idx_deals_lender" json:"lender_id"`
	LoanDetailsID          string    `gorm:"size:32;column:loan_details_id" json:"loan_details"`
	IsComplete             bool      `json:"is_complete"`
	ExpectedCompletionDate time.Time `json:"expected_completion_date"`
	CreatedAt              time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Deal) TableName() string { return "deals" }
