package interestterm

import "time"

// InterestTerm is the rate/duration pair a loan request is priced against.
// LoanLength is whole calendar months; the deal derivation advances the
// request's creation date by exactly that many months.
type InterestTerm struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	TermID       string    `gorm:"size:32;uniqueIndex:ux_interest_terms_term_id" json:"term_id"`
	LoanLength   int       `gorm:"column:loan_length" json:"loan_length"`
	InterestRate float64   `gorm:"column:interest_rate;type:decimal(6,2)" json:"interest_rate"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (InterestTerm) TableName() string { return "interest_terms" }
