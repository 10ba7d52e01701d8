package user

import (
	"strings"
	"time"
)

// User is a platform account, lender or borrower. Email is normalized
// (trimmed, lowercased) before validation, storage and uniqueness checks.
// Password is validated for shape only and stored as given; hashing belongs
// to the auth layer, which this core does not own.
type User struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	UserID    string    `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"user_id"`
	Email     string    `gorm:"size:200;uniqueIndex:ux_users_email" json:"email"`
	Password  string    `gorm:"size:100" json:"-"`
	IsAdmin   bool      `json:"is_admin"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

// Normalize applies the canonical form used for storage and comparisons.
func (u *User) Normalize() {
	u.Email = NormalizeEmail(u.Email)
}

// NormalizeEmail trims surrounding whitespace and lowercases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
