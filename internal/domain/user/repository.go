package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	Save(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	// GetByEmail expects a normalized address (see NormalizeEmail).
	GetByEmail(ctx context.Context, email string) (*User, error)
}
