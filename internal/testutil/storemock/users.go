// Package storemock holds function-backed mocks for the repository
// interfaces. Fill in the function fields a test needs; unfilled lookups
// report gorm.ErrRecordNotFound and unfilled writes succeed.
package storemock

import (
	"context"

	domain "cryptolend-backend/internal/domain/user"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Users)(nil)

type Users struct {
	CreateFn      func(ctx context.Context, u *domain.User) error
	SaveFn        func(ctx context.Context, u *domain.User) error
	GetByUserIDFn func(ctx context.Context, userID string) (*domain.User, error)
	GetByEmailFn  func(ctx context.Context, email string) (*domain.User, error)
}

func (m *Users) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Users) Save(ctx context.Context, u *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}

func (m *Users) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Users) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}
