package engine

import (
	"context"
	"errors"

	"cryptolend-backend/internal/domain/uow"
	"cryptolend-backend/internal/domain/user"
	"cryptolend-backend/internal/domain/validation"
	"cryptolend-backend/pkg/id"

	"gorm.io/gorm"
)

// SaveUser normalizes the email, runs field validation, then checks email
// uniqueness and persists inside one transaction. The lookup excludes the
// document's own row so updates don't conflict with themselves; the unique
// index on the email column backstops the pre-check against concurrent
// writers.
func (e *Engine) SaveUser(ctx context.Context, u *user.User, changes ChangeSet) error {
	u.Normalize()

	if u.ID == 0 && !changes.Has("isActive") {
		u.IsActive = true
	}

	if errs := ValidateUser(u); len(errs) > 0 {
		return errs
	}

	return e.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := checkEmailFree(ctx, r, u.Email, u.ID); err != nil {
			return err
		}
		if u.ID == 0 {
			if u.UserID == "" {
				u.UserID = id.NewID32()
			}
			return r.Users.Create(ctx, u)
		}
		return r.Users.Save(ctx, u)
	})
}

// CheckEmailUnique reports a uniqueness conflict for the given address,
// normalized first. excludingID names a row to ignore (0 for none).
func (e *Engine) CheckEmailUnique(ctx context.Context, email string, excludingID uint64) error {
	email = user.NormalizeEmail(email)
	return e.uow.WithinTx(ctx, func(r uow.Repos) error {
		return checkEmailFree(ctx, r, email, excludingID)
	})
}

func checkEmailFree(ctx context.Context, r uow.Repos, email string, selfID uint64) error {
	existing, err := r.Users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.ID != selfID {
			return validation.FieldErrors{{
				Field: "email", Kind: validation.KindUnique, Message: "Email is already registered",
			}}
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	default:
		return err
	}
}
