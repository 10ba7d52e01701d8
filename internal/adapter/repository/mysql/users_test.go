package mysql

import (
	"context"
	"errors"
	"testing"

	userDomain "cryptolend-backend/internal/domain/user"
	"cryptolend-backend/pkg/id"

	"gorm.io/gorm"
)

func makeUser(userID, email string) *userDomain.User {
	return &userDomain.User{
		UserID:   userID,
		Email:    email,
		Password: "Sup3rSecret",
		IsActive: true,
	}
}

func TestUserCreateAndGetByUserID(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	userID := id.NewID32()
	u := makeUser(userID, "lender@example.com")
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if got.Email != "lender@example.com" || !got.IsActive {
		t.Errorf("unexpected user: %+v", got)
	}
}

func TestUserGetByEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := makeUser(id.NewID32(), "borrower@example.com")
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByEmail(ctx, "borrower@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.UserID != u.UserID {
		t.Errorf("unexpected user: %+v", got)
	}

	if _, err := repo.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestUserSaveUpdates(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	userID := id.NewID32()
	u := makeUser(userID, "update@example.com")
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	u.IsActive = false
	if err := repo.Save(ctx, u); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if got.IsActive {
		t.Errorf("IsActive not updated, still true")
	}
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, makeUser(id.NewID32(), "dup@example.com")); err != nil {
		t.Fatalf("Create first: %v", err)
	}
	// unique index on email should reject the second row
	if err := repo.Create(ctx, makeUser(id.NewID32(), "dup@example.com")); err == nil {
		t.Fatalf("expected unique constraint violation, got nil")
	}
}
