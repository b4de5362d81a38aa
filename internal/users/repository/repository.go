package repository

import (
	"context"
	"errors"

	"usersvc/internal/users/model"
)

var (
	ErrDuplicate = errors.New("duplicate record")
	ErrNotFound  = errors.New("record not found")
)

type UserRepository interface {
	// Initialize unique indexes on email and phoneNumber
	EnsureIndexes(ctx context.Context) error
	// Insert a new user; ErrDuplicate if email or phone already exists
	Insert(ctx context.Context, user *model.User) (*model.User, error)
	// Exact lookup by normalized email; ErrNotFound when absent
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// Lookup by the store-assigned id; ErrNotFound when absent or malformed
	FindByID(ctx context.Context, id string) (*model.User, error)
	// Merge present fields onto the stored record and return the result
	UpdateByID(ctx context.Context, id string, update *model.UserUpdate) (*model.User, error)
	// Remove the record; ErrNotFound when absent
	DeleteByID(ctx context.Context, id string) error
	// Page of records matching the filter plus the total ignoring pagination
	Find(ctx context.Context, filter model.UserFilter, skip, limit int64) ([]*model.User, int64, error)
}
