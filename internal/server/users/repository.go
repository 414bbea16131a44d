package users

import (
	"context"
)

// Repository is the storage contract for user accounts. Implementations must
// report an attempt to create a second account with an existing email as
// common.ErrorAlreadyExists, backed by a storage-level uniqueness constraint
// so that a concurrent check-then-insert race cannot slip through.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
}
