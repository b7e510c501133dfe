package users

import (
	"context"
)

// Repository is the persistence boundary for accounts. Create reports
// uniqueness rejections as *common.ConflictError; GetByEmail reports an
// absent row as common.ErrNotFound, which callers treat as a normal branch.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
