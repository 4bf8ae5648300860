package users

import (
	"context"

	"userhub/internal/domain"
)

// UserRepository is the slice of the user store this module uses.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
	UpdateRole(ctx context.Context, id int64, role domain.Role) (*domain.User, error)
	UpdateStatus(ctx context.Context, id int64, active bool) (*domain.User, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
}
