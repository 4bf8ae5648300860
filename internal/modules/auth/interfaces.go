package auth

import (
	"context"
	"time"

	"userhub/internal/domain"
)

// UserRepository is the slice of the user store the auth service uses.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RefreshTokenRepository stores issued refresh tokens keyed by token string.
type RefreshTokenRepository interface {
	Create(ctx context.Context, t *domain.RefreshToken) error
	GetByToken(ctx context.Context, token string) (*domain.RefreshToken, error)
	// DeleteByToken returns the number of rows removed; zero means another
	// call already consumed the token.
	DeleteByToken(ctx context.Context, token string) (int64, error)
}

// TokenIssuer signs access and refresh tokens bound to a user id.
type TokenIssuer interface {
	GenerateAccessToken(userID int64, role string) (string, error)
	GenerateRefreshToken(userID int64) (string, error)
	RefreshTTL() time.Duration
}

// PasswordHasher hashes and verifies credentials.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) bool
}
