package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"userhub/internal/domain"
)

// RefreshTokenRepository provides DB access for refresh tokens. The token
// string is the unique lookup key; deletes are the rotation primitive.
type RefreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, t *domain.RefreshToken) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *RefreshTokenRepository) GetByToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	var t domain.RefreshToken
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteByToken removes the row for the given token and reports how many
// rows went away. Two refresh calls racing on the same token both reach
// this delete, but the store lets only one of them see RowsAffected == 1.
func (r *RefreshTokenRepository) DeleteByToken(ctx context.Context, token string) (int64, error) {
	tx := r.db.WithContext(ctx).Where("token = ?", token).Delete(&domain.RefreshToken{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).Where("expires_at < ?", now.UTC()).Delete(&domain.RefreshToken{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
