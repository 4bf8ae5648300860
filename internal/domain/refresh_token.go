package domain

import "time"

// RefreshToken is a single-use session credential. The token string itself
// is the lookup key; a successful refresh deletes the consumed row and
// inserts its replacement, so at most one valid row exists per session.
type RefreshToken struct {
	ID int64 `json:"id" gorm:"primaryKey"`

	Token string `json:"-" gorm:"size:512;uniqueIndex;not null"`

	UserID int64 `json:"user_id" gorm:"index;not null"`
	User   User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index;not null"`
}

func (t *RefreshToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
