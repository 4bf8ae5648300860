package domain

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
	RoleUser     Role = "USER"
)

// ParseRole maps a request value onto the closed role set. Unknown values
// are rejected instead of being stored verbatim.
func ParseRole(v string) (Role, bool) {
	switch Role(v) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleEmployee:
		return RoleEmployee, true
	case RoleUser:
		return RoleUser, true
	default:
		return "", false
	}
}

func (r Role) IsValid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// CanManageUsers reports whether the role may change other users' role or
// active status. Exhaustive on purpose: a role added above must be handled
// here before it takes part in an authorization decision.
func (r Role) CanManageUsers() bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleEmployee, RoleUser:
		return false
	default:
		return false
	}
}

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Name         string    `json:"name,omitempty"`
	Role         Role      `json:"role" gorm:"size:16;not null;default:USER"`
	Active       bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
