package users

import (
	"time"

	"userhub/internal/domain"
)

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"omitempty"`
	Role     string `json:"role" binding:"omitempty,oneof=ADMIN EMPLOYEE USER"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=ADMIN EMPLOYEE USER"`
}

type UpdateStatusRequest struct {
	// Pointer so "active": false survives required-field validation.
	Active *bool `json:"active" binding:"required"`
}

type UserResponse struct {
	ID        int64       `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name,omitempty"`
	Role      domain.Role `json:"role"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Pagination describes the page that came back. StartIndex/EndIndex are
// 1-based item positions; NextPage/PreviousPage are null at the boundaries.
type Pagination struct {
	Total           int64 `json:"total"`
	Page            int   `json:"page"`
	Limit           int   `json:"limit"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
	NextPage        *int  `json:"nextPage"`
	PreviousPage    *int  `json:"previousPage"`
	StartIndex      int   `json:"startIndex"`
	EndIndex        int   `json:"endIndex"`
	ItemsOnPage     int   `json:"itemsOnPage"`
}

type ListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination Pagination     `json:"pagination"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserResponses(list []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for i := range list {
		out = append(out, toUserResponse(&list[i]))
	}
	return out
}
