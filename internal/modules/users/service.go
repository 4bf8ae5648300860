package users

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"userhub/internal/domain"
	"userhub/internal/repository"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Service handles user CRUD and the admin-only role/status mutations.
// No token logic lives here.
type Service struct {
	users  UserRepository
	hasher PasswordHasher
}

type UserPage struct {
	Users      []domain.User
	Pagination Pagination
}

func NewService(users UserRepository, hasher PasswordHasher) *Service {
	return &Service{users: users, hasher: hasher}
}

// Create is the administrative creation path. Same duplicate check and
// hashing as self-registration, independent of it.
func (s *Service) Create(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	role := domain.RoleUser
	if req.Role != "" {
		if parsed, ok := domain.ParseRole(req.Role); ok {
			role = parsed
		}
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hashed,
		Name:         req.Name,
		Role:         role,
		Active:       true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// List returns one page of users with internally consistent metadata:
// endIndex = min(skip+limit, total), next/previous pages null at the edges.
func (s *Service) List(ctx context.Context, page, limit int) (*UserPage, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	skip := (page - 1) * limit

	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.users.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	p := Pagination{
		Total:           total,
		Page:            page,
		Limit:           limit,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
		StartIndex:      skip + 1,
		EndIndex:        min(skip+limit, int(total)),
		ItemsOnPage:     len(list),
	}
	if p.HasNextPage {
		next := page + 1
		p.NextPage = &next
	}
	if p.HasPreviousPage {
		prev := page - 1
		p.PreviousPage = &prev
	}

	return &UserPage{Users: list, Pagination: p}, nil
}

// UpdateRole re-verifies the requesting user is currently an admin even
// though the route is role-gated. The two checks are independent on
// purpose.
func (s *Service) UpdateRole(ctx context.Context, id int64, role domain.Role, requestingUserID int64) (*domain.User, error) {
	if err := s.requireAdmin(ctx, requestingUserID, ErrRoleChangeForbidden); err != nil {
		return nil, err
	}

	updated, err := s.users.UpdateRole(ctx, id, role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	updated.PasswordHash = ""
	return updated, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, active bool, requestingUserID int64) (*domain.User, error) {
	if err := s.requireAdmin(ctx, requestingUserID, ErrStatusChangeForbidden); err != nil {
		return nil, err
	}

	updated, err := s.users.UpdateStatus(ctx, id, active)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	updated.PasswordHash = ""
	return updated, nil
}

func (s *Service) requireAdmin(ctx context.Context, requestingUserID int64, forbidden error) error {
	requester, err := s.users.GetByID(ctx, requestingUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return forbidden
		}
		return err
	}
	if !requester.Role.CanManageUsers() {
		return forbidden
	}
	return nil
}
