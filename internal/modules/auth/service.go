package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"userhub/internal/domain"
	"userhub/internal/pkg/apperror"
	"userhub/internal/repository"
)

// Service contains all business logic for registration, login, and the
// refresh-token lifecycle.
type Service struct {
	users  UserRepository
	tokens RefreshTokenRepository
	issuer TokenIssuer
	hasher PasswordHasher

	// Single clock source for expiry checks; tests swap it out.
	now func() time.Time
}

type LoginResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

type RefreshResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

func NewService(users UserRepository, tokens RefreshTokenRepository, issuer TokenIssuer, hasher PasswordHasher) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		issuer: issuer,
		hasher: hasher,
		now:    time.Now,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
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
		parsed, ok := domain.ParseRole(req.Role)
		if !ok {
			return nil, apperror.Validation(map[string]string{"role": "oneof"})
		}
		role = parsed
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
		// Racing registrations hit the unique index instead of the
		// ExistsByEmail check above.
		if repository.IsDuplicateKey(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.Active {
		return nil, ErrAccountDeactivated
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh rotates a refresh token: the consumed token is deleted and a new
// pair is issued for the same user. Deletion doubles as the claim — when two
// calls race on one token, the store lets only one delete succeed and the
// loser fails the same way an unknown token does.
func (s *Service) Refresh(ctx context.Context, token string) (*RefreshResult, error) {
	stored, err := s.tokens.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	if stored.IsExpired(s.now()) {
		return nil, ErrInvalidRefreshToken
	}

	deleted, err := s.tokens.DeleteByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if deleted == 0 {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.users.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}

	accessToken, refreshToken, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &RefreshResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	_, err := s.tokens.DeleteByToken(ctx, token)
	return err
}

func (s *Service) issueTokenPair(ctx context.Context, user *domain.User) (string, string, error) {
	accessToken, err := s.issuer.GenerateAccessToken(user.ID, string(user.Role))
	if err != nil {
		return "", "", err
	}

	refreshToken, err := s.issuer.GenerateRefreshToken(user.ID)
	if err != nil {
		return "", "", err
	}

	if err := s.tokens.Create(ctx, &domain.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: s.now().Add(s.issuer.RefreshTTL()),
	}); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}
