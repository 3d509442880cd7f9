package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"campuscal/internal/domain"
)

// TokenExpiry is how long an issued login token stays valid.
const TokenExpiry = 24 * time.Hour

type authService struct {
	users          domain.UserRepository
	hasher         domain.PasswordHasher
	tokens         domain.TokenIssuer
	contextTimeout time.Duration
}

// NewAuthService creates an AuthService over the given user repository,
// password hasher, and token issuer.
func NewAuthService(users domain.UserRepository, hasher domain.PasswordHasher, tokens domain.TokenIssuer, timeout time.Duration) domain.AuthService {
	return &authService{
		users:          users,
		hasher:         hasher,
		tokens:         tokens,
		contextTimeout: timeout,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", "", "", domain.ErrUserNotFound
		}
		return "", "", "", fmt.Errorf("look up user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return "", "", "", domain.ErrWrongPassword
	}

	token, err := s.tokens.Issue(user.ID, user.Role, TokenExpiry)
	if err != nil {
		return "", "", "", fmt.Errorf("issue token: %w", err)
	}
	return token, user.Role, user.Name, nil
}
