package domain

import (
	"context"
	"errors"
	"time"
)

// Application roles. RoleNone is the unauthenticated default.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
	RoleNone    = "none"
)

// Sentinel errors for authentication.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
)

// User represents a registered user.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}

// TokenClaims is the verified content of a signed credential.
type TokenClaims struct {
	UserID int64
	Role   string
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues signed tokens carrying the user's id and role.
type TokenIssuer interface {
	Issue(userID int64, role string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (TokenClaims, error)
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// AuthService defines the login business logic.
type AuthService interface {
	// Login verifies credentials and returns a signed token plus the
	// user's role and display name.
	Login(ctx context.Context, email, password string) (token, role, name string, err error)
}
