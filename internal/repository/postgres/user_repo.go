package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"campuscal/internal/domain"
)

type userRepository struct {
	DB *sql.DB
}

// NewUserRepository returns the Postgres-backed UserRepository.
func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{
		DB: db,
	}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (email, password, role, name, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	email := strings.ToLower(strings.TrimSpace(u.Email))
	return r.DB.QueryRowContext(ctx, query, email, u.PasswordHash, u.Role, u.Name, u.CreatedAt).Scan(&u.ID)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, password, role, name, created_at
		FROM users
		WHERE email = $1
	`
	u := &domain.User{}
	err := r.DB.QueryRowContext(ctx, query, strings.ToLower(strings.TrimSpace(email))).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.Name, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
