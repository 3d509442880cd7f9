package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"campuscal/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		email      string
		mock       func(mock sqlmock.Sqlmock)
		want       *domain.User
		wantErr    bool
		isNotFound bool
	}{
		{
			name:  "success",
			email: "admin@college.edu",
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "email", "password", "role", "name", "created_at"}).
					AddRow(int64(1), "admin@college.edu", "$2a$10$hash", "admin", "Alex Admin", created)
				mock.ExpectQuery(`SELECT id, email, password, role, name, created_at`).
					WithArgs("admin@college.edu").
					WillReturnRows(rows)
			},
			want: &domain.User{
				ID:           1,
				Email:        "admin@college.edu",
				PasswordHash: "$2a$10$hash",
				Role:         "admin",
				Name:         "Alex Admin",
				CreatedAt:    created,
			},
		},
		{
			name:  "email is normalized before lookup",
			email: "  Admin@College.EDU ",
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "email", "password", "role", "name", "created_at"}).
					AddRow(int64(1), "admin@college.edu", "$2a$10$hash", "admin", "Alex Admin", created)
				mock.ExpectQuery(`SELECT id, email, password, role, name, created_at`).
					WithArgs("admin@college.edu").
					WillReturnRows(rows)
			},
			want: &domain.User{
				ID:           1,
				Email:        "admin@college.edu",
				PasswordHash: "$2a$10$hash",
				Role:         "admin",
				Name:         "Alex Admin",
				CreatedAt:    created,
			},
		},
		{
			name:  "not found",
			email: "nobody@college.edu",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, email, password, role, name, created_at`).
					WithArgs("nobody@college.edu").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr:    true,
			isNotFound: true,
		},
		{
			name:  "db error",
			email: "admin@college.edu",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, email, password, role, name, created_at`).
					WithArgs("admin@college.edu").
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewUserRepository(db)
			got, err := repo.GetByEmail(ctx, tt.email)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, got)
				if tt.isNotFound {
					require.True(t, errors.Is(err, domain.ErrUserNotFound))
				}
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO users \(email, password, role, name, created_at\)`).
			WithArgs("student@college.edu", "$2a$10$hash", "student", "Sam Student", created).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

		repo := NewUserRepository(db)
		u := &domain.User{
			Email:        "Student@College.edu",
			PasswordHash: "$2a$10$hash",
			Role:         "student",
			Name:         "Sam Student",
			CreatedAt:    created,
		}
		require.NoError(t, repo.Create(ctx, u))
		require.Equal(t, int64(3), u.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(sql.ErrConnDone)

		repo := NewUserRepository(db)
		u := &domain.User{Email: "x@college.edu", PasswordHash: "h", Role: "student", CreatedAt: created}
		require.Error(t, repo.Create(ctx, u))
	})
}
