package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/245124737105-sketch/PolyglotPal/internal/common"
	"github.com/245124737105-sketch/PolyglotPal/internal/models"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLMock(t *testing.T) (*UsersR, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewUsersRepository(sqlx.NewDb(db, "postgres")), mock
}

func TestUsersR_CreateUser(t *testing.T) {
	t.Parallel()

	now := time.Now()
	user := models.User{ID: "u1", Email: "ann@example.com", Username: "ann", PasswordHash: "hash", CreatedAt: now, LastLogin: now}

	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec("INSERT INTO users").
					WithArgs("u1", "ann@example.com", "ann", "hash", now, now).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "duplicate email",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec("INSERT INTO users").WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: common.ErrAlreadyExists,
		},
		{
			name: "other error",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec("INSERT INTO users").WillReturnError(errors.New("conn reset"))
			},
			wantErr: errors.New("conn reset"),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo, mock := newSQLMock(t)
			tt.setup(mock)

			err := repo.CreateUser(context.Background(), user)
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, common.ErrAlreadyExists) {
					assert.ErrorIs(t, err, common.ErrAlreadyExists)
				} else {
					assert.NotErrorIs(t, err, common.ErrAlreadyExists)
				}
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUsersR_UserByEmail(t *testing.T) {
	t.Parallel()

	query := regexp.QuoteMeta("FROM users") + `\s+WHERE email = \$1`
	columns := []string{"id", "email", "username", "password_hash", "created_at", "last_login"}

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		repo, mock := newSQLMock(t)
		now := time.Now()
		mock.ExpectQuery(query).WithArgs("ann@example.com").
			WillReturnRows(sqlmock.NewRows(columns).AddRow("u1", "ann@example.com", "ann", "hash", now, now))

		got, err := repo.UserByEmail(context.Background(), "ann@example.com")
		require.NoError(t, err)
		assert.Equal(t, "u1", got.ID)
		assert.Equal(t, "ann", got.Username)
		assert.Equal(t, "hash", got.PasswordHash)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		repo, mock := newSQLMock(t)
		mock.ExpectQuery(query).WithArgs("nobody@example.com").WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.UserByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, common.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUsersR_TouchLastLogin(t *testing.T) {
	t.Parallel()

	at := time.Now()

	t.Run("updated", func(t *testing.T) {
		t.Parallel()

		repo, mock := newSQLMock(t)
		mock.ExpectExec("UPDATE users SET last_login").WithArgs("u1", at).WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.TouchLastLogin(context.Background(), "u1", at))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing user", func(t *testing.T) {
		t.Parallel()

		repo, mock := newSQLMock(t)
		mock.ExpectExec("UPDATE users SET last_login").WithArgs("u404", at).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.TouchLastLogin(context.Background(), "u404", at)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}
