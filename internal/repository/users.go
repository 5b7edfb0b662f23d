package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/245124737105-sketch/PolyglotPal/internal/common"
	"github.com/245124737105-sketch/PolyglotPal/internal/models"
)

type UsersR struct {
	db QueryI
}

func NewUsersRepository(db QueryI) *UsersR {
	return &UsersR{db: db}
}

func (u *UsersR) CreateUser(ctx context.Context, user models.User) error {
	query := `INSERT INTO users (id, email, username, password_hash, created_at, last_login)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := u.db.ExecContext(ctx, query, user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt, user.LastLogin)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user %s: %w", user.Email, common.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (u *UsersR) UserByEmail(ctx context.Context, email string) (models.User, error) {
	return u.userBy(ctx, "email", email)
}

func (u *UsersR) UserByID(ctx context.Context, id string) (models.User, error) {
	return u.userBy(ctx, "id", id)
}

func (u *UsersR) userBy(ctx context.Context, column, value string) (models.User, error) {
	query := `SELECT id, email, username, password_hash, created_at, last_login
		FROM users
		WHERE ` + column + ` = $1`

	var user models.User
	err := u.db.GetContext(ctx, &user, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("user %s: %w", value, common.ErrNotFound)
		}
		return models.User{}, fmt.Errorf("database error: %w", err)
	}

	return user, nil
}

func (u *UsersR) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE users SET last_login = $2 WHERE id = $1`

	res, err := u.db.ExecContext(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("user %s: %w", id, common.ErrNotFound)
	}

	return nil
}
