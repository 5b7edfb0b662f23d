package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/245124737105-sketch/PolyglotPal/internal/common"
	"github.com/245124737105-sketch/PolyglotPal/internal/models"
	"github.com/245124737105-sketch/PolyglotPal/pkg/validator"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthS struct {
	users UserRI
	stats StatsRI
	cost  int
	log   *zap.Logger
}

func NewAuthService(users UserRI, stats StatsRI, log *zap.Logger) *AuthS {
	return &AuthS{
		users: users,
		stats: stats,
		cost:  bcrypt.DefaultCost,
		log:   log,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *AuthS) SignUp(ctx context.Context, form models.SignUpForm) (models.User, error) {
	form.Email = normalizeEmail(form.Email)
	form.Username = strings.TrimSpace(form.Username)

	if err := validator.ValidateStruct(form); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", common.ErrValidation, err)
	}

	_, err := a.users.UserByEmail(ctx, form.Email)
	switch {
	case err == nil:
		return models.User{}, fmt.Errorf("email %s: %w", form.Email, common.ErrAlreadyExists)
	case !errors.Is(err, common.ErrNotFound):
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), a.cost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:           uuid.NewString(),
		Email:        form.Email,
		Username:     form.Username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		LastLogin:    now,
	}

	if err := a.users.CreateUser(ctx, user); err != nil {
		return models.User{}, err
	}

	if err := a.stats.CreateStats(ctx, user.ID); err != nil {
		a.log.Error("failed to create default stats", zap.String("user_id", user.ID), zap.Error(err))
	}

	return user, nil
}

// Login checks the credentials. An unknown email and a wrong password are
// indistinguishable to the caller.
func (a *AuthS) Login(ctx context.Context, form models.LoginForm) (models.User, error) {
	form.Email = normalizeEmail(form.Email)

	if err := validator.ValidateStruct(form); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", common.ErrUnauthorized, err)
	}

	user, err := a.users.UserByEmail(ctx, form.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.User{}, fmt.Errorf("unknown email: %w", common.ErrUnauthorized)
		}
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		return models.User{}, fmt.Errorf("wrong password: %w", common.ErrUnauthorized)
	}

	user.LastLogin = time.Now().UTC()
	if err := a.users.TouchLastLogin(ctx, user.ID, user.LastLogin); err != nil {
		a.log.Warn("failed to update last login", zap.String("user_id", user.ID), zap.Error(err))
	}

	return user, nil
}

func (a *AuthS) UserByID(ctx context.Context, id string) (models.User, error) {
	return a.users.UserByID(ctx, id)
}
