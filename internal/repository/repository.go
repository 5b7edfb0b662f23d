package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/245124737105-sketch/PolyglotPal/internal/models"
	"github.com/lib/pq"
	"github.com/samber/lo"
)

//go:generate mockgen -source=repository.go -destination=mock/mock.go

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	*UsersR
	*StatsR
	*TranslationsR
	*QuizR
	*ProgressR
}

func NewRepository(db QueryI) Repository {
	return Repository{
		UsersR:        NewUsersRepository(db),
		StatsR:        NewStatsRepository(db),
		TranslationsR: NewTranslationsRepository(db),
		QuizR:         NewQuizRepository(db),
		ProgressR:     NewProgressRepository(db),
	}
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func isStatName(name string) bool {
	return lo.Contains(models.StatNames, name)
}
