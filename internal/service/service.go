package service

import (
	"context"
	"time"

	"github.com/245124737105-sketch/PolyglotPal/internal/config"
	"github.com/245124737105-sketch/PolyglotPal/internal/models"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mock/mock.go

type TranslatorI interface {
	Translate(ctx context.Context, text, source, target string) (models.Translation, error)
}

type UserRI interface {
	CreateUser(ctx context.Context, user models.User) error
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UserByID(ctx context.Context, id string) (models.User, error)
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}

type StatsRI interface {
	CreateStats(ctx context.Context, userID string) error
	StatsOrCreate(ctx context.Context, userID string) (models.UserStats, error)
	IncrementStat(ctx context.Context, userID, name string, delta int64) error
	UpdateStats(ctx context.Context, userID string, fields map[string]int64) error
}

type TranslationRI interface {
	AddTranslation(ctx context.Context, record models.TranslationRecord) error
	UserTranslations(ctx context.Context, userID string, limit int) ([]models.TranslationRecord, error)
}

type QuizRI interface {
	AddQuizResult(ctx context.Context, result models.QuizResult) error
	UserResults(ctx context.Context, userID string, limit int) ([]models.QuizResult, error)
}

type ProgressRI interface {
	UpsertProgress(ctx context.Context, progress models.LanguageProgress) error
	AddPractice(ctx context.Context, userID, language string, percent, words int, at time.Time) error
	AllProgress(ctx context.Context, userID string) (map[string]models.LanguageProgress, error)
}

type RepositoryI interface {
	UserRI
	StatsRI
	TranslationRI
	QuizRI
	ProgressRI
}

type Service struct {
	*AuthS
	*StatsS
	*QuizS
	*TranslateS
}

func InitServices(cfg config.QuizConfig, api TranslatorI, repo RepositoryI, log *zap.Logger) *Service {
	stats := NewStatsService(repo, log)

	return &Service{
		AuthS:      NewAuthService(repo, repo, log),
		StatsS:     stats,
		QuizS:      NewQuizService(cfg, api, stats, log),
		TranslateS: NewTranslateService(api, stats, log),
	}
}
