package service

import (
	"context"
	"fmt"
	"time"

	"github.com/245124737105-sketch/PolyglotPal/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 100
)

type statsRepo interface {
	StatsRI
	TranslationRI
	QuizRI
	ProgressRI
}

type StatsS struct {
	repo statsRepo
	log  *zap.Logger
}

func NewStatsService(repo statsRepo, log *zap.Logger) *StatsS {
	return &StatsS{repo: repo, log: log}
}

// ClampLimit keeps history page sizes within [1, MaxHistoryLimit].
func ClampLimit(limit int) int {
	switch {
	case limit < 1:
		return 1
	case limit > MaxHistoryLimit:
		return MaxHistoryLimit
	}
	return limit
}

// GetStats returns the user's counters, persisting the zero record first if
// the user has none.
func (s *StatsS) GetStats(ctx context.Context, userID string) (models.UserStats, error) {
	stats, err := s.repo.StatsOrCreate(ctx, userID)
	if err != nil {
		return models.UserStats{}, fmt.Errorf("failed to get stats: %w", err)
	}
	stats.UserID = userID

	return stats, nil
}

func (s *StatsS) IncrementStat(ctx context.Context, userID, name string, delta int64) error {
	return s.repo.IncrementStat(ctx, userID, name, delta)
}

func (s *StatsS) UpdateStats(ctx context.Context, userID string, patch models.StatsPatch) error {
	return s.repo.UpdateStats(ctx, userID, patch.Fields())
}

func (s *StatsS) AddTranslation(ctx context.Context, record models.TranslationRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}

	return s.repo.AddTranslation(ctx, record)
}

func (s *StatsS) UserTranslations(ctx context.Context, userID string, limit int) ([]models.TranslationRecord, error) {
	records, err := s.repo.UserTranslations(ctx, userID, ClampLimit(limit))
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.TranslationRecord{}
	}

	return records, nil
}

// AddResult stores the result and then counts the quiz. The two writes are
// not atomic: if the counter update fails the stored result is kept and the
// failure is only logged.
func (s *StatsS) AddResult(ctx context.Context, result models.QuizResult) error {
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	if result.Timestamp.IsZero() {
		result.Timestamp = time.Now().UTC()
	}

	if err := s.repo.AddQuizResult(ctx, result); err != nil {
		return err
	}

	if err := s.repo.IncrementStat(ctx, result.UserID, models.StatQuizzesTaken, 1); err != nil {
		s.log.Error("failed to count quiz", zap.String("user_id", result.UserID), zap.Error(err))
	}

	return nil
}

func (s *StatsS) UserResults(ctx context.Context, userID string, limit int) ([]models.QuizResult, error) {
	results, err := s.repo.UserResults(ctx, userID, ClampLimit(limit))
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []models.QuizResult{}
	}

	return results, nil
}

func (s *StatsS) UpdateProgress(ctx context.Context, userID, language string, percent, wordsLearned int) error {
	return s.repo.UpsertProgress(ctx, models.LanguageProgress{
		UserID:          userID,
		LanguageCode:    language,
		ProgressPercent: percent,
		WordsLearned:    wordsLearned,
		LastPracticed:   time.Now().UTC(),
	})
}

func (s *StatsS) RecordPractice(ctx context.Context, userID, language string, score, correct int) error {
	return s.repo.AddPractice(ctx, userID, language, score, correct, time.Now().UTC())
}

func (s *StatsS) AllProgress(ctx context.Context, userID string) (map[string]models.LanguageProgress, error) {
	progress, err := s.repo.AllProgress(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get language progress: %w", err)
	}

	return progress, nil
}
