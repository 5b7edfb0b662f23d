package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/245124737105-sketch/PolyglotPal/internal/models"
)

type ProgressR struct {
	db QueryI
}

func NewProgressRepository(db QueryI) *ProgressR {
	return &ProgressR{db: db}
}

func (p *ProgressR) UpsertProgress(ctx context.Context, progress models.LanguageProgress) error {
	query := `INSERT INTO language_progress (user_id, language_code, progress_percent, words_learned, last_practiced)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, language_code) DO UPDATE SET
			progress_percent = EXCLUDED.progress_percent,
			words_learned = EXCLUDED.words_learned,
			last_practiced = EXCLUDED.last_practiced`

	_, err := p.db.ExecContext(ctx, query, progress.UserID, progress.LanguageCode, progress.ProgressPercent, progress.WordsLearned, progress.LastPracticed)
	if err != nil {
		return fmt.Errorf("failed to update %s progress: %w", progress.LanguageCode, err)
	}

	return nil
}

// AddPractice sets the latest score and adds words to the running total.
func (p *ProgressR) AddPractice(ctx context.Context, userID, language string, percent, words int, at time.Time) error {
	query := `INSERT INTO language_progress (user_id, language_code, progress_percent, words_learned, last_practiced)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, language_code) DO UPDATE SET
			progress_percent = EXCLUDED.progress_percent,
			words_learned = language_progress.words_learned + EXCLUDED.words_learned,
			last_practiced = EXCLUDED.last_practiced`

	if _, err := p.db.ExecContext(ctx, query, userID, language, percent, words, at); err != nil {
		return fmt.Errorf("failed to record %s practice: %w", language, err)
	}

	return nil
}

func (p *ProgressR) AllProgress(ctx context.Context, userID string) (map[string]models.LanguageProgress, error) {
	query := `SELECT user_id, language_code, progress_percent, words_learned, last_practiced
		FROM language_progress
		WHERE user_id = $1`

	var rows []models.LanguageProgress
	if err := p.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get progress for user %s: %w", userID, err)
	}

	progress := make(map[string]models.LanguageProgress, len(rows))
	for _, row := range rows {
		progress[row.LanguageCode] = row
	}

	return progress, nil
}
