package repository

import (
	"context"
	"fmt"

	"github.com/245124737105-sketch/PolyglotPal/internal/models"
)

type TranslationsR struct {
	db QueryI
}

func NewTranslationsRepository(db QueryI) *TranslationsR {
	return &TranslationsR{db: db}
}

func (t *TranslationsR) AddTranslation(ctx context.Context, rec models.TranslationRecord) error {
	query := `INSERT INTO translations (id, user_id, source_text, translated_text, source_lang, target_lang, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := t.db.ExecContext(ctx, query, rec.ID, rec.UserID, rec.SourceText, rec.TranslatedText, rec.SourceLang, rec.TargetLang, rec.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to add translation: %w", err)
	}

	return nil
}

func (t *TranslationsR) UserTranslations(ctx context.Context, userID string, limit int) ([]models.TranslationRecord, error) {
	query := `SELECT id, user_id, source_text, translated_text, source_lang, target_lang, created_at
		FROM translations
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	records := make([]models.TranslationRecord, 0, limit)
	if err := t.db.SelectContext(ctx, &records, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to get translations for user %s: %w", userID, err)
	}

	return records, nil
}
