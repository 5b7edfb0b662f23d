package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/245124737105-sketch/PolyglotPal/internal/client"
	"github.com/245124737105-sketch/PolyglotPal/internal/common"
	"github.com/245124737105-sketch/PolyglotPal/internal/models"
	"go.uber.org/zap"
)

const (
	DefaultTranslateTarget = "en"
	PointsPerTranslation   = 10
)

type TranslateS struct {
	api   TranslatorI
	stats *StatsS
	log   *zap.Logger
}

func NewTranslateService(api TranslatorI, stats *StatsS, log *zap.Logger) *TranslateS {
	return &TranslateS{api: api, stats: stats, log: log}
}

// Translate translates req.Text. For a signed-in user the translation is also
// saved to history and rewarded; those writes never fail the request.
func (t *TranslateS) Translate(ctx context.Context, user *models.SessionUser, req models.TranslateRequest) (models.TranslateResult, error) {
	if strings.TrimSpace(req.Text) == "" {
		return models.TranslateResult{}, fmt.Errorf("no text provided: %w", common.ErrValidation)
	}

	source := req.Source
	if source == "" {
		source = client.AutoDetect
	}
	target := req.Target
	if target == "" {
		target = DefaultTranslateTarget
	}

	trans, err := t.api.Translate(ctx, req.Text, source, target)
	if err != nil {
		if !errors.Is(err, common.ErrUpstream) {
			err = fmt.Errorf("%w: %w", common.ErrUpstream, err)
		}
		return models.TranslateResult{}, fmt.Errorf("failed to translate: %w", err)
	}

	result := models.TranslateResult{
		Original:      req.Text,
		Translated:    trans.Text,
		Pronunciation: trans.Pronunciation,
		SrcLang:       trans.Source,
		DestLang:      target,
	}
	if result.SrcLang == "" {
		result.SrcLang = source
	}
	if result.Pronunciation == "" {
		result.Pronunciation = trans.Text
	}

	if user != nil {
		t.reward(ctx, user.ID, result)
	}

	return result, nil
}

func (t *TranslateS) reward(ctx context.Context, userID string, result models.TranslateResult) {
	err := t.stats.AddTranslation(ctx, models.TranslationRecord{
		UserID:         userID,
		SourceText:     result.Original,
		TranslatedText: result.Translated,
		SourceLang:     result.SrcLang,
		TargetLang:     result.DestLang,
	})
	if err != nil {
		t.log.Error("failed to save translation", zap.String("user_id", userID), zap.Error(err))
	}

	if err := t.stats.IncrementStat(ctx, userID, models.StatWordsLearned, 1); err != nil {
		t.log.Error("failed to count learned word", zap.String("user_id", userID), zap.Error(err))
	}

	if err := t.stats.IncrementStat(ctx, userID, models.StatTotalPoints, PointsPerTranslation); err != nil {
		t.log.Error("failed to award translation points", zap.String("user_id", userID), zap.Error(err))
	}
}
