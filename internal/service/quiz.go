package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/245124737105-sketch/PolyglotPal/internal/client"
	"github.com/245124737105-sketch/PolyglotPal/internal/common"
	"github.com/245124737105-sketch/PolyglotPal/internal/config"
	"github.com/245124737105-sketch/PolyglotPal/internal/models"
	"github.com/245124737105-sketch/PolyglotPal/internal/vocab"
	"github.com/245124737105-sketch/PolyglotPal/pkg/validator"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	QuizOptions            = 4
	DefaultQuizTarget      = "es"
	PointsPerCorrectAnswer = 20
)

type QuizS struct {
	api   TranslatorI
	stats *StatsS
	cfg   config.QuizConfig
	log   *zap.Logger
}

func NewQuizService(cfg config.QuizConfig, api TranslatorI, stats *StatsS, log *zap.Logger) *QuizS {
	return &QuizS{
		api:   api,
		stats: stats,
		cfg:   cfg,
		log:   log,
	}
}

// Generate builds one multiple-choice question: four distinct words from the
// vocabulary, each translated into target. A word whose translation fails is
// shown untranslated; only when every translation fails is the question
// abandoned with common.ErrGeneration.
func (q *QuizS) Generate(ctx context.Context, target string) (models.QuizQuestion, error) {
	if target == "" {
		target = DefaultQuizTarget
	}

	ctx, cancel := context.WithTimeout(ctx, q.cfg.Timeout)
	defer cancel()

	words := lo.Samples(vocab.Words(), QuizOptions)
	options := make([]models.QuizOption, len(words))

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		failed int
	)

	for i, word := range words {
		wg.Add(1)
		go func(i int, word string) {
			defer wg.Done()

			option, err := q.option(ctx, word, target)
			if err != nil {
				q.log.Warn("quiz word left untranslated", zap.String("word", word), zap.String("language", target), zap.Error(err))
				mu.Lock()
				failed++
				mu.Unlock()
			}
			options[i] = option
		}(i, word)
	}
	wg.Wait()

	if failed == len(words) {
		return models.QuizQuestion{}, fmt.Errorf("no word translated into %s: %w", target, common.ErrGeneration)
	}

	// the first sampled word is the answer
	answer := options[0]
	options = lo.Shuffle(options)

	return models.QuizQuestion{
		Question:      fmt.Sprintf("What is '%s' in %s?", answer.Original, vocab.LanguageName(target)),
		Options:       options,
		CorrectAnswer: answer.Translated,
		CorrectWord:   answer.Original,
	}, nil
}

// option always returns a usable option; on error it is the untranslated word.
func (q *QuizS) option(ctx context.Context, word, target string) (models.QuizOption, error) {
	fallback := models.QuizOption{Original: word, Translated: word, Pronunciation: word}

	ctx, cancel := context.WithTimeout(ctx, q.cfg.TranslateTimeout)
	defer cancel()

	trans, err := q.api.Translate(ctx, word, client.AutoDetect, target)
	if err != nil {
		return fallback, err
	}
	if trans.Text == "" {
		return fallback, fmt.Errorf("empty translation: %w", common.ErrUpstream)
	}

	pronunciation := trans.Pronunciation
	if pronunciation == "" {
		pronunciation = trans.Text
	}

	return models.QuizOption{Original: word, Translated: trans.Text, Pronunciation: pronunciation}, nil
}

// Submit stores a finished quiz and awards PointsPerCorrectAnswer per correct
// answer. Only a failure to store the result is returned; points and
// per-language progress are best effort.
func (q *QuizS) Submit(ctx context.Context, userID string, sub models.QuizSubmission) (int, error) {
	if err := validator.ValidateStruct(sub); err != nil {
		return 0, fmt.Errorf("%w: %w", common.ErrValidation, err)
	}

	err := q.stats.AddResult(ctx, models.QuizResult{
		UserID:         userID,
		Language:       sub.Language,
		Score:          sub.Score,
		TotalQuestions: sub.TotalQuestions,
		CorrectAnswers: sub.CorrectAnswers,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to save quiz result: %w", err)
	}

	points := sub.CorrectAnswers * PointsPerCorrectAnswer

	if err := q.stats.IncrementStat(ctx, userID, models.StatTotalPoints, int64(points)); err != nil {
		q.log.Error("failed to award quiz points", zap.String("user_id", userID), zap.Int("points", points), zap.Error(err))
	}

	if err := q.stats.RecordPractice(ctx, userID, sub.Language, sub.Score, sub.CorrectAnswers); err != nil {
		q.log.Error("failed to record practice", zap.String("user_id", userID), zap.String("language", sub.Language), zap.Error(err))
	}

	return points, nil
}
