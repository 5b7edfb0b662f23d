package repository

import (
	"context"
	"fmt"

	"github.com/245124737105-sketch/PolyglotPal/internal/models"
)

type QuizR struct {
	db QueryI
}

func NewQuizRepository(db QueryI) *QuizR {
	return &QuizR{
		db: db,
	}
}

func (q *QuizR) AddQuizResult(ctx context.Context, result models.QuizResult) error {
	query := `
        INSERT INTO quiz_results (id, user_id, language, score, total_questions, correct_answers, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `

	_, err := q.db.ExecContext(ctx, query, result.ID, result.UserID, result.Language, result.Score, result.TotalQuestions, result.CorrectAnswers, result.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to add quiz result: %w", err)
	}

	return nil
}

func (q *QuizR) UserResults(ctx context.Context, userID string, limit int) ([]models.QuizResult, error) {
	query := `SELECT id, user_id, language, score, total_questions, correct_answers, created_at
		FROM quiz_results
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	results := make([]models.QuizResult, 0, limit)
	if err := q.db.SelectContext(ctx, &results, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to get quiz results for user %s: %w", userID, err)
	}

	return results, nil
}
