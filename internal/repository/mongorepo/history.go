package mongorepo

import (
	"context"
	"fmt"

	"github.com/245124737105-sketch/PolyglotPal/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// newestFirst sorts and limits on the server.
func newestFirst(limit int) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))
}

type TranslationsR struct {
	coll *mongo.Collection
}

func NewTranslationsRepository(coll *mongo.Collection) *TranslationsR {
	return &TranslationsR{coll: coll}
}

func (t *TranslationsR) AddTranslation(ctx context.Context, record models.TranslationRecord) error {
	if _, err := t.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to add translation: %w", err)
	}

	return nil
}

func (t *TranslationsR) UserTranslations(ctx context.Context, userID string, limit int) ([]models.TranslationRecord, error) {
	cur, err := t.coll.Find(ctx, bson.M{"user_id": userID}, newestFirst(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to get translations for user %s: %w", userID, err)
	}

	records := []models.TranslationRecord{}
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode translations: %w", err)
	}

	return records, nil
}

type QuizR struct {
	coll *mongo.Collection
}

func NewQuizRepository(coll *mongo.Collection) *QuizR {
	return &QuizR{coll: coll}
}

func (q *QuizR) AddQuizResult(ctx context.Context, result models.QuizResult) error {
	if _, err := q.coll.InsertOne(ctx, result); err != nil {
		return fmt.Errorf("failed to add quiz result: %w", err)
	}

	return nil
}

func (q *QuizR) UserResults(ctx context.Context, userID string, limit int) ([]models.QuizResult, error) {
	cur, err := q.coll.Find(ctx, bson.M{"user_id": userID}, newestFirst(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz results for user %s: %w", userID, err)
	}

	results := []models.QuizResult{}
	if err := cur.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode quiz results: %w", err)
	}

	return results, nil
}
