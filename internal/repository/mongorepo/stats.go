package mongorepo

import (
	"context"
	"fmt"
	"time"

	"github.com/245124737105-sketch/PolyglotPal/internal/common"
	"github.com/245124737105-sketch/PolyglotPal/internal/models"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StatsR struct {
	coll *mongo.Collection
}

func NewStatsRepository(coll *mongo.Collection) *StatsR {
	return &StatsR{coll: coll}
}

func zeroStats(now time.Time) bson.M {
	return bson.M{
		models.StatStreakDays:   int64(0),
		models.StatTotalPoints:  int64(0),
		models.StatWordsLearned: int64(0),
		models.StatQuizzesTaken: int64(0),
		"last_updated":          now,
	}
}

// CreateStats inserts the zero record; an existing record is left untouched.
func (s *StatsR) CreateStats(ctx context.Context, userID string) error {
	update := bson.M{"$setOnInsert": zeroStats(time.Now())}

	_, err := s.coll.UpdateOne(ctx, bson.M{"_id": userID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to create stats for user %s: %w", userID, err)
	}

	return nil
}

func (s *StatsR) StatsOrCreate(ctx context.Context, userID string) (models.UserStats, error) {
	update := bson.M{"$setOnInsert": zeroStats(time.Now())}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stats models.UserStats
	if err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": userID}, update, opts).Decode(&stats); err != nil {
		return models.UserStats{}, fmt.Errorf("failed to get stats for user %s: %w", userID, err)
	}

	return stats, nil
}

// IncrementStat applies $inc on the server, so concurrent increments never
// lose updates. Counters absent from the document start at zero.
func (s *StatsR) IncrementStat(ctx context.Context, userID, name string, delta int64) error {
	if !lo.Contains(models.StatNames, name) {
		return fmt.Errorf("unknown stat %q: %w", name, common.ErrValidation)
	}

	update := bson.M{
		"$inc": bson.M{name: delta},
		"$set": bson.M{"last_updated": time.Now()},
	}

	if _, err := s.coll.UpdateOne(ctx, bson.M{"_id": userID}, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to increment %s for user %s: %w", name, userID, err)
	}

	return nil
}

// UpdateStats overwrites the given counters and keeps the others.
func (s *StatsR) UpdateStats(ctx context.Context, userID string, fields map[string]int64) error {
	if len(fields) == 0 {
		return nil
	}

	set := bson.M{"last_updated": time.Now()}
	for name, value := range fields {
		if !lo.Contains(models.StatNames, name) {
			return fmt.Errorf("unknown stat %q: %w", name, common.ErrValidation)
		}
		set[name] = value
	}

	if _, err := s.coll.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": set}, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to update stats for user %s: %w", userID, err)
	}

	return nil
}
