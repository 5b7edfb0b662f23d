package mongorepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/245124737105-sketch/PolyglotPal/internal/common"
	"github.com/245124737105-sketch/PolyglotPal/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProgressR keeps one document per user with a sub-document per language:
//
//	{_id: userID, languages: {es: {progress_percent, words_learned, last_practiced}}}
type ProgressR struct {
	coll *mongo.Collection
}

type progressDoc struct {
	UserID    string                             `bson:"_id"`
	Languages map[string]models.LanguageProgress `bson:"languages"`
}

func NewProgressRepository(coll *mongo.Collection) *ProgressR {
	return &ProgressR{coll: coll}
}

// languageKey returns the dotted path of a language entry. Codes containing
// path operators are rejected.
func languageKey(code string) (string, error) {
	if code == "" || strings.ContainsAny(code, ".$") {
		return "", fmt.Errorf("invalid language code %q: %w", code, common.ErrValidation)
	}
	return "languages." + code, nil
}

func (p *ProgressR) UpsertProgress(ctx context.Context, progress models.LanguageProgress) error {
	key, err := languageKey(progress.LanguageCode)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{key: progress}}
	if _, err := p.coll.UpdateOne(ctx, bson.M{"_id": progress.UserID}, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to update %s progress: %w", progress.LanguageCode, err)
	}

	return nil
}

// AddPractice sets the latest score and adds words to the running total.
func (p *ProgressR) AddPractice(ctx context.Context, userID, language string, percent, words int, at time.Time) error {
	key, err := languageKey(language)
	if err != nil {
		return err
	}

	update := bson.M{
		"$set": bson.M{
			key + ".progress_percent": percent,
			key + ".last_practiced":   at,
		},
		"$inc": bson.M{key + ".words_learned": words},
	}

	if _, err := p.coll.UpdateOne(ctx, bson.M{"_id": userID}, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to record %s practice: %w", language, err)
	}

	return nil
}

func (p *ProgressR) AllProgress(ctx context.Context, userID string) (map[string]models.LanguageProgress, error) {
	var doc progressDoc
	err := p.coll.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return map[string]models.LanguageProgress{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress for user %s: %w", userID, err)
	}

	progress := make(map[string]models.LanguageProgress, len(doc.Languages))
	for code, lp := range doc.Languages {
		lp.UserID = userID
		lp.LanguageCode = code
		progress[code] = lp
	}

	return progress, nil
}
