// Package mongorepo stores PolyglotPal documents in MongoDB. Its repositories
// expose the same method sets as the SQL repositories, so services accept
// either backend.
package mongorepo

import (
	"github.com/245124737105-sketch/PolyglotPal/internal/storage/db"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repository struct {
	*UsersR
	*StatsR
	*TranslationsR
	*QuizR
	*ProgressR
}

func NewRepository(database *mongo.Database) Repository {
	return Repository{
		UsersR:        NewUsersRepository(database.Collection(db.UsersCollection)),
		StatsR:        NewStatsRepository(database.Collection(db.StatsCollection)),
		TranslationsR: NewTranslationsRepository(database.Collection(db.TranslationCollection)),
		QuizR:         NewQuizRepository(database.Collection(db.QuizResultCollection)),
		ProgressR:     NewProgressRepository(database.Collection(db.ProgressCollection)),
	}
}
