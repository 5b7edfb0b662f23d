package models

import "time"

const (
	StatStreakDays   = "streak_days"
	StatTotalPoints  = "total_points"
	StatWordsLearned = "words_learned"
	StatQuizzesTaken = "quizzes_taken"
)

// StatNames is the whitelist of counters that may be incremented.
var StatNames = []string{StatStreakDays, StatTotalPoints, StatWordsLearned, StatQuizzesTaken}

type UserStats struct {
	UserID       string    `json:"-" bson:"_id" db:"user_id"`
	StreakDays   int64     `json:"streak_days" bson:"streak_days" db:"streak_days"`
	TotalPoints  int64     `json:"total_points" bson:"total_points" db:"total_points"`
	WordsLearned int64     `json:"words_learned" bson:"words_learned" db:"words_learned"`
	QuizzesTaken int64     `json:"quizzes_taken" bson:"quizzes_taken" db:"quizzes_taken"`
	LastUpdated  time.Time `json:"last_updated" bson:"last_updated" db:"last_updated"`
}

// StatsPatch is a partial update; nil fields are left untouched.
type StatsPatch struct {
	StreakDays   *int64
	TotalPoints  *int64
	WordsLearned *int64
	QuizzesTaken *int64
}

// Fields returns the non-nil fields keyed by stat name.
func (p StatsPatch) Fields() map[string]int64 {
	fields := make(map[string]int64, 4)
	if p.StreakDays != nil {
		fields[StatStreakDays] = *p.StreakDays
	}
	if p.TotalPoints != nil {
		fields[StatTotalPoints] = *p.TotalPoints
	}
	if p.WordsLearned != nil {
		fields[StatWordsLearned] = *p.WordsLearned
	}
	if p.QuizzesTaken != nil {
		fields[StatQuizzesTaken] = *p.QuizzesTaken
	}
	return fields
}

type LanguageProgress struct {
	UserID          string    `json:"-" bson:"-" db:"user_id"`
	LanguageCode    string    `json:"language_code" bson:"-" db:"language_code"`
	ProgressPercent int       `json:"progress_percent" bson:"progress_percent" db:"progress_percent"`
	WordsLearned    int       `json:"words_learned" bson:"words_learned" db:"words_learned"`
	LastPracticed   time.Time `json:"last_practiced" bson:"last_practiced" db:"last_practiced"`
}
