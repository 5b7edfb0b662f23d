package models

import "time"

// QuizOption is one multiple-choice answer. When the translation of Original
// failed, Translated and Pronunciation fall back to Original.
type QuizOption struct {
	Original      string `json:"original"`
	Translated    string `json:"translated"`
	Pronunciation string `json:"pronunciation"`
}

type QuizQuestion struct {
	Question      string       `json:"question"`
	Options       []QuizOption `json:"options"`
	CorrectAnswer string       `json:"correct_answer"`
	CorrectWord   string       `json:"correct_word"`
}

type QuizRequest struct {
	Target string `json:"target"`
}

// MaxQuizQuestions caps one submission and must match the validate tags below.
const MaxQuizQuestions = 1000

// QuizSubmission is trusted as sent by the client within its bounds; points
// are derived from CorrectAnswers without re-checking the answers.
type QuizSubmission struct {
	Language       string `json:"language" validate:"required"`
	Score          int    `json:"score" validate:"min=0,max=100"`
	TotalQuestions int    `json:"total_questions" validate:"min=0,max=1000"`
	CorrectAnswers int    `json:"correct_answers" validate:"min=0,max=1000,ltefield=TotalQuestions"`
}

type QuizResult struct {
	ID             string    `json:"id" bson:"_id" db:"id"`
	UserID         string    `json:"user_id" bson:"user_id" db:"user_id"`
	Language       string    `json:"language" bson:"language" db:"language"`
	Score          int       `json:"score" bson:"score" db:"score"`
	TotalQuestions int       `json:"total_questions" bson:"total_questions" db:"total_questions"`
	CorrectAnswers int       `json:"correct_answers" bson:"correct_answers" db:"correct_answers"`
	Timestamp      time.Time `json:"timestamp" bson:"timestamp" db:"created_at"`
}

type SubmitResponse struct {
	Success      bool `json:"success"`
	PointsEarned int  `json:"points_earned"`
}
