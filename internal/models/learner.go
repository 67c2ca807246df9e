package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinScore = 0
	MaxScore = 100
)

type Learner struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Answer is one graded response from the learner's latest batch. It is
// supplied per request and never persisted by the engine.
type Answer struct {
	QuestionID uuid.UUID  `json:"question_id"`
	Difficulty Difficulty `json:"difficulty"`
	Correct    bool       `json:"correct"`
}
