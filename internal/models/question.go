package models

import (
	"time"

	"github.com/google/uuid"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var ValidDifficulties = map[Difficulty]bool{
	DifficultyEasy:   true,
	DifficultyMedium: true,
	DifficultyHard:   true,
}

// AllDifficulties lists the difficulty labels in ascending order. A
// DifficultyMix carries exactly these three keys.
var AllDifficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// DifficultyMix maps each difficulty label to the number of questions
// requested at that level for the next set.
type DifficultyMix map[Difficulty]int

// Total returns the number of questions the mix asks for.
func (m DifficultyMix) Total() int {
	n := 0
	for _, c := range m {
		n += c
	}
	return n
}

type Question struct {
	ID          uuid.UUID  `json:"id"`
	Difficulty  Difficulty `json:"difficulty"`
	Grade       int        `json:"grade"`
	Language    string     `json:"language"`
	Prompt      string     `json:"prompt"`
	Options     []string   `json:"options"`
	Answer      string     `json:"answer"`
	TimesServed int        `json:"times_served"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ServedQuestion is the learner-facing view of a question: everything
// except the answer key.
type ServedQuestion struct {
	ID         uuid.UUID  `json:"id"`
	Difficulty Difficulty `json:"difficulty"`
	Grade      int        `json:"grade"`
	Language   string     `json:"language"`
	Prompt     string     `json:"prompt"`
	Options    []string   `json:"options"`
}

func (q Question) ToServed() ServedQuestion {
	return ServedQuestion{
		ID:         q.ID,
		Difficulty: q.Difficulty,
		Grade:      q.Grade,
		Language:   q.Language,
		Prompt:     q.Prompt,
		Options:    q.Options,
	}
}
