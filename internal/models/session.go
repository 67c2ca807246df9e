package models

import "github.com/google/uuid"

const (
	MinGrade = 1
	MaxGrade = 12
)

// ── API Request/Response Types ────────────────────────────

type NextSetRequest struct {
	LearnerID uuid.UUID  `json:"learner_id"`
	TeacherID *uuid.UUID `json:"teacher_id,omitempty"`
	Answers   []Answer   `json:"answers"`
	Grade     int        `json:"grade"`
	Language  string     `json:"language"`
}

type NextSetResult struct {
	Score        int              `json:"score"`
	Distribution DifficultyMix    `json:"distribution"`
	Questions    []ServedQuestion `json:"questions"`
}

type LearnerScoreResponse struct {
	LearnerID uuid.UUID `json:"learner_id"`
	Score     int       `json:"score"`
}

type EscalationListResponse struct {
	Escalations []Escalation `json:"escalations"`
	Total       int          `json:"total"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
