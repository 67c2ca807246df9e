package adaptive

import "errors"

var (
	// ErrLearnerNotFound means the learner id has no score record.
	ErrLearnerNotFound = errors.New("learner not found")

	// ErrInvalidDifficulty means an answer carried a difficulty label
	// outside easy/medium/hard. Reported rather than treated as a
	// zero-weight answer so client bugs are not masked.
	ErrInvalidDifficulty = errors.New("invalid difficulty")

	// ErrInvalidGrade means the requested grade is outside 1-12.
	ErrInvalidGrade = errors.New("invalid grade")

	// ErrNoQuestionsAvailable means selection came back empty across
	// all difficulties even after every fallback tier.
	ErrNoQuestionsAvailable = errors.New("no questions available")
)
