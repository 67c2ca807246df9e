package adaptive

import (
	"fmt"

	"github.com/Shreyas250406/StudySaathi/internal/models"
)

// Score weights per difficulty. Answering hard questions correctly moves
// proficiency up faster than easy ones; missing an easy question is a
// stronger negative signal than missing a hard one.
var scoreWeights = map[models.Difficulty]struct{ reward, penalty int }{
	models.DifficultyEasy:   {reward: 1, penalty: 5},
	models.DifficultyMedium: {reward: 3, penalty: 3},
	models.DifficultyHard:   {reward: 5, penalty: 1},
}

// UpdateScore applies a batch of graded answers to the current score and
// clamps the result to [0, 100]. Clamping happens once after the whole
// batch, so intermediate values may leave the range. An unrecognized
// difficulty label fails the batch with ErrInvalidDifficulty.
func UpdateScore(current int, answers []models.Answer) (int, error) {
	score := current

	for _, a := range answers {
		w, ok := scoreWeights[a.Difficulty]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, a.Difficulty)
		}
		if a.Correct {
			score += w.reward
		} else {
			score -= w.penalty
		}
	}

	return clampScore(score), nil
}

func clampScore(score int) int {
	if score < models.MinScore {
		return models.MinScore
	}
	if score > models.MaxScore {
		return models.MaxScore
	}
	return score
}
