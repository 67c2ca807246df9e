package adaptive

import "github.com/Shreyas250406/StudySaathi/internal/models"

// SetSize is the number of questions every planned mix requests.
const SetSize = 5

// distributionTable maps score thresholds to the target difficulty mix,
// checked top-down, first match wins. Every mix requests at least one
// question per difficulty and totals SetSize.
var distributionTable = []struct {
	minScore           int
	easy, medium, hard int
}{
	{90, 1, 1, 3},
	{70, 1, 2, 2},
	{50, 1, 3, 1},
	{30, 1, 2, 1},
	{0, 3, 1, 1},
}

// PlanDistribution maps a proficiency score to the difficulty mix for
// the next question set. Pure and total over [0, 100]; the single place
// difficulty policy lives.
func PlanDistribution(score int) models.DifficultyMix {
	for _, row := range distributionTable {
		if score >= row.minScore {
			return models.DifficultyMix{
				models.DifficultyEasy:   row.easy,
				models.DifficultyMedium: row.medium,
				models.DifficultyHard:   row.hard,
			}
		}
	}
	// score below 0 cannot happen for a clamped score; fall back to the
	// lowest band regardless.
	return models.DifficultyMix{
		models.DifficultyEasy:   3,
		models.DifficultyMedium: 1,
		models.DifficultyHard:   1,
	}
}
