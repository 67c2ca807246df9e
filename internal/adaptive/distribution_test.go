package adaptive

import (
	"testing"

	"github.com/Shreyas250406/StudySaathi/internal/models"
)

func TestPlanDistribution(t *testing.T) {
	tests := []struct {
		score              int
		easy, medium, hard int
	}{
		{100, 1, 1, 3},
		{90, 1, 1, 3},
		{89, 1, 2, 2},
		{70, 1, 2, 2},
		{69, 1, 3, 1},
		{64, 1, 3, 1},
		{50, 1, 3, 1},
		{49, 1, 2, 1},
		{33, 1, 2, 1},
		{30, 1, 2, 1},
		{29, 3, 1, 1},
		{0, 3, 1, 1},
	}

	for _, tt := range tests {
		mix := PlanDistribution(tt.score)
		if mix[models.DifficultyEasy] != tt.easy ||
			mix[models.DifficultyMedium] != tt.medium ||
			mix[models.DifficultyHard] != tt.hard {
			t.Errorf("PlanDistribution(%d) = easy:%d medium:%d hard:%d, want easy:%d medium:%d hard:%d",
				tt.score,
				mix[models.DifficultyEasy], mix[models.DifficultyMedium], mix[models.DifficultyHard],
				tt.easy, tt.medium, tt.hard)
		}
	}
}

func TestPlanDistributionTotalOverRange(t *testing.T) {
	for score := 0; score <= 100; score++ {
		mix := PlanDistribution(score)

		if len(mix) != 3 {
			t.Fatalf("PlanDistribution(%d) has %d keys, want 3", score, len(mix))
		}
		if mix.Total() != SetSize {
			t.Errorf("PlanDistribution(%d) totals %d, want %d", score, mix.Total(), SetSize)
		}
		for _, d := range models.AllDifficulties {
			if mix[d] < 1 {
				t.Errorf("PlanDistribution(%d)[%s] = %d, want >= 1", score, d, mix[d])
			}
		}
	}
}
