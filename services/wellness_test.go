package services

import "testing"

func TestCalculateWellnessScoreAllComponentsAtTarget(t *testing.T) {
	// 8h average sleep, 7 journal entries, intensity 5, 14 activities:
	// every component sits exactly at 100.
	b := CalculateWellnessScore(
		SleepStats{AverageDuration: 8},
		JournalStats{Last7Days: 7},
		MoodStats{AverageIntensity: 5},
		ActivityStats{Last7Days: 14},
	)

	for name, score := range map[string]float64{
		"sleep":    b.SleepScore,
		"journal":  b.JournalScore,
		"mood":     b.MoodScore,
		"activity": b.ActivityScore,
	} {
		if score != 100 {
			t.Errorf("%s score = %v, want 100", name, score)
		}
	}
	if b.WellnessScore != 100 {
		t.Errorf("WellnessScore = %v, want 100", b.WellnessScore)
	}
}

func TestCalculateWellnessScoreClampedComponents(t *testing.T) {
	// Oversleeping, over-journaling and over-exercising saturate at 100.
	b := CalculateWellnessScore(
		SleepStats{AverageDuration: 12},
		JournalStats{Last7Days: 20},
		MoodStats{AverageIntensity: 5},
		ActivityStats{Last7Days: 50},
	)

	if b.SleepScore != 100 || b.JournalScore != 100 || b.ActivityScore != 100 {
		t.Errorf("clamped components = %v/%v/%v, want 100/100/100",
			b.SleepScore, b.JournalScore, b.ActivityScore)
	}
}

func TestCalculateWellnessScoreMoodUnclamped(t *testing.T) {
	// Intensity above 5 pushes the mood component past 100; the archival
	// formula leaves it that way.
	b := CalculateWellnessScore(
		SleepStats{},
		JournalStats{},
		MoodStats{AverageIntensity: 8},
		ActivityStats{},
	)

	if b.MoodScore != 160 {
		t.Errorf("MoodScore = %v, want 160 (unclamped)", b.MoodScore)
	}
	if b.WellnessScore != 48 { // round(0.3 * 160)
		t.Errorf("WellnessScore = %v, want 48", b.WellnessScore)
	}
}

func TestCalculateWellnessScoreWeights(t *testing.T) {
	// 4h sleep → 50, 7 entries → 100, intensity 2.5 → 50, 7 activities → 50.
	b := CalculateWellnessScore(
		SleepStats{AverageDuration: 4},
		JournalStats{Last7Days: 7},
		MoodStats{AverageIntensity: 2.5},
		ActivityStats{Last7Days: 7},
	)

	// 0.3*50 + 0.2*100 + 0.3*50 + 0.2*50 = 60
	if b.WellnessScore != 60 {
		t.Errorf("WellnessScore = %v, want 60", b.WellnessScore)
	}
}

func TestCalculateSessionScore(t *testing.T) {
	tests := []struct {
		name            string
		activities      int
		streakDays      int
		goalPct         float64
		want            float64
	}{
		{"zero state", 0, 0, 0, 0},
		{"everything saturated", 500, 400, 250, 100},
		{"mixed", 50, 20, 80, 47}, // 0.3*50 + 0.4*20 + 0.3*80
		{"goal pct clamped", 0, 0, 300, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateSessionScore(tt.activities, tt.streakDays, tt.goalPct)
			if got != tt.want {
				t.Errorf("CalculateSessionScore(%d, %d, %v) = %v, want %v",
					tt.activities, tt.streakDays, tt.goalPct, got, tt.want)
			}
		})
	}
}
