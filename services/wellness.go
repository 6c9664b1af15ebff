package services

import "math"

// Two wellness metrics coexist and are never interchangeable:
//
//   - the archival score, computed from the record store aggregates and
//     persisted to the statistics snapshot;
//   - the session score, computed from in-session state (activity totals,
//     streak days, goal achievement).
//
// The archival mood sub-score is intentionally left unclamped; the session
// score clamps every sub-component.

type WellnessBreakdown struct {
	SleepScore    float64 `json:"sleep_score"`
	JournalScore  float64 `json:"journal_score"`
	MoodScore     float64 `json:"mood_score"`
	ActivityScore float64 `json:"activity_score"`
	WellnessScore float64 `json:"wellness_score"`
}

// CalculateWellnessScore is the archival formula:
//
//	sleep    = min(100, 100 * avgSleepDuration / 8)
//	journal  = min(100, 100 * journalLast7 / 7)
//	mood     = 100 * avgMoodIntensity / 5        (not clamped)
//	activity = min(100, 100 * activityLast7 / 14)
//	wellness = round(0.3*sleep + 0.2*journal + 0.3*mood + 0.2*activity)
func CalculateWellnessScore(sleep SleepStats, journal JournalStats, mood MoodStats, activity ActivityStats) WellnessBreakdown {
	b := WellnessBreakdown{
		SleepScore:    clamp100(100 * sleep.AverageDuration / 8),
		JournalScore:  clamp100(100 * float64(journal.Last7Days) / 7),
		MoodScore:     100 * mood.AverageIntensity / 5,
		ActivityScore: clamp100(100 * float64(activity.Last7Days) / 14),
	}
	b.WellnessScore = math.Round(
		0.3*b.SleepScore + 0.2*b.JournalScore + 0.3*b.MoodScore + 0.2*b.ActivityScore)
	return b
}

// CalculateSessionScore is the in-session formula, weighted 0.3/0.4/0.3 over
// total activities, total streak days and goal achievement percentage. Each
// sub-component saturates at 100.
func CalculateSessionScore(totalActivities, totalStreakDays int, goalAchievementPct float64) float64 {
	activityPart := clamp100(float64(totalActivities))
	streakPart := clamp100(float64(totalStreakDays))
	goalPart := clamp100(goalAchievementPct)
	return math.Round(0.3*activityPart + 0.4*streakPart + 0.3*goalPart)
}

func clamp100(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}
