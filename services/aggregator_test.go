package services

import (
	"math"
	"testing"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

func sleepAt(duration float64, createdAt time.Time) models.SleepSession {
	return models.SleepSession{
		Model:    gorm.Model{CreatedAt: createdAt},
		Duration: duration,
	}
}

func TestCalculateSleepStatsEmpty(t *testing.T) {
	got := CalculateSleepStats(nil, time.Now())
	want := SleepStats{}
	if got != want {
		t.Errorf("empty input: got %+v, want zero-valued shape", got)
	}
}

func TestCalculateSleepStatsSingleSession(t *testing.T) {
	now := time.Now()
	got := CalculateSleepStats([]models.SleepSession{sleepAt(8.5, now)}, now)

	if got.TotalSessions != 1 {
		t.Errorf("TotalSessions = %d, want 1", got.TotalSessions)
	}
	if got.AverageDuration != 8.5 {
		t.Errorf("AverageDuration = %v, want 8.5", got.AverageDuration)
	}
	if got.LongestSession != 8.5 || got.ShortestSession != 8.5 {
		t.Errorf("Longest/Shortest = %v/%v, want 8.5/8.5", got.LongestSession, got.ShortestSession)
	}
	if got.Last7Days != 1 || got.Last30Days != 1 {
		t.Errorf("window counts = %d/%d, want 1/1", got.Last7Days, got.Last30Days)
	}
}

func TestCalculateSleepStatsAverageTimesCountEqualsTotal(t *testing.T) {
	now := time.Now()
	sessions := []models.SleepSession{
		sleepAt(7.25, now),
		sleepAt(6.5, now),
		sleepAt(9.1, now),
		sleepAt(8.0, now),
	}

	got := CalculateSleepStats(sessions, now)
	product := got.AverageDuration * float64(got.TotalSessions)
	if math.Abs(product-got.TotalDuration) > 0.1 {
		t.Errorf("avg*count = %v, total = %v, difference exceeds one decimal place", product, got.TotalDuration)
	}
}

func TestCalculateSleepStatsWindows(t *testing.T) {
	now := time.Now()
	sessions := []models.SleepSession{
		sleepAt(8, now),                     // inside both windows
		sleepAt(7, now.AddDate(0, 0, -7)),   // on the 7-day boundary, inclusive
		sleepAt(6, now.AddDate(0, 0, -10)),  // only in the 30-day window
		sleepAt(5, now.AddDate(0, 0, -40)),  // outside both
	}

	got := CalculateSleepStats(sessions, now)
	if got.Last7Days != 2 {
		t.Errorf("Last7Days = %d, want 2 (boundary inclusive)", got.Last7Days)
	}
	if got.Last30Days != 3 {
		t.Errorf("Last30Days = %d, want 3", got.Last30Days)
	}
	if got.TotalSessions != 4 {
		t.Errorf("TotalSessions = %d, want 4", got.TotalSessions)
	}
}

func TestCalculateSleepStatsNegativeDurationTreatedAsZero(t *testing.T) {
	now := time.Now()
	got := CalculateSleepStats([]models.SleepSession{sleepAt(-3, now), sleepAt(8, now)}, now)
	if got.TotalDuration != 8 {
		t.Errorf("TotalDuration = %v, want 8 (corrupt duration defaults to 0)", got.TotalDuration)
	}
}

func TestCalculateJournalStatsEmpty(t *testing.T) {
	got := CalculateJournalStats(nil, time.Now())
	if got != (JournalStats{}) {
		t.Errorf("empty input: got %+v, want zero-valued shape", got)
	}
}

func TestCalculateJournalStatsWordCount(t *testing.T) {
	now := time.Now()
	entries := []models.JournalEntry{
		{Model: gorm.Model{CreatedAt: now}, Content: "slept well woke up rested"},     // 5 words
		{Model: gorm.Model{CreatedAt: now}, Content: "  tired\ttoday "},               // 2 words, odd whitespace
		{Model: gorm.Model{CreatedAt: now.AddDate(0, 0, -20)}, Content: ""},           // 0 words
	}

	got := CalculateJournalStats(entries, now)
	if got.TotalEntries != 3 {
		t.Errorf("TotalEntries = %d, want 3", got.TotalEntries)
	}
	if want := round2(7.0 / 3.0); got.AverageWordCount != want {
		t.Errorf("AverageWordCount = %v, want %v", got.AverageWordCount, want)
	}
	if got.Last7Days != 2 || got.Last30Days != 3 {
		t.Errorf("window counts = %d/%d, want 2/3", got.Last7Days, got.Last30Days)
	}
}

func TestCalculateMoodStatsEmpty(t *testing.T) {
	got := CalculateMoodStats(nil)
	if got.TotalEntries != 0 || got.AverageIntensity != 0 {
		t.Errorf("empty input: got %+v, want zero counts", got)
	}
	if got.MostFrequentMood != "neutral" {
		t.Errorf("MostFrequentMood = %q, want neutral default", got.MostFrequentMood)
	}
}

func TestCalculateMoodStatsMostFrequentTieBreak(t *testing.T) {
	// "calm" and "happy" both occur twice; "calm" was encountered first.
	entries := []models.MoodEntry{
		{Mood: "calm", Intensity: 4},
		{Mood: "happy", Intensity: 5},
		{Mood: "calm", Intensity: 3},
		{Mood: "happy", Intensity: 5},
		{Mood: "sad", Intensity: 2},
	}

	got := CalculateMoodStats(entries)
	if got.MostFrequentMood != "calm" {
		t.Errorf("MostFrequentMood = %q, want calm (first encountered wins ties)", got.MostFrequentMood)
	}
	if want := round2(19.0 / 5.0); got.AverageIntensity != want {
		t.Errorf("AverageIntensity = %v, want %v", got.AverageIntensity, want)
	}
}

func TestCalculateMoodStatsDefaults(t *testing.T) {
	// missing label and intensity get "neutral" and 5
	entries := []models.MoodEntry{
		{Mood: "", Intensity: 0},
		{Mood: "", Intensity: 0},
	}

	got := CalculateMoodStats(entries)
	if got.MostFrequentMood != "neutral" {
		t.Errorf("MostFrequentMood = %q, want neutral", got.MostFrequentMood)
	}
	if got.AverageIntensity != 5 {
		t.Errorf("AverageIntensity = %v, want 5", got.AverageIntensity)
	}
}

func TestCalculateActivityStatsEmpty(t *testing.T) {
	got := CalculateActivityStats(nil, time.Now())
	if got.TotalSessions != 0 || got.Last7Days != 0 {
		t.Errorf("empty input: got %+v, want zero counts", got)
	}
	if got.PerType == nil {
		t.Error("PerType map must be non-nil so callers never null-check")
	}
}

func TestCalculateActivityStatsPerType(t *testing.T) {
	now := time.Now()
	sessions := []models.ActivitySession{
		{Model: gorm.Model{CreatedAt: now}, Type: "walking", Duration: 30},
		{Model: gorm.Model{CreatedAt: now}, Type: "walking", Duration: 50},
		{Model: gorm.Model{CreatedAt: now.AddDate(0, 0, -10)}, Type: "yoga", Duration: 60},
		{Model: gorm.Model{CreatedAt: now}, Type: "", Duration: 20}, // unknown type
	}

	got := CalculateActivityStats(sessions, now)
	if got.TotalSessions != 4 {
		t.Errorf("TotalSessions = %d, want 4", got.TotalSessions)
	}
	if got.Last7Days != 3 {
		t.Errorf("Last7Days = %d, want 3", got.Last7Days)
	}
	walking := got.PerType["walking"]
	if walking.Count != 2 || walking.AverageDuration != 40 {
		t.Errorf("walking = %+v, want count 2 avg 40", walking)
	}
	if got.PerType["unknown"].Count != 1 {
		t.Errorf("missing type should be bucketed as unknown, got %+v", got.PerType)
	}
}
