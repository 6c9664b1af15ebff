package services

import (
	"math"
	"strings"
	"time"

	"backend/models"
)

// Pure aggregation over bounded record windows. Every function is total:
// empty input yields the zero-valued shape, malformed fields get defaults
// (0 duration, "neutral" mood, "unknown" type).

const (
	defaultMoodIntensity = 5
	neutralMood          = "neutral"
	unknownActivityType  = "unknown"
)

type SleepStats struct {
	TotalSessions   int     `json:"total_sessions"`
	TotalDuration   float64 `json:"total_duration"`
	AverageDuration float64 `json:"average_duration"`
	LongestSession  float64 `json:"longest_session"`
	ShortestSession float64 `json:"shortest_session"`
	Last7Days       int     `json:"last_7_days"`
	Last30Days      int     `json:"last_30_days"`
}

type JournalStats struct {
	TotalEntries     int     `json:"total_entries"`
	Last7Days        int     `json:"last_7_days"`
	Last30Days       int     `json:"last_30_days"`
	AverageWordCount float64 `json:"average_word_count"`
}

type MoodStats struct {
	TotalEntries     int     `json:"total_entries"`
	MostFrequentMood string  `json:"most_frequent_mood"`
	AverageIntensity float64 `json:"average_intensity"`
}

type ActivityTypeStats struct {
	Count           int     `json:"count"`
	AverageDuration float64 `json:"average_duration"`
}

type ActivityStats struct {
	TotalSessions int                          `json:"total_sessions"`
	Last7Days     int                          `json:"last_7_days"`
	PerType       map[string]ActivityTypeStats `json:"per_type"`
}

// CalculateSleepStats summarizes sleep sessions. Window boundaries are
// now minus 7/30 days, inclusive.
func CalculateSleepStats(sessions []models.SleepSession, now time.Time) SleepStats {
	out := SleepStats{}
	if len(sessions) == 0 {
		return out
	}

	cut7 := now.AddDate(0, 0, -7)
	cut30 := now.AddDate(0, 0, -30)

	out.TotalSessions = len(sessions)
	out.LongestSession = sessions[0].Duration
	out.ShortestSession = sessions[0].Duration
	for _, s := range sessions {
		d := s.Duration
		if d < 0 {
			d = 0
		}
		out.TotalDuration += d
		if d > out.LongestSession {
			out.LongestSession = d
		}
		if d < out.ShortestSession {
			out.ShortestSession = d
		}
		if !s.CreatedAt.Before(cut7) {
			out.Last7Days++
		}
		if !s.CreatedAt.Before(cut30) {
			out.Last30Days++
		}
	}
	out.TotalDuration = round2(out.TotalDuration)
	out.AverageDuration = round2(out.TotalDuration / float64(len(sessions)))
	return out
}

// CalculateJournalStats counts windowed entries and averages word counts.
// Word count splits on whitespace.
func CalculateJournalStats(entries []models.JournalEntry, now time.Time) JournalStats {
	out := JournalStats{}
	if len(entries) == 0 {
		return out
	}

	cut7 := now.AddDate(0, 0, -7)
	cut30 := now.AddDate(0, 0, -30)

	out.TotalEntries = len(entries)
	totalWords := 0
	for _, e := range entries {
		totalWords += len(strings.Fields(e.Content))
		if !e.CreatedAt.Before(cut7) {
			out.Last7Days++
		}
		if !e.CreatedAt.Before(cut30) {
			out.Last30Days++
		}
	}
	out.AverageWordCount = round2(float64(totalWords) / float64(len(entries)))
	return out
}

// CalculateMoodStats picks the most frequent label (ties broken by first
// encountered, scanning left to right) and averages intensity with a
// default of 5 for records carrying none.
func CalculateMoodStats(entries []models.MoodEntry) MoodStats {
	out := MoodStats{MostFrequentMood: neutralMood}
	if len(entries) == 0 {
		return out
	}

	counts := map[string]int{}
	order := []string{}
	totalIntensity := 0
	for _, e := range entries {
		mood := e.Mood
		if mood == "" {
			mood = neutralMood
		}
		if _, seen := counts[mood]; !seen {
			order = append(order, mood)
		}
		counts[mood]++

		intensity := e.Intensity
		if intensity <= 0 {
			intensity = defaultMoodIntensity
		}
		totalIntensity += intensity
	}

	best := order[0]
	for _, mood := range order {
		if counts[mood] > counts[best] {
			best = mood
		}
	}

	out.TotalEntries = len(entries)
	out.MostFrequentMood = best
	out.AverageIntensity = round2(float64(totalIntensity) / float64(len(entries)))
	return out
}

// CalculateActivityStats breaks sessions down per type and counts the
// last-7-day window across all types.
func CalculateActivityStats(sessions []models.ActivitySession, now time.Time) ActivityStats {
	out := ActivityStats{PerType: map[string]ActivityTypeStats{}}
	if len(sessions) == 0 {
		return out
	}

	cut7 := now.AddDate(0, 0, -7)

	type acc struct {
		count int
		total float64
	}
	perType := map[string]*acc{}
	for _, s := range sessions {
		typ := s.Type
		if typ == "" {
			typ = unknownActivityType
		}
		a := perType[typ]
		if a == nil {
			a = &acc{}
			perType[typ] = a
		}
		a.count++
		if s.Duration > 0 {
			a.total += s.Duration
		}
		if !s.CreatedAt.Before(cut7) {
			out.Last7Days++
		}
	}

	out.TotalSessions = len(sessions)
	for typ, a := range perType {
		out.PerType[typ] = ActivityTypeStats{
			Count:           a.count,
			AverageDuration: round2(a.total / float64(a.count)),
		}
	}
	return out
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
