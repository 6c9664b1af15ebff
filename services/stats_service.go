package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// statsFetchLimit bounds how many records per category feed an aggregation.
const statsFetchLimit = 500

type StatsSummary struct {
	Sleep    SleepStats        `json:"sleep"`
	Journal  JournalStats      `json:"journal"`
	Mood     MoodStats         `json:"mood"`
	Activity ActivityStats     `json:"activity"`
	Wellness WellnessBreakdown `json:"wellness"`
	// LastCalculated is the compute time; a mirrored summary keeps the
	// timestamp of the computation it was mirrored from.
	LastCalculated time.Time `json:"last_calculated"`
}

type StatsService struct {
	db    *gorm.DB
	cache *LocalCache
}

func NewStatsService(db *gorm.DB, cache *LocalCache) *StatsService {
	return &StatsService{db: db, cache: cache}
}

// Summary recomputes every category aggregate plus the archival wellness
// score, persists the snapshot and mirrors it. When the database is
// unreachable the last mirrored summary is served instead.
func (s *StatsService) Summary(ctx context.Context, userID uint) (*StatsSummary, error) {
	now := time.Now()

	var (
		sleep      []models.SleepSession
		journal    []models.JournalEntry
		moods      []models.MoodEntry
		activities []models.ActivitySession
	)

	err := s.fetch(ctx, userID, &sleep)
	if err == nil {
		err = s.fetch(ctx, userID, &journal)
	}
	if err == nil {
		err = s.fetch(ctx, userID, &moods)
	}
	if err == nil {
		err = s.fetch(ctx, userID, &activities)
	}
	if err != nil {
		if cached := s.fromMirror(userID); cached != nil {
			return cached, nil
		}
		return nil, fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}

	summary := &StatsSummary{
		Sleep:          CalculateSleepStats(sleep, now),
		Journal:        CalculateJournalStats(journal, now),
		Mood:           CalculateMoodStats(moods),
		Activity:       CalculateActivityStats(activities, now),
		LastCalculated: now,
	}
	summary.Wellness = CalculateWellnessScore(summary.Sleep, summary.Journal, summary.Mood, summary.Activity)

	s.persistSnapshot(ctx, userID, summary, now)
	if s.cache != nil {
		if err := s.cache.Put(UserKey(userID, "statistics"), summary); err != nil {
			log.Printf("statistics cache mirror failed for user %d: %v", userID, err)
		}
	}
	return summary, nil
}

func (s *StatsService) fetch(ctx context.Context, userID uint, dest any) error {
	return s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(statsFetchLimit).
		Find(dest).Error
}

func (s *StatsService) fromMirror(userID uint) *StatsSummary {
	if s.cache == nil {
		return nil
	}
	var cached StatsSummary
	if err := s.cache.Get(UserKey(userID, "statistics"), &cached); err != nil {
		return nil
	}
	return &cached
}

func (s *StatsService) persistSnapshot(ctx context.Context, userID uint, summary *StatsSummary, now time.Time) {
	snap := models.StatisticsSnapshot{
		UserID:         userID,
		WellnessScore:  summary.Wellness.WellnessScore,
		SleepScore:     summary.Wellness.SleepScore,
		JournalScore:   summary.Wellness.JournalScore,
		MoodScore:      summary.Wellness.MoodScore,
		ActivityScore:  summary.Wellness.ActivityScore,
		LastCalculated: now,
	}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Assign(snap).
		FirstOrCreate(&snap).Error
	if err != nil {
		// the snapshot is a cache; a failed write never fails the read path
		log.Printf("statistics snapshot write failed for user %d: %v", userID, err)
	}
}
