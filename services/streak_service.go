package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// Streak milestones that emit an alert.
var streakMilestones = []int{7, 30, 100}

type StreakService struct {
	db     *gorm.DB
	cache  *LocalCache
	alerts *AlertBus
}

func NewStreakService(db *gorm.DB, cache *LocalCache, alerts *AlertBus) *StreakService {
	return &StreakService{db: db, cache: cache, alerts: alerts}
}

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// Touch advances the streak for a category after a record dated now.
//
//   - lastDate == today: already counted, no transition.
//   - lastDate == yesterday, or no active streak: the streak continues or
//     starts; startDate is preserved when continuing.
//   - a gap of two or more days: the streak resets to 1 with startDate set
//     to today.
func (s *StreakService) Touch(ctx context.Context, userID uint, category string, now time.Time) (*models.Streak, error) {
	today := dayStartLocal(now)
	yesterday := today.AddDate(0, 0, -1)

	var streak models.Streak
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND category = ?", userID, category).
		First(&streak).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		streak = models.Streak{UserID: userID, Category: category}
	}

	last := dayStartLocal(streak.LastDate)
	switch {
	case streak.Count > 0 && last.Equal(today):
		// already counted today
		return &streak, nil
	case streak.Count > 0 && last.Equal(yesterday):
		streak.Count++
		streak.LastDate = today
	case streak.Count == 0:
		streak.Count = 1
		streak.LastDate = today
		streak.StartDate = today
	default:
		// gap of >= 2 days: start over
		streak.Count = 1
		streak.LastDate = today
		streak.StartDate = today
	}

	if streak.Count > streak.Longest {
		streak.Longest = streak.Count
	}

	if err := s.db.WithContext(ctx).Save(&streak).Error; err != nil {
		return nil, err
	}

	for _, m := range streakMilestones {
		if streak.Count == m && s.alerts != nil {
			s.alerts.Emit(userID, "streak",
				fmt.Sprintf("%d-day %s streak, keep it going!", m, category))
		}
	}

	s.mirror(ctx, userID)
	return &streak, nil
}

// List returns every streak for the user, falling back to the local mirror
// when the database is unreachable.
func (s *StreakService) List(ctx context.Context, userID uint) ([]models.Streak, error) {
	var streaks []models.Streak
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("category ASC").
		Find(&streaks).Error
	if err != nil {
		if s.cache != nil {
			var cached []models.Streak
			if cerr := s.cache.Get(UserKey(userID, "streaks"), &cached); cerr == nil {
				return cached, nil
			}
		}
		return nil, fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}
	return streaks, nil
}

// TotalDays sums the active streak counts across all categories. Feeds the
// session score.
func (s *StreakService) TotalDays(ctx context.Context, userID uint) int {
	streaks, err := s.List(ctx, userID)
	if err != nil {
		return 0
	}
	total := 0
	for _, st := range streaks {
		total += st.Count
	}
	return total
}

func (s *StreakService) mirror(ctx context.Context, userID uint) {
	if s.cache == nil {
		return
	}
	var streaks []models.Streak
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&streaks).Error; err != nil {
		return
	}
	if err := s.cache.Put(UserKey(userID, "streaks"), streaks); err != nil {
		log.Printf("streak cache mirror failed for user %d: %v", userID, err)
	}
}
