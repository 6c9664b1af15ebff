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

type GoalService struct {
	db     *gorm.DB
	cache  *LocalCache
	alerts *AlertBus
}

func NewGoalService(db *gorm.DB, cache *LocalCache, alerts *AlertBus) *GoalService {
	return &GoalService{db: db, cache: cache, alerts: alerts}
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// Upsert sets the daily target for a category. No bounds on target.
func (s *GoalService) Upsert(ctx context.Context, userID uint, category string, target float64, unit string) (*models.Goal, error) {
	var goal models.Goal
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND category = ?", userID, category).
		First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.Goal{UserID: userID, Category: category, Target: target, Unit: unit}
		if err := s.db.WithContext(ctx).Create(&goal).Error; err != nil {
			return nil, err
		}
		s.mirror(ctx, userID)
		return &goal, nil
	}
	if err != nil {
		return nil, err
	}

	goal.Target = target
	goal.Unit = unit
	if err := s.db.WithContext(ctx).Save(&goal).Error; err != nil {
		return nil, err
	}
	s.mirror(ctx, userID)
	return &goal, nil
}

// Recompute refreshes Current from today's record count for the category.
// Current may exceed Target; over-achievement is reported as-is and only
// the scorer clamps.
func (s *GoalService) Recompute(ctx context.Context, userID uint, category string, now time.Time) (*models.Goal, error) {
	count, err := s.countToday(ctx, userID, category, now)
	if err != nil {
		return nil, err
	}

	var goal models.Goal
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND category = ?", userID, category).
		First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.Goal{UserID: userID, Category: category}
	} else if err != nil {
		return nil, err
	}

	crossed := goal.Target > 0 && goal.Current < goal.Target && float64(count) >= goal.Target
	goal.Current = float64(count)
	if err := s.db.WithContext(ctx).Save(&goal).Error; err != nil {
		return nil, err
	}

	if crossed && s.alerts != nil {
		s.alerts.Emit(userID, "goal",
			fmt.Sprintf("Daily %s goal reached (%g/%g %s)", category, goal.Current, goal.Target, goal.Unit))
	}

	s.mirror(ctx, userID)
	return &goal, nil
}

// List returns every goal for the user, falling back to the local mirror
// when the database is unreachable.
func (s *GoalService) List(ctx context.Context, userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("category ASC").
		Find(&goals).Error
	if err != nil {
		if s.cache != nil {
			var cached []models.Goal
			if cerr := s.cache.Get(UserKey(userID, "goals"), &cached); cerr == nil {
				return cached, nil
			}
		}
		return nil, fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}
	return goals, nil
}

// Progress returns each goal plus its percent-complete. Display percentages
// are unclamped so over-achievement shows as > 100.
func (s *GoalService) Progress(ctx context.Context, userID uint) (map[string]any, error) {
	goals, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	progress := map[string]any{}
	for _, g := range goals {
		percent := 0.0
		if g.Target > 0 {
			percent = round2(g.Current / g.Target * 100)
		}
		progress[g.Category] = map[string]any{
			"current": g.Current,
			"target":  g.Target,
			"unit":    g.Unit,
			"percent": percent,
		}
	}
	return progress, nil
}

// AchievementPercent averages min(100, current/target) across goals with a
// target set. Feeds the session score.
func (s *GoalService) AchievementPercent(ctx context.Context, userID uint) float64 {
	goals, err := s.List(ctx, userID)
	if err != nil {
		return 0
	}

	sum, n := 0.0, 0
	for _, g := range goals {
		if g.Target <= 0 {
			continue
		}
		p := g.Current / g.Target * 100
		if p > 100 {
			p = 100
		}
		sum += p
		n++
	}
	if n == 0 {
		return 0
	}
	return round2(sum / float64(n))
}

func (s *GoalService) countToday(ctx context.Context, userID uint, category string, now time.Time) (int64, error) {
	start, end := dayStart(now), dayEnd(now)

	var model any
	switch category {
	case models.CategorySleep:
		model = &models.SleepSession{}
	case models.CategoryJournal:
		model = &models.JournalEntry{}
	case models.CategoryMood:
		model = &models.MoodEntry{}
	case models.CategoryActivity:
		model = &models.ActivitySession{}
	default:
		return 0, fmt.Errorf("unknown category %q", category)
	}

	var count int64
	err := s.db.WithContext(ctx).
		Model(model).
		Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, start, end).
		Count(&count).Error
	return count, err
}

func (s *GoalService) mirror(ctx context.Context, userID uint) {
	if s.cache == nil {
		return
	}
	var goals []models.Goal
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&goals).Error; err != nil {
		return
	}
	if err := s.cache.Put(UserKey(userID, "goals"), goals); err != nil {
		log.Printf("goal cache mirror failed for user %d: %v", userID, err)
	}
}
