package services

import (
	"context"
	"log"

	"backend/models"

	"gorm.io/gorm"
)

type ActivityInput struct {
	Type      string  `json:"type" binding:"required"`
	Duration  float64 `json:"duration"`
	Intensity string  `json:"intensity"`
	Notes     string  `json:"notes"`
}

type ActivityService struct {
	db      *gorm.DB
	cache   *LocalCache
	goals   *GoalService
	streaks *StreakService
	hub     *RealtimeHub
}

func NewActivityService(db *gorm.DB, cache *LocalCache, goals *GoalService, streaks *StreakService, hub *RealtimeHub) *ActivityService {
	return &ActivityService{db: db, cache: cache, goals: goals, streaks: streaks, hub: hub}
}

func (s *ActivityService) Add(ctx context.Context, userID uint, in ActivityInput) (*models.ActivitySession, error) {
	session := models.ActivitySession{
		UserID:    userID,
		Type:      in.Type,
		Duration:  in.Duration,
		Intensity: in.Intensity,
		Notes:     in.Notes,
	}
	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, err
	}
	syncDerived(ctx, userID, models.CategoryActivity, s.goals, s.streaks, s.hub)
	s.mirror(ctx, userID)
	return &session, nil
}

// List returns recent sessions, optionally filtered by activity type,
// falling back to the local mirror when the database is unreachable.
func (s *ActivityService) List(ctx context.Context, userID uint, activityType string, limit int) ([]models.ActivitySession, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if activityType != "" {
		q = q.Where("type = ?", activityType)
	}

	var sessions []models.ActivitySession
	err := q.Order("created_at DESC").
		Limit(clampLimit(limit)).
		Find(&sessions).Error
	if err != nil {
		if s.cache != nil && activityType == "" {
			var cached []models.ActivitySession
			if cerr := s.cache.Get(UserKey(userID, "activities"), &cached); cerr == nil {
				return cached, nil
			}
		}
		return nil, err
	}
	return sessions, nil
}

func (s *ActivityService) Update(ctx context.Context, userID, id uint, in ActivityInput) (*models.ActivitySession, error) {
	var session models.ActivitySession
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&session).Error
	if err == gorm.ErrRecordNotFound {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if in.Type != "" {
		session.Type = in.Type
	}
	if in.Duration > 0 {
		session.Duration = in.Duration
	}
	if in.Intensity != "" {
		session.Intensity = in.Intensity
	}
	if in.Notes != "" {
		session.Notes = in.Notes
	}
	if err := s.db.WithContext(ctx).Save(&session).Error; err != nil {
		return nil, err
	}
	s.mirror(ctx, userID)
	return &session, nil
}

func (s *ActivityService) Delete(ctx context.Context, userID, id uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.ActivitySession{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	syncDerived(ctx, userID, models.CategoryActivity, s.goals, nil, s.hub)
	s.mirror(ctx, userID)
	return nil
}

// TotalSessions feeds the session score.
func (s *ActivityService) TotalSessions(ctx context.Context, userID uint) int {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.ActivitySession{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0
	}
	return int(count)
}

func (s *ActivityService) mirror(ctx context.Context, userID uint) {
	if s.cache == nil {
		return
	}
	var sessions []models.ActivitySession
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(defaultListLimit).
		Find(&sessions).Error
	if err != nil {
		return
	}
	if err := s.cache.Put(UserKey(userID, "activities"), sessions); err != nil {
		log.Printf("activity cache mirror failed for user %d: %v", userID, err)
	}
}
