package services

import (
	"context"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type SleepInput struct {
	Duration float64   `json:"duration" binding:"required"`
	Quality  string    `json:"quality"`
	BedTime  time.Time `json:"bed_time"`
	WakeTime time.Time `json:"wake_time"`
	Notes    string    `json:"notes"`
}

type SleepService struct {
	db      *gorm.DB
	goals   *GoalService
	streaks *StreakService
	hub     *RealtimeHub
}

func NewSleepService(db *gorm.DB, goals *GoalService, streaks *StreakService, hub *RealtimeHub) *SleepService {
	return &SleepService{db: db, goals: goals, streaks: streaks, hub: hub}
}

func (s *SleepService) Add(ctx context.Context, userID uint, in SleepInput) (*models.SleepSession, error) {
	session := models.SleepSession{
		UserID:   userID,
		Duration: in.Duration,
		Quality:  in.Quality,
		BedTime:  in.BedTime,
		WakeTime: in.WakeTime,
		Notes:    in.Notes,
	}
	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, err
	}
	syncDerived(ctx, userID, models.CategorySleep, s.goals, s.streaks, s.hub)
	return &session, nil
}

func (s *SleepService) List(ctx context.Context, userID uint, limit int) ([]models.SleepSession, error) {
	var sessions []models.SleepSession
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(clampLimit(limit)).
		Find(&sessions).Error
	return sessions, err
}

func (s *SleepService) Update(ctx context.Context, userID, id uint, in SleepInput) (*models.SleepSession, error) {
	var session models.SleepSession
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&session).Error
	if err == gorm.ErrRecordNotFound {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	session.Duration = in.Duration
	if in.Quality != "" {
		session.Quality = in.Quality
	}
	if !in.BedTime.IsZero() {
		session.BedTime = in.BedTime
	}
	if !in.WakeTime.IsZero() {
		session.WakeTime = in.WakeTime
	}
	if in.Notes != "" {
		session.Notes = in.Notes
	}
	if err := s.db.WithContext(ctx).Save(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *SleepService) Delete(ctx context.Context, userID, id uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.SleepSession{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	// goal progress shrinks with the record; streaks only ever advance on writes
	syncDerived(ctx, userID, models.CategorySleep, s.goals, nil, s.hub)
	return nil
}
