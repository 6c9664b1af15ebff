package services

import (
	"context"

	"backend/models"

	"gorm.io/gorm"
)

type MoodInput struct {
	Mood      string `json:"mood" binding:"required"`
	Intensity int    `json:"intensity"`
	Note      string `json:"note"`
}

type MoodService struct {
	db      *gorm.DB
	goals   *GoalService
	streaks *StreakService
	hub     *RealtimeHub
}

func NewMoodService(db *gorm.DB, goals *GoalService, streaks *StreakService, hub *RealtimeHub) *MoodService {
	return &MoodService{db: db, goals: goals, streaks: streaks, hub: hub}
}

func (s *MoodService) Add(ctx context.Context, userID uint, in MoodInput) (*models.MoodEntry, error) {
	entry := models.MoodEntry{
		UserID:    userID,
		Mood:      in.Mood,
		Intensity: in.Intensity,
		Note:      in.Note,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	syncDerived(ctx, userID, models.CategoryMood, s.goals, s.streaks, s.hub)
	return &entry, nil
}

// List returns recent entries, optionally filtered to one mood label.
func (s *MoodService) List(ctx context.Context, userID uint, mood string, limit int) ([]models.MoodEntry, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if mood != "" {
		q = q.Where("mood = ?", mood)
	}

	var entries []models.MoodEntry
	err := q.Order("created_at DESC").
		Limit(clampLimit(limit)).
		Find(&entries).Error
	return entries, err
}

func (s *MoodService) Update(ctx context.Context, userID, id uint, in MoodInput) (*models.MoodEntry, error) {
	var entry models.MoodEntry
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error
	if err == gorm.ErrRecordNotFound {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if in.Mood != "" {
		entry.Mood = in.Mood
	}
	if in.Intensity > 0 {
		entry.Intensity = in.Intensity
	}
	if in.Note != "" {
		entry.Note = in.Note
	}
	if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *MoodService) Delete(ctx context.Context, userID, id uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.MoodEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	syncDerived(ctx, userID, models.CategoryMood, s.goals, nil, s.hub)
	return nil
}
