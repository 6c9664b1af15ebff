package services

import (
	"context"

	"backend/models"

	"gorm.io/gorm"
)

type JournalInput struct {
	Title   string `json:"title"`
	Content string `json:"content" binding:"required"`
	Mood    string `json:"mood"`
}

type JournalService struct {
	db      *gorm.DB
	goals   *GoalService
	streaks *StreakService
	hub     *RealtimeHub
}

func NewJournalService(db *gorm.DB, goals *GoalService, streaks *StreakService, hub *RealtimeHub) *JournalService {
	return &JournalService{db: db, goals: goals, streaks: streaks, hub: hub}
}

func (s *JournalService) Add(ctx context.Context, userID uint, in JournalInput) (*models.JournalEntry, error) {
	entry := models.JournalEntry{
		UserID:  userID,
		Title:   in.Title,
		Content: in.Content,
		Mood:    in.Mood,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	syncDerived(ctx, userID, models.CategoryJournal, s.goals, s.streaks, s.hub)
	return &entry, nil
}

func (s *JournalService) List(ctx context.Context, userID uint, limit int) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(clampLimit(limit)).
		Find(&entries).Error
	return entries, err
}

func (s *JournalService) Update(ctx context.Context, userID, id uint, in JournalInput) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error
	if err == gorm.ErrRecordNotFound {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		entry.Title = in.Title
	}
	if in.Content != "" {
		entry.Content = in.Content
	}
	if in.Mood != "" {
		entry.Mood = in.Mood
	}
	if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *JournalService) Delete(ctx context.Context, userID, id uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.JournalEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	syncDerived(ctx, userID, models.CategoryJournal, s.goals, nil, s.hub)
	return nil
}
