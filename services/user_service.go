package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type ProfileInput struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Birthday       string `json:"birthday"` // YYYY-MM-DD
	ProfilePicture string `json:"profile_picture"`
	Onboarded      bool   `json:"onboarded"`
}

type UserService struct {
	db    *gorm.DB
	cache *LocalCache
}

func NewUserService(db *gorm.DB, cache *LocalCache) *UserService {
	return &UserService{db: db, cache: cache}
}

// GetProfile returns the profile blob, serving the local mirror when the
// database is unreachable.
func (s *UserService) GetProfile(ctx context.Context, email string) (map[string]any, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("email = ? AND disabled = ?", email, false).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		if s.cache != nil {
			var cached map[string]any
			if cerr := s.cache.Get("profiles/"+email, &cached); cerr == nil {
				return cached, nil
			}
		}
		return nil, fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}

	profile := map[string]any{
		"id":              user.ID,
		"email":           user.Email,
		"first_name":      user.FirstName,
		"last_name":       user.LastName,
		"birthday":        user.Birthday.Format("2006-01-02"),
		"profile_picture": user.ProfilePicture,
		"mfa_enabled":     user.MFAEnabled,
		"onboarded":       user.Onboarded,
	}

	if s.cache != nil {
		if err := s.cache.Put("profiles/"+email, profile); err != nil {
			log.Printf("profile cache mirror failed for %s: %v", email, err)
		}
	}
	return profile, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, email string, input ProfileInput) error {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("email = ? AND disabled = ?", email, false).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Birthday != "" {
		if birthday, err := time.Parse("2006-01-02", input.Birthday); err == nil {
			user.Birthday = birthday
		}
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}
	user.Onboarded = input.Onboarded

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Delete("profiles/" + email)
	}
	return nil
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Disable soft-disables the account; records stay until ClearAllUserData.
func (s *UserService) Disable(ctx context.Context, email string) error {
	user, err := s.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	user.Disabled = true
	return s.db.WithContext(ctx).Save(user).Error
}

// ClearAllUserData deletes every record across all categories plus the
// derived goal/streak/statistics state in one transaction, then wipes the
// local mirror. Used for account erasure and test reset.
func (s *UserService) ClearAllUserData(ctx context.Context, userID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&models.SleepSession{},
			&models.JournalEntry{},
			&models.MoodEntry{},
			&models.ActivitySession{},
			&models.Goal{},
			&models.Streak{},
			&models.StatisticsSnapshot{},
			&models.Alert{},
		} {
			if err := tx.Unscoped().Where("user_id = ?", userID).Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.cache != nil {
		// trailing slash so users/1 never matches users/11
		if err := s.cache.DeletePrefix(UserKey(userID) + "/"); err != nil {
			log.Printf("cache wipe failed for user %d: %v", userID, err)
		}
	}
	return nil
}
