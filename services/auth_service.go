package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

// Transient store failures at the authentication boundary are retried with
// doubling backoff; credential failures never are.
const (
	authRetryAttempts = 3
	authRetryBackoff  = 200 * time.Millisecond
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidCode        = errors.New("invalid or expired code")
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) Register(ctx context.Context, email, password, firstName, lastName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:     email,
		Password:  hashedPassword,
		FirstName: firstName,
		LastName:  lastName,
	}
	return s.db.WithContext(ctx).Create(&user).Error
}

// Authenticate verifies credentials and either returns a session token or
// signals that an MFA code was sent to the user's email.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (token string, mfaRequired bool, err error) {
	user, err := s.findByEmail(ctx, email)
	if err != nil {
		return "", false, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", false, ErrInvalidCredentials
	}

	if user.MFAEnabled {
		code := fmt.Sprintf("%06d", rand.Intn(1000000))
		user.MFACode = code
		if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
			return "", false, err
		}
		if err := utils.SendMFAEmail(user.Email, code); err != nil {
			return "", false, err
		}
		return "", true, nil
	}

	token, err = utils.GenerateJWT(user.Email)
	if err != nil {
		return "", false, err
	}
	return token, false, nil
}

func (s *AuthService) VerifyMFA(ctx context.Context, email, code string) (string, error) {
	user, err := s.findByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user.MFACode == "" || user.MFACode != code {
		return "", ErrInvalidCode
	}

	user.MFACode = ""
	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return "", err
	}
	return utils.GenerateJWT(user.Email)
}

// ForgotPassword issues a reset code valid for 15 minutes. The caller
// responds identically whether or not the email exists.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.findByEmail(ctx, email)
	if err != nil {
		return err
	}

	code := utils.GenerateRandomToken(6)
	user.ResetToken = code
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return err
	}
	return utils.SendResetEmail(user.Email, code)
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	var user models.User
	err := s.db.WithContext(ctx).Where("reset_token = ?", token).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && time.Now().After(user.ResetTokenExp)) {
		return ErrInvalidCode
	}
	if err != nil {
		return err
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return s.db.WithContext(ctx).Save(&user).Error
}

func (s *AuthService) findByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := withRetry(func() error {
		return s.db.WithContext(ctx).
			Where("email = ? AND disabled = ?", email, false).
			First(&user).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}
	return &user, nil
}

func withRetry(fn func() error) error {
	backoff := authRetryBackoff
	var err error
	for attempt := 0; attempt < authRetryAttempts; attempt++ {
		err = fn()
		if err == nil || errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		time.Sleep(backoff)
		backoff *= 2
	}
	return err
}
