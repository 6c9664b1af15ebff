package services

import (
	"context"
	"log"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// AlertBus records streak/goal alerts and pushes them to live sessions.
type AlertBus struct {
	db  *gorm.DB
	hub *RealtimeHub
}

func NewAlertBus(db *gorm.DB, hub *RealtimeHub) *AlertBus {
	return &AlertBus{db: db, hub: hub}
}

// Emit stores the alert and broadcasts it. Safe to call from any write
// path; failures are logged, never propagated.
func (b *AlertBus) Emit(userID uint, typ, message string) {
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	if err := b.db.Create(a).Error; err != nil {
		log.Printf("alert write failed for user %d: %v", userID, err)
		return
	}

	if b.hub != nil {
		b.hub.Broadcast(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
}

func (b *AlertBus) Recent(ctx context.Context, userID uint, limit int) ([]models.Alert, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var alerts []models.Alert
	err := b.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}
