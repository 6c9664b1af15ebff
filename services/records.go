package services

import (
	"context"
	"log"
	"time"
)

// List queries bound their result set size.
const (
	defaultListLimit = 100
	maxListLimit     = 500
)

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

// syncDerived recomputes goal progress and streak state after a successful
// record write and notifies the user's live sessions. Derived-state failures
// are logged, never surfaced: the record write already succeeded.
func syncDerived(ctx context.Context, userID uint, category string, goals *GoalService, streaks *StreakService, hub *RealtimeHub) {
	now := time.Now()
	if goals != nil {
		if _, err := goals.Recompute(ctx, userID, category, now); err != nil {
			log.Printf("goal recompute failed for user %d %s: %v", userID, category, err)
		}
	}
	if streaks != nil {
		if _, err := streaks.Touch(ctx, userID, category, now); err != nil {
			log.Printf("streak update failed for user %d %s: %v", userID, category, err)
		}
	}
	if hub != nil {
		hub.Broadcast(userID, map[string]any{"kind": "stats.updated", "category": category})
	}
}
