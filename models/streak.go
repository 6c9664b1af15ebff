package models

import (
    "time"

    "gorm.io/gorm"
)

// Streak counts consecutive calendar days with at least one record of a
// category. A gap of two or more days resets the count on the next record.
type Streak struct {
    gorm.Model
    UserID    uint      `gorm:"uniqueIndex:idx_streak_user_cat;not null" json:"user_id"`
    Category  string    `gorm:"uniqueIndex:idx_streak_user_cat;size:16;not null" json:"category"`
    Count     int       `json:"count"`
    Longest   int       `json:"longest"`
    LastDate  time.Time `json:"last_date"`
    StartDate time.Time `json:"start_date"`
}
