package models

import "gorm.io/gorm"

// Goal holds a per-category daily target. Current is recomputed from the
// day's records on every write of that category, never edited directly.
type Goal struct {
    gorm.Model
    UserID   uint    `gorm:"uniqueIndex:idx_goal_user_cat;not null" json:"user_id"`
    Category string  `gorm:"uniqueIndex:idx_goal_user_cat;size:16;not null" json:"category"`
    Target   float64 `json:"target"` // e.g. 8 (hours), 1 (entries)
    Unit     string  `json:"unit"`
    Current  float64 `json:"current"`
}
