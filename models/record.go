package models

import (
    "time"

    "gorm.io/gorm"
)

// Record categories. Every per-user collection is keyed by one of these.
const (
    CategorySleep    = "sleep"
    CategoryJournal  = "journal"
    CategoryMood     = "mood"
    CategoryActivity = "activity"
)

// Categories lists every record category in a stable order.
var Categories = []string{CategorySleep, CategoryJournal, CategoryMood, CategoryActivity}

type SleepSession struct {
    gorm.Model
    UserID   uint      `gorm:"index;not null" json:"user_id"`
    Duration float64   `json:"duration"` // hours
    Quality  string    `json:"quality"`  // "poor" | "fair" | "good" | "excellent"
    BedTime  time.Time `json:"bed_time"`
    WakeTime time.Time `json:"wake_time"`
    Notes    string    `gorm:"type:text" json:"notes"`
}

type JournalEntry struct {
    gorm.Model
    UserID  uint   `gorm:"index;not null" json:"user_id"`
    Title   string `json:"title"`
    Content string `gorm:"type:text" json:"content"`
    Mood    string `json:"mood"`
}

type MoodEntry struct {
    gorm.Model
    UserID    uint   `gorm:"index;not null" json:"user_id"`
    Mood      string `json:"mood"`
    Intensity int    `json:"intensity"` // 1..10, 0 means unset
    Note      string `gorm:"type:text" json:"note"`
}

type ActivitySession struct {
    gorm.Model
    UserID    uint    `gorm:"index;not null" json:"user_id"`
    Type      string  `json:"type"`     // e.g. "walking", "yoga"
    Duration  float64 `json:"duration"` // minutes
    Intensity string  `json:"intensity"`
    Notes     string  `gorm:"type:text" json:"notes"`
}
