package models

import (
    "time"

    "gorm.io/gorm"
)

// StatisticsSnapshot is the cached copy of the archival wellness score.
// Derived data: recomputed from the record collections on demand.
type StatisticsSnapshot struct {
    gorm.Model
    UserID         uint      `gorm:"uniqueIndex;not null" json:"user_id"`
    WellnessScore  float64   `json:"wellness_score"`
    SleepScore     float64   `json:"sleep_score"`
    JournalScore   float64   `json:"journal_score"`
    MoodScore      float64   `json:"mood_score"`
    ActivityScore  float64   `json:"activity_score"`
    LastCalculated time.Time `json:"last_calculated"`
}
