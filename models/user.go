package models

import (
    "time"

    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Email          string `gorm:"uniqueIndex;not null"`
    Password       string `gorm:"not null"`
    FirstName      string
    LastName       string
    ProfilePicture string
    Birthday       time.Time
    MFAEnabled     bool
    MFACode        string
    ResetToken     string
    ResetTokenExp  time.Time
    Onboarded      bool
    Disabled       bool
}
