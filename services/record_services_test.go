package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"backend/models"
)

func TestAddSleepSessionUpdatesDerivedState(t *testing.T) {
	db := newTestDB(t)
	goals := NewGoalService(db, nil, nil)
	streaks := NewStreakService(db, nil, nil)
	svc := NewSleepService(db, goals, streaks, nil)
	ctx := context.Background()

	if _, err := goals.Upsert(ctx, 1, models.CategorySleep, 1, "sessions"); err != nil {
		t.Fatalf("Upsert goal: %v", err)
	}

	session, err := svc.Add(ctx, 1, SleepInput{Duration: 8.5, Quality: "good"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if session.ID == 0 || session.CreatedAt.IsZero() {
		t.Errorf("session = %+v, want assigned id and timestamps", session)
	}

	// the write recomputed the goal and advanced the streak
	goal, err := goals.Recompute(ctx, 1, models.CategorySleep, time.Now())
	if err != nil {
		t.Fatalf("Recompute: %v", err)
	}
	if goal.Current != 1 {
		t.Errorf("goal current = %v, want 1", goal.Current)
	}

	sts, err := streaks.List(ctx, 1)
	if err != nil {
		t.Fatalf("List streaks: %v", err)
	}
	if len(sts) != 1 || sts[0].Count != 1 || sts[0].Category != models.CategorySleep {
		t.Errorf("streaks = %+v, want one sleep streak of 1", sts)
	}
}

func TestListOrderingAndLimit(t *testing.T) {
	db := newTestDB(t)
	svc := NewJournalService(db, nil, nil, nil)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		entry := models.JournalEntry{UserID: 1, Content: "entry"}
		if err := db.Create(&entry).Error; err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := db.Model(&entry).Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error; err != nil {
			t.Fatalf("backdate: %v", err)
		}
	}

	entries, err := svc.List(ctx, 1, 3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want limit of 3", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].CreatedAt.After(entries[i-1].CreatedAt) {
			t.Errorf("entries not in descending creation order: %v after %v",
				entries[i].CreatedAt, entries[i-1].CreatedAt)
		}
	}
}

func TestListIsScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewMoodService(db, nil, nil, nil)
	ctx := context.Background()

	if _, err := svc.Add(ctx, 1, MoodInput{Mood: "happy", Intensity: 4}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := svc.Add(ctx, 2, MoodInput{Mood: "sad", Intensity: 2}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	entries, err := svc.List(ctx, 1, "", 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 || entries[0].Mood != "happy" {
		t.Errorf("entries = %+v, want only user 1's entry", entries)
	}
}

func TestMoodListFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewMoodService(db, nil, nil, nil)
	ctx := context.Background()

	for _, mood := range []string{"happy", "sad", "happy"} {
		if _, err := svc.Add(ctx, 1, MoodInput{Mood: mood, Intensity: 3}); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	entries, err := svc.List(ctx, 1, "happy", 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d happy entries, want 2", len(entries))
	}
}

func TestActivityListFilterByType(t *testing.T) {
	db := newTestDB(t)
	svc := NewActivityService(db, nil, nil, nil, nil)
	ctx := context.Background()

	for _, typ := range []string{"walking", "yoga", "walking"} {
		if _, err := svc.Add(ctx, 1, ActivityInput{Type: typ, Duration: 30}); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	sessions, err := svc.List(ctx, 1, "yoga", 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(sessions) != 1 || sessions[0].Type != "yoga" {
		t.Errorf("sessions = %+v, want one yoga session", sessions)
	}
}

func TestUpdateAndDeleteMissingRecord(t *testing.T) {
	db := newTestDB(t)
	svc := NewSleepService(db, nil, nil, nil)
	ctx := context.Background()

	if _, err := svc.Update(ctx, 1, 999, SleepInput{Duration: 8}); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Update missing: err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, 1, 999); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Delete missing: err = %v, want ErrNotFound", err)
	}
}

func TestUpdateCannotTouchOtherUsersRecord(t *testing.T) {
	db := newTestDB(t)
	svc := NewSleepService(db, nil, nil, nil)
	ctx := context.Background()

	session, err := svc.Add(ctx, 1, SleepInput{Duration: 8})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if _, err := svc.Update(ctx, 2, session.ID, SleepInput{Duration: 1}); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("cross-user update err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, 2, session.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("cross-user delete err = %v, want ErrNotFound", err)
	}
}
