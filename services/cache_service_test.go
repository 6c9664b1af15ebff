package services

import (
	"errors"
	"testing"

	"backend/models"
)

func TestLocalCacheRoundTrip(t *testing.T) {
	cache := newTestCache(t)

	in := []models.Goal{{UserID: 1, Category: models.CategorySleep, Target: 8, Unit: "hours", Current: 1}}
	if err := cache.Put(UserKey(1, "goals"), in); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var out []models.Goal
	if err := cache.Get(UserKey(1, "goals"), &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(out) != 1 || out[0].Target != 8 || out[0].Category != models.CategorySleep {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestLocalCacheMissingKey(t *testing.T) {
	cache := newTestCache(t)

	var out []models.Goal
	err := cache.Get(UserKey(2, "goals"), &out)
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLocalCacheDeletePrefix(t *testing.T) {
	cache := newTestCache(t)

	for _, key := range []string{
		UserKey(1, "goals"),
		UserKey(1, "streaks"),
		UserKey(1, "statistics"),
		UserKey(11, "goals"), // different user, shares a digit prefix
	} {
		if err := cache.Put(key, map[string]int{"v": 1}); err != nil {
			t.Fatalf("Put %s: %v", key, err)
		}
	}

	if err := cache.DeletePrefix(UserKey(1) + "/"); err != nil {
		t.Fatalf("DeletePrefix: %v", err)
	}

	var out map[string]int
	for _, key := range []string{UserKey(1, "goals"), UserKey(1, "streaks"), UserKey(1, "statistics")} {
		if err := cache.Get(key, &out); !errors.Is(err, models.ErrNotFound) {
			t.Errorf("Get %s after DeletePrefix: err = %v, want ErrNotFound", key, err)
		}
	}
	if err := cache.Get(UserKey(11, "goals"), &out); err != nil {
		t.Errorf("user 11's mirror was wiped: %v", err)
	}
}
