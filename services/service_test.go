package services

import (
	"fmt"
	"strings"
	"testing"

	"backend/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

// newTestCache opens a throwaway local mirror.
func newTestCache(t *testing.T) *LocalCache {
	t.Helper()

	cache, err := OpenLocalCache(t.TempDir())
	if err != nil {
		t.Fatalf("open test cache: %v", err)
	}
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}
