// Package ledger is the run-history store: every completed count_matches,
// count_triangles, or fsm_support invocation is recorded as one row, final
// results only — per this module's non-goal of ever persisting
// intermediate match sets. It is grounded on the reference service's GORM
// repository pattern, with the SQLite driver already in go.mod standing
// in for that service's postgres/mysql dialector switch.
package ledger

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Run is one recorded engine invocation.
type Run struct {
	ID          int64 `gorm:"primaryKey"`
	Operation   string
	PatternName string
	GraphPath   string
	ThreadCount int
	Result      int64
	DurationMS  int64
	CreatedAt   time.Time
}

// TableName pins the table name so it doesn't pluralize unpredictably
// across GORM versions.
func (Run) TableName() string { return "runs" }

// Store wraps a GORM SQLite handle with the module's run-history
// operations.
type Store struct {
	db *gorm.DB
}

// Open connects to (and migrates) the SQLite database at dsn.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open ledger db: %w", err)
	}
	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, fmt.Errorf("migrate ledger schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record inserts one completed run.
func (s *Store) Record(ctx context.Context, run Run) error {
	if err := s.db.WithContext(ctx).Create(&run).Error; err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// Recent returns the limit most recently recorded runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	var runs []Run
	err := s.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("query recent runs: %w", err)
	}
	return runs, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
