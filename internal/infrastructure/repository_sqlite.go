package infrastructure

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yourusername/gifsync/internal/domain"
)

// SQLiteRunRepository implements RunRepository using SQLite
type SQLiteRunRepository struct {
	db *gorm.DB
}

var _ domain.RunRepository = (*SQLiteRunRepository)(nil)

// NewSQLiteRunRepository opens (and migrates) the history database
func NewSQLiteRunRepository(dbPath string) (*SQLiteRunRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&domain.Run{}, &domain.RunItem{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &SQLiteRunRepository{db: db}, nil
}

// Create stores a run together with its items
func (r *SQLiteRunRepository) Create(run *domain.Run) error {
	return r.db.Create(run).Error
}

// FindByID finds a run by ID, items included
func (r *SQLiteRunRepository) FindByID(id string) (*domain.Run, error) {
	var run domain.Run
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).First(&run, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", domain.ErrRunNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// FindRecent returns up to limit runs, newest first, without items
func (r *SQLiteRunRepository) FindRecent(limit int) ([]*domain.Run, error) {
	var runs []*domain.Run
	err := r.db.Order("started_at DESC").Limit(limit).Find(&runs).Error
	return runs, err
}

// Count returns the number of recorded runs
func (r *SQLiteRunRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Run{}).Count(&count).Error
	return count, err
}

// Close closes the database connection
func (r *SQLiteRunRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
