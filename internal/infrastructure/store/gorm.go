package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// kvDocument is a single named key holding one JSON document (a whole
// collection). One table, one row per key.
type kvDocument struct {
	Key       string `gorm:"primaryKey;type:varchar(100)"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (kvDocument) TableName() string {
	return "kv_documents"
}

// GormStore is a KeyValueStore backed by a relational database through GORM.
// sqlite serves the single-file local deployment, postgres a shared one.
type GormStore struct {
	db *gorm.DB
}

// GormConfig selects the database driver and its DSN
type GormConfig struct {
	Driver string // sqlite or postgres
	DSN    string // file path for sqlite, connection string for postgres
}

// NewGormStore opens the database, migrates the document table and returns
// the store
func NewGormStore(cfg GormConfig) (*GormStore, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store database: %w", err)
	}
	if err := db.AutoMigrate(&kvDocument{}); err != nil {
		return nil, fmt.Errorf("failed to migrate store schema: %w", err)
	}
	return &GormStore{db: db}, nil
}

// Get implements KeyValueStore
func (s *GormStore) Get(ctx context.Context, key string, out any) (bool, error) {
	var doc kvDocument
	err := s.db.WithContext(ctx).First(&doc, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(doc.Value, out); err != nil {
		return true, err
	}
	return true, nil
}

// Set implements KeyValueStore. The upsert replaces the whole document in
// one statement, so a failure leaves the previous value in place.
func (s *GormStore) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	doc := kvDocument{Key: key, Value: raw, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&doc).Error
}

// Close closes the underlying database connection
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var _ KeyValueStore = (*GormStore)(nil)
