// SQLite-backed KeyValue persistence (pure Go driver). This is the durable
// backend for the session store: the token survives process restarts, which
// is what keeps a user logged in between launches.
package session

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/plugin/opentelemetry/tracing"
)

// kvRecord is one persisted key/value pair.
type kvRecord struct {
	Key   string `gorm:"type:varchar(64);primaryKey"`
	Value string `gorm:"type:text;not null"`
}

// TableName returns the database table name for kvRecord.
func (kvRecord) TableName() string { return "session_kv" }

// SQLiteKV is a KeyValue backend over a local SQLite database.
type SQLiteKV struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) the session database, applies PRAGMAs, tunes
// the pool, installs the GORM tracing plugin, and migrates the schema.
func OpenSQLite(path string) (*SQLiteKV, error) {
	// Fail early if parent directory does not exist (instead of sqlite "out of memory (14)" on Windows).
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// PRAGMAs
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA busy_timeout=5000;")

	// Pool. The session table sees one writer and the per-request token reads.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(4)
		sqlDB.SetMaxIdleConns(4)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	}

	if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&kvRecord{}); err != nil {
		return nil, err
	}

	return &SQLiteKV{db: db}, nil
}

// Get returns the stored value and whether the key exists.
func (s *SQLiteKV) Get(key string) (string, bool, error) {
	var rec kvRecord
	err := s.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return rec.Value, true, nil
}

// Set stores value under key, overwriting any previous value.
func (s *SQLiteKV) Set(key, value string) error {
	rec := kvRecord{Key: key, Value: value}
	return s.db.Save(&rec).Error
}

// Remove deletes key. Removing an absent key is not an error.
func (s *SQLiteKV) Remove(key string) error {
	return s.db.Delete(&kvRecord{}, "key = ?", key).Error
}

// Clear removes every key.
func (s *SQLiteKV) Clear() error {
	return s.db.Where("1 = 1").Delete(&kvRecord{}).Error
}

// Close releases the underlying database handle.
func (s *SQLiteKV) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
