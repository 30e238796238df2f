// Package persist snapshots the auth and teams slices to a sqlite file
// so they survive restarts. The catalog slice is deliberately excluded;
// a fresh session always refetches the player catalog.
package persist

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"roster-service/internal/domain/teams"
	"roster-service/internal/logging"
	"roster-service/internal/metrics"
	"roster-service/internal/store"
)

const (
	rootKey  = "root"
	authKey  = rootKey + "/auth"
	teamsKey = rootKey + "/teams"
)

// stateRecord is one persisted slice blob.
type stateRecord struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     []byte
	UpdatedAt time.Time
}

func (stateRecord) TableName() string { return "state_snapshots" }

// Snapshot is the persisted application state.
type Snapshot struct {
	Auth  store.Session
	Teams []teams.Team
}

// Store persists slice snapshots in a sqlite-backed key/value table.
type Store struct {
	db       *gorm.DB
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// Open opens (or creates) the sqlite database at path and migrates the
// snapshot table.
func Open(path string, logger *slog.Logger, recorder *metrics.Recorder) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create state directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open state database: %w", err)
	}
	return NewWithDB(db, logger, recorder)
}

// NewWithDB wraps an existing gorm connection; used by tests with an
// in-memory sqlite database.
func NewWithDB(db *gorm.DB, logger *slog.Logger, recorder *metrics.Recorder) (*Store, error) {
	if err := db.AutoMigrate(&stateRecord{}); err != nil {
		return nil, fmt.Errorf("migrate state table: %w", err)
	}
	return &Store{db: db, logger: logger, recorder: recorder}, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get underlying connection: %w", err)
	}
	return sqlDB.Close()
}

// SaveAuth overwrites the persisted auth slice.
func (s *Store) SaveAuth(session store.Session) error {
	return s.save(authKey, session)
}

// SaveTeams overwrites the persisted teams slice.
func (s *Store) SaveTeams(items []teams.Team) error {
	if items == nil {
		items = []teams.Team{}
	}
	return s.save(teamsKey, items)
}

// Load reads the persisted snapshot. ok is false when nothing has been
// persisted yet. The two slices load independently; a missing one just
// stays at its zero value.
func (s *Store) Load() (Snapshot, bool, error) {
	var records []stateRecord
	if err := s.db.Where("key IN ?", []string{authKey, teamsKey}).Find(&records).Error; err != nil {
		return Snapshot{}, false, fmt.Errorf("read state snapshot: %w", err)
	}
	if len(records) == 0 {
		return Snapshot{}, false, nil
	}

	var snap Snapshot
	for _, rec := range records {
		switch rec.Key {
		case authKey:
			if err := json.Unmarshal(rec.Value, &snap.Auth); err != nil {
				return Snapshot{}, false, fmt.Errorf("decode auth snapshot: %w", err)
			}
		case teamsKey:
			if err := json.Unmarshal(rec.Value, &snap.Teams); err != nil {
				return Snapshot{}, false, fmt.Errorf("decode teams snapshot: %w", err)
			}
		}
	}
	return snap, true, nil
}

// Attach subscribes the persister to the store's persistent slices.
// Writes happen after each committed mutation; a failing write is
// logged and counted but never propagates back into the mutation.
func (s *Store) Attach(st *store.Store) {
	st.Auth.OnChange(func(session store.Session) {
		err := s.SaveAuth(session)
		s.recorder.RecordPersistWrite("auth", err)
		if err != nil {
			logging.Error(s.logger, "auth snapshot write failed", err, slog.String(logging.FieldSlice, "auth"))
		}
	})
	st.Teams.OnChange(func(items []teams.Team) {
		err := s.SaveTeams(items)
		s.recorder.RecordPersistWrite("teams", err)
		if err != nil {
			logging.Error(s.logger, "teams snapshot write failed", err, slog.String(logging.FieldSlice, "teams"))
		}
	})
}

// Restore rehydrates the store from the persisted snapshot. A missing
// snapshot leaves the store at its initial state.
func (s *Store) Restore(st *store.Store) error {
	snap, ok, err := s.Load()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	st.Auth.Restore(snap.Auth)
	st.Teams.Restore(snap.Teams)
	return nil
}

func (s *Store) save(key string, value any) error {
	blob, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s snapshot: %w", key, err)
	}

	rec := stateRecord{Key: key, Value: blob, UpdatedAt: time.Now()}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("write %s snapshot: %w", key, err)
	}
	return nil
}
