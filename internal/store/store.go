// Package store is the durable persistence adapter. Each aggregate
// collection (accounts, articles, newspapers, org settings) is written
// through as a single JSON document keyed by its aggregate name, matching
// the write-whole-collection contract of the editorial core.
package store

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Aggregate keys.
const (
	KeyAccounts    = "accounts"
	KeyArticles    = "articles"
	KeyNewspapers  = "newspapers"
	KeyOrgSettings = "orgSettings"
)

// Store reads and writes whole aggregate collections. Read returns nil
// with no error when the key has never been written; defaulting is the
// caller's responsibility.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, doc []byte) error
}

// Snapshot is the persisted form of one aggregate collection.
type Snapshot struct {
	Key       string         `gorm:"primaryKey;size:32"`
	Doc       datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

type snapshotStore struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewSnapshotStore migrates the snapshots table and returns a GORM-backed Store.
func NewSnapshotStore(db *gorm.DB, log *zap.Logger) (Store, error) {
	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, err
	}
	return &snapshotStore{db: db, log: log}, nil
}

func (s *snapshotStore) Read(ctx context.Context, key string) ([]byte, error) {
	var snap Snapshot
	err := s.db.WithContext(ctx).First(&snap, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(snap.Doc), nil
}

// Write upserts the collection document. Failures are logged here and
// reported to the caller; in-memory state stays authoritative for the
// running session, so callers do not roll back.
func (s *snapshotStore) Write(ctx context.Context, key string, doc []byte) error {
	snap := Snapshot{Key: key, Doc: datatypes.JSON(doc), UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"doc", "updated_at"}),
	}).Create(&snap).Error
	if err != nil {
		s.log.Error("snapshot write failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
