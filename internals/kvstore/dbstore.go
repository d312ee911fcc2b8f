package kvstore

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoutineSnapshotModel is the hosted-mode counterpart of a snapshot file.
type RoutineSnapshotModel struct {
	SnapshotKey       string         `gorm:"column:snapshot_key;type:varchar(80);primaryKey" json:"snapshot_key"`
	SnapshotBlob      datatypes.JSON `gorm:"column:snapshot_blob;type:jsonb;not null" json:"snapshot_blob"`
	SnapshotUpdatedAt time.Time      `gorm:"column:snapshot_updated_at;not null;autoUpdateTime" json:"snapshot_updated_at"`
}

func (RoutineSnapshotModel) TableName() string { return "routine_snapshots" }

// DBStore persists snapshots as rows in routine_snapshots.
type DBStore struct {
	DB *gorm.DB
}

func NewDBStore(db *gorm.DB) *DBStore { return &DBStore{DB: db} }

func (s *DBStore) Get(key string) ([]byte, bool, error) {
	var row RoutineSnapshotModel
	err := s.DB.Where("snapshot_key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(row.SnapshotBlob), true, nil
}

func (s *DBStore) Set(key string, value []byte) error {
	row := RoutineSnapshotModel{
		SnapshotKey:  key,
		SnapshotBlob: datatypes.JSON(value),
	}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "snapshot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"snapshot_blob", "snapshot_updated_at"}),
	}).Create(&row).Error
}

func (s *DBStore) Delete(key string) error {
	return s.DB.Where("snapshot_key = ?", key).Delete(&RoutineSnapshotModel{}).Error
}

func (s *DBStore) Quarantine(key string) error {
	bad := key + ".bad"
	return s.DB.Transaction(func(tx *gorm.DB) error {
		// A prior quarantined row would collide on the primary key.
		if err := tx.Where("snapshot_key = ?", bad).Delete(&RoutineSnapshotModel{}).Error; err != nil {
			return err
		}
		return tx.Model(&RoutineSnapshotModel{}).
			Where("snapshot_key = ?", key).
			Update("snapshot_key", bad).Error
	})
}
