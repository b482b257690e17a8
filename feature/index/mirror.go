package index

import (
	"context"
	"fmt"

	"gdkp-ledger/core/database"
	"gdkp-ledger/feature/session/models"

	"gorm.io/gorm"
)

// Row is the database form of an index entry.
type Row struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Position int    `gorm:"column:position"`
	UID      string `gorm:"column:uid;size:16;index"`
	Title    string `gorm:"column:title"`
	Date     int64  `gorm:"column:date"`
	Payout   int64  `gorm:"column:payout"`
	Total    int64  `gorm:"column:total"`
}

// TableName overrides the table name.
func (Row) TableName() string {
	return "gdkp_index"
}

// GormMirror replicates the index into the gdkp_index table.
type GormMirror struct {
	db        *gorm.DB
	batchSize int
}

// NewGormMirror creates a mirror writing through db.
func NewGormMirror(db *gorm.DB) *GormMirror {
	return &GormMirror{db: db, batchSize: 100}
}

// columns are the gdkp_index columns written by Sync.
var columns = []string{"id", "position", "uid", "title", "date", "payout", "total"}

// Migrate creates or updates the gdkp_index table and checks its columns.
func (m *GormMirror) Migrate(ctx context.Context) error {
	db := m.db.WithContext(ctx)
	if err := db.AutoMigrate(&Row{}); err != nil {
		return fmt.Errorf("failed to migrate index table: %w", err)
	}
	missing, err := database.MissingColumns(db, Row{}.TableName(), columns)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("index table is missing columns %v", missing)
	}
	return nil
}

// Sync replaces the table content with entries in one transaction.
func (m *GormMirror) Sync(ctx context.Context, entries []models.IndexEntry) error {
	rows := make([]Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, Row{
			Position: i,
			UID:      e.UID,
			Title:    e.Title,
			Date:     e.Date,
			Payout:   e.Payout,
			Total:    e.Total,
		})
	}

	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Row{}).Error; err != nil {
			return fmt.Errorf("failed to clear index table: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, m.batchSize).Error; err != nil {
			return fmt.Errorf("failed to insert index rows: %w", err)
		}
		return nil
	})
}
