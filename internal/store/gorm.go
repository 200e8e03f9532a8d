package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CollectionDocument is the GORM model backing GormBackend: one row per
// collection holding the full JSON array document.
type CollectionDocument struct {
	Name string `gorm:"primaryKey"`
	Data string `gorm:"type:text;not null"`
}

// TableName sets the table name for CollectionDocument.
func (CollectionDocument) TableName() string { return "collections" }

// GormBackend persists collection documents in a relational database
// through GORM (SQLite or PostgreSQL). The whole-collection contract is
// unchanged: each save replaces the collection's single document row.
type GormBackend struct {
	db *gorm.DB
}

// NewGormBackend creates a GormBackend over an open GORM connection.
// The collections table must already be migrated.
func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

// Load reads the collection's document row. A missing row reports
// ErrNotInitialized so the store can seed it.
func (b *GormBackend) Load(collection Collection) ([]byte, error) {
	var row CollectionDocument
	if err := b.db.First(&row, "name = ?", string(collection)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotInitialized
		}
		return nil, err
	}
	return []byte(row.Data), nil
}

// Save upserts the collection's document row.
func (b *GormBackend) Save(collection Collection, data []byte) error {
	row := CollectionDocument{Name: string(collection), Data: string(data)}
	return b.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"data"}),
	}).Create(&row).Error
}
