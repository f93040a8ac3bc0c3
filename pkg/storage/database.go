package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StoredFile is one file on the database disk.
type StoredFile struct {
	Path      string `gorm:"primaryKey;size:255"`
	Content   []byte
	UpdatedAt time.Time
}

// TableName keeps the table name stable regardless of naming strategy.
func (StoredFile) TableName() string { return "stored_files" }

// databaseDisk keeps files as rows. Put is a single upsert statement.
type databaseDisk struct {
	db *gorm.DB
}

// NewDatabaseDisk migrates the stored_files table and returns the disk.
func NewDatabaseDisk(db *gorm.DB) (Disk, error) {
	if err := db.AutoMigrate(&StoredFile{}); err != nil {
		return nil, fmt.Errorf("storage/database: migrate: %w", err)
	}
	return &databaseDisk{db: db}, nil
}

func cleanPath(path string) string { return strings.TrimLeft(path, "/") }

func (d *databaseDisk) Put(path string, content []byte) error {
	row := StoredFile{Path: cleanPath(path), Content: content, UpdatedAt: time.Now()}
	err := d.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("storage/database: put %s: %w", path, err)
	}
	return nil
}

func (d *databaseDisk) Get(path string) ([]byte, error) {
	var row StoredFile
	err := d.db.Where("path = ?", cleanPath(path)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("storage/database: get %s: %w", path, ErrNotExist)
	}
	if err != nil {
		return nil, fmt.Errorf("storage/database: get %s: %w", path, err)
	}
	return row.Content, nil
}

func (d *databaseDisk) GetStream(path string) (io.ReadCloser, error) {
	data, err := d.Get(path)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (d *databaseDisk) Exists(path string) bool {
	var n int64
	err := d.db.Model(&StoredFile{}).Where("path = ?", cleanPath(path)).Count(&n).Error
	return err == nil && n > 0
}

func (d *databaseDisk) Delete(path string) error {
	err := d.db.Where("path = ?", cleanPath(path)).Delete(&StoredFile{}).Error
	if err != nil {
		return fmt.Errorf("storage/database: delete %s: %w", path, err)
	}
	return nil
}

func (d *databaseDisk) MakeDirectory(_ string) error { return nil }
