// Package record provides CRUD operations over the PowerDNS records table.
package record

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/record-engine/internal/db/models"
)

var (
	// ErrRecordNotFound is returned when a record is not found.
	ErrRecordNotFound = errors.New("record not found")
	// ErrRecordNil is returned when a nil record is passed to a write operation.
	ErrRecordNil = errors.New("record is nil")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a record by its ID.
func Get(db *gorm.DB, id uint64) (*models.Record, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var rec models.Record
	result := db.First(&rec, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}

	return &rec, nil
}

// ListByDomain returns all records of a zone ordered by name and type.
func ListByDomain(db *gorm.DB, domainID uint64) ([]models.Record, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var recs []models.Record
	result := db.Where("domain_id = ?", domainID).Order("name, type").Find(&recs)
	if result.Error != nil {
		return nil, result.Error
	}

	return recs, nil
}

// Create inserts a record row, stamping its change date.
func Create(db *gorm.DB, rec *models.Record) error {
	if db == nil {
		return ErrDBNil
	}
	if rec == nil {
		return ErrRecordNil
	}

	rec.ChangeDate = time.Now().Unix()

	return db.Create(rec).Error
}

// Update persists a modified record row, stamping its change date.
func Update(db *gorm.DB, rec *models.Record) error {
	if db == nil {
		return ErrDBNil
	}
	if rec == nil {
		return ErrRecordNil
	}

	rec.ChangeDate = time.Now().Unix()

	return db.Save(rec).Error
}

// Delete removes a record row by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Record{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}
