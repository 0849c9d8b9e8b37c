// Package comment provides upsert-style operations over the PowerDNS
// comments table. The engine keeps at most one comment per
// (domain, name, type) tuple, so every write is a create-or-overwrite.
package comment

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/record-engine/internal/db/models"
)

const tupleQueryPattern = "domain_id = ? AND name = ? AND type = ?"

var (
	// ErrCommentNotFound is returned when no comment exists for a record tuple.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves the comment attached to a record tuple.
func Get(db *gorm.DB, domainID uint64, name, recordType string) (*models.Comment, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var c models.Comment
	result := db.Where(tupleQueryPattern, domainID, name, recordType).First(&c)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, result.Error
	}

	return &c, nil
}

// Set creates or overwrites the comment attached to a record tuple.
func Set(db *gorm.DB, domainID uint64, name, recordType, text, account string) error {
	if db == nil {
		return ErrDBNil
	}

	var existing models.Comment
	result := db.Where(tupleQueryPattern, domainID, name, recordType).First(&existing)

	switch {
	case result.Error == nil:
		existing.Comment = text
		existing.Account = account
		existing.ModifiedAt = time.Now().Unix()

		return db.Save(&existing).Error

	case errors.Is(result.Error, gorm.ErrRecordNotFound):
		c := models.Comment{
			DomainID:   domainID,
			Name:       name,
			Type:       recordType,
			ModifiedAt: time.Now().Unix(),
			Account:    account,
			Comment:    text,
		}

		return db.Create(&c).Error

	default:
		return result.Error
	}
}

// Rename moves the comment on (domainID, oldName, recordType) to newName
// and rewrites its text. Absent rows are created instead, so renames never
// lose comments.
func Rename(db *gorm.DB, domainID uint64, oldName, newName, recordType, text, account string) error {
	if db == nil {
		return ErrDBNil
	}

	var existing models.Comment
	result := db.Where(tupleQueryPattern, domainID, oldName, recordType).First(&existing)

	switch {
	case result.Error == nil:
		existing.Name = newName
		existing.Comment = text
		existing.Account = account
		existing.ModifiedAt = time.Now().Unix()

		return db.Save(&existing).Error

	case errors.Is(result.Error, gorm.ErrRecordNotFound):
		return Set(db, domainID, newName, recordType, text, account)

	default:
		return result.Error
	}
}

// Delete removes the comment attached to a record tuple. Deleting a tuple
// without a comment is not an error.
func Delete(db *gorm.DB, domainID uint64, name, recordType string) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Where(tupleQueryPattern, domainID, name, recordType).Delete(&models.Comment{}).Error
}
