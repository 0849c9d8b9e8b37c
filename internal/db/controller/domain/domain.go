// Package domain provides lookups over the PowerDNS domains table.
package domain

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/record-engine/internal/db/models"
	"github.com/GoPowerDNS-Admin/record-engine/internal/dnsname"
)

const nameQueryPattern = "name = ?"

var (
	// ErrDomainNotFound is returned when no zone matches the lookup.
	ErrDomainNotFound = errors.New("domain not found")
	// ErrDomainNameEmpty is returned when a lookup name is empty.
	ErrDomainNameEmpty = errors.New("domain name cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a zone by its ID.
func Get(db *gorm.DB, id uint64) (*models.Domain, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var d models.Domain
	result := db.First(&d, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrDomainNotFound
		}
		return nil, result.Error
	}

	return &d, nil
}

// GetByName retrieves a zone by its exact name. Names in the domains table
// are lowercase and dotless, so the lookup normalizes its input the same way.
func GetByName(db *gorm.DB, name string) (*models.Domain, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	n := strings.ToLower(dnsname.Trimmed(name))
	if n == "" {
		return nil, ErrDomainNameEmpty
	}

	var d models.Domain
	result := db.Where(nameQueryPattern, n).First(&d)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrDomainNotFound
		}
		return nil, result.Error
	}

	return &d, nil
}

// BestMatch finds the zone owning fqdn: the name itself first, then each
// shorter label suffix until one matches. The longest match wins.
func BestMatch(db *gorm.DB, fqdn string) (*models.Domain, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	n := strings.ToLower(dnsname.Trimmed(fqdn))
	if n == "" {
		return nil, ErrDomainNameEmpty
	}

	labels := strings.Split(n, ".")
	for i := range labels {
		candidate := strings.Join(labels[i:], ".")

		var d models.Domain
		result := db.Where(nameQueryPattern, candidate).First(&d)
		if result.Error == nil {
			return &d, nil
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, result.Error
		}
	}

	return nil, ErrDomainNotFound
}
