// Package models contains database model definitions mapped onto the
// standard PowerDNS SQL schema.
package models

import (
	"database/sql"
	"strings"
)

// ZoneKind represents how PowerDNS replicates a zone.
type ZoneKind string

const (
	// ZoneKindMaster indicates a zone this server is authoritative for and notifies out.
	ZoneKindMaster ZoneKind = "MASTER"
	// ZoneKindSlave indicates a zone replicated from a primary; local edits are refused.
	ZoneKindSlave ZoneKind = "SLAVE"
	// ZoneKindNative indicates a zone replicated through the backend database.
	ZoneKindNative ZoneKind = "NATIVE"
	// ZoneKindPrimary is the modern spelling of MASTER.
	ZoneKindPrimary ZoneKind = "PRIMARY"
	// ZoneKindSecondary is the modern spelling of SLAVE.
	ZoneKindSecondary ZoneKind = "SECONDARY"
)

// Domain represents a zone row in the PowerDNS domains table.
type Domain struct {
	// ID is the unique identifier for the zone.
	ID uint64 `gorm:"primaryKey"`
	// Name is the zone name, stored lowercase without a trailing dot.
	Name string `gorm:"unique;size:255;not null"`
	// Master holds the primary servers feeding a slave zone.
	Master string `gorm:"size:128"`
	// LastCheck is the unix time of the last SOA check for slave zones.
	LastCheck sql.NullInt64
	// Type is the zone kind: MASTER, SLAVE or NATIVE.
	Type string `gorm:"size:8;not null"`
	// NotifiedSerial is the last serial sent out in notifications.
	NotifiedSerial sql.NullInt64
	// Account is the owner tag PowerDNS associates with the zone.
	Account string `gorm:"size:40"`
}

// TableName pins the model to the PowerDNS schema.
func (Domain) TableName() string {
	return "domains"
}

// ReadOnly reports whether the zone only follows a primary and must not be
// edited locally.
func (d *Domain) ReadOnly() bool {
	k := ZoneKind(strings.ToUpper(d.Type))

	return k == ZoneKindSlave || k == ZoneKindSecondary
}
