package models

// Record represents a resource record row in the PowerDNS records table.
// Names are stored lowercase-insensitively and without a trailing dot.
type Record struct {
	ID       uint64 `gorm:"primaryKey"`
	DomainID uint64 `gorm:"index;not null"`
	Name     string `gorm:"size:255;index"`
	Type     string `gorm:"size:10"`
	Content  string `gorm:"size:64000"`
	TTL      int    `gorm:"column:ttl"`
	Prio     int
	Disabled bool `gorm:"default:false"`
	// Auth marks the record as authoritative for DNSSEC ordering.
	Auth bool `gorm:"default:true"`
	// ChangeDate is the unix time of the last modification.
	ChangeDate int64
}

// TableName pins the model to the PowerDNS schema.
func (Record) TableName() string {
	return "records"
}
