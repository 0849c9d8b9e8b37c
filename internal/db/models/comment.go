package models

// Comment represents a record comment row in the PowerDNS comments table.
// At most one comment exists per (domain, name, type) tuple in this system.
type Comment struct {
	ID       uint64 `gorm:"primaryKey"`
	DomainID uint64 `gorm:"index;not null"`
	Name     string `gorm:"size:255"`
	Type     string `gorm:"size:10"`
	// ModifiedAt is the unix time the comment was last written.
	ModifiedAt int64
	// Account is the user the comment belongs to.
	Account string `gorm:"size:40"`
	Comment string `gorm:"type:text"`
}

// TableName pins the model to the PowerDNS schema.
func (Comment) TableName() string {
	return "comments"
}
