// Package auditstore keeps a relational record of every mapping
// extraction run realmcored performs: which build version, when, how
// many kinds mapped versus went unmapped, and whether it succeeded.
// Supports sqlite for local/dev and postgres for HA/production.
package auditstore

import "time"

// ExtractionRecord is one row of the extraction audit log.
type ExtractionRecord struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BuildVersion  string    `gorm:"index;not null" json:"build_version"`
	RanAt         time.Time `gorm:"index;not null" json:"ran_at"`
	MappedCount   int       `json:"mapped_count"`
	UnmappedCount int       `json:"unmapped_count"`
	Success       bool      `gorm:"index" json:"success"`
	ErrorMessage  string    `json:"error_message,omitempty"`
}

// TableName pins the table name regardless of gorm's pluralization
// rules, so the golang-migrate schema and gorm's model stay in sync.
func (ExtractionRecord) TableName() string {
	return "extraction_runs"
}
