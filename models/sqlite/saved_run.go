package sqlite

import (
	"time"

	"gorm.io/datatypes"
)

/*
 * 'SavedRun' is one named save slot. The engine snapshot is stored as an
 * opaque JSON payload; the seed/ante columns are denormalized for listing
 * saves without decoding the payload.
 */
type SavedRun struct {
	Slot      string         `gorm:"primaryKey;size:50;not null" json:"slot"`
	Seed      uint64         `gorm:"not null" json:"seed"`
	Ante      int            `gorm:"default:1" json:"ante"`
	Blind     string         `gorm:"size:10" json:"blind"`
	Payload   datatypes.JSON `json:"payload"`
	UpdatedAt time.Time      `json:"updated_at"`
}
