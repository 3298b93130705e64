package dataset

import (
	"time"

	"thyroidrisk/domain/core"
)

// LoadRecord is the audit entry written for each successful dataset load
type LoadRecord struct {
	ID       core.LoadID `json:"id" db:"id"`
	Source   string      `json:"source" db:"source"`
	Rows     int         `json:"rows" db:"row_count"`
	Columns  int         `json:"columns" db:"column_count"`
	Notices  []string    `json:"notices" db:"-"`
	LoadedAt time.Time   `json:"loaded_at" db:"loaded_at"`
}
