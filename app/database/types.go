package database

import (
	"time"
)

// Upload is the audit record kept per upload. Only metadata is persisted,
// the dataset itself lives in memory for the active session only.
type Upload struct {
	ID           string    `json:"id"`
	FileName     string    `json:"file_name"`
	ContentHash  string    `json:"content_hash"`
	SizeBytes    int64     `json:"size_bytes"`
	PostCount    int       `json:"post_count"`
	RowsDropped  int       `json:"rows_dropped"`
	WarningCount int       `json:"warning_count"`
	Fatal        bool      `json:"fatal"`
	UploadedAt   time.Time `json:"uploaded_at"`
}
