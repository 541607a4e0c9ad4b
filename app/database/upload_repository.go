package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

var _ UploadRepository = (*uploadRepository)(nil)

type uploadRepository struct {
	db *DB
}

func NewUploadRepository(db *DB) UploadRepository {
	return &uploadRepository{db: db}
}

// RecordUpload stores one audit row and returns its generated ID.
func (r *uploadRepository) RecordUpload(upload Upload) (string, error) {
	if upload.ID == "" {
		upload.ID = uuid.NewString()
	}
	if upload.UploadedAt.IsZero() {
		upload.UploadedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(`
		INSERT INTO uploads (
			id, file_name, content_hash, size_bytes,
			post_count, rows_dropped, warning_count, fatal, uploaded_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, upload.ID, upload.FileName, upload.ContentHash, upload.SizeBytes,
		upload.PostCount, upload.RowsDropped, upload.WarningCount,
		upload.Fatal, upload.UploadedAt)

	if err != nil {
		return "", fmt.Errorf("failed to record upload: %w", err)
	}

	return upload.ID, nil
}

// GetRecentUploads returns the newest uploads first.
func (r *uploadRepository) GetRecentUploads(limit int) ([]Upload, error) {
	rows, err := r.db.Query(`
		SELECT id, file_name, content_hash, size_bytes,
		       post_count, rows_dropped, warning_count, fatal, uploaded_at
		FROM uploads
		ORDER BY uploaded_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent uploads: %w", err)
	}
	defer rows.Close()

	var uploads []Upload
	for rows.Next() {
		var upload Upload
		err := rows.Scan(
			&upload.ID, &upload.FileName, &upload.ContentHash, &upload.SizeBytes,
			&upload.PostCount, &upload.RowsDropped, &upload.WarningCount,
			&upload.Fatal, &upload.UploadedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan upload row: %w", err)
		}
		uploads = append(uploads, upload)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating upload rows: %w", err)
	}

	return uploads, nil
}

// GetUploadCount returns the total number of recorded uploads.
func (r *uploadRepository) GetUploadCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM uploads").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get upload count: %w", err)
	}
	return count, nil
}
