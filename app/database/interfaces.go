package database

type UploadRepository interface {
	RecordUpload(upload Upload) (string, error)
	GetRecentUploads(limit int) ([]Upload, error)
	GetUploadCount() (int, error)
}
