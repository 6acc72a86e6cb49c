package storage

import (
	"context"
	"time"
)

// StorageService defines the interface for hosted image storage. Court
// images are uploaded here and referenced by URL from court records.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error)
}
