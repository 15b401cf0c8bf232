package storage

import "context"

// StorageService stores listing images and hands back public URLs.
type StorageService interface {
	// UploadImage uploads the file at localFilePath into folder and returns
	// its public secure URL.
	UploadImage(ctx context.Context, localFilePath, folder string) (string, error)
}
