package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorage implements StorageService on Cloudinary.
type CloudinaryStorage struct {
	client *cloudinary.Cloudinary
}

// NewStorageService creates a Cloudinary-backed StorageService.
func NewStorageService(client *cloudinary.Cloudinary) StorageService {
	return &CloudinaryStorage{client: client}
}

// UploadImage uploads the file at localFilePath into folder and returns its
// public secure URL.
func (s *CloudinaryStorage) UploadImage(ctx context.Context, localFilePath, folder string) (string, error) {
	resp, err := s.client.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		Folder: folder,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("upload returned no URL: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}
